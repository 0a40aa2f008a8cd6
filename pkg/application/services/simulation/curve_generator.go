package simulation

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

const (
	// DayHours is the length of the selling window in hours. Peaks are
	// expressed as hours within [0, DayHours).
	DayHours = 12.0

	// DefaultPeakStdDev is the spread, in hours, of each Gaussian peak when
	// the caller does not override it.
	DefaultPeakStdDev = 3.0
)

// CurveConfig holds configuration for intraday demand curve generation
type CurveConfig struct {
	// TimePeriods is the number of equal slots the selling window is split into
	TimePeriods int
	// Peaks are the hours of day where demand concentrates. Hours outside
	// [0, DayHours) are accepted but contribute reduced weight near the
	// boundary; there is no wraparound.
	Peaks []float64
	// PeakStdDev overrides the Gaussian spread when positive
	PeakStdDev float64
}

// GenerateIntradayDemandCurve builds a normalized demand-shape vector from a
// mixture of Gaussian peaks using the default spread
func GenerateIntradayDemandCurve(timePeriods int, peaks []float64) (entities.DemandCurve, error) {
	return GenerateCurve(CurveConfig{TimePeriods: timePeriods, Peaks: peaks})
}

// GenerateCurve builds a normalized demand-shape vector of length
// config.TimePeriods. Each slot is represented by its starting hour
// (slot i starts at i * DayHours / TimePeriods, so twelve periods map to
// hours 0 through 11), weighted by the summed Gaussian densities of all
// peaks at that hour, then normalized to sum to 1.
func GenerateCurve(config CurveConfig) (entities.DemandCurve, error) {
	if config.TimePeriods < 1 {
		return nil, entities.NewConfigurationError(
			"time periods must be positive, got %d", config.TimePeriods)
	}
	if len(config.Peaks) == 0 {
		return nil, entities.NewConfigurationError("peaks cannot be empty")
	}
	sigma := config.PeakStdDev
	if sigma == 0 {
		sigma = DefaultPeakStdDev
	}
	if sigma < 0 {
		return nil, entities.NewConfigurationError(
			"peak standard deviation cannot be negative, got %v", sigma)
	}

	weights := make([]float64, config.TimePeriods)
	sum := 0.0
	for _, peak := range config.Peaks {
		density := distuv.Normal{Mu: peak, Sigma: sigma}
		for i := range weights {
			hour := float64(i) * DayHours / float64(config.TimePeriods)
			w := density.Prob(hour)
			weights[i] += w
			sum += w
		}
	}

	// Peaks far outside the day window can underflow every density to zero;
	// normalizing would divide by zero.
	if sum == 0 {
		return nil, entities.NewConfigurationError(
			"all curve weights are zero for peaks %v", config.Peaks)
	}

	for i := range weights {
		weights[i] /= sum
	}
	return entities.NewDemandCurve(weights)
}
