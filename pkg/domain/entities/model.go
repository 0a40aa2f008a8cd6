package entities

// RegressionModel is an immutable fitted ordinary-least-squares line that
// predicts a day's eventual total demand from the cumulative sales observed
// over its first Periods periods.
type RegressionModel struct {
	Periods   int
	Intercept float64
	Slope     float64
	R2        float64
	Samples   int
}

// NewRegressionModel creates a validated RegressionModel
func NewRegressionModel(periods int, intercept, slope, r2 float64, samples int) (*RegressionModel, error) {
	if periods < 1 {
		return nil, NewConfigurationError("model periods must be positive, got %d", periods)
	}
	if samples < 2 {
		return nil, &InsufficientDataError{Periods: periods, Samples: samples}
	}
	return &RegressionModel{
		Periods:   periods,
		Intercept: intercept,
		Slope:     slope,
		R2:        r2,
		Samples:   samples,
	}, nil
}

// Predict applies the fitted line to a cumulative-sales feature value
func (m *RegressionModel) Predict(cumulativeSales float64) float64 {
	return m.Intercept + m.Slope*cumulativeSales
}
