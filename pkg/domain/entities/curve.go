package entities

import "math"

// CurveSumTolerance is the floating tolerance within which a demand curve
// must sum to 1.
const CurveSumTolerance = 1e-9

// DemandCurve is the fraction of a day's total demand expected in each of
// T equal time periods. Entries are non-negative and sum to 1.
type DemandCurve []float64

// NewDemandCurve creates a validated DemandCurve
func NewDemandCurve(weights []float64) (DemandCurve, error) {
	curve := DemandCurve(weights)
	if err := curve.Validate(); err != nil {
		return nil, err
	}
	return curve, nil
}

// Validate checks the curve invariants: length >= 1, entries >= 0, sum == 1
func (c DemandCurve) Validate() error {
	if len(c) < 1 {
		return NewConfigurationError("demand curve must have at least one period, got %d", len(c))
	}
	sum := 0.0
	for i, w := range c {
		if w < 0 {
			return NewConfigurationError("demand curve entry %d is negative: %v", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > CurveSumTolerance {
		return NewConfigurationError("demand curve must sum to 1, got %v", sum)
	}
	return nil
}

// Periods returns the number of time periods the curve spans
func (c DemandCurve) Periods() int {
	return len(c)
}
