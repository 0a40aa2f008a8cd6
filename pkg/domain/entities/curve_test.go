package entities

import "testing"

func TestDemandCurve_Validation(t *testing.T) {
	valid, err := NewDemandCurve([]float64{0.25, 0.25, 0.5})
	if err != nil {
		t.Fatalf("Expected valid curve creation to succeed: %v", err)
	}
	if valid.Periods() != 3 {
		t.Errorf("Expected 3 periods, got %d", valid.Periods())
	}

	testCases := []struct {
		name    string
		weights []float64
	}{
		{"empty curve", []float64{}},
		{"negative entry", []float64{0.5, -0.1, 0.6}},
		{"sum below one", []float64{0.5, 0.4}},
		{"sum above one", []float64{0.7, 0.7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDemandCurve(tc.weights); err == nil {
				t.Errorf("Expected validation to fail for %v", tc.weights)
			}
		})
	}
}

func TestDemandCurve_SumTolerance(t *testing.T) {
	// Tiny floating error within tolerance must pass
	curve := DemandCurve{0.5, 0.5 + 1e-12}
	if err := curve.Validate(); err != nil {
		t.Errorf("Expected curve within tolerance to validate: %v", err)
	}
}
