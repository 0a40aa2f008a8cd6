package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

func TestGenerateIntradayDemandCurve_SinglePeak(t *testing.T) {
	// Four periods put slot starts at hours 0, 3, 6, 9; the peak at hour 3
	// sits exactly on slot 1
	curve, err := GenerateIntradayDemandCurve(4, []float64{3})
	if err != nil {
		t.Fatalf("Expected curve generation to succeed: %v", err)
	}
	if curve.Periods() != 4 {
		t.Fatalf("Expected 4 periods, got %d", curve.Periods())
	}

	sum := 0.0
	for i, w := range curve {
		if w < 0 {
			t.Errorf("Period %d weight is negative: %v", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Expected weights to sum to 1, got %v", sum)
	}

	for i, w := range curve {
		if i != 1 && w >= curve[1] {
			t.Errorf("Expected largest weight at slot 1 (hour 3), but slot %d has %v >= %v", i, w, curve[1])
		}
	}
}

func TestGenerateCurve_TwelvePeriodsMatchHours(t *testing.T) {
	curve, err := GenerateIntradayDemandCurve(12, []float64{5})
	if err != nil {
		t.Fatalf("Expected curve generation to succeed: %v", err)
	}
	// With twelve periods slot starts are hours 0..11, so the peak hour
	// carries the maximum weight
	for i, w := range curve {
		if i != 5 && w >= curve[5] {
			t.Errorf("Expected maximum at hour 5, slot %d has %v >= %v", i, w, curve[5])
		}
	}
}

func TestGenerateCurve_Bimodal(t *testing.T) {
	// Default spread blurs peaks six hours apart into one bump, so tighten it
	curve, err := GenerateCurve(CurveConfig{TimePeriods: 12, Peaks: []float64{3, 9}, PeakStdDev: 1.5})
	if err != nil {
		t.Fatalf("Expected curve generation to succeed: %v", err)
	}
	// Both rush hours outweigh the midday trough
	if curve[3] <= curve[6] || curve[9] <= curve[6] {
		t.Errorf("Expected peaks at hours 3 and 9 to exceed hour 6: %v %v %v",
			curve[3], curve[6], curve[9])
	}
}

func TestGenerateCurve_Deterministic(t *testing.T) {
	first, err := GenerateIntradayDemandCurve(8, []float64{2, 7})
	if err != nil {
		t.Fatalf("Expected curve generation to succeed: %v", err)
	}
	second, _ := GenerateIntradayDemandCurve(8, []float64{2, 7})
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical curves, slot %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateCurve_ConfigurationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		config CurveConfig
	}{
		{"zero periods", CurveConfig{TimePeriods: 0, Peaks: []float64{3}}},
		{"empty peaks", CurveConfig{TimePeriods: 4, Peaks: nil}},
		{"negative spread", CurveConfig{TimePeriods: 4, Peaks: []float64{3}, PeakStdDev: -1}},
		{"remote peak underflows all weights", CurveConfig{TimePeriods: 4, Peaks: []float64{1e6}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateCurve(tc.config)
			var configErr *entities.ConfigurationError
			if !errors.As(err, &configErr) {
				t.Errorf("Expected ConfigurationError, got %v", err)
			}
		})
	}
}
