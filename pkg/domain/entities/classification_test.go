package entities

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		record   DayRecord
		expected DayClass
	}{
		{
			"leftover stock means known demand",
			DayRecord{PeriodSales: []int{5, 5}, Production: 12, Unsold: 2},
			KnownDemand,
		},
		{
			"exhausted stock means stockout",
			DayRecord{PeriodSales: []int{6, 6}, Production: 12, Unsold: 0},
			Stockout,
		},
		{
			"zero production day is a stockout",
			DayRecord{PeriodSales: []int{0, 0}, Production: 0, Unsold: 0},
			Stockout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(&tc.record); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDayClass_String(t *testing.T) {
	if KnownDemand.String() != "KnownDemand" {
		t.Errorf("Unexpected string for KnownDemand: %s", KnownDemand.String())
	}
	if Stockout.String() != "Stockout" {
		t.Errorf("Unexpected string for Stockout: %s", Stockout.String())
	}
	if DayClass(99).String() != "Unknown" {
		t.Errorf("Unexpected string for invalid class: %s", DayClass(99).String())
	}
}
