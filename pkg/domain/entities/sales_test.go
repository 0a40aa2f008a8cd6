package entities

import "testing"

func TestDayRecord_Validation(t *testing.T) {
	valid, err := NewDayRecord([]int{6, 10, 8, 4}, 30, 2)
	if err != nil {
		t.Fatalf("Expected valid day record to succeed: %v", err)
	}
	if valid.TotalSales() != 28 {
		t.Errorf("Expected total sales 28, got %d", valid.TotalSales())
	}

	testCases := []struct {
		name       string
		sales      []int
		production int
		unsold     int
	}{
		{"no periods", []int{}, 0, 0},
		{"negative sales", []int{5, -1, 3}, 7, 0},
		{"negative production", []int{0, 0}, -5, 0},
		{"negative unsold", []int{5, 5}, 10, -1},
		{"identity mismatch", []int{5, 5}, 12, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDayRecord(tc.sales, tc.production, tc.unsold); err == nil {
				t.Errorf("Expected validation to fail")
			}
		})
	}
}

func TestDayRecord_CumulativeSales(t *testing.T) {
	record := DayRecord{PeriodSales: []int{8, 12, 5, 0}, Production: 25, Unsold: 0}

	testCases := []struct {
		periods  int
		expected int
	}{
		{0, 0},
		{1, 8},
		{2, 20},
		{4, 25},
		{10, 25}, // clamped to record length
	}
	for _, tc := range testCases {
		if got := record.CumulativeSales(tc.periods); got != tc.expected {
			t.Errorf("CumulativeSales(%d) = %d, expected %d", tc.periods, got, tc.expected)
		}
	}
}

func TestSalesHistory_Append(t *testing.T) {
	history, err := NewSalesHistory(3)
	if err != nil {
		t.Fatalf("Expected history creation to succeed: %v", err)
	}

	if err := history.Append(DayRecord{PeriodSales: []int{1, 2, 3}, Production: 10, Unsold: 4}); err != nil {
		t.Fatalf("Expected append to succeed: %v", err)
	}
	if history.NumDays() != 1 {
		t.Errorf("Expected 1 day, got %d", history.NumDays())
	}

	// Wrong period count must be rejected
	if err := history.Append(DayRecord{PeriodSales: []int{1, 2}, Production: 3, Unsold: 0}); err == nil {
		t.Error("Expected append with mismatched periods to fail")
	}

	// Invalid record must be rejected
	if err := history.Append(DayRecord{PeriodSales: []int{1, 2, 3}, Production: 5, Unsold: 4}); err == nil {
		t.Error("Expected append with broken accounting identity to fail")
	}

	if _, err := NewSalesHistory(0); err == nil {
		t.Error("Expected zero-period history to fail")
	}
}
