package prediction

import (
	"errors"
	"math"
	"testing"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
	scenario "github.com/Ready4theCrush/censored-demand/pkg/infrastructure/testing"
)

func TestPeriodsKnown(t *testing.T) {
	testCases := []struct {
		name     string
		sales    []int
		expected int
	}{
		{"exhausted during period 3", []int{8, 12, 5, 0}, 2},
		{"exhausted during period 2", []int{10, 15, 0, 0}, 1},
		{"exhausted during first period", []int{25, 0, 0, 0}, 0},
		{"all-zero day", []int{0, 0, 0, 0}, 0},
		{"sales reach into final period", []int{2, 3, 5}, 2},
		{"single period day", []int{7}, 0},
		// A genuinely slow zero-demand period before exhaustion stays inside
		// the observed window
		{"interior zero period retained", []int{5, 0, 3, 0}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PeriodsKnown(tc.sales); got != tc.expected {
				t.Errorf("PeriodsKnown(%v) = %d, expected %d", tc.sales, got, tc.expected)
			}
		})
	}
}

func TestPredictStockoutDemand_UsesMatchingModel(t *testing.T) {
	bank, err := TrainModelBank(scenario.BuildLinearKnownDays(), 4, FailOnInsufficient)
	if err != nil {
		t.Fatalf("Expected training to succeed: %v", err)
	}

	// Cumulative sales over the two observed periods is 30; the count-2
	// model maps that to 100, where the count-1 model would say 300
	stockouts := []entities.CensoredDay{
		{DayIndex: 7, PeriodSales: []int{10, 20, 15, 0}},
	}
	predictions, err := PredictStockoutDemand(stockouts, bank)
	if err != nil {
		t.Fatalf("Expected prediction to succeed: %v", err)
	}
	if len(predictions) != 1 {
		t.Fatalf("Expected one prediction, got %d", len(predictions))
	}

	p := predictions[0]
	if p.Failed() {
		t.Fatalf("Expected prediction to succeed, got %v", p.Err)
	}
	if p.DayIndex != 7 || p.PeriodsKnown != 2 || p.ObservedSales != 30 {
		t.Errorf("Unexpected prediction metadata: %+v", p)
	}
	if math.Abs(p.Demand-100) > 1e-6 {
		t.Errorf("Expected predicted demand 100, got %v", p.Demand)
	}

	mismatched, _ := bank.Model(1)
	if math.Abs(mismatched.Predict(30)-p.Demand) < 1 {
		t.Error("Count-1 model on the same feature should disagree sharply; specialization is lost")
	}
}

func TestPredictStockoutDemand_MissingModelFailsOnlyThatDay(t *testing.T) {
	// Train with a deliberate gap at count 1
	known := []entities.ObservedDay{
		{DayIndex: 0, PeriodSales: []int{5, 10, 4}, TotalDemand: 19, Unsold: 3},
		{DayIndex: 1, PeriodSales: []int{5, 14, 6}, TotalDemand: 25, Unsold: 1},
	}
	bank, err := TrainModelBank(known, 3, SkipMissing)
	if err != nil {
		t.Fatalf("Expected training to succeed: %v", err)
	}

	stockouts := []entities.CensoredDay{
		{DayIndex: 2, PeriodSales: []int{12, 5, 0}}, // needs the missing count 1
		{DayIndex: 3, PeriodSales: []int{6, 11, 3}}, // count 2, has a model
		{DayIndex: 4, PeriodSales: []int{0, 0, 0}},  // nothing observed at all
	}
	predictions, err := PredictStockoutDemand(stockouts, bank)
	if err != nil {
		t.Fatalf("Expected prediction pass to continue past failures: %v", err)
	}
	if len(predictions) != 3 {
		t.Fatalf("Expected 3 predictions, got %d", len(predictions))
	}

	var noModel *entities.NoModelError
	if !errors.As(predictions[0].Err, &noModel) || noModel.Periods != 1 {
		t.Errorf("Expected NoModelError for count 1, got %v", predictions[0].Err)
	}
	if predictions[1].Failed() {
		t.Errorf("Expected day 3 to predict, got %v", predictions[1].Err)
	}
	if !predictions[2].Failed() || predictions[2].PeriodsKnown != 0 {
		t.Errorf("Expected all-zero day to fail with zero known periods, got %+v", predictions[2])
	}
}

func TestPredictStockoutDemand_NilBank(t *testing.T) {
	_, err := PredictStockoutDemand(nil, nil)
	var configErr *entities.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Errorf("Expected ConfigurationError for nil bank, got %v", err)
	}
}

func TestPredictStockoutDemand_PreservesOrder(t *testing.T) {
	bank, err := TrainModelBank(scenario.BuildLinearKnownDays(), 4, FailOnInsufficient)
	if err != nil {
		t.Fatalf("Expected training to succeed: %v", err)
	}

	stockouts := []entities.CensoredDay{
		{DayIndex: 9, PeriodSales: []int{10, 20, 15, 0}},
		{DayIndex: 4, PeriodSales: []int{30, 5, 0, 0}},
		{DayIndex: 6, PeriodSales: []int{10, 18, 27, 10}},
	}
	predictions, err := PredictStockoutDemand(stockouts, bank)
	if err != nil {
		t.Fatalf("Expected prediction to succeed: %v", err)
	}

	expected := []int{9, 4, 6}
	for i, p := range predictions {
		if p.DayIndex != expected[i] {
			t.Errorf("Position %d: expected day %d, got %d", i, expected[i], p.DayIndex)
		}
	}
}
