package prediction

import (
	"github.com/Ready4theCrush/censored-demand/pkg/application/dto"
	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

// PeriodsKnown returns how many leading periods of a stockout day are fully
// observed, i.e. the number of periods that completed before the period in
// which supply ran out.
//
// Exhaustion is detected from cumulative totals rather than from the first
// zero-sales period: a slow period with genuinely zero demand before
// exhaustion stays inside the observed window. The exhaustion period itself
// is always censored (its sales were truncated by supply), so the result is
// at most T-1. An all-zero day returns 0.
func PeriodsKnown(periodSales []int) int {
	total := 0
	for _, sales := range periodSales {
		total += sales
	}
	if total == 0 {
		return 0
	}

	cumulative := 0
	for i, sales := range periodSales {
		cumulative += sales
		if cumulative == total {
			return i
		}
	}
	return 0
}

// PredictStockoutDemand produces one point prediction of total demand per
// stockout day, aligned to input order. A day whose periods-known count has
// no trained model fails with a per-day NoModelError marker; it never
// borrows another count's model and never aborts the remaining days.
func PredictStockoutDemand(stockoutDays []entities.CensoredDay, bank *ModelBank) ([]dto.Prediction, error) {
	if bank == nil {
		return nil, entities.NewConfigurationError("model bank cannot be nil")
	}

	predictions := make([]dto.Prediction, 0, len(stockoutDays))
	for _, day := range stockoutDays {
		predictions = append(predictions, predictDay(day, bank))
	}
	return predictions, nil
}

func predictDay(day entities.CensoredDay, bank *ModelBank) dto.Prediction {
	t := PeriodsKnown(day.PeriodSales)
	prediction := dto.Prediction{DayIndex: day.DayIndex, PeriodsKnown: t}

	if t == 0 {
		// No trustworthy periods at all, nothing to feed a model
		prediction.Err = &entities.NoModelError{Periods: 0}
		return prediction
	}

	observed := 0
	for _, sales := range day.PeriodSales[:t] {
		observed += sales
	}
	prediction.ObservedSales = observed

	model, err := bank.Model(t)
	if err != nil {
		prediction.Err = err
		return prediction
	}
	prediction.Demand = model.Predict(float64(observed))
	return prediction
}
