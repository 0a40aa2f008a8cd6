package testing

import (
	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

// BuildBakeryHistory builds a deterministic four-period history mixing
// known-demand and stockout days, used across classifier and predictor tests.
//
// Day layout:
//
//	0  known     [6 10 8 4]   production 30, unsold 2
//	1  stockout  [8 12 5 0]   production 25, exhausted during period 2
//	2  known     [5 9 7 3]    production 32, unsold 8
//	3  stockout  [0 0 0 0]    production 0, nothing to sell
//	4  stockout  [10 15 0 0]  production 25, exhausted during period 1
//	5  known     [7 11 9 5]   production 40, unsold 8
func BuildBakeryHistory() *entities.SalesHistory {
	history, _ := entities.NewSalesHistory(4)

	days := []entities.DayRecord{
		{PeriodSales: []int{6, 10, 8, 4}, Production: 30, Unsold: 2},
		{PeriodSales: []int{8, 12, 5, 0}, Production: 25, Unsold: 0},
		{PeriodSales: []int{5, 9, 7, 3}, Production: 32, Unsold: 8},
		{PeriodSales: []int{0, 0, 0, 0}, Production: 0, Unsold: 0},
		{PeriodSales: []int{10, 15, 0, 0}, Production: 25, Unsold: 0},
		{PeriodSales: []int{7, 11, 9, 5}, Production: 40, Unsold: 8},
	}
	for _, day := range days {
		if err := history.Append(day); err != nil {
			panic(err)
		}
	}
	return history
}

// BuildLinearKnownDays builds known-demand days whose sales follow the exact
// intraday split 10%/20%/30%/40%, so every periods-known count fits a perfect
// zero-intercept line: slope 10 for t=1, 10/3 for t=2, 5/3 for t=3.
func BuildLinearKnownDays() []entities.ObservedDay {
	totals := []int{100, 200, 300, 400}
	days := make([]entities.ObservedDay, 0, len(totals))
	for i, total := range totals {
		sales := []int{total / 10, total / 5, 3 * total / 10, 2 * total / 5}
		days = append(days, entities.ObservedDay{
			DayIndex:    i,
			PeriodSales: sales,
			TotalDemand: total,
			Unsold:      5,
		})
	}
	return days
}
