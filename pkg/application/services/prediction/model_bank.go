package prediction

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sajari/regression"
	"gonum.org/v1/gonum/stat"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

// GapPolicy controls what happens when a periods-known count has too few
// usable training samples
type GapPolicy int

const (
	// SkipMissing leaves a gap in the bank and records the missing count
	SkipMissing GapPolicy = iota
	// FailOnInsufficient aborts training with an InsufficientDataError
	FailOnInsufficient
)

// String method for GapPolicy enum
func (p GapPolicy) String() string {
	switch p {
	case SkipMissing:
		return "SkipMissing"
	case FailOnInsufficient:
		return "FailOnInsufficient"
	default:
		return "Unknown"
	}
}

// ModelBank maps a periods-known count t (1..T-1) to the OLS model trained on
// known-demand days truncated to their first t periods. Banks are immutable
// once trained.
type ModelBank struct {
	periods int
	models  map[int]entities.RegressionModel
	missing []int
}

// TrainModelBank fits one regression per periods-known count from 1 to
// periods-1. Each known-demand day contributes one sample per count: feature
// is the day's cumulative sales over its first t periods, target is its
// reconstructed total demand. Counts with fewer than two samples, or whose
// feature values are all identical, cannot be fit; the policy decides whether
// they become recorded gaps or an error.
func TrainModelBank(known []entities.ObservedDay, periods int, policy GapPolicy) (*ModelBank, error) {
	if periods < 1 {
		return nil, entities.NewConfigurationError("periods must be positive, got %d", periods)
	}
	for _, day := range known {
		if len(day.PeriodSales) != periods {
			return nil, entities.NewConfigurationError(
				"known-demand day %d has %d periods, expected %d",
				day.DayIndex, len(day.PeriodSales), periods)
		}
	}

	bank := &ModelBank{
		periods: periods,
		models:  make(map[int]entities.RegressionModel),
	}
	for t := 1; t < periods; t++ {
		model, err := fitPeriodModel(known, t)
		if err != nil {
			var insufficient *entities.InsufficientDataError
			if errors.As(err, &insufficient) {
				if policy == FailOnInsufficient {
					return nil, err
				}
				bank.missing = append(bank.missing, t)
				continue
			}
			return nil, err
		}
		bank.models[t] = *model
	}
	return bank, nil
}

// fitPeriodModel fits total demand on cumulative sales over the first t
// periods, ordinary least squares with intercept
func fitPeriodModel(known []entities.ObservedDay, t int) (*entities.RegressionModel, error) {
	features := make([]float64, 0, len(known))
	targets := make([]float64, 0, len(known))
	for _, day := range known {
		cumulative := 0
		for _, sales := range day.PeriodSales[:t] {
			cumulative += sales
		}
		features = append(features, float64(cumulative))
		targets = append(targets, float64(day.TotalDemand))
	}

	// A line with intercept needs at least two distinct feature values
	if len(features) < 2 || stat.Variance(features, nil) == 0 {
		return nil, &entities.InsufficientDataError{Periods: t, Samples: len(features)}
	}

	r := new(regression.Regression)
	r.SetObserved("total daily demand")
	r.SetVar(0, fmt.Sprintf("cumulative sales through period %d", t))
	for i := range features {
		r.Train(regression.DataPoint(targets[i], []float64{features[i]}))
	}
	if err := r.Run(); err != nil {
		return nil, &entities.InsufficientDataError{Periods: t, Samples: len(features)}
	}

	return entities.NewRegressionModel(t, r.Coeff(0), r.Coeff(1), r.R2, len(features))
}

// Periods returns the number of time periods per day the bank was trained for
func (b *ModelBank) Periods() int {
	return b.periods
}

// Model returns the fitted model for a periods-known count.
// Returns NoModelError when the count has no trained model.
func (b *ModelBank) Model(t int) (*entities.RegressionModel, error) {
	model, ok := b.models[t]
	if !ok {
		return nil, &entities.NoModelError{Periods: t}
	}
	return &model, nil
}

// Models returns all fitted models ordered by periods-known count
func (b *ModelBank) Models() []entities.RegressionModel {
	models := make([]entities.RegressionModel, 0, len(b.models))
	for _, model := range b.models {
		models = append(models, model)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Periods < models[j].Periods })
	return models
}

// Missing returns the periods-known counts that could not be trained
func (b *ModelBank) Missing() []int {
	missing := make([]int, len(b.missing))
	copy(missing, b.missing)
	return missing
}
