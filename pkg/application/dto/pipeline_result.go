package dto

import (
	"time"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

// Prediction is the outcome of predicting one stockout day's total demand.
// Either Demand is set, or Err carries the per-day failure.
type Prediction struct {
	DayIndex      int
	PeriodsKnown  int
	ObservedSales int
	Demand        float64
	Err           error
}

// Failed reports whether this day's prediction could not be made
func (p Prediction) Failed() bool {
	return p.Err != nil
}

// PipelineResult contains the complete output of a simulate-train-predict run
type PipelineResult struct {
	Curve         entities.DemandCurve
	History       *entities.SalesHistory
	Partition     *entities.Partition
	Models        []entities.RegressionModel
	MissingModels []int
	Predictions   []Prediction
	Elapsed       time.Duration
}
