package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Ready4theCrush/censored-demand/pkg/application/dto"
	"github.com/Ready4theCrush/censored-demand/pkg/application/services/prediction"
	"github.com/Ready4theCrush/censored-demand/pkg/application/services/simulation"
	"github.com/Ready4theCrush/censored-demand/pkg/infrastructure/events"
)

// Config holds configuration for a full simulate-train-predict run
type Config struct {
	Curve      simulation.CurveConfig
	Simulation simulation.Config
	Policy     prediction.GapPolicy
	// RunID labels the run's entries in the event log
	RunID string
}

// Service chains the curve generator, simulator, classifier, model bank, and
// predictor into one pass structure
type Service struct {
	events *events.Store
}

// NewService creates a pipeline service without event logging
func NewService() *Service {
	return &Service{}
}

// NewServiceWithEvents creates a pipeline service that appends diagnostic
// events to the given store
func NewServiceWithEvents(store *events.Store) *Service {
	return &Service{events: store}
}

// Run executes the full pipeline and returns the assembled result
func (s *Service) Run(ctx context.Context, config Config) (*dto.PipelineResult, error) {
	start := time.Now()

	// Pass 1: build the intraday demand curve
	curve, err := simulation.GenerateCurve(config.Curve)
	if err != nil {
		return nil, fmt.Errorf("failed to generate demand curve: %w", err)
	}

	// Pass 2: simulate daily sales under the curve
	simulator, err := simulation.NewSimulator(config.Simulation)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator: %w", err)
	}
	history, err := simulator.Run(curve)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate sales: %w", err)
	}
	s.emit(config.RunID, events.SimulationCompleted, events.SimulationCompletedData{
		Days:    history.NumDays(),
		Periods: history.Periods,
	})

	// Pass 3: partition days by stockout
	partition, err := prediction.SplitByStockout(history)
	if err != nil {
		return nil, fmt.Errorf("failed to classify days: %w", err)
	}

	// Pass 4: train one model per periods-known count
	bank, err := prediction.TrainModelBank(partition.Known, curve.Periods(), config.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to train model bank: %w", err)
	}
	for _, model := range bank.Models() {
		s.emit(config.RunID, events.ModelTrained, events.ModelTrainedData{
			Periods: model.Periods,
			Samples: model.Samples,
			R2:      model.R2,
		})
	}
	for _, t := range bank.Missing() {
		s.emit(config.RunID, events.ModelSkipped, events.ModelSkippedData{Periods: t})
	}

	// Pass 5: predict total demand for each stockout day
	predictions, err := prediction.PredictStockoutDemand(partition.Stockout, bank)
	if err != nil {
		return nil, fmt.Errorf("failed to predict stockout demand: %w", err)
	}
	failed := 0
	for _, p := range predictions {
		if p.Failed() {
			failed++
			s.emit(config.RunID, events.PredictionFailed, events.PredictionFailedData{
				DayIndex:     p.DayIndex,
				PeriodsKnown: p.PeriodsKnown,
				Reason:       p.Err.Error(),
			})
		}
	}
	s.emit(config.RunID, events.PredictionCompleted, events.PredictionCompletedData{
		StockoutDays: len(partition.Stockout),
		Predicted:    len(predictions) - failed,
		Failed:       failed,
	})

	return &dto.PipelineResult{
		Curve:         curve,
		History:       history,
		Partition:     partition,
		Models:        bank.Models(),
		MissingModels: bank.Missing(),
		Predictions:   predictions,
		Elapsed:       time.Since(start),
	}, nil
}

func (s *Service) emit(runID, eventType string, data interface{}) {
	if s.events == nil {
		return
	}
	s.events.Append(runID, eventType, data)
}
