package events

import "time"

// Event types emitted during a pipeline run
const (
	SimulationCompleted = "simulation.completed"
	ModelTrained        = "model.trained"
	ModelSkipped        = "model.skipped"
	PredictionFailed    = "prediction.failed"
	PredictionCompleted = "prediction.completed"
)

// Event is one diagnostic record appended while a pipeline run executes
type Event struct {
	Type  string
	RunID string
	Data  interface{}
	Time  time.Time
	Seq   int
}
