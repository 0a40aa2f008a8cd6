package events

// SimulationCompletedData describes a finished simulation pass
type SimulationCompletedData struct {
	Days    int
	Periods int
}

// ModelTrainedData describes one fitted periods-known model
type ModelTrainedData struct {
	Periods int
	Samples int
	R2      float64
}

// ModelSkippedData describes a periods-known count left untrained
type ModelSkippedData struct {
	Periods int
}

// PredictionFailedData describes a stockout day whose demand could not be
// predicted
type PredictionFailedData struct {
	DayIndex     int
	PeriodsKnown int
	Reason       string
}

// PredictionCompletedData summarizes the prediction pass
type PredictionCompletedData struct {
	StockoutDays int
	Predicted    int
	Failed       int
}
