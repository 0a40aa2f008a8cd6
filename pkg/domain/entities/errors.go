package entities

import "fmt"

// ConfigurationError reports invalid simulation or training configuration:
// malformed curves, negative means or deviations, empty peak sets,
// mismatched array lengths. It is always raised before any computation runs.
type ConfigurationError struct {
	Reason string
}

// NewConfigurationError creates a ConfigurationError with a formatted reason
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// InsufficientDataError reports that too few known-demand days exist to fit
// the regression for a given periods-known count.
type InsufficientDataError struct {
	Periods int
	Samples int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"insufficient data to train model for %d known periods: %d usable samples",
		e.Periods, e.Samples)
}

// NoModelError reports that a stockout day requires a periods-known count for
// which no model was trained. It is surfaced per day and never aborts the
// predictions for other days.
type NoModelError struct {
	Periods int
}

func (e *NoModelError) Error() string {
	return fmt.Sprintf("no trained model for %d known periods", e.Periods)
}
