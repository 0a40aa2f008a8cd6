package repositories

import "github.com/Ready4theCrush/censored-demand/pkg/domain/entities"

// ModelRepository defines the interface for retaining fitted regression
// models keyed by their periods-known count
type ModelRepository interface {
	// SaveModel stores a fitted model, replacing any model for the same count
	SaveModel(model entities.RegressionModel) error

	// GetModel retrieves the model for a periods-known count.
	// Returns NoModelError if no model is stored for that count.
	GetModel(periods int) (*entities.RegressionModel, error)

	// ListModels returns all stored models ordered by periods-known count
	ListModels() ([]entities.RegressionModel, error)
}
