package memory

import (
	"sort"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
	"github.com/Ready4theCrush/censored-demand/pkg/domain/repositories"
)

// ModelRepository provides in-memory storage of fitted regression models
// keyed by periods-known count
type ModelRepository struct {
	models map[int]entities.RegressionModel
}

// NewModelRepository creates a new in-memory model repository
func NewModelRepository() *ModelRepository {
	return &ModelRepository{
		models: make(map[int]entities.RegressionModel),
	}
}

// Verify interface compliance
var _ repositories.ModelRepository = (*ModelRepository)(nil)

// SaveModel stores a fitted model, replacing any model for the same count
func (r *ModelRepository) SaveModel(model entities.RegressionModel) error {
	if model.Periods < 1 {
		return entities.NewConfigurationError(
			"model periods must be positive, got %d", model.Periods)
	}
	r.models[model.Periods] = model
	return nil
}

// GetModel retrieves the model for a periods-known count.
// Returns NoModelError if no model is stored for that count.
func (r *ModelRepository) GetModel(periods int) (*entities.RegressionModel, error) {
	model, exists := r.models[periods]
	if !exists {
		return nil, &entities.NoModelError{Periods: periods}
	}
	return &model, nil
}

// ListModels returns all stored models ordered by periods-known count
func (r *ModelRepository) ListModels() ([]entities.RegressionModel, error) {
	models := make([]entities.RegressionModel, 0, len(r.models))
	for _, model := range r.models {
		models = append(models, model)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Periods < models[j].Periods })
	return models, nil
}
