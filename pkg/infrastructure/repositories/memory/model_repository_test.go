package memory

import (
	"errors"
	"testing"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

func TestModelRepository_SaveAndGet(t *testing.T) {
	repo := NewModelRepository()

	model := entities.RegressionModel{Periods: 2, Intercept: 1.5, Slope: 3.2, R2: 0.9, Samples: 12}
	if err := repo.SaveModel(model); err != nil {
		t.Fatalf("Expected save to succeed: %v", err)
	}

	loaded, err := repo.GetModel(2)
	if err != nil {
		t.Fatalf("Expected get to succeed: %v", err)
	}
	if *loaded != model {
		t.Errorf("Expected %+v, got %+v", model, *loaded)
	}
}

func TestModelRepository_MissingCount(t *testing.T) {
	repo := NewModelRepository()

	_, err := repo.GetModel(3)
	var noModel *entities.NoModelError
	if !errors.As(err, &noModel) {
		t.Fatalf("Expected NoModelError, got %v", err)
	}
	if noModel.Periods != 3 {
		t.Errorf("Expected error for count 3, got %d", noModel.Periods)
	}
}

func TestModelRepository_ListOrdered(t *testing.T) {
	repo := NewModelRepository()
	for _, periods := range []int{3, 1, 2} {
		model := entities.RegressionModel{Periods: periods, Slope: 1, Samples: 2}
		if err := repo.SaveModel(model); err != nil {
			t.Fatalf("Expected save to succeed: %v", err)
		}
	}

	models, err := repo.ListModels()
	if err != nil {
		t.Fatalf("Expected list to succeed: %v", err)
	}
	for i, model := range models {
		if model.Periods != i+1 {
			t.Errorf("Expected models ordered by count, position %d holds %d", i, model.Periods)
		}
	}
}

func TestModelRepository_RejectsInvalidCount(t *testing.T) {
	repo := NewModelRepository()
	if err := repo.SaveModel(entities.RegressionModel{Periods: 0}); err == nil {
		t.Error("Expected zero-period model to fail")
	}
}
