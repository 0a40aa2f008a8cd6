package entities

import (
	"errors"
	"math"
	"testing"
)

func TestRegressionModel_Predict(t *testing.T) {
	model, err := NewRegressionModel(2, 5.0, 3.0, 0.98, 10)
	if err != nil {
		t.Fatalf("Expected valid model creation to succeed: %v", err)
	}
	if got := model.Predict(10); math.Abs(got-35.0) > 1e-12 {
		t.Errorf("Expected prediction 35, got %v", got)
	}
}

func TestRegressionModel_Validation(t *testing.T) {
	if _, err := NewRegressionModel(0, 0, 1, 1, 5); err == nil {
		t.Error("Expected zero periods to fail")
	}

	_, err := NewRegressionModel(3, 0, 1, 1, 1)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Expected InsufficientDataError for single sample, got %v", err)
	}
	if insufficient.Periods != 3 || insufficient.Samples != 1 {
		t.Errorf("Unexpected error details: %+v", insufficient)
	}
}
