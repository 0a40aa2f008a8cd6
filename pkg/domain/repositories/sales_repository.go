package repositories

import "github.com/Ready4theCrush/censored-demand/pkg/domain/entities"

// SalesRepository defines the interface for storing simulated sales histories
type SalesRepository interface {
	// SaveHistory stores a history under a run name, replacing any previous one
	SaveHistory(name string, history *entities.SalesHistory) error

	// GetHistory retrieves a stored history by run name
	GetHistory(name string) (*entities.SalesHistory, error)

	// ListHistories returns the stored run names in insertion order
	ListHistories() ([]string, error)
}
