package memory

import (
	"fmt"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
	"github.com/Ready4theCrush/censored-demand/pkg/domain/repositories"
)

// SalesRepository provides in-memory storage of simulated sales histories
type SalesRepository struct {
	histories map[string]*entities.SalesHistory
	order     []string
}

// NewSalesRepository creates a new in-memory sales repository
func NewSalesRepository() *SalesRepository {
	return &SalesRepository{
		histories: make(map[string]*entities.SalesHistory),
	}
}

// Verify interface compliance
var _ repositories.SalesRepository = (*SalesRepository)(nil)

// SaveHistory stores a history under a run name, replacing any previous one
func (r *SalesRepository) SaveHistory(name string, history *entities.SalesHistory) error {
	if name == "" {
		return entities.NewConfigurationError("history name cannot be empty")
	}
	if history == nil {
		return entities.NewConfigurationError("history cannot be nil")
	}
	if _, exists := r.histories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.histories[name] = history
	return nil
}

// GetHistory retrieves a stored history by run name
func (r *SalesRepository) GetHistory(name string) (*entities.SalesHistory, error) {
	history, exists := r.histories[name]
	if !exists {
		return nil, fmt.Errorf("no sales history stored under %q", name)
	}
	return history, nil
}

// ListHistories returns the stored run names in insertion order
func (r *SalesRepository) ListHistories() ([]string, error) {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names, nil
}
