package events

import (
	"sync"
	"time"
)

// Store is an append-only in-memory event log grouped by run ID
type Store struct {
	mu     sync.RWMutex
	events []Event
}

// NewStore creates an empty event store
func NewStore() *Store {
	return &Store{events: make([]Event, 0)}
}

// Append records an event for a run
func (s *Store) Append(runID, eventType string, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, Event{
		Type:  eventType,
		RunID: runID,
		Data:  data,
		Time:  time.Now(),
		Seq:   len(s.events) + 1,
	})
}

// All returns every recorded event in append order
func (s *Store) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ForRun returns the events recorded for one run in append order
func (s *Store) ForRun(runID string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, event := range s.events {
		if event.RunID == runID {
			out = append(out, event)
		}
	}
	return out
}
