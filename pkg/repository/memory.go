package repository

import (
	"context"
	"sync"

	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements HolidaySource with in-memory storage
type Memory struct {
	mu     sync.RWMutex
	byYear map[int][]model.Annotation
}

// NewMemory creates a new memory holiday source
func NewMemory() *Memory {
	return &Memory{
		byYear: make(map[int][]model.Annotation),
	}
}

var _ interfaces.HolidaySource = (*Memory)(nil)

// Add validates and stores an annotation
func (m *Memory) Add(annotations ...model.Annotation) error {
	for _, a := range annotations {
		if err := a.Validate(); err != nil {
			return goerr.Wrap(err, "rejected annotation")
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range annotations {
		m.byYear[a.Date.Year] = append(m.byYear[a.Date.Year], a)
	}
	return nil
}

// Annotations returns the stored annotations for a year in insertion order
func (m *Memory) Annotations(ctx context.Context, year int) ([]model.Annotation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	stored := m.byYear[year]
	result := make([]model.Annotation, len(stored))
	copy(result, stored)
	return result, nil
}
