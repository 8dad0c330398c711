// Package store persists which quadrants of the world grid have been
// generated. The planner itself is pure; the store is where the rest of
// the tool learns what already exists around a region before planning it.
package store

import (
	"context"
	"sync"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// Store is the generated-quadrant ledger. MarkGenerated records a batch
// of quadrants under a single generation id and returns that id.
type Store interface {
	IsGenerated(ctx context.Context, p grid.Point) (bool, error)
	GeneratedInRange(ctx context.Context, bounds grid.RectBounds) (grid.PointSet, error)
	AllGenerated(ctx context.Context) (grid.PointSet, error)
	MarkGenerated(ctx context.Context, points []grid.Point) (string, error)
	Close() error
}

// Memory is an in-memory Store for tests and dry runs.
type Memory struct {
	mu        sync.RWMutex
	generated grid.PointSet
}

// NewMemory returns an empty in-memory store, optionally pre-seeded.
func NewMemory(seed ...grid.Point) *Memory {
	return &Memory{generated: grid.NewPointSet(seed...)}
}

func (m *Memory) IsGenerated(_ context.Context, p grid.Point) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generated.Has(p), nil
}

func (m *Memory) GeneratedInRange(_ context.Context, bounds grid.RectBounds) (grid.PointSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	found := grid.PointSet{}
	for p := range m.generated {
		if bounds.Contains(p) {
			found.Add(p)
		}
	}
	return found, nil
}

func (m *Memory) AllGenerated(_ context.Context) (grid.PointSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generated.Clone(), nil
}

func (m *Memory) MarkGenerated(_ context.Context, points []grid.Point) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range points {
		m.generated.Add(p)
	}
	return newGenerationID(), nil
}

func (m *Memory) Close() error { return nil }
