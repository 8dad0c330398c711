package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// Status reports how much of a region (or of the whole ledger) has been
// generated.
func (e *Engine) Status(ctx context.Context, req StatusRequest) (*StatusResult, error) {
	var (
		generated grid.PointSet
		err       error
	)
	if req.Bounds != nil {
		generated, err = e.store.GeneratedInRange(ctx, *req.Bounds)
	} else {
		generated, err = e.store.AllGenerated(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load generated quadrants: %w", err)
	}

	result := &StatusResult{
		Bounds:    req.Bounds,
		Generated: len(generated),
		Points:    generated.Sorted(),
	}
	if req.Bounds != nil {
		result.Total = req.Bounds.Area()
	}

	e.log.Debug("status", zap.Int("generated", result.Generated))
	return result, nil
}

// Mark records a batch of quadrants as generated under one generation id.
func (e *Engine) Mark(ctx context.Context, req MarkRequest) (*MarkResult, error) {
	if len(req.Points) == 0 {
		return nil, fmt.Errorf("no quadrants to mark")
	}

	id, err := e.store.MarkGenerated(ctx, req.Points)
	if err != nil {
		return nil, fmt.Errorf("failed to mark quadrants: %w", err)
	}

	e.log.Info("marked quadrants generated",
		zap.String("generation", id),
		zap.Int("count", len(req.Points)))
	return &MarkResult{GenerationID: id, Marked: len(req.Points)}, nil
}
