package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/danieljhkim/tileplan/internal/hash"
	"github.com/danieljhkim/tileplan/internal/planfile"
	"github.com/danieljhkim/tileplan/internal/planner"
)

// ValidatePlan loads a stored plan document, replays the placement rules
// against its recorded snapshot, and reports whether the surrounding
// world has changed since it was planned.
func (e *Engine) ValidatePlan(ctx context.Context, req ValidateRequest) (*ValidateResult, error) {
	doc, err := planfile.Load(req.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, req.Path)
		}
		return nil, err
	}

	result := &ValidateResult{Document: doc}
	switch doc.Kind {
	case planfile.KindRectangle:
		result.Violations = planner.ValidateRectanglePlan(doc.Rectangle)
	case planfile.KindStrip:
		result.Violations = planner.ValidateStripPlan(doc.Strip)
	}

	bounds, err := doc.Bounds()
	if err != nil {
		return nil, err
	}
	current, err := e.snapshotAround(ctx, bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to load generated quadrants: %w", err)
	}
	result.Stale = hash.Fingerprint(current) != doc.SnapshotFingerprint

	e.log.Info("validated plan",
		zap.String("path", req.Path),
		zap.String("kind", doc.Kind),
		zap.Int("violations", len(result.Violations)),
		zap.Bool("stale", result.Stale))
	return result, nil
}
