package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/tileplan/internal/planfile"
	"github.com/danieljhkim/tileplan/internal/planner"
)

// SetStepStatus moves one strip step through its lifecycle and persists
// the document. Completing a step also records its quadrants in the
// ledger, so later plans see them as generated.
func (e *Engine) SetStepStatus(ctx context.Context, req StepStatusRequest) (*StepStatusResult, error) {
	status := planner.StepStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("unknown step status %q", req.Status)
	}

	doc, err := planfile.UpdateStepStatus(req.Path, req.Step, status)
	if err != nil {
		return nil, err
	}

	result := &StepStatusResult{Document: doc}
	if status == planner.StatusDone {
		id, err := e.store.MarkGenerated(ctx, doc.Strip.Steps[req.Step].Quadrants)
		if err != nil {
			return nil, fmt.Errorf("failed to record completed step: %w", err)
		}
		result.GenerationID = id
	}

	e.log.Info("updated step status",
		zap.String("path", req.Path),
		zap.Int("step", req.Step),
		zap.String("status", string(status)))
	return result, nil
}
