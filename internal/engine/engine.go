// Package engine provides the core business logic for tileplan operations.
//
// The engine package acts as the orchestration layer between CLI commands
// and the pure planner. It loads the generated-quadrant snapshot around a
// region from the store, runs the planner, persists plan documents, and
// writes executed steps back to the quadrant ledger.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - PlanRectangle/PlanStrip: Produce and persist plans
//   - ValidatePlan: Re-check a stored plan against the current world
//   - Mark/SetStepStatus: Record generation progress
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/danieljhkim/tileplan/internal/clock"
	"github.com/danieljhkim/tileplan/internal/config"
	"github.com/danieljhkim/tileplan/internal/grid"
	"github.com/danieljhkim/tileplan/internal/store"
)

// snapshotMargin is how far beyond a region's bounds the planner's
// placement rules can look: one quadrant for perimeter rings and pair
// neighbors, one more so edge detection sees a full frontier.
const snapshotMargin = 2

// Engine orchestrates all tileplan operations.
// It is the main API surface called by the CLI.
type Engine struct {
	store store.Store
	log   *zap.Logger
	clock clock.Clock
	paths *config.Paths
}

// New creates a new Engine with the given dependencies.
func New(st store.Store, log *zap.Logger, clk clock.Clock, paths *config.Paths) *Engine {
	return &Engine{
		store: st,
		log:   log,
		clock: clk,
		paths: paths,
	}
}

// snapshotAround loads every generated quadrant near enough to bounds to
// influence planning decisions inside it.
func (e *Engine) snapshotAround(ctx context.Context, bounds grid.RectBounds) (grid.PointSet, error) {
	return e.store.GeneratedInRange(ctx, bounds.Expand(snapshotMargin))
}
