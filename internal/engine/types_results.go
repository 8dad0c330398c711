package engine

import (
	"github.com/danieljhkim/tileplan/internal/grid"
	"github.com/danieljhkim/tileplan/internal/planfile"
	"github.com/danieljhkim/tileplan/internal/planner"
)

// PlanRectangleResult represents the result of planning a rectangle.
type PlanRectangleResult struct {
	// Document wraps the computed plan.
	Document *planfile.Document

	// Path is where the document was written (empty on dry runs).
	Path string

	// Summary aggregates the plan's step counts.
	Summary planner.Summary
}

// PlanStripResult represents the result of planning a strip.
type PlanStripResult struct {
	// Document wraps the computed plan.
	Document *planfile.Document

	// Path is where the document was written (empty on dry runs).
	Path string

	// Edge is the generation edge that was used, detected or given.
	Edge planner.Edge

	// Summary aggregates the plan's step counts.
	Summary planner.Summary
}

// ValidateResult represents the outcome of re-checking a stored plan.
type ValidateResult struct {
	// Document is the loaded plan document.
	Document *planfile.Document

	// Violations lists every rule the plan breaks; empty means clean.
	Violations []planner.Violation

	// Stale indicates the generated quadrants around the region changed
	// since the plan was computed. A stale plan's violations are checked
	// against its recorded snapshot, not the current world.
	Stale bool
}

// StatusResult represents the current generation status.
type StatusResult struct {
	// Bounds is the reported region, if one was requested.
	Bounds *grid.RectBounds

	// Generated is how many quadrants in scope are generated.
	Generated int

	// Total is the quadrant count of the region; zero when unbounded.
	Total int

	// Points lists the generated quadrants in row-major order.
	Points []grid.Point
}

// MarkResult represents the result of marking quadrants generated.
type MarkResult struct {
	// GenerationID is the id the batch was recorded under.
	GenerationID string

	// Marked is how many quadrants were recorded.
	Marked int
}

// StepStatusResult represents the result of a step status change.
type StepStatusResult struct {
	// Document is the updated plan document.
	Document *planfile.Document

	// GenerationID is set when a step completed and its quadrants were
	// written to the ledger.
	GenerationID string
}
