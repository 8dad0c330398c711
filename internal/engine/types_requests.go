package engine

import "github.com/danieljhkim/tileplan/internal/grid"

// PlanRectangleRequest represents a request to plan a rectangular region.
type PlanRectangleRequest struct {
	// Bounds is the region to plan, top-left to bottom-right inclusive.
	Bounds grid.RectBounds

	// DryRun computes the plan without writing a plan document.
	DryRun bool
}

// PlanStripRequest represents a request to plan an expansion strip.
type PlanStripRequest struct {
	// Bounds is the strip to plan.
	Bounds grid.RectBounds

	// Edge names the side of the strip that touches generated content
	// ("top", "bottom", "left", "right"). Empty means detect it.
	Edge string

	// DryRun computes the plan without writing a plan document.
	DryRun bool
}

// ValidateRequest represents a request to re-check a stored plan.
type ValidateRequest struct {
	// Path is the plan document to validate.
	Path string
}

// StatusRequest represents a request for generation status.
type StatusRequest struct {
	// Bounds restricts the report to a region; nil means everything.
	Bounds *grid.RectBounds
}

// MarkRequest represents a request to record quadrants as generated.
type MarkRequest struct {
	Points []grid.Point
}

// StepStatusRequest represents a request to move one strip step through
// its lifecycle.
type StepStatusRequest struct {
	// Path is the strip plan document.
	Path string

	// Step is the zero-based step index.
	Step int

	// Status is the new status for the step.
	Status string
}
