package planner

import "github.com/danieljhkim/tileplan/internal/grid"

// RectanglePlan is a complete generation plan for a rectangular region.
// PreGenerated is the snapshot of quadrants that were already generated
// before planning began, kept so validation and replay can distinguish
// pre-existing context from newly planned work.
type RectanglePlan struct {
	Bounds       grid.RectBounds
	Steps        []GenerationStep
	PreGenerated grid.PointSet
}

// Covers returns the set of quadrants scheduled by the plan's steps.
func (p *RectanglePlan) Covers() grid.PointSet {
	covered := grid.PointSet{}
	for _, step := range p.Steps {
		for _, q := range step.Quadrants {
			covered.Add(q)
		}
	}
	return covered
}

// StripPlan is a generation plan for a strip-shaped expansion of an
// existing region. Edge identifies the side of the existing region the
// expansion proceeds from; each step carries a status so long-running
// incremental expansion can survive executor failures mid-plan.
type StripPlan struct {
	Bounds       grid.RectBounds
	Edge         Edge
	Steps        []StripStep
	PreGenerated grid.PointSet
}

// Covers returns the set of quadrants scheduled by the plan's steps.
func (p *StripPlan) Covers() grid.PointSet {
	covered := grid.PointSet{}
	for _, step := range p.Steps {
		for _, q := range step.Quadrants {
			covered.Add(q)
		}
	}
	return covered
}
