package planner

import "github.com/danieljhkim/tileplan/internal/grid"

// Summary is a display-oriented digest of a plan.
type Summary struct {
	Bounds         string           `json:"bounds"`
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	PreGenerated   int              `json:"pre_generated"`
	TotalSteps     int              `json:"total_steps"`
	TotalQuadrants int              `json:"total_quadrants"`
	StepsByType    map[StepType]int `json:"steps_by_type"`
}

// SummarizeRectangle builds a Summary for a rectangle plan.
func SummarizeRectangle(p *RectanglePlan) Summary {
	s := newSummary(p.Bounds, p.PreGenerated)
	for _, step := range p.Steps {
		s.count(step.Type, len(step.Quadrants))
	}
	return s
}

// SummarizeStrip builds a Summary for a strip plan.
func SummarizeStrip(p *StripPlan) Summary {
	s := newSummary(p.Bounds, p.PreGenerated)
	for _, step := range p.Steps {
		s.count(step.Type, len(step.Quadrants))
	}
	return s
}

func newSummary(bounds grid.RectBounds, pre grid.PointSet) Summary {
	return Summary{
		Bounds:       bounds.String(),
		Width:        bounds.Width(),
		Height:       bounds.Height(),
		PreGenerated: len(pre),
		StepsByType:  make(map[StepType]int),
	}
}

func (s *Summary) count(t StepType, quadrants int) {
	s.TotalSteps++
	s.TotalQuadrants += quadrants
	s.StepsByType[t]++
}
