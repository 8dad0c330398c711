package planner

import (
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// The wire form of a plan is stable and round-trippable: decoding an
// encoded plan and re-validating it reproduces the identical verdict.
// Points serialize as [x,y] pairs; pre_generated is emitted in row-major
// order so encoding is deterministic.

type boundsJSON struct {
	TopLeft     []int `json:"top_left"`
	BottomRight []int `json:"bottom_right"`
}

type stepJSON struct {
	Quadrants [][]int `json:"quadrants"`
	Type      string  `json:"type"`
	Status    string  `json:"status,omitempty"`
}

type rectanglePlanJSON struct {
	Bounds       boundsJSON `json:"bounds"`
	Steps        []stepJSON `json:"steps"`
	PreGenerated [][]int    `json:"pre_generated"`
}

type stripPlanJSON struct {
	Bounds       boundsJSON `json:"bounds"`
	Edge         string     `json:"edge"`
	Steps        []stepJSON `json:"steps"`
	PreGenerated [][]int    `json:"pre_generated"`
}

// MarshalJSON implements json.Marshaler.
func (p RectanglePlan) MarshalJSON() ([]byte, error) {
	out := rectanglePlanJSON{
		Bounds:       encodeBounds(p.Bounds),
		Steps:        make([]stepJSON, 0, len(p.Steps)),
		PreGenerated: encodePointSet(p.PreGenerated),
	}
	for _, step := range p.Steps {
		out.Steps = append(out.Steps, stepJSON{
			Quadrants: encodePoints(step.Quadrants),
			Type:      string(step.Type),
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Structural problems (missing
// corners, coordinate pairs of the wrong arity) are rejected; rule
// violations are left for the validator to report.
func (p *RectanglePlan) UnmarshalJSON(data []byte) error {
	var in rectanglePlanJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	bounds, err := decodeBounds(in.Bounds)
	if err != nil {
		return err
	}
	pre, err := decodePointSet(in.PreGenerated)
	if err != nil {
		return err
	}

	steps := make([]GenerationStep, 0, len(in.Steps))
	for i, s := range in.Steps {
		quadrants, err := decodePoints(s.Quadrants)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, GenerationStep{Quadrants: quadrants, Type: StepType(s.Type)})
	}

	p.Bounds = bounds
	p.Steps = steps
	p.PreGenerated = pre
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p StripPlan) MarshalJSON() ([]byte, error) {
	out := stripPlanJSON{
		Bounds:       encodeBounds(p.Bounds),
		Edge:         string(p.Edge),
		Steps:        make([]stepJSON, 0, len(p.Steps)),
		PreGenerated: encodePointSet(p.PreGenerated),
	}
	for _, step := range p.Steps {
		out.Steps = append(out.Steps, stepJSON{
			Quadrants: encodePoints(step.Quadrants),
			Type:      string(step.Type),
			Status:    string(step.Status),
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. A step with no status decodes
// as pending.
func (p *StripPlan) UnmarshalJSON(data []byte) error {
	var in stripPlanJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	bounds, err := decodeBounds(in.Bounds)
	if err != nil {
		return err
	}
	pre, err := decodePointSet(in.PreGenerated)
	if err != nil {
		return err
	}

	steps := make([]StripStep, 0, len(in.Steps))
	for i, s := range in.Steps {
		quadrants, err := decodePoints(s.Quadrants)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		status := StepStatus(s.Status)
		if s.Status == "" {
			status = StatusPending
		}
		steps = append(steps, StripStep{
			GenerationStep: GenerationStep{Quadrants: quadrants, Type: StepType(s.Type)},
			Status:         status,
		})
	}

	p.Bounds = bounds
	p.Edge = Edge(in.Edge)
	p.Steps = steps
	p.PreGenerated = pre
	return nil
}

func encodeBounds(b grid.RectBounds) boundsJSON {
	return boundsJSON{
		TopLeft:     []int{b.TopLeft.X, b.TopLeft.Y},
		BottomRight: []int{b.BottomRight.X, b.BottomRight.Y},
	}
}

func decodeBounds(b boundsJSON) (grid.RectBounds, error) {
	tl, err := decodePoint(b.TopLeft)
	if err != nil {
		return grid.RectBounds{}, fmt.Errorf("bounds top_left: %w", err)
	}
	br, err := decodePoint(b.BottomRight)
	if err != nil {
		return grid.RectBounds{}, fmt.Errorf("bounds bottom_right: %w", err)
	}
	return grid.RectBounds{TopLeft: tl, BottomRight: br}, nil
}

func encodePoints(points []grid.Point) [][]int {
	out := make([][]int, 0, len(points))
	for _, p := range points {
		out = append(out, []int{p.X, p.Y})
	}
	return out
}

func encodePointSet(s grid.PointSet) [][]int {
	return encodePoints(s.Sorted())
}

func decodePoint(pair []int) (grid.Point, error) {
	if len(pair) != 2 {
		return grid.Point{}, fmt.Errorf("coordinate pair %v must have exactly 2 components", pair)
	}
	return grid.Point{X: pair[0], Y: pair[1]}, nil
}

func decodePoints(pairs [][]int) ([]grid.Point, error) {
	points := make([]grid.Point, 0, len(pairs))
	for _, pair := range pairs {
		p, err := decodePoint(pair)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func decodePointSet(pairs [][]int) (grid.PointSet, error) {
	points, err := decodePoints(pairs)
	if err != nil {
		return nil, err
	}
	return grid.NewPointSet(points...), nil
}
