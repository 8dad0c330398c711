package planner

import (
	"fmt"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// CreateStripPlan builds a plan that expands the generated region through
// the strip bounds, starting from the given generation edge. The edge's
// exterior neighbors must all be generated and the strip interior must be
// empty; both are verified before any planning work begins.
//
// The step pattern depends on the strip depth:
//   - depth 1: pairs laid along the strip, singles filling the ends
//   - depth 2: 2x2 tiles straddling the strip with the frontier on one long
//     side, pair fallback on leftover lines
//   - depth 3+: an innermost depth-2 sub-strip against the frontier, then
//     the far remainder handed to the rectangle planner with the inner
//     strip counted as generated
//
// Every step starts out StatusPending; the planner never executes anything.
func CreateStripPlan(bounds grid.RectBounds, edge Edge, generated grid.PointSet) (*StripPlan, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, err)
	}
	if !edge.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdge, edge)
	}
	if generated == nil {
		generated = grid.PointSet{}
	}
	if _, ok := EdgeFrontier(bounds, edge, generated); !ok {
		return nil, fmt.Errorf("%w: %s side of %s is not fully generated", ErrNoEdge, edge, bounds)
	}
	for _, p := range bounds.AllPoints() {
		if generated.Has(p) {
			return nil, fmt.Errorf("%w: %s inside %s", ErrStripNotEmpty, p, bounds)
		}
	}

	var steps []StripStep
	var err error
	switch depth := StripDepth(bounds, edge); {
	case depth == 1:
		steps = depth1Steps(bounds, edge, generated)
	case depth == 2:
		steps = depth2Steps(bounds, edge, generated)
	default:
		steps, err = depth3PlusSteps(bounds, edge, generated)
		if err != nil {
			return nil, err
		}
	}

	return &StripPlan{
		Bounds:       bounds,
		Edge:         edge,
		Steps:        steps,
		PreGenerated: generated.Clone(),
	}, nil
}

// depth1Steps lays pairs along a one-quadrant-deep strip. The pair rule's
// transverse condition applies at the strip ends: an end with a generated
// neighbor just beyond it is left to the single-quadrant fill.
func depth1Steps(bounds grid.RectBounds, edge Edge, generated grid.PointSet) []StripStep {
	var steps []StripStep

	if edge.horizontal() {
		y := bounds.TopLeft.Y
		first, last := bounds.TopLeft.X, bounds.BottomRight.X
		start, end := first, last
		if generated.Has(grid.Point{X: first - 1, Y: y}) {
			start++
		}
		if generated.Has(grid.Point{X: last + 1, Y: y}) {
			end--
		}

		covered := make(map[int]bool)
		for x := start; x+1 <= end; x += 2 {
			steps = append(steps, newStripStep(Step2x1,
				grid.Point{X: x, Y: y}, grid.Point{X: x + 1, Y: y}))
			covered[x] = true
			covered[x+1] = true
		}
		for x := first; x <= last; x++ {
			if !covered[x] {
				steps = append(steps, newStripStep(Step1x1, grid.Point{X: x, Y: y}))
			}
		}
		return steps
	}

	x := bounds.TopLeft.X
	first, last := bounds.TopLeft.Y, bounds.BottomRight.Y
	start, end := first, last
	if generated.Has(grid.Point{X: x, Y: first - 1}) {
		start++
	}
	if generated.Has(grid.Point{X: x, Y: last + 1}) {
		end--
	}

	covered := make(map[int]bool)
	for y := start; y+1 <= end; y += 2 {
		steps = append(steps, newStripStep(Step1x2,
			grid.Point{X: x, Y: y}, grid.Point{X: x, Y: y + 1}))
		covered[y] = true
		covered[y+1] = true
	}
	for y := first; y <= last; y++ {
		if !covered[y] {
			steps = append(steps, newStripStep(Step1x1, grid.Point{X: x, Y: y}))
		}
	}
	return steps
}

// depth2Steps tiles a two-quadrant-deep strip with 2x2 blocks straddling
// both lines: one long side sees the frontier, the far side is open air.
// Leftover lines (odd strip length, or ends inset away from generated
// side neighbors) fall back to pairs spanning the strip.
func depth2Steps(bounds grid.RectBounds, edge Edge, generated grid.PointSet) []StripStep {
	var steps []StripStep

	if edge.horizontal() {
		yTop, yBottom := bounds.TopLeft.Y, bounds.BottomRight.Y
		first, last := bounds.TopLeft.X, bounds.BottomRight.X

		start, end := first, last
		if generated.Has(grid.Point{X: first - 1, Y: yTop}) || generated.Has(grid.Point{X: first - 1, Y: yBottom}) {
			start++
		}
		if generated.Has(grid.Point{X: last + 1, Y: yTop}) || generated.Has(grid.Point{X: last + 1, Y: yBottom}) {
			end--
		}

		covered := make(map[int]bool)
		for x := start; x+1 <= end; x += 2 {
			steps = append(steps, newStripStep(Step2x2, grid.Quadrants2x2(grid.Point{X: x, Y: yTop})...))
			covered[x] = true
			covered[x+1] = true
		}
		for x := first; x <= last; x++ {
			if !covered[x] {
				steps = append(steps, newStripStep(Step1x2,
					grid.Point{X: x, Y: yTop}, grid.Point{X: x, Y: yBottom}))
			}
		}
		return steps
	}

	xLeft, xRight := bounds.TopLeft.X, bounds.BottomRight.X
	first, last := bounds.TopLeft.Y, bounds.BottomRight.Y

	start, end := first, last
	if generated.Has(grid.Point{X: xLeft, Y: first - 1}) || generated.Has(grid.Point{X: xRight, Y: first - 1}) {
		start++
	}
	if generated.Has(grid.Point{X: xLeft, Y: last + 1}) || generated.Has(grid.Point{X: xRight, Y: last + 1}) {
		end--
	}

	covered := make(map[int]bool)
	for y := start; y+1 <= end; y += 2 {
		steps = append(steps, newStripStep(Step2x2, grid.Quadrants2x2(grid.Point{X: xLeft, Y: y})...))
		covered[y] = true
		covered[y+1] = true
	}
	for y := first; y <= last; y++ {
		if !covered[y] {
			steps = append(steps, newStripStep(Step2x1,
				grid.Point{X: xLeft, Y: y}, grid.Point{X: xRight, Y: y}))
		}
	}
	return steps
}

// depth3PlusSteps decomposes a deep strip into an innermost depth-2
// sub-strip that consumes the frontier context, then fills the far
// remainder as a fresh rectangle problem. Once depth grows past two, the
// "adjacent to existing content" advantage no longer reaches the far
// lines, so they gain nothing from strip-specific patterns.
func depth3PlusSteps(bounds grid.RectBounds, edge Edge, generated grid.PointSet) ([]StripStep, error) {
	var inner, far grid.RectBounds
	switch edge {
	case EdgeTop:
		inner = grid.RectBounds{
			TopLeft:     bounds.TopLeft,
			BottomRight: grid.Point{X: bounds.BottomRight.X, Y: bounds.TopLeft.Y + 1},
		}
		far = grid.RectBounds{
			TopLeft:     grid.Point{X: bounds.TopLeft.X, Y: bounds.TopLeft.Y + 2},
			BottomRight: bounds.BottomRight,
		}
	case EdgeBottom:
		inner = grid.RectBounds{
			TopLeft:     grid.Point{X: bounds.TopLeft.X, Y: bounds.BottomRight.Y - 1},
			BottomRight: bounds.BottomRight,
		}
		far = grid.RectBounds{
			TopLeft:     bounds.TopLeft,
			BottomRight: grid.Point{X: bounds.BottomRight.X, Y: bounds.BottomRight.Y - 2},
		}
	case EdgeLeft:
		inner = grid.RectBounds{
			TopLeft:     bounds.TopLeft,
			BottomRight: grid.Point{X: bounds.TopLeft.X + 1, Y: bounds.BottomRight.Y},
		}
		far = grid.RectBounds{
			TopLeft:     grid.Point{X: bounds.TopLeft.X + 2, Y: bounds.TopLeft.Y},
			BottomRight: bounds.BottomRight,
		}
	case EdgeRight:
		inner = grid.RectBounds{
			TopLeft:     grid.Point{X: bounds.BottomRight.X - 1, Y: bounds.TopLeft.Y},
			BottomRight: bounds.BottomRight,
		}
		far = grid.RectBounds{
			TopLeft:     bounds.TopLeft,
			BottomRight: grid.Point{X: bounds.BottomRight.X - 2, Y: bounds.BottomRight.Y},
		}
	}

	steps := depth2Steps(inner, edge, generated)

	// By the time the far region is generated the inner strip exists, so it
	// counts as generated context for the rectangle fill.
	farGenerated := generated.Union(grid.NewPointSet(inner.AllPoints()...))

	rectPlan, err := CreateRectanglePlan(far, farGenerated)
	if err != nil {
		return nil, err
	}
	for _, rs := range rectPlan.Steps {
		steps = append(steps, StripStep{GenerationStep: rs, Status: StatusPending})
	}
	return steps, nil
}
