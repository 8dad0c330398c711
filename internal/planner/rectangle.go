package planner

import (
	"fmt"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// CreateRectanglePlan builds a plan that fills every quadrant of bounds not
// already present in generated. The generated set may contain points
// anywhere, inside or outside the rectangle; points inside are never
// re-scheduled, points outside act as seam-avoidance context.
//
// Three greedy passes run in fixed row-major scan order (y outer, x inner),
// each pass only considering cells not claimed by an earlier pass:
//
//  1. 2x2 tiles, placeable only when the 12-cell perimeter ring holds no
//     generated quadrant. Mixing partial context on multiple sides of a
//     four-quadrant block produces visible seams, so tiles go down in open
//     air. Cells selected earlier in the same plan do not count as context,
//     which lets tiles pack densely through empty territory.
//  2. 2x1/1x2 pairs, placeable when each long side is uniformly generated
//     or uniformly empty and neither short-end neighbor is generated. One
//     consistent side of context, clean on the short ends.
//  3. 1x1 singles for everything left. No precondition: singles are the
//     fallback that always succeeds, scheduled last because they see the
//     least surrounding context.
func CreateRectanglePlan(bounds grid.RectBounds, generated grid.PointSet) (*RectanglePlan, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, err)
	}
	if generated == nil {
		generated = grid.PointSet{}
	}

	selected := grid.PointSet{}
	var steps []GenerationStep

	// Pass 1: 2x2 tiles. Anchors stop one short of each far boundary.
	for y := bounds.TopLeft.Y; y < bounds.BottomRight.Y; y++ {
		for x := bounds.TopLeft.X; x < bounds.BottomRight.X; x++ {
			anchor := grid.Point{X: x, Y: y}
			if !canPlace2x2(anchor, bounds, generated, selected) {
				continue
			}
			quadrants := grid.Quadrants2x2(anchor)
			steps = append(steps, newStep(Step2x2, quadrants...))
			for _, q := range quadrants {
				selected.Add(q)
			}
		}
	}

	// Pass 2: pairs. Horizontal is tried before vertical at each anchor.
	for y := bounds.TopLeft.Y; y <= bounds.BottomRight.Y; y++ {
		for x := bounds.TopLeft.X; x <= bounds.BottomRight.X; x++ {
			p := grid.Point{X: x, Y: y}
			if canPlaceHorizontalPair(p, bounds, generated, selected) {
				right := grid.Point{X: x + 1, Y: y}
				steps = append(steps, newStep(Step2x1, p, right))
				selected.Add(p)
				selected.Add(right)
				continue
			}
			if canPlaceVerticalPair(p, bounds, generated, selected) {
				bottom := grid.Point{X: x, Y: y + 1}
				steps = append(steps, newStep(Step1x2, p, bottom))
				selected.Add(p)
				selected.Add(bottom)
			}
		}
	}

	// Pass 3: singles for every remaining cell.
	for _, p := range bounds.AllPoints() {
		if StateOf(p, generated, selected) != StateEmpty {
			continue
		}
		steps = append(steps, newStep(Step1x1, p))
		selected.Add(p)
	}

	return &RectanglePlan{
		Bounds:       bounds,
		Steps:        steps,
		PreGenerated: generated.Clone(),
	}, nil
}

// canPlace2x2 checks the 2x2 placement rule: all four cells inside bounds
// and unclaimed, and no generated quadrant anywhere on the perimeter ring.
// Cells selected by earlier steps may sit on the ring.
func canPlace2x2(anchor grid.Point, bounds grid.RectBounds, generated, selected grid.PointSet) bool {
	for _, q := range grid.Quadrants2x2(anchor) {
		if !bounds.Contains(q) || generated.Has(q) || selected.Has(q) {
			return false
		}
	}
	for _, n := range grid.Neighbors2x2(anchor) {
		if generated.Has(n) {
			return false
		}
	}
	return true
}

// canPlaceHorizontalPair checks the 2x1 rule for the pair (left, left+1).
// The long sides are the rows above and below; the transverse sides are the
// cells just left and right of the pair.
func canPlaceHorizontalPair(left grid.Point, bounds grid.RectBounds, generated, selected grid.PointSet) bool {
	right := grid.Point{X: left.X + 1, Y: left.Y}
	for _, q := range []grid.Point{left, right} {
		if !bounds.Contains(q) || generated.Has(q) || selected.Has(q) {
			return false
		}
	}

	// Short ends must be free of generated context.
	if generated.Has(grid.Point{X: left.X - 1, Y: left.Y}) {
		return false
	}
	if generated.Has(grid.Point{X: right.X + 1, Y: right.Y}) {
		return false
	}

	// Each long side must be uniform: both neighbors generated or neither.
	// Both sides fully generated is legal (bridging between two regions).
	topUniform := generated.Has(grid.Point{X: left.X, Y: left.Y - 1}) ==
		generated.Has(grid.Point{X: right.X, Y: right.Y - 1})
	bottomUniform := generated.Has(grid.Point{X: left.X, Y: left.Y + 1}) ==
		generated.Has(grid.Point{X: right.X, Y: right.Y + 1})
	return topUniform && bottomUniform
}

// canPlaceVerticalPair checks the 1x2 rule for the pair (top, top+(0,1)).
// The long sides are the columns left and right; the transverse sides are
// the cells just above and below the pair.
func canPlaceVerticalPair(top grid.Point, bounds grid.RectBounds, generated, selected grid.PointSet) bool {
	bottom := grid.Point{X: top.X, Y: top.Y + 1}
	for _, q := range []grid.Point{top, bottom} {
		if !bounds.Contains(q) || generated.Has(q) || selected.Has(q) {
			return false
		}
	}

	if generated.Has(grid.Point{X: top.X, Y: top.Y - 1}) {
		return false
	}
	if generated.Has(grid.Point{X: bottom.X, Y: bottom.Y + 1}) {
		return false
	}

	leftUniform := generated.Has(grid.Point{X: top.X - 1, Y: top.Y}) ==
		generated.Has(grid.Point{X: bottom.X - 1, Y: bottom.Y})
	rightUniform := generated.Has(grid.Point{X: top.X + 1, Y: top.Y}) ==
		generated.Has(grid.Point{X: bottom.X + 1, Y: bottom.Y})
	return leftUniform && rightUniform
}
