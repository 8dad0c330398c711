package planner

import (
	"fmt"
	"sort"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// Violation is one failed check against a plan. Step is the index of the
// offending step, or -1 for plan-level problems such as uncovered cells.
type Violation struct {
	Step   int    `json:"step"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	if v.Step < 0 {
		return v.Reason
	}
	return fmt.Sprintf("step %d: %s", v.Step, v.Reason)
}

// ValidateRectanglePlan replays the placement rules against a finished
// plan and returns every violation found. For each step the legality
// predicate that produced it is re-evaluated with the pre-generated set as
// generated context and the union of all earlier steps as selected cells,
// so a freshly created plan always validates clean. The check is
// exhaustive by design: it is primarily a debugging and testing aid, and
// it works equally on decoded or hand-edited plans.
func ValidateRectanglePlan(plan *RectanglePlan) []Violation {
	var violations []Violation
	if err := plan.Bounds.Validate(); err != nil {
		return []Violation{{Step: -1, Reason: err.Error()}}
	}

	pre := plan.PreGenerated
	if pre == nil {
		pre = grid.PointSet{}
	}

	covered := grid.PointSet{}
	selected := grid.PointSet{}
	for i, step := range plan.Steps {
		for _, q := range step.Quadrants {
			if covered.Has(q) {
				violations = append(violations, Violation{Step: i,
					Reason: fmt.Sprintf("quadrant %s covered more than once", q)})
			}
			covered.Add(q)
			if !plan.Bounds.Contains(q) {
				violations = append(violations, Violation{Step: i,
					Reason: fmt.Sprintf("quadrant %s outside bounds %s", q, plan.Bounds)})
			}
			if pre.Has(q) {
				violations = append(violations, Violation{Step: i,
					Reason: fmt.Sprintf("quadrant %s was already generated", q)})
			}
		}

		anchor, shapeErr := stepAnchor(step.Quadrants, step.Type)
		if shapeErr != "" {
			violations = append(violations, Violation{Step: i, Reason: shapeErr})
		} else {
			switch step.Type {
			case Step2x2:
				if !canPlace2x2(anchor, plan.Bounds, pre, selected) {
					violations = append(violations, Violation{Step: i,
						Reason: fmt.Sprintf("2x2 at %s violates the open-air rule", anchor)})
				}
			case Step2x1:
				if !canPlaceHorizontalPair(anchor, plan.Bounds, pre, selected) {
					violations = append(violations, Violation{Step: i,
						Reason: fmt.Sprintf("2x1 at %s violates the long-side context rule", anchor)})
				}
			case Step1x2:
				if !canPlaceVerticalPair(anchor, plan.Bounds, pre, selected) {
					violations = append(violations, Violation{Step: i,
						Reason: fmt.Sprintf("1x2 at %s violates the long-side context rule", anchor)})
				}
			case Step1x1:
				// Singles carry no adjacency precondition.
			}
		}

		for _, q := range step.Quadrants {
			selected.Add(q)
		}
	}

	violations = append(violations, coverageViolations(plan.Bounds, pre, covered)...)
	return violations
}

// ValidateStripPlan checks a strip plan: a legal frontier, an empty strip
// interior, well-formed step shapes and statuses, and exact coverage. The
// depth patterns are positional rather than predicate-driven, so no
// per-step placement replay applies beyond shape well-formedness.
func ValidateStripPlan(plan *StripPlan) []Violation {
	var violations []Violation
	if err := plan.Bounds.Validate(); err != nil {
		return []Violation{{Step: -1, Reason: err.Error()}}
	}
	if !plan.Edge.Valid() {
		return []Violation{{Step: -1, Reason: fmt.Sprintf("unknown edge %q", plan.Edge)}}
	}

	pre := plan.PreGenerated
	if pre == nil {
		pre = grid.PointSet{}
	}

	if _, ok := EdgeFrontier(plan.Bounds, plan.Edge, pre); !ok {
		violations = append(violations, Violation{Step: -1,
			Reason: fmt.Sprintf("%s side of %s is not a fully generated frontier", plan.Edge, plan.Bounds)})
	}
	for _, p := range plan.Bounds.AllPoints() {
		if pre.Has(p) {
			violations = append(violations, Violation{Step: -1,
				Reason: fmt.Sprintf("quadrant %s inside the strip was already generated", p)})
		}
	}

	covered := grid.PointSet{}
	for i, step := range plan.Steps {
		if !step.Status.Valid() {
			violations = append(violations, Violation{Step: i,
				Reason: fmt.Sprintf("unknown step status %q", step.Status)})
		}
		if _, shapeErr := stepAnchor(step.Quadrants, step.Type); shapeErr != "" {
			violations = append(violations, Violation{Step: i, Reason: shapeErr})
		}
		for _, q := range step.Quadrants {
			if covered.Has(q) {
				violations = append(violations, Violation{Step: i,
					Reason: fmt.Sprintf("quadrant %s covered more than once", q)})
			}
			covered.Add(q)
			if !plan.Bounds.Contains(q) {
				violations = append(violations, Violation{Step: i,
					Reason: fmt.Sprintf("quadrant %s outside bounds %s", q, plan.Bounds)})
			}
		}
	}

	violations = append(violations, coverageViolations(plan.Bounds, pre, covered)...)
	return violations
}

// coverageViolations reports every cell of bounds that is neither
// pre-generated nor covered by a step.
func coverageViolations(bounds grid.RectBounds, pre, covered grid.PointSet) []Violation {
	var violations []Violation
	for _, p := range bounds.AllPoints() {
		if !pre.Has(p) && !covered.Has(p) {
			violations = append(violations, Violation{Step: -1,
				Reason: fmt.Sprintf("quadrant %s left uncovered", p)})
		}
	}
	return violations
}

// stepAnchor verifies that the quadrants form exactly the shape named by
// the step type and returns the shape's anchor (top-left for 2x2, left for
// 2x1, top for 1x2). An empty string means the shape is well-formed.
func stepAnchor(quadrants []grid.Point, t StepType) (grid.Point, string) {
	if len(quadrants) == 0 {
		return grid.Point{}, "step has no quadrants"
	}

	anchor := quadrants[0]
	for _, q := range quadrants[1:] {
		if q.X < anchor.X {
			anchor.X = q.X
		}
		if q.Y < anchor.Y {
			anchor.Y = q.Y
		}
	}

	var want []grid.Point
	switch t {
	case Step2x2:
		want = grid.Quadrants2x2(anchor)
	case Step2x1:
		want = []grid.Point{anchor, {X: anchor.X + 1, Y: anchor.Y}}
	case Step1x2:
		want = []grid.Point{anchor, {X: anchor.X, Y: anchor.Y + 1}}
	case Step1x1:
		want = []grid.Point{anchor}
	default:
		return grid.Point{}, fmt.Sprintf("unknown step type %q", t)
	}

	if !samePoints(quadrants, want) {
		return grid.Point{}, fmt.Sprintf("quadrants %v do not form a %s shape", quadrants, t)
	}
	return anchor, ""
}

func samePoints(a, b []grid.Point) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]grid.Point(nil), a...)
	bs := append([]grid.Point(nil), b...)
	less := func(s []grid.Point) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].Y != s[j].Y {
				return s[i].Y < s[j].Y
			}
			return s[i].X < s[j].X
		}
	}
	sort.Slice(as, less(as))
	sort.Slice(bs, less(bs))
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
