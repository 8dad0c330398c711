package planner

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// generatedRow returns the cells of a horizontal run, inclusive.
func generatedRow(y, x0, x1 int) []grid.Point {
	var points []grid.Point
	for x := x0; x <= x1; x++ {
		points = append(points, grid.Point{X: x, Y: y})
	}
	return points
}

func generatedCol(x, y0, y1 int) []grid.Point {
	var points []grid.Point
	for y := y0; y <= y1; y++ {
		points = append(points, grid.Point{X: x, Y: y})
	}
	return points
}

func stripStepTypes(steps []StripStep) []StepType {
	types := make([]StepType, 0, len(steps))
	for _, s := range steps {
		types = append(types, s.Type)
	}
	return types
}

func checkStripCoverage(t *testing.T, plan *StripPlan) {
	t.Helper()
	covered := grid.PointSet{}
	for i, step := range plan.Steps {
		for _, q := range step.Quadrants {
			if covered.Has(q) {
				t.Errorf("step %d re-covers quadrant %s", i, q)
			}
			covered.Add(q)
			if !plan.Bounds.Contains(q) {
				t.Errorf("step %d schedules %s outside the strip", i, q)
			}
		}
		if step.Status != StatusPending {
			t.Errorf("step %d status = %s, want pending", i, step.Status)
		}
	}
	for _, p := range plan.Bounds.AllPoints() {
		if !covered.Has(p) {
			t.Errorf("quadrant %s left uncovered", p)
		}
	}
	if !reflect.DeepEqual(plan.Covers(), covered) {
		t.Error("Covers() disagrees with the step quadrants")
	}
}

func TestFindGenerationEdge(t *testing.T) {
	tests := []struct {
		name      string
		bounds    grid.RectBounds
		generated []grid.Point
		want      Edge
		wantErr   bool
	}{
		{
			name:    "nothing generated",
			bounds:  grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 0}},
			wantErr: true,
		},
		{
			name:      "row above a wide strip",
			bounds:    grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 0}},
			generated: generatedRow(-1, 0, 4),
			want:      EdgeTop,
		},
		{
			name:      "row below a wide strip",
			bounds:    grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 1}},
			generated: generatedRow(2, 0, 4),
			want:      EdgeBottom,
		},
		{
			name:      "column left of a tall strip",
			bounds:    grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 0, Y: 4}},
			generated: generatedCol(-1, 0, 4),
			want:      EdgeLeft,
		},
		{
			name:      "column right of a tall strip",
			bounds:    grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 1, Y: 4}},
			generated: generatedCol(2, 0, 4),
			want:      EdgeRight,
		},
		{
			name:   "partial edge does not qualify",
			bounds: grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 0}},
			// One cell short of a full frontier: no silent sub-edge.
			generated: generatedRow(-1, 0, 3),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge, err := FindGenerationEdge(tt.bounds, grid.NewPointSet(tt.generated...))
			if tt.wantErr {
				if !errors.Is(err, ErrNoEdge) {
					t.Fatalf("error = %v, want ErrNoEdge", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindGenerationEdge returned error: %v", err)
			}
			if edge != tt.want {
				t.Errorf("FindGenerationEdge = %s, want %s", edge, tt.want)
			}
		})
	}
}

func TestExteriorNeighbors(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 2, Y: 1}}

	got := ExteriorNeighbors(bounds, EdgeTop)
	want := []grid.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top neighbors = %v, want %v", got, want)
	}

	got = ExteriorNeighbors(bounds, EdgeRight)
	want = []grid.Point{{X: 3, Y: 0}, {X: 3, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("right neighbors = %v, want %v", got, want)
	}
}

func TestStripDepth(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 5, Y: 2}}
	if d := StripDepth(bounds, EdgeTop); d != 3 {
		t.Errorf("depth from top = %d, want 3", d)
	}
	if d := StripDepth(bounds, EdgeLeft); d != 6 {
		t.Errorf("depth from left = %d, want 6", d)
	}
}

func TestCreateStripPlanDepth1(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 0}}
	generated := grid.NewPointSet(generatedRow(-1, 0, 4)...)

	plan, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step2x1, Step2x1, Step1x1}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	if plan.Steps[2].Quadrants[0] != (grid.Point{X: 4, Y: 0}) {
		t.Errorf("gap single = %v, want (4,0)", plan.Steps[2].Quadrants[0])
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth1TransverseOffset(t *testing.T) {
	// A generated quadrant just left of the strip start shifts the pair
	// pattern right by one; the offset cell becomes a gap single.
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 0}}
	generated := grid.NewPointSet(append(generatedRow(-1, 0, 4), grid.Point{X: -1, Y: 0})...)

	plan, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step2x1, Step2x1, Step1x1}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	wantFirst := []grid.Point{{X: 1, Y: 0}, {X: 2, Y: 0}}
	if !reflect.DeepEqual(plan.Steps[0].Quadrants, wantFirst) {
		t.Errorf("first pair = %v, want %v", plan.Steps[0].Quadrants, wantFirst)
	}
	if plan.Steps[2].Quadrants[0] != (grid.Point{X: 0, Y: 0}) {
		t.Errorf("gap single = %v, want (0,0)", plan.Steps[2].Quadrants[0])
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth1Vertical(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 0, Y: 3}}
	generated := grid.NewPointSet(generatedCol(-1, 0, 3)...)

	plan, err := CreateStripPlan(bounds, EdgeLeft, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step1x2, Step1x2}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth2(t *testing.T) {
	// Even length: 2x2 tiles straddle both rows end to end.
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 3, Y: 1}}
	generated := grid.NewPointSet(generatedRow(-1, 0, 3)...)

	plan, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step2x2, Step2x2}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth2OddLength(t *testing.T) {
	// Odd length: the leftover column falls back to a vertical pair.
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 1}}
	generated := grid.NewPointSet(generatedRow(-1, 0, 4)...)

	plan, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step2x2, Step2x2, Step1x2}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	wantPair := []grid.Point{{X: 4, Y: 0}, {X: 4, Y: 1}}
	if !reflect.DeepEqual(plan.Steps[2].Quadrants, wantPair) {
		t.Errorf("fallback pair = %v, want %v", plan.Steps[2].Quadrants, wantPair)
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth2SideNeighborInset(t *testing.T) {
	// Generated content past the strip end pushes the 2x2 run inward.
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 4, Y: 1}}
	generated := grid.NewPointSet(append(generatedRow(-1, 0, 4), grid.Point{X: 5, Y: 0}, grid.Point{X: 5, Y: 1})...)

	plan, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step2x2, Step2x2, Step1x2}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	wantPair := []grid.Point{{X: 4, Y: 0}, {X: 4, Y: 1}}
	if !reflect.DeepEqual(plan.Steps[2].Quadrants, wantPair) {
		t.Errorf("inset end pair = %v, want %v", plan.Steps[2].Quadrants, wantPair)
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth2VerticalEdge(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 1, Y: 3}}
	generated := grid.NewPointSet(generatedCol(-1, 0, 3)...)

	plan, err := CreateStripPlan(bounds, EdgeLeft, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	wantTypes := []StepType{Step2x2, Step2x2}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	checkStripCoverage(t, plan)
}

func TestCreateStripPlanDepth3Plus(t *testing.T) {
	// Depth 4 from the top: the first two rows are the depth-2 sub-strip
	// against the frontier, the far rows become a rectangle fill with the
	// inner strip counted as context.
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 5, Y: 3}}
	generated := grid.NewPointSet(generatedRow(-1, 0, 5)...)

	plan, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}

	wantTypes := []StepType{
		Step2x2, Step2x2, Step2x2,
		Step2x1, Step2x1, Step2x1,
		Step2x1, Step2x1, Step2x1,
	}
	if !reflect.DeepEqual(stripStepTypes(plan.Steps), wantTypes) {
		t.Fatalf("step types = %v, want %v", stripStepTypes(plan.Steps), wantTypes)
	}
	// The inner tiles straddle rows 0-1.
	for i := 0; i < 3; i++ {
		if y := plan.Steps[i].Quadrants[0].Y; y != 0 {
			t.Errorf("inner tile %d starts at y=%d, want 0", i, y)
		}
	}
	checkStripCoverage(t, plan)
	if vs := ValidateStripPlan(plan); len(vs) != 0 {
		t.Errorf("planner produced a plan it rejects: %v", vs)
	}
}

func TestCreateStripPlanDepth3PlusBottomEdge(t *testing.T) {
	// Expanding upward: inner rows hug the bottom frontier.
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 3, Y: 2}}
	generated := grid.NewPointSet(generatedRow(3, 0, 3)...)

	plan, err := CreateStripPlan(bounds, EdgeBottom, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	if len(plan.Steps) == 0 {
		t.Fatal("expected steps")
	}
	if y := plan.Steps[0].Quadrants[0].Y; y != 1 {
		t.Errorf("first inner tile starts at y=%d, want 1", y)
	}
	checkStripCoverage(t, plan)
	if vs := ValidateStripPlan(plan); len(vs) != 0 {
		t.Errorf("planner produced a plan it rejects: %v", vs)
	}
}

func TestCreateStripPlanErrors(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 3, Y: 0}}

	t.Run("no frontier", func(t *testing.T) {
		_, err := CreateStripPlan(bounds, EdgeTop, grid.PointSet{})
		if !errors.Is(err, ErrNoEdge) {
			t.Errorf("error = %v, want ErrNoEdge", err)
		}
	})

	t.Run("strip not empty", func(t *testing.T) {
		generated := grid.NewPointSet(append(generatedRow(-1, 0, 3), grid.Point{X: 1, Y: 0})...)
		_, err := CreateStripPlan(bounds, EdgeTop, generated)
		if !errors.Is(err, ErrStripNotEmpty) {
			t.Errorf("error = %v, want ErrStripNotEmpty", err)
		}
	})

	t.Run("invalid edge", func(t *testing.T) {
		_, err := CreateStripPlan(bounds, Edge("diagonal"), grid.PointSet{})
		if !errors.Is(err, ErrInvalidEdge) {
			t.Errorf("error = %v, want ErrInvalidEdge", err)
		}
	})

	t.Run("invalid bounds", func(t *testing.T) {
		bad := grid.RectBounds{TopLeft: grid.Point{X: 2, Y: 0}, BottomRight: grid.Point{X: 0, Y: 0}}
		_, err := CreateStripPlan(bad, EdgeTop, grid.PointSet{})
		if !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("error = %v, want ErrInvalidBounds", err)
		}
	})
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		input   string
		want    Edge
		wantErr bool
	}{
		{input: "top", want: EdgeTop},
		{input: "BOTTOM", want: EdgeBottom},
		{input: " left ", want: EdgeLeft},
		{input: "right", want: EdgeRight},
		{input: "diagonal", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseEdge(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidEdge) {
				t.Errorf("ParseEdge(%q) error = %v, want ErrInvalidEdge", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEdge(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEdge(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestValidateStripPlanDetectsTampering(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 3, Y: 1}}
	generated := grid.NewPointSet(generatedRow(-1, 0, 3)...)

	base := func(t *testing.T) *StripPlan {
		plan, err := CreateStripPlan(bounds, EdgeTop, generated)
		if err != nil {
			t.Fatalf("CreateStripPlan returned error: %v", err)
		}
		return plan
	}

	t.Run("clean plan validates", func(t *testing.T) {
		if vs := ValidateStripPlan(base(t)); len(vs) != 0 {
			t.Errorf("unexpected violations: %v", vs)
		}
	})

	t.Run("broken frontier", func(t *testing.T) {
		plan := base(t)
		plan.PreGenerated = grid.NewPointSet(generatedRow(-1, 0, 2)...)
		vs := ValidateStripPlan(plan)
		if len(vs) == 0 {
			t.Fatal("expected frontier violation")
		}
	})

	t.Run("bad status", func(t *testing.T) {
		plan := base(t)
		plan.Steps[0].Status = StepStatus("bogus")
		vs := ValidateStripPlan(plan)
		if len(vs) != 1 {
			t.Fatalf("expected 1 violation, got %v", vs)
		}
		if vs[0].Step != 0 {
			t.Errorf("violation step = %d, want 0", vs[0].Step)
		}
	})

	t.Run("dropped step", func(t *testing.T) {
		plan := base(t)
		plan.Steps = plan.Steps[1:]
		vs := ValidateStripPlan(plan)
		if len(vs) != 4 {
			t.Fatalf("expected 4 uncovered-quadrant violations, got %v", vs)
		}
	})
}

func TestCreateStripPlanDeterministic(t *testing.T) {
	bounds := grid.RectBounds{TopLeft: grid.Point{X: 0, Y: 0}, BottomRight: grid.Point{X: 6, Y: 4}}
	generated := grid.NewPointSet(generatedRow(-1, 0, 6)...)

	first, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	second, err := CreateStripPlan(bounds, EdgeTop, generated)
	if err != nil {
		t.Fatalf("CreateStripPlan returned error: %v", err)
	}
	if !reflect.DeepEqual(first.Steps, second.Steps) {
		t.Error("identical inputs produced different step lists")
	}
}
