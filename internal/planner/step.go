package planner

import "github.com/danieljhkim/tileplan/internal/grid"

// StepType classifies the shape of a generation step.
type StepType string

const (
	// Step2x2 is a full 2x2 tile of four quadrants.
	Step2x2 StepType = "2x2"
	// Step2x1 is a horizontal pair.
	Step2x1 StepType = "2x1"
	// Step1x2 is a vertical pair.
	Step1x2 StepType = "1x2"
	// Step1x1 is a single quadrant.
	Step1x1 StepType = "1x1"
)

// StepStatus tracks the execution state of a strip plan step. The planner
// only ever assigns StatusPending; the executor owns all transitions.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusExecuting StepStatus = "executing"
	StatusDone      StepStatus = "done"
	StatusFailed    StepStatus = "failed"
)

// Valid reports whether the status is a known value.
func (s StepStatus) Valid() bool {
	switch s {
	case StatusPending, StatusExecuting, StatusDone, StatusFailed:
		return true
	}
	return false
}

// QuadrantState describes one grid cell at planning time. A cell is in
// exactly one state at any instant; the planner never moves a cell out of
// StateGenerated.
type QuadrantState int

const (
	// StateEmpty means no generation exists for the cell.
	StateEmpty QuadrantState = iota
	// StateGenerated means a generation already exists; immutable for the
	// duration of planning.
	StateGenerated
	// StateSelected means the cell is part of the plan under construction.
	// It becomes generated only after the caller reports successful
	// execution, which is outside the planner's authority.
	StateSelected
)

// String returns the lowercase name of the state.
func (s QuadrantState) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	case StateSelected:
		return "selected"
	default:
		return "empty"
	}
}

// StateOf resolves the planning-time state of a cell from the generated and
// selected sets. Generated wins: the planner never schedules a generated cell.
func StateOf(p grid.Point, generated, selected grid.PointSet) QuadrantState {
	if generated.Has(p) {
		return StateGenerated
	}
	if selected.Has(p) {
		return StateSelected
	}
	return StateEmpty
}

// GenerationStep is one scheduled unit of work: an ordered, non-empty list
// of quadrants generated together in a single external request, plus the
// shape classification. The quadrant list is authoritative: the executor
// must submit exactly these cells as one batch.
type GenerationStep struct {
	Quadrants []grid.Point
	Type      StepType
}

// StripStep is a generation step inside a strip plan. It additionally
// carries an execution status so partially-executed plans can be resumed.
type StripStep struct {
	GenerationStep
	Status StepStatus
}

func newStep(t StepType, quadrants ...grid.Point) GenerationStep {
	return GenerationStep{Quadrants: quadrants, Type: t}
}

func newStripStep(t StepType, quadrants ...grid.Point) StripStep {
	return StripStep{GenerationStep: newStep(t, quadrants...), Status: StatusPending}
}
