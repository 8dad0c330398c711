package planner

import "errors"

var (
	// ErrInvalidBounds indicates a degenerate or malformed target region.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrNoEdge indicates that no fully-generated generation edge exists.
	// Callers must treat this as "cannot proceed", distinct from an empty
	// plan which means "nothing to do".
	ErrNoEdge = errors.New("no valid generation edge")

	// ErrInvalidEdge indicates an unknown edge name.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrStripNotEmpty indicates the strip interior already contains
	// generated quadrants. Strips expand into empty territory; overlapping
	// regions must be re-planned with the rectangle planner instead.
	ErrStripNotEmpty = errors.New("strip contains generated quadrants")
)
