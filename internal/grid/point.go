// Package grid provides the integer coordinate model for the quadrant grid.
//
// Every quadrant of the map is addressed by a Point on an infinite 2D integer
// grid. The package is purely geometric: points, rectangular bounds, the
// 4-connected neighbor relation, and the 2x2 block helpers the planners are
// built on. Nothing here performs I/O or holds state.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Point identifies a single quadrant cell on the grid.
// It is an immutable value type and is usable as a map key.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by the given vector.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// String returns the canonical form "(x,y)" used for serialization and
// CLI parsing.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ParsePoint parses a coordinate string like "(x,y)" or "x,y" into a Point.
// Surrounding and interior whitespace is ignored.
func ParsePoint(s string) (Point, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	parts := strings.Split(cleaned, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid coordinate format: %q", s)
	}

	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Point{}, fmt.Errorf("invalid x coordinate in %q: %w", s, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Point{}, fmt.Errorf("invalid y coordinate in %q: %w", s, err)
	}

	return Point{X: x, Y: y}, nil
}
