package planner

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// Edge names the side of a strip along which the existing generated region
// sits. EdgeTop means the row at y = TopLeft.Y - 1, EdgeBottom the row at
// y = BottomRight.Y + 1, and so on.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// ParseEdge parses an edge name, case-insensitively.
func ParseEdge(s string) (Edge, error) {
	e := Edge(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEdge, s)
	}
	return e, nil
}

// Valid reports whether the edge is one of the four known sides.
func (e Edge) Valid() bool {
	switch e {
	case EdgeTop, EdgeBottom, EdgeLeft, EdgeRight:
		return true
	}
	return false
}

// horizontal reports whether the frontier runs along the x axis, meaning
// the strip progresses horizontally.
func (e Edge) horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// ExteriorNeighbors returns the cells one step outside bounds along the
// given edge, in ascending coordinate order.
func ExteriorNeighbors(bounds grid.RectBounds, edge Edge) []grid.Point {
	var neighbors []grid.Point
	switch edge {
	case EdgeTop:
		y := bounds.TopLeft.Y - 1
		for x := bounds.TopLeft.X; x <= bounds.BottomRight.X; x++ {
			neighbors = append(neighbors, grid.Point{X: x, Y: y})
		}
	case EdgeBottom:
		y := bounds.BottomRight.Y + 1
		for x := bounds.TopLeft.X; x <= bounds.BottomRight.X; x++ {
			neighbors = append(neighbors, grid.Point{X: x, Y: y})
		}
	case EdgeLeft:
		x := bounds.TopLeft.X - 1
		for y := bounds.TopLeft.Y; y <= bounds.BottomRight.Y; y++ {
			neighbors = append(neighbors, grid.Point{X: x, Y: y})
		}
	case EdgeRight:
		x := bounds.BottomRight.X + 1
		for y := bounds.TopLeft.Y; y <= bounds.BottomRight.Y; y++ {
			neighbors = append(neighbors, grid.Point{X: x, Y: y})
		}
	}
	return neighbors
}

// EdgeFrontier returns the exterior neighbors along the given edge and
// whether every one of them is generated. Only a fully generated edge is a
// legal frontier; there is no silent fallback to a shorter sub-edge.
func EdgeFrontier(bounds grid.RectBounds, edge Edge, generated grid.PointSet) ([]grid.Point, bool) {
	neighbors := ExteriorNeighbors(bounds, edge)
	for _, p := range neighbors {
		if !generated.Has(p) {
			return neighbors, false
		}
	}
	return neighbors, true
}

// FindGenerationEdge locates the side of bounds whose exterior neighbors
// are all generated. The edges perpendicular to the strip's long axis are
// checked first (top then bottom for wide strips, left then right for tall
// ones), then the remaining two. Returns ErrNoEdge when no side qualifies:
// with nothing generated alongside the strip there is no existing content
// to expand from.
func FindGenerationEdge(bounds grid.RectBounds, generated grid.PointSet) (Edge, error) {
	if err := bounds.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBounds, err)
	}

	candidates := []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	if bounds.Width() < bounds.Height() {
		candidates = []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}
	}

	for _, edge := range candidates {
		if _, ok := EdgeFrontier(bounds, edge, generated); ok {
			return edge, nil
		}
	}
	return "", fmt.Errorf("%w for strip %s", ErrNoEdge, bounds)
}

// StripDepth returns the distance, in quadrants, between the frontier and
// the far boundary of the strip.
func StripDepth(bounds grid.RectBounds, edge Edge) int {
	if edge.horizontal() {
		return bounds.Height()
	}
	return bounds.Width()
}
