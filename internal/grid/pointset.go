package grid

import "sort"

// PointSet is a sparse set of grid points.
type PointSet map[Point]struct{}

// NewPointSet creates a PointSet containing the given points.
func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether the set contains p.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p into the set.
func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s PointSet) Clone() PointSet {
	out := make(PointSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Union returns a new set containing the points of both sets.
func (s PointSet) Union(other PointSet) PointSet {
	out := s.Clone()
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the points of the set in row-major order (y, then x).
func (s PointSet) Sorted() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
