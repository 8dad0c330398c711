package grid

// Neighbors returns the 4 points at unit Manhattan distance from p.
// The order is fixed (left, right, up, down) and is used as the tie-break
// order wherever neighbor order matters. "Up" is y-1: the grid uses screen
// coordinates with y growing downward.
func Neighbors(p Point) []Point {
	return []Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}

// Quadrants2x2 returns the 4 cells of the 2x2 block whose top-left corner
// is anchor, in row-major order.
func Quadrants2x2(anchor Point) []Point {
	x, y := anchor.X, anchor.Y
	return []Point{
		{X: x, Y: y},
		{X: x + 1, Y: y},
		{X: x, Y: y + 1},
		{X: x + 1, Y: y + 1},
	}
}

// Neighbors2x2 returns the 12 cells forming the perimeter ring one cell
// outside the 2x2 block anchored at anchor: the rows above and below the
// block (4 cells each, corners included) and the columns to its left and
// right (2 cells each).
func Neighbors2x2(anchor Point) []Point {
	x, y := anchor.X, anchor.Y
	ring := make([]Point, 0, 12)
	for dx := -1; dx <= 2; dx++ {
		ring = append(ring, Point{X: x + dx, Y: y - 1})
	}
	for dx := -1; dx <= 2; dx++ {
		ring = append(ring, Point{X: x + dx, Y: y + 2})
	}
	ring = append(ring,
		Point{X: x - 1, Y: y},
		Point{X: x - 1, Y: y + 1},
		Point{X: x + 2, Y: y},
		Point{X: x + 2, Y: y + 1},
	)
	return ring
}
