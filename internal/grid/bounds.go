package grid

import "fmt"

// RectBounds is a closed rectangle on the grid, described by its top-left and
// bottom-right corners (both inclusive). A single-point rectangle is legal.
type RectBounds struct {
	TopLeft     Point
	BottomRight Point
}

// NewRectBounds builds a RectBounds and verifies the corner ordering
// invariant: TopLeft.X <= BottomRight.X and TopLeft.Y <= BottomRight.Y.
func NewRectBounds(tl, br Point) (RectBounds, error) {
	b := RectBounds{TopLeft: tl, BottomRight: br}
	if err := b.Validate(); err != nil {
		return RectBounds{}, err
	}
	return b, nil
}

// Validate checks the corner ordering invariant.
func (b RectBounds) Validate() error {
	if b.TopLeft.X > b.BottomRight.X || b.TopLeft.Y > b.BottomRight.Y {
		return fmt.Errorf("invalid bounds: top-left %s must not be below or right of bottom-right %s",
			b.TopLeft, b.BottomRight)
	}
	return nil
}

// Width returns the x extent of the rectangle.
func (b RectBounds) Width() int {
	return b.BottomRight.X - b.TopLeft.X + 1
}

// Height returns the y extent of the rectangle.
func (b RectBounds) Height() int {
	return b.BottomRight.Y - b.TopLeft.Y + 1
}

// Area returns the total number of quadrants in the rectangle.
func (b RectBounds) Area() int {
	return b.Width() * b.Height()
}

// Contains reports whether p lies within the rectangle, boundaries included.
func (b RectBounds) Contains(p Point) bool {
	return b.TopLeft.X <= p.X && p.X <= b.BottomRight.X &&
		b.TopLeft.Y <= p.Y && p.Y <= b.BottomRight.Y
}

// AllPoints returns every cell of the rectangle in row-major order
// (y outer, x inner). This ordering is a contract: it is the default
// processing order wherever no other priority applies.
func (b RectBounds) AllPoints() []Point {
	points := make([]Point, 0, b.Area())
	for y := b.TopLeft.Y; y <= b.BottomRight.Y; y++ {
		for x := b.TopLeft.X; x <= b.BottomRight.X; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Expand grows the rectangle by n cells in every direction.
func (b RectBounds) Expand(n int) RectBounds {
	return RectBounds{
		TopLeft:     Point{X: b.TopLeft.X - n, Y: b.TopLeft.Y - n},
		BottomRight: Point{X: b.BottomRight.X + n, Y: b.BottomRight.Y + n},
	}
}

// String returns a compact "(x,y)-(x,y)" form for messages and file names.
func (b RectBounds) String() string {
	return fmt.Sprintf("%s-%s", b.TopLeft, b.BottomRight)
}
