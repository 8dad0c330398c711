package grid

import "testing"

func TestNeighborsOrder(t *testing.T) {
	// Left, right, up, down is the fixed tie-break order.
	got := Neighbors(Point{5, 5})
	want := []Point{{4, 5}, {6, 5}, {5, 4}, {5, 6}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuadrants2x2(t *testing.T) {
	got := Quadrants2x2(Point{2, 3})
	want := []Point{{2, 3}, {3, 3}, {2, 4}, {3, 4}}
	if len(got) != 4 {
		t.Fatalf("Quadrants2x2 returned %d points, want 4", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Quadrants2x2()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighbors2x2Ring(t *testing.T) {
	ring := Neighbors2x2(Point{0, 0})
	if len(ring) != 12 {
		t.Fatalf("Neighbors2x2 returned %d points, want 12", len(ring))
	}

	ringSet := NewPointSet(ring...)
	if len(ringSet) != 12 {
		t.Fatalf("ring contains duplicates: %v", ring)
	}

	// No block cell appears on the ring, and every ring cell touches the
	// block within Chebyshev distance 1.
	block := NewPointSet(Quadrants2x2(Point{0, 0})...)
	for _, p := range ring {
		if block.Has(p) {
			t.Errorf("ring point %v is inside the block", p)
		}
		if p.X < -1 || p.X > 2 || p.Y < -1 || p.Y > 2 {
			t.Errorf("ring point %v is not adjacent to the block", p)
		}
	}
}
