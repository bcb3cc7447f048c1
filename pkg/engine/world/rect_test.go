package world

import (
	"math"
	"testing"
)

func TestRect_WidthHeight(t *testing.T) {
	r := NewRect(Point{X: 2, Y: 3}, Point{X: 10, Y: 8})
	if got := r.Width(); got != 8 {
		t.Errorf("Width() = %d, want 8", got)
	}
	if got := r.Height(); got != 5 {
		t.Errorf("Height() = %d, want 5", got)
	}
}

func TestRect_Center(t *testing.T) {
	r := NewRect(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if got := r.Center(); got != (Point{X: 5, Y: 5}) {
		t.Errorf("Center() = %+v, want (5,5)", got)
	}
}

// TestRect_DistanceToUsesCorrectedFormula asserts the corrected distance
// formula documented by DistanceTo: the source's copy-paste bug reused
// other.center_x for both terms; this implementation does not.
func TestRect_DistanceToUsesCorrectedFormula(t *testing.T) {
	a := NewRect(Point{X: 0, Y: 0}, Point{X: 0, Y: 0})
	b := NewRect(Point{X: 3, Y: 4}, Point{X: 3, Y: 4})

	got := a.DistanceTo(b)
	want := math.Sqrt(3*3 + 4*4)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DistanceTo() = %f, want %f (3-4-5 triangle)", got, want)
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := NewRect(Point{X: 0, Y: 0}, Point{X: 5, Y: 5})
	b := NewRect(Point{X: 4, Y: 4}, Point{X: 8, Y: 8})
	c := NewRect(Point{X: 6, Y: 6}, Point{X: 10, Y: 10})

	if !a.Overlaps(b) {
		t.Error("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected disjoint rects a and c not to overlap")
	}
}

func TestPoint_Add(t *testing.T) {
	p := Point{X: 1, Y: 1}.Add(2, 3)
	if p != (Point{X: 3, Y: 4}) {
		t.Errorf("Add(2,3) = %+v, want (3,4)", p)
	}
}
