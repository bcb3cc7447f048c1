package world

import "math"

// Point is an immutable grid coordinate. It mirrors the NamedTuple Point in
// the Python original this core was distilled from, kept as a plain
// comparable struct so it can key maps directly (the flow field's distance
// and direction maps do exactly that).
type Point struct {
	X, Y int
}

// Add returns the point offset by the given deltas.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle described by its top-left and
// bottom-right corners, inclusive. When used as a BSP container the split
// wall tile is shared by both children's rects (they abut); when used as a
// room, no such sharing occurs.
type Rect struct {
	TopLeft     Point
	BottomRight Point
}

// NewRect builds a Rect from two corner points.
func NewRect(topLeft, bottomRight Point) Rect {
	return Rect{TopLeft: topLeft, BottomRight: bottomRight}
}

// Width returns the distance between the rect's corner columns, one less
// than the number of tile columns the inclusive rect covers.
func (r Rect) Width() int {
	return absInt(r.BottomRight.X - r.TopLeft.X)
}

// Height returns the distance between the rect's corner rows, one less
// than the number of tile rows the inclusive rect covers.
func (r Rect) Height() int {
	return absInt(r.BottomRight.Y - r.TopLeft.Y)
}

// CenterX returns the rounded x coordinate of the rect's center.
func (r Rect) CenterX() int {
	return roundDiv(r.TopLeft.X + r.BottomRight.X)
}

// CenterY returns the rounded y coordinate of the rect's center.
func (r Rect) CenterY() int {
	return roundDiv(r.TopLeft.Y + r.BottomRight.Y)
}

// Center returns the rect's center point.
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// DistanceTo returns the Euclidean distance between this rect's center and
// another rect's center.
//
// The Python original this was distilled from has a copy-paste bug here:
// it computes (center_x - other.center_x)^2 + (center_y - other.center_x)^2,
// reusing other.center_x for the second term. That bug is not reproduced —
// this implementation uses other.CenterY() for the second term, and tests
// assert the corrected formula (see spec.md §9 Open Questions).
func (r Rect) DistanceTo(other Rect) float64 {
	dx := float64(r.CenterX() - other.CenterX())
	dy := float64(r.CenterY() - other.CenterY())
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlaps reports whether the interiors (excluding a 1-tile border) of two
// rects intersect. Used to verify room separation.
func (r Rect) Overlaps(other Rect) bool {
	ax1, ay1, ax2, ay2 := r.TopLeft.X+1, r.TopLeft.Y+1, r.BottomRight.X-1, r.BottomRight.Y-1
	bx1, by1, bx2, by2 := other.TopLeft.X+1, other.TopLeft.Y+1, other.BottomRight.X-1, other.BottomRight.Y-1
	if ax1 > ax2 || ay1 > ay2 || bx1 > bx2 || by1 > by2 {
		return false
	}
	return ax1 <= bx2 && ax2 >= bx1 && ay1 <= by2 && ay2 >= by1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roundDiv rounds sum/2 to the nearest integer, halves away from zero
// (5/2 gives 3). Python's round() rounds halves to even instead, so for
// odd sums the result can differ from the original's center_x/center_y.
func roundDiv(sum int) int {
	if sum >= 0 {
		return (sum + 1) / 2
	}
	return -((-sum + 1) / 2)
}
