package world

import "testing"

func TestAllDirections_IsCardinalOnly(t *testing.T) {
	for _, d := range AllDirections() {
		if !d.IsCardinal() {
			t.Errorf("%v from AllDirections() is not cardinal", d)
		}
	}
	if len(AllDirections()) != 4 {
		t.Errorf("AllDirections() has %d entries, want 4", len(AllDirections()))
	}
}

func TestAllEightDirections_Count(t *testing.T) {
	if got := len(AllEightDirections()); got != 8 {
		t.Errorf("AllEightDirections() has %d entries, want 8", got)
	}
}

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range AllEightDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
}

func TestDirection_DeltaMatchesCardinalSemantics(t *testing.T) {
	dr, dc := North.Delta()
	if dr != -1 || dc != 0 {
		t.Errorf("North.Delta() = (%d,%d), want (-1,0)", dr, dc)
	}
	dr, dc = SouthEast.Delta()
	if dr != 1 || dc != 1 {
		t.Errorf("SouthEast.Delta() = (%d,%d), want (1,1)", dr, dc)
	}
}

func TestDirection_IsDiagonal(t *testing.T) {
	if North.IsDiagonal() {
		t.Error("North should not be diagonal")
	}
	if !NorthEast.IsDiagonal() {
		t.Error("NorthEast should be diagonal")
	}
}
