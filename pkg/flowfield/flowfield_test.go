package flowfield

import (
	"testing"

	"dungeonflow/pkg/engine/world"
)

// buildRoomGrid returns a 10x10 grid where every tile in [1,8]x[1,8]
// (inclusive) is FLOOR, matching S3/S4's "single room spanning (1,1)-(8,8)".
func buildRoomGrid() *world.Grid {
	grid := world.NewGrid(10, 10)
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			grid.SetTile(world.Point{X: x, Y: y}, world.Floor)
		}
	}
	return grid
}

// TestRebuild_S3 asserts scenario S3: destination (4,4) has distance 0,
// direction((1,1)) points toward (2,2), and distance((1,1)) is the BFS
// (4-neighbourhood) distance of 6, not the Chebyshev shortcut of 3 — the
// spec is explicit that the implementation records the BFS distance.
func TestRebuild_S3(t *testing.T) {
	grid := buildRoomGrid()
	ff := New(grid)
	if err := ff.Rebuild(world.Point{X: 4, Y: 4}); err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}

	dist, err := ff.Distance(world.Point{X: 4, Y: 4})
	if err != nil || dist != 0 {
		t.Errorf("distance(destination) = %d, %v; want 0, nil", dist, err)
	}

	dir, err := ff.Direction(world.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("Direction((1,1)) returned error: %v", err)
	}
	want := world.Point{X: 1, Y: 1} // (2,2) - (1,1)
	if dir != want {
		t.Errorf("direction((1,1)) = %+v, want %+v (toward (2,2))", dir, want)
	}

	dist, err = ff.Distance(world.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("Distance((1,1)) returned error: %v", err)
	}
	if dist != 6 {
		t.Errorf("distance((1,1)) = %d, want 6 (BFS over 4-neighbourhood)", dist)
	}
}

// TestRebuild_S4 asserts scenario S4: inserting a wall column at x=5 cuts
// the room in two; tiles at x>=6 become unreachable from destination (2,4).
func TestRebuild_S4(t *testing.T) {
	grid := buildRoomGrid()
	for y := 0; y < grid.Rows(); y++ {
		grid.SetTile(world.Point{X: 5, Y: y}, world.Wall)
	}

	ff := New(grid)
	if err := ff.Rebuild(world.Point{X: 2, Y: 4}); err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}

	for x := 6; x <= 8; x++ {
		tile := world.Point{X: x, Y: 4}
		if _, err := ff.Distance(tile); err != ErrUnknownTile {
			t.Errorf("Distance(%+v) = %v, want ErrUnknownTile", tile, err)
		}
		if _, err := ff.Direction(tile); err != ErrUnknownTile {
			t.Errorf("Direction(%+v) = %v, want ErrUnknownTile", tile, err)
		}
	}
}

func TestRebuild_NonWalkableDestinationIsUnreachable(t *testing.T) {
	grid := buildRoomGrid()
	ff := New(grid)
	err := ff.Rebuild(world.Point{X: 0, Y: 0})
	if err != ErrUnreachableDestination {
		t.Errorf("Rebuild(non-walkable) = %v, want ErrUnreachableDestination", err)
	}
}

// TestRebuild_Idempotent asserts property 8.
func TestRebuild_Idempotent(t *testing.T) {
	grid := buildRoomGrid()
	ff := New(grid)
	dest := world.Point{X: 4, Y: 4}

	if err := ff.Rebuild(dest); err != nil {
		t.Fatalf("first Rebuild returned error: %v", err)
	}
	firstDistances := cloneDistances(ff)
	firstDirections := cloneDirections(ff)

	if err := ff.Rebuild(dest); err != nil {
		t.Fatalf("second Rebuild returned error: %v", err)
	}

	for tile, d := range firstDistances {
		got, err := ff.Distance(tile)
		if err != nil || got != d {
			t.Errorf("distance(%+v) changed across rebuilds: was %d, now %d (%v)", tile, d, got, err)
		}
	}
	for tile, d := range firstDirections {
		got, err := ff.Direction(tile)
		if err != nil || got != d {
			t.Errorf("direction(%+v) changed across rebuilds: was %+v, now %+v (%v)", tile, d, got, err)
		}
	}
}

// TestMonotonicity asserts property 7: for every non-destination tile t,
// distance(chosen neighbour) < distance(t).
func TestMonotonicity(t *testing.T) {
	grid := buildRoomGrid()
	ff := New(grid)
	dest := world.Point{X: 4, Y: 4}
	if err := ff.Rebuild(dest); err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}

	for tile, dist := range ff.distances {
		if tile == dest {
			continue
		}
		dir, err := ff.Direction(tile)
		if err != nil {
			t.Fatalf("Direction(%+v) returned error: %v", tile, err)
		}
		neighbor := world.Point{X: tile.X + dir.X, Y: tile.Y + dir.Y}
		nd, err := ff.Distance(neighbor)
		if err != nil {
			t.Fatalf("Distance(neighbour %+v) returned error: %v", neighbor, err)
		}
		if nd >= dist {
			t.Errorf("tile %+v (dist %d) chose neighbour %+v with dist %d, not strictly smaller", tile, dist, neighbor, nd)
		}
	}
}

// TestReachesDestinationSteppingByDirection asserts property 6: stepping
// from any reachable tile in its chosen direction reaches the destination
// in at most Distance(s) steps.
func TestReachesDestinationSteppingByDirection(t *testing.T) {
	grid := buildRoomGrid()
	ff := New(grid)
	dest := world.Point{X: 4, Y: 4}
	if err := ff.Rebuild(dest); err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}

	start := world.Point{X: 1, Y: 1}
	maxSteps, err := ff.Distance(start)
	if err != nil {
		t.Fatalf("Distance(start) returned error: %v", err)
	}

	cur := start
	for steps := 0; cur != dest; steps++ {
		if steps > maxSteps {
			t.Fatalf("did not reach destination within %d steps from %+v", maxSteps, start)
		}
		dir, err := ff.Direction(cur)
		if err != nil {
			t.Fatalf("Direction(%+v) returned error: %v", cur, err)
		}
		cur = world.Point{X: cur.X + dir.X, Y: cur.Y + dir.Y}
	}
}

func cloneDistances(ff *FlowField) map[world.Point]int {
	out := make(map[world.Point]int, len(ff.distances))
	for k, v := range ff.distances {
		out[k] = v
	}
	return out
}

func cloneDirections(ff *FlowField) map[world.Point]world.Point {
	out := make(map[world.Point]world.Point, len(ff.directions))
	for k, v := range ff.directions {
		out[k] = v
	}
	return out
}
