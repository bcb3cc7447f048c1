package levelgen

import (
	"math"
	"testing"

	"dungeonflow/pkg/engine/world"
)

// TestFindPath_EmptyGridDiagonal asserts S6: A* from (0,0) to (4,4) on an
// empty 5x5 grid returns a path of length 5 (inclusive) with cost 4*sqrt2.
func TestFindPath_EmptyGridDiagonal(t *testing.T) {
	grid := world.NewGrid(5, 5)
	path, ok := FindPath(grid, world.Point{X: 0, Y: 0}, world.Point{X: 4, Y: 4})
	if !ok {
		t.Fatal("expected a path on an empty 5x5 grid")
	}
	if len(path) != 5 {
		t.Errorf("expected path length 5, got %d: %v", len(path), path)
	}

	cost := 0.0
	for i := 1; i < len(path); i++ {
		dx := math.Abs(float64(path[i].X - path[i-1].X))
		dy := math.Abs(float64(path[i].Y - path[i-1].Y))
		if dx == 1 && dy == 1 {
			cost += sqrt2
		} else {
			cost += 1
		}
	}
	want := 4 * sqrt2
	if math.Abs(cost-want) > 1e-9 {
		t.Errorf("expected path cost %f, got %f", want, cost)
	}
}

func TestFindPath_ObstacleBlocksDirectRoute(t *testing.T) {
	grid := world.NewGrid(5, 5)
	for y := 0; y < 5; y++ {
		grid.SetTile(world.Point{X: 2, Y: y}, world.Obstacle)
	}

	_, ok := FindPath(grid, world.Point{X: 0, Y: 2}, world.Point{X: 4, Y: 2})
	if ok {
		t.Error("expected no path through a full-height obstacle wall")
	}
}

func TestFindPath_SameStartAndGoal(t *testing.T) {
	grid := world.NewGrid(5, 5)
	path, ok := FindPath(grid, world.Point{X: 2, Y: 2}, world.Point{X: 2, Y: 2})
	if !ok || len(path) != 1 {
		t.Errorf("expected single-point path, got %v ok=%v", path, ok)
	}
}

func TestFindPath_RejectsObstacleEndpoint(t *testing.T) {
	grid := world.NewGrid(5, 5)
	grid.SetTile(world.Point{X: 4, Y: 4}, world.Obstacle)

	if _, ok := FindPath(grid, world.Point{X: 0, Y: 0}, world.Point{X: 4, Y: 4}); ok {
		t.Error("expected FindPath to reject an obstacle goal")
	}
}
