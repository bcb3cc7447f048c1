package levelgen

import (
	"math/rand"
	"testing"

	"dungeonflow/pkg/engine/world"
)

func floorSquare(grid *world.Grid) {
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		c.Type = world.Floor
	})
}

func TestPlaceEntities_PlayerPlacedExactlyOnce(t *testing.T) {
	grid := world.NewGrid(20, 20)
	floorSquare(grid)
	cfg := DefaultConfig()
	lc := DeriveConstants(cfg, 0)
	rng := rand.New(rand.NewSource(40))

	player, err := PlaceEntities(grid, lc, cfg, rng, nil)
	if err != nil {
		t.Fatalf("PlaceEntities returned error: %v", err)
	}
	if grid.CountTiles(world.Player) != 1 {
		t.Errorf("expected exactly one PLAYER tile, got %d", grid.CountTiles(world.Player))
	}
	if grid.TileAt(player) != world.Player {
		t.Error("returned player position does not hold a PLAYER tile")
	}
}

func TestPlaceEntities_NoFloorTilesFails(t *testing.T) {
	grid := world.NewGrid(5, 5)
	cfg := DefaultConfig()
	lc := DeriveConstants(cfg, 0)
	rng := rand.New(rand.NewSource(41))

	_, err := PlaceEntities(grid, lc, cfg, rng, nil)
	if err != ErrPlacementFailed {
		t.Errorf("expected ErrPlacementFailed, got %v", err)
	}
}

func TestPlaceEntities_EnemiesRespectSafeSpawnRadius(t *testing.T) {
	grid := world.NewGrid(40, 40)
	floorSquare(grid)
	cfg := DefaultConfig()
	cfg.SafeSpawnRadius = 10
	lc := DeriveConstants(cfg, 0)
	rng := rand.New(rand.NewSource(42))

	player, err := PlaceEntities(grid, lc, cfg, rng, nil)
	if err != nil {
		t.Fatalf("PlaceEntities returned error: %v", err)
	}

	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Type != world.Enemy1 {
			return
		}
		d := euclidean(world.Point{X: col, Y: row}, player)
		if d < float64(cfg.SafeSpawnRadius) {
			t.Errorf("enemy at (%d,%d) is within safe spawn radius (%f < %d)", col, row, d, cfg.SafeSpawnRadius)
		}
	})
}
