package levelgen

import (
	"log/slog"
	"math"
	"math/rand"

	"dungeonflow/pkg/engine/world"
)

// PlaceEntities runs entity placement (spec.md §4.4): every FLOOR tile is
// enumerated and shuffled, one is popped for PLAYER, then each
// enemy/item type in cfg's fixed order attempts up to cfg.PlaceTries
// placements, rejecting candidates within cfg.SafeSpawnRadius of the
// player (enemies only) or no longer FLOOR. Placement shortfalls are
// logged, never returned as an error; only a grid with no FLOOR tiles at
// all is an error, since PLAYER itself could not be placed.
func PlaceEntities(grid *world.Grid, lc LevelConstants, cfg Config, rng *rand.Rand, logger *slog.Logger) (world.Point, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var floors []world.Point
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Type == world.Floor {
			floors = append(floors, world.Point{X: col, Y: row})
		}
	})
	if len(floors) == 0 {
		return world.Point{}, ErrPlacementFailed
	}
	rng.Shuffle(len(floors), func(i, j int) { floors[i], floors[j] = floors[j], floors[i] })

	player := floors[0]
	floors = floors[1:]
	grid.SetTile(player, world.Player)

	placeType := func(tile world.TileType, count int, isEnemy bool) {
		placed := 0
		tries := 0
		for placed < count && tries < cfg.PlaceTries && len(floors) > 0 {
			candidate := floors[0]
			floors = floors[1:]
			tries++

			if isEnemy && euclidean(candidate, player) < float64(cfg.SafeSpawnRadius) {
				continue
			}
			if grid.TileAt(candidate) != world.Floor {
				continue
			}
			grid.SetTile(candidate, tile)
			placed++
		}
		if placed < count {
			logger.Warn("placement shortfall", "tile", tile.String(), "requested", count, "placed", placed)
		}
	}

	for _, w := range cfg.EnemyWeights {
		placeType(w.Tile, lc.EnemyCounts[w.Tile], true)
	}
	for _, w := range cfg.ItemWeights {
		placeType(w.Tile, lc.ItemCounts[w.Tile], false)
	}

	return player, nil
}

func euclidean(a, b world.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
