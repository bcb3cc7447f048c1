package levelgen

import (
	"log/slog"
	"math/rand"

	"dungeonflow/pkg/engine/world"
)

// GenerateLevel runs the full pipeline (spec.md §2, §6): ConstantsDeriver,
// BSPPartitioner, RoomBuilder, HallwayNetworker and entity placement, in
// that order. Generation is deterministic given seed: the same
// (cfg, level, seed) always produces the same grid.
//
// Returns ErrInvalidLevel for a negative level, or ErrGridBuildFailure if
// the partition/room pass produced fewer than two rooms (nothing for
// HallwayNetworker to connect).
func GenerateLevel(cfg Config, level int, seed int64, logger *slog.Logger) (*world.Grid, LevelConstants, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if level < 0 {
		return nil, LevelConstants{}, ErrInvalidLevel
	}

	rng := rand.New(rand.NewSource(seed))
	lc := DeriveConstants(cfg, level)

	grid := world.NewGrid(lc.Height, lc.Width)
	grid.BuildAllCellConnections()

	bounds := world.NewRect(
		world.Point{X: 0, Y: 0},
		world.Point{X: lc.Width - 1, Y: lc.Height - 1},
	)
	partition := NewPartition(bounds)
	partition.Run(cfg.SplitIterations(level), cfg.MinContainerSize, rng)

	rooms := BuildRooms(partition, grid, cfg.MinRoomSize, cfg.RoomRetryBudget, rng)
	if len(rooms) < 2 {
		logger.Error("grid build failure", "level", level, "rooms", len(rooms))
		return nil, lc, ErrGridBuildFailure
	}

	complete := BuildCompleteGraph(rooms)
	mst := MinimumSpanningTree(rooms, complete)
	extras := ExtraConnections(complete, mst, cfg.ExtraMaximumPercentage, cfg.RemovedConnectionLimit, rng)

	ScatterObstacles(grid, lc.ObstacleCount, rng)

	edges := make([]Edge, 0, len(mst)+len(extras))
	edges = append(edges, mst...)
	edges = append(edges, extras...)
	CarveHallways(grid, rooms, edges, cfg.HallwaySize)

	SmoothCellularAutomata(grid, cfg.CellularAutomataIterations)

	if _, err := PlaceEntities(grid, lc, cfg, rng, logger); err != nil {
		logger.Error("entity placement failed", "level", level, "error", err)
		return nil, lc, err
	}

	logger.Info("level generated", "level", level, "width", lc.Width, "height", lc.Height, "rooms", len(rooms))
	return grid, lc, nil
}
