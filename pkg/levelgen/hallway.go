package levelgen

import (
	"math/rand"

	"dungeonflow/pkg/engine/world"
)

// ScatterObstacles marks up to count EMPTY cells as OBSTACLE, chosen
// without replacement (spec.md §4.4). Fewer than count obstacles are
// placed if the grid does not have enough EMPTY cells.
func ScatterObstacles(grid *world.Grid, count int, rng *rand.Rand) {
	var empty []world.Point
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Type == world.Empty {
			empty = append(empty, world.Point{X: col, Y: row})
		}
	})
	rng.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })

	if count > len(empty) {
		count = len(empty)
	}
	for _, p := range empty[:count] {
		grid.SetTile(p, world.Obstacle)
	}
}

// CarveHallways runs A* along every given edge's room centers and stamps
// the returned path into grid (spec.md §4.4). An edge with no path is
// dropped silently: the MST already guarantees connectivity, so a failed
// extra connection is non-fatal.
func CarveHallways(grid *world.Grid, rooms []world.Rect, edges []Edge, hallwaySize int) {
	for _, e := range edges {
		src := rooms[e.Src].Center()
		dst := rooms[e.Dst].Center()

		path, ok := FindPath(grid, src, dst)
		if !ok {
			continue
		}
		for _, p := range path {
			stampHallwayCell(grid, p, hallwaySize)
		}
	}
}

// stampHallwayCell stamps a HALLWAY_SIZE square centred on p: interior
// FLOOR, perimeter WALL over replaceable tiles only, so WALL never
// overwrites an existing FLOOR. Already-FLOOR points are left untouched.
func stampHallwayCell(grid *world.Grid, p world.Point, hallwaySize int) {
	if grid.TileAt(p) == world.Floor {
		return
	}
	half := (hallwaySize - 1) / 2
	if half <= 0 {
		grid.SetTile(p, world.Floor)
		return
	}
	rect := world.NewRect(
		world.Point{X: p.X - half, Y: p.Y - half},
		world.Point{X: p.X + half, Y: p.Y + half},
	)
	grid.PlaceRect(rect)
}

// SmoothCellularAutomata runs the cellular-automata smoothing pass
// (spec.md §4.4) iterations times: each iteration, every wall-replaceable
// tile (EMPTY, DEBUG_WALL, OBSTACLE) with at least 3 FLOOR neighbours in
// the 4-neighbourhood becomes FLOOR. Updates are computed from a snapshot
// taken at the start of each iteration so a cell's change never cascades
// within the same pass.
func SmoothCellularAutomata(grid *world.Grid, iterations int) {
	rows, cols := grid.Rows(), grid.Cols()
	for i := 0; i < iterations; i++ {
		snapshot := make([][]world.TileType, rows)
		for r := 0; r < rows; r++ {
			snapshot[r] = make([]world.TileType, cols)
			for c := 0; c < cols; c++ {
				snapshot[r][c] = grid.TileAt(world.Point{X: c, Y: r})
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !world.IsWallReplaceable(snapshot[r][c]) {
					continue
				}
				if floorNeighborCount(snapshot, rows, cols, r, c) >= 3 {
					grid.SetTile(world.Point{X: c, Y: r}, world.Floor)
				}
			}
		}
	}
}

func floorNeighborCount(snapshot [][]world.TileType, rows, cols, row, col int) int {
	count := 0
	for _, dir := range world.AllDirections() {
		dr, dc := dir.Delta()
		nr, nc := row+dr, col+dc
		if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
			continue
		}
		if snapshot[nr][nc] == world.Floor {
			count++
		}
	}
	return count
}
