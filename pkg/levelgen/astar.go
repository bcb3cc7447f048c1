package levelgen

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"dungeonflow/pkg/engine/world"
)

const sqrt2 = math.Sqrt2

// astarNode is one entry in the A* open set.
type astarNode struct {
	point world.Point
	g     float64
	f     float64
	seq   int
}

type astarHeap []astarNode

func (h astarHeap) Len() int { return len(h) }
func (h astarHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h astarHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x any)        { *h = append(*h, x.(astarNode)) }
func (h *astarHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// FindPath runs a standard 8-connected A* (spec.md §4.4, §9) from start to
// goal over grid: EMPTY, FLOOR and WALL are traversable, OBSTACLE is not;
// cardinal steps cost 1, diagonal steps cost sqrt2; the heuristic is
// Chebyshev distance. The open set is a binary heap ordered by f-cost with
// an insertion sequence number as the tie-breaker, so the returned path is
// deterministic given a fixed grid. Returns (path, true) inclusive of both
// endpoints, or (nil, false) if no path exists.
func FindPath(grid *world.Grid, start, goal world.Point) ([]world.Point, bool) {
	if !world.IsCarvable(grid.TileAt(start)) || !world.IsCarvable(grid.TileAt(goal)) {
		return nil, false
	}
	if start == goal {
		return []world.Point{start}, true
	}

	open := &astarHeap{}
	heap.Init(open)
	seq := 0
	push := func(p world.Point, g, f float64) {
		heap.Push(open, astarNode{point: p, g: g, f: f, seq: seq})
		seq++
	}
	push(start, 0, chebyshev(start, goal))

	bestG := map[world.Point]float64{start: 0}
	cameFrom := map[world.Point]world.Point{}
	visited := mapset.New[world.Point]()

	for open.Len() > 0 {
		cur := heap.Pop(open).(astarNode)
		if visited.Has(cur.point) {
			continue
		}
		visited.Put(cur.point)

		if cur.point == goal {
			return reconstructPath(cameFrom, start, goal), true
		}

		for _, dir := range world.AllEightDirections() {
			dr, dc := dir.Delta()
			neighbor := world.Point{X: cur.point.X + dc, Y: cur.point.Y + dr}
			if !grid.IsValidPosition(neighbor.Y, neighbor.X) {
				continue
			}
			if visited.Has(neighbor) {
				continue
			}
			if !world.IsCarvable(grid.TileAt(neighbor)) {
				continue
			}

			stepCost := 1.0
			if dir.IsDiagonal() {
				stepCost = sqrt2
			}
			g := cur.g + stepCost
			if existing, ok := bestG[neighbor]; ok && g >= existing {
				continue
			}
			bestG[neighbor] = g
			cameFrom[neighbor] = cur.point
			push(neighbor, g, g+chebyshev(neighbor, goal))
		}
	}
	return nil, false
}

func reconstructPath(cameFrom map[world.Point]world.Point, start, goal world.Point) []world.Point {
	path := []world.Point{goal}
	cur := goal
	for cur != start {
		prev := cameFrom[cur]
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// chebyshev returns max(|dx|, |dy|), the admissible and consistent
// heuristic for 8-connected unit/sqrt2 movement (spec.md §4.4).
func chebyshev(a, b world.Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return math.Max(dx, dy)
}
