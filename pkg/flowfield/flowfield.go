// Package flowfield implements FlowField (spec.md §4.5): a breadth-first
// Dijkstra map from a destination tile plus a derived per-tile direction
// vector, letting an arbitrary number of pursuers chase a moving target
// cheaply without each one running its own pathfind.
package flowfield

import (
	"errors"

	"dungeonflow/pkg/engine/world"
)

// ErrUnreachableDestination is returned by Rebuild when the requested
// destination is not a walkable tile.
var ErrUnreachableDestination = errors.New("flowfield: destination is not walkable")

// ErrUnknownTile is returned by Direction/Distance for a tile absent from
// the current distance map: out of bounds, non-walkable, or unreached by
// the BFS from the current destination.
var ErrUnknownTile = errors.New("flowfield: tile is unreachable from the current destination")

// FlowField holds a Dijkstra distance map and a derived direction map over
// a Grid's walkable tiles, built against a single destination at a time.
// The Grid is borrowed read-only; FlowField never mutates it.
type FlowField struct {
	grid        *world.Grid
	destination world.Point
	distances   map[world.Point]int
	directions  map[world.Point]world.Point
}

// New creates a FlowField bound to grid. Call Rebuild before querying.
func New(grid *world.Grid) *FlowField {
	return &FlowField{grid: grid}
}

// Rebuild runs the two-pass algorithm in spec.md §4.5: a 4-neighbourhood
// BFS from destination producing integer distances, then an 8-neighbourhood
// scan per reached tile picking the direction toward its lowest-distance
// neighbour. Idempotent: calling Rebuild twice with the same destination
// produces identical maps, and each successful call replaces any prior
// state; a call that returns an error leaves the prior state as it was.
func (f *FlowField) Rebuild(destination world.Point) error {
	if !world.IsFloorLike(f.grid.TileAt(destination)) {
		return ErrUnreachableDestination
	}

	f.destination = destination
	f.distances = f.bfsDistances(destination)
	f.directions = f.deriveDirections()
	return nil
}

// bfsDistances runs a FIFO breadth-first search over the 4-neighbourhood
// starting at destination, visiting only floor-like, in-bounds tiles.
func (f *FlowField) bfsDistances(destination world.Point) map[world.Point]int {
	distances := map[world.Point]int{destination: 0}
	queue := []world.Point{destination}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			dr, dc := dir.Delta()
			n := world.Point{X: cur.X + dc, Y: cur.Y + dr}
			if !f.grid.IsValidPosition(n.Y, n.X) {
				continue
			}
			if _, seen := distances[n]; seen {
				continue
			}
			if !world.IsFloorLike(f.grid.TileAt(n)) {
				continue
			}
			distances[n] = distances[cur] + 1
			queue = append(queue, n)
		}
	}
	return distances
}

// deriveDirections scans the 8-neighbourhood of every tile in the distance
// map and records a unit direction toward the lowest-distance neighbour.
// Ties are broken by AllEightDirections()'s fixed scan order (cardinals
// first, then diagonals), so the result is deterministic. The destination
// itself maps to the zero vector.
func (f *FlowField) deriveDirections() map[world.Point]world.Point {
	directions := make(map[world.Point]world.Point, len(f.distances))

	for tile, dist := range f.distances {
		if tile == f.destination {
			directions[tile] = world.Point{X: 0, Y: 0}
			continue
		}

		bestDist := dist
		best := tile
		found := false
		for _, dir := range world.AllEightDirections() {
			dr, dc := dir.Delta()
			n := world.Point{X: tile.X + dc, Y: tile.Y + dr}
			nd, ok := f.distances[n]
			if !ok {
				continue
			}
			if !found || nd < bestDist {
				found = true
				bestDist = nd
				best = n
			}
		}
		if !found {
			directions[tile] = world.Point{X: 0, Y: 0}
			continue
		}
		directions[tile] = world.Point{X: best.X - tile.X, Y: best.Y - tile.Y}
	}
	return directions
}

// Direction returns the unit vector at tile pointing toward the
// destination, or ErrUnknownTile if tile is unreachable.
func (f *FlowField) Direction(tile world.Point) (world.Point, error) {
	d, ok := f.directions[tile]
	if !ok {
		return world.Point{}, ErrUnknownTile
	}
	return d, nil
}

// Distance returns the BFS distance from tile to the destination, or
// ErrUnknownTile if tile is unreachable.
func (f *FlowField) Distance(tile world.Point) (int, error) {
	d, ok := f.distances[tile]
	if !ok {
		return 0, ErrUnknownTile
	}
	return d, nil
}
