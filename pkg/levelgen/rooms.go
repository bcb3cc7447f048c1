package levelgen

import (
	"math/rand"

	"dungeonflow/pkg/engine/world"
)

// BuildRooms is RoomBuilder (spec.md §4.3): for every terminal leaf of the
// partition, attempt a room and stamp it into grid. Leaves that never
// yield a legal room (ratio retries exhausted) are skipped and left EMPTY;
// their index in the returned slice is simply absent.
func BuildRooms(p *Partition, grid *world.Grid, minRoomSize, retryBudget int, rng *rand.Rand) []world.Rect {
	var rooms []world.Rect
	for _, idx := range p.TerminalLeaves() {
		leaf := &p.Leaves[idx]
		room, ok := buildRoom(leaf.Bounds, minRoomSize, retryBudget, rng)
		if !ok {
			continue
		}
		leaf.Room = &room
		grid.PlaceRect(room)
		rooms = append(rooms, room)
	}
	return rooms
}

// buildRoom samples a room inside bounds: width/height uniform in
// [minRoomSize, dim-2] (the -2 reserves a 1-tile wall border on each side),
// retried until the width/height ratio falls inside [0.5, 2.0] or the
// retry budget is exhausted. The top-left is then chosen uniformly so the
// room plus its wall border fits inside bounds.
func buildRoom(bounds world.Rect, minRoomSize, retryBudget int, rng *rand.Rand) (world.Rect, bool) {
	maxW := bounds.Width() - 2
	maxH := bounds.Height() - 2
	if maxW < minRoomSize || maxH < minRoomSize {
		return world.Rect{}, false
	}

	var w, h int
	ok := false
	for attempt := 0; attempt < retryBudget; attempt++ {
		w = uniformInt(minRoomSize, maxW, rng)
		h = uniformInt(minRoomSize, maxH, rng)
		ratio := float64(w) / float64(h)
		if ratio >= 0.5 && ratio <= 2.0 {
			ok = true
			break
		}
	}
	if !ok {
		return world.Rect{}, false
	}

	// The room plus its 1-tile wall border must fit strictly inside
	// bounds, so the top-left ranges over [bounds.TopLeft+1, bounds.BottomRight-1-size].
	xLo := bounds.TopLeft.X + 1
	xHi := bounds.BottomRight.X - 1 - w
	yLo := bounds.TopLeft.Y + 1
	yHi := bounds.BottomRight.Y - 1 - h
	if xHi < xLo || yHi < yLo {
		return world.Rect{}, false
	}

	topLeft := world.Point{X: uniformInt(xLo, xHi, rng), Y: uniformInt(yLo, yHi, rng)}
	bottomRight := world.Point{X: topLeft.X + w, Y: topLeft.Y + h}
	return world.NewRect(topLeft, bottomRight), true
}
