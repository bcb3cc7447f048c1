package levelgen

import (
	"container/heap"
	"math"
	"math/rand"

	"dungeonflow/pkg/engine/world"
)

// Edge is one weighted connection between two rooms, addressed by index
// into the room slice passed to BuildCompleteGraph.
type Edge struct {
	Src, Dst int
	Cost     float64
}

// BuildCompleteGraph returns the complete weighted graph over rooms: one
// edge per unordered pair, cost the Euclidean distance between room
// centers (spec.md §4.4).
func BuildCompleteGraph(rooms []world.Rect) []Edge {
	var edges []Edge
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, Edge{Src: i, Dst: j, Cost: rooms[i].DistanceTo(rooms[j])})
		}
	}
	return edges
}

// mstCandidate is a candidate (cost, src, dst) triple waiting in Prim's
// priority queue. seq records insertion order so the heap's tie-breaking
// stays deterministic when two candidates share a cost, per spec.md §9.
type mstCandidate struct {
	cost     float64
	src, dst int
	seq      int
}

type candidateHeap []mstCandidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x any)   { *h = append(*h, x.(mstCandidate)) }
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MinimumSpanningTree runs Prim's algorithm (spec.md §4.4) over the
// complete graph, seeded at room index 0. Returns exactly len(rooms)-1
// edges, or nil if fewer than two rooms exist.
func MinimumSpanningTree(rooms []world.Rect, complete []Edge) []Edge {
	if len(rooms) < 2 {
		return nil
	}

	adjacency := make([][]Edge, len(rooms))
	for _, e := range complete {
		adjacency[e.Src] = append(adjacency[e.Src], e)
		adjacency[e.Dst] = append(adjacency[e.Dst], Edge{Src: e.Dst, Dst: e.Src, Cost: e.Cost})
	}

	visited := make([]bool, len(rooms))
	visited[0] = true
	pending := &candidateHeap{}
	heap.Init(pending)
	seq := 0
	pushRoom := func(room int) {
		for _, e := range adjacency[room] {
			heap.Push(pending, mstCandidate{cost: e.Cost, src: e.Src, dst: e.Dst, seq: seq})
			seq++
		}
	}
	pushRoom(0)

	var mst []Edge
	for pending.Len() > 0 && len(mst) < len(rooms)-1 {
		cand := heap.Pop(pending).(mstCandidate)
		if visited[cand.dst] {
			continue
		}
		visited[cand.dst] = true
		mst = append(mst, Edge{Src: cand.src, Dst: cand.dst, Cost: cand.cost})
		pushRoom(cand.dst)
	}
	return mst
}

// ExtraConnections selects a bounded, random set of non-MST edges to add
// back, per spec.md §4.4: candidates are every complete-graph edge not in
// the MST (by unordered pair) whose cost is below
// maxMSTCost*extraMaximumPercentage, deduped against both the MST and each
// other, then thinned to round(len(candidates)*removedConnectionLimit).
func ExtraConnections(complete, mst []Edge, extraMaximumPercentage, removedConnectionLimit float64, rng *rand.Rand) []Edge {
	if len(mst) == 0 {
		return nil
	}

	maxCost := 0.0
	inMST := make(map[[2]int]bool, len(mst))
	for _, e := range mst {
		if e.Cost > maxCost {
			maxCost = e.Cost
		}
		inMST[pairKey(e.Src, e.Dst)] = true
	}
	threshold := maxCost * extraMaximumPercentage

	seen := make(map[[2]int]bool, len(inMST))
	for k := range inMST {
		seen[k] = true
	}

	var candidates []Edge
	for _, e := range complete {
		key := pairKey(e.Src, e.Dst)
		if seen[key] {
			continue
		}
		if e.Cost >= threshold {
			continue
		}
		seen[key] = true
		candidates = append(candidates, e)
	}

	keep := int(math.Round(float64(len(candidates)) * removedConnectionLimit))
	if keep >= len(candidates) {
		return candidates
	}
	if keep <= 0 {
		return nil
	}

	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	return candidates[:keep]
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
