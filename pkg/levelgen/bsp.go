package levelgen

import (
	"math/rand"

	"dungeonflow/pkg/engine/world"
)

// LeafState records how a BSP leaf resolved: still waiting on the
// work-list, split into two children, or rejected as too small to split
// (and therefore a room candidate).
type LeafState int

const (
	Unsplit LeafState = iota
	SplitHorizontal
	SplitVertical
	RejectedSplit
)

// Leaf is one node of the BSP tree, stored by value inside Partition's
// arena and addressed by integer index rather than pointer. spec.md §9
// calls for this explicitly in place of the source's nullable
// pointer-recursion tree, to avoid recursion-depth concerns and keep the
// tree trivially inspectable in tests.
type Leaf struct {
	Bounds world.Rect
	State  LeafState

	// Left and Right index into Partition.Leaves, or -1 if this leaf has
	// no children (Unsplit or RejectedSplit).
	Left, Right int

	// Room is set by RoomBuilder for terminal leaves that yielded a room;
	// nil until then, and always nil for leaves with children.
	Room *world.Rect
}

// IsTerminal reports whether this leaf has no children, i.e. it is either
// still Unsplit (work-list never reached it) or RejectedSplit.
func (l Leaf) IsTerminal() bool {
	return l.Left < 0 && l.Right < 0
}

// Partition is the BSP tree produced by Run, stored as a flat arena rooted
// at index 0.
type Partition struct {
	Leaves []Leaf
}

// NewPartition seeds a partition with a single root leaf covering bounds.
func NewPartition(bounds world.Rect) *Partition {
	return &Partition{Leaves: []Leaf{{Bounds: bounds, Left: -1, Right: -1}}}
}

// TerminalLeaves returns the indices of every leaf with no children, in
// arena order (which is breadth-first since children are always appended
// after their parent is dequeued).
func (p *Partition) TerminalLeaves() []int {
	var out []int
	for i, leaf := range p.Leaves {
		if leaf.IsTerminal() {
			out = append(out, i)
		}
	}
	return out
}

// Run executes BSPPartitioner (spec.md §4.2): a FIFO work-list seeded with
// the root, splitting leaves until splitIterations is exhausted or the
// work-list empties. A leaf may only split if both its width and height
// are at least 2*minContainerSize+1; otherwise it becomes RejectedSplit and
// is a room candidate. Leaves still queued when splitIterations hits zero
// are left Unsplit — they are terminal (no children) and therefore also
// room candidates, same as a rejected split.
func (p *Partition) Run(splitIterations, minContainerSize int, rng *rand.Rand) {
	queue := []int{0}
	remaining := splitIterations

	for len(queue) > 0 && remaining > 0 {
		idx := queue[0]
		queue = queue[1:]

		bounds := p.Leaves[idx].Bounds
		if !canSplit(bounds, minContainerSize) {
			p.Leaves[idx].State = RejectedSplit
			continue
		}

		vertical := chooseOrientation(bounds, rng)
		left, right := splitRect(bounds, vertical, minContainerSize, rng)

		leftIdx := len(p.Leaves)
		p.Leaves = append(p.Leaves, Leaf{Bounds: left, Left: -1, Right: -1})
		rightIdx := len(p.Leaves)
		p.Leaves = append(p.Leaves, Leaf{Bounds: right, Left: -1, Right: -1})

		p.Leaves[idx].Left = leftIdx
		p.Leaves[idx].Right = rightIdx
		if vertical {
			p.Leaves[idx].State = SplitVertical
		} else {
			p.Leaves[idx].State = SplitHorizontal
		}
		remaining--

		queue = append(queue, leftIdx, rightIdx)
	}
}

// canSplit reports whether a rect is large enough to split in either
// orientation: both dimensions must be at least 2*minContainerSize+1, the
// +1 accounting for the shared wall tile abutting the two children.
func canSplit(r world.Rect, minContainerSize int) bool {
	threshold := 2*minContainerSize + 1
	return r.Width() >= threshold && r.Height() >= threshold
}

// chooseOrientation implements spec.md §4.2's orientation rule: a strongly
// wide rect always splits vertically, a strongly tall one always
// horizontally, otherwise the choice is uniform random. Returns true for
// vertical.
func chooseOrientation(r world.Rect, rng *rand.Rand) bool {
	w, h := float64(r.Width()), float64(r.Height())
	switch {
	case w > 1.25*h:
		return true
	case h > 1.25*w:
		return false
	default:
		return rng.Intn(2) == 0
	}
}

// splitRect divides bounds into two children abutting at a shared wall
// column (vertical split) or row (horizontal split), drawn uniformly from
// the range that leaves both children at least minContainerSize wide/tall.
func splitRect(bounds world.Rect, vertical bool, minContainerSize int, rng *rand.Rand) (world.Rect, world.Rect) {
	if vertical {
		lo := bounds.TopLeft.X + minContainerSize
		hi := bounds.BottomRight.X - minContainerSize
		splitX := uniformInt(lo, hi, rng)

		left := world.NewRect(bounds.TopLeft, world.Point{X: splitX, Y: bounds.BottomRight.Y})
		right := world.NewRect(world.Point{X: splitX, Y: bounds.TopLeft.Y}, bounds.BottomRight)
		return left, right
	}

	lo := bounds.TopLeft.Y + minContainerSize
	hi := bounds.BottomRight.Y - minContainerSize
	splitY := uniformInt(lo, hi, rng)

	top := world.NewRect(bounds.TopLeft, world.Point{X: bounds.BottomRight.X, Y: splitY})
	bottom := world.NewRect(world.Point{X: bounds.TopLeft.X, Y: splitY}, bounds.BottomRight)
	return top, bottom
}

// uniformInt draws an integer uniformly from [lo, hi] inclusive. hi is
// guaranteed >= lo by canSplit's threshold check at the call site.
func uniformInt(lo, hi int, rng *rand.Rand) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
