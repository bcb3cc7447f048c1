package world

// Grid represents the dungeon map: a rectangle of Cells addressed by
// (row, col), each carrying a TileType. Storage and the neighbour-linking
// pass are adapted directly from the teacher's map-of-maps Grid; what
// changed is the payload (TileType instead of room name/flags) and that
// links now cover all eight neighbours instead of four.
type Grid struct {
	cellMap map[int]map[int]*Cell
	rows    int
	cols    int
}

// NewGrid creates a new grid with the given dimensions, every cell EMPTY.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// IsValidPosition checks if a row/col position is within grid bounds.
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds.
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	if g.cellMap == nil {
		return nil
	}
	rowMap, found := g.cellMap[row]
	if !found {
		return nil
	}
	return rowMap[col]
}

// At returns the cell at the given Point (x=col, y=row), or nil if out of
// bounds.
func (g *Grid) At(p Point) *Cell {
	return g.GetCell(p.Y, p.X)
}

// TileAt returns the tile type at the given Point, or EMPTY if out of
// bounds.
func (g *Grid) TileAt(p Point) TileType {
	if c := g.At(p); c != nil {
		return c.Type
	}
	return Empty
}

// SetTile sets the tile type at the given Point. No-op if out of bounds.
func (g *Grid) SetTile(p Point, t TileType) {
	if c := g.At(p); c != nil {
		c.Type = t
	}
}

// GetCellRelative returns the cell adjacent to the given cell in the
// specified direction.
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// CenterPosition returns the row and column of the grid center.
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// Build initializes the grid with the given dimensions, all cells EMPTY.
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cellMap = make(map[int]map[int]*Cell, rows)

	for row := 0; row < rows; row++ {
		g.cellMap[row] = make(map[int]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cellMap[row][col] = NewCell(row, col)
		}
	}
}

// BuildAllCellConnections links every cell to its eight neighbours. The
// links do not depend on tile types, so it may be called before any tile
// is stamped; A* and the flow field look neighbours up by coordinate and
// do not use these links.
func (g *Grid) BuildAllCellConnections() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.buildCellConnections(g.GetCell(row, col))
		}
	}
}

func (g *Grid) buildCellConnections(current *Cell) {
	if current == nil {
		return
	}
	for _, dir := range AllEightDirections() {
		if adj := g.GetCellRelative(current, dir); adj != nil {
			current.SetNeighbor(dir, adj)
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling fn for each.
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if cell := g.GetCell(row, col); cell != nil {
				fn(row, col, cell)
			}
		}
	}
}

// CountTiles returns the number of cells currently holding tile type t.
func (g *Grid) CountTiles(t TileType) int {
	n := 0
	g.ForEachCell(func(_, _ int, c *Cell) {
		if c.Type == t {
			n++
		}
	})
	return n
}

// FindFirst returns the position of the first cell holding tile type t in
// row-major scan order, and whether one was found.
func (g *Grid) FindFirst(t TileType) (Point, bool) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if c := g.GetCell(row, col); c != nil && c.Type == t {
				return Point{X: col, Y: row}, true
			}
		}
	}
	return Point{}, false
}

// PlaceRect stamps a rect into the grid: its interior becomes FLOOR, its
// perimeter becomes WALL. Walls only overwrite replaceable tiles (EMPTY,
// DEBUG_WALL, OBSTACLE); floors overwrite everything within the clamped
// interior except the perimeter itself, matching Rect.place_rect in the
// Python original (walls stamped first, then floor, so a hallway carved
// through an existing room wall reopens it).
func (g *Grid) PlaceRect(r Rect) {
	minX, maxX := clampRange(r.TopLeft.X, r.BottomRight.X, g.cols-1)
	minY, maxY := clampRange(r.TopLeft.Y, r.BottomRight.Y, g.rows-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := g.GetCell(y, x)
			if c != nil && IsWallReplaceable(c.Type) {
				c.Type = Wall
			}
		}
	}

	innerMinX, innerMaxX := clampRange(r.TopLeft.X+1, r.BottomRight.X-1, g.cols-2)
	innerMinY, innerMaxY := clampRange(r.TopLeft.Y+1, r.BottomRight.Y-1, g.rows-2)
	for y := innerMinY; y <= innerMaxY; y++ {
		for x := innerMinX; x <= innerMaxX; x++ {
			if c := g.GetCell(y, x); c != nil {
				c.Type = Floor
			}
		}
	}
}

func clampRange(lo, hi, maxIdx int) (int, int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > maxIdx {
		hi = maxIdx
	}
	return lo, hi
}
