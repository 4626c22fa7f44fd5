package world

import "math"

// Grid is a fixed-size map of typed cells addressed by (col, row).
// Cell types may change, dimensions never do.
type Grid struct {
	cells    []Cell
	cols     int
	rows     int
	tileSize float64
}

// NewGrid creates a new grid of Empty cells with the given dimensions
func NewGrid(cols, rows int, tileSize float64) *Grid {
	g := &Grid{}
	g.Build(cols, rows, tileSize)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(cols, rows int, tileSize float64) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}
	if tileSize <= 0 {
		panic("Grid tile size must be positive")
	}

	g.cols = cols
	g.rows = rows
	g.tileSize = tileSize
	g.cells = make([]Cell, cols*rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[row*cols+col] = NewCell(col, row, tileSize, Empty)
		}
	}
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// TileSize returns the world size of one cell, in pixels
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// WorldSize returns the world width and height covered by the grid
func (g *Grid) WorldSize() (width, height float64) {
	return float64(g.cols) * g.tileSize, float64(g.rows) * g.tileSize
}

// IsValidPosition checks if a col/row position is within grid bounds
func (g *Grid) IsValidPosition(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(col, row int) *Cell {
	if !g.IsValidPosition(col, row) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// SafeNeighborType returns the type of the cell at (col, row), or Empty when the
// position lies outside the grid.
func (g *Grid) SafeNeighborType(col, row int) TileType {
	cell := g.GetCell(col, row)
	if cell == nil {
		return Empty
	}
	return cell.Type
}

// SetCellType changes the type of the cell at (col, row).
// Writes outside the grid are ignored.
func (g *Grid) SetCellType(col, row int, t TileType) {
	cell := g.GetCell(col, row)
	if cell == nil || !t.IsValid() {
		return
	}
	cell.Type = t
}

// Fill sets every cell to the given type
func (g *Grid) Fill(t TileType) {
	if !t.IsValid() {
		return
	}
	for i := range g.cells {
		g.cells[i].Type = t
	}
}

// CellAt converts a world position into the grid position containing it.
// The result may be outside the grid; check with IsValidPosition.
func (g *Grid) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / g.tileSize)), int(math.Floor(y / g.tileSize))
}

// CountType returns how many cells currently have the given type
func (g *Grid) CountType(t TileType) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Type == t {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(col, row int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(col, row, &g.cells[row*g.cols+col])
		}
	}
}

// ForEachCellIn iterates over the cells of the inclusive range [minCol,maxCol]x[minRow,maxRow],
// clipped to the grid.
func (g *Grid) ForEachCellIn(minCol, minRow, maxCol, maxRow int, fn func(col, row int, cell *Cell)) {
	minCol = max(minCol, 0)
	minRow = max(minRow, 0)
	maxCol = min(maxCol, g.cols-1)
	maxRow = min(maxRow, g.rows-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			fn(col, row, &g.cells[row*g.cols+col])
		}
	}
}
