// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Cell represents a single tile in the grid.
type Cell struct {
	// Ground material; Empty cells are neither drawn nor classified
	Type TileType

	// Grid position
	Col int
	Row int

	// World position of the top-left corner, in pixels
	X float64
	Y float64
}

// NewCell creates a new cell at the given grid position
func NewCell(col, row int, tileSize float64, t TileType) Cell {
	return Cell{
		Type: t,
		Col:  col,
		Row:  row,
		X:    float64(col) * tileSize,
		Y:    float64(row) * tileSize,
	}
}

// Occupied returns true if the cell holds a tile
func (c *Cell) Occupied() bool {
	return c != nil && c.Type.Occupied()
}

// String returns "col:row Type", handy in test failures and logs
func (c *Cell) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d:%d %s", c.Col, c.Row, c.Type)
}
