package autotile

import "allfarm/pkg/engine/world"

// Grid is the read side of a tile map the classifier needs.
// *world.Grid satisfies it.
type Grid interface {
	SafeNeighborType(col, row int) world.TileType
}

// Mask is a set of directions, one bit per world.Direction
type Mask uint8

// Bits returns the mask containing the given directions
func Bits(dirs ...world.Direction) Mask {
	var m Mask
	for _, d := range dirs {
		m |= 1 << uint(d)
	}
	return m
}

// Has returns true if every given direction is in the mask
func (m Mask) Has(dirs ...world.Direction) bool {
	want := Bits(dirs...)
	return m&want == want
}

// Neighborhood holds a tile's type and the types of its eight neighbours
type Neighborhood struct {
	Self  world.TileType
	Types [8]world.TileType // indexed by world.Direction
}

// Sample reads the neighbourhood of (col, row). Neighbours outside the grid are Empty.
func Sample(g Grid, col, row int) Neighborhood {
	nb := Neighborhood{Self: g.SafeNeighborType(col, row)}
	for _, d := range world.AllDirections() {
		dc, dr := d.Delta()
		nb.Types[d] = g.SafeNeighborType(col+dc, row+dr)
	}
	return nb
}

// Occupied returns the mask of non-Empty neighbours
func (nb Neighborhood) Occupied() Mask {
	var m Mask
	for d, t := range nb.Types {
		if t.Occupied() {
			m |= 1 << uint(d)
		}
	}
	return m
}

// Is reports whether the neighbour in direction d has type t
func (nb Neighborhood) Is(d world.Direction, t world.TileType) bool {
	return nb.Types[d] == t
}
