package atlas

import (
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/autotile"
)

// DefaultTileSize is the pixel size of one tile in TextureAtlas.png
const DefaultTileSize = 16

// cell is a (col, row) position in the atlas, counted in tiles
type cell struct {
	col, row int
}

var grassCells = map[autotile.ShapeState]cell{
	autotile.Center:          {1, 1},
	autotile.EdgeNorth:       {1, 0},
	autotile.EdgeWest:        {0, 1},
	autotile.EdgeEast:        {2, 1},
	autotile.EdgeSouth:       {1, 2},
	autotile.CornerNorthWest: {0, 0},
	autotile.CornerNorthEast: {2, 0},
	autotile.CornerSouthWest: {0, 2},
	autotile.CornerSouthEast: {2, 2},

	autotile.Isolated:     {3, 3},
	autotile.ColumnNorth:  {3, 0},
	autotile.ColumnSouth:  {3, 2},
	autotile.RowWest:      {0, 3},
	autotile.RowEast:      {2, 3},
	autotile.RowMiddle:    {1, 3},
	autotile.ColumnMiddle: {3, 1},

	autotile.Cross:           {8, 4},
	autotile.DiagonalRising:  {9, 0},
	autotile.DiagonalFalling: {9, 1},

	autotile.NotchSouthEast: {5, 1},
	autotile.NotchSouthWest: {6, 1},
	autotile.NotchNorthEast: {5, 2},
	autotile.NotchNorthWest: {6, 2},

	autotile.OpenEast:  {5, 4},
	autotile.OpenWest:  {6, 4},
	autotile.OpenNorth: {8, 2},
	autotile.OpenSouth: {8, 1},

	autotile.StubNorth: {8, 0},
	autotile.StubSouth: {8, 3},
	autotile.StubWest:  {4, 4},
	autotile.StubEast:  {7, 4},

	autotile.SpurNorthWest: {4, 0},
	autotile.SpurNorthEast: {7, 0},
	autotile.SpurSouthWest: {4, 3},
	autotile.SpurSouthEast: {7, 3},

	autotile.BranchNorthOpenSouthEast: {5, 0},
	autotile.BranchNorthOpenSouthWest: {6, 0},
	autotile.BranchSouthOpenNorthEast: {5, 3},
	autotile.BranchSouthOpenNorthWest: {6, 3},
	autotile.BranchWestOpenNorthEast:  {4, 2},
	autotile.BranchWestOpenSouthEast:  {4, 1},
	autotile.BranchEastOpenNorthWest:  {7, 2},
	autotile.BranchEastOpenSouthWest:  {7, 1},

	autotile.KeepNorthEast: {9, 3},
	autotile.KeepSouthWest: {10, 2},
	autotile.KeepSouthEast: {9, 2},
	autotile.KeepNorthWest: {10, 3},

	autotile.TransitionSouth:      {1, 7},
	autotile.TransitionNorth:      {1, 9},
	autotile.TransitionEast:       {0, 8},
	autotile.TransitionWest:       {2, 8},
	autotile.TransitionNorthEast:  {0, 9},
	autotile.TransitionNorthWest:  {2, 9},
	autotile.TransitionSouthEast:  {0, 7},
	autotile.TransitionSouthWest:  {2, 7},
	autotile.TransitionHorizontal: {0, 10},
	autotile.TransitionVertical:   {1, 10},
}

var dirtCells = map[autotile.ShapeState]cell{
	autotile.Center:          {12, 1},
	autotile.EdgeNorth:       {12, 0},
	autotile.EdgeWest:        {11, 1},
	autotile.EdgeEast:        {13, 1},
	autotile.EdgeSouth:       {12, 2},
	autotile.CornerNorthWest: {11, 0},
	autotile.CornerNorthEast: {13, 0},
	autotile.CornerSouthWest: {11, 2},
	autotile.CornerSouthEast: {13, 2},

	autotile.Isolated:     {14, 3},
	autotile.ColumnNorth:  {14, 0},
	autotile.ColumnSouth:  {14, 2},
	autotile.RowWest:      {11, 3},
	autotile.RowEast:      {13, 3},
	autotile.RowMiddle:    {12, 3},
	autotile.ColumnMiddle: {14, 1},

	autotile.Cross: {19, 4},
}

var playerIdleCell = cell{63, 65}

// PlayerIdle is the player's standing frame at DefaultTileSize
var PlayerIdle = NewBuilder(DefaultTileSize).cell(playerIdleCell.col, playerIdleCell.row)

// Default returns the table for the bundled TextureAtlas.png laid out in
// square tiles of tileSize pixels. A non-positive size means DefaultTileSize.
func Default(tileSize float64) *Table {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	b := NewBuilder(tileSize)
	for shape, c := range grassCells {
		b.TileAt(world.Grass, shape, c.col, c.row)
	}
	for shape, c := range dirtCells {
		b.TileAt(world.Dirt, shape, c.col, c.row)
	}
	b.Sprite(EntityPlayer, EntityIdle, b.cell(playerIdleCell.col, playerIdleCell.row))
	return b.Build()
}
