package devtools

import (
	"fmt"

	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/state"
)

// devMapRows is a 30x15 layout that puts most shape states on screen at once:
// a grass field with dirt patches, holes and a checker row, free-standing
// grass runs, rings and crosses, and a dirt ring on empty ground.
var devMapRows = []string{
	"gggggggggggggg................",
	"gggggggggggggg..g...gg...ggg..",
	"ggddddgggggggg......gg...g.g..",
	"ggddddggggdggg..ggg......ggg..",
	"ggddddgggdddgg..g.g...........",
	"gggggggggdgdgg..ggg...g.g.g...",
	"gggggggggdddgg.........g.g....",
	"gggdggggggdggg..ggggg.........",
	"gggggggggggggg..g...g..gggg...",
	"gg.ggggg.ggggg..g.g.g..g..g...",
	"gggggggggggggg..g...g..gggg...",
	"gdgdgdgdgdgdgg..ggggg.........",
	"gggggggggggggg.......ddddd....",
	"..............ggggg..d...d....",
	".g.gg.ggg.....g...g..ddddd....",
}

// GridFromRows builds a grid from equal-length rows of 'g' (grass), 'd' (dirt)
// and '.' (empty).
func GridFromRows(tileSize float64, rows ...string) (*world.Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("row 0 is empty")
	}

	grid := world.NewGrid(cols, len(rows), tileSize)
	for row, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", row, len(line), cols)
		}
		for col, ch := range line {
			switch ch {
			case 'g':
				grid.SetCellType(col, row, world.Grass)
			case 'd':
				grid.SetCellType(col, row, world.Dirt)
			case '.':
			default:
				return nil, fmt.Errorf("unknown tile %q at %d:%d", ch, col, row)
			}
		}
	}
	return grid, nil
}

// DevMap returns the developer showcase grid
func DevMap(tileSize float64) *world.Grid {
	grid, err := GridFromRows(tileSize, devMapRows...)
	if err != nil {
		panic(err)
	}
	return grid
}

// SwitchToDevMap replaces the game's grid with the developer showcase grid,
// keeping the tile size, the player and the camera.
func SwitchToDevMap(g *state.Game) {
	g.Grid = DevMap(g.Grid.TileSize())
	g.Edits = 0
}
