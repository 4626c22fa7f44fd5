package state

import (
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/config"
	"allfarm/pkg/game/generator"
)

// Game represents the game state for ALLFARM. It owns the grid, the player and
// the camera for the lifetime of the process.
type Game struct {
	Grid   *world.Grid
	Player Player
	Camera Camera

	// Viewport size in screen pixels
	ViewWidth  float64
	ViewHeight float64

	DebugGrid bool
	Quit      bool

	// Edits counts tile changes made by painting
	Edits int
}

// NewGame creates a new game from configuration: a grid laid out by the
// configured generator, the player at the origin facing east, camera at rest.
func NewGame(cfg config.Config) *Game {
	gen, ok := generator.ByName(cfg.World.Layout)
	if !ok {
		gen = generator.DefaultGenerator
	}
	grid := gen.Generate(cfg.GeneratorParams())

	g := &Game{
		Grid:       grid,
		Player:     NewPlayer(cfg.Player),
		Camera:     NewCamera(cfg.Camera),
		ViewWidth:  float64(cfg.Window.Width),
		ViewHeight: float64(cfg.Window.Height),
		DebugGrid:  cfg.Debug.Grid,
	}
	g.Camera.Follow(g.Player.X, g.Player.Y, g.ViewWidth, g.ViewHeight)
	return g
}

// Resize updates the viewport size
func (g *Game) Resize(width, height float64) {
	g.ViewWidth = width
	g.ViewHeight = height
	g.Camera.Follow(g.Player.X, g.Player.Y, width, height)
}

// HoverCell returns the grid position under the player's origin. It may lie
// outside the grid.
func (g *Game) HoverCell() (col, row int) {
	return g.Grid.CellAt(g.Player.X, g.Player.Y)
}

// HoverInGrid returns true if the hover cell is a grid cell
func (g *Game) HoverInGrid() bool {
	return g.Grid.IsValidPosition(g.HoverCell())
}

// Paint sets the hover cell's type. It returns true if the cell changed.
func (g *Game) Paint(t world.TileType) bool {
	col, row := g.HoverCell()
	cell := g.Grid.GetCell(col, row)
	if cell == nil || cell.Type == t || !t.IsValid() {
		return false
	}
	g.Grid.SetCellType(col, row, t)
	g.Edits++
	return true
}
