// Package renderer turns game state into draw commands. Backends such as the
// ebiten renderer execute a Frame through the Surface interface.
package renderer

import (
	"image/color"
	"math"

	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/atlas"
	"allfarm/pkg/game/autotile"
	"allfarm/pkg/game/locale"
	"allfarm/pkg/game/state"
)

// Colours used by the world view
var (
	ColorBackground = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorGridLine   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	ColorHover      = color.RGBA{R: 255, G: 255, B: 255, A: 50}
	ColorOverlay    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Overlay text layout in screen pixels
const (
	OverlayX       = 10
	OverlayY       = 50
	OverlaySpacing = 50
)

// Rect is a rectangle in world space
type Rect struct {
	X, Y, W, H float64
}

// Line is a segment in world space
type Line struct {
	X1, Y1, X2, Y2 float64
}

// TileCommand blits one atlas region to one grid cell
type TileCommand struct {
	Col, Row int
	Type     world.TileType
	Shape    autotile.ShapeState
	Src      atlas.Region
	Dst      Rect
}

// SpriteCommand blits an entity frame
type SpriteCommand struct {
	Src atlas.Region
	Dst Rect
}

// Frame is everything needed to draw one tick. World-space parts are drawn
// through Camera in the order Tiles, GridLines, Player, Hover; Overlay is
// screen-space text.
type Frame struct {
	Camera    state.Camera
	Tiles     []TileCommand
	GridLines []Line
	Player    SpriteCommand
	Hover     *Rect
	Overlay   []string
}

// Build classifies every visible non-Empty cell and produces the frame's
// draw commands. A nil catalog prints untranslated keys.
func Build(g *state.Game, table *atlas.Table, cat *locale.Catalog) Frame {
	f := Frame{Camera: g.Camera}
	size := g.Grid.TileSize()

	minCol, minRow, maxCol, maxRow := VisibleCells(g)
	g.Grid.ForEachCellIn(minCol, minRow, maxCol, maxRow, func(col, row int, cell *world.Cell) {
		if !cell.Occupied() {
			return
		}
		shape := autotile.Classify(g.Grid, col, row)
		f.Tiles = append(f.Tiles, TileCommand{
			Col:   col,
			Row:   row,
			Type:  cell.Type,
			Shape: shape,
			Src:   table.Resolve(cell.Type, shape),
			Dst:   Rect{X: cell.X, Y: cell.Y, W: size, H: size},
		})
	})

	if g.DebugGrid {
		f.GridLines = GridLines(g.Grid)
	}

	p := &g.Player
	frame := p.Frame(table.FrameCount(atlas.EntityPlayer, p.State))
	f.Player = SpriteCommand{
		Src: table.Sprite(atlas.EntityPlayer, p.State, frame),
		Dst: Rect{X: p.X, Y: p.Y, W: p.SpriteSize, H: p.SpriteSize},
	}

	col, row := g.HoverCell()
	if g.Grid.IsValidPosition(col, row) {
		f.Hover = &Rect{X: float64(col) * size, Y: float64(row) * size, W: size, H: size}
	}

	f.Overlay = OverlayLines(g, cat)
	return f
}

// VisibleCells returns the inclusive cell range under the camera. The range
// is not clipped to the grid.
func VisibleCells(g *state.Game) (minCol, minRow, maxCol, maxRow int) {
	minX, minY, maxX, maxY := g.Camera.VisibleRect(g.ViewWidth, g.ViewHeight)
	size := g.Grid.TileSize()
	return int(math.Floor(minX / size)), int(math.Floor(minY / size)),
		int(math.Floor(maxX / size)), int(math.Floor(maxY / size))
}

// GridLines returns the cell boundaries of the whole grid
func GridLines(grid *world.Grid) []Line {
	size := grid.TileSize()
	width, height := grid.WorldSize()

	lines := make([]Line, 0, grid.Cols()+grid.Rows()+2)
	for col := 0; col <= grid.Cols(); col++ {
		x := float64(col) * size
		lines = append(lines, Line{X1: x, Y1: 0, X2: x, Y2: height})
	}
	for row := 0; row <= grid.Rows(); row++ {
		y := float64(row) * size
		lines = append(lines, Line{X1: 0, Y1: y, X2: width, Y2: y})
	}
	return lines
}

// OverlayLines returns the debug text: hover cell, its world position, the
// last zoom step and the player's facing
func OverlayLines(g *state.Game, cat *locale.Catalog) []string {
	col, row := g.HoverCell()
	size := g.Grid.TileSize()
	return []string{
		cat.Get("OVERLAY_CELL", col, row),
		cat.Get("OVERLAY_WORLD", float64(col)*size, float64(row)*size),
		cat.Get("OVERLAY_SCALE", g.Camera.ScaleFactor),
		cat.Get("OVERLAY_FACING", g.Player.Facing.String()),
	}
}
