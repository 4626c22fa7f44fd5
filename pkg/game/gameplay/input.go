// Package gameplay provides the per-tick game logic: player movement, painting,
// zoom and the debug toggles.
package gameplay

import (
	engineinput "allfarm/pkg/engine/input"
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/state"
)

// ProcessIntent handles a just-pressed action. Held actions are handled by
// MovePlayer and PaintTarget.
func ProcessIntent(g *state.Game, action engineinput.Action, ev *Events) {
	switch action {
	case engineinput.ActionQuit:
		g.Quit = true
		ev.Quit = true

	case engineinput.ActionToggleGrid:
		g.DebugGrid = !g.DebugGrid
		ev.GridToggled = true

	case engineinput.ActionDumpMap:
		ev.DumpRequested = true
	}
}

// PaintTarget returns the tile type the held paint keys ask for. When several
// are held, erase beats dirt and dirt beats grass.
func PaintTarget(f engineinput.Frame) (world.TileType, bool) {
	switch {
	case f.IsHeld(engineinput.ActionErase):
		return world.Empty, true
	case f.IsHeld(engineinput.ActionPaintDirt):
		return world.Dirt, true
	case f.IsHeld(engineinput.ActionPaintGrass):
		return world.Grass, true
	default:
		return world.Empty, false
	}
}
