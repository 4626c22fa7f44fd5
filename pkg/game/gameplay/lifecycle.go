package gameplay

import (
	engineinput "allfarm/pkg/engine/input"
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/state"
)

// Events reports what a Step changed, for logging
type Events struct {
	Painted     bool
	PaintedType world.TileType
	PaintedCol  int
	PaintedRow  int

	Zoomed        bool
	GridToggled   bool
	DumpRequested bool
	Quit          bool
}

// Step advances the game by one tick of dt seconds.
//
// Order: pressed actions, zoom, painting under the player's current cell,
// movement, then the camera follows the new player position.
func Step(g *state.Game, f engineinput.Frame, dt float64) Events {
	var ev Events

	f.Pressed.Each(func(a engineinput.Action) {
		ProcessIntent(g, a, &ev)
	})

	if f.Wheel != 0 {
		g.Camera.ApplyWheel(f.Wheel)
		ev.Zoomed = true
	}

	if t, ok := PaintTarget(f); ok {
		if g.Paint(t) {
			ev.Painted = true
			ev.PaintedType = t
			ev.PaintedCol, ev.PaintedRow = g.HoverCell()
		}
	}

	MovePlayer(&g.Player, f, dt)
	g.Camera.Follow(g.Player.X, g.Player.Y, g.ViewWidth, g.ViewHeight)

	return ev
}
