package gameplay

import (
	engineinput "allfarm/pkg/engine/input"
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/atlas"
	"allfarm/pkg/game/state"
)

// MovePlayer applies the frame's movement keys to the player for dt seconds.
// Velocity is the input axis times Accel, scaled by SprintMultiplier while
// sprinting. Facing keeps its last value while standing still.
func MovePlayer(p *state.Player, f engineinput.Frame, dt float64) {
	dx, dy := f.Axis()

	accel := p.Accel
	if f.IsHeld(engineinput.ActionSprint) {
		accel *= p.SprintMultiplier
	}

	p.VX = dx * accel
	p.VY = dy * accel
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if dir, ok := world.DirectionFromVector(p.VX, p.VY); ok {
		p.Facing = dir
	}

	if p.Moving() {
		p.SetState(atlas.EntityWalk)
	} else {
		p.SetState(atlas.EntityIdle)
	}
	p.AnimTime += dt
}
