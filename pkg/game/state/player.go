package state

import (
	"math"

	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/atlas"
	"allfarm/pkg/game/config"
)

// Player is the player character
type Player struct {
	X, Y   float64 // world position of the sprite's top-left corner
	VX, VY float64 // velocity in pixels per second

	Facing   world.Direction
	State    atlas.EntityState
	AnimTime float64 // seconds spent in the current state

	Accel            float64
	SprintMultiplier float64
	SpriteSize       float64
	FrameDuration    float64
}

// NewPlayer creates a player at the origin facing east
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Facing:           world.East,
		State:            atlas.EntityIdle,
		Accel:            cfg.Accel,
		SprintMultiplier: cfg.SprintMultiplier,
		SpriteSize:       cfg.SpriteSize,
		FrameDuration:    cfg.FrameDuration,
	}
}

// Moving returns true if the player has a non-zero velocity
func (p *Player) Moving() bool {
	return p.VX != 0 || p.VY != 0
}

// Frame returns the animation frame index for a strip of count frames
func (p *Player) Frame(count int) int {
	if count <= 1 || p.FrameDuration <= 0 {
		return 0
	}
	return int(math.Floor(p.AnimTime/p.FrameDuration)) % count
}

// SetState switches animation state, restarting the animation clock on change
func (p *Player) SetState(s atlas.EntityState) {
	if p.State != s {
		p.State = s
		p.AnimTime = 0
	}
}
