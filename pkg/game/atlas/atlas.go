// Package atlas maps tile shapes and entity sprites to source rectangles in the
// texture atlas image.
package atlas

import (
	"image"

	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/autotile"
)

// Region is a rectangle in atlas pixel space
type Region struct {
	X, Y float64
	W, H float64
}

// Rect returns the region as an integer image rectangle, for SubImage
func (r Region) Rect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// IsZero returns true if the region has no area
func (r Region) IsZero() bool {
	return r.W <= 0 || r.H <= 0
}

// Placeholder is returned for tile types that have no tiles of their own
var Placeholder = Region{X: 0, Y: 0, W: 16, H: 16}

// EntityKind identifies a sprite sheet section for a moving entity
type EntityKind int

const (
	EntityPlayer EntityKind = iota

	EntityKindCount
)

// EntityState selects an animation strip of an entity
type EntityState int

const (
	EntityIdle EntityState = iota
	EntityWalk

	EntityStateCount
)

// String returns the string representation of an entity state
func (s EntityState) String() string {
	switch s {
	case EntityIdle:
		return "Idle"
	case EntityWalk:
		return "Walk"
	default:
		return "Unknown"
	}
}

// Table is the immutable lookup from (tile type, shape) and (entity, state) to
// atlas regions. Build one with a Builder; it is safe to share once built.
type Table struct {
	tiles    [world.TileTypeCount][autotile.ShapeCount]Region
	sprites  [EntityKindCount][EntityStateCount][]Region
	tileSize float64
}

// Resolve returns the atlas region for a tile type in a shape state.
// It never fails: unknown combinations fall back to the type's Center region,
// then to Placeholder.
func (t *Table) Resolve(tileType world.TileType, shape autotile.ShapeState) Region {
	if !tileType.IsValid() {
		return Placeholder
	}
	if !shape.IsValid() {
		shape = autotile.Center
	}
	return t.tiles[tileType][shape]
}

// Sprite returns the animation frame of an entity state. Frame numbers wrap;
// states without frames use the idle strip.
func (t *Table) Sprite(kind EntityKind, state EntityState, frame int) Region {
	frames := t.frames(kind, state)
	if len(frames) == 0 {
		return Placeholder
	}
	frame %= len(frames)
	if frame < 0 {
		frame += len(frames)
	}
	return frames[frame]
}

// FrameCount returns the number of frames Sprite cycles through for the state
func (t *Table) FrameCount(kind EntityKind, state EntityState) int {
	return len(t.frames(kind, state))
}

// TileSize returns the source size of one atlas tile
func (t *Table) TileSize() float64 {
	return t.tileSize
}

func (t *Table) frames(kind EntityKind, state EntityState) []Region {
	if kind < 0 || kind >= EntityKindCount {
		return nil
	}
	if state < 0 || state >= EntityStateCount {
		state = EntityIdle
	}
	if frames := t.sprites[kind][state]; len(frames) > 0 {
		return frames
	}
	return t.sprites[kind][EntityIdle]
}
