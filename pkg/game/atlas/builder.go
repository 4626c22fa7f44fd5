package atlas

import (
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/autotile"
)

// Builder collects atlas regions and produces a dense Table
type Builder struct {
	tileSize float64
	tiles    map[world.TileType]map[autotile.ShapeState]Region
	sprites  map[EntityKind]map[EntityState][]Region
}

// NewBuilder creates a builder for an atlas made of square tiles of tileSize pixels
func NewBuilder(tileSize float64) *Builder {
	return &Builder{
		tileSize: tileSize,
		tiles:    make(map[world.TileType]map[autotile.ShapeState]Region),
		sprites:  make(map[EntityKind]map[EntityState][]Region),
	}
}

// Tile registers the region for a tile type in a shape state
func (b *Builder) Tile(t world.TileType, shape autotile.ShapeState, r Region) *Builder {
	if b.tiles[t] == nil {
		b.tiles[t] = make(map[autotile.ShapeState]Region)
	}
	b.tiles[t][shape] = r
	return b
}

// TileAt registers a tile at grid position (col, row) of the atlas
func (b *Builder) TileAt(t world.TileType, shape autotile.ShapeState, col, row int) *Builder {
	return b.Tile(t, shape, b.cell(col, row))
}

// Sprite appends animation frames for an entity state
func (b *Builder) Sprite(kind EntityKind, state EntityState, frames ...Region) *Builder {
	if b.sprites[kind] == nil {
		b.sprites[kind] = make(map[EntityState][]Region)
	}
	b.sprites[kind][state] = append(b.sprites[kind][state], frames...)
	return b
}

func (b *Builder) cell(col, row int) Region {
	return Region{
		X: float64(col) * b.tileSize,
		Y: float64(row) * b.tileSize,
		W: b.tileSize,
		H: b.tileSize,
	}
}

// Build fills every (type, shape) slot. Missing shapes get the type's Center
// region, types without a Center get Placeholder.
func (b *Builder) Build() *Table {
	t := &Table{tileSize: b.tileSize}

	for _, tileType := range world.AllTileTypes() {
		shapes := b.tiles[tileType]
		fallback, ok := shapes[autotile.Center]
		if !ok || fallback.IsZero() {
			fallback = Placeholder
		}
		for _, shape := range autotile.AllShapes() {
			r, ok := shapes[shape]
			if !ok || r.IsZero() {
				r = fallback
			}
			t.tiles[tileType][shape] = r
		}
	}

	for kind, states := range b.sprites {
		if kind < 0 || kind >= EntityKindCount {
			continue
		}
		for state, frames := range states {
			if state < 0 || state >= EntityStateCount {
				continue
			}
			t.sprites[kind][state] = append([]Region(nil), frames...)
		}
	}

	return t
}
