package world

// TileType identifies the ground material of a cell
type TileType int

// Tile types. Empty is also the sentinel returned for positions outside the grid.
const (
	Empty TileType = iota
	Grass
	Dirt

	TileTypeCount
)

// AllTileTypes returns every tile type, Empty included, for iteration
func AllTileTypes() []TileType {
	return []TileType{Empty, Grass, Dirt}
}

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Grass:
		return "Grass"
	case Dirt:
		return "Dirt"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the tile type is a known tile type
func (t TileType) IsValid() bool {
	return t >= Empty && t < TileTypeCount
}

// Occupied reports whether a tile of this type is present (drawn and classified)
func (t TileType) Occupied() bool {
	return t != Empty
}

// ParseTileType converts a name such as "grass" into a TileType
func ParseTileType(name string) (TileType, bool) {
	switch name {
	case "empty", "Empty", "":
		return Empty, true
	case "grass", "Grass":
		return Grass, true
	case "dirt", "Dirt":
		return Dirt, true
	default:
		return Empty, false
	}
}
