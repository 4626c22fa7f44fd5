// Package autotile picks the visual variant of a ground tile from the types of
// its eight neighbours.
package autotile

// ShapeState is the neighbourhood-derived category of a tile. Compass names
// refer to the side or diagonal of the tile they describe.
type ShapeState int

const (
	// Center is a tile surrounded by its own kind; also the fallback state
	Center ShapeState = iota

	// Edges: one orthogonal neighbour missing
	EdgeNorth
	EdgeEast
	EdgeSouth
	EdgeWest

	// Outer corners: two adjacent orthogonal neighbours present
	CornerNorthWest
	CornerNorthEast
	CornerSouthWest
	CornerSouthEast

	// One-tile-wide shapes
	Isolated
	ColumnNorth
	ColumnSouth
	RowWest
	RowEast
	RowMiddle
	ColumnMiddle

	// All orthogonals present, diagonals decide
	Cross
	DiagonalRising  // only NE and SW diagonals present
	DiagonalFalling // only NW and SE diagonals present
	NotchNorthWest  // only the NW diagonal missing
	NotchNorthEast
	NotchSouthWest
	NotchSouthEast
	OpenNorth // both north diagonals missing
	OpenEast
	OpenSouth
	OpenWest
	KeepNorthEast // only the NE diagonal present
	KeepNorthWest
	KeepSouthEast
	KeepSouthWest

	// One orthogonal missing, a single-tile run leaves through an open diagonal.
	// BranchNorthOpenSouthEast: north side missing, SE diagonal open.
	BranchNorthOpenSouthEast
	BranchNorthOpenSouthWest
	BranchSouthOpenNorthEast
	BranchSouthOpenNorthWest
	BranchWestOpenNorthEast
	BranchWestOpenSouthEast
	BranchEastOpenNorthWest
	BranchEastOpenSouthWest

	// Outer corner whose inner diagonal is open
	SpurNorthWest
	SpurNorthEast
	SpurSouthWest
	SpurSouthEast

	// One orthogonal missing and both far diagonals open
	StubNorth
	StubSouth
	StubWest
	StubEast

	// Grass next to dirt; the compass part names where the dirt lies
	TransitionNorth
	TransitionSouth
	TransitionEast
	TransitionWest
	TransitionNorthEast
	TransitionNorthWest
	TransitionSouthEast
	TransitionSouthWest
	TransitionHorizontal // dirt west and east
	TransitionVertical   // dirt north and south

	ShapeCount
)

var shapeNames = [ShapeCount]string{
	Center:                   "Center",
	EdgeNorth:                "EdgeNorth",
	EdgeEast:                 "EdgeEast",
	EdgeSouth:                "EdgeSouth",
	EdgeWest:                 "EdgeWest",
	CornerNorthWest:          "CornerNorthWest",
	CornerNorthEast:          "CornerNorthEast",
	CornerSouthWest:          "CornerSouthWest",
	CornerSouthEast:          "CornerSouthEast",
	Isolated:                 "Isolated",
	ColumnNorth:              "ColumnNorth",
	ColumnSouth:              "ColumnSouth",
	RowWest:                  "RowWest",
	RowEast:                  "RowEast",
	RowMiddle:                "RowMiddle",
	ColumnMiddle:             "ColumnMiddle",
	Cross:                    "Cross",
	DiagonalRising:           "DiagonalRising",
	DiagonalFalling:          "DiagonalFalling",
	NotchNorthWest:           "NotchNorthWest",
	NotchNorthEast:           "NotchNorthEast",
	NotchSouthWest:           "NotchSouthWest",
	NotchSouthEast:           "NotchSouthEast",
	OpenNorth:                "OpenNorth",
	OpenEast:                 "OpenEast",
	OpenSouth:                "OpenSouth",
	OpenWest:                 "OpenWest",
	KeepNorthEast:            "KeepNorthEast",
	KeepNorthWest:            "KeepNorthWest",
	KeepSouthEast:            "KeepSouthEast",
	KeepSouthWest:            "KeepSouthWest",
	BranchNorthOpenSouthEast: "BranchNorthOpenSouthEast",
	BranchNorthOpenSouthWest: "BranchNorthOpenSouthWest",
	BranchSouthOpenNorthEast: "BranchSouthOpenNorthEast",
	BranchSouthOpenNorthWest: "BranchSouthOpenNorthWest",
	BranchWestOpenNorthEast:  "BranchWestOpenNorthEast",
	BranchWestOpenSouthEast:  "BranchWestOpenSouthEast",
	BranchEastOpenNorthWest:  "BranchEastOpenNorthWest",
	BranchEastOpenSouthWest:  "BranchEastOpenSouthWest",
	SpurNorthWest:            "SpurNorthWest",
	SpurNorthEast:            "SpurNorthEast",
	SpurSouthWest:            "SpurSouthWest",
	SpurSouthEast:            "SpurSouthEast",
	StubNorth:                "StubNorth",
	StubSouth:                "StubSouth",
	StubWest:                 "StubWest",
	StubEast:                 "StubEast",
	TransitionNorth:          "TransitionNorth",
	TransitionSouth:          "TransitionSouth",
	TransitionEast:           "TransitionEast",
	TransitionWest:           "TransitionWest",
	TransitionNorthEast:      "TransitionNorthEast",
	TransitionNorthWest:      "TransitionNorthWest",
	TransitionSouthEast:      "TransitionSouthEast",
	TransitionSouthWest:      "TransitionSouthWest",
	TransitionHorizontal:     "TransitionHorizontal",
	TransitionVertical:       "TransitionVertical",
}

// String returns the name of the shape state
func (s ShapeState) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return shapeNames[s]
}

// IsValid returns true if s is one of the declared shape states
func (s ShapeState) IsValid() bool {
	return s >= Center && s < ShapeCount
}

// IsTransition returns true for the material transition states
func (s ShapeState) IsTransition() bool {
	return s >= TransitionNorth && s <= TransitionVertical
}

// AllShapes returns every shape state in declaration order
func AllShapes() []ShapeState {
	shapes := make([]ShapeState, 0, ShapeCount)
	for s := Center; s < ShapeCount; s++ {
		shapes = append(shapes, s)
	}
	return shapes
}
