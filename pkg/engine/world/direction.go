package world

// Direction represents one of the eight compass directions
type Direction int

// Direction constants, clockwise from North
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// CardinalDirections returns the four orthogonal directions
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the column and row offsets for this direction.
// Rows grow downwards, so North is a negative row offset.
func (d Direction) Delta() (colDelta, rowDelta int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// DirectionFromVector returns the compass direction closest to the sign pattern of (dx, dy).
// The second result is false for the zero vector.
func DirectionFromVector(dx, dy float64) (Direction, bool) {
	sx, sy := sign(dx), sign(dy)
	for _, d := range AllDirections() {
		cd, rd := d.Delta()
		if cd == sx && rd == sy {
			return d, true
		}
	}
	return North, false
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
