package generator

import (
	"math/rand"

	"allfarm/pkg/engine/world"
)

// PathsGenerator wears dirt tracks into the field by walking lines in random
// directions with a branching probability
type PathsGenerator struct{}

// Name returns the name of this generator
func (g *PathsGenerator) Name() string {
	return "Paths"
}

// Walk tuning
const (
	pathBranchProbability = 0.3
	pathBranchDecay       = 0.1
	pathMinDist           = 2
	pathMaxDist           = 6
)

// Generate creates a field with dirt tracks leaving the centre in all four
// cardinal directions. Each track turns once where its first run ends.
func (g *PathsGenerator) Generate(p Params) *world.Grid {
	grid := newField(p)
	rng := newRand(p)

	col, row := p.Cols/2, p.Rows/2
	for _, dir := range world.CardinalDirections() {
		endCol, endRow := walkLine(rng, grid, col, row, dir, pathBranchProbability)
		walkLine(rng, grid, endCol, endRow, turnFrom(rng, dir), pathBranchProbability-pathBranchDecay)
	}
	return grid
}

// randomDirection returns a random cardinal direction
func randomDirection(rng *rand.Rand) world.Direction {
	dirs := world.CardinalDirections()
	return dirs[rng.Intn(len(dirs))]
}

// turnFrom returns a random cardinal direction that does not double back on dir
func turnFrom(rng *rand.Rand, dir world.Direction) world.Direction {
	for {
		if next := randomDirection(rng); next != dir.Opposite() {
			return next
		}
	}
}

// walkLine tills a straight run of dirt from (col, row) in dir, branching off
// in random directions. It returns where the run ended.
func walkLine(rng *rand.Rand, grid *world.Grid, col, row int, dir world.Direction, branchProbability float64) (int, int) {
	colDelta, rowDelta := dir.Delta()
	distance := pathMinDist + rng.Intn(pathMaxDist-pathMinDist+1)

	for segment := 0; segment < distance; segment++ {
		grid.SetCellType(col, row, world.Dirt)

		// Stop at the edge of the field
		if !grid.IsValidPosition(col+colDelta, row+rowDelta) {
			return col, row
		}

		if rng.Float64() < branchProbability {
			walkLine(rng, grid, col, row, turnFrom(rng, dir), branchProbability-pathBranchDecay)
		}

		col += colDelta
		row += rowDelta
	}

	grid.SetCellType(col, row, world.Dirt)
	return col, row
}
