// Package generator lays out the starting field: a plain fill, dirt plots
// joined by paths, or wandering dirt tracks.
package generator

import (
	"math/rand"
	"sort"
	"time"

	"allfarm/pkg/engine/world"
)

// Params describes the field to generate
type Params struct {
	Cols, Rows int
	TileSize   float64
	// Fill is the ground the layout is drawn on
	Fill world.TileType
	// Seed makes layouts reproducible; 0 picks a time-based seed
	Seed int64
}

// GridGenerator is an interface for field layout algorithms
type GridGenerator interface {
	Generate(p Params) *world.Grid
	Name() string
}

// Available generators
var (
	Plain = &PlainGenerator{}
	Plots = &PlotsGenerator{}
	Paths = &PathsGenerator{}
)

// DefaultGenerator is the layout used when none is configured
var DefaultGenerator GridGenerator = Plain

var byName = map[string]GridGenerator{
	"plain": Plain,
	"plots": Plots,
	"paths": Paths,
}

// ByName returns the generator for a config layout name. The empty name is
// the default generator.
func ByName(name string) (GridGenerator, bool) {
	if name == "" {
		return DefaultGenerator, true
	}
	g, ok := byName[name]
	return g, ok
}

// Names returns the config layout names, sorted
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newRand returns the random source for p
func newRand(p Params) *rand.Rand {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newField creates the grid filled with p.Fill
func newField(p Params) *world.Grid {
	grid := world.NewGrid(p.Cols, p.Rows, p.TileSize)
	grid.Fill(p.Fill)
	return grid
}

// PlainGenerator fills the whole field with one tile type
type PlainGenerator struct{}

// Name returns the name of this generator
func (g *PlainGenerator) Name() string {
	return "Plain"
}

// Generate creates a grid filled with p.Fill
func (g *PlainGenerator) Generate(p Params) *world.Grid {
	return newField(p)
}
