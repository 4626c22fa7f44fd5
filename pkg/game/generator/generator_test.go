package generator

import (
	"testing"

	"allfarm/pkg/engine/world"
)

func params(cols, rows int, seed int64) Params {
	return Params{Cols: cols, Rows: rows, TileSize: 50, Fill: world.Grass, Seed: seed}
}

// sameLayout reports whether two grids hold the same tile types
func sameLayout(t *testing.T, a, b *world.Grid) bool {
	t.Helper()
	if a.Cols() != b.Cols() || a.Rows() != b.Rows() {
		return false
	}
	same := true
	a.ForEachCell(func(col, row int, cell *world.Cell) {
		if b.GetCell(col, row).Type != cell.Type {
			same = false
		}
	})
	return same
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want GridGenerator
		ok   bool
	}{
		{"", DefaultGenerator, true},
		{"plain", Plain, true},
		{"plots", Plots, true},
		{"paths", Paths, true},
		{"maze", nil, false},
	}

	for _, tt := range tests {
		got, ok := ByName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ByName(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	names := Names()
	if len(names) != 3 || names[0] != "paths" || names[2] != "plots" {
		t.Errorf("Names() = %v, want [paths plain plots]", names)
	}
}

func TestPlainGenerate(t *testing.T) {
	grid := Plain.Generate(Params{Cols: 30, Rows: 15, TileSize: 50, Fill: world.Dirt})

	if grid.Cols() != 30 || grid.Rows() != 15 || grid.TileSize() != 50 {
		t.Fatalf("grid = %dx%d tile %v, want 30x15 tile 50", grid.Cols(), grid.Rows(), grid.TileSize())
	}
	if n := grid.CountType(world.Dirt); n != 30*15 {
		t.Errorf("CountType(Dirt) = %d, want %d", n, 30*15)
	}
}

func TestPlotsGenerate_TillsPlotsInsideBorder(t *testing.T) {
	grid := Plots.Generate(params(30, 15, 7))

	if grid.CountType(world.Dirt) == 0 {
		t.Fatal("no dirt tilled")
	}
	grid.ForEachCell(func(col, row int, cell *world.Cell) {
		border := col == 0 || row == 0 || col == 29 || row == 14
		if border && cell.Type != world.Grass {
			t.Errorf("border cell %v is not the fill type", cell)
		}
	})
}

func TestPlotsGenerate_SplitsLargeFields(t *testing.T) {
	rng := newRand(params(0, 0, 3))
	root := &bspNode{x: 1, y: 1, width: 40, height: 20}
	splitBSP(rng, root, minNodeSize)
	createPlots(rng, root)

	plots := collectPlots(root)
	if len(plots) < 2 {
		t.Fatalf("len(plots) = %d, want at least 2", len(plots))
	}
	for _, p := range plots {
		if p.width < minPlotSize || p.height < minPlotSize {
			t.Errorf("plot %+v smaller than %d", *p, minPlotSize)
		}
		if p.x < 1 || p.y < 1 || p.x+p.width > 41 || p.y+p.height > 21 {
			t.Errorf("plot %+v outside the root node", *p)
		}
	}
}

func TestPathsGenerate(t *testing.T) {
	grid := Paths.Generate(params(30, 15, 11))

	if got := grid.GetCell(15, 7).Type; got != world.Dirt {
		t.Errorf("centre cell = %v, want Dirt", got)
	}
	// Each of the four arms is at least pathMinDist long
	if n := grid.CountType(world.Dirt); n < 1+4*pathMinDist {
		t.Errorf("CountType(Dirt) = %d, want at least %d", n, 1+4*pathMinDist)
	}
}

func TestTurnFrom_NeverDoublesBack(t *testing.T) {
	rng := newRand(params(0, 0, 9))
	for _, dir := range world.CardinalDirections() {
		for i := 0; i < 50; i++ {
			if got := turnFrom(rng, dir); got == dir.Opposite() {
				t.Fatalf("turnFrom(%v) = %v, doubles back", dir, got)
			}
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	for _, gen := range []GridGenerator{Plain, Plots, Paths} {
		t.Run(gen.Name(), func(t *testing.T) {
			a := gen.Generate(params(30, 15, 42))
			b := gen.Generate(params(30, 15, 42))
			if !sameLayout(t, a, b) {
				t.Error("same seed produced different layouts")
			}
		})
	}
}

func TestGenerate_TinyFields(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 3}, {3, 3}, {5, 40}}
	for _, gen := range []GridGenerator{Plain, Plots, Paths} {
		for _, size := range sizes {
			grid := gen.Generate(params(size[0], size[1], 1))
			if grid.Cols() != size[0] || grid.Rows() != size[1] {
				t.Errorf("%s %dx%d: grid = %dx%d", gen.Name(), size[0], size[1], grid.Cols(), grid.Rows())
			}
		}
	}
}
