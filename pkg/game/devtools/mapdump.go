// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/autotile"
	"allfarm/pkg/game/locale"
)

// MapDumpFilename is where the in-game dump key writes the grid
const MapDumpFilename = "map.txt"

// DumpOptions controls what DumpGrid writes
type DumpOptions struct {
	// States lists the shape state and tier of every occupied cell
	States bool
	// Color styles the symbol map with ANSI colours
	Color bool
	// Width truncates the symbol map to this many columns; 0 means no limit
	Width int
	// Catalog translates the labels; nil uses the default language
	Catalog *locale.Catalog
}

var symbolStyles = map[world.TileType]color.Style{
	world.Grass: {color.FgGreen, color.OpBold},
	world.Dirt:  {color.FgYellow},
	world.Empty: {color.FgDarkGray},
}

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// cellSymbol returns the single-character symbol for a tile type
func cellSymbol(t world.TileType) string {
	switch t {
	case world.Grass:
		return "g"
	case world.Dirt:
		return "d"
	default:
		return "."
	}
}

// DumpGrid writes a readable dump of grid to w: a title, a legend, the symbol
// map, optionally every cell's shape state, and a summary box.
func DumpGrid(w io.Writer, grid *world.Grid, opts DumpOptions) error {
	if grid == nil {
		return fmt.Errorf("no grid")
	}

	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = locale.New(locale.DefaultLanguage); err != nil {
			return err
		}
	}

	var b strings.Builder
	fmt.Fprintln(&b, cat.Get("DUMP_TITLE", grid.Cols(), grid.Rows()))
	fmt.Fprintln(&b, cat.Get("DUMP_LEGEND"))
	fmt.Fprintln(&b)

	writeSymbolMap(&b, grid, opts)

	shapes := mapset.New[autotile.ShapeState]()
	var states strings.Builder
	grid.ForEachCell(func(col, row int, cell *world.Cell) {
		if !cell.Type.Occupied() {
			return
		}
		shape, tier := autotile.Explain(grid, col, row)
		shapes.Put(shape)
		if opts.States {
			fmt.Fprintf(&states, "%d:%d %s %s (%s)\n", col, row, cell.Type, shape, tier)
		}
	})

	if opts.States {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, cat.Get("DUMP_STATES"))
		b.WriteString(states.String())
	}

	summary := []string{
		cat.Get("DUMP_SUMMARY"),
		cat.Get("DUMP_COUNT_GRASS", grid.CountType(world.Grass)),
		cat.Get("DUMP_COUNT_DIRT", grid.CountType(world.Dirt)),
		cat.Get("DUMP_COUNT_EMPTY", grid.CountType(world.Empty)),
		cat.Get("DUMP_DISTINCT_STATES", shapes.Size()),
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, summaryStyle.Render(strings.Join(summary, "\n")))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSymbolMap(b *strings.Builder, grid *world.Grid, opts DumpOptions) {
	cols := grid.Cols()
	if opts.Width > 0 && opts.Width < cols {
		cols = opts.Width
	}
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < cols; col++ {
			t := grid.GetCell(col, row).Type
			sym := cellSymbol(t)
			if opts.Color {
				sym = symbolStyles[t].Sprint(sym)
			}
			b.WriteString(sym)
		}
		b.WriteByte('\n')
	}
}

// DumpGridToFile writes the dump with shape states and no colour to path,
// creating parent directories. It returns the absolute path written.
func DumpGridToFile(grid *world.Grid, path string, cat *locale.Catalog) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create dump directory: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpGrid(f, grid, DumpOptions{States: true, Catalog: cat}); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
