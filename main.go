// allfarm is a top-down tile painting sandbox: walk over a field and paint
// grass, dirt or bare ground under your feet while the tiles blend into each
// other.
//
// Usage:
//
//	allfarm              - Open the game window
//	allfarm dump         - Print the autotiled grid to the terminal
//	allfarm config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Use this config file instead of searching for one
//	--dev-map        - Start on the developer showcase map
//	--lang <code>    - Override the UI language (en, de)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"allfarm/pkg/game/config"
	"allfarm/pkg/game/devtools"
	"allfarm/pkg/game/locale"
	ebitenrenderer "allfarm/pkg/game/renderer/ebiten"
	"allfarm/pkg/game/state"
)

var (
	// Global flags
	flagConfig string
	flagDevMap bool
	flagLang   string

	// Window flags
	flagDebugGrid  bool
	flagFullscreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "allfarm",
	Short: "ALLFARM - paint a tile field that autotiles as you go",
	Long: `ALLFARM opens a window with a grass field and a farmer to walk around.

Controls:
  W/A/S/D, Arrows   - Move
  Left Shift        - Sprint
  E / F / Q         - Paint grass / dirt / erase under the farmer
  Mouse wheel       - Zoom
  G                 - Toggle grid lines
  F2                - Dump the grid to map.txt
  Esc               - Quit

Examples:
  allfarm
  allfarm --debug-grid
  allfarm --config ./my-farm.yaml
  allfarm dump --states`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML (default: ~/.allfarm/config.yaml, then ./configs/allfarm.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDevMap, "dev-map", false, "Use the developer showcase map instead of the configured field")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "UI language, overrides the config file")

	rootCmd.Flags().BoolVar(&flagDebugGrid, "debug-grid", false, "Start with grid lines shown")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger at the configured level
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "allfarm",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// loadConfig loads the configuration and creates the logger it configures
func loadConfig() (config.Config, *log.Logger, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	if flagLang != "" {
		if !locale.Supported(flagLang) {
			return cfg, nil, fmt.Errorf("unknown language %q (want one of %v)", flagLang, locale.Languages())
		}
		cfg.Language = flagLang
	}
	logger := newLogger(cfg.Debug.LogLevel)
	logger.Debug("Loaded config", "source", source)
	return cfg, logger, nil
}

// newGame builds the game state, switching to the dev map when asked
func newGame(cfg config.Config) *state.Game {
	g := state.NewGame(cfg)
	if flagDevMap {
		devtools.SwitchToDevMap(g)
	}
	return g
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDebugGrid {
		cfg.Debug.Grid = true
	}
	if flagFullscreen {
		cfg.Window.Fullscreen = true
	}

	cat, err := locale.New(cfg.Language)
	if err != nil {
		return err
	}

	g := newGame(cfg)
	logger.Info("World ready", "cols", g.Grid.Cols(), "rows", g.Grid.Rows(), "language", cat.Language)

	r := ebitenrenderer.New(g, cfg, cat, logger)
	if err := r.Run(); err != nil {
		return err
	}

	logger.Info("Game closed", "edits", g.Edits)
	fmt.Fprintln(cmd.OutOrStdout(), cat.Get("GOODBYE"))
	return nil
}
