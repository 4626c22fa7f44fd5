package main

import (
	"github.com/spf13/cobra"

	"allfarm/pkg/engine/terminal"
	"allfarm/pkg/game/config"
	"allfarm/pkg/game/devtools"
	"allfarm/pkg/game/locale"
)

var (
	flagStates  bool
	flagNoColor bool
	flagWidth   int
	flagOut     string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the autotiled grid",
	Long: `Print the starting grid as symbols, followed by tile counts and the
number of distinct shapes the autotiler picked.

Examples:
  allfarm dump
  allfarm dump --dev-map --states
  allfarm dump --out map.txt`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	dumpCmd.Flags().BoolVar(&flagStates, "states", false, "List the shape state of every tile")
	dumpCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colours")
	dumpCmd.Flags().IntVar(&flagWidth, "width", 0, "Truncate the map to this many columns (default: terminal width)")
	dumpCmd.Flags().StringVar(&flagOut, "out", "", "Write the dump to a file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := locale.New(cfg.Language)
	if err != nil {
		return err
	}
	g := newGame(cfg)

	if flagOut != "" {
		path, err := devtools.DumpGridToFile(g.Grid, flagOut, cat)
		if err != nil {
			return err
		}
		logger.Info("Map dumped", "path", path)
		return nil
	}

	out := cmd.OutOrStdout()
	opts := devtools.DumpOptions{
		States:  flagStates,
		Width:   flagWidth,
		Catalog: cat,
	}
	if terminal.IsTerminal(out) {
		opts.Color = !flagNoColor
		if opts.Width == 0 {
			opts.Width, _ = terminal.SizeOf(out)
		}
	}
	return devtools.DumpGrid(out, g.Grid, opts)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
