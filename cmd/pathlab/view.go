package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/platform/tui"
	"github.com/vovakirdan/pathlab/internal/render"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Replay each strategy's search interactively",
	Long: `Generate a maze, run every strategy, and open a viewer that animates
the order in which each strategy expanded cells before drawing its path.

Controls:
  Left/Right, Tab  - Previous/next strategy
  Space            - Play/pause
  .                - Single step
  E / R            - Jump to end / replay
  + / -            - Faster / slower
  X                - Toggle explored cells
  T                - Toggle comparison table
  N                - New maze
  Q/Esc            - Quit

Examples:
  pathlab view
  pathlab view --seed 7 --rows 30 --cols 30
  pathlab view --strategy flood --strategy manhattan`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	addMazeFlags(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	logger := newLogger(cfg)

	report, err := compare(cmd.Context(), cfg, seedFor(cfg.Grid.Seed), logger)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	record(cmd.Context(), store, cfg, report, logger)

	// Logging to stderr would tear the alternate screen; only errors get through.
	quiet := logger.With()
	quiet.SetLevel(log.ErrorLevel)

	// New mazes from inside the viewer always get a fresh seed.
	source := func(ctx context.Context) (*bench.Report, error) {
		return compare(ctx, cfg, seedFor(0), quiet)
	}

	err = tui.Run(report, tui.ViewerConfig{
		TickRate: cfg.Viewer.TickRate,
		Theme:    render.ThemeByName(cfg.Viewer.Theme),
		Source:   source,
		Saver:    saverFor(store),
	})
	if err != nil {
		fail("viewer: %v", err)
	}
}
