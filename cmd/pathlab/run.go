package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pathlab/internal/render"
)

var (
	flagASCII     bool
	flagTableOnly bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every strategy on a maze and print the comparison",
	Long: `Generate a random maze, run flood fill and A* with each heuristic on it,
and print each strategy's path followed by a comparison table.

The run is recorded in the history database unless --no-save is given or
storage is disabled in the config.

Examples:
  pathlab run
  pathlab run --seed 42
  pathlab run --rows 40 --cols 60 --walls 0.35 --parallel
  pathlab run --strategy manhattan --strategy zero --table-only
  pathlab run --ascii > maze.txt`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	addMazeFlags(runCmd)
	runCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Print plain ASCII mazes without colors")
	runCmd.Flags().BoolVar(&flagTableOnly, "table-only", false, "Print only the summary and comparison table")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	logger := newLogger(cfg)
	seed := seedFor(cfg.Grid.Seed)

	report, err := compare(cmd.Context(), cfg, seed, logger)
	if err != nil {
		fail("%v", err)
	}

	theme := render.ThemeByName(cfg.Viewer.Theme)
	if flagASCII {
		theme = render.PlainTheme()
	}

	// Styled mazes put a space between cells; fall back to the compact
	// ASCII form when that does not fit the terminal.
	compact := flagASCII
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && cfg.Grid.Cols*2-1 > w {
		compact = true
	}

	if !flagTableOnly {
		for _, row := range report.Results {
			if compact {
				fmt.Println(row.Title)
				fmt.Print(render.ASCII(report.Grid, row.Result.Path))
				fmt.Printf("Total movements: %d  Comparisons: %d  Time: %s\n",
					row.Movements(), row.Result.Work, render.FormatElapsed(row.Elapsed))
			} else {
				fmt.Println(render.StrategyBlock(report, row, theme))
			}
			fmt.Println()
		}
	}

	fmt.Println(render.Summary(report, theme))
	fmt.Println(render.Comparison(report, theme))
	if best, ok := report.LeastWork(); ok {
		fmt.Printf("Least work for a shortest path: %s (%d)\n", best.Title, best.Result.Work)
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	record(cmd.Context(), store, cfg, report, logger)
}
