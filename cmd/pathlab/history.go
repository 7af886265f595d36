package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pathlab/internal/platform/tui"
	"github.com/vovakirdan/pathlab/internal/render"
	"github.com/vovakirdan/pathlab/internal/storage"
)

var (
	flagLimit       int
	flagStats       bool
	flagRunID       string
	flagInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recent comparison runs from the history database.

Examples:
  pathlab history
  pathlab history --limit 50
  pathlab history --stats
  pathlab history --run 6f1c0b7e-...
  pathlab history -i`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics per strategy")
	historyCmd.Flags().StringVar(&flagRunID, "run", "", "Show the strategy results of one run")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a full-screen view")
}

func runHistory(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fail("history browser: %v", err)
		}
	case flagRunID != "":
		showRun(cmd, store, flagRunID)
	case flagStats:
		showStats(cmd, store)
	default:
		showRuns(cmd, store)
	}
}

func showRuns(cmd *cobra.Command, store *storage.Store) {
	runs, err := store.RecentRuns(cmd.Context(), flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathlab run' to record the first one!")
		return
	}

	fmt.Printf("  %-36s  %-16s  %-7s  %-20s  %-5s  %s\n", "ID", "Date", "Grid", "Seed", "Walls", "Shortest")
	fmt.Printf("  %-36s  %-16s  %-7s  %-20s  %-5s  %s\n", "--", "----", "----", "----", "-----", "--------")
	for _, r := range runs {
		shortest := "none"
		if r.BestEdges >= 0 {
			shortest = fmt.Sprintf("%d", r.BestEdges)
		}
		fmt.Printf("  %-36s  %-16s  %-7s  %-20d  %-5.2f  %s\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Seed,
			r.WallProbability,
			shortest,
		)
	}

	fmt.Println()
	fmt.Println("Replay a run with 'pathlab view --seed <seed> --rows <r> --cols <c> --walls <p>'.")
}

func showRun(cmd *cobra.Command, store *storage.Store, id string) {
	run, err := store.RunByID(cmd.Context(), id)
	if err != nil {
		fail("retrieving run: %v", err)
	}
	if run == nil {
		fail("no run with ID %q", id)
	}
	results, err := store.RunResults(cmd.Context(), id)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Printf("  %dx%d maze, seed %d, walls %.2f, %v -> %v, recorded %s\n",
		run.Rows, run.Cols, run.Seed, run.WallProbability,
		run.Start, run.Destination, run.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Println()

	fmt.Printf("  %-18s  %-5s  %-9s  %-6s  %-7s  %s\n", "Strategy", "Found", "Movements", "Work", "Optimal", "Time")
	fmt.Printf("  %-18s  %-5s  %-9s  %-6s  %-7s  %s\n", "--------", "-----", "---------", "----", "-------", "----")
	for _, r := range results {
		moves := "-"
		if r.Found {
			moves = fmt.Sprintf("%d", r.Movements)
		}
		fmt.Printf("  %-18s  %-5v  %-9s  %-6d  %-7v  %s\n",
			r.Strategy, r.Found, moves, r.Work, r.Optimal, render.FormatElapsed(r.Elapsed))
	}
}

func showStats(cmd *cobra.Command, store *storage.Store) {
	stats, err := store.StrategyStats(cmd.Context())
	if err != nil {
		fail("retrieving statistics: %v", err)
	}

	fmt.Println("Strategy statistics")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-18s  %-5s  %-5s  %-7s  %-9s  %-9s  %s\n", "Strategy", "Runs", "Found", "Optimal", "Avg work", "Avg moves", "Avg time")
	fmt.Printf("  %-18s  %-5s  %-5s  %-7s  %-9s  %-9s  %s\n", "--------", "----", "-----", "-------", "--------", "---------", "--------")
	for _, st := range stats {
		fmt.Printf("  %-18s  %-5d  %-5d  %-7d  %-9.1f  %-9.1f  %s\n",
			st.Strategy, st.Runs, st.Found, st.Optimal, st.AvgWork, st.AvgMovements, render.FormatElapsed(st.AvgElapsed))
	}
}
