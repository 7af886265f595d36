// pathlab compares shortest-path search strategies on random grid mazes.
//
// Usage:
//
//	pathlab run              - Generate a maze, run every strategy, print the comparison
//	pathlab view             - Same as run, then replay each search interactively
//	pathlab history          - Show recorded runs and per-strategy statistics
//	pathlab strategies       - List available strategies
//	pathlab serve            - Start SSH server serving the viewer
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.pathlab/config.yaml, ./configs/pathlab.yaml)
//	--seed <value>      - Maze seed for reproducible runs (0 = time-based)
//	--db <path>         - History database path (default: ~/.pathlab/history.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/config"
	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string

	// Maze and search flags shared by run and view
	flagRows       int
	flagCols       int
	flagWalls      float64
	flagStrategies []string
	flagParallel   bool
	flagNoSave     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathlab",
	Short: "pathlab - compare grid pathfinding strategies in your terminal",
	Long: `pathlab generates random grid mazes and compares how A* with different
heuristics and a depth-first flood fill find a path from start to destination.

Available commands:
  run         - Run every strategy on a maze and print the comparison
  view        - Replay each strategy's search interactively
  history     - Show recorded runs
  strategies  - List available strategies
  serve       - Start SSH server for remote viewing

Examples:
  pathlab run
  pathlab run --seed 42 --rows 30 --cols 40 --walls 0.25
  pathlab view --strategy flood --strategy manhattan
  pathlab history --stats
  pathlab serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Maze seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath, "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(serveCmd)
}

// addMazeFlags registers the maze and search flags on cmd.
func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagRows, "rows", grid.DefaultRows, "Maze rows")
	cmd.Flags().IntVar(&flagCols, "cols", grid.DefaultCols, "Maze columns")
	cmd.Flags().Float64Var(&flagWalls, "walls", grid.DefaultWallProbability, "Wall probability for interior cells")
	cmd.Flags().StringSliceVar(&flagStrategies, "strategy", nil, "Strategies to run (repeatable): flood, manhattan, astar:euclidean, ...")
	cmd.Flags().BoolVar(&flagParallel, "parallel", false, "Run strategies concurrently")
	cmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record this run in the history database")
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies flags the user set
// explicitly on cmd.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.LoadWithOverrides(flagConfig, func(c *config.Config) {
		applyFlags(cmd, c)
	})
	if err != nil {
		fail("loading config: %v", err)
	}
	return cfg
}

// applyFlags copies every flag set explicitly on cmd into cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Grid.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Lookup("rows") != nil {
		if flags.Changed("rows") {
			cfg.Grid.Rows = flagRows
		}
		if flags.Changed("cols") {
			cfg.Grid.Cols = flagCols
		}
		if flags.Changed("walls") {
			cfg.Grid.WallProbability = flagWalls
		}
		if flags.Changed("strategy") {
			cfg.Search.Strategies = flagStrategies
		}
		if flags.Changed("parallel") {
			cfg.Search.Parallel = flagParallel
		}
		if flags.Changed("no-save") && flagNoSave {
			cfg.Storage.Disabled = true
		}
	}
}

// newLogger creates the stderr logger at the configured level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathlab",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the history database, or returns nil when storage is
// disabled or unavailable. Failures are logged, not fatal.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.Storage.Disabled {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// saverFor returns store as a ReportSaver, keeping a nil store a nil interface.
func saverFor(store *storage.Store) bench.ReportSaver {
	if store == nil {
		return nil
	}
	return store
}

// seedFor resolves a zero seed to a time-based one.
func seedFor(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// compare generates the configured maze and runs every strategy on it.
func compare(ctx context.Context, cfg config.Config, seed uint64, logger *log.Logger) (*bench.Report, error) {
	gen, err := grid.Generate(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.WallProbability, seed)
	if err != nil {
		return nil, err
	}
	logger.Debug("maze generated",
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"seed", seed,
		"passable", gen.Grid.PassableCount(),
	)
	return bench.CompareGenerated(ctx, gen, bench.Options{
		Strategies: cfg.Strategies(),
		Parallel:   cfg.Search.Parallel,
		Logger:     logger,
	})
}

// record saves report and prunes old runs. Errors are logged.
func record(ctx context.Context, store *storage.Store, cfg config.Config, report *bench.Report, logger *log.Logger) {
	if store == nil {
		return
	}
	id, err := store.SaveReport(ctx, report)
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("run saved", "id", id)

	if cfg.Storage.Keep > 0 {
		removed, err := store.Prune(ctx, cfg.Storage.Keep)
		if err != nil {
			logger.Warn("could not prune history", "error", err)
		} else if removed > 0 {
			logger.Debug("history pruned", "removed", removed)
		}
	}
}
