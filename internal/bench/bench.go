// Package bench runs several search strategies over the same grid and
// collects a comparison report.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/heuristic"
	"github.com/vovakirdan/pathlab/internal/search"
)

// Options controls a comparison run.
type Options struct {
	// Strategies to run, in report order. Empty means search.DefaultStrategies.
	Strategies []search.Strategy
	// Parallel runs every strategy in its own goroutine.
	Parallel bool
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Row is the outcome of one strategy.
type Row struct {
	Strategy search.Strategy
	Title    string
	Result   search.Result
	Elapsed  time.Duration
	// Optimal is set when the path is as short as the reference shortest path.
	Optimal bool
}

// Movements returns the number of cells on the path, start and destination
// included. Zero means no path.
func (r Row) Movements() int {
	return len(r.Result.Path)
}

// Report collects every Row of a comparison run over one grid.
type Report struct {
	Grid        *grid.Grid
	Start       grid.Cell
	Destination grid.Cell

	// Seed and WallProbability describe a generated grid. Both are zero for
	// hand-built grids.
	Seed            uint64
	WallProbability float64

	// Reachable is the size of the region around Start.
	Reachable int
	// BestEdges is the shortest path length in moves, or -1 when the
	// destination cannot be reached.
	BestEdges int

	Results   []Row
	CreatedAt time.Time
}

// Found reports whether any strategy reached the destination.
func (r *Report) Found() bool {
	return r.BestEdges >= 0
}

// Row returns the row for the given strategy.
func (r *Report) Row(s search.Strategy) (Row, bool) {
	for _, row := range r.Results {
		if row.Strategy == s {
			return row, true
		}
	}
	return Row{}, false
}

// LeastWork returns the optimal row with the smallest work metric. Ties keep
// report order. ok is false when nothing found an optimal path.
func (r *Report) LeastWork() (Row, bool) {
	var (
		best Row
		ok   bool
	)
	for _, row := range r.Results {
		if !row.Optimal {
			continue
		}
		if !ok || row.Result.Work < best.Result.Work {
			best, ok = row, true
		}
	}
	return best, ok
}

// ReportSaver persists finished reports.
type ReportSaver interface {
	SaveReport(ctx context.Context, r *Report) (string, error)
}

// Compare runs every strategy in opts over g from start to dest.
// Endpoints are validated once up front.
func Compare(ctx context.Context, g *grid.Grid, start, dest grid.Cell, opts Options) (*Report, error) {
	if err := g.ValidateEndpoints(start, dest); err != nil {
		return nil, err
	}

	requested := opts.Strategies
	if len(requested) == 0 {
		requested = search.DefaultStrategies()
	}
	strategies := make([]search.Strategy, len(requested))
	for i, s := range requested {
		parsed, err := search.ParseStrategy(string(s))
		if err != nil {
			return nil, err
		}
		strategies[i] = parsed
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	report := &Report{
		Grid:        g,
		Start:       start,
		Destination: dest,
		Reachable:   g.ReachableFrom(start),
		BestEdges:   -1,
		Results:     make([]Row, len(strategies)),
		CreatedAt:   time.Now(),
	}

	reference, err := search.AStar(g, start, dest, heuristic.Manhattan)
	if err != nil {
		return nil, fmt.Errorf("bench: reference search: %w", err)
	}
	report.BestEdges = reference.Edges()

	run := func(ctx context.Context, i int, s search.Strategy) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		began := time.Now()
		res, err := search.Run(g, start, dest, s)
		if err != nil {
			return fmt.Errorf("bench: %s: %w", s, err)
		}
		row := Row{
			Strategy: s,
			Title:    s.Title(),
			Result:   res,
			Elapsed:  time.Since(began),
			Optimal:  res.Found() && res.Edges() == report.BestEdges,
		}
		report.Results[i] = row
		logger.Debug("strategy finished",
			"strategy", s,
			"found", res.Found(),
			"edges", res.Edges(),
			"work", res.Work,
			"elapsed", row.Elapsed,
		)
		return nil
	}

	if opts.Parallel {
		eg, egCtx := errgroup.WithContext(ctx)
		for i, s := range strategies {
			eg.Go(func() error { return run(egCtx, i, s) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, s := range strategies {
			if err := run(ctx, i, s); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("comparison complete",
		"grid", fmt.Sprintf("%dx%d", g.Rows(), g.Cols()),
		"strategies", len(strategies),
		"best_edges", report.BestEdges,
		"reachable", report.Reachable,
	)
	return report, nil
}

// CompareGenerated runs Compare on a generated maze and records its seed and
// wall probability on the report.
func CompareGenerated(ctx context.Context, gen grid.Generated, opts Options) (*Report, error) {
	report, err := Compare(ctx, gen.Grid, gen.Start, gen.Destination, opts)
	if err != nil {
		return nil, err
	}
	report.Seed = gen.Seed
	report.WallProbability = gen.WallProbability
	return report, nil
}
