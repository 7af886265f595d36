package bench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/search"
)

const wallColumn = `
	..#..
	..#..
	..#..
	..#..
	.....
`

const enclosed = `
	.....
	.....
	...#.
	..#.#
	...#.
`

func TestCompareWallColumn(t *testing.T) {
	g := grid.MustParse(wallColumn)

	report, err := bench.Compare(context.Background(), g, grid.C(0, 0), grid.C(0, 4), bench.Options{})
	require.NoError(t, err)

	assert.True(t, report.Found())
	assert.Equal(t, 12, report.BestEdges)
	assert.Equal(t, g.PassableCount(), report.Reachable)
	require.Len(t, report.Results, len(search.DefaultStrategies()))

	for i, s := range search.DefaultStrategies() {
		row := report.Results[i]
		assert.Equal(t, s, row.Strategy)
		assert.Equal(t, s.Title(), row.Title)
		assert.True(t, row.Result.Found(), s)
	}

	flood, ok := report.Row(search.FloodFillStrategy)
	require.True(t, ok)
	assert.Equal(t, 20, flood.Result.Edges())
	assert.Equal(t, 21, flood.Movements())
	assert.False(t, flood.Optimal)

	manhattan, ok := report.Row(search.AStarWith("manhattan"))
	require.True(t, ok)
	assert.True(t, manhattan.Optimal)
	assert.Equal(t, 13, manhattan.Movements())
	assert.Equal(t, 43, manhattan.Result.Work)

	euclidean, ok := report.Row(search.AStarWith("euclidean"))
	require.True(t, ok)
	assert.True(t, euclidean.Optimal)
}

func TestCompareLeastWork(t *testing.T) {
	g := grid.MustParse(wallColumn)

	report, err := bench.Compare(context.Background(), g, grid.C(0, 0), grid.C(0, 4), bench.Options{
		Strategies: []search.Strategy{"flood", "astar:zero", "astar:manhattan"},
	})
	require.NoError(t, err)

	best, ok := report.LeastWork()
	require.True(t, ok)
	assert.True(t, best.Optimal)
	for _, row := range report.Results {
		if row.Optimal {
			assert.LessOrEqual(t, best.Result.Work, row.Result.Work)
		}
	}
}

func TestCompareParallelMatchesSequential(t *testing.T) {
	gen, err := grid.Generate(20, 20, 0.3, 42)
	require.NoError(t, err)

	seq, err := bench.CompareGenerated(context.Background(), gen, bench.Options{})
	require.NoError(t, err)
	par, err := bench.CompareGenerated(context.Background(), gen, bench.Options{Parallel: true})
	require.NoError(t, err)

	assert.Equal(t, uint64(42), par.Seed)
	assert.InDelta(t, 0.3, par.WallProbability, 1e-9)
	assert.Equal(t, seq.BestEdges, par.BestEdges)
	require.Len(t, par.Results, len(seq.Results))
	for i := range seq.Results {
		assert.Equal(t, seq.Results[i].Strategy, par.Results[i].Strategy)
		assert.Equal(t, seq.Results[i].Result, par.Results[i].Result)
		assert.Equal(t, seq.Results[i].Optimal, par.Results[i].Optimal)
	}
}

func TestCompareUnreachable(t *testing.T) {
	g := grid.MustParse(enclosed)

	report, err := bench.Compare(context.Background(), g, grid.C(0, 0), grid.C(3, 3), bench.Options{})
	require.NoError(t, err)

	assert.False(t, report.Found())
	assert.Equal(t, -1, report.BestEdges)
	assert.Equal(t, 19, report.Reachable)
	for _, row := range report.Results {
		assert.False(t, row.Result.Found(), row.Strategy)
		assert.False(t, row.Optimal, row.Strategy)
		assert.Zero(t, row.Movements())
	}
	_, ok := report.LeastWork()
	assert.False(t, ok)
}

func TestCompareErrors(t *testing.T) {
	g := grid.MustParse(wallColumn)
	ctx := context.Background()

	_, err := bench.Compare(ctx, g, grid.C(0, 2), grid.C(0, 4), bench.Options{})
	assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)

	_, err = bench.Compare(ctx, g, grid.C(0, 0), grid.C(9, 9), bench.Options{})
	assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)

	_, err = bench.Compare(ctx, g, grid.C(0, 0), grid.C(0, 4), bench.Options{
		Strategies: []search.Strategy{"astar:octile"},
	})
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestCompareCancelled(t *testing.T) {
	g := grid.MustParse(wallColumn)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{false, true} {
		_, err := bench.Compare(ctx, g, grid.C(0, 0), grid.C(0, 4), bench.Options{Parallel: parallel})
		assert.ErrorIs(t, err, context.Canceled)
	}
}
