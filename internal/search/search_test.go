package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/heuristic"
	"github.com/vovakirdan/pathlab/internal/search"
)

// wallColumn is a 5x5 grid with column 2 blocked on rows 0-3, forcing a
// detour through row 4.
const wallColumn = `
	..#..
	..#..
	..#..
	..#..
	.....
`

// enclosed walls off the destination (3,3); (4,4) is cut off too.
const enclosed = `
	.....
	.....
	...#.
	..#.#
	...#.
`

func TestAStarWallColumnDetour(t *testing.T) {
	g := grid.MustParse(wallColumn)
	start, dest := grid.C(0, 0), grid.C(0, 4)

	res, err := search.AStar(g, start, dest, heuristic.Manhattan)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.NoError(t, search.ValidatePath(g, res.Path, start, dest))

	assert.Equal(t, 12, res.Edges())
	assert.Contains(t, res.Path, grid.C(4, 2), "path must pass through the gap in row 4")

	// Equal-f pops are ordered row-major, which pins the exact route.
	want := []grid.Cell{
		grid.C(0, 0), grid.C(0, 1), grid.C(1, 1), grid.C(2, 1), grid.C(3, 1), grid.C(4, 1), grid.C(4, 2),
		grid.C(4, 3), grid.C(3, 3), grid.C(2, 3), grid.C(1, 3), grid.C(0, 3), grid.C(0, 4),
	}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 43, res.Work)
}

func TestAStarAllHeuristicsFindValidPaths(t *testing.T) {
	g := grid.MustParse(wallColumn)
	start, dest := grid.C(0, 0), grid.C(0, 4)

	for _, info := range heuristic.List() {
		t.Run(info.Name, func(t *testing.T) {
			res, err := search.AStar(g, start, dest, info.Func)
			require.NoError(t, err)
			require.NoError(t, search.ValidatePath(g, res.Path, start, dest))
			if info.Admissible {
				assert.Equal(t, 12, res.Edges())
			}
		})
	}
}

func TestFloodFillWallColumn(t *testing.T) {
	g := grid.MustParse(wallColumn)
	start, dest := grid.C(0, 0), grid.C(0, 4)

	res, err := search.FloodFill(g, start, dest)
	require.NoError(t, err)
	require.NoError(t, search.ValidatePath(g, res.Path, start, dest))

	assert.Equal(t, 20, res.Edges())
	assert.Equal(t, 21, res.Work)
}

func TestFloodFillIsNotShortest(t *testing.T) {
	g, err := grid.NewEmpty(5, 5)
	require.NoError(t, err)
	start, dest := grid.C(0, 0), grid.C(4, 4)

	flood, err := search.FloodFill(g, start, dest)
	require.NoError(t, err)
	astar, err := search.AStar(g, start, dest, heuristic.Manhattan)
	require.NoError(t, err)

	require.NoError(t, search.ValidatePath(g, flood.Path, start, dest))
	assert.Equal(t, 8, astar.Edges())
	// Depth-first exploration snakes through every row.
	assert.Equal(t, 24, flood.Edges())
	assert.Equal(t, 25, flood.Work)
}

func TestEnclosedDestination(t *testing.T) {
	g := grid.MustParse(enclosed)
	start, dest := grid.C(0, 0), grid.C(3, 3)

	flood, err := search.FloodFill(g, start, dest)
	require.NoError(t, err)
	assert.False(t, flood.Found())
	assert.Empty(t, flood.Path)
	assert.Equal(t, -1, flood.Edges())
	assert.Equal(t, g.ReachableFrom(start), flood.Work)
	assert.Equal(t, 19, flood.Work)

	for _, info := range heuristic.List() {
		res, err := search.AStar(g, start, dest, info.Func)
		require.NoError(t, err)
		assert.Falsef(t, res.Found(), "A* (%s) found a path to an enclosed cell", info.Name)
		assert.Positive(t, res.Work)
	}
}

func TestStartEqualsDestination(t *testing.T) {
	g := grid.MustParse(wallColumn)
	cell := grid.C(2, 1)

	flood, err := search.FloodFill(g, cell, cell)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{cell}, flood.Path)
	assert.Zero(t, flood.Work)

	astar, err := search.AStar(g, cell, cell, heuristic.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{cell}, astar.Path)
	assert.Zero(t, astar.Work)
	assert.Zero(t, astar.Edges())
}

func TestInvalidEndpointsRejected(t *testing.T) {
	g := grid.MustParse(wallColumn)

	testCases := []struct {
		name        string
		start, dest grid.Cell
	}{
		{"StartWall", grid.C(0, 2), grid.C(0, 4)},
		{"DestWall", grid.C(0, 0), grid.C(3, 2)},
		{"StartOutOfBounds", grid.C(-1, 0), grid.C(0, 4)},
		{"DestOutOfBounds", grid.C(0, 0), grid.C(0, 5)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.FloodFill(g, tc.start, tc.dest)
			assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)

			_, err = search.AStar(g, tc.start, tc.dest, heuristic.Manhattan)
			assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)
		})
	}
}

func TestAStarSkipsStaleEntries(t *testing.T) {
	// Overestimates on three cells make the heuristic inconsistent: (0,3)
	// is queued with f=8 via (1,3), then improved to f=6 via (0,2). The
	// f=8 entry must be dropped when popped instead of re-expanded.
	g := grid.MustParse(`
		....
		....
		....
		....
	`)
	start, dest := grid.C(0, 0), grid.C(3, 3)
	overestimates := map[grid.Cell]float64{
		grid.C(0, 2): 5,
		grid.C(2, 3): 6,
		grid.C(3, 2): 4,
	}
	h := func(a, b grid.Cell) float64 {
		if v, ok := overestimates[a]; ok {
			return v
		}
		return heuristic.Manhattan(a, b)
	}

	res, err := search.AStar(g, start, dest, h)
	require.NoError(t, err)

	assert.Equal(t, 43, res.Work)
	assert.Equal(t, []grid.Cell{
		grid.C(0, 0), grid.C(0, 1), grid.C(1, 0), grid.C(1, 1), grid.C(1, 2),
		grid.C(1, 3), grid.C(2, 0), grid.C(2, 1), grid.C(2, 2), grid.C(3, 0),
		grid.C(3, 1), grid.C(0, 2), grid.C(0, 3), grid.C(3, 2), grid.C(3, 3),
	}, res.Expanded)
	assert.Equal(t, []grid.Cell{
		grid.C(0, 0), grid.C(0, 1), grid.C(1, 1), grid.C(1, 2),
		grid.C(2, 2), grid.C(3, 2), grid.C(3, 3),
	}, res.Path)
}

func TestAStarConsistentHeuristicExpandsOnce(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		gen, err := grid.Generate(15, 15, 0.25, seed)
		require.NoError(t, err)

		res, err := search.AStar(gen.Grid, gen.Start, gen.Destination, heuristic.Manhattan)
		require.NoError(t, err)

		seen := make(map[grid.Cell]bool, len(res.Expanded))
		for _, c := range res.Expanded {
			require.Falsef(t, seen[c], "seed %d: %v expanded twice", seed, c)
			seen[c] = true
		}
	}
}
