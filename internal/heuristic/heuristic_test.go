package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/heuristic"
)

func TestDistances(t *testing.T) {
	a, b := grid.C(1, 2), grid.C(4, 6)

	assert.Equal(t, 7.0, heuristic.Manhattan(a, b))
	assert.Equal(t, 5.0, heuristic.Euclidean(a, b))
	assert.Equal(t, 4.0, heuristic.Diagonal(a, b))
	assert.Equal(t, 4.0, heuristic.Chebyshev(a, b))
	assert.Equal(t, 0.0, heuristic.Zero(a, b))
}

func TestDistancesSymmetricAndZeroOnSelf(t *testing.T) {
	funcs := map[string]heuristic.Func{
		"manhattan": heuristic.Manhattan,
		"euclidean": heuristic.Euclidean,
		"diagonal":  heuristic.Diagonal,
		"chebyshev": heuristic.Chebyshev,
	}
	cells := []grid.Cell{grid.C(0, 0), grid.C(3, 7), grid.C(9, 2), grid.C(5, 5)}

	for name, h := range funcs {
		for _, a := range cells {
			assert.Zerof(t, h(a, a), "%s(%v, %v)", name, a, a)
			for _, b := range cells {
				assert.Equalf(t, h(a, b), h(b, a), "%s must be symmetric for %v, %v", name, a, b)
				assert.GreaterOrEqualf(t, h(a, b), 0.0, "%s must be non-negative", name)
			}
		}
	}
}

func TestEuclideanNeverExceedsManhattan(t *testing.T) {
	origin := grid.C(0, 0)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			cell := grid.C(r, c)
			assert.LessOrEqual(t, heuristic.Euclidean(origin, cell), heuristic.Manhattan(origin, cell))
		}
	}
	assert.InDelta(t, math.Sqrt2, heuristic.Euclidean(origin, grid.C(1, 1)), 1e-12)
}

func TestDiagonalAndChebyshevAreDistinctEntries(t *testing.T) {
	diag, err := heuristic.Lookup(heuristic.NameDiagonal)
	require.NoError(t, err)
	cheb, err := heuristic.Lookup(heuristic.NameChebyshev)
	require.NoError(t, err)

	assert.NotEqual(t, diag.Name, cheb.Name)
	assert.Equal(t, diag.Func(grid.C(0, 0), grid.C(3, 8)), cheb.Func(grid.C(0, 0), grid.C(3, 8)))
	assert.False(t, diag.Admissible)
	assert.False(t, cheb.Admissible)
}

func TestLookup(t *testing.T) {
	info, err := heuristic.Lookup(heuristic.NameManhattan)
	require.NoError(t, err)
	assert.Equal(t, "Manhattan", info.Title)
	assert.True(t, info.Admissible)

	_, err = heuristic.Lookup("octile")
	require.ErrorIs(t, err, heuristic.ErrUnknown)
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"chebyshev", "diagonal", "euclidean", "manhattan", "zero"}, heuristic.Names())
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		heuristic.Register(heuristic.Info{Name: heuristic.NameManhattan, Func: heuristic.Manhattan})
	})
	assert.Panics(t, func() {
		heuristic.Register(heuristic.Info{Name: "nil-func"})
	})
}
