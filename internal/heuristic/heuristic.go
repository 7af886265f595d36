// Package heuristic provides interchangeable distance estimators between
// two grid cells for informed search. Heuristics are plain function values
// selected by name at call time.
package heuristic

import (
	"math"

	"github.com/vovakirdan/pathlab/internal/grid"
)

// Func estimates the remaining cost from a to b. It must be pure and
// return a non-negative value.
type Func func(a, b grid.Cell) float64

func deltas(a, b grid.Cell) (float64, float64) {
	return math.Abs(float64(a.Row - b.Row)), math.Abs(float64(a.Col - b.Col))
}

// Manhattan returns |dr| + |dc|. Exact for 4-directional movement on an
// open grid.
func Manhattan(a, b grid.Cell) float64 {
	dr, dc := deltas(a, b)
	return dr + dc
}

// Euclidean returns the straight-line distance. Never exceeds the
// Manhattan distance.
func Euclidean(a, b grid.Cell) float64 {
	dr, dc := deltas(a, b)
	return math.Sqrt(dr*dr + dc*dc)
}

// Diagonal returns max(|dr|, |dc|), the distance for 8-directional movement
// with unit diagonal cost.
func Diagonal(a, b grid.Cell) float64 {
	dr, dc := deltas(a, b)
	return math.Max(dr, dc)
}

// Chebyshev returns max(|dr|, |dc|). Defined identically to Diagonal and
// kept as its own strategy so both appear in comparisons.
func Chebyshev(a, b grid.Cell) float64 {
	dr, dc := deltas(a, b)
	return math.Max(dr, dc)
}

// Zero always returns 0, which turns A* into uniform-cost search.
func Zero(_, _ grid.Cell) float64 {
	return 0
}
