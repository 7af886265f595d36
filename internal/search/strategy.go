package search

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/heuristic"
)

// Strategy names a runnable search: "flood" or "astar:<heuristic>".
type Strategy string

// FloodFillStrategy selects FloodFill.
const FloodFillStrategy Strategy = "flood"

const astarPrefix = "astar:"

// AStarWith returns the strategy running AStar with the named heuristic.
func AStarWith(heuristicName string) Strategy {
	return Strategy(astarPrefix + heuristicName)
}

// DefaultStrategies returns A* with each of the classic heuristics
// followed by the flood fill baseline, in report order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		AStarWith(heuristic.NameManhattan),
		AStarWith(heuristic.NameEuclidean),
		AStarWith(heuristic.NameDiagonal),
		AStarWith(heuristic.NameChebyshev),
		FloodFillStrategy,
	}
}

// ParseStrategy validates s. A bare heuristic name is accepted as shorthand
// for "astar:<name>".
func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == string(FloodFillStrategy) || s == "floodfill":
		return FloodFillStrategy, nil
	case strings.HasPrefix(s, astarPrefix):
		s = strings.TrimPrefix(s, astarPrefix)
	}
	if _, err := heuristic.Lookup(s); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrUnknownStrategy, s, err)
	}
	return AStarWith(s), nil
}

// Heuristic returns the heuristic name for an A* strategy, or "" for flood fill.
func (s Strategy) Heuristic() string {
	if name, ok := strings.CutPrefix(string(s), astarPrefix); ok {
		return name
	}
	return ""
}

// IsFloodFill reports whether s selects FloodFill.
func (s Strategy) IsFloodFill() bool {
	return s == FloodFillStrategy
}

// Admissible reports whether the strategy is guaranteed to return a
// shortest path.
func (s Strategy) Admissible() bool {
	if s.IsFloodFill() {
		return false
	}
	info, err := heuristic.Lookup(s.Heuristic())
	return err == nil && info.Admissible
}

// Title returns a display label such as "A* (Manhattan)".
func (s Strategy) Title() string {
	if s.IsFloodFill() {
		return "Flood Fill"
	}
	if info, err := heuristic.Lookup(s.Heuristic()); err == nil {
		return "A* (" + info.Title + ")"
	}
	return string(s)
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	return string(s)
}

// Run executes the search selected by s.
func Run(g *grid.Grid, start, dest grid.Cell, s Strategy) (Result, error) {
	if s.IsFloodFill() {
		return FloodFill(g, start, dest)
	}
	info, err := heuristic.Lookup(s.Heuristic())
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %w", ErrUnknownStrategy, s, err)
	}
	return AStar(g, start, dest, info.Func)
}
