package search

import (
	"fmt"

	"github.com/vovakirdan/pathlab/internal/grid"
)

// Reconstruct walks the predecessor map backward from dest until start and
// returns the path in start-to-destination order. A missing predecessor or
// a walk longer than the map (a cycle) yields ErrMalformedChain.
func Reconstruct(prev map[grid.Cell]grid.Cell, start, dest grid.Cell) ([]grid.Cell, error) {
	path := []grid.Cell{dest}
	current := dest
	for current != start {
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: cycle detected after %d steps from %v", ErrMalformedChain, len(path), dest)
		}
		previous, ok := prev[current]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no predecessor", ErrMalformedChain, current)
		}
		path = append(path, previous)
		current = previous
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// ValidatePath checks that path starts at start, ends at dest, and that
// every step moves to an adjacent passable cell.
func ValidatePath(g *grid.Grid, path []grid.Cell, start, dest grid.Cell) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != start {
		return fmt.Errorf("%w: begins at %v, want %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != dest {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, dest)
	}
	for i, c := range path {
		if !g.IsPassable(c) {
			return fmt.Errorf("%w: step %d at %v is not passable", ErrInvalidPath, i, c)
		}
		if i > 0 && !path[i-1].Adjacent(c) {
			return fmt.Errorf("%w: step %d jumps from %v to %v", ErrInvalidPath, i, path[i-1], c)
		}
	}
	return nil
}
