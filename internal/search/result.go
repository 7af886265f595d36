package search

import "github.com/vovakirdan/pathlab/internal/grid"

// Result is the outcome of a single search.
type Result struct {
	// Path runs from start to destination inclusive. Empty means no path.
	Path []grid.Cell
	// Work is the effort metric: distinct cells visited for FloodFill,
	// neighbor relaxations attempted for AStar.
	Work int
	// Expanded lists cells in the order they were expanded.
	Expanded []grid.Cell
	// Pushed counts distinct cells ever placed on the stack or frontier.
	Pushed int
}

// Found reports whether a path was produced.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Edges returns the number of moves in the path, or -1 when not found.
func (r Result) Edges() int {
	if len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}

// trivial is the result for a search whose start equals its destination.
func trivial(start grid.Cell) Result {
	return Result{
		Path:     []grid.Cell{start},
		Expanded: []grid.Cell{start},
		Pushed:   1,
	}
}
