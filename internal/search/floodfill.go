package search

import "github.com/vovakirdan/pathlab/internal/grid"

// FloodFill explores the grid depth-first with an explicit LIFO stack until
// dest is popped. Neighbors are checked against the visited set when pushed,
// not when popped, so a cell may sit on the stack more than once. The
// returned path is valid but not necessarily the shortest.
//
// Result.Work is the number of distinct cells visited. When the stack
// empties first, Result.Path is empty and Work equals the size of the region
// reachable from start. If start equals dest the path is [start] with zero
// work.
func FloodFill(g *grid.Grid, start, dest grid.Cell) (Result, error) {
	if err := g.ValidateEndpoints(start, dest); err != nil {
		return Result{}, err
	}
	if start == dest {
		return trivial(start), nil
	}

	var (
		stack    = []grid.Cell{start}
		visited  = make(map[grid.Cell]struct{})
		cameFrom = make(map[grid.Cell]grid.Cell)
		pushed   = map[grid.Cell]struct{}{start: {}}
		res      Result
	)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[current]; !seen {
			visited[current] = struct{}{}
			res.Expanded = append(res.Expanded, current)
		}

		if current == dest {
			path, err := Reconstruct(cameFrom, start, dest)
			if err != nil {
				return Result{}, err
			}
			res.Path = path
			res.Work = len(visited)
			res.Pushed = len(pushed)
			return res, nil
		}

		for _, neighbor := range g.Neighbors(current) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			cameFrom[neighbor] = current
			stack = append(stack, neighbor)
			pushed[neighbor] = struct{}{}
		}
	}

	res.Work = len(visited)
	res.Pushed = len(pushed)
	return res, nil
}
