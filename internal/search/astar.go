package search

import (
	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/heuristic"
)

// AStar runs best-first search from start to dest ordered by f = g + h,
// where g is the number of moves from start and h is the heuristic estimate
// to dest. Every move costs 1.
//
// Result.Work counts neighbor relaxations attempted. When the frontier
// empties first, Result.Path is empty. Endpoints are validated before the
// search begins; if start equals dest the path is [start] with zero work.
func AStar(g *grid.Grid, start, dest grid.Cell, h heuristic.Func) (Result, error) {
	if err := g.ValidateEndpoints(start, dest); err != nil {
		return Result{}, err
	}
	if start == dest {
		return trivial(start), nil
	}

	var (
		open     frontier
		cameFrom = make(map[grid.Cell]grid.Cell)
		gScore   = map[grid.Cell]float64{start: 0}
		fScore   = map[grid.Cell]float64{start: h(start, dest)}
		pushed   = map[grid.Cell]struct{}{start: {}}
		res      Result
	)
	open.push(fScore[start], start)

	for open.Len() > 0 {
		item := open.pop()
		current := item.Cell

		// A better entry for this cell was pushed after this one.
		if best, ok := fScore[current]; ok && item.FCost > best {
			continue
		}
		res.Expanded = append(res.Expanded, current)

		if current == dest {
			path, err := Reconstruct(cameFrom, start, dest)
			if err != nil {
				return Result{}, err
			}
			res.Path = path
			res.Pushed = len(pushed)
			return res, nil
		}

		for _, neighbor := range g.Neighbors(current) {
			res.Work++
			tentative := gScore[current] + 1
			if old, ok := gScore[neighbor]; ok && tentative >= old {
				continue
			}
			cameFrom[neighbor] = current
			gScore[neighbor] = tentative
			fScore[neighbor] = tentative + h(neighbor, dest)
			open.push(fScore[neighbor], neighbor)
			pushed[neighbor] = struct{}{}
		}
	}

	res.Pushed = len(pushed)
	return res, nil
}
