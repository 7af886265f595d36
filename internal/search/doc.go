// Package search implements shortest-path strategies over a grid.Grid:
//
//   - FloodFill: uninformed depth-first exploration with an explicit stack.
//     Terminates on every finite grid but does not guarantee the shortest path.
//   - AStar: best-first search ordered by f = g + h with a pluggable heuristic.
//
// Both return a Result holding the path (empty when the destination is
// unreachable) and a work metric. Every call owns its frontier, cost maps,
// predecessor map and counters, so searches over the same grid may run
// concurrently.
package search
