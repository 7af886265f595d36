package search

import (
	"container/heap"

	"github.com/vovakirdan/pathlab/internal/grid"
)

// frontierItem is an (estimated total cost, cell) pair. A cell may appear
// several times with different costs; stale entries are skipped at pop time.
type frontierItem struct {
	FCost float64
	Cell  grid.Cell
}

// frontier is a binary min-heap ordered by FCost, ties broken by row-major
// cell order so equal-cost pops are reproducible.
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].FCost != q[j].FCost {
		return q[i].FCost < q[j].FCost
	}
	return q[i].Cell.Less(q[j].Cell)
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (q *frontier) push(f float64, c grid.Cell) {
	heap.Push(q, frontierItem{FCost: f, Cell: c})
}

func (q *frontier) pop() frontierItem {
	return heap.Pop(q).(frontierItem)
}
