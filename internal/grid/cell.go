// Package grid provides the immutable 2-D maze model used by the search
// algorithms: cell classification, bounds checking and neighbor enumeration.
// It has no external dependencies so the search core stays pure and testable.
package grid

import "fmt"

// Cell is a (row, column) coordinate on the grid.
// Row increases downward, Col increases to the right.
type Cell struct {
	Row int
	Col int
}

// C is a convenience constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns the coordinate as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Less reports whether c comes before other in row-major order.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Adjacent reports whether two cells share an edge (4-directional).
func (c Cell) Adjacent(other Cell) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// offsets lists neighbor deltas in the fixed order down, up, right, left.
// Search tie-breaking depends on this order.
var offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
