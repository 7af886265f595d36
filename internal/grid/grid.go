package grid

import "fmt"

// State classifies a single cell.
type State uint8

const (
	Empty State = iota
	Wall
	Start
	Destination
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Destination:
		return "destination"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Grid is a fixed-size maze. Cells are stored in row-major order:
// index = row*cols + col. A Grid is immutable once constructed and safe
// for concurrent readers.
type Grid struct {
	rows  int
	cols  int
	cells []State

	start    Cell
	dest     Cell
	hasStart bool
	hasDest  bool
}

// FromStates builds a Grid from a rectangular 2-D slice of states.
// The input is copied. At most one Start and one Destination may be present.
func FromStates(states [][]State) (*Grid, error) {
	if len(states) == 0 || len(states[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(states), len(states[0])
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]State, 0, rows*cols),
	}
	for r, row := range states {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c, s := range row {
			switch s {
			case Start:
				if g.hasStart {
					return nil, ErrDuplicateMarker
				}
				g.start, g.hasStart = C(r, c), true
			case Destination:
				if g.hasDest {
					return nil, ErrDuplicateMarker
				}
				g.dest, g.hasDest = C(r, c), true
			case Empty, Wall:
			default:
				return nil, fmt.Errorf("%w: %v at %v", ErrUnknownSymbol, s, C(r, c))
			}
			g.cells = append(g.cells, s)
		}
	}
	return g, nil
}

// NewEmpty creates a rows x cols grid with every cell Empty.
func NewEmpty(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// index converts a cell to a flat array index.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// InBounds reports whether the cell lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of a cell. Out-of-bounds cells read as Wall.
func (g *Grid) At(c Cell) State {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// IsPassable reports whether a cell is in bounds and not a wall.
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Wall
}

// Neighbors returns the passable in-bounds neighbors of c in the order
// down, up, right, left.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Start returns the embedded Start marker, if any.
func (g *Grid) Start() (Cell, bool) { return g.start, g.hasStart }

// Destination returns the embedded Destination marker, if any.
func (g *Grid) Destination() (Cell, bool) { return g.dest, g.hasDest }

// ValidateEndpoints rejects a start or destination that is out of bounds
// or a wall. The returned error wraps ErrInvalidEndpoint.
func (g *Grid) ValidateEndpoints(start, dest Cell) error {
	if err := g.validateEndpoint("start", start); err != nil {
		return err
	}
	return g.validateEndpoint("destination", dest)
}

func (g *Grid) validateEndpoint(name string, c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidEndpoint, name, c, g.rows, g.cols)
	}
	if g.At(c) == Wall {
		return fmt.Errorf("%w: %s %v is a wall", ErrInvalidEndpoint, name, c)
	}
	return nil
}

// PassableCount returns the number of non-wall cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, s := range g.cells {
		if s != Wall {
			n++
		}
	}
	return n
}

// ReachableFrom returns the size of the 4-connected passable region that
// contains c, or 0 if c is not passable.
func (g *Grid) ReachableFrom(c Cell) int {
	if !g.IsPassable(c) {
		return 0
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(c)] = true
	queue := []Cell{c}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if i := g.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return len(queue)
}

// States returns a deep copy of the grid as a 2-D slice.
func (g *Grid) States() [][]State {
	out := make([][]State, g.rows)
	for r := range out {
		out[r] = make([]State, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
