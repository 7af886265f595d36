// Package render draws grids, paths and comparison reports for terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pathlab/internal/grid"
)

// Glyphs used by both renderers.
const (
	GlyphPath     = '*'
	GlyphExplored = 'o'
)

// kind is what a single drawn cell shows once overlays are applied.
type kind uint8

const (
	kindEmpty kind = iota
	kindWall
	kindStart
	kindDestination
	kindPath
	kindExplored
)

// Overlay is drawn on top of the grid. Path wins over Explored; start,
// destination and walls are never covered.
type Overlay struct {
	Path     []grid.Cell
	Explored []grid.Cell
	// Start and Destination are drawn even when the grid carries no markers.
	Start       *grid.Cell
	Destination *grid.Cell
}

// ASCII renders g with path cells marked '*'. Each row ends with a newline.
func ASCII(g *grid.Grid, path []grid.Cell) string {
	ov := Overlay{Path: path}
	if len(path) > 0 {
		first, last := path[0], path[len(path)-1]
		ov.Start, ov.Destination = &first, &last
	}
	kinds := classify(g, ov)

	var sb strings.Builder
	sb.Grow((g.Cols() + 1) * g.Rows())
	for r := range g.Rows() {
		for c := range g.Cols() {
			sb.WriteRune(glyph(kinds[r*g.Cols()+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Styled renders g with the overlay, one styled glyph per cell separated
// by spaces. Adjacent cells of the same kind share one styled run to keep
// escape sequences short.
func Styled(g *grid.Grid, ov Overlay, theme Theme) string {
	kinds := classify(g, ov)
	styles := map[kind]lipgloss.Style{
		kindEmpty:       theme.Empty,
		kindWall:        theme.Wall,
		kindStart:       theme.Start,
		kindDestination: theme.Destination,
		kindPath:        theme.Path,
		kindExplored:    theme.Explored,
	}

	var sb strings.Builder
	sb.Grow(g.Rows() * g.Cols() * 4)
	for r := range g.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		c := 0
		for c < g.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			k := kinds[r*g.Cols()+c]
			var run strings.Builder
			for c < g.Cols() && kinds[r*g.Cols()+c] == k {
				if run.Len() > 0 {
					run.WriteByte(' ')
				}
				run.WriteRune(glyph(k))
				c++
			}
			sb.WriteString(styles[k].Render(run.String()))
		}
	}
	return sb.String()
}

// Legend returns a one-line key for the styled grid.
func Legend(theme Theme) string {
	items := []struct {
		k     kind
		label string
	}{
		{kindStart, "start"},
		{kindDestination, "destination"},
		{kindPath, "path"},
		{kindExplored, "explored"},
		{kindWall, "wall"},
	}
	styles := map[kind]lipgloss.Style{
		kindStart:       theme.Start,
		kindDestination: theme.Destination,
		kindPath:        theme.Path,
		kindExplored:    theme.Explored,
		kindWall:        theme.Wall,
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = styles[it.k].Render(string(glyph(it.k))) + " " + theme.Label.Render(it.label)
	}
	return strings.Join(parts, "  ")
}

func classify(g *grid.Grid, ov Overlay) []kind {
	kinds := make([]kind, g.Rows()*g.Cols())
	index := func(c grid.Cell) (int, bool) {
		if !g.InBounds(c) {
			return 0, false
		}
		return c.Row*g.Cols() + c.Col, true
	}

	for r := range g.Rows() {
		for c := range g.Cols() {
			switch g.At(grid.C(r, c)) {
			case grid.Wall:
				kinds[r*g.Cols()+c] = kindWall
			case grid.Start:
				kinds[r*g.Cols()+c] = kindStart
			case grid.Destination:
				kinds[r*g.Cols()+c] = kindDestination
			}
		}
	}

	paint := func(cells []grid.Cell, k kind) {
		for _, cell := range cells {
			i, ok := index(cell)
			if !ok {
				continue
			}
			switch kinds[i] {
			case kindEmpty, kindExplored:
				kinds[i] = k
			}
		}
	}
	paint(ov.Explored, kindExplored)
	paint(ov.Path, kindPath)

	mark := func(c *grid.Cell, k kind) {
		if c == nil {
			return
		}
		if i, ok := index(*c); ok && kinds[i] != kindWall {
			kinds[i] = k
		}
	}
	mark(ov.Start, kindStart)
	mark(ov.Destination, kindDestination)
	return kinds
}

func glyph(k kind) rune {
	switch k {
	case kindWall:
		return grid.SymbolWall
	case kindStart:
		return grid.SymbolStart
	case kindDestination:
		return grid.SymbolDestination
	case kindPath:
		return GlyphPath
	case kindExplored:
		return GlyphExplored
	default:
		return grid.SymbolEmpty
	}
}
