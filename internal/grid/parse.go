package grid

import (
	"fmt"
	"strings"
)

// Symbols used by Parse and by the ASCII renderer.
const (
	SymbolEmpty       = '.'
	SymbolWall        = '#'
	SymbolStart       = 'S'
	SymbolDestination = 'D'
)

// Symbol returns the ASCII character for a state.
func (s State) Symbol() rune {
	switch s {
	case Wall:
		return SymbolWall
	case Start:
		return SymbolStart
	case Destination:
		return SymbolDestination
	default:
		return SymbolEmpty
	}
}

// Parse builds a Grid from a compact text picture, one line per row:
//
//	S.#..
//	..#..
//	....D
//
// Blank lines and surrounding whitespace are ignored. Used for test
// fixtures and literal grids in examples.
func Parse(text string) (*Grid, error) {
	var states [][]State
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]State, 0, len(line))
		for _, ch := range line {
			switch ch {
			case SymbolEmpty:
				row = append(row, Empty)
			case SymbolWall:
				row = append(row, Wall)
			case SymbolStart:
				row = append(row, Start)
			case SymbolDestination:
				row = append(row, Destination)
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, ch)
			}
		}
		states = append(states, row)
	}
	return FromStates(states)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}
