package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDuplicateMarker indicates more than one Start or Destination cell.
	ErrDuplicateMarker = errors.New("grid: start and destination may appear at most once")
	// ErrInvalidEndpoint indicates a start or destination that is out of bounds or a wall.
	ErrInvalidEndpoint = errors.New("grid: invalid endpoint")
	// ErrInvalidSize indicates generator dimensions that cannot hold distinct endpoints.
	ErrInvalidSize = errors.New("grid: invalid size")
	// ErrInvalidProbability indicates a wall probability outside [0, 1].
	ErrInvalidProbability = errors.New("grid: wall probability must be within [0, 1]")
	// ErrUnknownSymbol indicates an unrecognized character in a textual grid.
	ErrUnknownSymbol = errors.New("grid: unknown symbol")
)
