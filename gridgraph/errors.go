package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNoPath indicates no breach path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrBadGlyph indicates an unknown character in an ASCII map.
	ErrBadGlyph = errors.New("gridgraph: unknown map glyph")
	// ErrDuplicateMarker indicates more than one start or goal marker in an ASCII map.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or goal marker")
)
