package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadDigit indicates a grid character that is not a decimal digit.
	ErrBadDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrTooFewBasins indicates fewer basins exist than were requested.
	ErrTooFewBasins = errors.New("gridgraph: not enough basins")
)
