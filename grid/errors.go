package grid

import "errors"

var (
	// ErrOutOfRange indicates a position does not fall inside the grid's
	// extents.
	ErrOutOfRange = errors.New("grid: position is out of range")
	// ErrEmptyExtents indicates a grid was constructed with a zero width
	// or height.
	ErrEmptyExtents = errors.New("grid: width and height must be positive")
)
