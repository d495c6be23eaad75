package tile

import "errors"

var (
	// ErrNotInSuperposition indicates a predetermined collapse targeted a
	// state the tile no longer considers possible.
	ErrNotInSuperposition = errors.New("tile: predetermined state is not in the superposition")
	// ErrContradicted indicates an operation was attempted on a tile whose
	// superposition is already empty.
	ErrContradicted = errors.New("tile: superposition is empty")
)
