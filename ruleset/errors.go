package ruleset

import "errors"

var (
	// ErrUnknownDirectionTag indicates a JSON direction tag did not match
	// any of the lattice's direction names.
	ErrUnknownDirectionTag = errors.New("ruleset: unknown direction tag")
	// ErrNonPositiveWeight indicates a weights entry was zero or negative.
	ErrNonPositiveWeight = errors.New("ruleset: weights must be positive")
)
