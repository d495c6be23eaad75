// Package space defines the dimension-generic position, delta and
// direction primitives the rest of the solver is built on: Location2D
// and Location1D (non-negative grid coordinates), Delta2D and Delta1D
// (signed offsets), and the Direction2D/Direction1D enums that connect
// the two together.
//
// Two concrete instantiations are provided rather than one generic one:
// a 2-D lattice (UP, RIGHT, DOWN, LEFT) and a 1-D lattice (LEFT, RIGHT).
// Both share the same shape — ordered directions with a total mirror
// function, try-apply arithmetic that reports out-of-range instead of
// wrapping or panicking — so algorithms written against one generalize
// to the other by construction, not by a shared interface.
package space
