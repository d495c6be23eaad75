package space

import "fmt"

// Direction1D is one of the two directions a 1-D tile can have a neighbour
// in. Ordering (LEFT=0, RIGHT=1) matches the JSON direction tags used by
// 1-D rule sets.
type Direction1D int

const (
	Left1D Direction1D = iota
	Right1D
)

// NeighbourCount1D is the number of directions a 1-D tile has neighbours in.
const NeighbourCount1D = 2

var directionNames1D = [NeighbourCount1D]string{"LEFT", "RIGHT"}

// String returns the JSON direction tag for d.
func (d Direction1D) String() string {
	if d < 0 || int(d) >= NeighbourCount1D {
		return fmt.Sprintf("Direction1D(%d)", int(d))
	}
	return directionNames1D[d]
}

// Index returns d's position in [0, NeighbourCount1D).
func (d Direction1D) Index() int { return int(d) }

// Mirror returns the opposite direction: LEFT<->RIGHT.
func (d Direction1D) Mirror() Direction1D {
	switch d {
	case Left1D:
		return Right1D
	case Right1D:
		return Left1D
	default:
		panic(fmt.Sprintf("space: invalid Direction1D %d", int(d)))
	}
}

// Direction1DFromIndex inverts Direction1D.Index.
func Direction1DFromIndex(i int) (Direction1D, bool) {
	if i < 0 || i >= NeighbourCount1D {
		return 0, false
	}
	return Direction1D(i), true
}

// Direction1DFromName inverts Direction1D.String.
func Direction1DFromName(name string) (Direction1D, bool) {
	for i, n := range directionNames1D {
		if n == name {
			return Direction1D(i), true
		}
	}
	return 0, false
}

// Delta1D is a signed offset between two Location1D values.
type Delta1D struct {
	X int
}

// Add returns the sum of two deltas.
func (d Delta1D) Add(other Delta1D) Delta1D { return Delta1D{X: d.X + other.X} }

// Sub returns d minus other.
func (d Delta1D) Sub(other Delta1D) Delta1D { return Delta1D{X: d.X - other.X} }

// DeltaFromDirection1D returns the unit delta a direction moves along.
func DeltaFromDirection1D(d Direction1D) Delta1D {
	switch d {
	case Left1D:
		return Delta1D{X: -1}
	case Right1D:
		return Delta1D{X: 1}
	default:
		panic(fmt.Sprintf("space: invalid Direction1D %d", int(d)))
	}
}

// Direction1DFromDelta is the partial inverse of DeltaFromDirection1D: it
// succeeds only for the two unit deltas.
func Direction1DFromDelta(d Delta1D) (Direction1D, bool) {
	switch d.X {
	case -1:
		return Left1D, true
	case 1:
		return Right1D, true
	default:
		return 0, false
	}
}

// Location1D is a non-negative 1-D grid coordinate.
type Location1D struct {
	X int
}

// Less gives Location1D its natural order.
func (l Location1D) Less(other Location1D) bool { return l.X < other.X }

// TryApply adds delta to l, returning (result, true) if the result is still
// non-negative, or (zero, false) otherwise.
func (l Location1D) TryApply(delta Delta1D) (Location1D, bool) {
	x := l.X + delta.X
	if x < 0 {
		return Location1D{}, false
	}
	return Location1D{X: x}, true
}

// Delta returns the offset from l to other (other - l).
func (l Location1D) Delta(other Location1D) Delta1D {
	return Delta1D{X: other.X - l.X}
}
