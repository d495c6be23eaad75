package space

import "fmt"

// Direction2D is one of the four compass directions a 2-D tile can have a
// neighbour in. The ordering (UP=0, RIGHT=1, DOWN=2, LEFT=3) is load-bearing:
// every place that iterates over directions (neighbour lookup, propagation,
// edge preseeding) does so in this order, so that two runs with identical
// inputs produce byte-identical traces.
type Direction2D int

const (
	Up Direction2D = iota
	Right
	Down
	Left
)

// NeighbourCount2D is the number of directions a 2-D tile has neighbours in.
const NeighbourCount2D = 4

// directionNames2D backs Direction2D.String and the JSON direction tags
// ("UP"/"RIGHT"/"DOWN"/"LEFT") from spec.md's RuleSet JSON schema.
var directionNames2D = [NeighbourCount2D]string{"UP", "RIGHT", "DOWN", "LEFT"}

// String returns the JSON direction tag for d.
func (d Direction2D) String() string {
	if d < 0 || int(d) >= NeighbourCount2D {
		return fmt.Sprintf("Direction2D(%d)", int(d))
	}
	return directionNames2D[d]
}

// Index returns d's position in [0, NeighbourCount2D), matching String/Mirror.
func (d Direction2D) Index() int { return int(d) }

// Mirror returns the opposite direction: UP<->DOWN, RIGHT<->LEFT.
func (d Direction2D) Mirror() Direction2D {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		panic(fmt.Sprintf("space: invalid Direction2D %d", int(d)))
	}
}

// Direction2DFromIndex inverts Direction2D.Index.
func Direction2DFromIndex(i int) (Direction2D, bool) {
	if i < 0 || i >= NeighbourCount2D {
		return 0, false
	}
	return Direction2D(i), true
}

// Direction2DFromName inverts Direction2D.String, used when decoding the
// RuleSet JSON schema (spec.md §6).
func Direction2DFromName(name string) (Direction2D, bool) {
	for i, n := range directionNames2D {
		if n == name {
			return Direction2D(i), true
		}
	}
	return 0, false
}

// Delta2D is a signed offset between two Location2D values.
type Delta2D struct {
	X, Y int
}

// Add returns the sum of two deltas.
func (d Delta2D) Add(other Delta2D) Delta2D {
	return Delta2D{X: d.X + other.X, Y: d.Y + other.Y}
}

// Sub returns d minus other.
func (d Delta2D) Sub(other Delta2D) Delta2D {
	return Delta2D{X: d.X - other.X, Y: d.Y - other.Y}
}

// DeltaFromDirection2D returns the unit delta a direction moves along.
func DeltaFromDirection2D(d Direction2D) Delta2D {
	switch d {
	case Up:
		return Delta2D{X: 0, Y: -1}
	case Right:
		return Delta2D{X: 1, Y: 0}
	case Down:
		return Delta2D{X: 0, Y: 1}
	case Left:
		return Delta2D{X: -1, Y: 0}
	default:
		panic(fmt.Sprintf("space: invalid Direction2D %d", int(d)))
	}
}

// Direction2DFromDelta is the partial inverse of DeltaFromDirection2D: it
// succeeds only for unit axis-aligned deltas.
func Direction2DFromDelta(d Delta2D) (Direction2D, bool) {
	switch d {
	case Delta2D{X: 0, Y: -1}:
		return Up, true
	case Delta2D{X: 1, Y: 0}:
		return Right, true
	case Delta2D{X: 0, Y: 1}:
		return Down, true
	case Delta2D{X: -1, Y: 0}:
		return Left, true
	default:
		return 0, false
	}
}

// Location2D is a non-negative 2-D grid coordinate.
type Location2D struct {
	X, Y int
}

// Less gives Location2D a total, row-major order: by Y then X. Used
// wherever a set of positions must be iterated deterministically (spec.md
// §5, §9 — "ordered containers... keyed on stable total orderings").
func (l Location2D) Less(other Location2D) bool {
	if l.Y != other.Y {
		return l.Y < other.Y
	}
	return l.X < other.X
}

// TryApply adds delta to l, returning (result, true) if the result still has
// non-negative coordinates, or (zero, false) if it would fall off the edge
// of any non-negative lattice (the grid clips further against its extents).
func (l Location2D) TryApply(delta Delta2D) (Location2D, bool) {
	x := l.X + delta.X
	y := l.Y + delta.Y
	if x < 0 || y < 0 {
		return Location2D{}, false
	}
	return Location2D{X: x, Y: y}, true
}

// Delta returns the offset from l to other (other - l).
func (l Location2D) Delta(other Location2D) Delta2D {
	return Delta2D{X: other.X - l.X, Y: other.Y - l.Y}
}
