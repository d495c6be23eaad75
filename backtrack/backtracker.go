package backtrack

import (
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
)

// Backtracker2D repairs a *grid.Grid2D after a contradiction at position.
// finished reports whether the repair itself happened to leave the grid
// fully collapsed (a success the run loop should stop on); err is
// non-nil only if the repair's own re-propagation raised a fresh
// contradiction, which the caller treats exactly like the original one.
type Backtracker2D interface {
	HandleContradiction(g *grid.Grid2D, position space.Location2D) (finished bool, err error)
}

// Backtracker1D is Backtracker2D's 1-D counterpart.
type Backtracker1D interface {
	HandleContradiction(g *grid.Grid1D, position space.Location1D) (finished bool, err error)
}
