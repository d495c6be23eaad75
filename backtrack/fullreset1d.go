package backtrack

import (
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
)

// FullReset1D is FullReset2D's 1-D counterpart.
type FullReset1D struct{}

// HandleContradiction ignores position and resets g wholesale.
func (FullReset1D) HandleContradiction(g *grid.Grid1D, position space.Location1D) (finished bool, err error) {
	g.Reset()
	return false, nil
}
