package backtrack

import (
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
)

// FullReset2D recovers from any contradiction by discarding the entire
// grid's progress: New2D's own edge re-seeding immediately gives the
// fresh grid a head start, so a caller never sees a "blank" grid on the
// next Tick.
type FullReset2D struct{}

// HandleContradiction ignores position and resets g wholesale. It never
// fails and never finishes the run by itself.
func (FullReset2D) HandleContradiction(g *grid.Grid2D, position space.Location2D) (finished bool, err error) {
	g.Reset()
	return false, nil
}
