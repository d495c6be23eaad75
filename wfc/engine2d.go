package wfc

import (
	"errors"
	"math/rand"

	"github.com/tilewave/wfc/backtrack"
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// Engine2D drives a *grid.Grid2D through the observe-propagate loop.
type Engine2D struct {
	grid  *grid.Grid2D
	state State
}

// NewEngine2D wraps an already-constructed grid. The grid is expected to
// have come from grid.New2D, so its boundary edges are already seeded.
func NewEngine2D(g *grid.Grid2D) *Engine2D {
	return &Engine2D{grid: g, state: Observing}
}

// Grid returns the engine's underlying grid, e.g. for rendering.
func (e *Engine2D) Grid() *grid.Grid2D { return e.grid }

// CurrentState reports the engine's phase as of the last Tick or Run call.
func (e *Engine2D) CurrentState() State { return e.state }

// Collapse forces the tile at position to a single state (if value is
// non-nil) or lets it resolve to a weighted-random one (if nil), then
// propagates the consequences. It returns *grid.ContradictionError if
// either the collapse itself or its propagation empties a superposition.
func (e *Engine2D) Collapse(position space.Location2D, value *tile.TileState) error {
	e.state = Observing
	instruction := tile.RandomCollapse()
	if value != nil {
		instruction = tile.Predetermined(*value)
	}
	weights := e.grid.Rules().Weights()

	var collapseErr error
	_, ok := grid.WithTile2D(e.grid, position, func(t *tile.Tile, rng *rand.Rand) struct{} {
		_, collapseErr = t.Collapse(instruction, weights, rng)
		return struct{}{}
	})
	if !ok {
		return grid.ErrOutOfRange
	}
	if collapseErr != nil {
		// The tile could not collapse (the requested state wasn't in its
		// superposition, or the superposition was already empty): treat it
		// exactly like any other contradiction at this position.
		return &grid.ContradictionError{Position: position}
	}

	e.state = Propagating
	if err := e.grid.Propagate(neighbourQueue2D(e.grid, position)); err != nil {
		e.state = Done
		return err
	}
	e.state = Observing
	return nil
}

func neighbourQueue2D(g *grid.Grid2D, pos space.Location2D) []grid.PropagateEntry2D {
	neighbours := g.GetNeighbours(pos)
	entries := make([]grid.PropagateEntry2D, 0, len(neighbours))
	for _, n := range neighbours {
		if n.Exists {
			entries = append(entries, grid.PropagateEntry2D{Source: pos, Target: n.Position})
		}
	}
	return entries
}

// Tick picks the lowest-entropy uncollapsed cell and collapses it. finished
// is true once no uncollapsed cell remains (the grid is done, not an
// error). err is non-nil only when collapsing the chosen cell raised a
// contradiction.
func (e *Engine2D) Tick() (finished bool, err error) {
	pos, ok := e.grid.GetLowestEntropyPosition()
	if !ok {
		e.state = Done
		return true, nil
	}
	return false, e.Collapse(pos, nil)
}

// Run ticks the engine until it is finished, an unhandled contradiction
// surfaces, or maxIterations is exhausted. On contradiction, bt (if
// non-nil) is given the position to repair; bt reporting finished ends
// the run successfully, and any error it returns is treated exactly like
// a fresh contradiction (bounded by the same iteration budget). Run
// returns nil on success, ErrMaxIterationsReached on budget exhaustion,
// or an unhandled contradiction error otherwise.
func (e *Engine2D) Run(maxIterations int, bt backtrack.Backtracker2D) error {
	iterations := 0
	for iterations < maxIterations {
		finished, err := e.Tick()
		iterations++
		if finished {
			e.state = Done
			return nil
		}
		if err == nil {
			continue
		}

		var ce *grid.ContradictionError
		if !errors.As(err, &ce) {
			e.state = Done
			return err
		}
		if bt == nil {
			e.state = Done
			return err
		}

		for {
			if iterations >= maxIterations {
				e.state = Done
				return ErrMaxIterationsReached
			}
			e.state = Recovering
			iterations++
			handlerFinished, handlerErr := bt.HandleContradiction(e.grid, ce.Position)
			if handlerFinished {
				e.state = Done
				return nil
			}
			if handlerErr == nil {
				e.state = Observing
				break
			}
			if !errors.As(handlerErr, &ce) {
				e.state = Done
				return handlerErr
			}
		}
	}
	e.state = Done
	return ErrMaxIterationsReached
}
