package wfc

import (
	"errors"
	"math/rand"

	"github.com/tilewave/wfc/backtrack"
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// Engine1D is Engine2D's 1-D counterpart, driving a *grid.Grid1D.
type Engine1D struct {
	grid  *grid.Grid1D
	state State
}

// NewEngine1D wraps an already-constructed grid.
func NewEngine1D(g *grid.Grid1D) *Engine1D {
	return &Engine1D{grid: g, state: Observing}
}

// Grid returns the engine's underlying grid.
func (e *Engine1D) Grid() *grid.Grid1D { return e.grid }

// CurrentState reports the engine's phase as of the last Tick or Run call.
func (e *Engine1D) CurrentState() State { return e.state }

// Collapse is Engine2D.Collapse's 1-D counterpart.
func (e *Engine1D) Collapse(position space.Location1D, value *tile.TileState) error {
	e.state = Observing
	instruction := tile.RandomCollapse()
	if value != nil {
		instruction = tile.Predetermined(*value)
	}
	weights := e.grid.Rules().Weights()

	var collapseErr error
	_, ok := grid.WithTile1D(e.grid, position, func(t *tile.Tile, rng *rand.Rand) struct{} {
		_, collapseErr = t.Collapse(instruction, weights, rng)
		return struct{}{}
	})
	if !ok {
		return grid.ErrOutOfRange
	}
	if collapseErr != nil {
		return &grid.ContradictionError1D{Position: position}
	}

	e.state = Propagating
	if err := e.grid.Propagate(neighbourQueue1D(e.grid, position)); err != nil {
		e.state = Done
		return err
	}
	e.state = Observing
	return nil
}

func neighbourQueue1D(g *grid.Grid1D, pos space.Location1D) []grid.PropagateEntry1D {
	neighbours := g.GetNeighbours(pos)
	entries := make([]grid.PropagateEntry1D, 0, len(neighbours))
	for _, n := range neighbours {
		if n.Exists {
			entries = append(entries, grid.PropagateEntry1D{Source: pos, Target: n.Position})
		}
	}
	return entries
}

// Tick is Engine2D.Tick's 1-D counterpart.
func (e *Engine1D) Tick() (finished bool, err error) {
	pos, ok := e.grid.GetLowestEntropyPosition()
	if !ok {
		e.state = Done
		return true, nil
	}
	return false, e.Collapse(pos, nil)
}

// Run is Engine2D.Run's 1-D counterpart.
func (e *Engine1D) Run(maxIterations int, bt backtrack.Backtracker1D) error {
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

		var ce *grid.ContradictionError1D
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
