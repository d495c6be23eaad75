package backtrack

import (
	"math/rand"

	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// GradualRadial2D recovers from a contradiction by reopening only a
// breadth-first neighbourhood around it, rather than the whole grid. The
// radius doubles (2^(base+resets)) each time the same position
// contradicts again, so repeated trouble at one spot eventually escalates
// to a full-grid reset without ever needing one on the first try.
type GradualRadial2D struct {
	baseRadius int
	resetCount map[space.Location2D]int
}

// NewGradualRadial2D creates a recoverer whose first reset at any given
// position uses radius 2^baseRadius.
func NewGradualRadial2D(baseRadius int) *GradualRadial2D {
	return &GradualRadial2D{baseRadius: baseRadius, resetCount: make(map[space.Location2D]int)}
}

type bfsEntry2D struct {
	position space.Location2D
	distance int
}

// HandleContradiction reopens the neighbourhood around position and
// re-propagates every grid edge. err carries a fresh *grid.ContradictionError
// if that re-propagation itself empties a superposition.
func (b *GradualRadial2D) HandleContradiction(g *grid.Grid2D, position space.Location2D) (finished bool, err error) {
	resets := b.resetCount[position]
	b.resetCount[position] = resets + 1
	maxRadius := 1 << uint(resets+b.baseRadius)

	inRadius := map[space.Location2D]struct{}{position: {}}
	border := map[space.Location2D]struct{}{}
	queue := []bfsEntry2D{{position: position, distance: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.distance >= maxRadius {
			continue
		}
		for _, n := range g.GetNeighbours(cur.position) {
			if !n.Exists {
				continue
			}
			if _, seen := inRadius[n.Position]; seen {
				continue
			}
			if _, seen := border[n.Position]; seen {
				continue
			}
			distance := cur.distance + 1
			if distance == maxRadius {
				border[n.Position] = struct{}{}
			} else {
				inRadius[n.Position] = struct{}{}
			}
			queue = append(queue, bfsEntry2D{position: n.Position, distance: distance})
		}
	}

	if len(inRadius) == len(g.Positions()) {
		g.Reset()
		return false, nil
	}

	alphabet := g.Rules().Possible()
	for loc := range inRadius {
		grid.WithTile2D(g, loc, func(t *tile.Tile, _ *rand.Rand) struct{} {
			t.SetPossibleStates(toSet2D(alphabet))
			return struct{}{}
		})
	}
	for loc := range border {
		grid.WithTile2D(g, loc, func(t *tile.Tile, _ *rand.Rand) struct{} {
			t.SetPossibleStates(toSet2D(alphabet))
			return struct{}{}
		})
	}

	var queueEntries []grid.PropagateEntry2D
	for _, pos := range g.Positions() {
		for _, n := range g.GetNeighbours(pos) {
			if !n.Exists {
				continue
			}
			queueEntries = append(queueEntries,
				grid.PropagateEntry2D{Source: pos, Target: n.Position},
				grid.PropagateEntry2D{Source: n.Position, Target: pos},
			)
		}
	}

	if err := g.Propagate(queueEntries); err != nil {
		return false, err
	}
	return false, nil
}

func toSet2D(states []tile.TileState) map[tile.TileState]struct{} {
	set := make(map[tile.TileState]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}
