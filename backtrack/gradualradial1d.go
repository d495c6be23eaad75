package backtrack

import (
	"math/rand"

	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// GradualRadial1D is GradualRadial2D's 1-D counterpart.
type GradualRadial1D struct {
	baseRadius int
	resetCount map[space.Location1D]int
}

// NewGradualRadial1D is NewGradualRadial2D's 1-D counterpart.
func NewGradualRadial1D(baseRadius int) *GradualRadial1D {
	return &GradualRadial1D{baseRadius: baseRadius, resetCount: make(map[space.Location1D]int)}
}

type bfsEntry1D struct {
	position space.Location1D
	distance int
}

// HandleContradiction is GradualRadial2D.HandleContradiction's 1-D
// counterpart.
func (b *GradualRadial1D) HandleContradiction(g *grid.Grid1D, position space.Location1D) (finished bool, err error) {
	resets := b.resetCount[position]
	b.resetCount[position] = resets + 1
	maxRadius := 1 << uint(resets+b.baseRadius)

	inRadius := map[space.Location1D]struct{}{position: {}}
	border := map[space.Location1D]struct{}{}
	queue := []bfsEntry1D{{position: position, distance: 0}}
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
			queue = append(queue, bfsEntry1D{position: n.Position, distance: distance})
		}
	}

	if len(inRadius) == len(g.Positions()) {
		g.Reset()
		return false, nil
	}

	alphabet := g.Rules().Possible()
	for loc := range inRadius {
		grid.WithTile1D(g, loc, func(t *tile.Tile, _ *rand.Rand) struct{} {
			t.SetPossibleStates(toSet2D(alphabet))
			return struct{}{}
		})
	}
	for loc := range border {
		grid.WithTile1D(g, loc, func(t *tile.Tile, _ *rand.Rand) struct{} {
			t.SetPossibleStates(toSet2D(alphabet))
			return struct{}{}
		})
	}

	var queueEntries []grid.PropagateEntry1D
	for _, pos := range g.Positions() {
		for _, n := range g.GetNeighbours(pos) {
			if !n.Exists {
				continue
			}
			queueEntries = append(queueEntries,
				grid.PropagateEntry1D{Source: pos, Target: n.Position},
				grid.PropagateEntry1D{Source: n.Position, Target: pos},
			)
		}
	}

	if err := g.Propagate(queueEntries); err != nil {
		return false, err
	}
	return false, nil
}
