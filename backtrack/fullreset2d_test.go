package backtrack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// twoStateRuleSet2D allows every pair of states in every direction, so
// re-propagation never narrows a reopened tile.
func twoStateRuleSet2D() *ruleset.RuleSet2D {
	const a tile.TileState = 0
	const b tile.TileState = 1
	return ruleset.New2D(
		[]tile.TileState{a, b},
		[]ruleset.Triple2D{
			{From: a, Direction: space.Down, To: a},
			{From: a, Direction: space.Left, To: a},
			{From: b, Direction: space.Down, To: b},
			{From: b, Direction: space.Left, To: b},
			{From: a, Direction: space.Up, To: b},
			{From: a, Direction: space.Right, To: b},
			{From: a, Direction: space.Down, To: b},
			{From: a, Direction: space.Left, To: b},
		},
		nil, nil, nil,
	)
}

func contradictedGrid2D(t *testing.T, target space.Location2D) *grid.Grid2D {
	t.Helper()
	g, err := grid.New2D(2, 2, twoStateRuleSet2D(), 0)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	for _, pos := range g.Positions() {
		states := map[tile.TileState]struct{}{0: {}}
		if pos == target {
			states = map[tile.TileState]struct{}{}
		}
		grid.WithTile2D(g, pos, func(tl *tile.Tile, _ *rand.Rand) struct{} {
			tl.SetPossibleStates(states)
			return struct{}{}
		})
	}
	return g
}

func TestFullReset2DRestoresFullSuperposition(t *testing.T) {
	target := space.Location2D{X: 0, Y: 0}
	var b FullReset2D

	for attempt := 0; attempt < 2; attempt++ {
		g := contradictedGrid2D(t, target)
		finished, err := b.HandleContradiction(g, target)
		require.NoError(t, err, "attempt %d", attempt)
		require.False(t, finished, "attempt %d: FullReset2D should never report finished", attempt)

		for _, pos := range g.Positions() {
			tl, _ := g.GetTile(pos)
			require.Equal(t, 2, tl.Len(), "attempt %d: %v", attempt, pos)
		}
	}
}
