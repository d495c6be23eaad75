package grid

import (
	"math/rand"
	"testing"

	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

func checkersRuleSet1D() *ruleset.RuleSet1D {
	const black tile.TileState = 0
	const white tile.TileState = 1
	return ruleset.New1D(
		[]tile.TileState{black, white},
		[]ruleset.Triple1D{
			{From: black, Direction: space.Left1D, To: white},
			{From: black, Direction: space.Right1D, To: white},
		},
		nil, nil, nil,
	)
}

func TestNew1DAllocatesFullSuperposition(t *testing.T) {
	rs := checkersRuleSet1D()
	g, err := New1D(5, rs, 1)
	if err != nil {
		t.Fatalf("New1D: %v", err)
	}
	if len(g.Positions()) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(g.Positions()))
	}
	for _, pos := range g.Positions() {
		tl, ok := g.GetTile(pos)
		if !ok || tl.Len() != 2 {
			t.Errorf("tile at %v = %v, %v; want len 2", pos, tl, ok)
		}
	}
}

func TestGrid1DNeighboursBoundary(t *testing.T) {
	rs := checkersRuleSet1D()
	g, err := New1D(3, rs, 1)
	if err != nil {
		t.Fatalf("New1D: %v", err)
	}
	neighbours := g.GetNeighbours(space.Location1D{X: 0})
	for _, n := range neighbours {
		if n.Direction == space.Left1D && n.Exists {
			t.Error("position 0 should have no LEFT neighbour")
		}
		if n.Direction == space.Right1D && (!n.Exists || n.Position != (space.Location1D{X: 1})) {
			t.Errorf("position 0 RIGHT neighbour = %v, %v; want (1), true", n.Position, n.Exists)
		}
	}
}

func TestGrid1DPropagateAlternatesCheckers(t *testing.T) {
	rs := checkersRuleSet1D()
	g, err := New1D(3, rs, 2)
	if err != nil {
		t.Fatalf("New1D: %v", err)
	}
	start := space.Location1D{X: 0}
	_, ok := WithTile1D(g, start, func(tl *tile.Tile, rng *rand.Rand) tile.TileState {
		chosen, err := tl.Collapse(tile.Predetermined(0), rs.Weights(), rng)
		if err != nil {
			t.Fatalf("Collapse: %v", err)
		}
		return chosen
	})
	if !ok {
		t.Fatal("WithTile1D reported out of range for position 0")
	}
	if err := g.Propagate(g.neighbourEntries(start)); err != nil {
		t.Fatalf("Propagate: %v", err)
	}

	middle, _ := g.GetTile(space.Location1D{X: 1})
	if !middle.HasCollapsed() || !middle.Contains(1) {
		t.Errorf("middle tile = %v, want collapsed to white(1)", middle.PossibleStates())
	}
	last, _ := g.GetTile(space.Location1D{X: 2})
	if !last.HasCollapsed() || !last.Contains(0) {
		t.Errorf("last tile = %v, want collapsed to black(0)", last.PossibleStates())
	}
}

// TestGetLowestEntropyPosition1DIsMinimal covers spec.md §8 property 5 for
// the 1-D lattice: the returned position's entropy must be ≤ every other
// uncollapsed tile's entropy (ties allowed).
func TestGetLowestEntropyPosition1DIsMinimal(t *testing.T) {
	rs := checkersRuleSet1D()
	g, err := New1D(5, rs, 5)
	if err != nil {
		t.Fatalf("New1D: %v", err)
	}

	pos, ok := g.GetLowestEntropyPosition()
	if !ok {
		t.Fatal("expected a lowest-entropy position on a freshly built grid")
	}
	chosen, ok := g.GetTile(pos)
	if !ok {
		t.Fatalf("GetTile(%v) missing", pos)
	}

	rng := rand.New(rand.NewSource(1))
	chosenEntropy, hasEntropy := chosen.CalculateEntropy(rs.Weights(), rng)
	if !hasEntropy {
		t.Fatalf("chosen position %v reported as lowest-entropy is already collapsed", pos)
	}
	for _, other := range g.Positions() {
		tl, _ := g.GetTile(other)
		entropy, ok := tl.CalculateEntropy(rs.Weights(), rng)
		if !ok {
			continue
		}
		if entropy < chosenEntropy {
			t.Errorf("position %v has entropy %v, lower than chosen %v's %v", other, entropy, pos, chosenEntropy)
		}
	}
}
