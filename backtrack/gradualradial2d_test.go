package backtrack

import (
	"testing"

	"github.com/tilewave/wfc/space"
)

func TestGradualRadial2DEscalatesWithRepeatedContradictions(t *testing.T) {
	target := space.Location2D{X: 0, Y: 0}
	b := NewGradualRadial2D(0)

	// First contradiction at (0,0): radius 2^0 = 1, so only the
	// contradicting tile and its two in-grid neighbours reopen; (1,1) is
	// two steps away and stays collapsed to {0}.
	g := contradictedGrid2D(t, target)
	if _, err := b.HandleContradiction(g, target); err != nil {
		t.Fatalf("first HandleContradiction: %v", err)
	}
	for _, pos := range g.Positions() {
		tl, _ := g.GetTile(pos)
		adjacent := pos == target || pos == (space.Location2D{X: 1, Y: 0}) || pos == (space.Location2D{X: 0, Y: 1})
		if adjacent && tl.Len() != 2 {
			t.Errorf("first reset: %v has %d states, want 2", pos, tl.Len())
		}
		if !adjacent && tl.Len() != 1 {
			t.Errorf("first reset: %v has %d states, want 1 (untouched)", pos, tl.Len())
		}
	}

	// Second contradiction at the same position: radius 2^1 = 2, which
	// covers the whole 2x2 grid.
	g = contradictedGrid2D(t, target)
	if _, err := b.HandleContradiction(g, target); err != nil {
		t.Fatalf("second HandleContradiction: %v", err)
	}
	for _, pos := range g.Positions() {
		tl, _ := g.GetTile(pos)
		if tl.Len() != 2 {
			t.Errorf("second reset: %v has %d states, want 2 (whole grid reopened)", pos, tl.Len())
		}
	}
}
