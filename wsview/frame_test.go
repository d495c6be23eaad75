package wsview

import (
	"testing"

	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/tile"
	"github.com/tilewave/wfc/wfc"
)

func twoStateRuleSet() *ruleset.RuleSet2D {
	const a tile.TileState = 0
	const b tile.TileState = 1
	return ruleset.New2D([]tile.TileState{a, b}, nil, nil, nil, nil)
}

func TestBuildFrameCoversEveryPosition(t *testing.T) {
	g, err := grid.New2D(3, 2, twoStateRuleSet(), 7)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	e := wfc.NewEngine2D(g)

	frame := buildFrame(g, e, 1, false)
	if len(frame.Cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(frame.Cells))
	}
	if frame.Sequence != 1 {
		t.Errorf("expected sequence 1, got %d", frame.Sequence)
	}
	if frame.Done {
		t.Errorf("expected Done=false")
	}
	for _, c := range frame.Cells {
		if len(c.States) == 0 {
			t.Errorf("cell (%d,%d) has no possible states", c.X, c.Y)
		}
	}
}

func TestBuildFrameMarksCollapsedTiles(t *testing.T) {
	g, err := grid.New2D(2, 2, twoStateRuleSet(), 7)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	e := wfc.NewEngine2D(g)

	target := g.Positions()[0]
	chosen := tile.TileState(0)
	if err := e.Collapse(target, &chosen); err != nil {
		t.Fatalf("Collapse: %v", err)
	}

	frame := buildFrame(g, e, 1, false)
	found := false
	for _, c := range frame.Cells {
		if c.X == target.X && c.Y == target.Y {
			found = true
			if !c.Collapsed {
				t.Errorf("expected target cell to be collapsed")
			}
			if len(c.States) != 1 || c.States[0] != int64(chosen) {
				t.Errorf("expected states=[%d], got %v", chosen, c.States)
			}
		}
	}
	if !found {
		t.Fatalf("target position not found in frame")
	}
}
