package render

import (
	"strings"
	"testing"

	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/tile"
)

func renderableRuleSet() *ruleset.RuleSet2D {
	const a tile.TileState = 0
	const b tile.TileState = 1
	reprs := map[tile.TileState]uint32{
		a: 0xFFFF0000,
		b: 0xFF00FF00,
	}
	return ruleset.New2D(
		[]tile.TileState{a, b},
		nil,
		nil,
		reprs,
		nil,
	)
}

func TestRenderProducesWellFormedSVG(t *testing.T) {
	g, err := grid.New2D(2, 2, renderableRuleSet(), 1)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}

	svg := Render(g, 100, 100, nil)
	if !strings.HasPrefix(svg, `<svg width="100" height="100">`) {
		t.Errorf("SVG does not start with the expected header: %q", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("SVG does not end with </svg>: %q", svg)
	}
	if strings.Count(svg, "<rect") != 4 {
		t.Errorf("expected one rect per cell (4), got %d", strings.Count(svg, "<rect"))
	}
}

func TestRenderAtTimeUsesHistorySnapshot(t *testing.T) {
	g, err := grid.New2D(2, 2, renderableRuleSet(), 1)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	before := Render(g, 40, 40, nil)

	time := 0
	atStart := Render(g, 40, 40, &time)
	if atStart == "" {
		t.Fatal("Render at time 0 returned an empty string")
	}
	if atStart != before {
		t.Errorf("with an empty update log, the snapshot at time 0 should render like the current grid:\n%q\n%q", atStart, before)
	}
}
