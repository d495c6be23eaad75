package ruleset

import (
	"reflect"
	"testing"

	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

func TestNew1DClosesUnderMirroring(t *testing.T) {
	const (
		black tile.TileState = 0
		white tile.TileState = 1
	)
	rs := New1D(
		[]tile.TileState{black, white},
		[]Triple1D{{From: black, Direction: space.Right1D, To: white}},
		nil, nil, nil,
	)
	if !rs.IsAllowed(black, space.Right1D, white) {
		t.Error("expected the base triple to be allowed")
	}
	if !rs.IsAllowed(white, space.Left1D, black) {
		t.Error("expected the mirrored triple to be allowed")
	}
}

func TestJSONRoundtrip1D(t *testing.T) {
	orig := New1D(
		[]tile.TileState{5, 6},
		[]Triple1D{{From: 5, Direction: space.Right1D, To: 6}},
		map[tile.TileState]int{5: 3, 6: 7},
		map[tile.TileState]uint32{5: 0xFF000000, 6: 0xFF0000FF},
		map[space.Direction1D]tile.TileState{space.Left1D: 6},
	)
	data, err := orig.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	decoded, err := UnmarshalJSON1D(data)
	if err != nil {
		t.Fatalf("UnmarshalJSON1D: %v", err)
	}
	if !reflect.DeepEqual(orig.Possible(), decoded.Possible()) {
		t.Errorf("Possible mismatch: %v != %v", orig.Possible(), decoded.Possible())
	}
	if !orig.IsAllowed(5, space.Right1D, 6) || !decoded.IsAllowed(5, space.Right1D, 6) {
		t.Error("expected base triple to survive roundtrip")
	}
	if !decoded.IsAllowed(6, space.Left1D, 5) {
		t.Error("expected mirrored triple to survive roundtrip")
	}
	if !reflect.DeepEqual(orig.Weights(), decoded.Weights()) {
		t.Errorf("Weights mismatch: %v != %v", orig.Weights(), decoded.Weights())
	}
	if tag, ok := decoded.RepresentTile(5); !ok || tag != 0xFF000000 {
		t.Errorf("RepresentTile(5) = %v, %v; want 0xFF000000, true", tag, ok)
	}
	if !reflect.DeepEqual(orig.InitializeEdges(), decoded.InitializeEdges()) {
		t.Errorf("InitializeEdges mismatch: %v != %v", orig.InitializeEdges(), decoded.InitializeEdges())
	}
}

func TestUnmarshalJSON1DRejectsUnknownDirectionTag(t *testing.T) {
	_, err := UnmarshalJSON1D([]byte(`{
		"possible": [0, 1],
		"allowed": [[0, "UP", 1]],
		"weights": {},
		"state_representations": {},
		"initialize_edges": {}
	}`))
	if err == nil {
		t.Fatal("expected an error for a 2-D direction tag in a 1-D ruleset")
	}
}
