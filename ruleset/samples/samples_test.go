package samples

import (
	"testing"

	"github.com/tilewave/wfc/space"
)

func TestCheckersMirrorsItself(t *testing.T) {
	rs := Checkers()
	if !rs.IsAllowed(CheckersBlack, space.Up, CheckersWhite) {
		t.Error("expected BLACK-WHITE adjacency")
	}
	if !rs.IsAllowed(CheckersWhite, space.Down, CheckersBlack) {
		t.Error("expected mirrored WHITE-BLACK adjacency")
	}
	if rs.IsAllowed(CheckersBlack, space.Up, CheckersBlack) {
		t.Error("checkers must never allow a state to sit next to itself")
	}
}

func TestStripesChain(t *testing.T) {
	rs := Stripes()
	if !rs.IsAllowed(StripesOne, space.Right, StripesMiddle) {
		t.Error("expected ONE-MIDDLE adjacency")
	}
	if !rs.IsAllowed(StripesMiddle, space.Right, StripesTwo) {
		t.Error("expected MIDDLE-TWO adjacency")
	}
	if rs.IsAllowed(StripesOne, space.Right, StripesTwo) {
		t.Error("ONE and TWO must never be directly adjacent")
	}
}

func TestFlowersSinglepixelEdges(t *testing.T) {
	rs := FlowersSinglepixel()
	edges := rs.InitializeEdges()
	if got, ok := edges[space.Down]; !ok || got != FlowersEdge {
		t.Errorf("InitializeEdges[DOWN] = %v, %v; want FlowersEdge, true", got, ok)
	}
	if rs.IsAllowed(FlowersA, space.Down, FlowersEdge) {
		t.Error("A must never sit directly above EDGE (only a horizontal adjacency exists)")
	}
	if !rs.IsAllowed(FlowersEdge, space.Up, FlowersB) {
		t.Error("EDGE must be allowed directly below B")
	}
	if rs.IsAllowed(FlowersEdge, space.Right, FlowersB) {
		t.Error("EDGE and B must not be horizontally adjacent")
	}
}

func TestBubbleWrapRing(t *testing.T) {
	rs := BubbleWrap(4)
	states := rs.Possible()
	if len(states) != 4 {
		t.Fatalf("expected 4 states, got %d", len(states))
	}
	if !rs.IsAllowed(states[0], space.Right, states[1]) {
		t.Error("expected ring neighbours 0-1 to be adjacent")
	}
	if !rs.IsAllowed(states[3], space.Right, states[0]) {
		t.Error("expected the ring to wrap from the last state back to the first")
	}
}
