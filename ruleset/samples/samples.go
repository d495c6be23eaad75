package samples

import (
	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

var allDirections2D = [...]space.Direction2D{space.Up, space.Right, space.Down, space.Left}

// identityPairs2D returns (state, d, state) for every direction, letting
// state sit next to itself on every side.
func identityPairs2D(state tile.TileState) []ruleset.Triple2D {
	pairs := make([]ruleset.Triple2D, 0, len(allDirections2D))
	for _, d := range allDirections2D {
		pairs = append(pairs, ruleset.Triple2D{From: state, Direction: d, To: state})
	}
	return pairs
}

// omnidirectionalPairs2D returns (a, d, b) for every direction, the
// mirror pairs added automatically by New2D.
func omnidirectionalPairs2D(a, b tile.TileState) []ruleset.Triple2D {
	pairs := make([]ruleset.Triple2D, 0, len(allDirections2D))
	for _, d := range allDirections2D {
		pairs = append(pairs, ruleset.Triple2D{From: a, Direction: d, To: b})
	}
	return pairs
}

// Checkers states, exported so callers can label results without
// depending on the sample's internal numbering.
const (
	CheckersBlack tile.TileState = 0
	CheckersWhite tile.TileState = 1
)

// Checkers is a two-state rule-set where no two adjacent cells ever share
// a state, ported from the reference `samples::checkers` adjacency table.
func Checkers() *ruleset.RuleSet2D {
	return ruleset.New2D(
		[]tile.TileState{CheckersBlack, CheckersWhite},
		omnidirectionalPairs2D(CheckersBlack, CheckersWhite),
		nil, nil, nil,
	)
}

// Stripes states (numbered starting at 2, matching the end-to-end
// scenario that names them).
const (
	StripesOne    tile.TileState = 2
	StripesMiddle tile.TileState = 3
	StripesTwo    tile.TileState = 4
)

// Stripes is a three-state rule-set forming a linear ONE-MIDDLE-TWO chain
// in every direction: MIDDLE can sit next to itself (thick stripes),
// ONE and TWO only ever touch MIDDLE.
func Stripes() *ruleset.RuleSet2D {
	allowed := append(
		omnidirectionalPairs2D(StripesOne, StripesMiddle),
		omnidirectionalPairs2D(StripesMiddle, StripesTwo)...,
	)
	allowed = append(allowed, identityPairs2D(StripesMiddle)...)
	return ruleset.New2D(
		[]tile.TileState{StripesOne, StripesMiddle, StripesTwo},
		allowed,
		nil, nil, nil,
	)
}

// TerrainSimple states: a shorter sea-to-land gradient than Terrain, kept
// around as a lighter-weight fixture for tests that don't need the full
// five-state gradient.
const (
	TerrainSimpleSea   tile.TileState = 10
	TerrainSimpleShore tile.TileState = 11
	TerrainSimpleLand  tile.TileState = 12
)

// TerrainSimple is the three-state reduction of Terrain: SEA-SHORE-LAND,
// each allowed next to itself and next to its immediate neighbour in the
// gradient.
func TerrainSimple() *ruleset.RuleSet2D {
	states := []tile.TileState{TerrainSimpleSea, TerrainSimpleShore, TerrainSimpleLand}
	var allowed []ruleset.Triple2D
	for _, s := range states {
		allowed = append(allowed, identityPairs2D(s)...)
	}
	allowed = append(allowed, omnidirectionalPairs2D(TerrainSimpleSea, TerrainSimpleShore)...)
	allowed = append(allowed, omnidirectionalPairs2D(TerrainSimpleShore, TerrainSimpleLand)...)
	return ruleset.New2D(states, allowed, nil, nil, nil)
}

// Terrain states, following a DEEP_SEA -> SEA -> SHORE -> LAND -> FOREST
// gradient, ported from the reference `samples::terrain` adjacency table.
const (
	TerrainDeepSea tile.TileState = 20
	TerrainSea     tile.TileState = 21
	TerrainShore   tile.TileState = 22
	TerrainLand    tile.TileState = 23
	TerrainForest  tile.TileState = 24
)

// Terrain is a five-state gradient rule-set: each state is allowed next
// to itself and next to its immediate neighbours in the DEEP_SEA -> SEA
// -> SHORE -> LAND -> FOREST chain.
func Terrain() *ruleset.RuleSet2D {
	states := []tile.TileState{
		TerrainDeepSea, TerrainSea, TerrainShore, TerrainLand, TerrainForest,
	}
	var allowed []ruleset.Triple2D
	for _, s := range states {
		allowed = append(allowed, identityPairs2D(s)...)
	}
	chain := [][2]tile.TileState{
		{TerrainDeepSea, TerrainSea},
		{TerrainSea, TerrainShore},
		{TerrainShore, TerrainLand},
		{TerrainLand, TerrainForest},
	}
	for _, link := range chain {
		allowed = append(allowed, omnidirectionalPairs2D(link[0], link[1])...)
	}
	return ruleset.New2D(states, allowed, nil, nil, nil)
}

// FlowersSinglepixel states, matching the edge-preseed end-to-end
// scenario: EDGE is the state the DOWN boundary is preseeded to; A and B
// are the two accent colours.
const (
	FlowersA    tile.TileState = 30
	FlowersEdge tile.TileState = 31
	FlowersB    tile.TileState = 32
)

// FlowersSinglepixel is a three-state rule-set with identity adjacency,
// A<->EDGE restricted to the horizontal (LEFT/RIGHT) axis, EDGE<->B
// restricted to the vertical (UP/DOWN) axis, A<->B unrestricted, and
// DOWN edges preseeded to EDGE — the exact fixture the edge-preseeding
// end-to-end scenario exercises: a DOWN-seeded EDGE row eliminates A from
// the row above it (no vertical A-EDGE adjacency exists) while leaving
// EDGE and B both possible there.
func FlowersSinglepixel() *ruleset.RuleSet2D {
	states := []tile.TileState{FlowersA, FlowersEdge, FlowersB}
	var allowed []ruleset.Triple2D
	for _, s := range states {
		allowed = append(allowed, identityPairs2D(s)...)
	}
	allowed = append(allowed,
		ruleset.Triple2D{From: FlowersA, Direction: space.Right, To: FlowersEdge},
		ruleset.Triple2D{From: FlowersA, Direction: space.Left, To: FlowersEdge},
		ruleset.Triple2D{From: FlowersEdge, Direction: space.Up, To: FlowersB},
	)
	allowed = append(allowed, omnidirectionalPairs2D(FlowersA, FlowersB)...)
	edges := map[space.Direction2D]tile.TileState{space.Down: FlowersEdge}
	return ruleset.New2D(states, allowed, nil, nil, edges)
}

// BubbleWrap builds an n-state ring fixture: state i is allowed next to
// itself and next to its two ring neighbours (i-1 and i+1 mod n), in
// every direction. Useful as a parameterizable stress-test fixture for
// grid sizes and seed sweeps that need more than a handful of states.
func BubbleWrap(n int) *ruleset.RuleSet2D {
	if n < 1 {
		panic("samples: BubbleWrap requires at least one state")
	}
	states := make([]tile.TileState, n)
	for i := range states {
		states[i] = tile.TileState(100 + i)
	}
	var allowed []ruleset.Triple2D
	for i, s := range states {
		allowed = append(allowed, identityPairs2D(s)...)
		if n > 1 {
			next := states[(i+1)%n]
			allowed = append(allowed, omnidirectionalPairs2D(s, next)...)
		}
	}
	return ruleset.New2D(states, allowed, nil, nil, nil)
}
