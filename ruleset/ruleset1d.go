package ruleset

import (
	"sort"

	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// Triple1D is an allowed-adjacency entry for the 1-D lattice.
type Triple1D struct {
	From      tile.TileState
	Direction space.Direction1D
	To        tile.TileState
}

// RuleSet1D is the allowed-adjacency table for a 1-D lattice.
type RuleSet1D struct {
	possible             []tile.TileState
	allowed              map[Triple1D]struct{}
	weights              map[tile.TileState]int
	stateRepresentations map[tile.TileState]uint32
	initializeEdges      map[space.Direction1D]tile.TileState
}

// New1D builds a RuleSet1D, closing allowed under mirroring exactly as
// New2D does.
func New1D(
	possible []tile.TileState,
	allowed []Triple1D,
	weights map[tile.TileState]int,
	stateRepresentations map[tile.TileState]uint32,
	initializeEdges map[space.Direction1D]tile.TileState,
) *RuleSet1D {
	sortedPossible := append([]tile.TileState(nil), possible...)
	sort.Slice(sortedPossible, func(i, j int) bool { return sortedPossible[i] < sortedPossible[j] })

	closed := make(map[Triple1D]struct{}, len(allowed)*2)
	for _, t := range allowed {
		closed[t] = struct{}{}
		closed[Triple1D{From: t.To, Direction: t.Direction.Mirror(), To: t.From}] = struct{}{}
	}

	edges := make(map[space.Direction1D]tile.TileState, len(initializeEdges))
	for k, v := range initializeEdges {
		edges[k] = v
	}

	return &RuleSet1D{
		possible:             sortedPossible,
		allowed:              closed,
		weights:              copyWeights(weights),
		stateRepresentations: copyRepresentations(stateRepresentations),
		initializeEdges:      edges,
	}
}

// Possible returns the alphabet in ascending order. Callers must not
// mutate the returned slice.
func (r *RuleSet1D) Possible() []tile.TileState { return r.possible }

// Weights returns the weights map. Callers must not mutate the returned map.
func (r *RuleSet1D) Weights() map[tile.TileState]int { return r.weights }

// InitializeEdges returns the edge-preseeding map. Callers must not
// mutate the returned map.
func (r *RuleSet1D) InitializeEdges() map[space.Direction1D]tile.TileState {
	return r.initializeEdges
}

// IsAllowed reports whether (from, direction, to) is in the closed
// allowed set.
func (r *RuleSet1D) IsAllowed(from tile.TileState, direction space.Direction1D, to tile.TileState) bool {
	_, ok := r.allowed[Triple1D{From: from, Direction: direction, To: to}]
	return ok
}

// Check retains every state in target that is permitted, in direction,
// next to at least one state in source.
func (r *RuleSet1D) Check(target, source []tile.TileState, direction space.Direction1D) []tile.TileState {
	checked := make([]tile.TileState, 0, len(target))
	for _, t := range target {
		for _, s := range source {
			if r.IsAllowed(t, direction, s) {
				checked = append(checked, t)
				break
			}
		}
	}
	return checked
}

// RepresentTile looks up the ARGB tag for state, if any.
func (r *RuleSet1D) RepresentTile(state tile.TileState) (uint32, bool) {
	v, ok := r.stateRepresentations[state]
	return v, ok
}
