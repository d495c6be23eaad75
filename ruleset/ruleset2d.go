package ruleset

import (
	"sort"

	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// Triple2D is an allowed-adjacency entry: "to is permitted at the
// direction-side of from".
type Triple2D struct {
	From      tile.TileState
	Direction space.Direction2D
	To        tile.TileState
}

// RuleSet2D is the allowed-adjacency table for a 2-D lattice.
type RuleSet2D struct {
	possible             []tile.TileState
	allowed              map[Triple2D]struct{}
	weights              map[tile.TileState]int
	stateRepresentations map[tile.TileState]uint32
	initializeEdges      map[space.Direction2D]tile.TileState
}

// New2D builds a RuleSet2D. allowed need only list one direction of each
// mirrored pair — the mirror is inserted automatically, closing the
// allowed set under mirroring.
func New2D(
	possible []tile.TileState,
	allowed []Triple2D,
	weights map[tile.TileState]int,
	stateRepresentations map[tile.TileState]uint32,
	initializeEdges map[space.Direction2D]tile.TileState,
) *RuleSet2D {
	sortedPossible := append([]tile.TileState(nil), possible...)
	sort.Slice(sortedPossible, func(i, j int) bool { return sortedPossible[i] < sortedPossible[j] })

	closed := make(map[Triple2D]struct{}, len(allowed)*2)
	for _, t := range allowed {
		closed[t] = struct{}{}
		closed[Triple2D{From: t.To, Direction: t.Direction.Mirror(), To: t.From}] = struct{}{}
	}

	return &RuleSet2D{
		possible:             sortedPossible,
		allowed:              closed,
		weights:              copyWeights(weights),
		stateRepresentations: copyRepresentations(stateRepresentations),
		initializeEdges:      copyEdges2D(initializeEdges),
	}
}

func copyWeights(src map[tile.TileState]int) map[tile.TileState]int {
	dst := make(map[tile.TileState]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyRepresentations(src map[tile.TileState]uint32) map[tile.TileState]uint32 {
	dst := make(map[tile.TileState]uint32, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyEdges2D(src map[space.Direction2D]tile.TileState) map[space.Direction2D]tile.TileState {
	dst := make(map[space.Direction2D]tile.TileState, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Possible returns the alphabet in ascending order. Callers must not
// mutate the returned slice.
func (r *RuleSet2D) Possible() []tile.TileState { return r.possible }

// Weights returns the weights map for use by Tile.Collapse /
// Tile.CalculateEntropy. Callers must not mutate the returned map.
func (r *RuleSet2D) Weights() map[tile.TileState]int { return r.weights }

// InitializeEdges returns the edge-preseeding map. Callers must not
// mutate the returned map.
func (r *RuleSet2D) InitializeEdges() map[space.Direction2D]tile.TileState {
	return r.initializeEdges
}

// IsAllowed reports whether (from, direction, to) is in the closed
// allowed set.
func (r *RuleSet2D) IsAllowed(from tile.TileState, direction space.Direction2D, to tile.TileState) bool {
	_, ok := r.allowed[Triple2D{From: from, Direction: direction, To: to}]
	return ok
}

// Check retains every state in target that is permitted, in direction,
// next to at least one state in source. The result is an ordered subset
// of target — it never grows target's superposition.
func (r *RuleSet2D) Check(target, source []tile.TileState, direction space.Direction2D) []tile.TileState {
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
func (r *RuleSet2D) RepresentTile(state tile.TileState) (uint32, bool) {
	v, ok := r.stateRepresentations[state]
	return v, ok
}
