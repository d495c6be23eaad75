package ruleset

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// ruleSetDocument2D mirrors the on-disk schema from spec.md §6 exactly:
// possible/allowed/weights/state_representations/initialize_edges. No
// ecosystem JSON library in the retrieval pack offers anything beyond
// encoding/json for a literal, already-fixed schema like this one, so the
// implementation stays on the standard library (see DESIGN.md).
type ruleSetDocument2D struct {
	Possible             []uint64          `json:"possible"`
	Allowed              []allowedTriple2D `json:"allowed"`
	Weights              map[string]int    `json:"weights"`
	StateRepresentations map[string]uint32 `json:"state_representations"`
	InitializeEdges      map[string]uint64 `json:"initialize_edges"`
}

// allowedTriple2D renders as a 3-element JSON array [state, direction_tag,
// state] rather than an object, matching the schema's "triples" wording.
type allowedTriple2D struct {
	From      tile.TileState
	Direction space.Direction2D
	To        tile.TileState
}

func (t allowedTriple2D) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]interface{}{uint64(t.From), t.Direction.String(), uint64(t.To)})
}

func (t *allowedTriple2D) UnmarshalJSON(data []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ruleset: decoding allowed triple: %w", err)
	}
	var from, to uint64
	var dirName string
	if err := json.Unmarshal(raw[0], &from); err != nil {
		return fmt.Errorf("ruleset: decoding allowed triple's first state: %w", err)
	}
	if err := json.Unmarshal(raw[1], &dirName); err != nil {
		return fmt.Errorf("ruleset: decoding allowed triple's direction: %w", err)
	}
	if err := json.Unmarshal(raw[2], &to); err != nil {
		return fmt.Errorf("ruleset: decoding allowed triple's second state: %w", err)
	}
	dir, ok := space.Direction2DFromName(dirName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirectionTag, dirName)
	}
	t.From = tile.TileState(from)
	t.Direction = dir
	t.To = tile.TileState(to)
	return nil
}

// MarshalJSON renders r per spec.md §6's RuleSet JSON schema.
func (r *RuleSet2D) MarshalJSON() ([]byte, error) {
	doc := ruleSetDocument2D{
		Possible:             make([]uint64, len(r.possible)),
		Weights:              make(map[string]int, len(r.weights)),
		StateRepresentations: make(map[string]uint32, len(r.stateRepresentations)),
		InitializeEdges:      make(map[string]uint64, len(r.initializeEdges)),
	}
	for i, s := range r.possible {
		doc.Possible[i] = uint64(s)
	}
	for s, w := range r.weights {
		doc.Weights[strconv.FormatUint(uint64(s), 10)] = w
	}
	for s, tag := range r.stateRepresentations {
		doc.StateRepresentations[strconv.FormatUint(uint64(s), 10)] = tag
	}
	for d, s := range r.initializeEdges {
		doc.InitializeEdges[d.String()] = uint64(s)
	}

	triples := make([]allowedTriple2D, 0, len(r.allowed))
	for t := range r.allowed {
		triples = append(triples, allowedTriple2D{From: t.From, Direction: t.Direction, To: t.To})
	}
	sort.Slice(triples, func(i, j int) bool {
		if triples[i].From != triples[j].From {
			return triples[i].From < triples[j].From
		}
		if triples[i].Direction != triples[j].Direction {
			return triples[i].Direction.Index() < triples[j].Direction.Index()
		}
		return triples[i].To < triples[j].To
	})
	doc.Allowed = triples

	return json.Marshal(doc)
}

// UnmarshalJSON2D decodes a RuleSet2D from its JSON schema. It re-runs
// the mirror-closing constructor, so hand-edited JSON that only lists one
// direction of a pair is still accepted.
func UnmarshalJSON2D(data []byte) (*RuleSet2D, error) {
	var doc ruleSetDocument2D
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ruleset: decoding RuleSet2D: %w", err)
	}

	possible := make([]tile.TileState, len(doc.Possible))
	for i, s := range doc.Possible {
		possible[i] = tile.TileState(s)
	}

	allowed := make([]Triple2D, len(doc.Allowed))
	for i, t := range doc.Allowed {
		allowed[i] = Triple2D{From: t.From, Direction: t.Direction, To: t.To}
	}

	weights := make(map[tile.TileState]int, len(doc.Weights))
	for key, w := range doc.Weights {
		s, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ruleset: decoding weights key %q: %w", key, err)
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: state %d has weight %d", ErrNonPositiveWeight, s, w)
		}
		weights[tile.TileState(s)] = w
	}

	representations := make(map[tile.TileState]uint32, len(doc.StateRepresentations))
	for key, tag := range doc.StateRepresentations {
		s, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ruleset: decoding state_representations key %q: %w", key, err)
		}
		representations[tile.TileState(s)] = tag
	}

	edges := make(map[space.Direction2D]tile.TileState, len(doc.InitializeEdges))
	for key, s := range doc.InitializeEdges {
		dir, ok := space.Direction2DFromName(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDirectionTag, key)
		}
		edges[dir] = tile.TileState(s)
	}

	return New2D(possible, allowed, weights, representations, edges), nil
}
