package grid

import (
	"container/heap"
	"fmt"
	"math/rand"
	"reflect"
	"sort"

	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// ContradictionError reports that a tile at Position ended up with an
// empty superposition during propagation.
type ContradictionError struct {
	Position space.Location2D
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("grid: contradiction at %v", e.Position)
}

// PropagateEntry2D is a single FIFO entry: "re-check Target's allowed
// states given that Source has changed."
type PropagateEntry2D struct {
	Source, Target space.Location2D
}

// Neighbour2D is one of a position's (up to) four neighbours.
type Neighbour2D struct {
	Direction space.Direction2D
	Position  space.Location2D
	Exists    bool
}

// UpdateEntry2D is one append-only log record: the position written and
// the tile snapshot it was written with.
type UpdateEntry2D struct {
	Position space.Location2D
	Snapshot *tile.Tile
}

// Grid2D is a dense, row-major container of Tiles over a 2-D rule-set,
// with an entropy priority queue and an append-only update log.
type Grid2D struct {
	width, height int
	rules         *ruleset.RuleSet2D
	rng           *rand.Rand
	tiles         []*tile.Tile
	versions      []int
	pq            *entropyPQ2D
	log           []UpdateEntry2D
}

// New2D allocates a width x height grid of tiles in full superposition,
// computes their initial entropies, then preseeds every boundary named in
// rules.InitializeEdges and propagates those seeds to completion. A
// contradiction during edge seeding is a malformed rule-set, not a
// runtime error, so it panics rather than returning one.
func New2D(width, height int, rules *ruleset.RuleSet2D, seed int64) (*Grid2D, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyExtents
	}

	g := &Grid2D{
		width:    width,
		height:   height,
		rules:    rules,
		rng:      rand.New(rand.NewSource(seed)),
		tiles:    make([]*tile.Tile, width*height),
		versions: make([]int, width*height),
		pq:       &entropyPQ2D{},
	}
	heap.Init(g.pq)

	alphabet := rules.Possible()
	for _, pos := range g.Positions() {
		g.tiles[g.index(pos)] = tile.NewFull(alphabet)
	}
	for _, pos := range g.Positions() {
		g.refreshEntropy(pos)
	}

	if err := g.seedEdges(); err != nil {
		panic(fmt.Sprintf("grid: edge preseeding produced a contradiction: %v", err))
	}

	return g, nil
}

func (g *Grid2D) index(pos space.Location2D) int { return pos.Y*g.width + pos.X }

func (g *Grid2D) contains(pos space.Location2D) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < g.width && pos.Y < g.height
}

// Width and Height report the grid's extents.
func (g *Grid2D) Width() int  { return g.width }
func (g *Grid2D) Height() int { return g.height }

// Rules returns the grid's rule-set.
func (g *Grid2D) Rules() *ruleset.RuleSet2D { return g.rules }

// Positions visits every grid position once, in row-major order.
func (g *Grid2D) Positions() []space.Location2D {
	out := make([]space.Location2D, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, space.Location2D{X: x, Y: y})
		}
	}
	return out
}

// GetTile returns a detached copy of the tile at pos, or (nil, false) if
// pos is out of range.
func (g *Grid2D) GetTile(pos space.Location2D) (*tile.Tile, bool) {
	if !g.contains(pos) {
		return nil, false
	}
	return g.tiles[g.index(pos)].Clone(), true
}

// GetNeighbours returns pos's four neighbours in UP/RIGHT/DOWN/LEFT order;
// a neighbour that falls outside the grid has Exists == false.
func (g *Grid2D) GetNeighbours(pos space.Location2D) [space.NeighbourCount2D]Neighbour2D {
	var out [space.NeighbourCount2D]Neighbour2D
	for i := 0; i < space.NeighbourCount2D; i++ {
		d, _ := space.Direction2DFromIndex(i)
		npos, ok := pos.TryApply(space.DeltaFromDirection2D(d))
		exists := ok && g.contains(npos)
		out[i] = Neighbour2D{Direction: d, Position: npos, Exists: exists}
	}
	return out
}

// GetNeighbourTiles is GetNeighbours plus a detached tile copy for every
// neighbour that exists.
func (g *Grid2D) GetNeighbourTiles(pos space.Location2D) [space.NeighbourCount2D]*tile.Tile {
	var out [space.NeighbourCount2D]*tile.Tile
	neighbours := g.GetNeighbours(pos)
	for i, n := range neighbours {
		if n.Exists {
			out[i], _ = g.GetTile(n.Position)
		}
	}
	return out
}

// WithTile2D is the grid's only write path: f receives a detached copy of
// the tile at pos and the grid's rng; if the result differs from the
// tile currently stored, the grid commits it, appends to the update log,
// and refreshes the position's heap entry. ok is false when pos is out of
// range, in which case f is never called.
func WithTile2D[R any](g *Grid2D, pos space.Location2D, f func(*tile.Tile, *rand.Rand) R) (result R, ok bool) {
	if !g.contains(pos) {
		return result, false
	}
	idx := g.index(pos)
	working := g.tiles[idx].Clone()
	result = f(working, g.rng)
	g.commitTile(pos, working)
	return result, true
}

func (g *Grid2D) commitTile(pos space.Location2D, updated *tile.Tile) {
	idx := g.index(pos)
	if tilesEqual(g.tiles[idx], updated) {
		return
	}
	g.tiles[idx] = updated
	g.log = append(g.log, UpdateEntry2D{Position: pos, Snapshot: updated.Clone()})
	g.refreshEntropy(pos)
}

func tilesEqual(a, b *tile.Tile) bool {
	return reflect.DeepEqual(a.PossibleStates(), b.PossibleStates())
}

func (g *Grid2D) refreshEntropy(pos space.Location2D) {
	idx := g.index(pos)
	g.versions[idx]++
	entropy, ok := g.tiles[idx].CalculateEntropy(g.rules.Weights(), g.rng)
	if !ok {
		return
	}
	heap.Push(g.pq, &entropyEntry2D{position: pos, entropy: entropy, version: g.versions[idx]})
}

// GetLowestEntropyPosition returns the position of the uncollapsed tile
// of least entropy, discarding any stale heap entries along the way, or
// (zero, false) if no uncollapsed tile remains.
func (g *Grid2D) GetLowestEntropyPosition() (space.Location2D, bool) {
	for g.pq.Len() > 0 {
		candidate := (*g.pq)[0]
		idx := g.index(candidate.position)
		if candidate.version < g.versions[idx] {
			heap.Pop(g.pq)
			continue
		}
		return candidate.position, true
	}
	return space.Location2D{}, false
}

// Propagate drains queue in FIFO order, re-checking each target against
// its recorded source and enqueuing further entries whenever a target's
// superposition actually shrinks. It returns *ContradictionError the
// first time a target's superposition becomes empty.
func (g *Grid2D) Propagate(queue []PropagateEntry2D) error {
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		sourceTile, ok := g.GetTile(entry.Source)
		if !ok {
			panic("grid: propagation source is out of range")
		}
		direction, ok := space.Direction2DFromDelta(entry.Target.Delta(entry.Source))
		if !ok {
			panic("grid: propagation target is not a unit neighbour of its source")
		}
		sourceStates := sourceTile.PossibleStates()

		var contradiction *ContradictionError
		var changed bool
		_, ok = WithTile2D(g, entry.Target, func(t *tile.Tile, _ *rand.Rand) struct{} {
			old := t.PossibleStates()
			checked := g.rules.Check(old, sourceStates, direction)
			if len(checked) == 0 {
				contradiction = &ContradictionError{Position: entry.Target}
				return struct{}{}
			}
			if !sameStates(old, checked) {
				t.SetPossibleStates(toSet(checked))
				changed = true
			}
			return struct{}{}
		})
		if !ok {
			panic("grid: propagation target is out of range")
		}
		if contradiction != nil {
			return contradiction
		}
		if changed {
			queue = append(queue, g.neighbourEntries(entry.Target)...)
		}
	}
	return nil
}

func (g *Grid2D) neighbourEntries(pos space.Location2D) []PropagateEntry2D {
	neighbours := g.GetNeighbours(pos)
	entries := make([]PropagateEntry2D, 0, len(neighbours))
	for _, n := range neighbours {
		if n.Exists {
			entries = append(entries, PropagateEntry2D{Source: pos, Target: n.Position})
		}
	}
	return entries
}

func sameStates(a, b []tile.TileState) bool { return reflect.DeepEqual(a, b) }

func toSet(states []tile.TileState) map[tile.TileState]struct{} {
	set := make(map[tile.TileState]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

func (g *Grid2D) seedEdges() error {
	edges := g.rules.InitializeEdges()
	if len(edges) == 0 {
		return nil
	}

	dirs := make([]space.Direction2D, 0, len(edges))
	for d := range edges {
		dirs = append(dirs, d)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Index() < dirs[j].Index() })

	var queue []PropagateEntry2D
	for _, d := range dirs {
		state := edges[d]
		for _, pos := range g.boundaryPositions(d) {
			_, ok := WithTile2D(g, pos, func(t *tile.Tile, rng *rand.Rand) error {
				_, err := t.Collapse(tile.Predetermined(state), g.rules.Weights(), rng)
				return err
			})
			if !ok {
				panic("grid: edge preseed position is out of range")
			}
			queue = append(queue, g.neighbourEntries(pos)...)
		}
	}

	return g.Propagate(queue)
}

func (g *Grid2D) boundaryPositions(d space.Direction2D) []space.Location2D {
	var out []space.Location2D
	switch d {
	case space.Up:
		for x := 0; x < g.width; x++ {
			out = append(out, space.Location2D{X: x, Y: 0})
		}
	case space.Down:
		for x := 0; x < g.width; x++ {
			out = append(out, space.Location2D{X: x, Y: g.height - 1})
		}
	case space.Left:
		for y := 0; y < g.height; y++ {
			out = append(out, space.Location2D{X: 0, Y: y})
		}
	case space.Right:
		for y := 0; y < g.height; y++ {
			out = append(out, space.Location2D{X: g.width - 1, Y: y})
		}
	}
	return out
}

// Reset reconstructs the grid in place with a fresh random stream derived
// from the current one, preserving the rule-set and extents. The update
// log is preserved so a caller can still scrub through history across a
// reset.
func (g *Grid2D) Reset() {
	freshSeed := g.rng.Int63()
	fresh, err := New2D(g.width, g.height, g.rules, freshSeed)
	if err != nil {
		panic(fmt.Sprintf("grid: reset with already-validated extents failed: %v", err))
	}
	g.tiles = fresh.tiles
	g.versions = fresh.versions
	g.pq = fresh.pq
	g.rng = fresh.rng
}

// HistoryLen returns the number of recorded update-log entries.
func (g *Grid2D) HistoryLen() int { return len(g.log) }

// GetTilesAtTime replays the first i+1 update-log entries over an initial
// fully-superposed grid and returns the resulting tile-by-position map —
// the history view used by the renderer and any UI scrubber.
func (g *Grid2D) GetTilesAtTime(i int) map[space.Location2D]*tile.Tile {
	alphabet := g.rules.Possible()
	out := make(map[space.Location2D]*tile.Tile, g.width*g.height)
	for _, pos := range g.Positions() {
		out[pos] = tile.NewFull(alphabet)
	}
	limit := i + 1
	if limit > len(g.log) {
		limit = len(g.log)
	}
	for j := 0; j < limit; j++ {
		entry := g.log[j]
		out[entry.Position] = entry.Snapshot.Clone()
	}
	return out
}

// Image returns a detached snapshot of every tile currently in the grid,
// keyed by position.
func (g *Grid2D) Image() map[space.Location2D]*tile.Tile {
	out := make(map[space.Location2D]*tile.Tile, g.width*g.height)
	for _, pos := range g.Positions() {
		out[pos], _ = g.GetTile(pos)
	}
	return out
}
