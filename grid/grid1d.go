package grid

import (
	"container/heap"
	"fmt"
	"math/rand"
	"sort"

	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// ContradictionError1D is ContradictionError's 1-D counterpart.
type ContradictionError1D struct {
	Position space.Location1D
}

func (e *ContradictionError1D) Error() string {
	return fmt.Sprintf("grid: contradiction at %v", e.Position)
}

// PropagateEntry1D is the 1-D counterpart of PropagateEntry2D.
type PropagateEntry1D struct {
	Source, Target space.Location1D
}

// UpdateEntry1D is the 1-D counterpart of UpdateEntry2D.
type UpdateEntry1D struct {
	Position space.Location1D
	Snapshot *tile.Tile
}

// Grid1D is the 1-D lattice counterpart of Grid2D.
type Grid1D struct {
	length int
	rules  *ruleset.RuleSet1D
	rng    *rand.Rand
	tiles  []*tile.Tile
	versions []int
	pq     *entropyPQ1D
	log    []UpdateEntry1D
}

// New1D is the 1-D counterpart of New2D.
func New1D(length int, rules *ruleset.RuleSet1D, seed int64) (*Grid1D, error) {
	if length <= 0 {
		return nil, ErrEmptyExtents
	}
	g := &Grid1D{
		length:   length,
		rules:    rules,
		rng:      rand.New(rand.NewSource(seed)),
		tiles:    make([]*tile.Tile, length),
		versions: make([]int, length),
		pq:       &entropyPQ1D{},
	}
	heap.Init(g.pq)

	alphabet := rules.Possible()
	for _, pos := range g.Positions() {
		g.tiles[pos.X] = tile.NewFull(alphabet)
	}
	for _, pos := range g.Positions() {
		g.refreshEntropy(pos)
	}
	if err := g.seedEdges(); err != nil {
		panic(fmt.Sprintf("grid: edge preseeding produced a contradiction: %v", err))
	}
	return g, nil
}

// Length reports the grid's extent.
func (g *Grid1D) Length() int { return g.length }

// Rules returns the grid's rule-set.
func (g *Grid1D) Rules() *ruleset.RuleSet1D { return g.rules }

func (g *Grid1D) contains(pos space.Location1D) bool { return pos.X >= 0 && pos.X < g.length }

// Positions visits every position once in ascending order.
func (g *Grid1D) Positions() []space.Location1D {
	out := make([]space.Location1D, g.length)
	for i := range out {
		out[i] = space.Location1D{X: i}
	}
	return out
}

// GetTile returns a detached copy of the tile at pos.
func (g *Grid1D) GetTile(pos space.Location1D) (*tile.Tile, bool) {
	if !g.contains(pos) {
		return nil, false
	}
	return g.tiles[pos.X].Clone(), true
}

// Neighbour1D is one of a position's (up to) two neighbours.
type Neighbour1D struct {
	Direction space.Direction1D
	Position  space.Location1D
	Exists    bool
}

// GetNeighbours returns pos's LEFT/RIGHT neighbours.
func (g *Grid1D) GetNeighbours(pos space.Location1D) [space.NeighbourCount1D]Neighbour1D {
	var out [space.NeighbourCount1D]Neighbour1D
	for i := 0; i < space.NeighbourCount1D; i++ {
		d, _ := space.Direction1DFromIndex(i)
		npos, ok := pos.TryApply(space.DeltaFromDirection1D(d))
		exists := ok && g.contains(npos)
		out[i] = Neighbour1D{Direction: d, Position: npos, Exists: exists}
	}
	return out
}

// WithTile1D is the 1-D counterpart of WithTile2D.
func WithTile1D[R any](g *Grid1D, pos space.Location1D, f func(*tile.Tile, *rand.Rand) R) (result R, ok bool) {
	if !g.contains(pos) {
		return result, false
	}
	working := g.tiles[pos.X].Clone()
	result = f(working, g.rng)
	g.commitTile(pos, working)
	return result, true
}

func (g *Grid1D) commitTile(pos space.Location1D, updated *tile.Tile) {
	if tilesEqual(g.tiles[pos.X], updated) {
		return
	}
	g.tiles[pos.X] = updated
	g.log = append(g.log, UpdateEntry1D{Position: pos, Snapshot: updated.Clone()})
	g.refreshEntropy(pos)
}

func (g *Grid1D) refreshEntropy(pos space.Location1D) {
	g.versions[pos.X]++
	entropy, ok := g.tiles[pos.X].CalculateEntropy(g.rules.Weights(), g.rng)
	if !ok {
		return
	}
	heap.Push(g.pq, &entropyEntry1D{position: pos, entropy: entropy, version: g.versions[pos.X]})
}

// GetLowestEntropyPosition is the 1-D counterpart of Grid2D's method.
func (g *Grid1D) GetLowestEntropyPosition() (space.Location1D, bool) {
	for g.pq.Len() > 0 {
		candidate := (*g.pq)[0]
		if candidate.version < g.versions[candidate.position.X] {
			heap.Pop(g.pq)
			continue
		}
		return candidate.position, true
	}
	return space.Location1D{}, false
}

// Propagate is the 1-D counterpart of Grid2D.Propagate.
func (g *Grid1D) Propagate(queue []PropagateEntry1D) error {
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		sourceTile, ok := g.GetTile(entry.Source)
		if !ok {
			panic("grid: propagation source is out of range")
		}
		direction, ok := space.Direction1DFromDelta(entry.Target.Delta(entry.Source))
		if !ok {
			panic("grid: propagation target is not a unit neighbour of its source")
		}
		sourceStates := sourceTile.PossibleStates()

		var contradiction *ContradictionError1D
		var changed bool
		_, ok = WithTile1D(g, entry.Target, func(t *tile.Tile, _ *rand.Rand) struct{} {
			old := t.PossibleStates()
			checked := g.rules.Check(old, sourceStates, direction)
			if len(checked) == 0 {
				contradiction = &ContradictionError1D{Position: entry.Target}
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

func (g *Grid1D) neighbourEntries(pos space.Location1D) []PropagateEntry1D {
	neighbours := g.GetNeighbours(pos)
	entries := make([]PropagateEntry1D, 0, len(neighbours))
	for _, n := range neighbours {
		if n.Exists {
			entries = append(entries, PropagateEntry1D{Source: pos, Target: n.Position})
		}
	}
	return entries
}

func (g *Grid1D) seedEdges() error {
	edges := g.rules.InitializeEdges()
	if len(edges) == 0 {
		return nil
	}
	dirs := make([]space.Direction1D, 0, len(edges))
	for d := range edges {
		dirs = append(dirs, d)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Index() < dirs[j].Index() })

	var queue []PropagateEntry1D
	for _, d := range dirs {
		state := edges[d]
		pos := g.boundaryPosition(d)
		_, ok := WithTile1D(g, pos, func(t *tile.Tile, rng *rand.Rand) error {
			_, err := t.Collapse(tile.Predetermined(state), g.rules.Weights(), rng)
			return err
		})
		if !ok {
			panic("grid: edge preseed position is out of range")
		}
		queue = append(queue, g.neighbourEntries(pos)...)
	}
	return g.Propagate(queue)
}

func (g *Grid1D) boundaryPosition(d space.Direction1D) space.Location1D {
	if d == space.Left1D {
		return space.Location1D{X: 0}
	}
	return space.Location1D{X: g.length - 1}
}

// Reset is the 1-D counterpart of Grid2D.Reset.
func (g *Grid1D) Reset() {
	freshSeed := g.rng.Int63()
	fresh, err := New1D(g.length, g.rules, freshSeed)
	if err != nil {
		panic(fmt.Sprintf("grid: reset with already-validated extents failed: %v", err))
	}
	g.tiles = fresh.tiles
	g.versions = fresh.versions
	g.pq = fresh.pq
	g.rng = fresh.rng
}

// HistoryLen returns the number of recorded update-log entries.
func (g *Grid1D) HistoryLen() int { return len(g.log) }

// GetTilesAtTime is the 1-D counterpart of Grid2D.GetTilesAtTime.
func (g *Grid1D) GetTilesAtTime(i int) map[space.Location1D]*tile.Tile {
	alphabet := g.rules.Possible()
	out := make(map[space.Location1D]*tile.Tile, g.length)
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
