// Package grid is the dense tile container the solver operates on: a
// row-major array of tiles, a lazily invalidated entropy priority queue
// that always peeks the lowest-entropy uncollapsed tile, an append-only
// update log that can be replayed for history/animation, and the
// edge-preseeding logic that runs once at construction time.
//
// What: every mutation to a tile flows through WithTile, a callback-style
// "read a detached copy, let the caller compute a new value, commit if it
// changed" entry point. This is the one place a tile's heap entry and log
// entry are kept in sync with its stored value.
//
// Why: the entropy heap here is a classic "lazy invalidation" priority
// queue rather than a decrease-key heap — every commit pushes a fresh
// (position, entropy, version) entry and bumps a parallel per-position
// version counter; GetLowestEntropyPosition discards any popped entry
// whose version has gone stale instead of trying to find and update it
// in place. This mirrors the version-counter pattern from the entropy
// heap this package is grounded on, translated into Go's
// container/heap.Interface the way the teacher's Dijkstra implementation
// uses it for its own min-heap.
//
// Complexity: WithTile is O(log n) amortised (one heap push per commit);
// GetLowestEntropyPosition is O(log n) amortised per valid pop, plus the
// cost of discarding any stale entries ahead of it.
package grid
