// Package tile implements the per-cell superposition at the heart of the
// solver: a set of still-possible TileState values, a derived collapsed
// flag, and a lazily cached, weighted Shannon entropy used to pick which
// cell to observe next.
//
// What: Tile owns a subset of a finite alphabet of TileState (a uint64)
// and exposes it only through set_possible_states-style replacement and
// weighted/predetermined collapse — there is no way to add a state back
// once it has been removed without replacing the whole set.
//
// Why: entropy must be cheap to read repeatedly (the grid's priority
// queue peeks at it on every observation) but expensive to compute
// (it is a weighted log-sum over the superposition), so it is computed
// once per superposition and invalidated exactly when the superposition
// changes — mirroring the "entropy cache" described for Tile.
//
// Complexity: possible-state membership and collapse are O(|superposition|);
// entropy computation is O(|superposition|) and its result is cached for
// the remaining lifetime of that superposition.
package tile
