// Package ruleset holds the allowed-adjacency table a Grid checks every
// propagation against: which TileState may sit next to which, in which
// direction, how heavily each state is weighted during random collapse,
// how each state renders as an ARGB tag, and which states preseed the
// grid's boundary.
//
// What: a RuleSet's allowed set is closed under mirroring at construction
// time — callers only ever supply one direction of a pair and the
// constructor inserts both, so Check never has to consult the mirror
// table at propagation time.
//
// Why: mirror closure is a structural invariant (testable property 3),
// not a runtime check, because every propagation in both directions along
// an edge must agree, and re-deriving that agreement on every Check call
// would be wasted work on the algorithm's hot path.
//
// Two concrete types are provided, RuleSet2D and RuleSet1D, rather than
// one generic one — matching package space's non-generic, one-type-per-
// lattice layout.
package ruleset
