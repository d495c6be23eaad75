// Package backtrack implements contradiction recovery: given a grid and
// the position where a superposition went empty, repair the grid back
// into a propagatable state so the run loop in wfc can keep going.
//
// What: FullReset2D/FullReset1D reset the entire grid to full
// superposition and re-seed its boundary edges (the simplest possible
// recovery). GradualRadial2D/GradualRadial1D instead reset only a
// breadth-first neighbourhood around the contradiction, doubling the
// radius each time the same position contradicts again, falling back to
// a full reset once the radius would cover the whole grid anyway.
//
// Why: a full reset is correct but throws away every constraint the
// solver had already settled; gradual radial recovery keeps far-away,
// already-consistent regions untouched and only re-opens the area that
// actually caused trouble, escalating only when a small repair wasn't
// enough.
//
// Complexity: FullReset is O(n) in the grid's tile count. GradualRadial
// is O(r^2) per invocation for a radius-r neighbourhood on a 2-D grid
// (O(r) on a 1-D grid), plus the cost of re-propagating every grid edge
// once the neighbourhood is reopened.
package backtrack
