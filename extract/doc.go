// Package extract mines a RuleSet2D out of a sample bitmap: every n x n
// window of the image (plus its dihedral-group symmetry variants) becomes
// a TileState, two windows are adjacent in a direction exactly when their
// overlapping pixels agree, and a window's frequency in the source image
// becomes its collapse weight.
//
// What: Options configures window size, how much of the 8-element
// symmetry group to generate per window (1 = none, up to 8 = full
// dihedral group), and whether sampling wraps at the image edges. New
// builds the RuleSet2D; Extractor.Rules exposes it.
//
// Why: this is the "overlapping model" variant of Wave Function
// Collapse — rather than hand-writing adjacency rules, they're derived
// mechanically from an example image, so the same engine in wfc/grid can
// regenerate stylistically similar output at other sizes.
//
// Complexity: O(width*height*symmetry) to extract and hash every window,
// plus O(k^2 * NeighbourCount2D) to derive adjacency over k distinct
// patterns — quadratic in the number of distinct patterns found, which is
// what the reference implementation does too.
package extract
