// Package samples holds the named fixture rule-sets exported for tests
// and for the wfcgen/wfcrun command-line tools: Checkers, Stripes,
// TerrainSimple, Terrain, FlowersSinglepixel and BubbleWrap. Checkers and
// Terrain are ported verbatim from the reference adjacency tables;
// Stripes, TerrainSimple, FlowersSinglepixel and BubbleWrap are
// reconstructed from the concrete end-to-end scenarios that describe
// them, since later fixture revisions were not present in the retrieved
// source tree.
package samples
