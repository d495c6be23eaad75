// Package wsview serves a live, browser-viewable feed of an
// in-progress Grid2D over a websocket: one JSON frame per
// wfc.Engine2D.Tick() call, each frame a flat list of per-cell
// superposition snapshots.
//
// What: View wraps an *grid.Grid2D and *wfc.Engine2D and, through Serve,
// serves an index page plus a "/ws" endpoint. Each websocket connection
// ticks the engine in a loop and publishes a frame after each tick until
// the grid finishes, a contradiction is not recovered, the iteration
// budget runs out, or the connection's context is cancelled.
//
// Why: the original engine's live view is a WASM module driving DOM
// updates directly in the browser (spec.md §6, explicitly out of core
// scope). A Go binary has no DOM to drive, so the idiomatic stand-in is
// a small HTTP+websocket server pushing state to a page that draws it -
// the same shape as niceyeti-tabular/server's realtime SVG push, traded
// for this engine's grid/tile vocabulary.
//
// Complexity: O(width*height*average tile superposition size) per
// published frame, the same cost as one render.Render call.
package wsview
