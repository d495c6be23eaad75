// Package render draws a Grid2D as an SVG document: one rect per cell,
// filled with the Oklab-space average of every state still possible in
// that cell's superposition, weighted equally, then converted back to
// sRGB for the fill attribute.
//
// What: Render(g, totalWidth, totalHeight, time) returns the SVG markup
// string. time, when non-nil, renders the grid as it stood after the
// first *time+1 update-log entries (Grid2D.GetTilesAtTime) instead of its
// current state — the same scrubbing support the original's `time` parameter
// gives a browser-hosted viewer.
//
// Why: averaging in Oklab rather than sRGB avoids the muddy greys plain
// linear RGB averaging produces between, say, a red and a green tile —
// Oklab is built so perceptual lightness and hue blend close to linearly.
//
// Complexity: O(width*height*average tile superposition size).
package render
