package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// Render draws g as an SVG document totalWidth x totalHeight pixels, one
// rect per grid cell. When time is non-nil, the grid is rendered as it
// stood after the first *time+1 update-log entries (log entries 0 through
// *time) instead of its current state.
func Render(g *grid.Grid2D, totalWidth, totalHeight int, time *int) string {
	width, height := g.Width(), g.Height()
	var tilesAtT map[space.Location2D]*tile.Tile
	if time != nil {
		tilesAtT = g.GetTilesAtTime(*time)
	}

	cellW := float64(totalWidth) / float64(width)
	cellH := float64(totalHeight) / float64(height)

	var out strings.Builder
	fmt.Fprintf(&out, `<svg width="%d" height="%d">`, totalWidth, totalHeight)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := space.Location2D{X: x, Y: y}

			var tl *tile.Tile
			if tilesAtT != nil {
				tl = tilesAtT[pos]
			} else {
				tl, _ = g.GetTile(pos)
			}
			if tl == nil {
				continue
			}

			fill, ok := cellFill(g, tl)
			if !ok {
				continue
			}

			cssX := float64(x) * cellW
			cssY := float64(y) * cellH
			fmt.Fprintf(&out, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" />`,
				cssX, cssY, cellW, cellH, fill)
		}
	}

	out.WriteString("</svg>")
	return out.String()
}

// cellFill averages the Oklab colors of every represented state in tl's
// superposition and returns an "rgba(...)" CSS fill string.
func cellFill(g *grid.Grid2D, tl *tile.Tile) (string, bool) {
	states := tl.PossibleStates()
	if len(states) == 0 {
		return "", false
	}

	var labSum oklab
	var alphaSum float64
	var count float64
	for _, s := range states {
		argb, ok := g.Rules().RepresentTile(s)
		if !ok {
			continue
		}
		a := float64((argb>>24)&0xFF) / 255.0
		r := float64((argb>>16)&0xFF) / 255.0
		gr := float64((argb>>8)&0xFF) / 255.0
		bl := float64(argb&0xFF) / 255.0

		lab := srgbToOklab(r, gr, bl)
		labSum.l += lab.l
		labSum.a += lab.a
		labSum.b += lab.b
		alphaSum += a
		count++
	}
	if count == 0 {
		return "", false
	}

	avg := oklab{l: labSum.l / count, a: labSum.a / count, b: labSum.b / count}
	r, g2, b := oklabToSRGB(avg)
	avgAlpha := alphaSum / count

	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)",
		int(math.Round(r*255)), int(math.Round(g2*255)), int(math.Round(b*255)), avgAlpha), true
}
