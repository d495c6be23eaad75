package extract

import (
	"image"
	"image/color"

	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/space"
	"github.com/tilewave/wfc/tile"
)

// Options configures New.
type Options struct {
	// N is the side length of the square window sampled at every pixel
	// position; extracted tiles are N x N pixels.
	N int
	// Symmetry selects how many of the 8 dihedral-group variants of each
	// window are also registered as distinct tiles: 1 disables symmetry
	// entirely, 8 enables the full rotate+reflect group.
	Symmetry int
	// PeriodicInput samples windows that wrap around the image edges and
	// allows a window to start at every pixel, including the last N-1
	// columns/rows; when false, window origins stop N-1 pixels short of
	// the image's far edge.
	PeriodicInput bool
}

// Extractor owns a RuleSet2D mined from a sample bitmap.
type Extractor struct {
	ruleset *ruleset.RuleSet2D
}

// Rules returns the extractor's mined rule-set.
func (e *Extractor) Rules() *ruleset.RuleSet2D { return e.ruleset }

// New mines a RuleSet2D from img under options.
func New(img image.Image, options Options) (*Extractor, error) {
	if options.N <= 0 {
		return nil, ErrInvalidPatternSize
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}
	if !options.PeriodicInput && (options.N > width || options.N > height) {
		return nil, ErrPatternTooLarge
	}

	buffer := toARGBBuffer(img, bounds, width, height)
	patterns, hashes, weights := extractPatterns(buffer, width, height, options)

	allowed := buildAdjacency(patterns, hashes, options.N)

	states := make([]tile.TileState, len(hashes))
	weightMap := make(map[tile.TileState]int, len(hashes))
	reprMap := make(map[tile.TileState]uint32, len(hashes))
	for i, h := range hashes {
		state := tile.TileState(h)
		states[i] = state
		weightMap[state] = weights[i]
		reprMap[state] = centerRepresentation(patterns[i], options.N)
	}

	return &Extractor{
		ruleset: ruleset.New2D(states, allowed, weightMap, reprMap, nil),
	}, nil
}

func toARGBBuffer(img image.Image, bounds image.Rectangle, width, height int) []uint32 {
	buffer := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buffer[x+y*width] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return buffer
}

// extractPatterns slides an N x N window over every sampling position,
// generates its symmetry variants, and deduplicates by hash, accumulating
// a weight (occurrence count) per distinct pattern.
func extractPatterns(buffer []uint32, width, height int, options Options) (patterns [][]uint32, hashes []uint64, weights []int) {
	n := options.N
	xmax, ymax := width, height
	if !options.PeriodicInput {
		xmax = width - n + 1
		ymax = height - n + 1
	}

	index := make(map[uint64]int)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			base := buildPattern(func(dx, dy int) uint32 {
				sx := (x + dx) % width
				sy := (y + dy) % height
				return buffer[sx+sy*width]
			}, n)
			variants := symmetryVariants(base, n)

			symmetry := options.Symmetry
			if symmetry < 1 {
				symmetry = 1
			}
			if symmetry > 8 {
				symmetry = 8
			}
			for k := 0; k < symmetry; k++ {
				h := hashPattern(variants[k])
				if idx, ok := index[h]; ok {
					weights[idx]++
					continue
				}
				idx := len(patterns)
				index[h] = idx
				patterns = append(patterns, variants[k])
				hashes = append(hashes, h)
				weights = append(weights, 1)
			}
		}
	}
	return patterns, hashes, weights
}

// buildAdjacency derives every (a, direction, b) triple for which a's and
// b's overlapping pixels actually agree when placed adjacent along
// direction — a mechanical, pixel-exact alternative to hand-written
// adjacency rules.
func buildAdjacency(patterns [][]uint32, hashes []uint64, n int) []ruleset.Triple2D {
	var allowed []ruleset.Triple2D
	for i, p1 := range patterns {
		for j, p2 := range patterns {
			for d := 0; d < space.NeighbourCount2D; d++ {
				direction, _ := space.Direction2DFromIndex(d)
				if edgesMatch(p1, p2, direction, n) {
					allowed = append(allowed, ruleset.Triple2D{
						From:      tile.TileState(hashes[i]),
						Direction: direction,
						To:        tile.TileState(hashes[j]),
					})
				}
			}
		}
	}
	return allowed
}
