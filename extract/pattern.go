package extract

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/tilewave/wfc/space"
)

// buildPattern samples an n x n window of f into row-major order, matching
// the reference `pattern` helper.
func buildPattern(f func(x, y int) uint32, n int) []uint32 {
	out := make([]uint32, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = f(x, y)
		}
	}
	return out
}

// rotate90 rotates p 90 degrees clockwise.
func rotate90(p []uint32, n int) []uint32 {
	return buildPattern(func(x, y int) uint32 { return p[(n-1-y)+x*n] }, n)
}

// reflectHorizontal mirrors p left-to-right.
func reflectHorizontal(p []uint32, n int) []uint32 {
	return buildPattern(func(x, y int) uint32 { return p[(n-1-x)+y*n] }, n)
}

// symmetryVariants returns the 8-element dihedral-group orbit of p, in the
// same generation order as the reference implementation: identity,
// reflect, rotate, reflect-of-rotate, rotate-of-rotate, and so on.
func symmetryVariants(p []uint32, n int) [8][]uint32 {
	var v [8][]uint32
	v[0] = p
	v[1] = reflectHorizontal(v[0], n)
	v[2] = rotate90(v[0], n)
	v[3] = reflectHorizontal(v[2], n)
	v[4] = rotate90(v[2], n)
	v[5] = reflectHorizontal(v[4], n)
	v[6] = rotate90(v[4], n)
	v[7] = reflectHorizontal(v[6], n)
	return v
}

// edgesMatch reports whether p1 and p2's overlapping pixels agree when p2
// is placed one unit away from p1 in direction d.
func edgesMatch(p1, p2 []uint32, d space.Direction2D, n int) bool {
	delta := space.DeltaFromDirection2D(d)
	dx, dy := delta.X, delta.Y

	xStart, xEnd := 0, n
	if dx > 0 {
		xStart = dx
	} else {
		xEnd = n + dx
	}
	yStart, yEnd := 0, n
	if dy > 0 {
		yStart = dy
	} else {
		yEnd = n + dy
	}

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			i1 := x + y*n
			i2 := (x - dx) + (y-dy)*n
			if p1[i1] != p2[i2] {
				return false
			}
		}
	}
	return true
}

// hashPattern returns a deterministic 64-bit digest of p, used both to
// deduplicate extracted windows and as the resulting TileState's identity.
func hashPattern(p []uint32) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, v := range p {
		binary.LittleEndian.PutUint32(buf, v)
		h.Write(buf)
	}
	return h.Sum64()
}

// centerRepresentation returns the ARGB value of p's center pixel — for
// even n this is the lower-right of the four central pixels, matching the
// reference `img_to_repr` convention.
func centerRepresentation(p []uint32, n int) uint32 {
	c := n / 2
	return p[c+c*n]
}
