// Package raster scan-converts triangles and lines into pixel callbacks.
//
// Vertices are snapped to 26.6 fixed point (golang.org/x/image/math/fixed)
// and coverage is decided with exact integer edge functions sampled at pixel
// centres. Triangles follow the top-left fill rule, so two triangles sharing
// an edge never both cover a pixel on it.
package raster

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// maxCoord bounds vertex coordinates so that edge products fit in int64.
const maxCoord = 1 << 24

// Point is a vertex position in device pixels.
type Point struct {
	X, Y float64
}

// finite reports whether both coordinates are neither NaN nor infinite.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// vec is a snapped vertex.
type vec struct {
	x, y int64
}

// snap converts a float coordinate to 26.6, clamped to maxCoord pixels.
func snap(f float64) fixed.Int26_6 {
	f = math.Max(-maxCoord, math.Min(maxCoord, f))
	return fixed.Int26_6(math.Round(f * 64))
}

func snapPoint(p Point) vec {
	return vec{x: int64(snap(p.X)), y: int64(snap(p.Y))}
}

// center returns the 26.6 coordinate of the centre of pixel i.
func center(i int) int64 {
	return int64(i)<<6 + 32
}

// floor6 returns the pixel index containing the 26.6 value v.
func floor6(v int64) int {
	return int(v >> 6)
}

// ceil6 returns the smallest pixel index whose start is at or after v.
func ceil6(v int64) int {
	return int((v + 63) >> 6)
}
