package raster

import (
	"image"
	"math"
)

// Line calls emit for each pixel of a one-pixel-wide line from p0 towards
// p1 that falls inside clip. The end point itself is not drawn, so joined
// segments do not overlap. t runs from 0 at p0 towards 1 at p1.
//
// The line is stepped along its major axis, one pixel per step.
func Line(p0, p1 Point, clip image.Rectangle, emit func(x, y int, t float64)) {
	if !p0.finite() || !p1.finite() || clip.Empty() {
		return
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := math.Round(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps < 1 {
		return
	}
	if steps > 2*maxCoord {
		steps = 2 * maxCoord
	}
	n := int(steps)

	r, ok := clipRange(p0, dx, dy, clip)
	if !ok {
		return
	}
	lo := max(0, int(math.Floor(r[0]*steps))-1)
	hi := min(n, int(math.Ceil(r[1]*steps))+1)

	sx := dx / steps
	sy := dy / steps
	for i := lo; i < hi; i++ {
		fi := float64(i)
		x := int(math.Floor(p0.X + sx*fi))
		y := int(math.Floor(p0.Y + sy*fi))
		if !(image.Point{X: x, Y: y}).In(clip) {
			continue
		}
		emit(x, y, fi/steps)
	}
}

// clipRange returns the parameter interval of p0 + t*(dx, dy), t in [0,1],
// that lies within clip grown by one pixel (Liang-Barsky).
func clipRange(p0 Point, dx, dy float64, clip image.Rectangle) ([2]float64, bool) {
	t0, t1 := 0.0, 1.0
	bounds := [4]struct{ p, q float64 }{
		{-dx, p0.X - float64(clip.Min.X-1)},
		{dx, float64(clip.Max.X+1) - p0.X},
		{-dy, p0.Y - float64(clip.Min.Y-1)},
		{dy, float64(clip.Max.Y+1) - p0.Y},
	}
	for _, b := range bounds {
		if b.p == 0 {
			if b.q < 0 {
				return [2]float64{}, false
			}
			continue
		}
		r := b.q / b.p
		if b.p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
	}
	if t0 > t1 {
		return [2]float64{}, false
	}
	return [2]float64{t0, t1}, true
}
