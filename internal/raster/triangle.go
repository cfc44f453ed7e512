package raster

import "image"

// edge is an oriented triangle edge evaluated as A*(x-x0) + B*(y-y0).
type edge struct {
	a, b   int64
	x0, y0 int64
	bias   int64
}

func newEdge(from, to vec) edge {
	e := edge{
		a:  -(to.y - from.y),
		b:  to.x - from.x,
		x0: from.x,
		y0: from.y,
	}
	// Pixels exactly on an edge belong to the triangle only if the edge is
	// a top edge or a left edge.
	if !isTopLeft(from, to) {
		e.bias = -1
	}
	return e
}

// isTopLeft reports whether from->to is a top or left edge of a triangle
// with positive area (clockwise on a y-down screen).
func isTopLeft(from, to vec) bool {
	dy := to.y - from.y
	dx := to.x - from.x
	return dy < 0 || (dy == 0 && dx > 0)
}

func (e edge) eval(x, y int64) int64 {
	return e.a*(x-e.x0) + e.b*(y-e.y0)
}

// Triangle calls emit for every pixel of clip whose centre lies inside the
// triangle p0 p1 p2. The weights b0, b1, b2 are the barycentric
// coordinates of the pixel centre relative to p0, p1 and p2 and sum to 1.
//
// Winding does not matter. Zero-area triangles and triangles with
// non-finite vertices produce no pixels.
func Triangle(p0, p1, p2 Point, clip image.Rectangle, emit func(x, y int, b0, b1, b2 float64)) {
	if !p0.finite() || !p1.finite() || !p2.finite() {
		return
	}

	v := [3]vec{snapPoint(p0), snapPoint(p1), snapPoint(p2)}
	order := [3]int{0, 1, 2}

	area := newEdge(v[0], v[1]).eval(v[2].x, v[2].y)
	if area == 0 {
		return
	}
	if area < 0 {
		v[1], v[2] = v[2], v[1]
		order[1], order[2] = order[2], order[1]
		area = -area
	}

	// Edge i is opposite vertex i.
	edges := [3]edge{
		newEdge(v[1], v[2]),
		newEdge(v[2], v[0]),
		newEdge(v[0], v[1]),
	}

	minX, maxX := min(v[0].x, v[1].x, v[2].x), max(v[0].x, v[1].x, v[2].x)
	minY, maxY := min(v[0].y, v[1].y, v[2].y), max(v[0].y, v[1].y, v[2].y)

	bounds := image.Rect(floor6(minX), floor6(minY), ceil6(maxX)+1, ceil6(maxY)+1).Intersect(clip)
	if bounds.Empty() {
		return
	}

	inv := 1 / float64(area)
	var w [3]int64
	var bary [3]float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		cy := center(y)
		cx := center(bounds.Min.X)
		for i := range edges {
			w[i] = edges[i].eval(cx, cy)
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if w[0]+edges[0].bias >= 0 && w[1]+edges[1].bias >= 0 && w[2]+edges[2].bias >= 0 {
				for i := range w {
					bary[order[i]] = float64(w[i]) * inv
				}
				emit(x, y, bary[0], bary[1], bary[2])
			}
			for i := range edges {
				w[i] += edges[i].a << 6
			}
		}
	}
}
