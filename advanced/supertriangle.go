package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Build a triangle that strictly encloses every point, to seed the sweep. The
// vertices are placed around the bounding box, pushed out by margin times the
// larger side of the box. The span falls back to minSpan when every point is
// the same.
func superTriangle(points []Point, margin, minSpan float64) [3]Point {
	box := bounds(points)
	dmax := span(box)
	if dmax <= 0 {
		dmax = minSpan
	}
	mid := box.Center()

	return [3]Point{
		{mid.X - margin*dmax, mid.Y - dmax},
		{mid.X, mid.Y + margin*dmax},
		{mid.X + margin*dmax, mid.Y - dmax},
	}
}

func bounds(points []Point) r2.Rect {
	box := r2.EmptyRect()
	for _, p := range points {
		box = box.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return box
}

// Larger side of the box.
func span(box r2.Rect) float64 {
	size := box.Size()
	return math.Max(size.X, size.Y)
}

// Factor that brings the span of points smaller than half a unit into
// [0.5, 1). Epsilon is an absolute threshold, so without this a set of
// points closer together than Epsilon looks flat to the sweep, including the
// supertriangle built around them. The factor is a power of two, so scaling
// by it is exact and the triangulation is the same as for the scaled input.
func unitScale(points []Point) float64 {
	dmax := span(bounds(points))
	if dmax <= 0 || dmax >= 0.5 {
		return 1
	}
	_, exp := math.Frexp(dmax)
	return math.Ldexp(1, -exp)
}
