package advanced

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Z component of the cross product of two vectors.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Circumscribed circle of the triangle, as its center and squared radius.
// This uses the same calculation as the triangulator, so it fails the same way
// for coincident or collinear vertices.
func (t Triangle) Circumcircle() (center Point, rSqr float64, err error) {
	points := []Point{t.A, t.B, t.C}
	c, err := circumcircleOf(points, 0, 1, 2, DefaultEpsilon)
	if err != nil {
		return Point{}, 0, err
	}
	return Point{c.x, c.y}, c.rSqr, nil
}

func (t IndexTriangle) Points(points []Point) Triangle {
	return Triangle{points[t.A], points[t.B], points[t.C]}
}

func (t IndexTriangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (list IndexTriangleList) ToTriangleList(points []Point) TriangleList {
	result := make(TriangleList, len(list))
	for i, t := range list {
		result[i] = t.Points(points)
	}
	return result
}

func (list TriangleList) Area() float64 {
	var area float64
	for _, t := range list {
		area += t.Area()
	}
	return area
}

// Are all of the points on a single line? This includes the case where every
// point is the same. The test is relative to the spread of the points, so it
// works the same regardless of the coordinate scale.
func AllCollinear(points []Point, eps float64) bool {
	if len(points) < 3 {
		return true
	}
	origin := points[0]

	// Find the point furthest from the origin to use as the direction. Using the
	// furthest point rather than the first distinct one keeps near duplicates
	// from producing a meaningless direction.
	var direction Point
	var maxDistSq float64
	for _, p := range points[1:] {
		if d := p.DistanceSquared(origin); d > maxDistSq {
			maxDistSq = d
			direction = p.Sub(origin)
		}
	}
	if maxDistSq == 0 {
		return true
	}

	length := math.Sqrt(maxDistSq)
	for _, p := range points[1:] {
		// Distance of p from the line, relative to the spread of the points
		offset := math.Abs(direction.Cross(p.Sub(origin))) / length
		if offset > eps*length {
			return false
		}
	}
	return true
}
