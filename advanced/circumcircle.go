package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// A candidate triangle, by the indices of its vertices in the working point
// array, together with its circumscribed circle. The radius is kept squared
// since every use of it is a comparison against a squared distance.
type circumcircle struct {
	i, j, k int
	x, y    float64
	rSqr    float64
}

func (c *circumcircle) String() string {
	return fmt.Sprintf("(%d, %d, %d) @ (%g, %g) r²=%g", c.i, c.j, c.k, c.x, c.y, c.rSqr)
}

// Does the triangle use any of the supertriangle's vertices? Those are always
// the last three indices of the working point array, so everything at or above
// n is synthetic.
func (c *circumcircle) touchesSuperTriangle(n int) bool {
	return c.i >= n || c.j >= n || c.k >= n
}

func (c *circumcircle) indexTriangle() IndexTriangle {
	return IndexTriangle{c.i, c.j, c.k}
}

// Compute the circle through points i, j and k.
//
// The center is the intersection of the perpendicular bisectors of (i, j) and
// (j, k). Their slopes are -dx/dy, so each bisector is unusable when its
// segment is (nearly) horizontal. If only one of them is, the center's x is
// the midpoint of that horizontal segment, and y comes from the other
// bisector. If both are, the points are coincident or collinear and there is
// no circle.
func circumcircleOf(points []Point, i, j, k int, eps float64) (circumcircle, error) {
	pi, pj, pk := points[i], points[j], points[k]
	if pi == pj || pj == pk || pk == pi {
		return circumcircle{}, errors.Wrapf(ErrDegenerateTriple, "coincident vertices in (%d, %d, %d)", i, j, k)
	}

	absYiYj := math.Abs(pi.Y - pj.Y)
	absYjYk := math.Abs(pj.Y - pk.Y)

	if absYiYj < eps && absYjYk < eps {
		return circumcircle{}, errors.Wrapf(ErrDegenerateTriple, "horizontal vertices in (%d, %d, %d)", i, j, k)
	}

	var xc, yc float64
	switch {
	case absYiYj < eps:
		m2 := -((pk.X - pj.X) / (pk.Y - pj.Y))
		mx2 := (pj.X + pk.X) / 2
		my2 := (pj.Y + pk.Y) / 2
		xc = (pi.X + pj.X) / 2
		yc = m2*(xc-mx2) + my2
	case absYjYk < eps:
		m1 := -((pj.X - pi.X) / (pj.Y - pi.Y))
		mx1 := (pi.X + pj.X) / 2
		my1 := (pi.Y + pj.Y) / 2
		xc = (pk.X + pj.X) / 2
		yc = m1*(xc-mx1) + my1
	default:
		m1 := -((pj.X - pi.X) / (pj.Y - pi.Y))
		m2 := -((pk.X - pj.X) / (pk.Y - pj.Y))
		mx1 := (pi.X + pj.X) / 2
		mx2 := (pj.X + pk.X) / 2
		my1 := (pi.Y + pj.Y) / 2
		my2 := (pj.Y + pk.Y) / 2
		xc = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		// Solve for y on whichever bisector came from the segment with the larger
		// vertical extent, as its slope is the better conditioned of the two.
		if absYiYj > absYjYk {
			yc = m1*(xc-mx1) + my1
		} else {
			yc = m2*(xc-mx2) + my2
		}
	}

	dx := pj.X - xc
	dy := pj.Y - yc
	rSqr := dx*dx + dy*dy

	// Parallel bisectors (collinear points on a slanted line) divide by zero
	// above, and end up here as infinities or NaN.
	if math.IsNaN(rSqr) || math.IsInf(rSqr, 0) || math.IsNaN(xc) || math.IsNaN(yc) {
		return circumcircle{}, errors.Wrapf(ErrDegenerateTriple, "collinear vertices in (%d, %d, %d)", i, j, k)
	}

	return circumcircle{i: i, j: j, k: k, x: xc, y: yc, rSqr: rSqr}, nil
}
