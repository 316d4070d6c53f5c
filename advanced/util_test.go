package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{Point{0, -1}, Point{1, 0}, Point{0, 1}}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assert.InDelta(t, sign*1, tri.SignedArea(), Tolerance)
			assert.InDelta(t, 1, tri.Area(), Tolerance)
			assert.Equal(t, cwI == 0, tri.IsCCW())

			// Stretch the triangle out
			tri.A.Y *= 2
			tri.B.Y *= 2
			tri.C.Y *= 2
			assert.InDelta(t, sign*2, tri.SignedArea(), Tolerance)
		})
	}
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{1, -1e300}.IsFinite())
	assert.False(t, Point{math.NaN(), 0}.IsFinite())
	assert.False(t, Point{0, math.Inf(1)}.IsFinite())
	assert.False(t, Point{math.Inf(-1), 0}.IsFinite())
}

func TestAllCollinear(t *testing.T) {
	cases := []struct {
		name     string
		points   []Point
		expected bool
	}{
		{"too few", []Point{{0, 0}, {5, 3}}, true},
		{"coincident", []Point{{2, 2}, {2, 2}, {2, 2}}, true},
		{"horizontal", []Point{{0, 0}, {3, 0}, {1, 0}, {-2, 0}}, true},
		{"vertical", []Point{{4, 1}, {4, -6}, {4, 9}}, true},
		{"slanted with repeats", []Point{{1, 1}, {1, 1}, {3, 3}, {-4, -4}}, true},
		{"triangle", []Point{{0, 0}, {1, 0}, {0, 1}}, false},
		{"one point off the line", []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3.5}}, false},
		// The offset is tiny in absolute terms, but large next to the spread
		{"small scale", []Point{{0, 0}, {1e-6, 0}, {0, 1e-6}}, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, AllCollinear(c.points, DefaultEpsilon))
		})
	}
}

func TestIndexTriangle(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	list := IndexTriangleList{{0, 1, 2}, {1, 3, 2}}
	assert.Equal(t, [3]Edge{{1, 3}, {3, 2}, {2, 1}}, list[1].Edges())
	assert.Equal(t, TriangleList{
		{Point{0, 0}, Point{1, 0}, Point{0, 1}},
		{Point{1, 0}, Point{1, 1}, Point{0, 1}},
	}, list.ToTriangleList(points))
	assert.InDelta(t, 1, list.ToTriangleList(points).Area(), Tolerance)
}
