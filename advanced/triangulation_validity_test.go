package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle is counterclockwise, with nonzero area.
// 2. No input point lies strictly inside any triangle's circumcircle.
// 3. The mesh is a triangulated disk: with V vertices and B boundary edges,
//    there are 2V - 2 - B triangles, and no edge borders more than two of them.
func AssertValidTriangulation(t *testing.T, points []Point, triangles IndexTriangleList) {
	t.Helper()
	require.NotEmpty(t, triangles)

	for _, tri := range triangles {
		face := tri.Points(points)
		require.True(t, face.IsCCW(), "triangle is not counterclockwise: %v", face)

		center, rSqr, err := face.Circumcircle()
		require.NoError(t, err)
		for i, p := range points {
			if i == tri.A || i == tri.B || i == tri.C {
				continue
			}
			// Relative tolerance, since the radius can be huge for slivers
			assert.GreaterOrEqual(t, p.DistanceSquared(center), rSqr*(1-1e-9),
				"point %d %v is inside the circumcircle of %v", i, p, face)
		}
	}

	edgeCounts := countEdges(triangles)
	boundary := 0
	vertices := make(map[int]struct{})
	for e, count := range edgeCounts {
		require.LessOrEqual(t, count, 2, "edge %v borders %d triangles", e, count)
		if count == 1 {
			boundary++
		}
		vertices[e.A] = struct{}{}
		vertices[e.B] = struct{}{}
	}
	assert.Equal(t, 2*len(vertices)-2-boundary, len(triangles), "euler relation for a triangulated disk")
}

// Stronger than AssertValidTriangulation: every point is used, and the mesh
// covers the whole convex hull.
func AssertCoversHull(t *testing.T, points []Point, triangles IndexTriangleList) {
	t.Helper()
	hull := convexHull(points)
	require.InDelta(t, polygonArea(hull), triangles.ToTriangleList(points).Area(), 1e-9*polygonArea(hull),
		"sum of triangle areas must equal the area of the convex hull")

	used := make(map[int]struct{})
	for _, tri := range triangles {
		used[tri.A] = struct{}{}
		used[tri.B] = struct{}{}
		used[tri.C] = struct{}{}
	}
	assert.Len(t, used, len(points), "every point must be a vertex")
}

func normalizedEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

func countEdges(triangles IndexTriangleList) map[Edge]int {
	counts := make(map[Edge]int)
	for _, tri := range triangles {
		for _, e := range tri.Edges() {
			counts[normalizedEdge(e.A, e.B)]++
		}
	}
	return counts
}

// Monotone chain hull, counterclockwise, without collinear points.
func convexHull(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	slices.SortFunc(sorted, func(a, b Point) bool {
		if a.X == b.X {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	cross := func(o, a, b Point) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}

	var lower, upper []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func polygonArea(polygon []Point) float64 {
	var sum float64
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		sum += p.Cross(q)
	}
	return math.Abs(sum) / 2
}

// Set DELAUNAY_DEBUG_DRAW to see meshes in the terminal while testing.
func dbgDrawIfRequested(triangles IndexTriangleList, points []Point) {
	if os.Getenv("DELAUNAY_DEBUG_DRAW") == "" {
		return
	}
	triangles.ToTriangleList(points).dbgDraw(20, points)
}
