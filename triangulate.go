// Delaunay triangulation of 2D point sets for Go.
//
// This package converts a set of points into a triangle mesh covering their
// convex hull, such that no point lies strictly inside the circumscribed
// circle of any triangle. Triangles are built from the original points only.
//
// The advanced package exposes the engine itself, with options for the
// numeric tolerances and tracing.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Triangle = advanced.Triangle
type IndexTriangle = advanced.IndexTriangle
type Options = advanced.Options

var (
	ErrDegenerateTriple = advanced.ErrDegenerateTriple
	ErrInvalidPoint     = advanced.ErrInvalidPoint
	ErrInvalidOptions   = advanced.ErrInvalidOptions
)

// Triangulate a set of points, with the default options.
//
// Fewer than three points, and sets where every point is on one line, produce
// no triangles and no error. Repeated points are used once. Three points that
// cannot form a triangle partway through the sweep abort the whole
// triangulation with ErrDegenerateTriple.
//
// Triangles are counterclockwise. With the default options a thin triangle on
// the convex hull is occasionally missing, so the mesh may not cover the whole
// hull; pass a larger SuperTriangleMargin to TriangulateWithOptions to make
// that less likely. See advanced.Triangulator.TriangulateIndices.
func Triangulate(points []Point) ([]Triangle, error) {
	return TriangulateWithOptions(points, advanced.DefaultOptions())
}

// Same as Triangulate, but returns each triangle as three indices into points.
func TriangulateIndices(points []Point) ([]IndexTriangle, error) {
	t, err := advanced.New(advanced.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return t.TriangulateIndices(points)
}

func TriangulateWithOptions(points []Point, opts Options) ([]Triangle, error) {
	t, err := advanced.New(opts)
	if err != nil {
		return nil, err
	}
	return t.Triangulate(points)
}
