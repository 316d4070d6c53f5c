package advanced

type Point struct {
	X float64
	Y float64
}

// Output faces are copies of the input points. Nothing in a Triangle aliases
// the caller's slice or the engine's working state.
type Triangle struct {
	A, B, C Point
}

// The same face as a Triangle, but expressed as indices into the slice that
// was passed to the triangulator. When the input contains duplicate points,
// the index of the first occurrence is used.
type IndexTriangle struct {
	A, B, C int
}

type TriangleList []Triangle

type IndexTriangleList []IndexTriangle

// Undirected edge between two point indices. Only meaningful within a single
// sweep step.
type Edge struct {
	A, B int
}
