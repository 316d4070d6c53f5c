package advanced

import "github.com/pkg/errors"

func (e Edge) Equals(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Remove every pair of matching edges, keeping the ones that have no partner.
//
// Each triangle removed during a sweep step contributes its three edges, so an
// edge shared by two removed triangles shows up twice. What survives is the
// boundary of the cavity left by the removed triangles.
//
// Edges are matched from the end of the list backward, each against the
// earlier edges that are still unmatched, and an edge pairs with at most one
// other. Matches are only marked during the scan, and the list is compacted
// afterward, so positions never shift under the scan. The survivors keep
// their original relative order. The input slice is reused for the result.
func dedupEdges(edges []Edge) []Edge {
	matched := make([]bool, len(edges))
	for j := len(edges) - 1; j > 0; j-- {
		if matched[j] {
			continue
		}
		for i := j - 1; i >= 0; i-- {
			if !matched[i] && edges[i].Equals(edges[j]) {
				matched[i] = true
				matched[j] = true
				break
			}
		}
	}

	result := edges[:0]
	for i, e := range edges {
		if !matched[i] {
			result = append(result, e)
		}
	}
	return result
}

// Same as dedupEdges, but on the flat index pair encoding (a0, b0, a1, b1,
// ...) used by callers that collect edges as plain ints.
func DedupEdgePairs(pairs []int) ([]int, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.Errorf("edge list has odd length %d", len(pairs))
	}
	edges := make([]Edge, len(pairs)/2)
	for i := range edges {
		edges[i] = Edge{pairs[2*i], pairs[2*i+1]}
	}
	edges = dedupEdges(edges)
	result := make([]int, 0, 2*len(edges))
	for _, e := range edges {
		result = append(result, e.A, e.B)
	}
	return result, nil
}

// Exported form of the cavity boundary extraction. Unlike the version used in
// the sweep, the input slice is left untouched.
func DedupEdges(edges []Edge) []Edge {
	return dedupEdges(append([]Edge(nil), edges...))
}
