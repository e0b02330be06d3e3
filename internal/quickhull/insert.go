package quickhull

import (
	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/pointset"
)

// insertChosen inserts one new vertex per edge that has a chosen farthest
// point, in a single pass: it precomputes, for every edge, the number of
// insertions that precede it (an exclusive prefix sum over the per-edge
// insertion counts — the same accumulate-and-carry shape as the teacher
// library's BasePrefixSum), shifts the tail of the hull right by the
// total once, then writes every new vertex directly at its destination.
// This makes m simultaneous insertions cost O(len(verts) + m) rather than
// O(len(verts) * m).
func insertChosen(verts []geom.Point, uncovered pointset.Set, chosen []int) []geom.Point {
	numEdges := len(verts) - 1

	offset := make([]int, numEdges+1)
	carry := 0
	for e := 0; e < numEdges; e++ {
		offset[e] = carry
		if chosen[e] != none {
			carry++
		}
	}
	offset[numEdges] = carry

	total := carry
	if total == 0 {
		return verts
	}

	out := make([]geom.Point, len(verts)+total)

	// Old vertex i (including the duplicated closing vertex at index
	// numEdges) shifts to i + offset[i].
	for i := 0; i <= numEdges; i++ {
		out[i+offset[i]] = verts[i]
	}

	// The new vertex chosen for edge e, when present, sits immediately
	// after old vertex e's shifted position.
	for e := 0; e < numEdges; e++ {
		if chosen[e] == none {
			continue
		}
		dst := e + offset[e] + 1
		out[dst] = uncovered.At(chosen[e])
	}

	return out
}
