// Package quickhull implements the iterative, non-recursive single-
// partition quickhull kernel: given a point set it produces the ordered
// sequence of hull vertices in counter-clockwise order, mutating the
// input set in place while it works.
package quickhull

import (
	"sort"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/pointset"
)

// Build converts pts into its ordered convex hull. pts is permuted
// arbitrarily during execution; callers that need the original order
// should pass a pointset.Set.Clone().
//
// States: INIT -> CULL -> CHOOSE -> INSERT -> CULL -> ... -> DONE. The
// loop terminates once no uncovered points remain; if CHOOSE finds no
// farthest point for any edge while points remain uncovered, they must
// all sit exactly on the boundary and are absorbed by one relaxed CULL
// pass before the loop ends.
func Build(pts pointset.Set) []geom.Point {
	n := pts.Len()
	if n == 0 {
		return nil
	}

	seeds := seedIndices(pts)
	if len(seeds) < 2 {
		return degenerateHull(pts, seeds)
	}

	verts := initialHull(pts, seeds)

	uncovered := remainingPoints(pts, seeds)

	for uncovered.Len() > 0 {
		cullCovered(&uncovered, verts, false)
		if uncovered.Len() == 0 {
			break
		}

		chosen := chooseFarthest(uncovered, verts)
		if allNone(chosen) {
			cullCovered(&uncovered, verts, true)
			break
		}

		verts = insertChosen(verts, uncovered, chosen)
		removeChosen(&uncovered, chosen)
	}

	// Drop the duplicated closing vertex.
	return verts[:len(verts)-1]
}

// degenerateHull handles input whose seeds collapse to a single index
// (every point equal): that one point is the whole hull. Two distinct
// seeds go through the main loop as a degenerate segment hull, which
// keeps any point off the segment and ends as just the two seeds when
// the input is collinear.
func degenerateHull(pts pointset.Set, seeds []int) []geom.Point {
	out := make([]geom.Point, 0, len(seeds))
	for _, idx := range seeds {
		out = append(out, pts.At(idx))
	}
	return out
}

// remainingPoints returns a Set over every point not among the seeds,
// built from a fresh backing array since the seed points keep living in
// the hull buffer and must not alias the uncovered working set.
func remainingPoints(pts pointset.Set, seeds []int) pointset.Set {
	isSeed := make(map[int]bool, len(seeds))
	for _, s := range seeds {
		isSeed[s] = true
	}

	n := pts.Len() - len(seeds)
	x := make([]float32, 0, n)
	y := make([]float32, 0, n)
	for i := 0; i < pts.Len(); i++ {
		if isSeed[i] {
			continue
		}
		x = append(x, pts.X[i])
		y = append(y, pts.Y[i])
	}
	return pointset.New(x, y)
}

func allNone(chosen []int) bool {
	for _, c := range chosen {
		if c != none {
			return false
		}
	}
	return true
}

// removeChosen drops the points selected in chosen from uncovered,
// highest index first so earlier indices stay valid across the
// swap-removes.
func removeChosen(uncovered *pointset.Set, chosen []int) {
	seen := make(map[int]bool, len(chosen))
	idxs := make([]int, 0, len(chosen))
	for _, c := range chosen {
		if c != none && !seen[c] {
			seen[c] = true
			idxs = append(idxs, c)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	for _, idx := range idxs {
		uncovered.SwapRemove(idx)
	}
}
