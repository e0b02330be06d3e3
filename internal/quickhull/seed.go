package quickhull

import (
	"github.com/samber/lo"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/pointset"
)

// seedIndices finds the four extreme points that seed the initial hull:
// yMin (lowest, rightmost on tie), xMax (rightmost, topmost on tie),
// yMax (topmost, leftmost on tie), xMin (leftmost, bottommost on tie).
// Returned in that order with duplicates removed, first occurrence kept,
// via lo.Uniq so a degenerate set collapses to 1-3 seeds without
// disturbing the order the remaining ones were found in.
func seedIndices(pts pointset.Set) []int {
	n := pts.Len()
	if n == 0 {
		return nil
	}

	yMin, xMax, yMax, xMin := 0, 0, 0, 0
	for i := 1; i < n; i++ {
		p := pts.At(i)

		if lower := pts.At(yMin); p.Y < lower.Y || (p.Y == lower.Y && p.X > lower.X) {
			yMin = i
		}
		if right := pts.At(xMax); p.X > right.X || (p.X == right.X && p.Y > right.Y) {
			xMax = i
		}
		if upper := pts.At(yMax); p.Y > upper.Y || (p.Y == upper.Y && p.X < upper.X) {
			yMax = i
		}
		if left := pts.At(xMin); p.X < left.X || (p.X == left.X && p.Y < left.Y) {
			xMin = i
		}
	}

	return lo.Uniq([]int{yMin, xMax, yMax, xMin})
}

// initialHull builds the starting hull from the seed indices, stored with
// a duplicated closing vertex (verts[len(verts)-1] == verts[0]) so the
// main loop can iterate edges as (verts[i], verts[i+1]) without any
// modulo/wrap-around arithmetic.
func initialHull(pts pointset.Set, seeds []int) []geom.Point {
	verts := make([]geom.Point, 0, len(seeds)+1)
	for _, idx := range seeds {
		verts = append(verts, pts.At(idx))
	}
	verts = append(verts, verts[0])
	return verts
}
