package quickhull

import (
	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/geomsimd"
	"github.com/ajroetker/parahull/internal/pointset"
)

const none = -1

// chooseFarthest finds, for each hull edge, the uncovered point that
// minimizes side(P, A, B) — the most-outside point, i.e. the farthest
// from the edge. Ties are broken by lowest index (first-seen), matching
// geomsimd.ReduceArgMin's convention. Returns none for an edge with no
// outside point.
func chooseFarthest(uncovered pointset.Set, verts []geom.Point) []int {
	numEdges := len(verts) - 1
	chosen := make([]int, numEdges)
	n := uncovered.Len()

	for e := 0; e < numEdges; e++ {
		a, b := verts[e], verts[e+1]
		bxMinusAx := float64(b.X) - float64(a.X)
		byMinusAy := float64(b.Y) - float64(a.Y)

		bestIdx := none
		bestSide := 0.0

		for lo := 0; lo < n; lo += tileWidth {
			hi := min(lo+tileWidth, n)
			width := hi - lo

			px := make([]float64, width)
			py := make([]float64, width)
			for k := range width {
				px[k] = float64(uncovered.X[lo+k])
				py[k] = float64(uncovered.Y[lo+k])
			}

			pxVec := geomsimd.Load(px, width)
			pyVec := geomsimd.Load(py, width)
			dx := geomsimd.Sub(pxVec, geomsimd.Set(float64(a.X), width))
			dy := geomsimd.Sub(pyVec, geomsimd.Set(float64(a.Y), width))
			term1 := geomsimd.Mul(dx, geomsimd.Set(byMinusAy, width))
			term2 := geomsimd.Mul(dy, geomsimd.Set(bxMinusAx, width))
			side := geomsimd.Sub(term2, term1)

			idx, val := geomsimd.ReduceArgMin(side)
			if idx < 0 {
				continue
			}
			if val < 0 && (bestIdx == none || val < bestSide) {
				bestSide = val
				bestIdx = lo + idx
			}
		}

		chosen[e] = bestIdx
	}

	return chosen
}
