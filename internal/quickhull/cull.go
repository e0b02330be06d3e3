package quickhull

import (
	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/geomsimd"
	"github.com/ajroetker/parahull/internal/pointset"
)

// tileWidth is the number of points processed per vectorized lane group.
// The spec fixes this at four regardless of what the host CPU's detected
// dispatch level could otherwise support; geomsimd.MaxLanes is purely
// diagnostic here (see internal/geomsimd).
const tileWidth = 4

// cullCovered removes every point from uncovered that lies on or inside
// every current hull edge. A point survives only if it tests strictly
// outside (side < 0, or side < -tinyPositive in the boundary-absorption
// pass) at least one edge. verts holds the hull with its duplicated closing
// vertex, so edges run i in [0, len(verts)-1).
func cullCovered(uncovered *pointset.Set, verts []geom.Point, absorbBoundary bool) {
	n := uncovered.Len()
	if n == 0 {
		return
	}
	outside := make([]bool, n)
	numEdges := len(verts) - 1

	// Per-tile outside-mask, OR-reduced across every edge pass: a point
	// survives culling if it tests outside at least one edge, so each
	// edge's mask is folded into the running tile mask with geomsimd.Or
	// rather than a per-point accumulator loop.
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

		var tileMask geomsimd.Mask[float64]
		for e := 0; e < numEdges; e++ {
			a, b := verts[e], verts[e+1]
			bxMinusAx := float64(b.X) - float64(a.X)
			byMinusAy := float64(b.Y) - float64(a.Y)

			dx := geomsimd.Sub(pxVec, geomsimd.Set(float64(a.X), width))
			dy := geomsimd.Sub(pyVec, geomsimd.Set(float64(a.Y), width))
			term1 := geomsimd.Mul(dx, geomsimd.Set(byMinusAy, width))
			term2 := geomsimd.Mul(dy, geomsimd.Set(bxMinusAx, width))
			side := geomsimd.Sub(term2, term1)

			var edgeMask geomsimd.Mask[float64]
			if absorbBoundary {
				// Tighten "outside" to strictly-negative-beyond-epsilon so
				// points sitting numerically on the boundary are treated
				// as covered instead of perpetually re-selected.
				edgeMask = geomsimd.LessThanScalar(side, -tinyPositive)
			} else {
				edgeMask = geomsimd.LessThanScalar(side, 0)
			}

			tileMask = geomsimd.Or(tileMask, edgeMask)
		}

		for k := range width {
			if tileMask.GetBit(k) {
				outside[lo+k] = true
			}
		}
	}

	// Swap-remove covered points in descending index order so earlier
	// indices remain valid as later ones are removed.
	for i := n - 1; i >= 0; i-- {
		if !outside[i] {
			uncovered.SwapRemove(i)
		}
	}
}

// tinyPositive lets the boundary-absorption pass treat points within
// tinyPositive of an edge (side in [-tinyPositive, 0)) as "not outside"
// without relying on float equality.
const tinyPositive = 1e-9
