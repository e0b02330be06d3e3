// Package worker runs the per-worker pipeline: Phase 1 builds a local
// hull over the worker's input slice (splitting into sub-partitions and
// merging them when the slice is large), Phase 2 hands that hull to the
// reduction tree to be combined with every other worker's.
package worker

import (
	"fmt"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/pointset"
	"github.com/ajroetker/parahull/internal/quickhull"
	"github.com/ajroetker/parahull/internal/reducer"
	"github.com/ajroetker/parahull/internal/workerpool"
)

// MergeFunc combines two hulls into their union's hull.
type MergeFunc func(a, b []geom.Point) ([]geom.Point, error)

// LocalHull implements Phase 1 (spec.md §4.5): if the slice holds more
// than splitThreshold points it is divided into ceil(n/splitThreshold)
// sub-partitions, quickhull runs on each (fanned out across pool), and
// the resulting hulls are combined by a sequential binary merge tree —
// a small scalar loop with no parallelism to extract, per spec.md §9.
// Otherwise quickhull runs directly on the whole slice.
func LocalHull(pool *workerpool.Pool, pts pointset.Set, splitThreshold int, merge MergeFunc) ([]geom.Point, error) {
	n := pts.Len()
	if splitThreshold <= 0 || n <= splitThreshold {
		return quickhull.Build(pts), nil
	}

	numParts := (n + splitThreshold - 1) / splitThreshold
	hulls := make([][]geom.Point, numParts)

	pool.ParallelFor(numParts, func(start, end int) {
		for i := start; i < end; i++ {
			lo, hi := pointset.Partition(n, numParts, i)
			hulls[i] = quickhull.Build(pts.SubRange(lo, hi))
		}
	})

	return mergeTree(hulls, merge)
}

// mergeTree combines hulls pairwise in a sequential binary tree: round 0
// merges (0,1), (2,3), ...; round 1 merges those survivors two at a
// time; and so on until one hull remains. It's the per-worker analog of
// the lock-free cross-worker reduction tree (internal/reducer), run
// sequentially since there's no parallelism worth extracting from a
// handful of sub-partition merges (spec.md §9).
func mergeTree(hulls [][]geom.Point, merge MergeFunc) ([]geom.Point, error) {
	for len(hulls) > 1 {
		next := make([][]geom.Point, 0, (len(hulls)+1)/2)
		for i := 0; i < len(hulls); i += 2 {
			if i+1 == len(hulls) {
				next = append(next, hulls[i])
				continue
			}
			merged, err := merge(hulls[i], hulls[i+1])
			if err != nil {
				return nil, fmt.Errorf("worker: merging sub-partitions %d and %d: %w", i, i+1, err)
			}
			next = append(next, merged)
		}
		hulls = next
	}
	return hulls[0], nil
}

// Run executes both phases for worker id out of the total worker count
// implied by len(slots), writing its Phase 1 hull into slots[id] before
// joining the Phase 2 reduction tree.
func Run(pool *workerpool.Pool, pts pointset.Set, splitThreshold int, merge MergeFunc, slots []*reducer.Slot, id int) error {
	hull, err := LocalHull(pool, pts, splitThreshold, merge)
	if err != nil {
		return fmt.Errorf("worker %d: phase 1: %w", id, err)
	}
	slots[id].Hull = hull
	slots[id].Token.Publish(1)

	if err := reducer.Reduce(slots, id, reducer.MergeFunc(merge)); err != nil {
		return fmt.Errorf("worker %d: phase 2: %w", id, err)
	}
	return nil
}
