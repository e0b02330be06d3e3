// Package orchestrator wires together pointset partitioning, the
// persistent worker pool, and the reduction tree into the single
// shared-memory entry point spec.md §4.5-§4.6 describes: split the
// input across --threads workers, run each worker's two phases
// concurrently, and return worker 0's slot once every worker's
// reduction-tree participation has finished.
package orchestrator

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/parahull/internal/config"
	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/merge"
	"github.com/ajroetker/parahull/internal/pointset"
	"github.com/ajroetker/parahull/internal/reducer"
	"github.com/ajroetker/parahull/internal/worker"
	"github.com/ajroetker/parahull/internal/workerpool"
)

// Run computes the convex hull of pts using cfg.Threads workers. Each
// worker gets a contiguous slice of pts (pointset.Partition), builds its
// local hull (worker.LocalHull), then joins the binary-tree reduction
// (reducer.Reduce); the surviving hull always ends up in slot 0 because
// worker 0's bit pattern never yields to a partner (spec.md §4.6).
func Run(cfg config.Config, pts pointset.Set) ([]geom.Point, error) {
	n := pts.Len()
	threads := cfg.Threads
	if threads <= 0 {
		threads = 1
	}
	if threads > n {
		threads = n
	}
	if threads <= 0 {
		return nil, nil
	}

	split := cfg.SplitThreshold
	if split <= 0 {
		split = config.DefaultSplitThreshold(n, threads)
	}

	pool := workerpool.New(threads)
	defer pool.Close()

	slots := make([]*reducer.Slot, threads)
	for i := range slots {
		slots[i] = reducer.NewSlot(nil)
	}

	var g errgroup.Group
	for i := range threads {
		id := i
		lo, hi := pointset.Partition(n, threads, id)
		sub := pts.SubRange(lo, hi)
		g.Go(func() error {
			return worker.Run(pool, sub, split, merge.Merge, slots, id)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return slots[0].Hull, nil
}
