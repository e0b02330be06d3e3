// Package reducer schedules the pairwise merges that combine every
// worker's local hull into a single global hull via a lock-free
// binary-tree reduction. Reduce works on in-memory Slots shared by
// goroutines; it does not use the transport package, and no
// process-to-process reduction is wired up in this module.
package reducer

import (
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/ajroetker/parahull/internal/geom"
)

// done is the sentinel token value meaning "this slot will never be
// waited on again." No real round count can reach it.
const done = int64(math.MaxInt64)

// Token is a per-worker monotonically nondecreasing progress counter.
// Its value encodes 1 + the number of merge rounds the owning worker has
// completed. Exactly one worker writes a given Token (release semantics
// on Publish); any number of partners only ever read it (acquire
// semantics on Load).
type Token struct {
	v atomic.Int64
}

// NewToken returns a Token initialized to 0: "not yet ready." The owning
// worker must Publish(1) once its Phase 1 local hull is ready before any
// partner may observe it.
func NewToken() *Token {
	return &Token{}
}

// Publish writes a new round count. Must only be called by the owning
// worker.
func (t *Token) Publish(round int64) { t.v.Store(round) }

// MarkDone publishes the sentinel value: no partner will ever wait on
// this slot again.
func (t *Token) MarkDone() { t.v.Store(done) }

// Load reads the current round count.
func (t *Token) Load() int64 { return t.v.Load() }

// Slot is one worker's reduction-tree state: its published hull and its
// progress token. Exactly one worker owns the Hull field's writes; a
// partner only reads it after observing the corresponding Token publish,
// which is what makes the writes-happen-before-the-read guarantee hold
// without a lock.
type Slot struct {
	Hull  []geom.Point
	Token *Token
}

// NewSlot wraps an initial local hull in a fresh Slot whose Token is 0
// ("not yet ready"); the owner must Publish(1) before partners read it.
func NewSlot(hull []geom.Point) *Slot {
	return &Slot{Hull: hull, Token: NewToken()}
}

// MergeFunc combines two hulls into their union's hull.
type MergeFunc func(a, b []geom.Point) ([]geom.Point, error)

// spinIterationsBeforeYield bounds how many busy iterations run between
// runtime.Gosched calls, the portable analog of the source's
// architecture-specific pause intrinsic (spec's re-architecture note):
// a correctness-irrelevant micro-optimization to reduce pipeline
// contention while spinning, not a required primitive.
const spinIterationsBeforeYield = 64

// Reduce runs worker id's participation in the binary-tree reduction
// over slots and returns its own merge error, if any. Every worker in
// [0, len(slots)) must call Reduce concurrently (typically one goroutine
// per worker) for the tree to complete; slots[id] must already hold
// worker id's local hull (Worker's Phase 1 output) before Reduce is
// called.
func Reduce(slots []*Slot, id int, merge MergeFunc) error {
	s := 0
	for {
		if id&(1<<uint(s)) != 0 {
			break
		}
		partner := id + (1 << uint(s))
		if partner >= len(slots) {
			break
		}

		spinUntil(slots[partner].Token, int64(s+1))

		merged, err := merge(slots[id].Hull, slots[partner].Hull)
		if err != nil {
			return fmt.Errorf("reducer: worker %d merging with %d at round %d: %w", id, partner, s, err)
		}
		slots[id].Hull = merged
		slots[partner].Hull = nil // partner's pre-merge hull is retired here

		s++
		slots[id].Token.Publish(int64(s + 1))
	}
	slots[id].Token.MarkDone()
	return nil
}

// spinUntil busy-waits until tok reaches at least want, periodically
// yielding the OS thread so other workers' goroutines can make progress
// on the same core.
func spinUntil(tok *Token, want int64) {
	i := 0
	for tok.Load() < want {
		i++
		if i%spinIterationsBeforeYield == 0 {
			runtime.Gosched()
		}
	}
}
