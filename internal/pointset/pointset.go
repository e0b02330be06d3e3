// Package pointset provides the struct-of-arrays container quickhull
// mutates in place while it eliminates covered points.
//
// Unlike the source this module is distilled from — which stored Y as a
// pointer into the same allocation as X and tested pointer subtraction to
// decide whether a sub-slice owned its storage — X and Y here are always
// two independently owned slices. A Set never aliases another Set's
// backing arrays; SubRange returns a view that shares them deliberately
// and is documented as such.
package pointset

import "github.com/ajroetker/parahull/internal/geom"

// Set is a mutable, struct-of-arrays collection of points. Ordering has
// no semantic meaning: quickhull is free to permute, swap-remove from,
// and truncate a Set.
type Set struct {
	X, Y []float32
}

// New builds a Set from two equal-length coordinate streams. The stream
// slices are taken by reference; callers that need to keep reusing the
// backing arrays elsewhere should pass copies.
func New(x, y []float32) Set {
	n := min(len(x), len(y))
	return Set{X: x[:n], Y: y[:n]}
}

// Len returns the number of points currently in the set.
func (s Set) Len() int { return len(s.X) }

// At returns the point stored at index i.
func (s Set) At(i int) geom.Point {
	return geom.Point{X: s.X[i], Y: s.Y[i]}
}

// Set overwrites the point at index i.
func (s Set) Set(i int, p geom.Point) {
	s.X[i] = p.X
	s.Y[i] = p.Y
}

// SubRange returns a view over [lo, hi) that shares this Set's backing
// arrays. Mutations through the view are visible to the parent and vice
// versa; the view must never be freed independently of the parent.
func (s Set) SubRange(lo, hi int) Set {
	return Set{X: s.X[lo:hi], Y: s.Y[lo:hi]}
}

// SwapRemove removes the point at index i in O(1) by swapping it with the
// last element and shrinking the set by one. Order is not preserved.
func (s *Set) SwapRemove(i int) {
	last := len(s.X) - 1
	s.X[i] = s.X[last]
	s.Y[i] = s.Y[last]
	s.X = s.X[:last]
	s.Y = s.Y[:last]
}

// Truncate drops every element from index n onward in O(1).
func (s *Set) Truncate(n int) {
	s.X = s.X[:n]
	s.Y = s.Y[:n]
}

// Clone returns a Set with freshly allocated, independently owned
// backing arrays holding a copy of s's current contents.
func (s Set) Clone() Set {
	x := make([]float32, len(s.X))
	y := make([]float32, len(s.Y))
	copy(x, s.X)
	copy(y, s.Y)
	return Set{X: x, Y: y}
}

// Partition splits n points as evenly as possible across w workers:
// worker i < w-1 gets ceil(n/w) points, worker w-1 gets the remainder.
// It returns the [lo, hi) bounds for worker index i.
func Partition(n, w, i int) (lo, hi int) {
	chunk := (n + w - 1) / w
	lo = i * chunk
	if lo > n {
		lo = n
	}
	hi = lo + chunk
	if hi > n {
		hi = n
	}
	return lo, hi
}
