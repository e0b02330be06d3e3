// Package merge combines two previously computed convex hulls into their
// combined convex hull.
//
// The combined hull of two convex polygons is, by construction, exactly
// the convex hull of the union of their vertices — every point strictly
// inside either input hull is necessarily strictly inside the union's
// hull too, so only the vertices themselves can ever contribute. Unlike
// a generic convex-hull routine, Merge never re-sorts either input from
// scratch: h1 and h2 each already arrive hull-ordered (the vertex
// sequence an already-convex hull maintains), which means each one is
// already split, in traversal order, into an ascending-x run (leftmost
// vertex to rightmost) and a descending-x run (rightmost back to
// leftmost) — exactly Andrew's monotone-chain's lower/upper
// decomposition, for free. A two-cursor walk reconstructs each hull's
// own points in full ascending order by merging its two runs (one
// cursor per run), then a second two-cursor walk merges the two hulls'
// now fully-ordered point lists against each other. Every merge step
// always advances whichever cursor holds the smaller next point (ties
// broken by y), with the cursors trading the "main" role back and
// forth as the combined order crosses from one source to the other —
// the two-cursor alternating walk of spec.md §4.4 — after which the
// standard monotone-chain scan (drop any point that doesn't make a
// strictly-left turn with the last two kept points) finalizes the
// lower and upper chains of the combined hull.
package merge

import (
	"fmt"

	"github.com/ajroetker/parahull/internal/geom"
)

// InvariantError marks a violation of a hull invariant that must abort
// the program rather than be silently tolerated (spec.md §7).
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "merge: invariant violated: " + e.Msg }

// Merge returns the convex hull of h1 ∪ h2 as a freshly allocated,
// counter-clockwise ordered vertex slice with the canonical vertex
// (smallest y, tie-break largest x) at index 0. h1 and h2 are not
// modified.
func Merge(h1, h2 []geom.Point) ([]geom.Point, error) {
	if len(h1) == 0 {
		return finish(append([]geom.Point{}, h2...))
	}
	if len(h2) == 0 {
		return finish(append([]geom.Point{}, h1...))
	}

	asc1, err := ascendingOf(h1)
	if err != nil {
		return nil, err
	}
	asc2, err := ascendingOf(h2)
	if err != nil {
		return nil, err
	}

	global, err := mergeCursors(asc1, asc2, true)
	if err != nil {
		return nil, err
	}
	global = dedupAdjacent(global)

	lower := scan(global)
	if len(lower) == 1 {
		// Only one distinct point in the whole of h1 ∪ h2.
		return finish(lower)
	}

	reversed := make([]geom.Point, len(global))
	for i, p := range global {
		reversed[len(global)-1-i] = p
	}
	upper := scan(reversed)

	// Both chains repeat their shared endpoints (the combined leftmost
	// and rightmost vertices); drop the duplicates before splicing.
	hull := append(lower[:len(lower)-1:len(lower)-1], upper[:len(upper)-1]...)
	return finish(hull)
}

func finish(hull []geom.Point) ([]geom.Point, error) {
	hull = rotateToCanonical(hull)
	if err := checkConvex(hull); err != nil {
		return nil, err
	}
	return hull, nil
}

// ascendingOf reconstructs h's own vertices in ascending (x, then y)
// order by merging its two already-sorted runs (lower ascending, upper
// descending) rather than sorting h from scratch.
func ascendingOf(h []geom.Point) ([]geom.Point, error) {
	lower, upper := splitChains(h)

	rev := make([]geom.Point, len(upper))
	for i, p := range upper {
		rev[len(upper)-1-i] = p
	}

	merged, err := mergeCursors(lower, rev, true)
	if err != nil {
		return nil, err
	}
	return dedupAdjacent(merged), nil
}

// splitChains decomposes a hull-ordered vertex slice into its two
// x-monotone runs: lower, ascending from h's leftmost vertex to its
// rightmost, and upper, descending from rightmost back to leftmost.
// Both runs are circular sub-slices of h — no sorting, since a convex
// hull's own vertex order is already x-monotone on each side of its
// horizontal extremes.
func splitChains(h []geom.Point) (lower, upper []geom.Point) {
	n := len(h)
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if h[i].X < h[l].X || (h[i].X == h[l].X && h[i].Y < h[l].Y) {
			l = i
		}
		if h[i].X > h[r].X || (h[i].X == h[r].X && h[i].Y > h[r].Y) {
			r = i
		}
	}
	return circularRun(h, l, r), circularRun(h, r, l)
}

// circularRun returns h[from], h[from+1 mod n], ..., h[to], wrapping
// around the slice as needed.
func circularRun(h []geom.Point, from, to int) []geom.Point {
	n := len(h)
	out := make([]geom.Point, 0, n)
	for i := from; ; i = (i + 1) % n {
		out = append(out, h[i])
		if i == to {
			return out
		}
	}
}

// cursor walks one already-sorted run of vertices, one at a time.
type cursor struct {
	run []geom.Point
	i   int
}

func (c *cursor) done() bool { return c.i >= len(c.run) }

func (c *cursor) peek() geom.Point { return c.run[c.i] }

// advance returns the cursor's current vertex and steps it forward.
// Asking an already-exhausted cursor to advance means the walk has
// overrun its source run — an implementation bug, not a data problem
// (spec.md §4.4, §7's invariant-violation taxonomy: "merge cursor out
// of range") — so it aborts rather than reading past the run.
func (c *cursor) advance() (geom.Point, error) {
	if c.done() {
		return geom.Point{}, &InvariantError{Msg: "merge cursor out of range"}
	}
	p := c.run[c.i]
	c.i++
	return p, nil
}

// mergeCursors walks a cursor over each of a and b — both already
// sorted in the same direction (ascending if ascending is true,
// descending otherwise) — always taking whichever cursor's next point
// sorts first. The two cursors trade the "main" role back and forth as
// the merged order crosses from one source to the other; this is the
// two-cursor alternating walk, specialized to inputs that are each
// already individually sorted so the only work left is the merge step.
func mergeCursors(a, b []geom.Point, ascending bool) ([]geom.Point, error) {
	main := &cursor{run: a}
	alt := &cursor{run: b}

	before := func(p, q geom.Point) bool {
		if ascending {
			if p.X != q.X {
				return p.X < q.X
			}
			return p.Y < q.Y
		}
		if p.X != q.X {
			return p.X > q.X
		}
		return p.Y > q.Y
	}

	out := make([]geom.Point, 0, len(a)+len(b))
	for !main.done() || !alt.done() {
		var next geom.Point
		var err error
		switch {
		case main.done():
			next, err = alt.advance()
		case alt.done():
			next, err = main.advance()
		case before(alt.peek(), main.peek()):
			// alt's next vertex sorts first: the walk crosses over and
			// the two cursors swap roles for the following step.
			next, err = alt.advance()
			main, alt = alt, main
		default:
			next, err = main.advance()
		}
		if err != nil {
			return nil, err
		}
		out = append(out, next)
	}
	return out, nil
}

// dedupAdjacent removes exact duplicates from an already-sorted slice,
// filtering in place.
func dedupAdjacent(pts []geom.Point) []geom.Point {
	out := pts[:0]
	for i, p := range pts {
		if i > 0 && geom.Equal(p, pts[i-1]) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// scan runs the monotone-chain construction over an already-sorted
// point sequence: pop any trailing point that the next one would make
// a non-left turn with (collinear or reflex), then append.
func scan(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		for len(out) >= 2 && geom.Side(p, out[len(out)-2], out[len(out)-1]) <= 0 {
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	return out
}

// rotateToCanonical rotates hull (already in CCW order) so that the
// vertex with smallest y, tie-broken by largest x, is at index 0.
func rotateToCanonical(hull []geom.Point) []geom.Point {
	start := 0
	for i := 1; i < len(hull); i++ {
		if geom.Less(hull[i], hull[start]) {
			start = i
		}
	}
	if start == 0 {
		return hull
	}
	out := make([]geom.Point, len(hull))
	copy(out, hull[start:])
	copy(out[len(hull)-start:], hull[:start])
	return out
}

// checkConvex verifies every consecutive triple has strictly positive
// signed area. This is the "runtime convexity check" spec.md §4.4
// requires as a failure-mode detector; it runs unconditionally here
// since the cost is linear in the (small) hull size.
func checkConvex(hull []geom.Point) error {
	k := len(hull)
	if k < 3 {
		return nil
	}
	for i := 0; i < k; i++ {
		a := hull[i]
		b := hull[(i+1)%k]
		c := hull[(i+2)%k]
		if geom.Side(c, a, b) <= 0 {
			return &InvariantError{Msg: fmt.Sprintf("non-convex triple at vertex %d", i)}
		}
	}
	return nil
}
