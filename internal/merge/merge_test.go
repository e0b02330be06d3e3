package merge_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/merge"
)

func pointLess(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// assertSameVertexSet diffs two hull vertex slices as sets, ignoring
// order — Merge's contract on vertex membership (every input vertex
// that is a strict corner of the combined hull survives; vertices on or
// inside it are dropped) doesn't constrain traversal order.
func assertSameVertexSet(t *testing.T, want, got []geom.Point) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(pointLess)); diff != "" {
		t.Errorf("hull vertex set mismatch (-want +got):\n%s", diff)
	}
}

func rotateToStart(hull []geom.Point, start geom.Point) []geom.Point {
	for i, p := range hull {
		if geom.Equal(p, start) {
			out := make([]geom.Point, len(hull))
			copy(out, hull[i:])
			copy(out[len(hull)-i:], hull[:i])
			return out
		}
	}
	return hull
}

func TestMergeWorkedExampleS5(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	b := []geom.Point{{X: 3, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 2}}

	hull, err := merge.Merge(a, b)
	require.NoError(t, err)

	require.Len(t, hull, 4)
	hull = rotateToStart(hull, geom.Point{X: 0, Y: 0})
	want := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 2}, {X: 1, Y: 2}}
	assert.Equal(t, want, hull)
}

func TestMergeDisjointSquares(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	b := []geom.Point{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1}}

	hull, err := merge.Merge(a, b)
	require.NoError(t, err)

	assertSameVertexSet(t, []geom.Point{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 1},
	}, hull)
}

func TestMergeOneHullContainedInOther(t *testing.T) {
	outer := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	inner := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}

	hull, err := merge.Merge(outer, inner)
	require.NoError(t, err)
	assertSameVertexSet(t, outer, hull)
}

func TestMergeCanonicalStart(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := []geom.Point{{X: 1, Y: -1}, {X: 0, Y: -1}}

	hull, err := merge.Merge(a, b)
	require.NoError(t, err)
	require.NotEmpty(t, hull)

	for _, p := range hull[1:] {
		assert.True(t, geom.Less(hull[0], p) || geom.Equal(hull[0], p))
	}
}

func TestMergeIsConvex(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	b := []geom.Point{{X: 3, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 2}}

	hull, err := merge.Merge(a, b)
	require.NoError(t, err)

	n := len(hull)
	for i := 0; i < n; i++ {
		x, y, z := hull[i], hull[(i+1)%n], hull[(i+2)%n]
		assert.Greater(t, geom.Side(z, x, y), 0.0)
	}
}
