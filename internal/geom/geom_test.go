package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/parahull/internal/geom"
)

func TestSide_LeftRightCollinear(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}

	left := geom.Point{X: 0.5, Y: 1}
	right := geom.Point{X: 0.5, Y: -1}
	on := geom.Point{X: 2, Y: 0}

	assert.Greater(t, geom.Side(left, a, b), 0.0)
	assert.Less(t, geom.Side(right, a, b), 0.0)
	assert.Equal(t, 0.0, geom.Side(on, a, b))
}

func TestSegLen(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, geom.SegLen(a, b), 1e-9)
}

func TestLess_CanonicalOrdering(t *testing.T) {
	lowY := geom.Point{X: 5, Y: 0}
	highY := geom.Point{X: 0, Y: 1}
	assert.True(t, geom.Less(lowY, highY), "smaller y must sort first")

	tieYSmallX := geom.Point{X: 1, Y: 0}
	tieYBigX := geom.Point{X: 2, Y: 0}
	assert.True(t, geom.Less(tieYBigX, tieYSmallX), "tie on y breaks toward larger x")
}

func TestEqual(t *testing.T) {
	p := geom.Point{X: 1, Y: 2}
	q := geom.Point{X: 1, Y: 2}
	r := geom.Point{X: 1, Y: 3}
	assert.True(t, geom.Equal(p, q))
	assert.False(t, geom.Equal(p, r))
}
