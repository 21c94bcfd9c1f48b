package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
)

// mk builds a box from eight endpoints in CLI order.
func mk(v [8]float64) box.Box {
	return box.New(
		box.NewComplex(interval.Interval{Lo: v[0], Hi: v[1]}, interval.Interval{Lo: v[2], Hi: v[3]}),
		box.NewComplex(interval.Interval{Lo: v[4], Hi: v[5]}, interval.Interval{Lo: v[6], Hi: v[7]}),
	)
}

func TestBox_Split_WidestAxis(t *testing.T) {
	// Widest edge is Im Z2 ([0, 8]); the cut must land there.
	b := mk([8]float64{0, 1, 0, 2, 0, 4, 0, 8})
	lower, upper := b.Split()

	assert.Equal(t, 4.0, lower.Z2.Im.Hi, "cut must be at the midpoint of Im Z2")
	assert.Equal(t, 4.0, upper.Z2.Im.Lo)
	// All other edges are untouched.
	assert.Equal(t, b.Z1, lower.Z1)
	assert.Equal(t, b.Z1, upper.Z1)
	assert.Equal(t, b.Z2.Re, lower.Z2.Re)

	assert.True(t, lower.In(b))
	assert.True(t, upper.In(b))
}

func TestBox_Split_TieBreak(t *testing.T) {
	// All four edges equally wide: Z1 wins over Z2, real over imaginary.
	b := mk([8]float64{0, 2, 0, 2, 0, 2, 0, 2})
	lower, upper := b.Split()
	assert.Equal(t, 1.0, lower.Z1.Re.Hi)
	assert.Equal(t, 1.0, upper.Z1.Re.Lo)
	assert.Equal(t, b.Z1.Im, lower.Z1.Im)
	assert.Equal(t, b.Z2, lower.Z2)

	// Z1 Im ties with Z2 Re: the first component must still win.
	b = mk([8]float64{0, 1, 0, 4, 0, 4, 0, 1})
	lower, _ = b.Split()
	assert.Equal(t, 2.0, lower.Z1.Im.Hi)
	assert.Equal(t, b.Z2, lower.Z2)
}

func TestBox_Split_CoversParent(t *testing.T) {
	b := mk([8]float64{-2, 2, -1, 1, -0.5, 0.5, -0.25, 0.25})
	lower, upper := b.Split()

	// The halves share only the cut plane and rebuild the parent hull.
	require.Equal(t, lower.Z1.Re.Hi, upper.Z1.Re.Lo)
	hull := interval.Hull(lower.Z1.Re, upper.Z1.Re)
	assert.Equal(t, b.Z1.Re, hull)

	// Children are strict subsets.
	assert.True(t, lower.In(b))
	assert.True(t, upper.In(b))
	assert.NotEqual(t, b, lower)
	assert.NotEqual(t, b, upper)
}

func TestBox_SetOps(t *testing.T) {
	a := mk([8]float64{0, 2, 0, 2, 0, 2, 0, 2})
	b := mk([8]float64{1, 3, 1, 3, 1, 3, 1, 3})

	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.True(t, got.In(a))
	assert.True(t, got.In(b))

	far := mk([8]float64{10, 11, 0, 2, 0, 2, 0, 2})
	assert.True(t, a.Disjoint(far))
	_, ok = a.Intersect(far)
	assert.False(t, ok)

	// A single separated constituent interval makes boxes disjoint.
	z2off := mk([8]float64{0, 2, 0, 2, 0, 2, 5, 6})
	assert.True(t, a.Disjoint(z2off))
}

func TestBox_MidWidths(t *testing.T) {
	b := mk([8]float64{0, 4, -2, 0, 1, 2, -1, 1})
	m := b.Mid()
	assert.True(t, m.Z1.IsPoint() && m.Z2.IsPoint())
	assert.Equal(t, 2.0, m.Z1.Re.Lo)
	assert.Equal(t, -1.0, m.Z1.Im.Lo)
	assert.True(t, m.In(b))

	w := b.Widths()
	assert.GreaterOrEqual(t, w[0], 4.0)
	assert.GreaterOrEqual(t, b.MaxWidth(), 4.0)
	assert.Less(t, b.MaxWidth(), 4.1)
}
