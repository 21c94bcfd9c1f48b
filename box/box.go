// Package box: rectangles in ℂ² and their bisection.
package box

import (
	"fmt"

	"github.com/holozero/holozero/interval"
)

// Box is an axis-aligned rectangle in ℂ², the unit of work of the
// branch-and-bound search. Z1 and Z2 are its two complex components.
type Box struct {
	Z1, Z2 Complex
}

// New builds a box from its two components.
func New(z1, z2 Complex) Box {
	return Box{Z1: z1, Z2: z2}
}

// Mid returns the degenerate box at the centroid.
func (b Box) Mid() Box {
	return Box{Z1: b.Z1.Mid(), Z2: b.Z2.Mid()}
}

// Widths returns the four edge widths of the box in the fixed order
// (Re Z1, Im Z1, Re Z2, Im Z2).
func (b Box) Widths() [4]float64 {
	return [4]float64{
		b.Z1.Re.Width(), b.Z1.Im.Width(),
		b.Z2.Re.Width(), b.Z2.Im.Width(),
	}
}

// MaxWidth returns the largest of the four edge widths.
func (b Box) MaxWidth() float64 {
	w := b.Widths()
	m := w[0]
	for _, v := range w[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Split bisects the box along the axis of maximum width and returns the two
// halves, lower first. Ties are broken deterministically: Z1 is preferred
// over Z2 and the real axis over the imaginary one. The halves share the cut
// midpoint, so their union is the parent and the overlap has measure zero.
func (b Box) Split() (Box, Box) {
	w := b.Widths()
	axis, widest := 0, w[0]
	for i := 1; i < 4; i++ {
		if w[i] > widest {
			axis, widest = i, w[i]
		}
	}

	lower, upper := b, b
	switch axis {
	case 0:
		lower.Z1.Re, upper.Z1.Re = cut(b.Z1.Re)
	case 1:
		lower.Z1.Im, upper.Z1.Im = cut(b.Z1.Im)
	case 2:
		lower.Z2.Re, upper.Z2.Re = cut(b.Z2.Re)
	case 3:
		lower.Z2.Im, upper.Z2.Im = cut(b.Z2.Im)
	}
	return lower, upper
}

// Intersect returns the componentwise intersection; false when empty.
func (b Box) Intersect(o Box) (Box, bool) {
	z1, ok := b.Z1.Intersect(o.Z1)
	if !ok {
		return Box{}, false
	}
	z2, ok := b.Z2.Intersect(o.Z2)
	if !ok {
		return Box{}, false
	}
	return Box{Z1: z1, Z2: z2}, true
}

// Disjoint reports whether any of the four constituent real intervals of b
// is disjoint from its counterpart in o.
func (b Box) Disjoint(o Box) bool {
	return b.Z1.Disjoint(o.Z1) || b.Z2.Disjoint(o.Z2)
}

// In reports whether b is a subset of o, the containment test behind the
// interval Newton existence proof.
func (b Box) In(o Box) bool {
	return b.Z1.In(o.Z1) && b.Z2.In(o.Z2)
}

// IsFinite reports whether all eight endpoints are finite.
func (b Box) IsFinite() bool { return b.Z1.IsFinite() && b.Z2.IsFinite() }

// String renders the box as "(z1) × (z2)".
func (b Box) String() string {
	return fmt.Sprintf("(%v) × (%v)", b.Z1, b.Z2)
}

// cut splits a real interval at its midpoint.
func cut(x interval.Interval) (interval.Interval, interval.Interval) {
	m := x.Mid()
	return interval.Interval{Lo: x.Lo, Hi: m}, interval.Interval{Lo: m, Hi: x.Hi}
}
