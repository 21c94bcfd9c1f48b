// Package interval: core type, constructors and set predicates.
package interval

import (
	"fmt"
	"math"
)

// Interval is a closed real interval [Lo, Hi] with Lo ≤ Hi.
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	Lo, Hi float64
}

// New returns the interval [lo, hi].
// Returns ErrInvalid when lo > hi or either endpoint is NaN.
func New(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Interval{}, fmt.Errorf("%w: [%g, %g]", ErrInvalid, lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Point returns the degenerate interval [x, x].
// x must not be NaN; Point is intended for known-finite literals.
func Point(x float64) Interval {
	return Interval{Lo: x, Hi: x}
}

// Hull returns the smallest interval containing both x and y.
func Hull(x, y Interval) Interval {
	return Interval{Lo: math.Min(x.Lo, y.Lo), Hi: math.Max(x.Hi, y.Hi)}
}

// Mid returns the midpoint of the interval.
// The result is always a member of the interval, even near overflow.
func (x Interval) Mid() float64 {
	m := 0.5*x.Lo + 0.5*x.Hi
	if m < x.Lo {
		return x.Lo
	}
	if m > x.Hi {
		return x.Hi
	}
	return m
}

// Width returns Hi − Lo, rounded up when inexact.
func (x Interval) Width() float64 {
	w := x.Hi - x.Lo
	if exactSum(x.Hi, -x.Lo, w) {
		return w
	}
	return up(w)
}

// IsPoint reports whether the interval is degenerate.
func (x Interval) IsPoint() bool { return x.Lo == x.Hi }

// IsFinite reports whether both endpoints are finite and not NaN.
func (x Interval) IsFinite() bool {
	return !math.IsNaN(x.Lo) && !math.IsNaN(x.Hi) &&
		!math.IsInf(x.Lo, 0) && !math.IsInf(x.Hi, 0)
}

// Contains reports whether the point v lies in the interval.
func (x Interval) Contains(v float64) bool {
	return x.Lo <= v && v <= x.Hi
}

// ContainsZero reports whether 0 lies in the interval.
func (x Interval) ContainsZero() bool { return x.Contains(0) }

// Intersect returns the intersection of x and y.
// The second result is false when the intervals are disjoint.
func (x Interval) Intersect(y Interval) (Interval, bool) {
	lo := math.Max(x.Lo, y.Lo)
	hi := math.Min(x.Hi, y.Hi)
	if lo > hi {
		return Interval{}, false
	}
	return Interval{Lo: lo, Hi: hi}, true
}

// Disjoint reports whether x and y share no point.
func (x Interval) Disjoint(y Interval) bool {
	return x.Hi < y.Lo || x.Lo > y.Hi
}

// In reports whether x is a subset of y.
func (x Interval) In(y Interval) bool {
	return y.Lo <= x.Lo && x.Hi <= y.Hi
}

// String renders the interval as "[lo, hi]" with round-trip precision.
func (x Interval) String() string {
	return fmt.Sprintf("[%v, %v]", x.Lo, x.Hi)
}

// down rounds a computed lower endpoint toward −∞ by one ulp.
func down(v float64) float64 {
	if math.IsInf(v, -1) {
		return v
	}
	return math.Nextafter(v, math.Inf(-1))
}

// up rounds a computed upper endpoint toward +∞ by one ulp.
func up(v float64) float64 {
	if math.IsInf(v, 1) {
		return v
	}
	return math.Nextafter(v, math.Inf(1))
}

// out widens both endpoints outward.
func out(lo, hi float64) Interval {
	return Interval{Lo: down(lo), Hi: up(hi)}
}
