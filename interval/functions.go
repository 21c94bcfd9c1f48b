// Package interval: enclosures of elementary functions.
package interval

import "math"

// reductionLimit bounds the argument magnitude beyond which the platform's
// trigonometric argument reduction can no longer be trusted to locate
// extrema; past it Sin and Cos fall back to [-1, 1].
const reductionLimit = 1e15

// Sin returns an enclosure of {sin v : v ∈ x}.
func (x Interval) Sin() Interval {
	if !x.IsFinite() || x.Hi-x.Lo >= 2*math.Pi ||
		math.Abs(x.Lo) > reductionLimit || math.Abs(x.Hi) > reductionLimit {
		return Interval{Lo: -1, Hi: 1}
	}
	sa, sb := math.Sin(x.Lo), math.Sin(x.Hi)
	lo := slack(math.Min(sa, sb), -1)
	hi := slack(math.Max(sa, sb), 1)
	if x.hasCritical(math.Pi / 2) {
		hi = 1
	}
	if x.hasCritical(-math.Pi / 2) {
		lo = -1
	}
	return Interval{Lo: math.Max(lo, -1), Hi: math.Min(hi, 1)}
}

// Cos returns an enclosure of {cos v : v ∈ x}.
func (x Interval) Cos() Interval {
	if !x.IsFinite() || x.Hi-x.Lo >= 2*math.Pi ||
		math.Abs(x.Lo) > reductionLimit || math.Abs(x.Hi) > reductionLimit {
		return Interval{Lo: -1, Hi: 1}
	}
	ca, cb := math.Cos(x.Lo), math.Cos(x.Hi)
	lo := slack(math.Min(ca, cb), -1)
	hi := slack(math.Max(ca, cb), 1)
	if x.hasCritical(0) {
		hi = 1
	}
	if x.hasCritical(math.Pi) {
		lo = -1
	}
	return Interval{Lo: math.Max(lo, -1), Hi: math.Min(hi, 1)}
}

// Exp returns an enclosure of {e^v : v ∈ x}.
// Overflow saturates to +Inf, which remains a valid enclosure.
func (x Interval) Exp() Interval {
	lo := down(math.Exp(x.Lo))
	if lo < 0 {
		lo = 0
	}
	return Interval{Lo: lo, Hi: up(math.Exp(x.Hi))}
}

// Sinh returns an enclosure of {sinh v : v ∈ x}.
func (x Interval) Sinh() Interval {
	return out(math.Sinh(x.Lo), math.Sinh(x.Hi))
}

// Cosh returns an enclosure of {cosh v : v ∈ x}.
func (x Interval) Cosh() Interval {
	a, b := math.Abs(x.Lo), math.Abs(x.Hi)
	hi := up(math.Cosh(math.Max(a, b)))
	if x.ContainsZero() {
		return Interval{Lo: 1, Hi: hi}
	}
	lo := down(math.Cosh(math.Min(a, b)))
	if lo < 1 {
		lo = 1
	}
	return Interval{Lo: lo, Hi: hi}
}

// hasCritical reports whether some point c + 2πk (integer k) may lie in x.
// The test is inflated to absorb the error of representing π in double
// precision, so it can only err on the side of reporting true.
func (x Interval) hasCritical(c float64) bool {
	guard := 1e-12 + 1e-15*math.Max(math.Abs(x.Lo), math.Abs(x.Hi))
	kmin := math.Ceil((x.Lo - guard - c) / (2 * math.Pi))
	kmax := math.Floor((x.Hi + guard - c) / (2 * math.Pi))
	return kmin <= kmax
}

// slack widens a trigonometric endpoint by four ulps in direction dir
// (−1 down, +1 up) to absorb libm rounding.
func slack(v float64, dir int) float64 {
	for i := 0; i < 4; i++ {
		if dir < 0 {
			v = down(v)
		} else {
			v = up(v)
		}
	}
	return v
}
