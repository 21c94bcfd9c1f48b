// Package interval: arithmetic operations with outward rounding.
//
// Rounding discipline: every computed endpoint is checked for exactness
// first — an error-free residual test for sums and differences, an FMA
// residual for products, quotients and roots — and widened by one ulp only
// when the float64 result is inexact. Exact arithmetic (and in particular
// anything involving exact zeros) therefore stays exact, which the Newton
// containment test on degenerate boxes depends on.
package interval

import "math"

// exactSum reports whether s is exactly a + b.
func exactSum(a, b, s float64) bool {
	return s-a == b && s-b == a
}

// exactProd reports whether p is exactly a · b.
func exactProd(a, b, p float64) bool {
	return math.FMA(a, b, -p) == 0
}

// exactQuot reports whether q is exactly a / b.
func exactQuot(a, b, q float64) bool {
	return math.FMA(q, b, -a) == 0
}

// sumDown returns a + b rounded toward −∞.
func sumDown(a, b float64) float64 {
	s := a + b
	if exactSum(a, b, s) {
		return s
	}
	return down(s)
}

// sumUp returns a + b rounded toward +∞.
func sumUp(a, b float64) float64 {
	s := a + b
	if exactSum(a, b, s) {
		return s
	}
	return up(s)
}

// Add returns an enclosure of x + y.
func (x Interval) Add(y Interval) Interval {
	return Interval{Lo: sumDown(x.Lo, y.Lo), Hi: sumUp(x.Hi, y.Hi)}
}

// Sub returns an enclosure of x − y.
func (x Interval) Sub(y Interval) Interval {
	return Interval{Lo: sumDown(x.Lo, -y.Hi), Hi: sumUp(x.Hi, -y.Lo)}
}

// Neg returns −x. Negation is exact.
func (x Interval) Neg() Interval {
	return Interval{Lo: -x.Hi, Hi: -x.Lo}
}

// Mul returns an enclosure of x · y.
// When an indeterminate product (0 · ∞) arises the whole real line is
// returned, which is always a sound enclosure.
func (x Interval) Mul(y Interval) Interval {
	as := [4]float64{x.Lo, x.Lo, x.Hi, x.Hi}
	bs := [4]float64{y.Lo, y.Hi, y.Lo, y.Hi}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 4; i++ {
		p := as[i] * bs[i]
		if math.IsNaN(p) {
			return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
		}
		pl, ph := p, p
		if !exactProd(as[i], bs[i], p) {
			pl, ph = down(p), up(p)
		}
		lo = math.Min(lo, pl)
		hi = math.Max(hi, ph)
	}
	return Interval{Lo: lo, Hi: hi}
}

// MulFloat returns an enclosure of x scaled by the point value c.
func (x Interval) MulFloat(c float64) Interval {
	return x.Mul(Point(c))
}

// Div returns an enclosure of x / y.
// Returns ErrDivByZero when y contains zero.
func (x Interval) Div(y Interval) (Interval, error) {
	if y.ContainsZero() {
		return Interval{}, ErrDivByZero
	}
	as := [4]float64{x.Lo, x.Lo, x.Hi, x.Hi}
	bs := [4]float64{y.Lo, y.Hi, y.Lo, y.Hi}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 4; i++ {
		q := as[i] / bs[i]
		ql, qh := q, q
		if !exactQuot(as[i], bs[i], q) {
			ql, qh = down(q), up(q)
		}
		lo = math.Min(lo, ql)
		hi = math.Max(hi, qh)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Sqr returns an enclosure of x², which is tighter than x.Mul(x)
// when x straddles zero.
func (x Interval) Sqr() Interval {
	a, b := math.Abs(x.Lo), math.Abs(x.Hi)
	m := math.Max(a, b)
	hi := m * m
	if !exactProd(m, m, hi) {
		hi = up(hi)
	}
	if x.ContainsZero() {
		return Interval{Lo: 0, Hi: hi}
	}
	n := math.Min(a, b)
	lo := n * n
	if !exactProd(n, n, lo) {
		lo = math.Max(0, down(lo))
	}
	return Interval{Lo: lo, Hi: hi}
}

// Abs returns the interval of absolute values {|v| : v ∈ x}.
// Endpoint absolute values are exact.
func (x Interval) Abs() Interval {
	a, b := math.Abs(x.Lo), math.Abs(x.Hi)
	if x.ContainsZero() {
		return Interval{Lo: 0, Hi: math.Max(a, b)}
	}
	return Interval{Lo: math.Min(a, b), Hi: math.Max(a, b)}
}

// Sqrt returns an enclosure of √x.
// Returns ErrDomain when any part of x is negative.
func (x Interval) Sqrt() (Interval, error) {
	if x.Lo < 0 {
		return Interval{}, ErrDomain
	}
	lo := math.Sqrt(x.Lo)
	if !exactProd(lo, lo, x.Lo) {
		lo = math.Max(0, down(lo))
	}
	hi := math.Sqrt(x.Hi)
	if !exactProd(hi, hi, x.Hi) {
		hi = up(hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}
