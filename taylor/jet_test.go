package taylor_test

import (
	"math"
	"testing"

	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/taylor"
)

// at seeds the differentiation variable at the point re + i·im.
func at(re, im float64) taylor.Jet {
	return taylor.Variable(box.PointComplex(re, im))
}

// want asserts a tight enclosure of val and der (given as re/im pairs).
func want(t *testing.T, f taylor.Jet, vre, vim, dre, dim float64) {
	t.Helper()
	check := func(name string, z box.Complex, re, im float64) {
		if !z.Re.Contains(re) || !z.Im.Contains(im) {
			t.Fatalf("%s = %v; want %g + i%g", name, z, re, im)
		}
		scale := 1e-9 * (1 + math.Abs(re) + math.Abs(im))
		if z.Re.Width() > scale || z.Im.Width() > scale {
			t.Fatalf("%s = %v; too wide around %g + i%g", name, z, re, im)
		}
	}
	check("value", f.Val, vre, vim)
	check("derivative", f.Der, dre, dim)
}

func TestSeeding(t *testing.T) {
	z := box.PointComplex(2, 3)
	want(t, taylor.Variable(z), 2, 3, 1, 0)
	want(t, taylor.Constant(z), 2, 3, 0, 0)
	want(t, taylor.FromFloat(1.5), 1.5, 0, 0, 0)
	want(t, taylor.FromInterval(interval.Point(-2)), -2, 0, 0, 0)
}

func TestPolynomialRules(t *testing.T) {
	z := at(3, 0)

	// (z²)' = 2z
	want(t, z.Sqr(), 9, 0, 6, 0)
	// product rule on z·z agrees with Sqr
	want(t, z.Mul(z), 9, 0, 6, 0)
	// (z² − 2z + 1)' = 2z − 2
	f := z.Sqr().Sub(z.MulFloat(2)).AddFloat(1)
	want(t, f, 4, 0, 4, 0)
	// scalar mixes
	want(t, z.Scale(interval.Point(-2)), -6, 0, -2, 0)
	want(t, z.Neg(), -3, 0, -1, 0)
	want(t, z.SubFloat(3), 0, 0, 1, 0)
}

func TestQuotientRule(t *testing.T) {
	// (1/z)' = −1/z² at z = 2
	f, err := taylor.FromFloat(1).Div(at(2, 0))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	want(t, f, 0.5, 0, -0.25, 0)

	// Division by a rectangle containing zero must fail.
	origin := taylor.Variable(box.NewComplex(
		interval.Interval{Lo: -1, Hi: 1},
		interval.Interval{Lo: -1, Hi: 1},
	))
	if _, err := taylor.FromFloat(1).Div(origin); err == nil {
		t.Fatal("expected domain error for zero-containing divisor")
	}
}

func TestTranscendentalRules(t *testing.T) {
	z := at(0, 0)
	// sin' = cos: at 0 the derivative is 1
	want(t, z.Sin(), 0, 0, 1, 0)
	// cos' = −sin: at 0 the derivative is 0
	want(t, z.Cos(), 1, 0, 0, 0)

	e := at(1, 0).Exp()
	want(t, e, math.E, 0, math.E, 0)

	// chain rule: d/dz exp(z²) = 2z·exp(z²), at z = 1 that is 2e
	g := at(1, 0).Sqr().Exp()
	want(t, g, math.E, 0, 2*math.E, 0)
}

func TestIntersect(t *testing.T) {
	a := taylor.Variable(box.NewComplex(interval.Interval{Lo: 0, Hi: 2}, interval.Point(0)))
	b := taylor.Variable(box.NewComplex(interval.Interval{Lo: 1, Hi: 3}, interval.Point(0)))

	got, err := a.Intersect(b)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	if got.Val.Re.Lo != 1 || got.Val.Re.Hi != 2 {
		t.Errorf("intersected value = %v", got.Val)
	}

	far := taylor.Constant(box.PointComplex(10, 0))
	if _, err := a.Intersect(far); err == nil {
		t.Error("expected empty-intersection error")
	}
}

func TestIsFinite(t *testing.T) {
	if !at(1, 1).IsFinite() {
		t.Error("finite jet misreported")
	}
	huge := taylor.Constant(box.PointComplex(1e308, 0))
	if huge.Mul(huge).IsFinite() {
		t.Error("overflowed jet must not be finite")
	}
}
