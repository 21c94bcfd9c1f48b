// Package box: complex intervals (rectangles in ℂ).
package box

import (
	"fmt"

	"github.com/holozero/holozero/interval"
)

// Complex is a rectangle in the complex plane: Re + i·Im.
type Complex struct {
	Re, Im interval.Interval
}

// NewComplex builds a rectangle from its real and imaginary intervals.
func NewComplex(re, im interval.Interval) Complex {
	return Complex{Re: re, Im: im}
}

// PointComplex returns the degenerate rectangle at the point re + i·im.
func PointComplex(re, im float64) Complex {
	return Complex{Re: interval.Point(re), Im: interval.Point(im)}
}

// RealComplex embeds a real interval into ℂ with zero imaginary part.
func RealComplex(re interval.Interval) Complex {
	return Complex{Re: re, Im: interval.Point(0)}
}

// Add returns an enclosure of z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns an enclosure of z − w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Neg returns −z.
func (z Complex) Neg() Complex {
	return Complex{Re: z.Re.Neg(), Im: z.Im.Neg()}
}

// Conj returns the complex conjugate enclosure.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: z.Im.Neg()}
}

// Mul returns an enclosure of z · w:
// (a+bi)(c+di) = (ac − bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// MulFloat scales z by the real point value c.
func (z Complex) MulFloat(c float64) Complex {
	return Complex{Re: z.Re.MulFloat(c), Im: z.Im.MulFloat(c)}
}

// Scale multiplies z by a real interval.
func (z Complex) Scale(c interval.Interval) Complex {
	return Complex{Re: z.Re.Mul(c), Im: z.Im.Mul(c)}
}

// Sqr returns an enclosure of z², using the tighter real Sqr on each part:
// (a+bi)² = (a² − b²) + 2abi.
func (z Complex) Sqr() Complex {
	return Complex{
		Re: z.Re.Sqr().Sub(z.Im.Sqr()),
		Im: z.Re.Mul(z.Im).MulFloat(2),
	}
}

// AbsSqr returns an enclosure of |z|² = Re² + Im².
// Because the real and imaginary parts vary independently over a rectangle,
// the interval sum of squares is exactly the range of the squared modulus.
func (z Complex) AbsSqr() interval.Interval {
	return z.Re.Sqr().Add(z.Im.Sqr())
}

// Abs returns an enclosure of the modulus |z|.
func (z Complex) Abs() interval.Interval {
	sq := z.AbsSqr()
	if sq.Lo < 0 {
		sq.Lo = 0 // outward rounding can push an exact zero slightly negative
	}
	r, _ := sq.Sqrt()
	return r
}

// Div returns an enclosure of z / w via multiplication by the conjugate:
// z/w = z·conj(w) / |w|². Returns ErrDivByZero when w contains zero.
func (z Complex) Div(w Complex) (Complex, error) {
	den := w.AbsSqr()
	if den.ContainsZero() {
		return Complex{}, ErrDivByZero
	}
	num := z.Mul(w.Conj())
	re, err := num.Re.Div(den)
	if err != nil {
		return Complex{}, err
	}
	im, err := num.Im.Div(den)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}

// Sin returns an enclosure of sin z:
// sin(x+iy) = sin x cosh y + i cos x sinh y.
func (z Complex) Sin() Complex {
	return Complex{
		Re: z.Re.Sin().Mul(z.Im.Cosh()),
		Im: z.Re.Cos().Mul(z.Im.Sinh()),
	}
}

// Cos returns an enclosure of cos z:
// cos(x+iy) = cos x cosh y − i sin x sinh y.
func (z Complex) Cos() Complex {
	return Complex{
		Re: z.Re.Cos().Mul(z.Im.Cosh()),
		Im: z.Re.Sin().Mul(z.Im.Sinh()).Neg(),
	}
}

// Exp returns an enclosure of e^z:
// exp(x+iy) = e^x (cos y + i sin y).
func (z Complex) Exp() Complex {
	ex := z.Re.Exp()
	return Complex{
		Re: ex.Mul(z.Im.Cos()),
		Im: ex.Mul(z.Im.Sin()),
	}
}

// Mid returns the degenerate rectangle at the centroid.
func (z Complex) Mid() Complex {
	return PointComplex(z.Re.Mid(), z.Im.Mid())
}

// ContainsZero reports whether the origin lies in the rectangle.
func (z Complex) ContainsZero() bool {
	return z.Re.ContainsZero() && z.Im.ContainsZero()
}

// Intersect returns the rectangle intersection; false when empty.
func (z Complex) Intersect(w Complex) (Complex, bool) {
	re, ok := z.Re.Intersect(w.Re)
	if !ok {
		return Complex{}, false
	}
	im, ok := z.Im.Intersect(w.Im)
	if !ok {
		return Complex{}, false
	}
	return Complex{Re: re, Im: im}, true
}

// Disjoint reports whether z and w share no point.
func (z Complex) Disjoint(w Complex) bool {
	return z.Re.Disjoint(w.Re) || z.Im.Disjoint(w.Im)
}

// In reports whether z is a subset of w.
func (z Complex) In(w Complex) bool {
	return z.Re.In(w.Re) && z.Im.In(w.Im)
}

// IsPoint reports whether both parts are degenerate.
func (z Complex) IsPoint() bool { return z.Re.IsPoint() && z.Im.IsPoint() }

// IsFinite reports whether all four endpoints are finite.
func (z Complex) IsFinite() bool { return z.Re.IsFinite() && z.Im.IsFinite() }

// String renders the rectangle as "[a, b] + i[c, d]".
func (z Complex) String() string {
	return fmt.Sprintf("%v + i%v", z.Re, z.Im)
}
