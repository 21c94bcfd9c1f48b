// Package taylor: the Jet type and its lifted operations.
package taylor

import (
	"fmt"

	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
)

// Jet is a degree-1 Taylor model of a holomorphic expression over a
// rectangle: Val encloses the value, Der the derivative with respect to the
// seeded variable.
type Jet struct {
	Val, Der box.Complex
}

// Variable seeds z as the differentiation variable: value z, derivative 1.
func Variable(z box.Complex) Jet {
	return Jet{Val: z, Der: box.PointComplex(1, 0)}
}

// Constant seeds z as independent of the variable: value z, derivative 0.
func Constant(z box.Complex) Jet {
	return Jet{Val: z, Der: box.PointComplex(0, 0)}
}

// FromInterval lifts a real interval constant into a Jet.
func FromInterval(x interval.Interval) Jet {
	return Constant(box.RealComplex(x))
}

// FromFloat lifts a real point constant into a Jet.
func FromFloat(x float64) Jet {
	return Constant(box.PointComplex(x, 0))
}

// Add returns f + g.
func (f Jet) Add(g Jet) Jet {
	return Jet{Val: f.Val.Add(g.Val), Der: f.Der.Add(g.Der)}
}

// Sub returns f − g.
func (f Jet) Sub(g Jet) Jet {
	return Jet{Val: f.Val.Sub(g.Val), Der: f.Der.Sub(g.Der)}
}

// Neg returns −f.
func (f Jet) Neg() Jet {
	return Jet{Val: f.Val.Neg(), Der: f.Der.Neg()}
}

// Mul returns f · g with the product rule.
func (f Jet) Mul(g Jet) Jet {
	return Jet{
		Val: f.Val.Mul(g.Val),
		Der: f.Der.Mul(g.Val).Add(f.Val.Mul(g.Der)),
	}
}

// Div returns f / g with the quotient rule.
// Returns ErrDomain when g's value rectangle contains zero.
func (f Jet) Div(g Jet) (Jet, error) {
	val, err := f.Val.Div(g.Val)
	if err != nil {
		return Jet{}, fmt.Errorf("%w: %v", ErrDomain, err)
	}
	// (f/g)' = (f' − (f/g)·g') / g
	der, err := f.Der.Sub(val.Mul(g.Der)).Div(g.Val)
	if err != nil {
		return Jet{}, fmt.Errorf("%w: %v", ErrDomain, err)
	}
	return Jet{Val: val, Der: der}, nil
}

// Sqr returns f² with derivative 2·f·f'.
func (f Jet) Sqr() Jet {
	return Jet{
		Val: f.Val.Sqr(),
		Der: f.Val.Mul(f.Der).MulFloat(2),
	}
}

// Scale multiplies f by a real interval constant.
func (f Jet) Scale(c interval.Interval) Jet {
	return Jet{Val: f.Val.Scale(c), Der: f.Der.Scale(c)}
}

// MulFloat multiplies f by a real point constant.
func (f Jet) MulFloat(c float64) Jet {
	return Jet{Val: f.Val.MulFloat(c), Der: f.Der.MulFloat(c)}
}

// AddFloat adds a real point constant to f.
func (f Jet) AddFloat(c float64) Jet {
	g := f
	g.Val.Re = f.Val.Re.Add(interval.Point(c))
	return g
}

// SubFloat subtracts a real point constant from f.
func (f Jet) SubFloat(c float64) Jet {
	return f.AddFloat(-c)
}

// Sin returns sin f with derivative cos(f)·f'.
func (f Jet) Sin() Jet {
	return Jet{
		Val: f.Val.Sin(),
		Der: f.Val.Cos().Mul(f.Der),
	}
}

// Cos returns cos f with derivative −sin(f)·f'.
func (f Jet) Cos() Jet {
	return Jet{
		Val: f.Val.Cos(),
		Der: f.Val.Sin().Neg().Mul(f.Der),
	}
}

// Exp returns e^f with derivative e^f·f'.
func (f Jet) Exp() Jet {
	val := f.Val.Exp()
	return Jet{Val: val, Der: val.Mul(f.Der)}
}

// Intersect combines two enclosures of the same expression, keeping the
// componentwise intersection of both value and derivative. Returns ErrEmpty
// when either intersection is empty.
func (f Jet) Intersect(g Jet) (Jet, error) {
	val, ok := f.Val.Intersect(g.Val)
	if !ok {
		return Jet{}, ErrEmpty
	}
	der, ok := f.Der.Intersect(g.Der)
	if !ok {
		return Jet{}, ErrEmpty
	}
	return Jet{Val: val, Der: der}, nil
}

// IsFinite reports whether all endpoints of value and derivative are finite.
func (f Jet) IsFinite() bool {
	return f.Val.IsFinite() && f.Der.IsFinite()
}
