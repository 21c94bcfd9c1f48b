// Package oracle: the Func contract and its box-level drivers.
package oracle

import (
	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/taylor"
)

// Func is the oracle contract: evaluate F = (f1, f2) on the jets z1, z2 with
// the opaque scalar parameter p. Seeding one argument with taylor.Variable
// makes the outputs' derivative slots enclose the corresponding Jacobian
// column.
type Func func(z1, z2 taylor.Jet, p interval.Interval) (f1, f2 taylor.Jet, err error)

// Range returns a rigorous enclosure of F over the box b.
// Both components are seeded as constants; only the value slots are used.
func Range(f Func, b box.Box, p interval.Interval) ([2]box.Complex, error) {
	f1, f2, err := f(taylor.Constant(b.Z1), taylor.Constant(b.Z2), p)
	if err != nil {
		return [2]box.Complex{}, err
	}
	if !f1.Val.IsFinite() || !f2.Val.IsFinite() {
		return [2]box.Complex{}, ErrOverflow
	}
	return [2]box.Complex{f1.Val, f2.Val}, nil
}

// AtMid returns an enclosure of F at the midpoint of b. The midpoint box is
// degenerate, so the enclosure width reflects only rounding, not b itself.
func AtMid(f Func, b box.Box, p interval.Interval) ([2]box.Complex, error) {
	return Range(f, b.Mid(), p)
}

// Jacobian returns a 2×2 enclosure of ∂F over the box b: column k comes from
// one evaluation with z_k seeded as the variable and the other component
// held constant.
func Jacobian(f Func, b box.Box, p interval.Interval) (box.Matrix, error) {
	var jac box.Matrix

	// Column 0: ∂f1/∂z1 and ∂f2/∂z1.
	f1, f2, err := f(taylor.Variable(b.Z1), taylor.Constant(b.Z2), p)
	if err != nil {
		return box.Matrix{}, err
	}
	jac[0][0], jac[1][0] = f1.Der, f2.Der

	// Column 1: ∂f1/∂z2 and ∂f2/∂z2.
	f1, f2, err = f(taylor.Constant(b.Z1), taylor.Variable(b.Z2), p)
	if err != nil {
		return box.Matrix{}, err
	}
	jac[0][1], jac[1][1] = f1.Der, f2.Der

	if !jac.IsFinite() {
		return box.Matrix{}, ErrOverflow
	}
	return jac, nil
}
