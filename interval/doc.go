// Package interval provides real interval arithmetic with outward rounding,
// the scalar kernel underneath every enclosure computed by this module.
//
// What
//
//   - Interval [Lo, Hi] over float64 with the invariant Lo ≤ Hi.
//   - Arithmetic: Add, Sub, Neg, Mul, MulFloat, Div, Sqr, Abs, Sqrt.
//   - Elementary functions: Sin, Cos, Exp, Sinh, Cosh.
//   - Set predicates: Contains, ContainsZero, Intersect, Disjoint, In.
//   - Decimal parsing: Parse and FromStrings convert decimal strings to
//     enclosing intervals via arbitrary-precision comparison, so "0.1" is
//     represented by an interval that provably contains one tenth.
//
// Why
//
//	Every downstream result — box enclosures, Jacobians, Newton operators —
//	inherits its rigor from this package. Each operation returns an interval
//	guaranteed to contain the exact real result for every choice of points in
//	the operand intervals.
//
// Rounding model
//
//	Endpoints are computed in double precision, tested for exactness (an
//	error-free residual test for sums, an FMA residual for products,
//	quotients and roots) and widened outward by one unit in the last place
//	only when inexact. This over-approximates directed rounding — the result
//	is never tighter than the correctly rounded interval — while exact
//	arithmetic, in particular anything involving exact zeros, stays exact.
//	Sin and Cos additionally guard against argument-reduction error by
//	falling back to [-1, 1] for arguments wider than 2π or larger than 1e15
//	in magnitude.
//
// Errors
//
//   - ErrInvalid    — constructor given Lo > Hi or a NaN endpoint.
//   - ErrDivByZero  — Div with a divisor interval containing zero.
//   - ErrDomain     — Sqrt of an interval with a negative part.
//   - ErrParse      — Parse/FromStrings given a malformed decimal.
//
// The arithmetic is blocking-free and allocation-free (Parse and FromStrings
// allocate), and everything is safe for concurrent use: an Interval is an
// immutable value.
package interval
