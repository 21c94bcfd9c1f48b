// Package box provides the interval-box algebra over ℂ and ℂ²: complex
// intervals (rectangles in ℂ), boxes (rectangles in ℂ²), and 2×2 complex
// interval matrices for Jacobian enclosures.
//
// What
//
//   - Complex: a rectangle [a,b] + i[c,d], with rigorous Add, Sub, Neg, Mul,
//     Div, Conj, Sqr, Abs (modulus enclosure), and set predicates.
//   - Box: an ordered pair (Z1, Z2) of Complex values. Supports Mid, Widths,
//     Intersect, Disjoint, In (subset) and Split — bisection along the axis
//     of maximum width with a deterministic tie-break (Z1 before Z2, real
//     axis before imaginary).
//   - Matrix: a 2×2 array of Complex entries with Det, closed-form adjugate
//     Inverse guarded by a near-singularity floor, and MulVec.
//
// Why
//
//	These are the value types moved through the branch-and-bound scheduler
//	and consumed by the interval Newton operator: the subset test backs the
//	existence proof, Split drives bisection, and the guarded Inverse keeps a
//	nearly singular Jacobian from producing a uselessly wide Newton step.
//
// All types are immutable values, safe to copy across goroutines.
//
// Errors
//
//   - ErrSingular — Inverse of a matrix whose determinant cannot be bounded
//     away from zero (inf |det| at or below the singularity floor).
//   - ErrDivByZero — Div by a rectangle containing zero.
package box
