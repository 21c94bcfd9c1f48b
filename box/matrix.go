// Package box: 2×2 complex interval matrices for Jacobian enclosures.
package box

import "fmt"

// Matrix is a 2×2 matrix of complex intervals, indexed [row][col].
// It encloses the Jacobian of a map ℂ² → ℂ² over a box when every pointwise
// Jacobian entry lies in the corresponding rectangle.
type Matrix [2][2]Complex

// Identity returns the 2×2 identity matrix as degenerate rectangles.
func Identity() Matrix {
	one := PointComplex(1, 0)
	zero := PointComplex(0, 0)
	return Matrix{{one, zero}, {zero, one}}
}

// Det returns an enclosure of the determinant M[0][0]·M[1][1] − M[0][1]·M[1][0].
func (m Matrix) Det() Complex {
	return m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0]))
}

// Inverse returns the closed-form adjugate inverse of m.
//
// floor is the minimum admissible inf |det m|; passing a non-positive value
// selects SingularityFloor. When the determinant's modulus cannot be bounded
// above the floor, ErrSingular is returned: a nearly singular interval
// matrix would otherwise invert to an enclosure too wide to be of any use.
func (m Matrix) Inverse(floor float64) (Matrix, error) {
	if floor <= 0 {
		floor = SingularityFloor
	}
	det := m.Det()
	if det.Abs().Lo <= floor {
		return Matrix{}, fmt.Errorf("%w: inf |det| = %g", ErrSingular, det.Abs().Lo)
	}

	adj := Matrix{
		{m[1][1], m[0][1].Neg()},
		{m[1][0].Neg(), m[0][0]},
	}
	var inv Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			q, err := adj[i][j].Div(det)
			if err != nil {
				return Matrix{}, fmt.Errorf("%w: %v", ErrSingular, err)
			}
			inv[i][j] = q
		}
	}
	return inv, nil
}

// MulVec returns an enclosure of the matrix-vector product m · v.
func (m Matrix) MulVec(v [2]Complex) [2]Complex {
	return [2]Complex{
		m[0][0].Mul(v[0]).Add(m[0][1].Mul(v[1])),
		m[1][0].Mul(v[0]).Add(m[1][1].Mul(v[1])),
	}
}

// IsFinite reports whether every entry has finite endpoints.
func (m Matrix) IsFinite() bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !m[i][j].IsFinite() {
				return false
			}
		}
	}
	return true
}
