package box

import "errors"

var (
	// ErrSingular is returned by Inverse when the determinant enclosure
	// cannot be bounded away from zero.
	ErrSingular = errors.New("box: matrix numerically singular")

	// ErrDivByZero is returned by Div when the divisor rectangle contains zero.
	ErrDivByZero = errors.New("box: division by rectangle containing zero")
)

// SingularityFloor is the default lower bound demanded of inf |det M| before
// a 2×2 inverse is attempted. Below it the adjugate formula would amplify
// the interval width catastrophically, so Inverse reports ErrSingular
// instead of returning a gigantic enclosure.
const SingularityFloor = 1e-15
