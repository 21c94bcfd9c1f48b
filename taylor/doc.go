// Package taylor implements first-order complex-Taylor arithmetic over
// rectangles in ℂ: forward-mode automatic differentiation in interval
// arithmetic.
//
// What
//
//	A Jet carries a pair of complex interval enclosures (Val, Der) for the
//	value and first derivative of a holomorphic expression with respect to a
//	chosen seed variable. Building an expression from Variable and Constant
//	leaves and the lifted operations (Add, Sub, Mul, Div, Sqr, Sin, Cos, Exp,
//	Scale, ...) yields, in one pass, rigorous enclosures of both F and ∂F on
//	a whole rectangle.
//
// Why
//
//	The interval Newton operator needs the Jacobian of F enclosed over a box.
//	Seeding z_k as the Variable and the other component as a Constant makes
//	the Der field of the outputs exactly the k-th Jacobian column, with the
//	chain rule applied in interval arithmetic throughout.
//
// Failure model
//
//	Division by a rectangle containing zero returns ErrDomain, and Intersect
//	returns ErrEmpty when two enclosures share no point. All other
//	operations are total; overflow saturates to infinite endpoints, which the
//	oracle drivers reject with ErrOverflow when they inspect the finished
//	enclosure. No operation panics.
package taylor
