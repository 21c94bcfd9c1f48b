// Package oracle defines the pluggable enclosure oracle for a holomorphic
// map F: ℂ² → ℂ², the drivers that evaluate it on boxes, and a set of
// built-in example maps.
//
// What
//
//   - Func — the oracle contract: a function over first-order Taylor jets
//     that yields rigorous enclosures of (f1, f2) and, through the jets'
//     derivative slots, of the partial derivatives ∂f_i/∂z_k.
//   - Drivers: Range (F over a box), Jacobian (2×2 enclosure matrix, one
//     seeded evaluation per column), AtMid (F at the midpoint box).
//   - Built-in maps: Identity, Poly, Exponential, HighDegree, Shifted, and
//     the saddle-point systems HHG and ATI as first-class config structs.
//
// Contract
//
//	For every point (a, b) in the argument rectangles with a nil error, the
//	true value F(a, b) lies in the returned value enclosures and — when z_k
//	was seeded via taylor.Variable — ∂F(a, b)/∂z_k lies in the derivative
//	enclosures. The scalar parameter p is threaded through opaquely. Any
//	failure inside the composition graph (division by a rectangle containing
//	zero, overflow) must surface as an error, never as a panic: callers fold
//	every oracle error into a "failed" classification.
//
// Implementations must be pure and safe for concurrent use; the scheduler
// calls the oracle from many goroutines with no external synchronisation.
package oracle
