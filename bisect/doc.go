// Package bisect runs the parallel branch-and-bound search for the zeros of
// a holomorphic map ℂ² → ℂ² over a box, combining interval evaluation,
// interval Newton certification and bisection under a level-synchronous
// breadth-first scheduler.
//
// What
//
//   - Find drains a work list of boxes level by level: every box is
//     classified (newton.Classify); certified zeros are emitted through a
//     hook, discards are dropped, failures are counted, and undecided boxes
//     are bisected into the next level's list.
//   - Two lists — current and next — live behind a single mutex. Workers pop
//     one box at a time, classify outside the lock, and push children back
//     under it. A level ends when current drains; all workers join, and a
//     single rotation swaps the lists, reports per-level stats and resets
//     the transient counters.
//   - The step cap bounds the search depth: when it fires, the surviving
//     undecided boxes are returned as the residual instead of being split
//     further.
//
// Why breadth-first
//
//	Level-synchronous traversal bounds memory by the widest frontier, makes
//	"fraction of the domain still undecided" meaningful per level, gives the
//	step cap clean semantics, and parallelises embarrassingly: boxes within
//	a level are independent, so synchronisation cost amortises across the
//	whole frontier.
//
// Determinism
//
//	No ordering is promised between boxes within a level, so the emission
//	order of certified zeros is unspecified. The set of certified zeros is
//	independent of the worker count. With a single worker the traversal is
//	fully deterministic: boxes are popped in FIFO order and each split
//	pushes its lower half before its upper half.
//
// Usage
//
//	res, err := bisect.Find(oracle.Identity, domain,
//	    bisect.WithWorkers(8),
//	    bisect.WithMaxSteps(40),
//	    bisect.WithOnZero(func(b box.Box) { fmt.Println(b) }),
//	)
//
// Errors
//
//   - ErrNilOracle       — no map supplied.
//   - ErrInvalidDomain   — a domain endpoint is NaN or out of order.
//   - ErrOptionViolation — an invalid Option value.
//   - ctx.Err()          — the context was cancelled; partial results are
//     returned alongside the error.
package bisect
