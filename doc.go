// Package holozero finds, with mathematical certainty, all zeros of a
// holomorphic map F: ℂ² → ℂ² inside a bounded box.
//
// 🔍 What is holozero?
//
//	A verified root-finder built from interval arithmetic: every reported
//	zero comes with a small box proved — not estimated — to contain exactly
//	one zero of F, and every discarded region comes with a proof that it
//	contains none.
//
// How it works
//
//   - F is evaluated on boxes through first-order complex-Taylor arithmetic,
//     giving rigorous enclosures of both the map and its Jacobian.
//   - The interval Newton operator N(B) = mid(B) − J(B)⁻¹ F(mid(B)) turns a
//     containment observation N(B) ⊆ B into an existence and uniqueness
//     proof, and disjointness into a proof of absence.
//   - Undecided boxes are bisected along their widest edge and re-examined
//     by a parallel, level-synchronous breadth-first scheduler until the
//     frontier empties or a step cap fires.
//
// Everything is organised as small leaf packages:
//
//	interval/ — real interval arithmetic with outward rounding + decimal parsing
//	box/      — complex intervals, boxes in ℂ², 2×2 interval matrices
//	taylor/   — forward-mode AD jets over complex intervals
//	oracle/   — the pluggable map contract + built-in example systems
//	newton/   — the interval Newton verifier and per-box classifier
//	bisect/   — the parallel branch-and-bound scheduler
//	cmd/      — the holozero command-line front end
//
// Quick start:
//
//	u := interval.Interval{Lo: -1, Hi: 1}
//	domain := box.New(box.NewComplex(u, u), box.NewComplex(u, u))
//	res, err := bisect.Find(oracle.Identity, domain)
//
// See DESIGN.md for the architecture notes.
package holozero
