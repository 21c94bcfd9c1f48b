// Package newton implements the interval Newton existence/uniqueness test
// and the per-box classification decision built on it.
//
// What
//
//   - Step computes the interval Newton operator
//     N(B) = mid(B) − J(B)⁻¹ · F(mid(B))
//     entirely in interval arithmetic.
//   - Validate iterates the operator: containment N(B) ⊆ B certifies exactly
//     one zero of F in B (Krawczyk containment); disjointness proves there is
//     none; otherwise the refinement B ← N(B) ∩ B continues up to an
//     iteration cap, contracting quadratically once certification holds.
//   - Classify orders the per-box decision: range test first (cheapest,
//     rejects the bulk of empty regions), then Jacobian non-singularity
//     (which justifies the Newton step), then Validate (the only step able
//     to prove existence).
//
// Why
//
//	A plain interval evaluation can only exclude zeros; the Newton operator
//	turns a contraction observation into a mathematical proof that a box
//	holds exactly one zero. The classifier is the single decision point the
//	scheduler consults for every box.
//
// Outcomes
//
//	CertifiedZero        — contracted box proven to hold exactly one zero.
//	DiscardedByEnclosure — F's range over the box omits zero.
//	DiscardedByNewton    — N(B) landed disjoint from B.
//	Failed               — the enclosure machinery could not speak about the
//	                       box (oracle error, singular Jacobian); terminal.
//	Undecided            — none of the above; the box must be bisected.
//
// Options follow the functional pattern: WithMaxIterations (default 10) and
// WithSingularityFloor tune the verifier; invalid values surface as
// ErrOptionViolation from the calling scheduler.
package newton
