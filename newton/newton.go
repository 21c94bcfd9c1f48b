// Package newton: the interval Newton operator and the Validate loop.
package newton

import (
	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/oracle"
)

// Step computes the interval Newton operator
//
//	N(B) = mid(B) − J(B)⁻¹ · F(mid(B))
//
// with the Jacobian enclosed over all of B and F evaluated at the midpoint.
// An oracle failure or a numerically singular Jacobian surfaces as an error;
// the caller treats the box as undecidable by this method.
func Step(f oracle.Func, b box.Box, p interval.Interval, floor float64) (box.Box, error) {
	mid := b.Mid()

	fm, err := oracle.AtMid(f, b, p)
	if err != nil {
		return box.Box{}, err
	}
	jac, err := oracle.Jacobian(f, b, p)
	if err != nil {
		return box.Box{}, err
	}
	inv, err := jac.Inverse(floor)
	if err != nil {
		return box.Box{}, err
	}

	delta := inv.MulVec(fm)
	return box.Box{
		Z1: mid.Z1.Sub(delta[0]),
		Z2: mid.Z2.Sub(delta[1]),
	}, nil
}

// Validate iterates the Newton operator on b up to the configured cap.
//
// By the interval Newton theorem, N(B) ⊆ B proves that B holds exactly one
// zero of F; once observed, iteration continues only to sharpen the
// enclosure. N(B) disjoint from B (or an empty refinement intersection)
// proves B zero-free and returns immediately. A failed enclosure computation
// aborts with the box as it stood, unless containment was already observed,
// in which case that box is reported Certified. Anything else after the cap
// is reported Unresolved.
func Validate(f oracle.Func, b box.Box, p interval.Interval, opts ...Option) Report {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Report{Box: b, Status: Aborted}
	}
	return validate(f, b, p, o)
}

func validate(f oracle.Func, b box.Box, p interval.Interval, o Options) Report {
	certified := false

	for i := 0; i < o.MaxIterations; i++ {
		next, err := Step(f, b, p, o.SingularityFloor)
		if err != nil {
			if certified {
				// Certification already holds for the current box; a later
				// sharpening failure cannot revoke it.
				return Report{Box: b, Status: Certified}
			}
			return Report{Box: b, Status: Aborted}
		}

		if next.In(b) {
			certified = true
		} else if next.Disjoint(b) {
			return Report{Box: b, Status: Excluded}
		}

		refined, ok := b.Intersect(next)
		if !ok {
			// Empty overlap: same proof of absence as disjointness, unless
			// containment was already established on an earlier iterate.
			if certified {
				return Report{Box: b, Status: Certified}
			}
			return Report{Box: b, Status: Excluded}
		}
		b = refined
	}

	if certified {
		return Report{Box: b, Status: Certified}
	}
	return Report{Box: b, Status: Unresolved}
}
