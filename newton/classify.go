// Package newton: the per-box classification decision.
package newton

import (
	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/oracle"
)

// Classify decides the fate of one box. The returned box is the contracted
// enclosure for CertifiedZero and the input box otherwise.
//
// The tests run cheapest-first:
//
//  1. Range test — F(B) omitting zero in either component discards the box;
//     an oracle failure marks it Failed.
//  2. Jacobian test — a determinant enclosure containing zero leaves the
//     Newton step unjustified, so the box stays Undecided (to be bisected).
//  3. Newton verification — the only step able to prove existence.
func Classify(f oracle.Func, b box.Box, p interval.Interval, opts ...Option) (Outcome, box.Box) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Failed, b
	}

	rng, err := oracle.Range(f, b, p)
	if err != nil {
		return Failed, b
	}
	if !rng[0].ContainsZero() || !rng[1].ContainsZero() {
		return DiscardedByEnclosure, b
	}

	jac, err := oracle.Jacobian(f, b, p)
	if err != nil {
		return Failed, b
	}
	if jac.Det().ContainsZero() {
		return Undecided, b
	}

	rep := validate(f, b, p, o)
	switch rep.Status {
	case Certified:
		return CertifiedZero, rep.Box
	case Excluded:
		return DiscardedByNewton, b
	case Aborted:
		return Failed, b
	default:
		return Undecided, b
	}
}
