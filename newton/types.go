// Package newton: outcome taxonomy, reports and verifier options.
package newton

import (
	"errors"

	"github.com/holozero/holozero/box"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("newton: invalid option supplied")

// DefaultMaxIterations caps the Validate refinement loop. Fewer iterations
// trade sharper enclosures for more bisections; more do the reverse.
// Correctness does not depend on the value.
const DefaultMaxIterations = 10

// Status is the verdict of a Validate run.
type Status int

const (
	// Unresolved: the iteration cap expired without proof either way.
	Unresolved Status = iota
	// Certified: containment held; the report's box holds exactly one zero.
	Certified
	// Excluded: the operator landed disjoint; the box holds no zero.
	Excluded
	// Aborted: an enclosure computation failed mid-iteration.
	Aborted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Certified:
		return "certified"
	case Excluded:
		return "excluded"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Report is the result of Validate: the (possibly contracted) box and the
// verdict reached.
type Report struct {
	Box    box.Box
	Status Status
}

// Outcome classifies a box terminally; only Undecided yields children.
type Outcome int

const (
	// Undecided: the box must be bisected and re-examined.
	Undecided Outcome = iota
	// CertifiedZero: the box (contracted) provably holds exactly one zero.
	CertifiedZero
	// DiscardedByEnclosure: F's range over the box omits zero.
	DiscardedByEnclosure
	// DiscardedByNewton: the Newton operator proved the box zero-free.
	DiscardedByNewton
	// Failed: the enclosure machinery cannot speak about this box.
	Failed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case CertifiedZero:
		return "certified-zero"
	case DiscardedByEnclosure:
		return "discarded-by-enclosure"
	case DiscardedByNewton:
		return "discarded-by-newton"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options tunes the verifier.
type Options struct {
	// MaxIterations caps the Validate refinement loop.
	MaxIterations int

	// SingularityFloor is the minimum admissible inf |det J|; non-positive
	// selects box.SingularityFloor.
	SingularityFloor float64

	// err records the first invalid option for surfacing by the caller.
	err error
}

// Option configures the verifier via functional arguments.
type Option func(*Options)

// DefaultOptions returns the verifier defaults: a 10-iteration cap and the
// package-level singularity floor.
func DefaultOptions() Options {
	return Options{
		MaxIterations:    DefaultMaxIterations,
		SingularityFloor: box.SingularityFloor,
	}
}

// Err reports the first option violation recorded, if any.
func (o Options) Err() error { return o.err }

// WithMaxIterations overrides the Validate iteration cap (must be ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxIterations = n
	}
}

// WithSingularityFloor overrides the determinant floor (must be > 0).
func WithSingularityFloor(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.SingularityFloor = eps
	}
}
