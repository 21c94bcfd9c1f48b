// Package bisect: options, counters and results of the scheduler.
package bisect

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
)

// Sentinel errors for Find.
var (
	// ErrNilOracle is returned when no map is supplied.
	ErrNilOracle = errors.New("bisect: oracle function is nil")

	// ErrInvalidDomain is returned when a domain endpoint is NaN or the
	// endpoints of any constituent interval are out of order.
	ErrInvalidDomain = errors.New("bisect: invalid search domain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bisect: invalid option supplied")
)

// Unbounded disables the step cap.
const Unbounded = -1

// StepStats are the transient counters of one BFS level, reported through
// WithOnStep at each rotation and then reset.
type StepStats struct {
	// Step is the zero-based level index.
	Step int
	// Done counts boxes resolved terminally this level (certified or
	// discarded).
	Done int
	// Left counts boxes pushed to the next level.
	Left int
	// Failed counts boxes the enclosure machinery could not decide on.
	Failed int
	// DiscardedEnclosure counts range-test discards.
	DiscardedEnclosure int
	// DiscardedNewton counts Newton-test discards.
	DiscardedNewton int
	// Zeros counts certified zeros found this level.
	Zeros int
}

// Result is the outcome of a Find run.
type Result struct {
	// Zeros are the certified single-zero enclosures, in emission order.
	Zeros []box.Box
	// Residual are the boxes still undecided when the run stopped.
	Residual []box.Box
	// Steps is the index of the last level processed.
	Steps int
	// Bisections counts splits performed across the whole run.
	Bisections int
	// Failed counts boxes dropped because the enclosure machinery failed.
	Failed int
	// StepLimited reports whether the step cap ended the run with work left.
	StepLimited bool
}

// ZerosFound returns the number of certified zeros.
func (r *Result) ZerosFound() int { return len(r.Zeros) }

// Fraction approximates the portion of the original domain still undecided:
// parts left · 2^(−steps−1).
func (r *Result) Fraction() float64 {
	return float64(len(r.Residual)) * math.Pow(2, float64(-r.Steps-1))
}

// Options configures Find.
type Options struct {
	// Workers is the number of concurrent classification goroutines.
	Workers int
	// MaxSteps caps the number of BFS levels; Unbounded (−1) disables it.
	MaxSteps int
	// Parameter is the opaque scalar interval threaded to the oracle.
	Parameter interval.Interval
	// Ctx allows cancellation between classifications.
	Ctx context.Context
	// MaxIterations caps the Newton refinement loop per box.
	MaxIterations int
	// SingularityFloor is the Jacobian determinant floor.
	SingularityFloor float64
	// OnZero is invoked for each certified zero, under the scheduler lock,
	// so emissions never interleave.
	OnZero func(box.Box)
	// OnStep is invoked once per level rotation with that level's counters.
	OnStep func(StepStats)

	// err records the first invalid option.
	err error
}

// Option configures Find via functional arguments.
type Option func(*Options)

// DefaultOptions returns the scheduler defaults: one worker per hardware
// thread, no step cap, the point parameter [0, 0], a background context and
// the verifier defaults.
func DefaultOptions() Options {
	return Options{
		Workers:          runtime.GOMAXPROCS(0),
		MaxSteps:         Unbounded,
		Parameter:        interval.Point(0),
		Ctx:              context.Background(),
		MaxIterations:    10,
		SingularityFloor: box.SingularityFloor,
	}
}

// WithWorkers sets the worker count (must be ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxSteps caps the number of BFS levels; Unbounded (−1) disables the cap.
func WithMaxSteps(s int) Option {
	return func(o *Options) {
		if s < Unbounded {
			o.err = fmt.Errorf("%w: max steps must be ≥ −1, got %d", ErrOptionViolation, s)
			return
		}
		o.MaxSteps = s
	}
}

// WithParameter sets the scalar parameter interval passed to the oracle.
func WithParameter(p interval.Interval) Option {
	return func(o *Options) {
		if p.Lo > p.Hi {
			o.err = fmt.Errorf("%w: parameter endpoints out of order", ErrOptionViolation)
			return
		}
		o.Parameter = p
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations caps the Newton refinement loop per box (must be ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: iterations must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSingularityFloor overrides the Jacobian determinant floor (must be > 0).
func WithSingularityFloor(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: singularity floor must be positive", ErrOptionViolation)
			return
		}
		o.SingularityFloor = eps
	}
}

// WithOnZero registers a hook invoked for every certified zero.
func WithOnZero(fn func(box.Box)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnZero = fn
		}
	}
}

// WithOnStep registers a hook invoked at every level rotation.
func WithOnStep(fn func(StepStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
