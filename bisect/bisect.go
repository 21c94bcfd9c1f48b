// Package bisect: the level-synchronous parallel scheduler.
package bisect

import (
	"math"
	"sync"

	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/newton"
	"github.com/holozero/holozero/oracle"
)

// level holds the shared state of one BFS frontier. Workers synchronise on
// mu alone: pops from current, pushes to next, counter updates and zero
// emissions all happen inside it, while classification itself runs outside.
type level struct {
	mu        sync.Mutex
	current   []box.Box
	next      []box.Box
	stats     StepStats
	cancelled bool
}

// Find locates all zeros of f inside domain, returning certified enclosures
// and the residual boxes left undecided when the run stopped.
//
// On context cancellation the zeros found so far are returned alongside the
// context's error. Every other error is an input or option violation
// detected before any scheduling happens.
func Find(f oracle.Func, domain box.Box, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilOracle
	}
	if !validDomain(domain) {
		return nil, ErrInvalidDomain
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	nopts := []newton.Option{
		newton.WithMaxIterations(o.MaxIterations),
		newton.WithSingularityFloor(o.SingularityFloor),
	}

	res := &Result{}
	lv := &level{current: []box.Box{domain}}

	for step := 0; ; step++ {
		lastLevel := o.MaxSteps != Unbounded && step == o.MaxSteps
		lv.stats = StepStats{Step: step}

		// Drain the frontier with Workers goroutines; the join below is the
		// level barrier of the search.
		var wg sync.WaitGroup
		for w := 0; w < o.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				drain(f, lv, &o, nopts, res, lastLevel)
			}()
		}
		wg.Wait()

		if lv.cancelled {
			res.Steps = step
			res.Residual = append(lv.next, lv.current...)
			return res, o.Ctx.Err()
		}

		// Single-threaded rotation: report, decide, swap, reset.
		if o.OnStep != nil {
			o.OnStep(lv.stats)
		}
		if lastLevel || len(lv.next) == 0 {
			res.Steps = step
			res.Residual = lv.next
			res.StepLimited = lastLevel && len(lv.next) > 0
			return res, nil
		}
		lv.current, lv.next = lv.next, nil
	}
}

// drain is the worker loop: pop one box, classify it outside the lock, then
// record the outcome under the lock and try to pop again until the current
// list is empty or the context is cancelled.
func drain(f oracle.Func, lv *level, o *Options, nopts []newton.Option, res *Result, lastLevel bool) {
	for {
		lv.mu.Lock()
		if lv.cancelled || len(lv.current) == 0 {
			lv.mu.Unlock()
			return
		}
		b := lv.current[0]
		lv.current = lv.current[1:]
		lv.mu.Unlock()

		select {
		case <-o.Ctx.Done():
			lv.mu.Lock()
			lv.cancelled = true
			// Put the box back so cancellation loses no work silently.
			lv.current = append(lv.current, b)
			lv.mu.Unlock()
			return
		default:
		}

		outcome, rb := newton.Classify(f, b, o.Parameter, nopts...)

		lv.mu.Lock()
		switch outcome {
		case newton.CertifiedZero:
			res.Zeros = append(res.Zeros, rb)
			lv.stats.Zeros++
			lv.stats.Done++
			if o.OnZero != nil {
				o.OnZero(rb)
			}
		case newton.DiscardedByEnclosure:
			lv.stats.DiscardedEnclosure++
			lv.stats.Done++
		case newton.DiscardedByNewton:
			lv.stats.DiscardedNewton++
			lv.stats.Done++
		case newton.Failed:
			// Failures are counted globally and the box is dropped:
			// bisection cannot help a box the enclosure method cannot
			// speak about at all.
			lv.stats.Failed++
			res.Failed++
		case newton.Undecided:
			if lastLevel {
				// The cap ends the search after this level; surface the box
				// unsplit as residual instead of manufacturing children that
				// will never be examined.
				lv.next = append(lv.next, b)
				lv.stats.Left++
			} else {
				lower, upper := b.Split()
				lv.next = append(lv.next, lower, upper)
				lv.stats.Left += 2
				res.Bisections++
			}
		}
		lv.mu.Unlock()
	}
}

// validDomain rejects NaN endpoints and inverted intervals.
func validDomain(b box.Box) bool {
	for _, x := range []struct{ lo, hi float64 }{
		{b.Z1.Re.Lo, b.Z1.Re.Hi},
		{b.Z1.Im.Lo, b.Z1.Im.Hi},
		{b.Z2.Re.Lo, b.Z2.Re.Hi},
		{b.Z2.Im.Lo, b.Z2.Im.Hi},
	} {
		if math.IsNaN(x.lo) || math.IsNaN(x.hi) || x.lo > x.hi {
			return false
		}
	}
	return true
}
