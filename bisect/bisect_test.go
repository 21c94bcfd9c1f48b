package bisect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holozero/holozero/bisect"
	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/oracle"
	"github.com/holozero/holozero/taylor"
)

// mk builds a box from eight endpoints in CLI order.
func mk(v [8]float64) box.Box {
	return box.New(
		box.NewComplex(interval.Interval{Lo: v[0], Hi: v[1]}, interval.Interval{Lo: v[2], Hi: v[3]}),
		box.NewComplex(interval.Interval{Lo: v[4], Hi: v[5]}, interval.Interval{Lo: v[6], Hi: v[7]}),
	)
}

// twoRoots is F(z1, z2) = (z1² − 1, z2) with zeros at (±1, 0).
func twoRoots(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	return z1.Sqr().SubFloat(1), z2, nil
}

// noRoots is F(z1, z2) = (z1² + 4, z2² + 4), zero-free on the unit box.
func noRoots(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	return z1.Sqr().AddFloat(4), z2.Sqr().AddFloat(4), nil
}

// flat is F(z1, z2) = (z1·z2, z1·z2): its determinant enclosure straddles
// zero everywhere, so no box is ever decided.
func flat(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	prod := z1.Mul(z2)
	return prod, prod, nil
}

// reciprocal fails on any box whose z1 rectangle contains the origin.
func reciprocal(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	f1, err := taylor.FromFloat(1).Div(z1)
	if err != nil {
		return taylor.Jet{}, taylor.Jet{}, err
	}
	return f1, z2, nil
}

// twoRootsDomain keeps the roots strictly interior and off every bisection
// midpoint.
var twoRootsDomain = [8]float64{-2.3, 2.2, -0.11, 0.1, -0.51, 0.5, -0.1, 0.09}

func TestFind_Identity(t *testing.T) {
	res, err := bisect.Find(oracle.Identity, mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1}),
		bisect.WithWorkers(1))
	require.NoError(t, err)

	assert.Equal(t, 1, res.ZerosFound())
	assert.Empty(t, res.Residual)
	assert.Equal(t, 0, res.Bisections)
	assert.False(t, res.StepLimited)
	assert.True(t, res.Zeros[0].Z1.ContainsZero())
	assert.True(t, res.Zeros[0].Z2.ContainsZero())
}

func TestFind_TwoRoots(t *testing.T) {
	domain := mk(twoRootsDomain)
	res, err := bisect.Find(twoRoots, domain, bisect.WithMaxSteps(60))
	require.NoError(t, err)

	require.Equal(t, 2, res.ZerosFound(), "exactly two certified zeros expected")
	assert.Positive(t, res.Bisections)

	sawPlus, sawMinus := false, false
	for _, z := range res.Zeros {
		assert.True(t, z.In(domain), "certified zeros must stay inside the input domain")
		assert.True(t, z.Z1.Im.Contains(0))
		assert.True(t, z.Z2.ContainsZero())
		switch {
		case z.Z1.Re.Contains(1):
			sawPlus = true
		case z.Z1.Re.Contains(-1):
			sawMinus = true
		}
	}
	assert.True(t, sawPlus, "root near +1 not certified")
	assert.True(t, sawMinus, "root near -1 not certified")
}

func TestFind_WorkerCountInvariance(t *testing.T) {
	domain := mk(twoRootsDomain)
	single, err := bisect.Find(twoRoots, domain, bisect.WithMaxSteps(60), bisect.WithWorkers(1))
	require.NoError(t, err)
	many, err := bisect.Find(twoRoots, domain, bisect.WithMaxSteps(60), bisect.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, single.ZerosFound(), many.ZerosFound())
	assert.Equal(t, single.Bisections, many.Bisections)
	assert.Equal(t, len(single.Residual), len(many.Residual))
}

func TestFind_NoZeros(t *testing.T) {
	var stats []bisect.StepStats
	res, err := bisect.Find(noRoots, mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1}),
		bisect.WithOnStep(func(s bisect.StepStats) { stats = append(stats, s) }))
	require.NoError(t, err)

	assert.Zero(t, res.ZerosFound())
	assert.Empty(t, res.Residual)
	assert.Zero(t, res.Bisections)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].DiscardedEnclosure, "the initial box must fall to the range test")
}

func TestFind_StepCap(t *testing.T) {
	res, err := bisect.Find(flat, mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1}),
		bisect.WithMaxSteps(3))
	require.NoError(t, err)

	assert.True(t, res.StepLimited)
	assert.Equal(t, 3, res.Steps)
	// Levels 0..2 bisect (1+2+4); level 3 surfaces its eight boxes unsplit.
	assert.Equal(t, 7, res.Bisections)
	assert.Len(t, res.Residual, 8)
	assert.InDelta(t, 0.5, res.Fraction(), 1e-12)
}

func TestFind_MaxStepsZero(t *testing.T) {
	domain := mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1})
	res, err := bisect.Find(flat, domain, bisect.WithMaxSteps(0))
	require.NoError(t, err)

	// No bisections may happen at step cap zero: the undecided initial box
	// is surfaced whole.
	assert.Zero(t, res.Bisections)
	require.Len(t, res.Residual, 1)
	assert.Equal(t, domain, res.Residual[0])
	assert.True(t, res.StepLimited)
}

func TestFind_ParameterPlumbing(t *testing.T) {
	domain := mk([8]float64{0.1, 0.45, -0.12, 0.1, -0.13, 0.1, -0.1, 0.09})

	res, err := bisect.Find(oracle.Shifted, domain,
		bisect.WithParameter(interval.Point(0.3)))
	require.NoError(t, err)
	require.Equal(t, 1, res.ZerosFound())
	assert.True(t, res.Zeros[0].Z1.Re.Contains(0.3))

	res, err = bisect.Find(oracle.Shifted, domain,
		bisect.WithParameter(interval.Point(5)))
	require.NoError(t, err)
	assert.Zero(t, res.ZerosFound())
	assert.Empty(t, res.Residual)
}

func TestFind_FailureCounting(t *testing.T) {
	res, err := bisect.Find(reciprocal, mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1}))
	require.NoError(t, err)

	// The initial box fails terminally: no bisection, no emission.
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, res.ZerosFound())
	assert.Zero(t, res.Bisections)
	assert.Empty(t, res.Residual)
}

func TestFind_ZeroHookUnderLock(t *testing.T) {
	var emitted []box.Box
	res, err := bisect.Find(oracle.Identity, mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1}),
		bisect.WithOnZero(func(b box.Box) { emitted = append(emitted, b) }))
	require.NoError(t, err)
	require.Len(t, emitted, res.ZerosFound())
	assert.Equal(t, res.Zeros[0], emitted[0])
}

func TestFind_InputValidation(t *testing.T) {
	domain := mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1})

	_, err := bisect.Find(nil, domain)
	assert.ErrorIs(t, err, bisect.ErrNilOracle)

	bad := domain
	bad.Z1.Re = interval.Interval{Lo: 2, Hi: -2}
	_, err = bisect.Find(oracle.Identity, bad)
	assert.ErrorIs(t, err, bisect.ErrInvalidDomain)

	_, err = bisect.Find(oracle.Identity, domain, bisect.WithWorkers(0))
	assert.ErrorIs(t, err, bisect.ErrOptionViolation)

	_, err = bisect.Find(oracle.Identity, domain, bisect.WithMaxSteps(-2))
	assert.ErrorIs(t, err, bisect.ErrOptionViolation)

	_, err = bisect.Find(oracle.Identity, domain, bisect.WithMaxIterations(0))
	assert.ErrorIs(t, err, bisect.ErrOptionViolation)

	_, err = bisect.Find(oracle.Identity, domain, bisect.WithSingularityFloor(-1))
	assert.ErrorIs(t, err, bisect.ErrOptionViolation)
}

func TestFind_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bisect.Find(flat, mk([8]float64{-1, 1, -1, 1, -1, 1, -1, 1}),
		bisect.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Residual, "cancellation must surface unprocessed work")
}
