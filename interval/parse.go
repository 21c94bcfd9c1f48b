// Package interval: decimal string parsing with outward rounding.
package interval

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Parse converts a decimal literal to the tightest Interval that provably
// contains its exact value. The literal is compared against its nearest
// float64 in arbitrary precision; when the conversion was inexact the
// affected endpoint is stepped outward by one ulp.
func Parse(s string) (Interval, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	// Float64 reports a range error alongside the saturated ±Inf result;
	// saturation is still a usable half-infinite enclosure.
	f, ferr := d.Float64()
	if math.IsInf(f, 1) {
		return Interval{Lo: math.MaxFloat64, Hi: math.Inf(1)}, nil
	}
	if math.IsInf(f, -1) {
		return Interval{Lo: math.Inf(-1), Hi: -math.MaxFloat64}, nil
	}
	if ferr != nil || math.IsNaN(f) {
		return Interval{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	// Compare against the exact binary value of f: its shortest decimal form
	// would equal the literal whenever f is the nearest float64, so the full
	// expansion (at most 767 significant digits) is used instead.
	var back apd.Decimal
	if _, _, err := back.SetString(strconv.FormatFloat(f, 'e', 767, 64)); err != nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	lo, hi := f, f
	switch back.Cmp(d) {
	case 1: // rounded up: true value is below f
		lo = down(f)
	case -1: // rounded down: true value is above f
		hi = up(f)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// FromStrings builds the interval [lo, hi] from two decimal literals,
// rounding lo downward and hi upward so the decimal interval is enclosed.
// Returns ErrInvalid when the resulting endpoints are out of order.
func FromStrings(lo, hi string) (Interval, error) {
	l, err := Parse(lo)
	if err != nil {
		return Interval{}, err
	}
	h, err := Parse(hi)
	if err != nil {
		return Interval{}, err
	}
	return New(l.Lo, h.Hi)
}
