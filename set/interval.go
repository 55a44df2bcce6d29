package set

import (
	"fmt"
	"math"
	"strings"
)

// IntervalProd is an axis-aligned interval product
// [min₁, max₁] × … × [min_d, max_d]. It satisfies Product and is the
// only domain kind supporting vectorized function evaluation.
//
// IntervalProd is immutable after construction; bound slices are copied in
// and never exposed for mutation.
type IntervalProd struct {
	min []float64
	max []float64
}

// NewIntervalProd builds an interval product from per-axis lower and upper
// bounds. Both slices must be non-empty, of equal length, finite, and
// satisfy min[i] <= max[i] for every axis.
// Complexity: O(d).
func NewIntervalProd(min, max []float64) (*IntervalProd, error) {
	if len(min) != len(max) {
		return nil, fmt.Errorf("len(min)=%d, len(max)=%d: %w", len(min), len(max), ErrDimMismatch)
	}
	if len(min) == 0 {
		return nil, ErrEmptyProd
	}
	for i := range min {
		if !isFinite(min[i]) || !isFinite(max[i]) {
			return nil, fmt.Errorf("axis %d: %w", i, ErrNaNInf)
		}
		if min[i] > max[i] {
			return nil, fmt.Errorf("axis %d: [%g, %g]: %w", i, min[i], max[i], ErrBadBound)
		}
	}

	ip := &IntervalProd{
		min: append([]float64(nil), min...),
		max: append([]float64(nil), max...),
	}

	return ip, nil
}

// Interval is the 1-D convenience constructor for [a, b].
func Interval(a, b float64) (*IntervalProd, error) {
	return NewIntervalProd([]float64{a}, []float64{b})
}

// Dim returns the number of axes.
// Complexity: O(1).
func (ip *IntervalProd) Dim() int { return len(ip.min) }

// Min returns the per-axis lower bounds. Callers must not mutate it.
func (ip *IntervalProd) Min() []float64 { return ip.min }

// Max returns the per-axis upper bounds. Callers must not mutate it.
func (ip *IntervalProd) Max() []float64 { return ip.max }

// Contains reports whether x lies inside the box. Accepted point kinds:
// a bare real scalar (only when Dim() == 1), or a []float64 / []int of
// length Dim(). NaN coordinates are never contained.
// Complexity: O(d).
func (ip *IntervalProd) Contains(x any) bool {
	p, ok := AsPoint(x)
	if !ok || len(p) != ip.Dim() {
		return false
	}
	for i, c := range p {
		if math.IsNaN(c) || c < ip.min[i] || c > ip.max[i] {
			return false
		}
	}

	return true
}

// Equals reports whether other is an IntervalProd with identical per-axis
// bounds.
// Complexity: O(d).
func (ip *IntervalProd) Equals(other Set) bool {
	op, ok := other.(*IntervalProd)
	if !ok {
		return false
	}
	if ip == op {
		return true
	}
	if op.Dim() != ip.Dim() {
		return false
	}
	for i := range ip.min {
		if ip.min[i] != op.min[i] || ip.max[i] != op.max[i] {
			return false
		}
	}

	return true
}

// String renders "Interval(a, b)" for 1-D products and
// "IntervalProd([a1, b1] x [a2, b2] x ...)" otherwise.
func (ip *IntervalProd) String() string {
	if ip.Dim() == 1 {
		return fmt.Sprintf("Interval(%g, %g)", ip.min[0], ip.max[0])
	}

	axes := make([]string, ip.Dim())
	for i := range ip.min {
		axes[i] = fmt.Sprintf("[%g, %g]", ip.min[i], ip.max[i])
	}

	return "IntervalProd(" + strings.Join(axes, " x ") + ")"
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
