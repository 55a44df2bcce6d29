package fspace

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/katalvlaran/fnspace/set"
)

// Element is a member of a FunctionSet or FunctionSpace: a wrapped callable
// together with its owning space. Calling an element validates the inputs
// against the space's domain, invokes the wrapped implementation, and
// validates the output against the range.
//
// Composite elements produced by Lincomb and Multiply are indistinguishable
// from primitive ones: calling them transparently re-invokes the captured
// constituent callables.
type Element struct {
	space  Space
	call   Func
	apply  ApplyFunc
	linear bool
}

// Space returns the owning space. Shared read-only; elements never own it.
func (e *Element) Space() Space { return e.space }

// Domain returns the owning space's domain.
func (e *Element) Domain() set.Set { return e.space.Domain() }

// Range returns the owning space's range.
func (e *Element) Range() set.Set { return e.space.Range() }

// IsLinear reports whether the wrapped callable was declared linear.
func (e *Element) IsLinear() bool { return e.linear }

// Call evaluates the element. The argument list is disambiguated in a fixed
// order, first match wins:
//
//  1. Tuple form — the arguments, read as one point, lie in the domain:
//     f(0.3, 0.7) on a 2-D box.
//  2. Vector form — the single argument alone lies in the domain:
//     f([]float64{0.3, 0.7}).
//  3. Vectorized form — only for domains with the set.Product capability:
//     a point-list [][]float64 of shape (N, d), or exactly d coordinate
//     slices (meshgrid). The batch is validated by bounding box only: the
//     elementwise min and max points must lie in the domain. Points between
//     the extrema are not individually checked; for non-convex domains this
//     is a documented approximation.
//
// The wrapped implementation's result must be a range member, or array-like
// with its first flattened entry a range member (a spot check, not a full
// elementwise validation). Errors from the wrapped implementation propagate
// unchanged.
// Complexity: O(total input size) validation plus the callable itself.
func (e *Element) Call(args ...any) (any, error) {
	if e.call == nil {
		return nil, ErrNoCallImpl
	}
	if err := e.checkDomain(args); err != nil {
		return nil, err
	}

	out, err := e.call(args...)
	if err != nil {
		return nil, err
	}
	if err = e.checkRange(out); err != nil {
		return nil, err
	}

	return out, nil
}

// Apply evaluates the element in place, writing the result into out, which
// must be array-like ([]float64, []complex128 or their 2-D forms); anything
// else fails with ErrInPlace. Elements without an in-place implementation
// fall back to Call followed by a copy into out.
func (e *Element) Apply(out any, args ...any) error {
	if !isArrayLike(out) {
		return fmt.Errorf("%T: %w", out, ErrInPlace)
	}
	if err := e.checkDomain(args); err != nil {
		return err
	}
	if err := applyWith(e.apply, e.call, out, args); err != nil {
		return err
	}

	return e.checkRange(out)
}

// Equals reports whether other is an element of an equal space wrapping the
// identical underlying implementations.
//
// Identity is by code pointer: two elements wrapping the very same function
// value are equal, and so are two closures instantiated from the same
// function literal. Wrapping is idempotent under this contract, since
// Element() reuses the underlying implementation instead of stacking a
// layer. Behavioral (deep value) equality is deliberately not attempted.
func (e *Element) Equals(other *Element) bool {
	if e == other {
		return true
	}
	if other == nil {
		return false
	}
	if !e.space.Equals(other.space) {
		return false
	}

	return funcPointer(e.call) == funcPointer(other.call) &&
		funcPointer(e.apply) == funcPointer(other.apply)
}

// String shows the owning space and the wrapped implementation for
// debugging. Elements without an out-of-place implementation show their
// in-place one instead.
func (e *Element) String() string {
	if e.call != nil {
		return fmt.Sprintf("%v.Element(%s)", e.space, funcName(e.call))
	}

	return fmt.Sprintf("%v.Element(apply: %s)", e.space, funcName(e.apply))
}

// rebind atomically replaces the element's implementations as a whole.
// This is the only sanctioned mutation of an Element; it is performed
// exclusively by Lincomb and Multiply after capturing the previous
// implementations of every operand.
func (e *Element) rebind(call Func, apply ApplyFunc) {
	e.call, e.apply = call, apply
}

// checkDomain runs the dispatch protocol documented on Call and returns nil
// when args form a valid single point or batch for the domain.
func (e *Element) checkDomain(args []any) error {
	dom := e.space.Domain()

	// 1. Tuple form: the arguments read as one point.
	if pt, ok := argsAsPoint(args); ok && dom.Contains(pt) {
		return nil
	}
	// 2. Vector form: the single argument alone.
	if len(args) == 1 && dom.Contains(args[0]) {
		return nil
	}
	// 3. Vectorized forms need the extent capability.
	prod, ok := dom.(set.Product)
	if !ok {
		return fmt.Errorf("domain %v: %w", dom, ErrNoVectorization)
	}

	minPt, maxPt, err := batchBounds(prod.Dim(), args)
	if err != nil {
		return fmt.Errorf("domain %v: %w", dom, err)
	}
	// Bounding-box containment only; interior points are not checked.
	if !dom.Contains(minPt) || !dom.Contains(maxPt) {
		return fmt.Errorf("bounds [%v, %v] vs domain %v: %w", minPt, maxPt, dom, ErrOutOfDomain)
	}

	return nil
}

// checkRange accepts out if it is a range member, or array-like whose first
// flattened entry is one.
func (e *Element) checkRange(out any) error {
	ran := e.space.Range()
	if ran.Contains(out) {
		return nil
	}
	if first, ok := firstEntry(out); ok && ran.Contains(first) {
		return nil
	}

	return fmt.Errorf("result %v vs range %v: %w", out, ran, ErrBadRange)
}

// argsAsPoint reads the argument list as the coordinates of one point:
// every argument must be a real scalar. A single scalar becomes a 1-D point.
func argsAsPoint(args []any) ([]float64, bool) {
	if len(args) == 0 {
		return nil, false
	}

	pt := make([]float64, len(args))
	for i, a := range args {
		r, ok := set.AsReal(a)
		if !ok {
			return nil, false
		}
		pt[i] = r
	}

	return pt, true
}

// batchBounds recognizes the two vectorized argument shapes for a
// d-dimensional product domain and returns the elementwise min and max
// points across the batch.
//
// Point-list: one [][]float64 argument with rows of length d.
// Meshgrid: exactly d non-empty []float64 coordinate slices.
func batchBounds(d int, args []any) (minPt, maxPt []float64, err error) {
	// Point-list: (N, d) rows.
	if len(args) == 1 {
		if rows, ok := args[0].([][]float64); ok && len(rows) > 0 && rectangular(rows, d) {
			minPt = append([]float64(nil), rows[0]...)
			maxPt = append([]float64(nil), rows[0]...)
			for _, row := range rows[1:] {
				for j, c := range row {
					if c < minPt[j] {
						minPt[j] = c
					}
					if c > maxPt[j] {
						maxPt[j] = c
					}
				}
			}

			return minPt, maxPt, nil
		}
	}

	// Meshgrid: one coordinate slice per axis.
	if len(args) == d {
		minPt = make([]float64, d)
		maxPt = make([]float64, d)
		for i, a := range args {
			axis, ok := a.([]float64)
			if !ok || len(axis) == 0 {
				return nil, nil, ErrBadArguments
			}
			minPt[i], maxPt[i] = axis[0], axis[0]
			for _, c := range axis[1:] {
				if c < minPt[i] {
					minPt[i] = c
				}
				if c > maxPt[i] {
					maxPt[i] = c
				}
			}
		}

		return minPt, maxPt, nil
	}

	return nil, nil, ErrBadArguments
}

// rectangular reports whether every row has length d.
func rectangular(rows [][]float64, d int) bool {
	for _, row := range rows {
		if len(row) != d {
			return false
		}
	}

	return true
}

// applyWith evaluates in place via apply when present, otherwise via call
// followed by a copy into out. Shared by Element.Apply and the closures
// synthesized by Lincomb.
func applyWith(apply ApplyFunc, call Func, out any, args []any) error {
	if apply != nil {
		return apply(out, args...)
	}
	if call == nil {
		return ErrNoCallImpl
	}

	res, err := call(args...)
	if err != nil {
		return err
	}

	return copyInto(out, res)
}

// funcPointer returns the code pointer of fn, or 0 for nil.
func funcPointer(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}

	return v.Pointer()
}

// funcName resolves the symbol name of fn for diagnostics.
func funcName(fn any) string {
	p := funcPointer(fn)
	if p == 0 {
		return "<nil>"
	}
	if f := runtime.FuncForPC(p); f != nil {
		return f.Name()
	}

	return fmt.Sprintf("func@%#x", p)
}
