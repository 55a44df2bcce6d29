package fspace

import (
	"fmt"

	"github.com/katalvlaran/fnspace/set"
)

// FunctionSpace is a vector space of functions: a FunctionSet whose range
// is a scalar field, supporting the minimal vector-space kernel Zero and
// Lincomb plus pointwise Multiply. Every other linear-space operation is
// derivable from that kernel (see ops.go).
type FunctionSpace struct {
	FunctionSet
	field set.Field
}

// NewFunctionSpace builds the space of functions from dom into field.
// A nil field defaults to the real numbers. The field must be one of the
// two recognized scalar fields; the range is implicitly the field.
// Complexity: O(1).
func NewFunctionSpace(dom set.Set, field set.Field) (*FunctionSpace, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}
	if field == nil {
		field = set.RealNumbers{}
	}
	switch field.(type) {
	case set.RealNumbers, set.ComplexNumbers:
	default:
		return nil, fmt.Errorf("%T: %w", field, ErrBadField)
	}

	sp := &FunctionSpace{
		FunctionSet: FunctionSet{dom: dom, ran: field},
		field:       field,
	}

	return sp, nil
}

// Field returns the scalar field of this space.
func (sp *FunctionSpace) Field() set.Field { return sp.field }

// Element wraps f as a member of this space. A nil f with no options
// returns the zero element; otherwise the FunctionSet wrapping rules apply.
func (sp *FunctionSpace) Element(f any, opts ...ElementOption) (*Element, error) {
	if f == nil && len(opts) == 0 {
		return sp.Zero(), nil
	}

	return newElement(sp, f, opts)
}

// Zero returns the element mapping every input to the field's zero scalar.
//
// This is a direct specialization rather than a Lincomb(0, x, 0, y, out)
// round trip: the general path would synthesize and invoke two sub-closures
// on every call for a result that is always a constant.
func (sp *FunctionSpace) Zero() *Element {
	z := sp.field.Zero()
	call := Func(func(...any) (any, error) { return z, nil })
	apply := ApplyFunc(func(out any, _ ...any) error {
		if !isArrayLike(out) {
			return fmt.Errorf("%T: %w", out, ErrInPlace)
		}

		return zeroFill(out)
	})

	e, _ := newElement(sp, call, []ElementOption{WithApply(apply), WithLinear()})

	return e
}

// Lincomb computes out := a*x + b*y lazily: it captures x's and y's current
// implementations and rebinds out to freshly synthesized closures applying
// the combination on every future call. x and y are never mutated.
//
// The capture happens strictly before the rebind, so aliasing is safe:
// Lincomb(2, x, 3, x, x) leaves x computing five times its old values.
//
// Coefficients must lie in the space's field (a complex coefficient in a
// real space fails with ErrBadScalar); all three elements must belong to
// this space. Scalar multiplications by 1 are skipped entirely, and the
// in-place closure short-circuits a == 0 && b == 0 to a buffer zero fill.
// Complexity: O(1) now; each later call costs the constituent calls plus
// O(result size).
func (sp *FunctionSpace) Lincomb(a complex128, x *Element, b complex128, y *Element, out *Element) error {
	if _, err := sp.field.Scalar(a); err != nil {
		return fmt.Errorf("coefficient a=%v: %w", a, ErrBadScalar)
	}
	if _, err := sp.field.Scalar(b); err != nil {
		return fmt.Errorf("coefficient b=%v: %w", b, ErrBadScalar)
	}
	for _, el := range []*Element{x, y, out} {
		if !sp.Contains(el) {
			return fmt.Errorf("%v: %w", el, ErrNotInSpace)
		}
	}

	// Capture before rebinding out; out may alias x or y.
	xCall, yCall := x.call, y.call
	xApply, yApply := x.apply, y.apply

	call := func(args ...any) (any, error) {
		switch {
		case a == 0 && b != 0:
			res, err := invoke(yCall, args)
			if err != nil || b == 1 {
				return res, err
			}

			return scaleValue(res, b)
		case b == 0: // covers a == 0 && b == 0
			res, err := invoke(xCall, args)
			if err != nil || a == 1 {
				return res, err
			}

			return scaleValue(res, a)
		default:
			res, err := invoke(xCall, args)
			if err != nil {
				return nil, err
			}
			if a != 1 {
				if res, err = scaleValue(res, a); err != nil {
					return nil, err
				}
			}
			tmp, err := invoke(yCall, args)
			if err != nil {
				return nil, err
			}
			if b != 1 {
				if tmp, err = scaleValue(tmp, b); err != nil {
					return nil, err
				}
			}

			return addValues(res, tmp)
		}
	}

	apply := func(buf any, args ...any) error {
		if !isArrayLike(buf) {
			return fmt.Errorf("%T: %w", buf, ErrInPlace)
		}
		switch {
		case a == 0 && b == 0:
			return zeroFill(buf)
		case a == 0:
			if err := applyWith(yApply, yCall, buf, args); err != nil {
				return err
			}
			if b == 1 {
				return nil
			}

			return scaleInPlace(buf, b)
		case b == 0:
			if err := applyWith(xApply, xCall, buf, args); err != nil {
				return err
			}
			if a == 1 {
				return nil
			}

			return scaleInPlace(buf, a)
		default:
			tmp, err := bufferLike(buf)
			if err != nil {
				return err
			}
			if err = applyWith(xApply, xCall, buf, args); err != nil {
				return err
			}
			if err = applyWith(yApply, yCall, tmp, args); err != nil {
				return err
			}
			if a != 1 {
				if err = scaleInPlace(buf, a); err != nil {
					return err
				}
			}
			if b != 1 {
				if err = scaleInPlace(tmp, b); err != nil {
					return err
				}
			}

			return addInPlace(buf, tmp)
		}
	}

	out.rebind(call, apply)

	return nil
}

// Multiply rebinds y to the lazy pointwise product x*y: both operands'
// current implementations are captured first, then y's implementation is
// replaced. The second operand carrying the result is a preserved contract
// asymmetry; x is never mutated.
func (sp *FunctionSpace) Multiply(x, y *Element) error {
	if !sp.Contains(x) {
		return fmt.Errorf("%v: %w", x, ErrNotInSpace)
	}
	if !sp.Contains(y) {
		return fmt.Errorf("%v: %w", y, ErrNotInSpace)
	}

	// Capture before rebinding y; x may alias y.
	xCall, yCall := x.call, y.call

	product := func(args ...any) (any, error) {
		xv, err := invoke(xCall, args)
		if err != nil {
			return nil, err
		}
		yv, err := invoke(yCall, args)
		if err != nil {
			return nil, err
		}

		return mulValues(xv, yv)
	}

	y.rebind(product, nil)

	return nil
}

// Equals reports whether other is a FunctionSpace with equal domain and
// equal range. The field is not compared separately: the range is the
// field by construction, so (domain, range) equality already covers it.
func (sp *FunctionSpace) Equals(other set.Set) bool {
	o, ok := other.(*FunctionSpace)
	if !ok {
		return false
	}
	if sp == o {
		return true
	}

	return sp.dom.Equals(o.dom) && sp.ran.Equals(o.ran)
}

// Contains reports whether x is an element produced by a FunctionSpace
// equal to this one. Plain FunctionSet elements are never contained.
func (sp *FunctionSpace) Contains(x any) bool {
	e, ok := x.(*Element)
	if !ok || e == nil {
		return false
	}
	es, ok := e.space.(*FunctionSpace)

	return ok && sp.Equals(es)
}

// String returns "FunctionSpace(domain, range)".
func (sp *FunctionSpace) String() string {
	return fmt.Sprintf("FunctionSpace(%v, %v)", sp.dom, sp.ran)
}

// invoke calls fn, reporting ErrNoCallImpl for constituents that only carry
// an in-place implementation.
func invoke(fn Func, args []any) (any, error) {
	if fn == nil {
		return nil, ErrNoCallImpl
	}

	return fn(args...)
}
