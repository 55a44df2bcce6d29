package fspace

import (
	"fmt"

	"github.com/katalvlaran/fnspace/set"
)

// FunctionSet is a general set of functions with common domain and range.
// It is immutable: constructed once and shared read-only by every element
// it produces.
type FunctionSet struct {
	dom set.Set
	ran set.Set
}

// NewFunctionSet builds the set of functions from dom into ran. Both
// arguments must satisfy the Set capability; violations fail here, never
// lazily.
// Complexity: O(1).
func NewFunctionSet(dom, ran set.Set) (*FunctionSet, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}
	if ran == nil {
		return nil, ErrNilRange
	}

	return &FunctionSet{dom: dom, ran: ran}, nil
}

// Domain returns the common domain of all member functions.
func (s *FunctionSet) Domain() set.Set { return s.dom }

// Range returns the common range of all member functions.
func (s *FunctionSet) Range() set.Set { return s.ran }

// Element wraps f as a member of this set.
//
// Accepted kinds for f: an existing *Element (its underlying implementations
// are reused, so wrapping a wrapped element never stacks call layers), a
// Func, or a raw function with the Func signature. Anything else fails with
// ErrNotCallable. An in-place implementation may be attached via WithApply;
// at least one implementation must result.
func (s *FunctionSet) Element(f any, opts ...ElementOption) (*Element, error) {
	return newElement(s, f, opts)
}

// Equals reports whether other is a FunctionSet with equal domain and
// equal range. A FunctionSpace never equals a plain FunctionSet: equality
// is structural against the same concrete kind.
func (s *FunctionSet) Equals(other set.Set) bool {
	o, ok := other.(*FunctionSet)
	if !ok {
		return false
	}
	if s == o {
		return true
	}

	return s.dom.Equals(o.dom) && s.ran.Equals(o.ran)
}

// Contains reports whether x is an element produced by a FunctionSet equal
// to this one. Elements of a FunctionSpace are not contained: the element's
// owning space must be of this exact kind.
func (s *FunctionSet) Contains(x any) bool {
	e, ok := x.(*Element)
	if !ok || e == nil {
		return false
	}
	es, ok := e.space.(*FunctionSet)

	return ok && s.Equals(es)
}

// String returns "FunctionSet(domain, range)".
func (s *FunctionSet) String() string {
	return fmt.Sprintf("FunctionSet(%v, %v)", s.dom, s.ran)
}

// newElement resolves f once at the call site: unwrap an existing element,
// wrap a fresh implementation, or reject. Shared by FunctionSet and
// FunctionSpace so both produce elements owned by the right space.
func newElement(sp Space, f any, opts []ElementOption) (*Element, error) {
	e := &Element{space: sp}

	switch fn := f.(type) {
	case *Element:
		// No double wrapping: reuse the underlying implementations.
		e.call, e.apply, e.linear = fn.call, fn.apply, fn.linear
	case Func:
		e.call = fn
	case func(args ...any) (any, error):
		e.call = Func(fn)
	case nil:
		// Permitted only when an option supplies an implementation.
	default:
		return nil, fmt.Errorf("%T: %w", f, ErrNotCallable)
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.call == nil && e.apply == nil {
		return nil, ErrNotCallable
	}

	return e, nil
}
