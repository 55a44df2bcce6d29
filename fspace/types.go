package fspace

import "github.com/katalvlaran/fnspace/set"

// Func is the out-of-place evaluation implementation wrapped by an Element.
// It receives the raw call arguments (a point's coordinates, a single point
// value, a point-list, or meshgrid axes) and returns a range member or an
// array of range members.
type Func func(args ...any) (any, error)

// ApplyFunc is the in-place evaluation implementation: it writes the result
// of evaluating at args into the caller-provided array-like buffer out.
type ApplyFunc func(out any, args ...any) error

// Operator is the uniform callable contract elements are exposed under:
// a mapping with a declared domain and range that downstream code can
// invoke without knowing whether it is primitive or composite.
type Operator interface {
	// Domain returns the set of valid inputs.
	Domain() set.Set

	// Range returns the set of valid outputs.
	Range() set.Set

	// IsLinear reports whether the operator is known to be linear.
	IsLinear() bool

	// Call evaluates the operator; see Element.Call for the protocol.
	Call(args ...any) (any, error)
}

// Space is the common surface of FunctionSet and FunctionSpace as seen from
// an element: a Set of functions with a domain, a range, and the ability to
// produce elements.
type Space interface {
	set.Set

	// Domain returns the common domain of all member functions.
	Domain() set.Set

	// Range returns the common range of all member functions.
	Range() set.Set

	// Element wraps f (an existing *Element, a Func, or a raw function of
	// the same signature) as a member of this space.
	Element(f any, opts ...ElementOption) (*Element, error)
}

// ElementOption configures an Element at wrap time.
type ElementOption func(*Element)

// WithApply attaches an in-place evaluation implementation to the element.
func WithApply(fn ApplyFunc) ElementOption {
	return func(e *Element) { e.apply = fn }
}

// WithLinear marks the wrapped callable as a known-linear mapping.
// Elements are non-linear by default.
func WithLinear() ElementOption {
	return func(e *Element) { e.linear = true }
}
