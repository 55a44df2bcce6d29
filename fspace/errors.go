package fspace

import "errors"

// Sentinel errors for the fspace package. All public operations return these
// (possibly wrapped with context via fmt.Errorf and %w); tests and callers
// match them with errors.Is. No user-triggered condition panics.
var (
	// ErrNilDomain indicates a FunctionSet/FunctionSpace was constructed
	// without a domain Set.
	ErrNilDomain = errors.New("fspace: domain does not satisfy the Set capability")

	// ErrNilRange indicates a FunctionSet was constructed without a range Set.
	ErrNilRange = errors.New("fspace: range does not satisfy the Set capability")

	// ErrBadField indicates a FunctionSpace field that is neither
	// set.RealNumbers nor set.ComplexNumbers.
	ErrBadField = errors.New("fspace: field must be RealNumbers or ComplexNumbers")

	// ErrNotCallable indicates an element was requested from something that
	// is neither an existing Element nor an invocable implementation.
	ErrNotCallable = errors.New("fspace: element requires a call or apply implementation")

	// ErrNoCallImpl indicates an out-of-place evaluation of an element that
	// only carries an in-place implementation.
	ErrNoCallImpl = errors.New("fspace: element has no out-of-place implementation")

	// ErrNoVectorization indicates a vectorized call on a domain without
	// the extent capability (set.Product).
	ErrNoVectorization = errors.New("fspace: vectorized evaluation requires an interval-product domain")

	// ErrBadArguments indicates call arguments that are neither a domain
	// point nor a recognized vectorized batch.
	ErrBadArguments = errors.New("fspace: arguments are neither a domain point nor a vectorized batch")

	// ErrOutOfDomain indicates a vectorized batch whose bounding box is not
	// fully contained in the domain.
	ErrOutOfDomain = errors.New("fspace: input contains points outside the domain")

	// ErrBadRange indicates a callable result that is not a member (nor an
	// array of members) of the declared range.
	ErrBadRange = errors.New("fspace: result is not in the range")

	// ErrInPlace indicates in-place evaluation into a buffer that is not
	// array-like.
	ErrInPlace = errors.New("fspace: in-place evaluation requires an array-like output buffer")

	// ErrNotInSpace indicates an algebraic operand that is not an element
	// of the receiver space.
	ErrNotInSpace = errors.New("fspace: element does not belong to this space")

	// ErrBadScalar indicates a combination coefficient outside the space's
	// scalar field, or an in-place scale that would need to promote a real
	// buffer to complex.
	ErrBadScalar = errors.New("fspace: scalar not in the space's field")

	// ErrShapeMismatch indicates combinator operands of incompatible shapes.
	ErrShapeMismatch = errors.New("fspace: operand shapes do not match")

	// ErrBadValue indicates a value kind the numeric helpers do not support.
	ErrBadValue = errors.New("fspace: unsupported value kind")
)
