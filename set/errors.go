package set

import "errors"

var (
	// ErrDimMismatch indicates min and max bound slices of differing lengths.
	ErrDimMismatch = errors.New("set: min and max must have the same length")

	// ErrEmptyProd indicates a zero-dimensional interval product was requested.
	ErrEmptyProd = errors.New("set: interval product must have at least one axis")

	// ErrBadBound indicates a lower bound exceeds its upper bound.
	ErrBadBound = errors.New("set: lower bound exceeds upper bound")

	// ErrNaNInf indicates a NaN or ±Inf bound was supplied.
	ErrNaNInf = errors.New("set: NaN or Inf bound")

	// ErrNotReal indicates a scalar with nonzero imaginary part was coerced
	// into the real field.
	ErrNotReal = errors.New("set: scalar has nonzero imaginary part")
)
