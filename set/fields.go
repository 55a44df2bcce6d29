package set

import "math"

// RealNumbers is the field ℝ. Its native scalar kind is float64.
type RealNumbers struct{}

// Contains reports whether x is a finite-or-infinite real scalar
// (float64, float32 or an integer kind). NaN is not a member.
func (RealNumbers) Contains(x any) bool {
	r, ok := AsReal(x)

	return ok && !math.IsNaN(r)
}

// Equals reports whether other is also the real field.
func (RealNumbers) Equals(other Set) bool {
	_, ok := other.(RealNumbers)

	return ok
}

// Zero returns float64(0), the additive identity.
func (RealNumbers) Zero() any { return float64(0) }

// One returns float64(1), the multiplicative identity.
func (RealNumbers) One() any { return float64(1) }

// Scalar coerces v into a float64. Returns ErrNotReal when imag(v) != 0.
func (RealNumbers) Scalar(v complex128) (any, error) {
	if imag(v) != 0 {
		return nil, ErrNotReal
	}

	return real(v), nil
}

// String returns "RealNumbers".
func (RealNumbers) String() string { return "RealNumbers" }

// ComplexNumbers is the field ℂ. Its native scalar kind is complex128.
// The reals embed in ℂ, so every RealNumbers member is also a member here.
type ComplexNumbers struct{}

// Contains reports whether x is any recognized numeric scalar kind with
// no NaN component.
func (ComplexNumbers) Contains(x any) bool {
	c, ok := AsScalar(x)

	return ok && !math.IsNaN(real(c)) && !math.IsNaN(imag(c))
}

// Equals reports whether other is also the complex field.
func (ComplexNumbers) Equals(other Set) bool {
	_, ok := other.(ComplexNumbers)

	return ok
}

// Zero returns complex128(0), the additive identity.
func (ComplexNumbers) Zero() any { return complex128(0) }

// One returns complex128(1), the multiplicative identity.
func (ComplexNumbers) One() any { return complex128(1) }

// Scalar returns v unchanged; every complex128 is a member.
func (ComplexNumbers) Scalar(v complex128) (any, error) { return v, nil }

// String returns "ComplexNumbers".
func (ComplexNumbers) String() string { return "ComplexNumbers" }
