package set

import "fmt"

// Set is the minimal capability a domain or range must satisfy:
// membership testing and equality with another Set.
//
// Implementations must make Contains total (any input, never panic) and
// Equals symmetric across the concrete kinds they recognize.
type Set interface {
	fmt.Stringer

	// Contains reports whether x is a member of the set.
	// Complexity: O(Dim) for interval products, O(1) for fields.
	Contains(x any) bool

	// Equals reports whether other denotes the same set.
	Equals(other Set) bool
}

// Product is the extent capability: a Set shaped as an axis-aligned box
// with a known dimensionality and per-axis bounds. Vectorized function
// evaluation is only available for domains satisfying Product.
type Product interface {
	Set

	// Dim returns the number of axes.
	Dim() int

	// Min returns the per-axis lower bounds. Callers must not mutate it.
	Min() []float64

	// Max returns the per-axis upper bounds. Callers must not mutate it.
	Max() []float64
}

// Field is a Set of scalars additionally supporting the constants and
// coercion a vector space needs from its scalar field.
type Field interface {
	Set

	// Zero returns the additive identity in the field's native kind
	// (float64 for the reals, complex128 for the complexes).
	Zero() any

	// One returns the multiplicative identity in the field's native kind.
	One() any

	// Scalar coerces v into the field's native kind. The real field
	// returns ErrNotReal when imag(v) != 0.
	Scalar(v complex128) (any, error)
}

// AsScalar converts any recognized numeric kind to complex128.
// The second result is false for non-numeric kinds.
func AsScalar(x any) (complex128, bool) {
	switch v := x.(type) {
	case float64:
		return complex(v, 0), true
	case float32:
		return complex(float64(v), 0), true
	case int:
		return complex(float64(v), 0), true
	case int32:
		return complex(float64(v), 0), true
	case int64:
		return complex(float64(v), 0), true
	case complex128:
		return v, true
	case complex64:
		return complex128(v), true
	default:
		return 0, false
	}
}

// AsReal converts any recognized real scalar kind to float64.
// The second result is false for non-real or non-numeric kinds.
func AsReal(x any) (float64, bool) {
	c, ok := AsScalar(x)
	if !ok || imag(c) != 0 {
		return 0, false
	}

	return real(c), true
}

// AsPoint converts any recognized point kind ([]float64, []int, or a bare
// real scalar treated as a 1-D point) to a []float64. The second result is
// false for unrecognized kinds. The returned slice may alias the input.
func AsPoint(x any) ([]float64, bool) {
	switch v := x.(type) {
	case []float64:
		return v, true
	case []int:
		p := make([]float64, len(v))
		for i, n := range v {
			p[i] = float64(n)
		}

		return p, true
	default:
		if r, ok := AsReal(x); ok {
			return []float64{r}, true
		}

		return nil, false
	}
}
