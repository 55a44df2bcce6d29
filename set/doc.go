// Package set provides the capability contracts and concrete domains that
// function spaces are built on: general sets with membership and equality,
// axis-aligned interval products, and the real/complex scalar fields.
//
// What:
//
//   - Set: the minimal capability — Contains(x) membership and Equals(other).
//   - Product: a Set with per-axis extent (Dim, Min, Max), the capability
//     required for vectorized function evaluation over boxes.
//   - Field: a Set of scalars with Zero, One and Scalar coercion.
//   - IntervalProd: the concrete axis-aligned box [min₁,max₁]×…×[min_d,max_d].
//   - RealNumbers, ComplexNumbers: the two recognized scalar fields.
//
// Why:
//
//   - Function spaces validate inputs against a domain Set and outputs
//     against a range Set; keeping those capabilities tiny lets any
//     domain-like object participate.
//   - Vectorized evaluation needs a bounding box, so the extent capability
//     is a separate, explicitly checkable interface rather than a type probe.
//
// Membership policy:
//
//   - IntervalProd accepts a bare numeric scalar only when Dim() == 1;
//     otherwise a []float64 (or []int) of length Dim(). NaN never belongs
//     to any set in this package.
//   - RealNumbers accepts the real scalar kinds (float64, float32, ints).
//     ComplexNumbers accepts those plus complex128/complex64.
//
// Errors:
//
//   - ErrDimMismatch: min/max slices of differing length.
//   - ErrEmptyProd: zero-dimensional interval product requested.
//   - ErrBadBound: some min exceeds the corresponding max.
//   - ErrNaNInf: a NaN or ±Inf bound was supplied.
//   - ErrNotReal: a complex scalar with nonzero imaginary part was coerced
//     into the real field.
package set
