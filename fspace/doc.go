// Package fspace implements function spaces: sets and vector spaces whose
// elements are functions sharing a common domain and range.
//
// What:
//
//   - FunctionSet wraps a (domain, range) pair of set.Set values and turns
//     arbitrary callables into Elements validated at call time.
//   - Element is the function-space analogue of a vector: a wrapped callable
//     plus its owning space, invocable over single points or whole batches.
//   - FunctionSpace extends FunctionSet with a scalar field and the minimal
//     vector-space kernel: Zero, Lincomb and pointwise Multiply, all built
//     as lazy closures over the operands' captured callables.
//   - Derived algebra (Add, Sub, Neg, Scale) is composed from that kernel.
//
// Evaluation protocol (Element.Call, first match wins — the order is part
// of the contract):
//
//  1. Single point, tuple form: f(0, 1, 2) where the argument tuple is a
//     domain point.
//  2. Single point, vector form: f([]float64{0, 1, 2}) where the lone
//     argument is a domain point.
//  3. Vectorized — only for domains satisfying set.Product:
//     a point-list [][]float64 of shape (N, d), or exactly d per-axis
//     coordinate slices (meshgrid form). Validation is a bounding-box
//     containment check of the elementwise min and max points, not a
//     per-point check; for non-convex domains this is a documented
//     approximation.
//
// The callable's result must be a range member, or an array whose first
// flattened entry is one (a spot check standing in for full elementwise
// validation).
//
// Aliasing:
//
//	Lincomb and Multiply capture the operands' current implementations
//	BEFORE rebinding the output element, so self-combinations such as
//	Lincomb(2, x, 3, x, x) are well defined. The rebind is the only
//	sanctioned mutation of an Element.
//
// Errors:
//
//   - ErrNilDomain, ErrNilRange, ErrBadField: construction-time capability
//     violations, never deferred.
//   - ErrNotCallable: Element construction without a call or apply impl.
//   - ErrNoVectorization: vectorized call on a domain without extent.
//   - ErrBadArguments: arguments match no recognized call shape.
//   - ErrOutOfDomain: batch bounding box leaves the domain.
//   - ErrBadRange: callable result not in the declared range.
//   - ErrInPlace: in-place evaluation into a non-array-like buffer.
//   - ErrNotInSpace, ErrBadScalar: algebraic operands outside the space
//     or its field.
//   - ErrShapeMismatch, ErrBadValue: combinator operands of incompatible
//     shape or unsupported kind.
package fspace
