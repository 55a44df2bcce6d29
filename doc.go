// Package fnspace models mathematical function spaces as first-class
// algebraic objects — sets and vector spaces of functions that can be
// wrapped, evaluated over points or whole grids, and combined lazily.
//
// 🚀 What is fnspace?
//
//	A pure-Go library that lets numeric code treat "a function" like a vector:
//		• Set capability: membership & equality for domains and ranges
//		• Interval products: axis-aligned box domains with cheap containment
//		• Scalar fields: real and complex numbers with zero/one/scalar coercion
//		• FunctionSet: (domain, range) pairs producing wrapped-callable elements
//		• Vectorized evaluation: single point, point-list (N×d) or meshgrid calls
//		• FunctionSpace: zero element, linear combination, pointwise product
//		• Lazy composition: combinators capture callables, never evaluate eagerly
//
// ✨ Why choose fnspace?
//
//   - Discretization-independent – write algorithms once, specialize onto grids later
//   - Explicit contracts – sentinel errors, capability interfaces, audited aliasing
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives in two subpackages:
//
//	set/    — Set, Product and Field capabilities, IntervalProd, RealNumbers, ComplexNumbers
//	fspace/ — FunctionSet, FunctionSpace, Element and the algebraic kernel
//
// Quick example:
//
//	dom, _ := set.Interval(0, 1)
//	sp, _ := fspace.NewFunctionSpace(dom, set.RealNumbers{})
//	f, _ := sp.Element(func(args ...any) (any, error) {
//		return args[0].(float64) * 2, nil
//	})
//	v, _ := f.Call(0.25) // 0.5
//
// Dive into the package docs for the evaluation protocol, the aliasing rules
// of Lincomb, and the derived algebra built on the zero/lincomb kernel.
//
//	go get github.com/katalvlaran/fnspace
package fnspace
