package fspace_test

import (
	"testing"

	"github.com/katalvlaran/fnspace/fspace"
	"github.com/katalvlaran/fnspace/set"
	"github.com/stretchr/testify/require"
)

// unitLine returns the real space of functions on [0, 1].
func unitLine(t *testing.T) *fspace.FunctionSpace {
	t.Helper()
	dom, err := set.Interval(0, 1)
	require.NoError(t, err)
	sp, err := fspace.NewFunctionSpace(dom, set.RealNumbers{})
	require.NoError(t, err)

	return sp
}

// unitSquare returns the real space of functions on [0, 1] x [0, 1].
func unitSquare(t *testing.T) *fspace.FunctionSpace {
	t.Helper()
	dom, err := set.NewIntervalProd([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	sp, err := fspace.NewFunctionSpace(dom, set.RealNumbers{})
	require.NoError(t, err)

	return sp
}

// identity1D wraps f(t) = t on the given space. It understands the single
// scalar form, the 1-D vector form and a meshgrid axis batch.
func identity1D(t *testing.T, sp *fspace.FunctionSpace) *fspace.Element {
	t.Helper()
	e, err := sp.Element(func(args ...any) (any, error) {
		switch v := args[0].(type) {
		case float64:
			return v, nil
		case []float64:
			if len(v) == 1 {
				return v[0], nil
			}

			return append([]float64(nil), v...), nil
		default:
			return nil, nil
		}
	})
	require.NoError(t, err)

	return e
}

// constant1D wraps f(t) = c on the given space, batch-aware like identity1D.
func constant1D(t *testing.T, sp *fspace.FunctionSpace, c float64) *fspace.Element {
	t.Helper()
	e, err := sp.Element(func(args ...any) (any, error) {
		if v, ok := args[0].([]float64); ok && len(v) > 1 {
			out := make([]float64, len(v))
			for i := range out {
				out[i] = c
			}

			return out, nil
		}

		return c, nil
	})
	require.NoError(t, err)

	return e
}

// evalAt evaluates e at a single scalar point and fails the test on error.
func evalAt(t *testing.T, e *fspace.Element, x float64) float64 {
	t.Helper()
	out, err := e.Call(x)
	require.NoError(t, err)
	v, ok := out.(float64)
	require.True(t, ok, "Call(%v) returned %T, want float64", x, out)

	return v
}

// fakeField satisfies set.Field but is neither of the recognized fields.
type fakeField struct{}

func (fakeField) Contains(any) bool              { return false }
func (fakeField) Equals(set.Set) bool            { return false }
func (fakeField) Zero() any                      { return 0.0 }
func (fakeField) One() any                       { return 1.0 }
func (fakeField) Scalar(complex128) (any, error) { return nil, set.ErrNotReal }
func (fakeField) String() string                 { return "fakeField" }
