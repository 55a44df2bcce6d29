package fspace_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/fnspace/fspace"
	"github.com/katalvlaran/fnspace/set"
	"github.com/stretchr/testify/require"
)

// sum2D wraps f(x, y) = x + y on the given space, handling all four call
// shapes the evaluation protocol can deliver for a 2-D box domain.
func sum2D(t *testing.T, sp *fspace.FunctionSpace) *fspace.Element {
	t.Helper()
	e, err := sp.Element(func(args ...any) (any, error) {
		// Tuple form: f(x, y).
		if len(args) == 2 {
			if x, ok := args[0].(float64); ok {
				return x + args[1].(float64), nil
			}
			// Meshgrid form: one coordinate slice per axis.
			xs := args[0].([]float64)
			ys := args[1].([]float64)
			out := make([][]float64, len(xs))
			for i, x := range xs {
				out[i] = make([]float64, len(ys))
				for j, y := range ys {
					out[i][j] = x + y
				}
			}

			return out, nil
		}
		// Vector form: f([x, y]).
		if p, ok := args[0].([]float64); ok {
			return p[0] + p[1], nil
		}
		// Point-list form: (N, 2) rows.
		rows := args[0].([][]float64)
		out := make([]float64, len(rows))
		for i, row := range rows {
			out[i] = row[0] + row[1]
		}

		return out, nil
	})
	require.NoError(t, err)

	return e
}

// TestElement_SinglePointDispatch verifies that tuple form and vector form
// dispatch as the same single-point evaluation.
func TestElement_SinglePointDispatch(t *testing.T) {
	sp := unitSquare(t)
	f := sum2D(t, sp)

	tuple, err := f.Call(0.5, 0.25)
	require.NoError(t, err)
	vector, err := f.Call([]float64{0.5, 0.25})
	require.NoError(t, err)

	require.Equal(t, 0.75, tuple)
	require.Equal(t, tuple, vector)
}

// TestElement_PointListDispatch verifies the (N, d) batch form and the
// bounding-box domain check at the extremes.
func TestElement_PointListDispatch(t *testing.T) {
	sp := unitSquare(t)
	f := sum2D(t, sp)

	out, err := f.Call([][]float64{{0, 0}, {0.5, 0.5}, {1, 1}})
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0, 1, 2}, out); diff != "" {
		t.Errorf("point-list result mismatch (-want +got):\n%s", diff)
	}

	// One coordinate pokes outside the box.
	_, err = f.Call([][]float64{{0, 0}, {0.5, 1.5}})
	require.ErrorIs(t, err, fspace.ErrOutOfDomain)
}

// TestElement_MeshgridDispatch verifies that d coordinate slices dispatch
// through the meshgrid branch, not the point-list branch.
func TestElement_MeshgridDispatch(t *testing.T) {
	sp := unitSquare(t)

	var sawMeshgrid bool
	f, err := sp.Element(func(args ...any) (any, error) {
		xs := args[0].([]float64)
		ys := args[1].([]float64)
		sawMeshgrid = len(args) == 2
		out := make([][]float64, len(xs))
		for i, x := range xs {
			out[i] = make([]float64, len(ys))
			for j, y := range ys {
				out[i][j] = x * y
			}
		}

		return out, nil
	})
	require.NoError(t, err)

	out, err := f.Call([]float64{0, 0.5, 1}, []float64{0.5, 1})
	require.NoError(t, err)
	require.True(t, sawMeshgrid, "expected the meshgrid branch to deliver two axis slices")
	if diff := cmp.Diff([][]float64{{0, 0}, {0.25, 0.5}, {0.5, 1}}, out); diff != "" {
		t.Errorf("meshgrid result mismatch (-want +got):\n%s", diff)
	}

	// An axis value outside the box fails the bounding-box check.
	_, err = f.Call([]float64{0, 2}, []float64{0.5, 1})
	require.ErrorIs(t, err, fspace.ErrOutOfDomain)
}

// TestElement_NoVectorization verifies that domains without the extent
// capability reject batch calls with a descriptive error.
func TestElement_NoVectorization(t *testing.T) {
	// The real line is a Set but not a Product.
	sp, err := fspace.NewFunctionSpace(set.RealNumbers{}, set.RealNumbers{})
	require.NoError(t, err)

	f, err := sp.Element(func(args ...any) (any, error) { return args[0], nil })
	require.NoError(t, err)

	// Single-point evaluation still works.
	out, err := f.Call(3.5)
	require.NoError(t, err)
	require.Equal(t, 3.5, out)

	_, err = f.Call([]float64{1, 2, 3})
	require.ErrorIs(t, err, fspace.ErrNoVectorization)
}

// TestElement_BadArguments verifies the rejection of argument lists that
// match no recognized shape.
func TestElement_BadArguments(t *testing.T) {
	sp := unitSquare(t)
	f := sum2D(t, sp)

	cases := []struct {
		name string
		args []any
	}{
		{"SingleScalarFor2D", []any{0.5}},
		{"Strings", []any{"a", "b"}},
		{"RaggedPointList", []any{[][]float64{{0, 0}, {0.5}}}},
		{"WrongAxisCount", []any{[]float64{0, 1}, []float64{0, 1}, []float64{0, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.Call(tc.args...)
			if !errors.Is(err, fspace.ErrBadArguments) {
				t.Errorf("Call(%v) error = %v; want %v", tc.args, err, fspace.ErrBadArguments)
			}
		})
	}
}

// TestElement_RangeViolation verifies the result spot check against the
// declared range.
func TestElement_RangeViolation(t *testing.T) {
	sp := unitLine(t)

	bad, err := sp.Element(func(args ...any) (any, error) { return "not a number", nil })
	require.NoError(t, err)
	_, err = bad.Call(0.5)
	require.ErrorIs(t, err, fspace.ErrBadRange)

	// A complex result is not a member of the real range.
	cplx, err := sp.Element(func(args ...any) (any, error) { return complex(1, 1), nil })
	require.NoError(t, err)
	_, err = cplx.Call(0.5)
	require.ErrorIs(t, err, fspace.ErrBadRange)

	// An array result passes via its first flattened entry.
	arr, err := sp.Element(func(args ...any) (any, error) { return []float64{1, 2}, nil })
	require.NoError(t, err)
	out, err := arr.Call([]float64{0.25, 0.75})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, out)
}

// TestElement_ErrorPropagation verifies that composite and primitive
// elements surface the wrapped callable's error unchanged.
func TestElement_ErrorPropagation(t *testing.T) {
	sp := unitLine(t)
	boom := errors.New("callable exploded")

	f, err := sp.Element(func(args ...any) (any, error) { return nil, boom })
	require.NoError(t, err)
	_, err = f.Call(0.5)
	require.ErrorIs(t, err, boom)

	// Through a composite closure as well.
	out := sp.Zero()
	require.NoError(t, sp.Lincomb(2, f, 0, f, out))
	_, err = out.Call(0.5)
	require.ErrorIs(t, err, boom)
}

// TestElement_Apply covers the in-place path: explicit impl, fallback via
// Call, and buffer validation.
func TestElement_Apply(t *testing.T) {
	sp := unitLine(t)

	// Explicit in-place implementation.
	withApply, err := sp.Element(
		func(args ...any) (any, error) { return args[0], nil },
		fspace.WithApply(func(out any, args ...any) error {
			buf := out.([]float64)
			for i, v := range args[0].([]float64) {
				buf[i] = 2 * v
			}

			return nil
		}),
	)
	require.NoError(t, err)

	buf := make([]float64, 3)
	require.NoError(t, withApply.Apply(buf, []float64{0.1, 0.2, 0.3}))
	require.Equal(t, []float64{0.2, 0.4, 0.6}, buf)

	// Non-array-like buffer.
	err = withApply.Apply(3.14, []float64{0.1, 0.2, 0.3})
	require.ErrorIs(t, err, fspace.ErrInPlace)

	// Fallback: no apply impl, result copied from Call.
	fallback := identity1D(t, sp)
	buf2 := make([]float64, 3)
	require.NoError(t, fallback.Apply(buf2, []float64{0.1, 0.2, 0.3}))
	require.Equal(t, []float64{0.1, 0.2, 0.3}, buf2)

	// Fallback with a scalar result fills the buffer.
	konst := constant1D(t, sp, 7)
	buf3 := make([]float64, 2)
	require.NoError(t, konst.Apply(buf3, 0.5))
	require.Equal(t, []float64{7, 7}, buf3)
}

// TestElement_OperatorSurface checks the uniform operator contract.
func TestElement_OperatorSurface(t *testing.T) {
	sp := unitLine(t)
	f := identity1D(t, sp)

	var op fspace.Operator = f
	require.True(t, sp.Domain().Equals(op.Domain()))
	require.True(t, sp.Range().Equals(op.Range()))
	require.False(t, op.IsLinear())

	lin, err := sp.Element(fspace.Func(func(args ...any) (any, error) { return 0.0, nil }), fspace.WithLinear())
	require.NoError(t, err)
	require.True(t, lin.IsLinear())
}

// TestElement_String sanity-checks the debug representations.
func TestElement_String(t *testing.T) {
	sp := unitLine(t)
	f := identity1D(t, sp)
	require.Contains(t, f.String(), "FunctionSpace(Interval(0, 1), RealNumbers)")

	applyOnly, err := sp.Element(nil, fspace.WithApply(func(out any, args ...any) error { return nil }))
	require.NoError(t, err)
	require.Contains(t, applyOnly.String(), "apply:")
}
