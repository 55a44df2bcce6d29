package fspace

import (
	"fmt"

	"github.com/katalvlaran/fnspace/set"
)

// Numeric value plumbing for the combinator closures. Values flowing out of
// wrapped callables are plain Go kinds — float64, complex128, []float64,
// []complex128, [][]float64, [][]complex128 — and the lazy closures built
// by Lincomb and Multiply must scale and add them without knowing which
// kind a constituent produces. Everything is normalized into an explicit
// canonical form first, so the aliasing and promotion rules are auditable
// in isolation.

// value is the canonical form: rank 0 scalar, 1 vector, 2 matrix; data is
// held as complex128 with a flag recording whether every source entry was
// real, so real inputs with real coefficients denormalize back to float64
// kinds.
type value struct {
	rank int
	cplx bool
	s    complex128
	v    []complex128
	m    [][]complex128
}

// normalize converts a supported Go value into canonical form. The result
// never aliases x.
func normalize(x any) (value, error) {
	switch t := x.(type) {
	case float64:
		return value{rank: 0, s: complex(t, 0)}, nil
	case complex128:
		return value{rank: 0, cplx: true, s: t}, nil
	case []float64:
		v := make([]complex128, len(t))
		for i, r := range t {
			v[i] = complex(r, 0)
		}

		return value{rank: 1, v: v}, nil
	case []complex128:
		return value{rank: 1, cplx: true, v: append([]complex128(nil), t...)}, nil
	case [][]float64:
		m := make([][]complex128, len(t))
		for i, row := range t {
			m[i] = make([]complex128, len(row))
			for j, r := range row {
				m[i][j] = complex(r, 0)
			}
		}

		return value{rank: 2, m: m}, nil
	case [][]complex128:
		m := make([][]complex128, len(t))
		for i, row := range t {
			m[i] = append([]complex128(nil), row...)
		}

		return value{rank: 2, cplx: true, m: m}, nil
	default:
		if r, ok := set.AsReal(x); ok {
			return value{rank: 0, s: complex(r, 0)}, nil
		}

		return value{}, fmt.Errorf("%T: %w", x, ErrBadValue)
	}
}

// denormalize converts back to a plain Go value, preferring real kinds when
// no complex entry was involved.
func (val value) denormalize() any {
	switch val.rank {
	case 0:
		if val.cplx {
			return val.s
		}

		return real(val.s)
	case 1:
		if val.cplx {
			return val.v
		}
		out := make([]float64, len(val.v))
		for i, c := range val.v {
			out[i] = real(c)
		}

		return out
	default:
		if val.cplx {
			return val.m
		}
		out := make([][]float64, len(val.m))
		for i, row := range val.m {
			out[i] = make([]float64, len(row))
			for j, c := range row {
				out[i][j] = real(c)
			}
		}

		return out
	}
}

// scale multiplies every entry by c. A complex coefficient promotes a real
// value to complex kinds on denormalization.
func (val value) scale(c complex128) value {
	if imag(c) != 0 {
		val.cplx = true
	}
	switch val.rank {
	case 0:
		val.s *= c
	case 1:
		for i := range val.v {
			val.v[i] *= c
		}
	default:
		for _, row := range val.m {
			for j := range row {
				row[j] *= c
			}
		}
	}

	return val
}

// shift adds the scalar c to every entry, broadcasting it over val's shape.
// cplx records whether c came from a complex-kinded operand.
func (val value) shift(c complex128, cplx bool) value {
	val.cplx = val.cplx || cplx
	switch val.rank {
	case 0:
		val.s += c
	case 1:
		for i := range val.v {
			val.v[i] += c
		}
	default:
		for _, row := range val.m {
			for j := range row {
				row[j] += c
			}
		}
	}

	return val
}

// add accumulates other into val. A scalar operand broadcasts over an array
// one (a constant constituent combined with a batch-returning one), exactly
// as in mul; two array operands must agree in shape.
func (val value) add(other value) (value, error) {
	if other.rank == 0 && val.rank != 0 {
		return val.shift(other.s, other.cplx), nil
	}
	if val.rank == 0 && other.rank != 0 {
		return other.shift(val.s, val.cplx), nil
	}
	if val.rank != other.rank {
		return value{}, fmt.Errorf("rank %d vs %d: %w", val.rank, other.rank, ErrShapeMismatch)
	}
	val.cplx = val.cplx || other.cplx

	switch val.rank {
	case 0:
		val.s += other.s
	case 1:
		if len(val.v) != len(other.v) {
			return value{}, fmt.Errorf("len %d vs %d: %w", len(val.v), len(other.v), ErrShapeMismatch)
		}
		for i := range val.v {
			val.v[i] += other.v[i]
		}
	default:
		if len(val.m) != len(other.m) {
			return value{}, fmt.Errorf("rows %d vs %d: %w", len(val.m), len(other.m), ErrShapeMismatch)
		}
		for i, row := range val.m {
			if len(row) != len(other.m[i]) {
				return value{}, fmt.Errorf("row %d: len %d vs %d: %w", i, len(row), len(other.m[i]), ErrShapeMismatch)
			}
			for j := range row {
				row[j] += other.m[i][j]
			}
		}
	}

	return val, nil
}

// mul multiplies val by other entrywise. A scalar operand broadcasts over
// an array one; two array operands must agree in shape.
func (val value) mul(other value) (value, error) {
	if other.rank == 0 {
		return val.scale(other.s), nil
	}
	if val.rank == 0 {
		return other.scale(val.s), nil
	}
	if val.rank != other.rank {
		return value{}, fmt.Errorf("rank %d vs %d: %w", val.rank, other.rank, ErrShapeMismatch)
	}
	val.cplx = val.cplx || other.cplx

	if val.rank == 1 {
		if len(val.v) != len(other.v) {
			return value{}, fmt.Errorf("len %d vs %d: %w", len(val.v), len(other.v), ErrShapeMismatch)
		}
		for i := range val.v {
			val.v[i] *= other.v[i]
		}

		return val, nil
	}
	if len(val.m) != len(other.m) {
		return value{}, fmt.Errorf("rows %d vs %d: %w", len(val.m), len(other.m), ErrShapeMismatch)
	}
	for i, row := range val.m {
		if len(row) != len(other.m[i]) {
			return value{}, fmt.Errorf("row %d: len %d vs %d: %w", i, len(row), len(other.m[i]), ErrShapeMismatch)
		}
		for j := range row {
			row[j] *= other.m[i][j]
		}
	}

	return val, nil
}

// scaleValue scales a plain value by c, returning a fresh plain value of
// the appropriate kind.
func scaleValue(x any, c complex128) (any, error) {
	val, err := normalize(x)
	if err != nil {
		return nil, err
	}

	return val.scale(c).denormalize(), nil
}

// addValues returns x + y for plain values; a scalar operand broadcasts
// over an array one.
func addValues(x, y any) (any, error) {
	xv, err := normalize(x)
	if err != nil {
		return nil, err
	}
	yv, err := normalize(y)
	if err != nil {
		return nil, err
	}
	sum, err := xv.add(yv)
	if err != nil {
		return nil, err
	}

	return sum.denormalize(), nil
}

// mulValues returns the entrywise product x * y.
func mulValues(x, y any) (any, error) {
	xv, err := normalize(x)
	if err != nil {
		return nil, err
	}
	yv, err := normalize(y)
	if err != nil {
		return nil, err
	}
	prod, err := xv.mul(yv)
	if err != nil {
		return nil, err
	}

	return prod.denormalize(), nil
}

// isArrayLike reports whether out is one of the supported in-place buffer
// kinds.
func isArrayLike(out any) bool {
	switch out.(type) {
	case []float64, []complex128, [][]float64, [][]complex128:
		return true
	default:
		return false
	}
}

// zeroFill overwrites every entry of an array-like buffer with zero.
func zeroFill(out any) error {
	switch t := out.(type) {
	case []float64:
		for i := range t {
			t[i] = 0
		}
	case []complex128:
		for i := range t {
			t[i] = 0
		}
	case [][]float64:
		for _, row := range t {
			for j := range row {
				row[j] = 0
			}
		}
	case [][]complex128:
		for _, row := range t {
			for j := range row {
				row[j] = 0
			}
		}
	default:
		return fmt.Errorf("%T: %w", out, ErrInPlace)
	}

	return nil
}

// scaleInPlace multiplies an array-like buffer by c. Scaling a real buffer
// by a coefficient with nonzero imaginary part cannot be done in place and
// fails with ErrBadScalar.
func scaleInPlace(out any, c complex128) error {
	switch t := out.(type) {
	case []float64:
		if imag(c) != 0 {
			return fmt.Errorf("complex scale of []float64: %w", ErrBadScalar)
		}
		r := real(c)
		for i := range t {
			t[i] *= r
		}
	case []complex128:
		for i := range t {
			t[i] *= c
		}
	case [][]float64:
		if imag(c) != 0 {
			return fmt.Errorf("complex scale of [][]float64: %w", ErrBadScalar)
		}
		r := real(c)
		for _, row := range t {
			for j := range row {
				row[j] *= r
			}
		}
	case [][]complex128:
		for _, row := range t {
			for j := range row {
				row[j] *= c
			}
		}
	default:
		return fmt.Errorf("%T: %w", out, ErrInPlace)
	}

	return nil
}

// addInPlace accumulates src into dst. Both must be array-like of the same
// kind and shape; a complex src cannot be folded into a real dst.
func addInPlace(dst, src any) error {
	switch d := dst.(type) {
	case []float64:
		if _, cplx := src.([]complex128); cplx {
			return fmt.Errorf("complex source into []float64: %w", ErrBadScalar)
		}
		s, ok := src.([]float64)
		if !ok || len(s) != len(d) {
			return fmt.Errorf("%T += %T: %w", dst, src, ErrShapeMismatch)
		}
		for i := range d {
			d[i] += s[i]
		}
	case []complex128:
		switch s := src.(type) {
		case []complex128:
			if len(s) != len(d) {
				return fmt.Errorf("len %d vs %d: %w", len(d), len(s), ErrShapeMismatch)
			}
			for i := range d {
				d[i] += s[i]
			}
		case []float64:
			if len(s) != len(d) {
				return fmt.Errorf("len %d vs %d: %w", len(d), len(s), ErrShapeMismatch)
			}
			for i := range d {
				d[i] += complex(s[i], 0)
			}
		default:
			return fmt.Errorf("%T += %T: %w", dst, src, ErrShapeMismatch)
		}
	case [][]float64:
		if _, cplx := src.([][]complex128); cplx {
			return fmt.Errorf("complex source into [][]float64: %w", ErrBadScalar)
		}
		s, ok := src.([][]float64)
		if !ok || len(s) != len(d) {
			return fmt.Errorf("%T += %T: %w", dst, src, ErrShapeMismatch)
		}
		for i, row := range d {
			if len(s[i]) != len(row) {
				return fmt.Errorf("row %d: %w", i, ErrShapeMismatch)
			}
			for j := range row {
				row[j] += s[i][j]
			}
		}
	case [][]complex128:
		s, ok := src.([][]complex128)
		if !ok || len(s) != len(d) {
			return fmt.Errorf("%T += %T: %w", dst, src, ErrShapeMismatch)
		}
		for i, row := range d {
			if len(s[i]) != len(row) {
				return fmt.Errorf("row %d: %w", i, ErrShapeMismatch)
			}
			for j := range row {
				row[j] += s[i][j]
			}
		}
	default:
		return fmt.Errorf("%T: %w", dst, ErrInPlace)
	}

	return nil
}

// bufferLike allocates a fresh zeroed buffer of the same kind and shape as
// out, for use as scratch in the in-place lincomb closure.
func bufferLike(out any) (any, error) {
	switch t := out.(type) {
	case []float64:
		return make([]float64, len(t)), nil
	case []complex128:
		return make([]complex128, len(t)), nil
	case [][]float64:
		m := make([][]float64, len(t))
		for i, row := range t {
			m[i] = make([]float64, len(row))
		}

		return m, nil
	case [][]complex128:
		m := make([][]complex128, len(t))
		for i, row := range t {
			m[i] = make([]complex128, len(row))
		}

		return m, nil
	default:
		return nil, fmt.Errorf("%T: %w", out, ErrInPlace)
	}
}

// copyInto writes a plain value into an array-like buffer: scalars fill the
// whole buffer, arrays copy entrywise with exact shape agreement. A value
// with complex entries cannot be written into a real buffer.
func copyInto(out, res any) error {
	if err := zeroFill(out); err != nil {
		return err
	}
	if s, ok := set.AsReal(res); ok {
		return fillScalar(out, complex(s, 0))
	}
	if c, ok := res.(complex128); ok {
		return fillScalar(out, c)
	}

	return addInPlace(out, res)
}

// fillScalar sets every entry of out to c.
func fillScalar(out any, c complex128) error {
	switch t := out.(type) {
	case []float64:
		if imag(c) != 0 {
			return fmt.Errorf("complex fill of []float64: %w", ErrBadScalar)
		}
		for i := range t {
			t[i] = real(c)
		}
	case []complex128:
		for i := range t {
			t[i] = c
		}
	case [][]float64:
		if imag(c) != 0 {
			return fmt.Errorf("complex fill of [][]float64: %w", ErrBadScalar)
		}
		for _, row := range t {
			for j := range row {
				row[j] = real(c)
			}
		}
	case [][]complex128:
		for _, row := range t {
			for j := range row {
				row[j] = c
			}
		}
	default:
		return fmt.Errorf("%T: %w", out, ErrInPlace)
	}

	return nil
}

// firstEntry returns the first flattened entry of an array-like value, used
// by the range spot check.
func firstEntry(x any) (any, bool) {
	switch t := x.(type) {
	case []float64:
		if len(t) > 0 {
			return t[0], true
		}
	case []complex128:
		if len(t) > 0 {
			return t[0], true
		}
	case [][]float64:
		for _, row := range t {
			if len(row) > 0 {
				return row[0], true
			}
		}
	case [][]complex128:
		for _, row := range t {
			if len(row) > 0 {
				return row[0], true
			}
		}
	case []any:
		if len(t) > 0 {
			return t[0], true
		}
	}

	return nil, false
}
