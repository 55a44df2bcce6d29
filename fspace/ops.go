package fspace

// Derived linear-space operations. Zero and Lincomb form the minimal
// vector-space kernel; everything here is a thin composition over it and
// produces a fresh element, leaving the operands untouched.

// Add returns the element computing x + y.
func (sp *FunctionSpace) Add(x, y *Element) (*Element, error) {
	out := sp.Zero()
	if err := sp.Lincomb(1, x, 1, y, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns the element computing x - y.
func (sp *FunctionSpace) Sub(x, y *Element) (*Element, error) {
	out := sp.Zero()
	if err := sp.Lincomb(1, x, -1, y, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Scale returns the element computing a*x.
func (sp *FunctionSpace) Scale(a complex128, x *Element) (*Element, error) {
	out := sp.Zero()
	if err := sp.Lincomb(a, x, 0, x, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Neg returns the element computing -x.
func (sp *FunctionSpace) Neg(x *Element) (*Element, error) {
	return sp.Scale(-1, x)
}
