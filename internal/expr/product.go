package expr

// Product is the product operator a·b. Its symmetric-AD pass carries the
// full second-order product rule: the mixed ∂²a and ∂²b contributions come
// through the child recursions and the ∂a·∂b cross term through the local
// dxy = 1 partial.
type Product struct {
	binary
}

// NewProduct creates a product node.
func NewProduct(a, b Operator) *Product {
	n := &Product{binary{kind: KindProduct, symbol: "*", a1: a, a2: b}}
	n.partialsBuilder = func() (Operator, Operator, Operator, Operator, Operator) {
		zero := NewConstant(0, NeutralZero)
		return b, a, zero, NewConstant(1, NeutralOne), zero
	}
	return n
}

func (n *Product) Evaluate(pos int, x []float64) (float64, error) {
	v1, v2, err := n.evalChildren(pos, x)
	return v1 * v2, err
}

func (n *Product) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	v1, v2, d1, d2, err := n.forwardChildren(pos, x, seed)
	return v1 * v2, d1*v2 + v1*d2, err
}

func (n *Product) ADForwardStored(pos int, seed []float64) (float64, error) {
	d1, d2, err := n.forwardStoredChildren(pos, seed)
	if err != nil {
		return 0, err
	}
	return d1*n.buf2.val[pos] + n.buf1.val[pos]*d2, nil
}

func (n *Product) ADBackward(pos int, seed float64, df []float64) error {
	v1, v2, err := n.stored(pos)
	if err != nil {
		return err
	}
	if err := n.a1.ADBackward(pos, v2*seed, df); err != nil {
		return err
	}
	return n.a2.ADBackward(pos, v1*seed, df)
}

func (n *Product) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	v1, v2, s1, s2, err := n.storedAll(pos)
	if err != nil {
		return 0, 0, err
	}
	d1, dd1, err := n.a1.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	d2, dd2, err := n.a2.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	dval := v2*d1 + v1*d2
	ddval := v2*dd1 + v1*dd2 + d1*s2 + d2*s1
	return dval, ddval, nil
}

func (n *Product) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	v1, v2, s1, s2, err := n.storedAll(pos)
	if err != nil {
		return err
	}
	if err := n.a1.ADBackward2(pos, seed1*v2, seed2*v2+seed1*s2, df, ddf); err != nil {
		return err
	}
	return n.a2.ADBackward2(pos, seed1*v1, seed2*v1+seed1*s1, df, ddf)
}

func (n *Product) Substitute(index int, sub Operator) Operator {
	return NewProduct(n.a1.Substitute(index, sub), n.a2.Substitute(index, sub))
}

func (n *Product) Monotonicity() MonotonicityType {
	if n.monotonicity != MonotonicityUnknown {
		return n.monotonicity
	}
	// The factor signs are unknown at analysis time, so anything beyond a
	// constant product is reported nonmonotonic.
	if n.a1.Monotonicity() == MonotonicityConstant &&
		n.a2.Monotonicity() == MonotonicityConstant {
		return MonotonicityConstant
	}
	return MonotonicityNonmonotonic
}

func (n *Product) Curvature() CurvatureType {
	if n.curvature != CurvatureUnknown {
		return n.curvature
	}
	c1 := n.a1.Curvature()
	c2 := n.a2.Curvature()
	switch {
	case c1 == CurvatureConstant && c2 == CurvatureConstant:
		return CurvatureConstant
	case c1 == CurvatureConstant && c2 == CurvatureAffine:
		return CurvatureAffine
	case c1 == CurvatureAffine && c2 == CurvatureConstant:
		return CurvatureAffine
	}
	return CurvatureNeither
}

func (n *Product) IsLinearIn(vars []VarID, implicit []bool) bool {
	if n.a1.IsLinearIn(vars, implicit) && !n.a2.DependsOn(vars, implicit) {
		return true
	}
	if n.a2.IsLinearIn(vars, implicit) && !n.a1.DependsOn(vars, implicit) {
		return true
	}
	return false
}

func (n *Product) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsPolynomialIn(vars, implicit) && n.a2.IsPolynomialIn(vars, implicit)
}

func (n *Product) IsRationalIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsRationalIn(vars, implicit) && n.a2.IsRationalIn(vars, implicit)
}
