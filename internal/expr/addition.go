package expr

// Addition is the sum operator a+b.
type Addition struct {
	binary
}

// NewAddition creates a sum node.
func NewAddition(a, b Operator) *Addition {
	n := &Addition{binary{kind: KindAddition, symbol: "+", a1: a, a2: b}}
	n.partialsBuilder = func() (Operator, Operator, Operator, Operator, Operator) {
		one := NewConstant(1, NeutralOne)
		zero := NewConstant(0, NeutralZero)
		return one, one, zero, zero, zero
	}
	return n
}

func (n *Addition) Evaluate(pos int, x []float64) (float64, error) {
	v1, v2, err := n.evalChildren(pos, x)
	return v1 + v2, err
}

func (n *Addition) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	v1, v2, d1, d2, err := n.forwardChildren(pos, x, seed)
	return v1 + v2, d1 + d2, err
}

func (n *Addition) ADForwardStored(pos int, seed []float64) (float64, error) {
	d1, d2, err := n.forwardStoredChildren(pos, seed)
	return d1 + d2, err
}

func (n *Addition) ADBackward(pos int, seed float64, df []float64) error {
	if _, _, err := n.stored(pos); err != nil {
		return err
	}
	if err := n.a1.ADBackward(pos, seed, df); err != nil {
		return err
	}
	return n.a2.ADBackward(pos, seed, df)
}

func (n *Addition) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	d1, dd1, err := n.a1.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	d2, dd2, err := n.a2.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	return d1 + d2, dd1 + dd2, nil
}

func (n *Addition) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	if err := n.a1.ADBackward2(pos, seed1, seed2, df, ddf); err != nil {
		return err
	}
	return n.a2.ADBackward2(pos, seed1, seed2, df, ddf)
}

func (n *Addition) Substitute(index int, sub Operator) Operator {
	return NewAddition(n.a1.Substitute(index, sub), n.a2.Substitute(index, sub))
}

func (n *Addition) Monotonicity() MonotonicityType {
	if n.monotonicity != MonotonicityUnknown {
		return n.monotonicity
	}
	return monoAdd(n.a1.Monotonicity(), n.a2.Monotonicity())
}

func (n *Addition) Curvature() CurvatureType {
	if n.curvature != CurvatureUnknown {
		return n.curvature
	}
	return curvAdd(n.a1.Curvature(), n.a2.Curvature())
}

func (n *Addition) IsLinearIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsLinearIn(vars, implicit) && n.a2.IsLinearIn(vars, implicit)
}

func (n *Addition) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsPolynomialIn(vars, implicit) && n.a2.IsPolynomialIn(vars, implicit)
}

func (n *Addition) IsRationalIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsRationalIn(vars, implicit) && n.a2.IsRationalIn(vars, implicit)
}

// monoAdd combines the monotonicities of two summed expressions.
func monoAdd(m1, m2 MonotonicityType) MonotonicityType {
	if m1 == MonotonicityConstant {
		return m2
	}
	if m2 == MonotonicityConstant {
		return m1
	}
	if m1 == m2 && m1 != MonotonicityNonmonotonic {
		return m1
	}
	return MonotonicityNonmonotonic
}

// curvAdd combines the curvatures of two summed expressions.
func curvAdd(c1, c2 CurvatureType) CurvatureType {
	if c1 == CurvatureConstant {
		return c2
	}
	if c2 == CurvatureConstant {
		return c1
	}
	if c1 == CurvatureAffine {
		return c2
	}
	if c2 == CurvatureAffine {
		return c1
	}
	if c1 == c2 && (c1 == CurvatureConvex || c1 == CurvatureConcave) {
		return c1
	}
	return CurvatureNeither
}
