package expr

// Subtraction is the difference operator a-b.
type Subtraction struct {
	binary
}

// NewSubtraction creates a difference node.
func NewSubtraction(a, b Operator) *Subtraction {
	n := &Subtraction{binary{kind: KindSubtraction, symbol: "-", a1: a, a2: b}}
	n.partialsBuilder = func() (Operator, Operator, Operator, Operator, Operator) {
		zero := NewConstant(0, NeutralZero)
		return NewConstant(1, NeutralOne), NewConstant(-1, NeutralNeither), zero, zero, zero
	}
	return n
}

func (n *Subtraction) Evaluate(pos int, x []float64) (float64, error) {
	v1, v2, err := n.evalChildren(pos, x)
	return v1 - v2, err
}

func (n *Subtraction) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	v1, v2, d1, d2, err := n.forwardChildren(pos, x, seed)
	return v1 - v2, d1 - d2, err
}

func (n *Subtraction) ADForwardStored(pos int, seed []float64) (float64, error) {
	d1, d2, err := n.forwardStoredChildren(pos, seed)
	return d1 - d2, err
}

func (n *Subtraction) ADBackward(pos int, seed float64, df []float64) error {
	if _, _, err := n.stored(pos); err != nil {
		return err
	}
	if err := n.a1.ADBackward(pos, seed, df); err != nil {
		return err
	}
	return n.a2.ADBackward(pos, -seed, df)
}

func (n *Subtraction) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	d1, dd1, err := n.a1.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	d2, dd2, err := n.a2.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	return d1 - d2, dd1 - dd2, nil
}

func (n *Subtraction) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	if err := n.a1.ADBackward2(pos, seed1, seed2, df, ddf); err != nil {
		return err
	}
	return n.a2.ADBackward2(pos, -seed1, -seed2, df, ddf)
}

func (n *Subtraction) Substitute(index int, sub Operator) Operator {
	return NewSubtraction(n.a1.Substitute(index, sub), n.a2.Substitute(index, sub))
}

func (n *Subtraction) Monotonicity() MonotonicityType {
	if n.monotonicity != MonotonicityUnknown {
		return n.monotonicity
	}
	return monoAdd(n.a1.Monotonicity(), monoFlip(n.a2.Monotonicity()))
}

func (n *Subtraction) Curvature() CurvatureType {
	if n.curvature != CurvatureUnknown {
		return n.curvature
	}
	return curvAdd(n.a1.Curvature(), curvFlip(n.a2.Curvature()))
}

func (n *Subtraction) IsLinearIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsLinearIn(vars, implicit) && n.a2.IsLinearIn(vars, implicit)
}

func (n *Subtraction) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsPolynomialIn(vars, implicit) && n.a2.IsPolynomialIn(vars, implicit)
}

func (n *Subtraction) IsRationalIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsRationalIn(vars, implicit) && n.a2.IsRationalIn(vars, implicit)
}

// curvFlip mirrors curvature through a sign change.
func curvFlip(c CurvatureType) CurvatureType {
	switch c {
	case CurvatureConvex:
		return CurvatureConcave
	case CurvatureConcave:
		return CurvatureConvex
	}
	return c
}
