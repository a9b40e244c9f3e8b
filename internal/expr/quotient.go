package expr

import (
	"fmt"
	"math"
)

// Quotient is the division operator a/b. Division by zero is a domain
// failure reported on the result, not a panic.
type Quotient struct {
	binary
}

// NewQuotient creates a quotient node.
func NewQuotient(a, b Operator) *Quotient {
	n := &Quotient{binary{kind: KindQuotient, symbol: "/", a1: a, a2: b}}
	n.partialsBuilder = func() (Operator, Operator, Operator, Operator, Operator) {
		minusOne := NewConstant(-1, NeutralNeither)
		dx := PowInt(b, -1)
		dy := Mul(minusOne, Mul(a, PowInt(b, -2)))
		dxx := NewConstant(0, NeutralZero)
		dxy := Mul(minusOne, PowInt(b, -2))
		dyy := Mul(NewConstant(2, NeutralNeither), Mul(a, PowInt(b, -3)))
		return dx, dy, dxx, dxy, dyy
	}
	return n
}

func (n *Quotient) Evaluate(pos int, x []float64) (float64, error) {
	v1, v2, err := n.evalChildren(pos, x)
	if err != nil {
		return math.NaN(), err
	}
	v := v1 / v2
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("(%g/%g): %w", v1, v2, ErrOutOfDomain)
	}
	return v, nil
}

func (n *Quotient) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	v1, v2, d1, d2, err := n.forwardChildren(pos, x, seed)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	v := v1 / v2
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, math.NaN(), fmt.Errorf("(%g/%g): %w", v1, v2, ErrOutOfDomain)
	}
	return v, d1/v2 - v1*d2/(v2*v2), nil
}

func (n *Quotient) ADForwardStored(pos int, seed []float64) (float64, error) {
	d1, d2, err := n.forwardStoredChildren(pos, seed)
	if err != nil {
		return 0, err
	}
	v1, v2 := n.buf1.val[pos], n.buf2.val[pos]
	return d1/v2 - v1*d2/(v2*v2), nil
}

func (n *Quotient) ADBackward(pos int, seed float64, df []float64) error {
	v1, v2, err := n.stored(pos)
	if err != nil {
		return err
	}
	if err := n.a1.ADBackward(pos, seed/v2, df); err != nil {
		return err
	}
	return n.a2.ADBackward(pos, -v1*seed/(v2*v2), df)
}

func (n *Quotient) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
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
	b2 := v2 * v2
	dval := d1/v2 - v1*d2/b2
	ddval := dd1/v2 - (s1*d2+d1*s2)/b2 - v1*dd2/b2 + 2*v1*s2*d2/(b2*v2)
	return dval, ddval, nil
}

func (n *Quotient) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	v1, v2, s1, s2, err := n.storedAll(pos)
	if err != nil {
		return err
	}
	b2 := v2 * v2
	fa := 1 / v2
	fb := -v1 / b2
	if err := n.a1.ADBackward2(pos, seed1*fa, seed2*fa-seed1*s2/b2, df, ddf); err != nil {
		return err
	}
	return n.a2.ADBackward2(pos, seed1*fb,
		seed2*fb+seed1*(-s1/b2+2*v1*s2/(b2*v2)), df, ddf)
}

func (n *Quotient) Substitute(index int, sub Operator) Operator {
	return NewQuotient(n.a1.Substitute(index, sub), n.a2.Substitute(index, sub))
}

func (n *Quotient) Monotonicity() MonotonicityType {
	if n.monotonicity != MonotonicityUnknown {
		return n.monotonicity
	}
	if n.a1.Monotonicity() == MonotonicityConstant &&
		n.a2.Monotonicity() == MonotonicityConstant {
		return MonotonicityConstant
	}
	return MonotonicityNonmonotonic
}

func (n *Quotient) Curvature() CurvatureType {
	if n.curvature != CurvatureUnknown {
		return n.curvature
	}
	c1 := n.a1.Curvature()
	c2 := n.a2.Curvature()
	if c1 == CurvatureConstant && c2 == CurvatureConstant {
		return CurvatureConstant
	}
	if c2 == CurvatureConstant && (c1 == CurvatureAffine) {
		return CurvatureAffine
	}
	return CurvatureNeither
}

func (n *Quotient) IsLinearIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsLinearIn(vars, implicit) && !n.a2.DependsOn(vars, implicit)
}

func (n *Quotient) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsPolynomialIn(vars, implicit) && !n.a2.DependsOn(vars, implicit)
}

func (n *Quotient) IsRationalIn(vars []VarID, implicit []bool) bool {
	return n.a1.IsRationalIn(vars, implicit) && n.a2.IsRationalIn(vars, implicit)
}
