package expr

import (
	"fmt"
	"math"
)

// Power is the real-exponent power operator a^b, where the exponent is
// itself a sub-expression. Values follow math.Pow semantics: Pow(0, 0) is
// 1, while a negative base with a non-integer exponent yields NaN and is
// reported as a domain failure. Integer exponents should use PowerInt,
// which permits algebraic shortcuts and avoids log-based branch cuts.
type Power struct {
	binary
}

// NewPower creates a real-exponent power node.
func NewPower(base, exponent Operator) *Power {
	n := &Power{binary{kind: KindPower, symbol: "^", a1: base, a2: exponent}}
	n.partialsBuilder = func() (Operator, Operator, Operator, Operator, Operator) {
		one := NewConstant(1, NeutralOne)
		bMinus1 := Sub(exponent, one)
		dx := Mul(exponent, Pow(base, bMinus1))
		dy := Mul(Pow(base, exponent), NewLog(base))
		dxx := Mul(Mul(exponent, bMinus1),
			Pow(base, Sub(exponent, NewConstant(2, NeutralNeither))))
		dxy := Mul(Pow(base, bMinus1), Add(one, Mul(exponent, NewLog(base))))
		dyy := Mul(Pow(base, exponent), PowInt(NewLog(base), 2))
		return dx, dy, dxx, dxy, dyy
	}
	return n
}

func (n *Power) value(v1, v2 float64) (float64, error) {
	v := math.Pow(v1, v2)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("pow(%g,%g): %w", v1, v2, ErrOutOfDomain)
	}
	return v, nil
}

func (n *Power) Evaluate(pos int, x []float64) (float64, error) {
	v1, v2, err := n.evalChildren(pos, x)
	if err != nil {
		return math.NaN(), err
	}
	return n.value(v1, v2)
}

func (n *Power) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	v1, v2, d1, d2, err := n.forwardChildren(pos, x, seed)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	v, err := n.value(v1, v2)
	if err != nil {
		return v, math.NaN(), err
	}
	return v, v2*math.Pow(v1, v2-1)*d1 + v*math.Log(v1)*d2, nil
}

func (n *Power) ADForwardStored(pos int, seed []float64) (float64, error) {
	d1, d2, err := n.forwardStoredChildren(pos, seed)
	if err != nil {
		return 0, err
	}
	v1, v2 := n.buf1.val[pos], n.buf2.val[pos]
	return v2*math.Pow(v1, v2-1)*d1 + math.Pow(v1, v2)*math.Log(v1)*d2, nil
}

func (n *Power) ADBackward(pos int, seed float64, df []float64) error {
	v1, v2, err := n.stored(pos)
	if err != nil {
		return err
	}
	if err := n.a1.ADBackward(pos, v2*math.Pow(v1, v2-1)*seed, df); err != nil {
		return err
	}
	return n.a2.ADBackward(pos, math.Pow(v1, v2)*math.Log(v1)*seed, df)
}

func (n *Power) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
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
	f := math.Pow(v1, v2)
	lg := math.Log(v1)
	fa := v2 * math.Pow(v1, v2-1)
	fb := f * lg
	faa := v2 * (v2 - 1) * math.Pow(v1, v2-2)
	fab := math.Pow(v1, v2-1) * (1 + v2*lg)
	fbb := f * lg * lg
	dval := fa*d1 + fb*d2
	ddval := fa*dd1 + fb*dd2 + faa*s1*d1 + fab*(s1*d2+d1*s2) + fbb*s2*d2
	return dval, ddval, nil
}

func (n *Power) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	v1, v2, s1, s2, err := n.storedAll(pos)
	if err != nil {
		return err
	}
	f := math.Pow(v1, v2)
	lg := math.Log(v1)
	fa := v2 * math.Pow(v1, v2-1)
	fb := f * lg
	faa := v2 * (v2 - 1) * math.Pow(v1, v2-2)
	fab := math.Pow(v1, v2-1) * (1 + v2*lg)
	fbb := f * lg * lg
	if err := n.a1.ADBackward2(pos, seed1*fa,
		seed2*fa+seed1*(faa*s1+fab*s2), df, ddf); err != nil {
		return err
	}
	return n.a2.ADBackward2(pos, seed1*fb,
		seed2*fb+seed1*(fab*s1+fbb*s2), df, ddf)
}

func (n *Power) Substitute(index int, sub Operator) Operator {
	return NewPower(n.a1.Substitute(index, sub), n.a2.Substitute(index, sub))
}

func (n *Power) Monotonicity() MonotonicityType {
	if n.monotonicity != MonotonicityUnknown {
		return n.monotonicity
	}
	if n.a1.Monotonicity() == MonotonicityConstant &&
		n.a2.Monotonicity() == MonotonicityConstant {
		return MonotonicityConstant
	}
	return MonotonicityNonmonotonic
}

func (n *Power) Curvature() CurvatureType {
	if n.curvature != CurvatureUnknown {
		return n.curvature
	}
	if n.a1.Curvature() == CurvatureConstant &&
		n.a2.Curvature() == CurvatureConstant {
		return CurvatureConstant
	}
	return CurvatureNeither
}

// A real-exponent power is polynomial or linear only when it is free of the
// queried variables altogether.
func (n *Power) IsLinearIn(vars []VarID, implicit []bool) bool {
	return !n.DependsOn(vars, implicit)
}

func (n *Power) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return !n.DependsOn(vars, implicit)
}

func (n *Power) IsRationalIn(vars []VarID, implicit []bool) bool {
	return !n.DependsOn(vars, implicit)
}

func (n *Power) String() string {
	return "(pow(" + n.a1.String() + "," + n.a2.String() + "))"
}
