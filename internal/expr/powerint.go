package expr

import (
	"fmt"
	"math"
	"strconv"
)

// PowerInt is the power operator argument^exponent for an integer exponent.
// It is kept distinct from Power because an integer exponent permits
// algebraic shortcuts and avoids log-based branch cuts: exponent 0
// evaluates to 1 for any finite argument and differentiates to an exact
// symbolic zero without recursing into the argument subtree.
//
// Memoized derivative graphs: exponent·argument^(exponent-1) and
// exponent·(exponent-1)·argument^(exponent-2).
//
// Values follow math.Pow semantics, so Pow(0, 0) is 1; a zero argument
// with a negative exponent is a domain failure.
type PowerInt struct {
	arg      Operator
	exponent int

	buf evalBuffer

	derivative  Operator
	derivative2 Operator

	monotonicity MonotonicityType
	curvature    CurvatureType
}

// NewPowerInt creates an integer-power node.
func NewPowerInt(arg Operator, exponent int) *PowerInt {
	return &PowerInt{arg: arg, exponent: exponent}
}

// Exponent returns the integer exponent.
func (n *PowerInt) Exponent() int { return n.exponent }

func (n *PowerInt) Evaluate(pos int, x []float64) (float64, error) {
	n.buf.ensure(pos)
	a, err := n.arg.Evaluate(pos, x)
	n.buf.setVal(pos, a)
	if err != nil {
		return math.NaN(), err
	}
	v := math.Pow(a, float64(n.exponent))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("pow(%g,%d): %w", a, n.exponent, ErrOutOfDomain)
	}
	return v, nil
}

func (n *PowerInt) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	n.buf.ensure(pos)
	a, da, err := n.arg.ADForward(pos, x, seed)
	n.buf.setVal(pos, a)
	n.buf.setDval(pos, da)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	e := float64(n.exponent)
	v := math.Pow(a, e)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, math.NaN(), fmt.Errorf("pow(%g,%d): %w", a, n.exponent, ErrOutOfDomain)
	}
	return v, e * math.Pow(a, e-1) * da, nil
}

func (n *PowerInt) ADForwardStored(pos int, seed []float64) (float64, error) {
	if !n.buf.hasVal(pos) {
		return 0, fmt.Errorf("pow_int: forward at position %d: %w", pos, ErrNotEvaluated)
	}
	da, err := n.arg.ADForwardStored(pos, seed)
	if err != nil {
		return 0, err
	}
	n.buf.setDval(pos, da)
	e := float64(n.exponent)
	return e * math.Pow(n.buf.val[pos], e-1) * da, nil
}

func (n *PowerInt) ADBackward(pos int, seed float64, df []float64) error {
	if !n.buf.hasVal(pos) {
		return fmt.Errorf("pow_int: backward at position %d: %w", pos, ErrNotEvaluated)
	}
	e := float64(n.exponent)
	return n.arg.ADBackward(pos, e*math.Pow(n.buf.val[pos], e-1)*seed, df)
}

func (n *PowerInt) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	if !n.buf.hasVal(pos) || !n.buf.hasDval(pos) {
		return 0, 0, fmt.Errorf("pow_int: second-order forward at position %d: %w",
			pos, ErrNotEvaluated)
	}
	da, dda, err := n.arg.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	a := n.buf.val[pos]
	e := float64(n.exponent)
	nn := e * math.Pow(a, e-1)
	dval := nn * da
	ddval := nn*dda + e*(e-1)*math.Pow(a, e-2)*n.buf.dval[pos]*da
	return dval, ddval, nil
}

func (n *PowerInt) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	if !n.buf.hasVal(pos) || !n.buf.hasDval(pos) {
		return fmt.Errorf("pow_int: second-order backward at position %d: %w",
			pos, ErrNotEvaluated)
	}
	a := n.buf.val[pos]
	e := float64(n.exponent)
	nn := e * math.Pow(a, e-1)
	return n.arg.ADBackward2(pos,
		seed1*nn,
		seed2*nn+seed1*e*(e-1)*math.Pow(a, e-2)*n.buf.dval[pos],
		df, ddf)
}

func (n *PowerInt) Differentiate(index int) Operator {
	if n.exponent == 0 {
		return NewConstant(0, NeutralZero)
	}
	return Mul(n.derivative, n.arg.Differentiate(index))
}

func (n *PowerInt) ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator {
	return Mul(n.derivative, n.arg.ADForwardSymbolic(vars, seeds, newIS))
}

func (n *PowerInt) ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator) {
	n.arg.ADBackwardSymbolic(vars, project(Mul(n.derivative, seed), newIS), df, newIS)
}

func (n *PowerInt) ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {
	adSymCommon(n.arg, n.derivative, n.derivative2, vars, l, S, dimS,
		dfS, ldf, H, newLIS, newSIS, newHIS)
}

func (n *PowerInt) InitDerivative() {
	if n.derivative != nil {
		return
	}
	n.derivative = AsTreeProjection(
		Mul(Const(float64(n.exponent)), PowInt(n.arg, n.exponent-1)))
	n.derivative2 = AsTreeProjection(
		Mul(Mul(Const(float64(n.exponent)), Const(float64(n.exponent-1))),
			PowInt(n.arg, n.exponent-2)))
	n.arg.InitDerivative()
}

func (n *PowerInt) Substitute(index int, sub Operator) Operator {
	return NewPowerInt(n.arg.Substitute(index, sub), n.exponent)
}

func (n *PowerInt) IsOneOrZero() NeutralElement { return NeutralNeither }

func (n *PowerInt) IsDependingOn(kind VarKind) bool {
	return n.arg.IsDependingOn(kind)
}

func (n *PowerInt) DependsOn(vars []VarID, implicit []bool) bool {
	if n.exponent == 0 {
		return false
	}
	return n.arg.DependsOn(vars, implicit)
}

func (n *PowerInt) IsLinearIn(vars []VarID, implicit []bool) bool {
	if n.exponent == 0 {
		return true
	}
	return n.exponent == 1 && n.arg.IsLinearIn(vars, implicit)
}

func (n *PowerInt) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return n.exponent >= 0 && n.arg.IsPolynomialIn(vars, implicit)
}

func (n *PowerInt) IsRationalIn(vars []VarID, implicit []bool) bool {
	return n.arg.IsRationalIn(vars, implicit)
}

func (n *PowerInt) Monotonicity() MonotonicityType {
	if n.monotonicity != MonotonicityUnknown {
		return n.monotonicity
	}
	m := n.arg.Monotonicity()
	if m == MonotonicityConstant {
		return MonotonicityConstant
	}
	if n.exponent%2 == 0 {
		if n.exponent == 0 {
			return MonotonicityConstant
		}
		return MonotonicityNonmonotonic
	}
	if n.exponent > 0 {
		return m
	}
	return MonotonicityNonmonotonic
}

func (n *PowerInt) Curvature() CurvatureType {
	if n.curvature != CurvatureUnknown {
		return n.curvature
	}
	cc := n.arg.Curvature()
	if cc == CurvatureConstant {
		return CurvatureConstant
	}
	if n.exponent%2 == 0 {
		switch {
		case n.exponent < 0:
			return CurvatureNeither
		case n.exponent == 0:
			return CurvatureConstant
		case cc == CurvatureAffine:
			return CurvatureConvex
		}
		return CurvatureNeither
	}
	if n.exponent == 1 {
		return cc
	}
	return CurvatureNeither
}

func (n *PowerInt) SetMonotonicity(m MonotonicityType) { n.monotonicity = m }

func (n *PowerInt) SetCurvature(c CurvatureType) { n.curvature = c }

func (n *PowerInt) IsSymbolic() bool { return n.arg.IsSymbolic() }

func (n *PowerInt) IsVariable() (VarID, bool) { return VarID{}, false }

func (n *PowerInt) Kind() OperatorKind { return KindPowerInt }

func (n *PowerInt) EnumerateVariables(list *IndexList) {
	n.arg.EnumerateVariables(list)
}

func (n *PowerInt) LoadIndices(list *IndexList) {
	n.arg.LoadIndices(list)
}

func (n *PowerInt) SetVariableExportName(kind VarKind, names []string) {
	n.arg.SetVariableExportName(kind, names)
}

func (n *PowerInt) ClearBuffer() {
	n.buf.clear()
	n.arg.ClearBuffer()
}

// String renders "(argument)" for exponent 1 and the doubled-product form
// for the square of a bare variable, which spares the exported C code a
// pow() call.
func (n *PowerInt) String() string {
	if n.exponent == 1 {
		return "(" + n.arg.String() + ")"
	}
	if n.exponent == 2 {
		if _, ok := n.arg.IsVariable(); ok {
			s := n.arg.String()
			return "((" + s + ")*(" + s + "))"
		}
	}
	return "(pow(" + n.arg.String() + "," + strconv.Itoa(n.exponent) + "))"
}
