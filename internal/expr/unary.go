package expr

import (
	"fmt"
	"math"
)

// unary is the shared implementation behind every one-argument operator.
// All evaluate/AD variants reduce to the same shape: evaluate the inner
// argument, apply the outer callback, and combine with the recursive inner
// derivative via the chain rule. Only the (f, f′, f″) callbacks, the
// operator tag, and the symbolic derivative-graph builders vary per kind.
//
// The evaluation buffer stores the argument's value and the argument's
// directional derivative at each position, which is what backward-mode and
// second-order calls consume.
type unary struct {
	kind  OperatorKind
	cname string
	arg   Operator

	fcn   func(float64) float64 // f
	dfcn  func(float64) float64 // f′
	ddfcn func(float64) float64 // f″

	// derivBuilder constructs the symbolic graphs for f′(argument) and
	// f″(argument) from elementary building blocks.
	derivBuilder func() (d, dd Operator)
	// monoRule maps the argument's monotonicity to the node's; nil means
	// nonmonotonic.
	monoRule func(MonotonicityType) MonotonicityType
	// curvRule maps the argument's curvature to the node's; nil means
	// neither convex nor concave.
	curvRule func(CurvatureType) CurvatureType

	buf evalBuffer

	derivative  Operator // memoized f′(argument)
	derivative2 Operator // memoized f″(argument)

	monotonicity MonotonicityType
	curvature    CurvatureType
}

func (u *unary) Evaluate(pos int, x []float64) (float64, error) {
	u.buf.ensure(pos)
	a, err := u.arg.Evaluate(pos, x)
	u.buf.setVal(pos, a)
	if err != nil {
		return math.NaN(), err
	}
	v := u.fcn(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("%s(%g): %w", u.cname, a, ErrOutOfDomain)
	}
	return v, nil
}

func (u *unary) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	u.buf.ensure(pos)
	a, da, err := u.arg.ADForward(pos, x, seed)
	u.buf.setVal(pos, a)
	u.buf.setDval(pos, da)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	v := u.fcn(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, math.NaN(), fmt.Errorf("%s(%g): %w", u.cname, a, ErrOutOfDomain)
	}
	return v, u.dfcn(a) * da, nil
}

func (u *unary) ADForwardStored(pos int, seed []float64) (float64, error) {
	if !u.buf.hasVal(pos) {
		return 0, fmt.Errorf("%s: forward at position %d: %w", u.cname, pos, ErrNotEvaluated)
	}
	da, err := u.arg.ADForwardStored(pos, seed)
	if err != nil {
		return 0, err
	}
	u.buf.setDval(pos, da)
	return u.dfcn(u.buf.val[pos]) * da, nil
}

func (u *unary) ADBackward(pos int, seed float64, df []float64) error {
	if !u.buf.hasVal(pos) {
		return fmt.Errorf("%s: backward at position %d: %w", u.cname, pos, ErrNotEvaluated)
	}
	return u.arg.ADBackward(pos, u.dfcn(u.buf.val[pos])*seed, df)
}

func (u *unary) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	if !u.buf.hasVal(pos) || !u.buf.hasDval(pos) {
		return 0, 0, fmt.Errorf("%s: second-order forward at position %d: %w",
			u.cname, pos, ErrNotEvaluated)
	}
	da, dda, err := u.arg.ADForward2(pos, seed, dseed)
	if err != nil {
		return 0, 0, err
	}
	a := u.buf.val[pos]
	nn := u.dfcn(a)
	dval := nn * da
	ddval := nn*dda + u.ddfcn(a)*u.buf.dval[pos]*da
	return dval, ddval, nil
}

func (u *unary) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	if !u.buf.hasVal(pos) || !u.buf.hasDval(pos) {
		return fmt.Errorf("%s: second-order backward at position %d: %w",
			u.cname, pos, ErrNotEvaluated)
	}
	a := u.buf.val[pos]
	nn := u.dfcn(a)
	return u.arg.ADBackward2(pos,
		seed1*nn,
		seed2*nn+seed1*u.ddfcn(a)*u.buf.dval[pos],
		df, ddf)
}

func (u *unary) Differentiate(index int) Operator {
	return Mul(u.derivative, u.arg.Differentiate(index))
}

func (u *unary) ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator {
	return Mul(u.derivative, u.arg.ADForwardSymbolic(vars, seeds, newIS))
}

func (u *unary) ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator) {
	u.arg.ADBackwardSymbolic(vars, project(Mul(u.derivative, seed), newIS), df, newIS)
}

func (u *unary) ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {
	adSymCommon(u.arg, u.derivative, u.derivative2, vars, l, S, dimS,
		dfS, ldf, H, newLIS, newSIS, newHIS)
}

func (u *unary) InitDerivative() {
	if u.derivative != nil {
		return
	}
	d, dd := u.derivBuilder()
	u.derivative = AsTreeProjection(d)
	u.derivative2 = AsTreeProjection(dd)
	u.arg.InitDerivative()
}

func (u *unary) IsOneOrZero() NeutralElement { return NeutralNeither }

func (u *unary) IsDependingOn(kind VarKind) bool { return u.arg.IsDependingOn(kind) }

func (u *unary) DependsOn(vars []VarID, implicit []bool) bool {
	return u.arg.DependsOn(vars, implicit)
}

// A transcendental is linear, polynomial, or rational in a set of variables
// only when it does not depend on them at all.
func (u *unary) IsLinearIn(vars []VarID, implicit []bool) bool {
	return !u.arg.DependsOn(vars, implicit)
}

func (u *unary) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return !u.arg.DependsOn(vars, implicit)
}

func (u *unary) IsRationalIn(vars []VarID, implicit []bool) bool {
	return !u.arg.DependsOn(vars, implicit)
}

func (u *unary) Monotonicity() MonotonicityType {
	if u.monotonicity != MonotonicityUnknown {
		return u.monotonicity
	}
	m := u.arg.Monotonicity()
	if m == MonotonicityConstant {
		return MonotonicityConstant
	}
	if u.monoRule != nil {
		return u.monoRule(m)
	}
	return MonotonicityNonmonotonic
}

func (u *unary) Curvature() CurvatureType {
	if u.curvature != CurvatureUnknown {
		return u.curvature
	}
	c := u.arg.Curvature()
	if c == CurvatureConstant {
		return CurvatureConstant
	}
	if u.curvRule != nil {
		return u.curvRule(c)
	}
	return CurvatureNeither
}

func (u *unary) SetMonotonicity(m MonotonicityType) { u.monotonicity = m }

func (u *unary) SetCurvature(c CurvatureType) { u.curvature = c }

func (u *unary) IsSymbolic() bool { return u.arg.IsSymbolic() }

func (u *unary) IsVariable() (VarID, bool) { return VarID{}, false }

func (u *unary) Kind() OperatorKind { return u.kind }

func (u *unary) EnumerateVariables(list *IndexList) { u.arg.EnumerateVariables(list) }

func (u *unary) LoadIndices(list *IndexList) { u.arg.LoadIndices(list) }

func (u *unary) SetVariableExportName(kind VarKind, names []string) {
	u.arg.SetVariableExportName(kind, names)
}

func (u *unary) ClearBuffer() {
	u.buf.clear()
	u.arg.ClearBuffer()
}

func (u *unary) String() string {
	return "(" + u.cname + "(" + u.arg.String() + "))"
}

// monoInherit passes the argument's monotonicity through an increasing
// function; monoFlip reverses it through a decreasing one.
func monoInherit(m MonotonicityType) MonotonicityType { return m }

func monoFlip(m MonotonicityType) MonotonicityType {
	switch m {
	case MonotonicityNondecreasing:
		return MonotonicityNonincreasing
	case MonotonicityNonincreasing:
		return MonotonicityNondecreasing
	}
	return m
}
