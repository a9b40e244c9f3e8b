package expr

import "fmt"

// binary is the shared plumbing behind every two-argument operator. The
// children are evaluated in a fixed left-before-right order so buffer
// writes are reproducible across runs. Each child has its own value and
// forward-derivative buffer on this node.
//
// InitDerivative memoizes the five local partials (∂/∂a, ∂/∂b, and the
// three second partials); the symbolic passes are then uniform across the
// family, while each concrete kind keeps its own numeric fast paths.
type binary struct {
	kind   OperatorKind
	symbol string
	a1, a2 Operator

	buf1, buf2 evalBuffer

	// partialsBuilder constructs (dx, dy, dxx, dxy, dyy).
	partialsBuilder func() (dx, dy, dxx, dxy, dyy Operator)

	dx, dy        Operator
	dxx, dxy, dyy Operator

	monotonicity MonotonicityType
	curvature    CurvatureType
}

func (b *binary) ensure(pos int) {
	b.buf1.ensure(pos)
	b.buf2.ensure(pos)
}

func (b *binary) stored(pos int) (v1, v2 float64, err error) {
	if !b.buf1.hasVal(pos) || !b.buf2.hasVal(pos) {
		return 0, 0, fmt.Errorf("%q: backward at position %d: %w", b.symbol, pos, ErrNotEvaluated)
	}
	return b.buf1.val[pos], b.buf2.val[pos], nil
}

func (b *binary) storedAll(pos int) (v1, v2, d1, d2 float64, err error) {
	if !b.buf1.hasVal(pos) || !b.buf2.hasVal(pos) ||
		!b.buf1.hasDval(pos) || !b.buf2.hasDval(pos) {
		return 0, 0, 0, 0, fmt.Errorf("%q: second-order at position %d: %w",
			b.symbol, pos, ErrNotEvaluated)
	}
	return b.buf1.val[pos], b.buf2.val[pos], b.buf1.dval[pos], b.buf2.dval[pos], nil
}

// evalChildren evaluates and buffers both children, returning the first
// domain failure but never short-circuiting the second child's buffer write.
func (b *binary) evalChildren(pos int, x []float64) (float64, float64, error) {
	b.ensure(pos)
	v1, err1 := b.a1.Evaluate(pos, x)
	b.buf1.setVal(pos, v1)
	v2, err2 := b.a2.Evaluate(pos, x)
	b.buf2.setVal(pos, v2)
	if err1 != nil {
		return v1, v2, err1
	}
	return v1, v2, err2
}

// forwardChildren runs ADForward on both children and buffers everything.
func (b *binary) forwardChildren(pos int, x, seed []float64) (v1, v2, d1, d2 float64, err error) {
	b.ensure(pos)
	v1, d1, err1 := b.a1.ADForward(pos, x, seed)
	b.buf1.setVal(pos, v1)
	b.buf1.setDval(pos, d1)
	v2, d2, err2 := b.a2.ADForward(pos, x, seed)
	b.buf2.setVal(pos, v2)
	b.buf2.setDval(pos, d2)
	if err1 != nil {
		return v1, v2, d1, d2, err1
	}
	return v1, v2, d1, d2, err2
}

// forwardStoredChildren runs ADForwardStored on both children.
func (b *binary) forwardStoredChildren(pos int, seed []float64) (d1, d2 float64, err error) {
	if !b.buf1.hasVal(pos) || !b.buf2.hasVal(pos) {
		return 0, 0, fmt.Errorf("%q: forward at position %d: %w", b.symbol, pos, ErrNotEvaluated)
	}
	d1, err = b.a1.ADForwardStored(pos, seed)
	if err != nil {
		return 0, 0, err
	}
	b.buf1.setDval(pos, d1)
	d2, err = b.a2.ADForwardStored(pos, seed)
	if err != nil {
		return 0, 0, err
	}
	b.buf2.setDval(pos, d2)
	return d1, d2, nil
}

func (b *binary) Differentiate(index int) Operator {
	return Add(Mul(b.dx, b.a1.Differentiate(index)),
		Mul(b.dy, b.a2.Differentiate(index)))
}

func (b *binary) ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator {
	d1 := b.a1.ADForwardSymbolic(vars, seeds, newIS)
	d2 := b.a2.ADForwardSymbolic(vars, seeds, newIS)
	return Add(Mul(b.dx, d1), Mul(b.dy, d2))
}

func (b *binary) ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator) {
	b.a1.ADBackwardSymbolic(vars, project(Mul(b.dx, seed), newIS), df, newIS)
	b.a2.ADBackwardSymbolic(vars, project(Mul(b.dy, seed), newIS), df, newIS)
}

func (b *binary) ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {
	adSymCommon2(b.a1, b.a2, b.dx, b.dy, b.dxx, b.dxy, b.dyy,
		vars, l, S, dimS, dfS, ldf, H, newLIS, newSIS, newHIS)
}

func (b *binary) InitDerivative() {
	if b.dx != nil {
		return
	}
	dx, dy, dxx, dxy, dyy := b.partialsBuilder()
	b.dx = AsTreeProjection(dx)
	b.dy = AsTreeProjection(dy)
	b.dxx = AsTreeProjection(dxx)
	b.dxy = AsTreeProjection(dxy)
	b.dyy = AsTreeProjection(dyy)
	b.a1.InitDerivative()
	b.a2.InitDerivative()
}

func (b *binary) IsOneOrZero() NeutralElement { return NeutralNeither }

func (b *binary) IsDependingOn(kind VarKind) bool {
	return b.a1.IsDependingOn(kind) || b.a2.IsDependingOn(kind)
}

func (b *binary) DependsOn(vars []VarID, implicit []bool) bool {
	return b.a1.DependsOn(vars, implicit) || b.a2.DependsOn(vars, implicit)
}

func (b *binary) SetMonotonicity(m MonotonicityType) { b.monotonicity = m }

func (b *binary) SetCurvature(c CurvatureType) { b.curvature = c }

func (b *binary) IsSymbolic() bool {
	return b.a1.IsSymbolic() && b.a2.IsSymbolic()
}

func (b *binary) IsVariable() (VarID, bool) { return VarID{}, false }

func (b *binary) Kind() OperatorKind { return b.kind }

func (b *binary) EnumerateVariables(list *IndexList) {
	b.a1.EnumerateVariables(list)
	b.a2.EnumerateVariables(list)
}

func (b *binary) LoadIndices(list *IndexList) {
	b.a1.LoadIndices(list)
	b.a2.LoadIndices(list)
}

func (b *binary) SetVariableExportName(kind VarKind, names []string) {
	b.a1.SetVariableExportName(kind, names)
	b.a2.SetVariableExportName(kind, names)
}

func (b *binary) ClearBuffer() {
	b.buf1.clear()
	b.buf2.clear()
	b.a1.ClearBuffer()
	b.a2.ClearBuffer()
}

func (b *binary) String() string {
	return "(" + b.a1.String() + b.symbol + b.a2.String() + ")"
}
