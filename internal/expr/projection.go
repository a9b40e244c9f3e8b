package expr

// TreeProjection is the shared-node layer: it wraps a sub-expression so the
// same handle can stand in for every repeated occurrence, letting the
// derivative-graph passes deduplicate intermediates instead of copying
// them. All capability calls delegate to the wrapped child.
type TreeProjection struct {
	child Operator

	monotonicity MonotonicityType
	curvature    CurvatureType
}

// AsTreeProjection wraps op in a TreeProjection unless it already is one or
// is a leaf, which needs no projection.
func AsTreeProjection(op Operator) Operator {
	switch op.(type) {
	case *TreeProjection, *Constant, *Variable:
		return op
	}
	return &TreeProjection{child: op}
}

// project wraps op for sharing and appends the new intermediate to the
// caller-supplied list for later deduplication.
func project(op Operator, list *[]Operator) Operator {
	p := AsTreeProjection(op)
	if list != nil {
		if _, isNew := p.(*TreeProjection); isNew {
			*list = append(*list, p)
		}
	}
	return p
}

// Child returns the wrapped sub-expression.
func (p *TreeProjection) Child() Operator { return p.child }

func (p *TreeProjection) Evaluate(pos int, x []float64) (float64, error) {
	return p.child.Evaluate(pos, x)
}

func (p *TreeProjection) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	return p.child.ADForward(pos, x, seed)
}

func (p *TreeProjection) ADForwardStored(pos int, seed []float64) (float64, error) {
	return p.child.ADForwardStored(pos, seed)
}

func (p *TreeProjection) ADBackward(pos int, seed float64, df []float64) error {
	return p.child.ADBackward(pos, seed, df)
}

func (p *TreeProjection) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	return p.child.ADForward2(pos, seed, dseed)
}

func (p *TreeProjection) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	return p.child.ADBackward2(pos, seed1, seed2, df, ddf)
}

func (p *TreeProjection) Differentiate(index int) Operator {
	return p.child.Differentiate(index)
}

func (p *TreeProjection) ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator {
	return p.child.ADForwardSymbolic(vars, seeds, newIS)
}

func (p *TreeProjection) ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator) {
	p.child.ADBackwardSymbolic(vars, seed, df, newIS)
}

func (p *TreeProjection) ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {
	p.child.ADSymmetric(vars, l, S, dimS, dfS, ldf, H, newLIS, newSIS, newHIS)
}

func (p *TreeProjection) Substitute(index int, sub Operator) Operator {
	return AsTreeProjection(p.child.Substitute(index, sub))
}

func (p *TreeProjection) InitDerivative() { p.child.InitDerivative() }

func (p *TreeProjection) IsOneOrZero() NeutralElement { return p.child.IsOneOrZero() }

func (p *TreeProjection) IsDependingOn(kind VarKind) bool { return p.child.IsDependingOn(kind) }

func (p *TreeProjection) DependsOn(vars []VarID, implicit []bool) bool {
	return p.child.DependsOn(vars, implicit)
}

func (p *TreeProjection) IsLinearIn(vars []VarID, implicit []bool) bool {
	return p.child.IsLinearIn(vars, implicit)
}

func (p *TreeProjection) IsPolynomialIn(vars []VarID, implicit []bool) bool {
	return p.child.IsPolynomialIn(vars, implicit)
}

func (p *TreeProjection) IsRationalIn(vars []VarID, implicit []bool) bool {
	return p.child.IsRationalIn(vars, implicit)
}

func (p *TreeProjection) Monotonicity() MonotonicityType {
	if p.monotonicity != MonotonicityUnknown {
		return p.monotonicity
	}
	return p.child.Monotonicity()
}

func (p *TreeProjection) Curvature() CurvatureType {
	if p.curvature != CurvatureUnknown {
		return p.curvature
	}
	return p.child.Curvature()
}

func (p *TreeProjection) SetMonotonicity(m MonotonicityType) { p.monotonicity = m }

func (p *TreeProjection) SetCurvature(c CurvatureType) { p.curvature = c }

func (p *TreeProjection) IsSymbolic() bool { return p.child.IsSymbolic() }

func (p *TreeProjection) IsVariable() (VarID, bool) { return VarID{}, false }

func (p *TreeProjection) Kind() OperatorKind { return KindProjection }

func (p *TreeProjection) EnumerateVariables(list *IndexList) { p.child.EnumerateVariables(list) }

func (p *TreeProjection) LoadIndices(list *IndexList) { p.child.LoadIndices(list) }

func (p *TreeProjection) SetVariableExportName(kind VarKind, names []string) {
	p.child.SetVariableExportName(kind, names)
}

func (p *TreeProjection) ClearBuffer() { p.child.ClearBuffer() }

func (p *TreeProjection) String() string { return p.child.String() }
