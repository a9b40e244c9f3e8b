package expr

import "strconv"

// Constant is a leaf node holding a double value plus its neutral-element
// classification. The classification, not the value, drives the algebraic
// shortcuts in the smart constructors.
type Constant struct {
	value   float64
	neutral NeutralElement

	monotonicity MonotonicityType
	curvature    CurvatureType
}

// NewConstant creates a constant leaf with an explicit classification.
func NewConstant(value float64, neutral NeutralElement) *Constant {
	return &Constant{value: value, neutral: neutral}
}

// Const creates a constant leaf, classifying exact zero and exact one
// automatically.
func Const(value float64) *Constant {
	switch value {
	case 0:
		return NewConstant(0, NeutralZero)
	case 1:
		return NewConstant(1, NeutralOne)
	}
	return NewConstant(value, NeutralNeither)
}

// Value returns the constant's value.
func (c *Constant) Value() float64 { return c.value }

func (c *Constant) Evaluate(pos int, x []float64) (float64, error) {
	return c.value, nil
}

func (c *Constant) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	return c.value, 0, nil
}

func (c *Constant) ADForwardStored(pos int, seed []float64) (float64, error) {
	return 0, nil
}

func (c *Constant) ADBackward(pos int, seed float64, df []float64) error {
	return nil
}

func (c *Constant) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	return 0, 0, nil
}

func (c *Constant) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	return nil
}

func (c *Constant) Differentiate(index int) Operator {
	return NewConstant(0, NeutralZero)
}

func (c *Constant) ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator {
	return NewConstant(0, NeutralZero)
}

func (c *Constant) ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator) {
}

func (c *Constant) ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {
	for i := 0; i < dimS; i++ {
		dfS[i] = NewConstant(0, NeutralZero)
	}
}

func (c *Constant) Substitute(index int, sub Operator) Operator { return c }

func (c *Constant) InitDerivative() {}

func (c *Constant) IsOneOrZero() NeutralElement { return c.neutral }

func (c *Constant) IsDependingOn(kind VarKind) bool { return false }

func (c *Constant) DependsOn(vars []VarID, implicit []bool) bool { return false }

func (c *Constant) IsLinearIn(vars []VarID, implicit []bool) bool { return true }

func (c *Constant) IsPolynomialIn(vars []VarID, implicit []bool) bool { return true }

func (c *Constant) IsRationalIn(vars []VarID, implicit []bool) bool { return true }

func (c *Constant) Monotonicity() MonotonicityType {
	if c.monotonicity != MonotonicityUnknown {
		return c.monotonicity
	}
	return MonotonicityConstant
}

func (c *Constant) Curvature() CurvatureType {
	if c.curvature != CurvatureUnknown {
		return c.curvature
	}
	return CurvatureConstant
}

func (c *Constant) SetMonotonicity(m MonotonicityType) { c.monotonicity = m }

func (c *Constant) SetCurvature(cv CurvatureType) { c.curvature = cv }

func (c *Constant) IsSymbolic() bool { return true }

func (c *Constant) IsVariable() (VarID, bool) { return VarID{}, false }

func (c *Constant) Kind() OperatorKind { return KindConstant }

func (c *Constant) EnumerateVariables(list *IndexList) {}

func (c *Constant) LoadIndices(list *IndexList) {}

func (c *Constant) SetVariableExportName(kind VarKind, names []string) {}

func (c *Constant) ClearBuffer() {}

func (c *Constant) String() string {
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}
