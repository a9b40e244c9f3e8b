package expr

import (
	"fmt"
	"strconv"
)

// Variable is a leaf node identified by a (kind, component) pair. Its
// evaluation slot is assigned by LoadIndices and stays -1 until then;
// numeric calls on an unassigned variable fail with ErrUnassignedVariable.
type Variable struct {
	id    VarID
	index int    // evaluation slot assigned by LoadIndices
	name  string // export display name, consumed by String

	monotonicity MonotonicityType
	curvature    CurvatureType
}

// NewVariable creates a variable leaf for the given (kind, component) pair.
func NewVariable(kind VarKind, component int) *Variable {
	return &Variable{id: VarID{Kind: kind, Component: component}, index: -1}
}

// ID returns the variable's identity.
func (v *Variable) ID() VarID { return v.id }

// Index returns the assigned evaluation slot, or -1 if unassigned.
func (v *Variable) Index() int { return v.index }

func (v *Variable) slot(x []float64) (int, error) {
	if v.index < 0 {
		return 0, fmt.Errorf("%s: %w", v.String(), ErrUnassignedVariable)
	}
	if v.index >= len(x) {
		return 0, fmt.Errorf("%s: slot %d with point of length %d: %w",
			v.String(), v.index, len(x), ErrIndexRange)
	}
	return v.index, nil
}

func (v *Variable) Evaluate(pos int, x []float64) (float64, error) {
	i, err := v.slot(x)
	if err != nil {
		return 0, err
	}
	return x[i], nil
}

func (v *Variable) ADForward(pos int, x, seed []float64) (float64, float64, error) {
	i, err := v.slot(x)
	if err != nil {
		return 0, 0, err
	}
	return x[i], seed[i], nil
}

func (v *Variable) ADForwardStored(pos int, seed []float64) (float64, error) {
	i, err := v.slot(seed)
	if err != nil {
		return 0, err
	}
	return seed[i], nil
}

func (v *Variable) ADBackward(pos int, seed float64, df []float64) error {
	i, err := v.slot(df)
	if err != nil {
		return err
	}
	df[i] += seed
	return nil
}

func (v *Variable) ADForward2(pos int, seed, dseed []float64) (float64, float64, error) {
	i, err := v.slot(seed)
	if err != nil {
		return 0, 0, err
	}
	return seed[i], dseed[i], nil
}

func (v *Variable) ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error {
	i, err := v.slot(df)
	if err != nil {
		return err
	}
	df[i] += seed1
	ddf[i] += seed2
	return nil
}

func (v *Variable) Differentiate(index int) Operator {
	if v.index == index {
		return NewConstant(1, NeutralOne)
	}
	return NewConstant(0, NeutralZero)
}

// direction returns the position of this variable in the batched direction
// list, or -1 if the query does not cover it.
func (v *Variable) direction(vars []VarID) int {
	for i, id := range vars {
		if id == v.id {
			return i
		}
	}
	return -1
}

func (v *Variable) ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator {
	if i := v.direction(vars); i >= 0 {
		return seeds[i]
	}
	return NewConstant(0, NeutralZero)
}

func (v *Variable) ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator) {
	if i := v.direction(vars); i >= 0 {
		df[i] = Add(df[i], seed)
	}
}

func (v *Variable) ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {
	i := v.direction(vars)
	if i < 0 {
		for j := 0; j < dimS; j++ {
			dfS[j] = NewConstant(0, NeutralZero)
		}
		return
	}
	ldf[i] = Add(ldf[i], l)
	for j := 0; j < dimS; j++ {
		dfS[j] = S[i*dimS+j]
	}
}

func (v *Variable) Substitute(index int, sub Operator) Operator {
	if v.index == index {
		return sub
	}
	return v
}

func (v *Variable) InitDerivative() {}

func (v *Variable) IsOneOrZero() NeutralElement { return NeutralNeither }

func (v *Variable) IsDependingOn(kind VarKind) bool { return v.id.Kind == kind }

func (v *Variable) DependsOn(vars []VarID, implicit []bool) bool {
	if v.direction(vars) >= 0 {
		return true
	}
	if v.id.Kind == VarIntermediate {
		// Indirect dependence through an intermediate: the caller marks the
		// queried directions its intermediates feed from.
		for i := range vars {
			if i < len(implicit) && implicit[i] {
				return true
			}
		}
	}
	return false
}

func (v *Variable) IsLinearIn(vars []VarID, implicit []bool) bool { return true }

func (v *Variable) IsPolynomialIn(vars []VarID, implicit []bool) bool { return true }

func (v *Variable) IsRationalIn(vars []VarID, implicit []bool) bool { return true }

func (v *Variable) Monotonicity() MonotonicityType {
	if v.monotonicity != MonotonicityUnknown {
		return v.monotonicity
	}
	return MonotonicityNondecreasing
}

func (v *Variable) Curvature() CurvatureType {
	if v.curvature != CurvatureUnknown {
		return v.curvature
	}
	return CurvatureAffine
}

func (v *Variable) SetMonotonicity(m MonotonicityType) { v.monotonicity = m }

func (v *Variable) SetCurvature(c CurvatureType) { v.curvature = c }

func (v *Variable) IsSymbolic() bool { return true }

func (v *Variable) IsVariable() (VarID, bool) { return v.id, true }

func (v *Variable) Kind() OperatorKind { return KindVariable }

func (v *Variable) EnumerateVariables(list *IndexList) {
	list.Register(v.id)
}

func (v *Variable) LoadIndices(list *IndexList) {
	v.index = list.Assign(v.id)
}

func (v *Variable) SetVariableExportName(kind VarKind, names []string) {
	if v.id.Kind == kind && v.id.Component < len(names) {
		v.name = names[v.id.Component]
	}
}

func (v *Variable) ClearBuffer() {}

func (v *Variable) String() string {
	if v.name != "" {
		return v.name
	}
	if v.id.Kind == VarTime {
		return "t"
	}
	return v.id.Kind.String() + "[" + strconv.Itoa(v.id.Component) + "]"
}
