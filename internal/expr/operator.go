package expr

// VarKind classifies a variable within the surrounding problem model.
type VarKind int

const (
	VarState VarKind = iota // differential state
	VarControl
	VarParameter
	VarDisturbance
	VarTime
	VarIntermediate // intermediate state introduced by graph transformations
)

// String returns the short export prefix for the kind.
func (k VarKind) String() string {
	switch k {
	case VarState:
		return "x"
	case VarControl:
		return "u"
	case VarParameter:
		return "p"
	case VarDisturbance:
		return "w"
	case VarTime:
		return "t"
	case VarIntermediate:
		return "a"
	}
	return "?"
}

// VarID identifies a variable by its (kind, component) pair.
// Two variables are the same variable iff their VarIDs are equal.
type VarID struct {
	Kind      VarKind
	Component int
}

// OperatorKind tags each node variant in the expression graph.
type OperatorKind int

const (
	KindConstant OperatorKind = iota
	KindVariable
	KindProjection
	KindAddition
	KindSubtraction
	KindProduct
	KindQuotient
	KindPower
	KindPowerInt
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
	KindExp
	KindLog
	KindSqrt
)

// NeutralElement classifies a constant as exactly zero, exactly one, or
// neither. The classification drives algebraic shortcuts: a product with a
// zero constant collapses to a constant zero instead of a real product node.
type NeutralElement int

const (
	NeutralNeither NeutralElement = iota
	NeutralZero
	NeutralOne
)

// String implements fmt.Stringer.
func (n NeutralElement) String() string {
	switch n {
	case NeutralZero:
		return "zero"
	case NeutralOne:
		return "one"
	}
	return "neither"
}

// MonotonicityType classifies an expression for solver heuristics.
type MonotonicityType int

const (
	MonotonicityUnknown MonotonicityType = iota
	MonotonicityConstant
	MonotonicityNondecreasing
	MonotonicityNonincreasing
	MonotonicityNonmonotonic
)

// String implements fmt.Stringer.
func (m MonotonicityType) String() string {
	switch m {
	case MonotonicityConstant:
		return "constant"
	case MonotonicityNondecreasing:
		return "nondecreasing"
	case MonotonicityNonincreasing:
		return "nonincreasing"
	case MonotonicityNonmonotonic:
		return "nonmonotonic"
	}
	return "unknown"
}

// CurvatureType classifies an expression for solver heuristics.
type CurvatureType int

const (
	CurvatureUnknown CurvatureType = iota
	CurvatureConstant
	CurvatureAffine
	CurvatureConvex
	CurvatureConcave
	CurvatureNeither
)

// String implements fmt.Stringer.
func (c CurvatureType) String() string {
	switch c {
	case CurvatureConstant:
		return "constant"
	case CurvatureAffine:
		return "affine"
	case CurvatureConvex:
		return "convex"
	case CurvatureConcave:
		return "concave"
	case CurvatureNeither:
		return "neither"
	}
	return "unknown"
}

// Operator is the capability contract every node in the expression graph
// implements. Expressions form a DAG: a node may have multiple parents, so
// handles are shared rather than copied.
//
// Call-order obligations on the numeric entry points, at a given buffer
// position: Evaluate or ADForward before ADForwardStored/ADBackward, and
// ADForward before ADForward2/ADBackward2. Violations are reported as
// ErrNotEvaluated rather than reading stale state.
//
// InitDerivative must run before any symbolic derivative request; the
// package-level Differentiate and Hessian helpers take care of that.
type Operator interface {
	// Evaluate computes the value of the expression at the point x, buffering
	// intermediate results at the given position for later backward-mode
	// calls. Domain violations (sqrt/log/asin outside their domain, division
	// by zero, NaN results) are reported as ErrOutOfDomain together with the
	// poisoned value; no panic is ever raised.
	Evaluate(pos int, x []float64) (float64, error)

	// ADForward computes value and directional derivative in one call,
	// buffering both at pos. seed holds one derivative per variable slot.
	ADForward(pos int, x, seed []float64) (val, dval float64, err error)

	// ADForwardStored computes a directional derivative reusing the value
	// buffered at pos by a prior Evaluate or ADForward.
	ADForwardStored(pos int, seed []float64) (float64, error)

	// ADBackward propagates the adjoint seed toward the inputs, accumulating
	// ∂output/∂variable into df (indexed by variable slot). Consumes the
	// value buffered at pos.
	ADBackward(pos int, seed float64, df []float64) error

	// ADForward2 computes first- and second-order directional derivatives in
	// a new direction, consuming the value and first-order derivative
	// buffered at pos by a prior ADForward.
	ADForward2(pos int, seed, dseed []float64) (dval, ddval float64, err error)

	// ADBackward2 propagates first- and second-order adjoint seeds toward
	// the inputs, accumulating into df and ddf.
	ADBackward2(pos int, seed1, seed2 float64, df, ddf []float64) error

	// Differentiate builds a new graph equal to the derivative of this
	// expression with respect to the variable registered at slot index.
	// InitDerivative is a precondition.
	Differentiate(index int) Operator

	// ADForwardSymbolic builds a directional-derivative expression from one
	// seed expression per direction in vars. Newly created intermediates are
	// appended to newIS for later deduplication.
	ADForwardSymbolic(vars []VarID, seeds []Operator, newIS *[]Operator) Operator

	// ADBackwardSymbolic pushes the chain-rule contribution of the adjoint
	// seed into each child, terminating by accumulating into df at the
	// direction indices of the variable leaves.
	ADBackwardSymbolic(vars []VarID, seed Operator, df []Operator, newIS *[]Operator)

	// ADSymmetric combines the adjoint seed l with a batch of dimS forward
	// seed directions (S, row-major with one row per direction in vars) and
	// the node's local first and second derivatives. It fills dfS with
	// forward results, accumulates backward results into ldf, and adds this
	// node's Hessian-block contribution into the upper triangle of H
	// (H[i*dimS+j], j >= i).
	ADSymmetric(vars []VarID, l Operator, S []Operator, dimS int,
		dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator)

	// Substitute returns a structural copy with every occurrence of the
	// variable registered at slot index replaced by sub.
	Substitute(index int, sub Operator) Operator

	// InitDerivative builds and memoizes the derivative sub-graphs of this
	// node and its children. Idempotent: re-invocation on an initialized
	// node is a no-op, never a rebuild.
	InitDerivative()

	// IsOneOrZero reports the neutral-element classification of the node.
	IsOneOrZero() NeutralElement

	// IsDependingOn reports whether any variable of the given kind occurs in
	// the subtree.
	IsDependingOn(kind VarKind) bool

	// DependsOn reports whether the expression depends on any of the given
	// variables. implicit carries one aggregate flag per queried variable:
	// an intermediate-state leaf reports dependence on direction i iff
	// implicit[i] is set, covering indirect dependence through intermediates.
	DependsOn(vars []VarID, implicit []bool) bool

	// IsLinearIn reports whether the expression is linear in (or free of)
	// all the given variables.
	IsLinearIn(vars []VarID, implicit []bool) bool

	// IsPolynomialIn reports whether the expression is polynomial in the
	// given variables.
	IsPolynomialIn(vars []VarID, implicit []bool) bool

	// IsRationalIn reports whether the expression is rational in the given
	// variables.
	IsRationalIn(vars []VarID, implicit []bool) bool

	// Monotonicity returns the cached or inferred monotonicity of the node.
	Monotonicity() MonotonicityType

	// Curvature returns the cached or inferred curvature of the node.
	Curvature() CurvatureType

	// SetMonotonicity overrides the inferred monotonicity.
	SetMonotonicity(MonotonicityType)

	// SetCurvature overrides the inferred curvature.
	SetCurvature(CurvatureType)

	// IsSymbolic reports whether the whole subtree is built from symbolic
	// nodes. The code-export collaborator refuses graphs embedding opaque
	// native callbacks; every node kind in this package is symbolic.
	IsSymbolic() bool

	// IsVariable reports whether the node is a variable leaf and which one.
	IsVariable() (VarID, bool)

	// Kind returns the operator tag of the node.
	Kind() OperatorKind

	// EnumerateVariables registers the identities of all variables in the
	// subtree with the index list, without assigning evaluation slots.
	EnumerateVariables(list *IndexList)

	// LoadIndices registers each distinct variable exactly once with the
	// index list and writes the assigned evaluation slot into the leaf.
	// A second call with the same list is a no-op.
	LoadIndices(list *IndexList)

	// SetVariableExportName propagates display names for variables of the
	// given kind down the tree; names is indexed by component. Consumed only
	// by the code-export collaborator via String.
	SetVariableExportName(kind VarKind, names []string)

	// ClearBuffer resets the evaluation buffer of the subtree to size one.
	ClearBuffer()

	// String renders the expression as C-like source text for diagnostics
	// and code export. It is not an evaluator.
	String() string
}
