// Copyright 2026 Dynamo Control Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides the symbolic expression graphs and automatic
// differentiation entry points of the Dynamo toolkit.
//
// # Overview
//
// Scalar expressions are built bottom-up from variables, constants, and
// operator nodes into a DAG with shared sub-expressions. A graph can be
// evaluated numerically, differentiated numerically in four AD modes
// (forward, backward, and their second-order variants), or differentiated
// symbolically into new graphs consumed by solvers and the code-export
// backend.
//
// # Basic Usage
//
//	import "github.com/ctrlkit/dynamo/expr"
//
//	func main() {
//	    x := expr.Var(expr.VarState, 0)
//	    f := expr.PowInt(x, 3)
//
//	    list := expr.NewIndexList()
//	    f.LoadIndices(list)
//
//	    v, _ := f.Evaluate(0, []float64{2}) // 8
//
//	    df, _ := expr.Differentiate(f, list, 0)
//	    d, _ := df.Evaluate(0, []float64{2}) // 12
//	    _ = v + d
//	}
//
// # Derivative call order
//
// Numeric backward-mode calls consume values buffered by a prior
// forward-mode call at the same position, and second-order calls consume
// first-order results. The package reports violations as ErrNotEvaluated
// instead of reading stale state.
package expr

import iexpr "github.com/ctrlkit/dynamo/internal/expr"

// Operator is the capability contract every expression node implements.
type Operator = iexpr.Operator

// VarID identifies a variable by its (kind, component) pair.
type VarID = iexpr.VarID

// VarKind classifies a variable within the problem model.
type VarKind = iexpr.VarKind

// Variable kinds.
const (
	VarState        = iexpr.VarState
	VarControl      = iexpr.VarControl
	VarParameter    = iexpr.VarParameter
	VarDisturbance  = iexpr.VarDisturbance
	VarTime         = iexpr.VarTime
	VarIntermediate = iexpr.VarIntermediate
)

// NeutralElement classifies a constant as exactly zero, one, or neither.
type NeutralElement = iexpr.NeutralElement

// Neutral-element classifications.
const (
	NeutralNeither = iexpr.NeutralNeither
	NeutralZero    = iexpr.NeutralZero
	NeutralOne     = iexpr.NeutralOne
)

// MonotonicityType classifies an expression for solver heuristics.
type MonotonicityType = iexpr.MonotonicityType

// Monotonicity classifications.
const (
	MonotonicityUnknown       = iexpr.MonotonicityUnknown
	MonotonicityConstant      = iexpr.MonotonicityConstant
	MonotonicityNondecreasing = iexpr.MonotonicityNondecreasing
	MonotonicityNonincreasing = iexpr.MonotonicityNonincreasing
	MonotonicityNonmonotonic  = iexpr.MonotonicityNonmonotonic
)

// CurvatureType classifies an expression for solver heuristics.
type CurvatureType = iexpr.CurvatureType

// Curvature classifications.
const (
	CurvatureUnknown  = iexpr.CurvatureUnknown
	CurvatureConstant = iexpr.CurvatureConstant
	CurvatureAffine   = iexpr.CurvatureAffine
	CurvatureConvex   = iexpr.CurvatureConvex
	CurvatureConcave  = iexpr.CurvatureConcave
	CurvatureNeither  = iexpr.CurvatureNeither
)

// IndexList maps each distinct variable in a graph to one evaluation slot.
type IndexList = iexpr.IndexList

// Derivatives holds the outcome of one symmetric AD sweep.
type Derivatives = iexpr.Derivatives

// Error taxonomy, see the internal package for semantics.
var (
	ErrOutOfDomain        = iexpr.ErrOutOfDomain
	ErrNotEvaluated       = iexpr.ErrNotEvaluated
	ErrIndexRange         = iexpr.ErrIndexRange
	ErrUnassignedVariable = iexpr.ErrUnassignedVariable
)

// NewIndexList creates an empty index list.
func NewIndexList() *IndexList { return iexpr.NewIndexList() }

// Var creates a variable leaf for the given (kind, component) pair.
func Var(kind VarKind, component int) Operator { return iexpr.NewVariable(kind, component) }

// Const creates a constant leaf, classifying exact zero and one
// automatically.
func Const(value float64) Operator { return iexpr.Const(value) }

// Smart constructors; they collapse neutral elements before building nodes.
var (
	Add    = iexpr.Add
	Sub    = iexpr.Sub
	Mul    = iexpr.Mul
	Div    = iexpr.Div
	Pow    = iexpr.Pow
	PowInt = iexpr.PowInt
)

// Elementary functions.
func Sin(a Operator) Operator  { return iexpr.NewSin(a) }
func Cos(a Operator) Operator  { return iexpr.NewCos(a) }
func Tan(a Operator) Operator  { return iexpr.NewTan(a) }
func Asin(a Operator) Operator { return iexpr.NewAsin(a) }
func Acos(a Operator) Operator { return iexpr.NewAcos(a) }
func Atan(a Operator) Operator { return iexpr.NewAtan(a) }
func Exp(a Operator) Operator  { return iexpr.NewExp(a) }
func Log(a Operator) Operator  { return iexpr.NewLog(a) }
func Sqrt(a Operator) Operator { return iexpr.NewSqrt(a) }

// Differentiate builds the derivative graph of f with respect to the
// variable at slot index.
func Differentiate(f Operator, list *IndexList, index int) (Operator, error) {
	return iexpr.Differentiate(f, list, index)
}

// SubstituteVar replaces the variable at slot index with sub.
func SubstituteVar(f Operator, list *IndexList, index int, sub Operator) (Operator, error) {
	return iexpr.SubstituteVar(f, list, index, sub)
}

// Gradient builds one derivative graph per registered variable in a single
// adjoint sweep.
func Gradient(f Operator, list *IndexList) ([]Operator, error) {
	return iexpr.Gradient(f, list)
}

// SymmetricAD runs the combined forward/backward second-order sweep,
// yielding gradient and Hessian expressions in one pass.
func SymmetricAD(f Operator, list *IndexList) (*Derivatives, error) {
	return iexpr.SymmetricAD(f, list)
}
