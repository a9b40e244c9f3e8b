package expr

import "fmt"

// Differentiate builds the derivative graph of f with respect to the
// variable registered at slot index, initializing the memoized derivative
// sub-graphs first. The index is validated against the registered range.
func Differentiate(f Operator, list *IndexList, index int) (Operator, error) {
	if index < 0 || index >= list.Len() {
		return nil, fmt.Errorf("derivative index %d with %d registered variables: %w",
			index, list.Len(), ErrIndexRange)
	}
	f.InitDerivative()
	return f.Differentiate(index), nil
}

// SubstituteVar returns a structural copy of f with the variable registered
// at slot index replaced by sub.
func SubstituteVar(f Operator, list *IndexList, index int, sub Operator) (Operator, error) {
	if index < 0 || index >= list.Len() {
		return nil, fmt.Errorf("substitution index %d with %d registered variables: %w",
			index, list.Len(), ErrIndexRange)
	}
	return f.Substitute(index, sub), nil
}

// Gradient builds one derivative graph per registered variable through a
// single symbolic adjoint sweep with seed 1.
func Gradient(f Operator, list *IndexList) ([]Operator, error) {
	if list.Len() == 0 {
		return nil, fmt.Errorf("gradient of a graph with no registered variables: %w", ErrIndexRange)
	}
	f.InitDerivative()
	vars := list.Variables()
	df := make([]Operator, len(vars))
	for i := range df {
		df[i] = NewConstant(0, NeutralZero)
	}
	var newIS []Operator
	f.ADBackwardSymbolic(vars, NewConstant(1, NeutralOne), df, &newIS)
	return df, nil
}

// Derivatives holds the outcome of one symmetric AD sweep: directional
// derivative expressions, adjoint expressions, and the upper triangle of
// the Hessian block (row-major, entry (i,j) at i*Dim+j for j >= i).
type Derivatives struct {
	Forward  []Operator
	Backward []Operator
	Hessian  []Operator
	Dim      int
}

// SymmetricAD runs the combined forward/backward second-order sweep over f
// with identity forward seeds and adjoint seed 1, yielding gradient and
// Hessian expressions in one pass.
func SymmetricAD(f Operator, list *IndexList) (*Derivatives, error) {
	dim := list.Len()
	if dim == 0 {
		return nil, fmt.Errorf("symmetric AD over a graph with no registered variables: %w", ErrIndexRange)
	}
	f.InitDerivative()
	vars := list.Variables()

	S := make([]Operator, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				S[i*dim+j] = NewConstant(1, NeutralOne)
			} else {
				S[i*dim+j] = NewConstant(0, NeutralZero)
			}
		}
	}
	dfS := make([]Operator, dim)
	ldf := make([]Operator, dim)
	H := make([]Operator, dim*dim)
	for i := range ldf {
		ldf[i] = NewConstant(0, NeutralZero)
	}
	for i := range H {
		H[i] = NewConstant(0, NeutralZero)
	}

	var newLIS, newSIS, newHIS []Operator
	f.ADSymmetric(vars, NewConstant(1, NeutralOne), S, dim,
		dfS, ldf, H, &newLIS, &newSIS, &newHIS)

	return &Derivatives{Forward: dfS, Backward: ldf, Hessian: H, Dim: dim}, nil
}
