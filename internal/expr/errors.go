package expr

import "errors"

// Error taxonomy. Domain errors travel with the poisoned value and never
// panic; state and structural errors are checked preconditions.
var (
	// ErrOutOfDomain reports an elementary function evaluated outside its
	// domain, or a NaN/Inf produced anywhere in the subtree.
	ErrOutOfDomain = errors.New("argument out of domain")

	// ErrNotEvaluated reports a backward-mode or second-order call at a
	// buffer position with no prior forward-mode write.
	ErrNotEvaluated = errors.New("no forward value buffered at position")

	// ErrIndexRange reports a variable slot outside the registered range.
	ErrIndexRange = errors.New("variable index out of range")

	// ErrUnassignedVariable reports a variable evaluated before LoadIndices
	// assigned its evaluation slot.
	ErrUnassignedVariable = errors.New("variable has no evaluation slot; call LoadIndices first")
)
