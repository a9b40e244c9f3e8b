// Package expr implements the scalar expression-graph automatic
// differentiation engine at the core of the toolkit.
//
// Expressions are composed bottom-up into shared operator handles forming a
// DAG, then evaluated top-down at a point and buffer position, or asked for
// symbolic derivative graphs. Each node recurses into its children per the
// chosen mode and combines results with its own differentiation rule.
//
// Numeric call order at a given buffer position is forward before backward,
// and first order before second order; violations are reported as
// ErrNotEvaluated. Evaluation is single-threaded per position range:
// buffers are keyed only by an integer position, so concurrent epochs must
// partition positions between them.
package expr
