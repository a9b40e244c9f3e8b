package expr

import "math"

// Exp is the exponential operator exp(argument).
//
// First and second derivative: exp(x)
type Exp struct {
	unary
}

// NewExp creates an exponential node.
func NewExp(arg Operator) *Exp {
	e := &Exp{unary{
		kind:     KindExp,
		cname:    "exp",
		arg:      arg,
		fcn:      math.Exp,
		dfcn:     math.Exp,
		ddfcn:    math.Exp,
		monoRule: monoInherit,
		curvRule: func(c CurvatureType) CurvatureType {
			// exp is convex and increasing: convex of affine or convex is convex.
			if c == CurvatureAffine || c == CurvatureConvex {
				return CurvatureConvex
			}
			return CurvatureNeither
		},
	}}
	e.derivBuilder = func() (Operator, Operator) {
		return NewExp(arg), NewExp(arg)
	}
	return e
}

func (e *Exp) Substitute(index int, sub Operator) Operator {
	return NewExp(e.arg.Substitute(index, sub))
}
