package expr

import "math"

// Sqrt is the square-root operator sqrt(argument), defined for
// nonnegative arguments.
//
// First derivative:  0.5·x^(-0.5)
// Second derivative: -0.25·x^(-1.5)
type Sqrt struct {
	unary
}

// NewSqrt creates a square-root node.
func NewSqrt(arg Operator) *Sqrt {
	s := &Sqrt{unary{
		kind:  KindSqrt,
		cname: "sqrt",
		arg:   arg,
		fcn:   math.Sqrt,
		dfcn: func(x float64) float64 {
			return 0.5 / math.Sqrt(x)
		},
		ddfcn: func(x float64) float64 {
			return -0.25 / (x * math.Sqrt(x))
		},
		monoRule: monoInherit,
		curvRule: func(c CurvatureType) CurvatureType {
			// sqrt is concave and increasing.
			if c == CurvatureAffine || c == CurvatureConcave {
				return CurvatureConcave
			}
			return CurvatureNeither
		},
	}}
	s.derivBuilder = func() (Operator, Operator) {
		return Mul(NewConstant(0.5, NeutralNeither),
				Pow(arg, NewConstant(-0.5, NeutralNeither))),
			Mul(NewConstant(-0.25, NeutralNeither),
				Pow(arg, NewConstant(-1.5, NeutralNeither)))
	}
	return s
}

func (s *Sqrt) Substitute(index int, sub Operator) Operator {
	return NewSqrt(s.arg.Substitute(index, sub))
}
