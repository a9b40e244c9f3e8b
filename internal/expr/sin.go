package expr

import "math"

// Sin is the sine operator sin(argument).
//
// First derivative:  cos(x)
// Second derivative: -sin(x)
type Sin struct {
	unary
}

// NewSin creates a sine node.
func NewSin(arg Operator) *Sin {
	s := &Sin{unary{
		kind:  KindSin,
		cname: "sin",
		arg:   arg,
		fcn:   math.Sin,
		dfcn:  math.Cos,
		ddfcn: func(x float64) float64 { return -math.Sin(x) },
	}}
	s.derivBuilder = func() (Operator, Operator) {
		return NewCos(arg),
			Mul(NewConstant(-1, NeutralNeither), NewSin(arg))
	}
	return s
}

func (s *Sin) Substitute(index int, sub Operator) Operator {
	return NewSin(s.arg.Substitute(index, sub))
}
