package expr

import "math"

// Cos is the cosine operator cos(argument).
//
// First derivative:  -sin(x)
// Second derivative: -cos(x)
type Cos struct {
	unary
}

// NewCos creates a cosine node.
func NewCos(arg Operator) *Cos {
	c := &Cos{unary{
		kind:  KindCos,
		cname: "cos",
		arg:   arg,
		fcn:   math.Cos,
		dfcn:  func(x float64) float64 { return -math.Sin(x) },
		ddfcn: func(x float64) float64 { return -math.Cos(x) },
	}}
	c.derivBuilder = func() (Operator, Operator) {
		return Mul(NewConstant(-1, NeutralNeither), NewSin(arg)),
			Mul(NewConstant(-1, NeutralNeither), NewCos(arg))
	}
	return c
}

func (c *Cos) Substitute(index int, sub Operator) Operator {
	return NewCos(c.arg.Substitute(index, sub))
}
