package expr

import "math"

// Tan is the tangent operator tan(argument).
//
// First derivative:  1/cos²(x)
// Second derivative: 2·tan(x)/cos²(x)
type Tan struct {
	unary
}

// NewTan creates a tangent node.
func NewTan(arg Operator) *Tan {
	t := &Tan{unary{
		kind:  KindTan,
		cname: "tan",
		arg:   arg,
		fcn:   math.Tan,
		dfcn: func(x float64) float64 {
			c := math.Cos(x)
			return 1 / (c * c)
		},
		ddfcn: func(x float64) float64 {
			c := math.Cos(x)
			return 2 * math.Tan(x) / (c * c)
		},
		monoRule: monoInherit,
	}}
	t.derivBuilder = func() (Operator, Operator) {
		// 1/cos²(x) and 2·tan(x)/cos²(x)
		sec2 := PowInt(NewCos(arg), -2)
		return sec2,
			Mul(NewConstant(2, NeutralNeither), Mul(NewTan(arg), PowInt(NewCos(arg), -2)))
	}
	return t
}

func (t *Tan) Substitute(index int, sub Operator) Operator {
	return NewTan(t.arg.Substitute(index, sub))
}
