package expr

import "math"

// Atan is the arctangent operator atan(argument).
//
// First derivative:  1/(1+x²)
// Second derivative: -2x·(1+x²)^(-2)
type Atan struct {
	unary
}

// NewAtan creates an arctangent node.
func NewAtan(arg Operator) *Atan {
	a := &Atan{unary{
		kind:  KindAtan,
		cname: "atan",
		arg:   arg,
		fcn:   math.Atan,
		dfcn: func(x float64) float64 {
			return 1 / (1 + x*x)
		},
		ddfcn: func(x float64) float64 {
			v := 1 + x*x
			return -2 * x / (v * v)
		},
		monoRule: monoInherit,
	}}
	a.derivBuilder = func() (Operator, Operator) {
		onePlusSq := func() Operator {
			return Add(NewConstant(1, NeutralOne), PowInt(arg, 2))
		}
		return Div(NewConstant(1, NeutralOne), onePlusSq()),
			Mul(NewConstant(-2, NeutralNeither),
				Mul(Pow(onePlusSq(), NewConstant(-2, NeutralNeither)), arg))
	}
	return a
}

func (a *Atan) Substitute(index int, sub Operator) Operator {
	return NewAtan(a.arg.Substitute(index, sub))
}
