package expr

import "math"

// Acos is the arccosine operator acos(argument), defined on [-1, 1].
//
// First derivative:  -(1-x²)^(-0.5)
// Second derivative: -x·(1-x²)^(-1.5)
type Acos struct {
	unary
}

// NewAcos creates an arccosine node.
func NewAcos(arg Operator) *Acos {
	a := &Acos{unary{
		kind:  KindAcos,
		cname: "acos",
		arg:   arg,
		fcn:   math.Acos,
		dfcn: func(x float64) float64 {
			return -1 / math.Sqrt(1-x*x)
		},
		ddfcn: func(x float64) float64 {
			v := math.Sqrt(1 - x*x)
			return -x / (v * v * v)
		},
		monoRule: monoFlip,
	}}
	a.derivBuilder = func() (Operator, Operator) {
		oneMinusSq := func() Operator {
			return Add(NewConstant(1, NeutralOne),
				Mul(NewConstant(-1, NeutralNeither), PowInt(arg, 2)))
		}
		return Mul(NewConstant(-1, NeutralNeither),
				Pow(oneMinusSq(), NewConstant(-0.5, NeutralNeither))),
			Mul(NewConstant(-1, NeutralNeither),
				Mul(Pow(oneMinusSq(), NewConstant(-1.5, NeutralNeither)), arg))
	}
	return a
}

func (a *Acos) Substitute(index int, sub Operator) Operator {
	return NewAcos(a.arg.Substitute(index, sub))
}
