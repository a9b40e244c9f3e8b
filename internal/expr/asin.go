package expr

import "math"

// Asin is the arcsine operator asin(argument), defined on [-1, 1].
//
// First derivative:  (1-x²)^(-0.5)
// Second derivative: x·(1-x²)^(-1.5)
type Asin struct {
	unary
}

// NewAsin creates an arcsine node.
func NewAsin(arg Operator) *Asin {
	a := &Asin{unary{
		kind:  KindAsin,
		cname: "asin",
		arg:   arg,
		fcn:   math.Asin,
		dfcn: func(x float64) float64 {
			return 1 / math.Sqrt(1-x*x)
		},
		ddfcn: func(x float64) float64 {
			v := math.Sqrt(1 - x*x)
			return -2 * x * (-0.5 / (v * v * v))
		},
		monoRule: monoInherit,
	}}
	a.derivBuilder = func() (Operator, Operator) {
		oneMinusSq := func() Operator {
			return Add(NewConstant(1, NeutralOne),
				Mul(NewConstant(-1, NeutralNeither), PowInt(arg, 2)))
		}
		return Pow(oneMinusSq(), NewConstant(-0.5, NeutralNeither)),
			Mul(Pow(oneMinusSq(), NewConstant(-1.5, NeutralNeither)), arg)
	}
	return a
}

func (a *Asin) Substitute(index int, sub Operator) Operator {
	return NewAsin(a.arg.Substitute(index, sub))
}
