package expr

import "math"

// Log is the natural logarithm operator log(argument), defined for
// positive arguments.
//
// First derivative:  1/x
// Second derivative: -1/x²
type Log struct {
	unary
}

// NewLog creates a natural-logarithm node.
func NewLog(arg Operator) *Log {
	l := &Log{unary{
		kind:  KindLog,
		cname: "log",
		arg:   arg,
		fcn:   math.Log,
		dfcn: func(x float64) float64 {
			return 1 / x
		},
		ddfcn: func(x float64) float64 {
			return -1 / (x * x)
		},
		monoRule: monoInherit,
		curvRule: func(c CurvatureType) CurvatureType {
			// log is concave and increasing: concave of affine or concave is concave.
			if c == CurvatureAffine || c == CurvatureConcave {
				return CurvatureConcave
			}
			return CurvatureNeither
		},
	}}
	l.derivBuilder = func() (Operator, Operator) {
		return PowInt(arg, -1),
			Mul(NewConstant(-1, NeutralNeither), PowInt(arg, -2))
	}
	return l
}

func (l *Log) Substitute(index int, sub Operator) Operator {
	return NewLog(l.arg.Substitute(index, sub))
}
