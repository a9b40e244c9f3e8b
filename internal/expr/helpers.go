package expr

// Smart constructors. They apply the neutral-element shortcuts before
// building a real node: a product with a zero constant collapses to a
// constant zero, a sum with a zero drops the zero, and so on. Derivative
// graphs are composed exclusively through these, which keeps chain-rule
// output free of trivial sub-expressions.

// Mul builds a·b.
func Mul(a, b Operator) Operator {
	if a.IsOneOrZero() == NeutralZero || b.IsOneOrZero() == NeutralZero {
		return NewConstant(0, NeutralZero)
	}
	if a.IsOneOrZero() == NeutralOne {
		return b
	}
	if b.IsOneOrZero() == NeutralOne {
		return a
	}
	return NewProduct(a, b)
}

// Add builds a+b.
func Add(a, b Operator) Operator {
	if a.IsOneOrZero() == NeutralZero {
		return b
	}
	if b.IsOneOrZero() == NeutralZero {
		return a
	}
	return NewAddition(a, b)
}

// Sub builds a-b.
func Sub(a, b Operator) Operator {
	if b.IsOneOrZero() == NeutralZero {
		return a
	}
	if a.IsOneOrZero() == NeutralZero {
		return Mul(NewConstant(-1, NeutralNeither), b)
	}
	return NewSubtraction(a, b)
}

// Div builds a/b.
func Div(a, b Operator) Operator {
	if a.IsOneOrZero() == NeutralZero {
		return NewConstant(0, NeutralZero)
	}
	if b.IsOneOrZero() == NeutralOne {
		return a
	}
	return NewQuotient(a, b)
}

// PowInt builds argument^exponent for an integer exponent.
func PowInt(a Operator, exponent int) Operator {
	switch exponent {
	case 0:
		return NewConstant(1, NeutralOne)
	case 1:
		return a
	}
	return NewPowerInt(a, exponent)
}

// Pow builds base^exponent for a real exponent sub-expression.
func Pow(a, b Operator) Operator {
	if b.IsOneOrZero() == NeutralZero {
		return NewConstant(1, NeutralOne)
	}
	if b.IsOneOrZero() == NeutralOne {
		return a
	}
	return NewPower(a, b)
}
