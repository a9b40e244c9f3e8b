package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binaryCases covers every two-argument operator on a two-variable graph,
// with points chosen inside each operator's domain.
var binaryCases = []struct {
	name   string
	build  func(a, b Operator) Operator
	points [][]float64
}{
	{"addition", func(a, b Operator) Operator { return NewAddition(a, b) },
		[][]float64{{1.5, -2.3}, {0, 4}, {-1.1, -0.7}}},
	{"subtraction", func(a, b Operator) Operator { return NewSubtraction(a, b) },
		[][]float64{{2.5, 1.3}, {-3, 0.4}, {0.9, -1.6}}},
	{"product", func(a, b Operator) Operator { return NewProduct(a, b) },
		[][]float64{{1.5, -2.3}, {0.2, 4}, {-1.1, -0.7}}},
	{"quotient", func(a, b Operator) Operator { return NewQuotient(a, b) },
		[][]float64{{1.5, -2.3}, {0.2, 4}, {-1.1, -0.7}}},
	{"power", func(a, b Operator) Operator { return NewPower(a, b) },
		[][]float64{{1.5, -2.3}, {0.2, 4}, {2.6, 0.8}}},
}

func twoVarGraph(t *testing.T, build func(a, b Operator) Operator) (Operator, *IndexList) {
	t.Helper()
	x := NewVariable(VarState, 0)
	y := NewVariable(VarState, 1)
	f := build(x, y)
	list := NewIndexList()
	f.LoadIndices(list)
	require.Equal(t, 2, list.Len())
	return f, list
}

func TestBinaryForwardMatchesFiniteDifferences(t *testing.T) {
	for _, tc := range binaryCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := twoVarGraph(t, tc.build)
			for _, point := range tc.points {
				grad := fdGradient(t, f, point)
				for i := 0; i < 2; i++ {
					v, dv, err := f.ADForward(0, point, unitSeed(2, i))
					require.NoError(t, err)
					relClose(t, evalAt(t, f, point), v, symTol)
					relClose(t, grad[i], dv, fdTolFirst, "direction %d at %v", i, point)
				}
			}
		})
	}
}

func TestBinaryBackwardMatchesForward(t *testing.T) {
	for _, tc := range binaryCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := twoVarGraph(t, tc.build)
			for _, point := range tc.points {
				_, err := f.Evaluate(0, point)
				require.NoError(t, err)

				df := make([]float64, 2)
				require.NoError(t, f.ADBackward(0, 1, df))
				grad := fdGradient(t, f, point)
				for i := 0; i < 2; i++ {
					relClose(t, grad[i], df[i], fdTolFirst, "component %d at %v", i, point)
				}
			}
		})
	}
}

func TestBinaryForwardStoredReusesValues(t *testing.T) {
	for _, tc := range binaryCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := twoVarGraph(t, tc.build)
			point := tc.points[0]
			grad := fdGradient(t, f, point)

			_, err := f.Evaluate(0, point)
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				dv, err := f.ADForwardStored(0, unitSeed(2, i))
				require.NoError(t, err)
				relClose(t, grad[i], dv, fdTolFirst, "direction %d", i)
			}
		})
	}
}

// Second-order sweeps: after a first-order forward pass in direction u, the
// second-order forward pass in direction w yields u^T H w, and the
// second-order backward pass yields the gradient and H u.
func TestBinarySecondOrderMatchesFiniteDifferences(t *testing.T) {
	u := []float64{1, 0.5}
	for _, tc := range binaryCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := twoVarGraph(t, tc.build)
			for _, point := range tc.points {
				grad := fdGradient(t, f, point)
				hess := fdHessian(t, f, point)

				_, _, err := f.ADForward(0, point, u)
				require.NoError(t, err)

				for i := 0; i < 2; i++ {
					w := unitSeed(2, i)
					dv, ddv, err := f.ADForward2(0, w, make([]float64, 2))
					require.NoError(t, err)
					relClose(t, grad[i], dv, fdTolFirst, "direction %d at %v", i, point)
					want := u[0]*hess[0][i] + u[1]*hess[1][i]
					relClose(t, want, ddv, fdTolSecond, "direction %d at %v", i, point)
				}

				df := make([]float64, 2)
				ddf := make([]float64, 2)
				require.NoError(t, f.ADBackward2(0, 1, 0, df, ddf))
				for i := 0; i < 2; i++ {
					relClose(t, grad[i], df[i], fdTolFirst, "component %d at %v", i, point)
					want := hess[i][0]*u[0] + hess[i][1]*u[1]
					relClose(t, want, ddf[i], fdTolSecond, "component %d at %v", i, point)
				}
			}
		})
	}
}

func TestBinarySymbolicDerivativeMatchesForward(t *testing.T) {
	for _, tc := range binaryCases {
		t.Run(tc.name, func(t *testing.T) {
			f, list := twoVarGraph(t, tc.build)
			for i := 0; i < 2; i++ {
				d, err := Differentiate(f, list, i)
				require.NoError(t, err)
				for _, point := range tc.points {
					_, dv, err := f.ADForward(0, point, unitSeed(2, i))
					require.NoError(t, err)
					sym, err := d.Evaluate(0, point)
					require.NoError(t, err)
					relClose(t, dv, sym, symTol, "direction %d at %v", i, point)
				}
			}
		})
	}
}

func TestQuotientDivisionByZero(t *testing.T) {
	f, _ := twoVarGraph(t, func(a, b Operator) Operator { return NewQuotient(a, b) })
	_, err := f.Evaluate(0, []float64{1, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDomain), "got %v", err)
}

func TestPowerNegativeBaseFractionalExponent(t *testing.T) {
	f, _ := twoVarGraph(t, func(a, b Operator) Operator { return NewPower(a, b) })
	_, err := f.Evaluate(0, []float64{-2, 0.5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDomain), "got %v", err)
}

func TestBinaryCurvatureAlgebra(t *testing.T) {
	affine := func() Operator { return NewVariable(VarState, 0) }
	convex := func() Operator { return NewPowerInt(NewVariable(VarState, 0), 2) }
	concave := func() Operator {
		c := NewVariable(VarState, 1)
		c.SetCurvature(CurvatureConcave)
		return c
	}

	assert.Equal(t, CurvatureAffine, NewAddition(affine(), affine()).Curvature())
	assert.Equal(t, CurvatureConvex, NewAddition(convex(), convex()).Curvature())
	assert.Equal(t, CurvatureConvex, NewAddition(affine(), convex()).Curvature())
	assert.Equal(t, CurvatureNeither, NewAddition(convex(), concave()).Curvature())

	assert.Equal(t, CurvatureConcave, NewSubtraction(affine(), convex()).Curvature())
	assert.Equal(t, CurvatureConvex, NewSubtraction(convex(), concave()).Curvature())

	assert.Equal(t, CurvatureConstant, NewProduct(Const(2), Const(3)).Curvature())
	assert.Equal(t, CurvatureAffine, NewProduct(Const(2), affine()).Curvature())
	assert.Equal(t, CurvatureAffine, NewQuotient(affine(), Const(2)).Curvature())
	assert.Equal(t, CurvatureNeither, NewQuotient(affine(), affine()).Curvature())
	assert.Equal(t, CurvatureConstant, NewPower(Const(2), Const(3)).Curvature())
}

func TestBinaryMonotonicityAlgebra(t *testing.T) {
	inc := func() Operator { return NewVariable(VarState, 0) }
	dec := func() Operator {
		d := NewVariable(VarState, 1)
		d.SetMonotonicity(MonotonicityNonincreasing)
		return d
	}

	assert.Equal(t, MonotonicityNondecreasing, NewAddition(inc(), inc()).Monotonicity())
	assert.Equal(t, MonotonicityNonmonotonic, NewAddition(inc(), dec()).Monotonicity())
	assert.Equal(t, MonotonicityNondecreasing, NewAddition(Const(3), inc()).Monotonicity())
	assert.Equal(t, MonotonicityNondecreasing, NewSubtraction(inc(), dec()).Monotonicity())
	assert.Equal(t, MonotonicityNonmonotonic, NewProduct(inc(), inc()).Monotonicity())
	assert.Equal(t, MonotonicityConstant, NewQuotient(Const(1), Const(2)).Monotonicity())
}

func TestBinaryLinearityRules(t *testing.T) {
	x := NewVariable(VarState, 0)
	y := NewVariable(VarControl, 0)
	list := NewIndexList()
	x.LoadIndices(list)
	vars := list.Variables() // x only

	assert.True(t, NewAddition(x, y).IsLinearIn(vars, nil))
	assert.True(t, NewProduct(x, y).IsLinearIn(vars, nil))
	assert.False(t, NewProduct(x, x).IsLinearIn(vars, nil))
	assert.True(t, NewProduct(x, x).IsPolynomialIn(vars, nil))
	assert.True(t, NewQuotient(x, y).IsLinearIn(vars, nil))
	assert.False(t, NewQuotient(y, x).IsPolynomialIn(vars, nil))
	assert.True(t, NewQuotient(y, x).IsRationalIn(vars, nil))
	assert.False(t, NewPower(x, y).IsPolynomialIn(vars, nil))
	assert.True(t, NewPower(y, y).IsLinearIn(vars, nil))
}

func TestBinaryString(t *testing.T) {
	x := NewVariable(VarState, 0)
	y := NewVariable(VarControl, 0)
	assert.Equal(t, "(x[0]+u[0])", NewAddition(x, y).String())
	assert.Equal(t, "(x[0]-u[0])", NewSubtraction(x, y).String())
	assert.Equal(t, "(x[0]*u[0])", NewProduct(x, y).String())
	assert.Equal(t, "(x[0]/u[0])", NewQuotient(x, y).String())
	assert.Equal(t, "(pow(x[0],u[0]))", NewPower(x, y).String())
}
