package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// composite builds sin(x)·exp(y) + x²/(1+y²) over a shared x leaf, which
// exercises every graph sweep across a genuine DAG.
func composite(t *testing.T) (Operator, *IndexList) {
	t.Helper()
	x := NewVariable(VarState, 0)
	y := NewVariable(VarState, 1)
	f := Add(
		Mul(NewSin(x), NewExp(y)),
		Div(NewPowerInt(x, 2), Add(Const(1), NewPowerInt(y, 2))))
	list := NewIndexList()
	f.LoadIndices(list)
	require.Equal(t, 2, list.Len())
	return f, list
}

func TestGradientMatchesFiniteDifferences(t *testing.T) {
	f, list := composite(t)
	grad, err := Gradient(f, list)
	require.NoError(t, err)
	require.Len(t, grad, 2)

	for _, point := range [][]float64{{0.7, -0.4}, {-1.2, 0.9}, {0.1, 2.3}} {
		want := fdGradient(t, f, point)
		for i := range grad {
			g, err := grad[i].Evaluate(0, point)
			require.NoError(t, err)
			relClose(t, want[i], g, fdTolFirst, "component %d at %v", i, point)
		}
	}
}

func TestGradientMatchesPerIndexDifferentiate(t *testing.T) {
	f, list := composite(t)
	grad, err := Gradient(f, list)
	require.NoError(t, err)

	point := []float64{0.7, -0.4}
	for i := range grad {
		d, err := Differentiate(f, list, i)
		require.NoError(t, err)
		want, err := d.Evaluate(0, point)
		require.NoError(t, err)
		got, err := grad[i].Evaluate(0, point)
		require.NoError(t, err)
		relClose(t, want, got, symTol, "component %d", i)
	}
}

func TestSymmetricADMatchesFiniteDifferences(t *testing.T) {
	f, list := composite(t)
	d, err := SymmetricAD(f, list)
	require.NoError(t, err)
	require.Equal(t, 2, d.Dim)
	require.Len(t, d.Forward, 2)
	require.Len(t, d.Backward, 2)
	require.Len(t, d.Hessian, 4)

	point := []float64{0.7, -0.4}
	grad := fdGradient(t, f, point)
	hess := fdHessian(t, f, point)

	for i := 0; i < 2; i++ {
		fw, err := d.Forward[i].Evaluate(0, point)
		require.NoError(t, err)
		relClose(t, grad[i], fw, fdTolFirst, "forward %d", i)

		bw, err := d.Backward[i].Evaluate(0, point)
		require.NoError(t, err)
		relClose(t, grad[i], bw, fdTolFirst, "backward %d", i)
	}

	// Only the upper triangle is populated.
	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			h, err := d.Hessian[i*2+j].Evaluate(0, point)
			require.NoError(t, err)
			relClose(t, hess[i][j], h, fdTolSecond, "entry (%d,%d)", i, j)
		}
	}
}

func TestNumericSweepsOnComposite(t *testing.T) {
	f, _ := composite(t)
	point := []float64{0.7, -0.4}
	grad := fdGradient(t, f, point)
	hess := fdHessian(t, f, point)

	u := []float64{0.3, -1.1}
	_, dv, err := f.ADForward(0, point, u)
	require.NoError(t, err)
	relClose(t, grad[0]*u[0]+grad[1]*u[1], dv, fdTolFirst)

	df := make([]float64, 2)
	require.NoError(t, f.ADBackward(0, 1, df))
	relClose(t, grad[0], df[0], fdTolFirst)
	relClose(t, grad[1], df[1], fdTolFirst)

	w := []float64{1, 0}
	_, ddv, err := f.ADForward2(0, w, make([]float64, 2))
	require.NoError(t, err)
	relClose(t, u[0]*hess[0][0]+u[1]*hess[1][0], ddv, fdTolSecond)

	df2 := make([]float64, 2)
	ddf := make([]float64, 2)
	require.NoError(t, f.ADBackward2(0, 1, 0, df2, ddf))
	for i := 0; i < 2; i++ {
		relClose(t, grad[i], df2[i], fdTolFirst)
		relClose(t, hess[i][0]*u[0]+hess[i][1]*u[1], ddf[i], fdTolSecond)
	}
}

func TestForwardSymbolicMatchesGradient(t *testing.T) {
	// A forward-symbolic sweep with unit seed expressions in direction i
	// builds the same derivative the adjoint sweep assembles.
	f, list := composite(t)
	f.InitDerivative()
	vars := list.Variables()

	grad, err := Gradient(f, list)
	require.NoError(t, err)

	point := []float64{0.7, -0.4}
	for i := range vars {
		seeds := make([]Operator, len(vars))
		for j := range seeds {
			if i == j {
				seeds[j] = NewConstant(1, NeutralOne)
			} else {
				seeds[j] = NewConstant(0, NeutralZero)
			}
		}
		var newIS []Operator
		d := f.ADForwardSymbolic(vars, seeds, &newIS)

		got, err := d.Evaluate(0, point)
		require.NoError(t, err)
		want, err := grad[i].Evaluate(0, point)
		require.NoError(t, err)
		relClose(t, want, got, symTol, "direction %d", i)
	}
}

func TestSubstituteThenDifferentiate(t *testing.T) {
	// Replacing y by u² in x·y gives x·u², whose derivative in u is 2·x·u.
	x := NewVariable(VarState, 0)
	y := NewVariable(VarState, 1)
	f := NewProduct(x, y)
	list := NewIndexList()
	f.LoadIndices(list)

	u := NewVariable(VarControl, 0)
	g, err := SubstituteVar(f, list, 1, NewPowerInt(u, 2))
	require.NoError(t, err)

	sublist := NewIndexList()
	g.LoadIndices(sublist)
	require.Equal(t, 2, sublist.Len())

	uSlot, ok := sublist.SlotOf(VarID{Kind: VarControl, Component: 0})
	require.True(t, ok)
	d, err := Differentiate(g, sublist, uSlot)
	require.NoError(t, err)

	xSlot, _ := sublist.SlotOf(VarID{Kind: VarState, Component: 0})
	point := make([]float64, 2)
	point[xSlot] = 3
	point[uSlot] = 1.5
	v, err := d.Evaluate(0, point)
	require.NoError(t, err)
	assert.InDelta(t, 2*3*1.5, v, symTol)
}

func TestDriverIndexValidation(t *testing.T) {
	f, list := composite(t)

	_, err := Differentiate(f, list, -1)
	assert.True(t, errors.Is(err, ErrIndexRange), "got %v", err)
	_, err = Differentiate(f, list, list.Len())
	assert.True(t, errors.Is(err, ErrIndexRange), "got %v", err)

	_, err = SubstituteVar(f, list, 99, Const(0))
	assert.True(t, errors.Is(err, ErrIndexRange), "got %v", err)

	empty := NewIndexList()
	_, err = Gradient(Const(1), empty)
	assert.True(t, errors.Is(err, ErrIndexRange), "got %v", err)
	_, err = SymmetricAD(Const(1), empty)
	assert.True(t, errors.Is(err, ErrIndexRange), "got %v", err)
}

func TestClearBufferResetsState(t *testing.T) {
	f, _ := composite(t)
	for pos := 0; pos < 4; pos++ {
		_, err := f.Evaluate(pos, []float64{0.5, 0.25})
		require.NoError(t, err)
	}
	df := make([]float64, 2)
	require.NoError(t, f.ADBackward(3, 1, df))

	f.ClearBuffer()
	err := f.ADBackward(3, 1, df)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEvaluated), "got %v", err)
}

func TestExportNamesPropagate(t *testing.T) {
	theta := NewVariable(VarState, 0)
	omega := NewVariable(VarState, 1)
	tau := NewVariable(VarControl, 0)
	f := Add(NewProduct(theta, omega), tau)

	f.SetVariableExportName(VarState, []string{"theta", "omega"})
	f.SetVariableExportName(VarControl, []string{"tau"})
	assert.Equal(t, "((theta*omega)+tau)", f.String())

	// Time keeps its canonical name.
	clock := NewVariable(VarTime, 0)
	assert.Equal(t, "t", clock.String())
}
