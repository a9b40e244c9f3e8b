package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fdStep = 1e-5
	// Central differences carry O(h²) truncation error; first derivatives
	// land well inside 1e-6 at fdStep, second derivatives inside 1e-4.
	fdTolFirst  = 1e-6
	fdTolSecond = 1e-4
	symTol      = 1e-8
)

// evalAt evaluates f at the point, failing the test on any status.
func evalAt(t *testing.T, f Operator, x []float64) float64 {
	t.Helper()
	v, err := f.Evaluate(0, x)
	require.NoError(t, err)
	return v
}

// fdGradient computes the central finite-difference gradient of f.
func fdGradient(t *testing.T, f Operator, x []float64) []float64 {
	t.Helper()
	grad := make([]float64, len(x))
	for i := range x {
		xp := append([]float64(nil), x...)
		xm := append([]float64(nil), x...)
		xp[i] += fdStep
		xm[i] -= fdStep
		grad[i] = (evalAt(t, f, xp) - evalAt(t, f, xm)) / (2 * fdStep)
	}
	return grad
}

// fdHessian computes the central finite-difference Hessian of f.
func fdHessian(t *testing.T, f Operator, x []float64) [][]float64 {
	t.Helper()
	n := len(x)
	h := make([][]float64, n)
	f0 := evalAt(t, f, x)
	for i := 0; i < n; i++ {
		h[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				xp := append([]float64(nil), x...)
				xm := append([]float64(nil), x...)
				xp[i] += fdStep
				xm[i] -= fdStep
				h[i][j] = (evalAt(t, f, xp) - 2*f0 + evalAt(t, f, xm)) / (fdStep * fdStep)
				continue
			}
			xpp := append([]float64(nil), x...)
			xpm := append([]float64(nil), x...)
			xmp := append([]float64(nil), x...)
			xmm := append([]float64(nil), x...)
			xpp[i] += fdStep
			xpp[j] += fdStep
			xpm[i] += fdStep
			xpm[j] -= fdStep
			xmp[i] -= fdStep
			xmp[j] += fdStep
			xmm[i] -= fdStep
			xmm[j] -= fdStep
			h[i][j] = (evalAt(t, f, xpp) - evalAt(t, f, xpm) -
				evalAt(t, f, xmp) + evalAt(t, f, xmm)) / (4 * fdStep * fdStep)
		}
	}
	return h
}

// unitSeed returns a seed vector with a single 1 at slot i.
func unitSeed(n, i int) []float64 {
	s := make([]float64, n)
	s[i] = 1
	return s
}

// relClose asserts |got-want| small relative to the magnitude of want.
func relClose(t *testing.T, want, got, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	scale := math.Max(1, math.Abs(want))
	require.InDelta(t, want, got, tol*scale, msgAndArgs...)
}
