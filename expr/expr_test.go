// Copyright 2026 Dynamo Control Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrlkit/dynamo/expr"
)

func TestCubePipeline(t *testing.T) {
	x := expr.Var(expr.VarState, 0)
	f := expr.PowInt(x, 3)

	list := expr.NewIndexList()
	f.LoadIndices(list)

	v, err := f.Evaluate(0, []float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v, 1e-12)

	d, err := expr.Differentiate(f, list, 0)
	require.NoError(t, err)
	dv, err := d.Evaluate(0, []float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, dv, 1e-12)
}

func TestDynamicsGradientAndHessian(t *testing.T) {
	// Damped pendulum right-hand side in terms of angle, rate, and torque.
	theta := expr.Var(expr.VarState, 0)
	omega := expr.Var(expr.VarState, 1)
	tau := expr.Var(expr.VarControl, 0)

	f := expr.Add(
		expr.Sub(
			expr.Mul(expr.Const(-9.81), expr.Sin(theta)),
			expr.Mul(expr.Const(0.2), omega)),
		tau)

	list := expr.NewIndexList()
	f.LoadIndices(list)
	require.Equal(t, 3, list.Len())

	point := []float64{0.3, 1.1, 0.5}
	grad, err := expr.Gradient(f, list)
	require.NoError(t, err)
	require.Len(t, grad, 3)

	g0, err := grad[0].Evaluate(0, point)
	require.NoError(t, err)
	assert.InDelta(t, -9.81*0.955336489125606, g0, 1e-9) // -9.81·cos(0.3)

	g1, err := grad[1].Evaluate(0, point)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, g1, 1e-12)

	g2, err := grad[2].Evaluate(0, point)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g2, 1e-12)

	d, err := expr.SymmetricAD(f, list)
	require.NoError(t, err)
	h00, err := d.Hessian[0].Evaluate(0, point)
	require.NoError(t, err)
	assert.InDelta(t, 9.81*0.29552020666134, h00, 1e-9) // 9.81·sin(0.3)
}

func TestExportRendering(t *testing.T) {
	theta := expr.Var(expr.VarState, 0)
	f := expr.Mul(expr.Const(-9.81), expr.Sin(theta))
	f.SetVariableExportName(expr.VarState, []string{"theta"})
	assert.Equal(t, "(-9.81*(sin(theta)))", f.String())
}
