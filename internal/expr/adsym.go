package expr

// adSymCommon is the shared symmetric-AD pass for nodes with one child.
// dx and ddx are the node's memoized local first and second derivatives
// with respect to its own argument.
//
// The pass runs in three sweeps. The backward sweep recurses with the
// adjoint seed pushed through the local derivative, which leaves the
// argument's directional derivatives in dfS and accumulates adjoints into
// ldf at the leaves. The Hessian sweep then adds l·f″·(∂a_i·∂a_j) for the
// upper triangle, using the argument's still-unscaled directions. The
// forward sweep finally scales dfS by the local derivative.
func adSymCommon(arg Operator, dx, ddx Operator, vars []VarID, l Operator,
	S []Operator, dimS int, dfS, ldf, H []Operator,
	newLIS, newSIS, newHIS *[]Operator) {

	seed := project(Mul(l, dx), newLIS)
	arg.ADSymmetric(vars, seed, S, dimS, dfS, ldf, H, newLIS, newSIS, newHIS)

	lddx := project(Mul(l, ddx), newHIS)
	for i := 0; i < dimS; i++ {
		for j := i; j < dimS; j++ {
			H[i*dimS+j] = Add(H[i*dimS+j], Mul(lddx, Mul(dfS[i], dfS[j])))
		}
	}

	for i := 0; i < dimS; i++ {
		dfS[i] = project(Mul(dx, dfS[i]), newSIS)
	}
}

// adSymCommon2 is the shared symmetric-AD pass for nodes with two children.
// dx, dy are the local partials with respect to the first and second child;
// dxx, dxy, dyy the local second partials. The Hessian sweep carries the
// full second-order rule including the mixed cross term, which for the
// product operator (dxy = 1) is the ∂a·∂b contribution.
func adSymCommon2(a1, a2 Operator, dx, dy, dxx, dxy, dyy Operator,
	vars []VarID, l Operator, S []Operator, dimS int,
	dfS, ldf, H []Operator, newLIS, newSIS, newHIS *[]Operator) {

	S1 := make([]Operator, dimS)
	S2 := make([]Operator, dimS)

	seed1 := project(Mul(l, dx), newLIS)
	seed2 := project(Mul(l, dy), newLIS)
	a1.ADSymmetric(vars, seed1, S, dimS, S1, ldf, H, newLIS, newSIS, newHIS)
	a2.ADSymmetric(vars, seed2, S, dimS, S2, ldf, H, newLIS, newSIS, newHIS)

	ldxx := project(Mul(l, dxx), newHIS)
	ldxy := project(Mul(l, dxy), newHIS)
	ldyy := project(Mul(l, dyy), newHIS)
	for i := 0; i < dimS; i++ {
		for j := i; j < dimS; j++ {
			h := H[i*dimS+j]
			h = Add(h, Mul(ldxx, Mul(S1[i], S1[j])))
			h = Add(h, Mul(ldxy, Add(Mul(S1[i], S2[j]), Mul(S2[i], S1[j]))))
			h = Add(h, Mul(ldyy, Mul(S2[i], S2[j])))
			H[i*dimS+j] = h
		}
	}

	for i := 0; i < dimS; i++ {
		dfS[i] = project(Add(Mul(dx, S1[i]), Mul(dy, S2[i])), newSIS)
	}
}
