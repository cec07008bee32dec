// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientInvariantsOfTracelessTensorHasZeroP(t *testing.T) {
	g := GradientTensor{Vxx: 2, Vyy: -1, Vzz: -1, Vxy: 0.3, Vzx: 0.1, Vzy: -0.2}
	inv, err := GradientInvariants(g)
	require.NoError(t, err)
	assert.InDelta(t, 0, inv.P, 1e-12)
	assert.Greater(t, inv.Q, 0.0)
}

func TestGradientInvariantsEigenvaluesSumToTrace(t *testing.T) {
	g := GradientTensor{Vxx: 3, Vyy: -1, Vzz: -2, Vxy: 0.5, Vzx: -0.2, Vzy: 0.1}
	inv, err := GradientInvariants(g)
	require.NoError(t, err)
	sum := inv.Eigenvalues[0] + inv.Eigenvalues[1] + inv.Eigenvalues[2]
	assert.InDelta(t, g.Vxx+g.Vyy+g.Vzz, sum, 1e-9)
}

func TestGradientInvariantsEigenvaluesDescending(t *testing.T) {
	g := GradientTensor{Vxx: 3, Vyy: -1, Vzz: -2, Vxy: 0.5, Vzx: -0.2, Vzy: 0.1}
	inv, err := GradientInvariants(g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, inv.Eigenvalues[0], inv.Eigenvalues[1])
	assert.GreaterOrEqual(t, inv.Eigenvalues[1], inv.Eigenvalues[2])
}

func TestGradientInvariantsDiagonalMatrixRecoversEigenvalues(t *testing.T) {
	g := GradientTensor{Vxx: 5, Vyy: 2, Vzz: -7}
	inv, err := GradientInvariants(g)
	require.NoError(t, err)
	assert.InDelta(t, 5, inv.Eigenvalues[0], 1e-9)
	assert.InDelta(t, 2, inv.Eigenvalues[1], 1e-9)
	assert.InDelta(t, -7, inv.Eigenvalues[2], 1e-9)
}

func TestHomogeneousShellPotentialContinuousAtBoundaries(t *testing.T) {
	r1, r2, rho := 6300000.0, 6371000.0, 2670.0
	outer := HomogeneousShellPotential(r1, r2, rho, r2)
	mid := HomogeneousShellPotential(r1, r2, rho, r2-1e-6)
	assert.InDelta(t, outer, mid, math.Abs(outer)*1e-6)

	inner := HomogeneousShellPotential(r1, r2, rho, r1)
	midIn := HomogeneousShellPotential(r1, r2, rho, r1+1e-6)
	assert.InDelta(t, inner, midIn, math.Abs(inner)*1e-6)
}

func TestPointMassVzNegativeAndDecaysWithSquareOfDistance(t *testing.T) {
	mass := 1e12
	near := PointMassVz(mass, 1000)
	far := PointMassVz(mass, 2000)
	assert.Less(t, near, 0.0)
	assert.InDelta(t, near/4, far, math.Abs(near)*1e-9)
}
