// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mista-math/tesseroid/kernel"
)

// constant-one integrand: Integrate should recover the area of the
// [faiMin,faiMax]x[lamMin,lamMax] rectangle.
func constantOne(faiI, lamdaI *kernel.Grid) kernel.Grid {
	var out kernel.Grid
	for i := range out {
		for j := range out[i] {
			out[i][j] = 1
		}
	}
	return out
}

func TestIntegrateConstantIntegrandRecoversArea(t *testing.T) {
	faiMin, faiMax := -1.0, 1.0
	lamMin, lamMax := 10.0, 12.0
	got := Integrate(constantOne, faiMin, faiMax, lamMin, lamMax, 1e-10, 1e-8, 1000)
	want := (faiMax - faiMin) * (lamMax - lamMin)
	assert.InDelta(t, want, got, 1e-6)
}

func TestIntegrateMonotoneInTolerance(t *testing.T) {
	r2, r1, r := 6381.0, 6371.0, 6400.0
	faiO, lamdaO := 20.0, 50.0
	f := kernel.Bind(kernel.V, r2, r1, r, faiO, lamdaO)

	loose := Integrate(f, -1, 1, 10, 12, 1e-6, 1e-6, 2000)
	tight := Integrate(f, -1, 1, 10, 12, 1e-10, 1e-10, 2000)

	assert.InDelta(t, tight, loose, 1e-3)
	assert.False(t, math.IsNaN(loose) || math.IsNaN(tight))
}

func TestIntegrateRespectsMaxEval(t *testing.T) {
	r2, r1, r := 6381.0, 6371.0, 6400.0
	faiO, lamdaO := 0.0, 0.0
	f := kernel.Bind(kernel.V, r2, r1, r, faiO, lamdaO)

	got := Integrate(f, -1, 1, -1, 1, 1e-14, 1e-14, 1)
	assert.False(t, math.IsNaN(got))
}
