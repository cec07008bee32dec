// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fills a 14x14 grid with a regular lattice of latitudes/longitudes spanning
// a small prism footprint, mimicking what package quad hands to a kernel.
func sampleGrid(faiMin, faiMax, lamMin, lamMax float64) (Grid, Grid) {
	var fai, lam Grid
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			t := float64(i) / float64(N-1)
			s := float64(j) / float64(N-1)
			fai[i][j] = faiMin + t*(faiMax-faiMin)
			lam[i][j] = lamMin + s*(lamMax-lamMin)
		}
	}
	return fai, lam
}

var allKernels = []struct {
	name string
	fn   RawFunc
}{
	{"V", V}, {"Vx", Vx}, {"Vy", Vy}, {"Vz", Vz},
	{"Vxx", Vxx}, {"Vxy", Vxy}, {"Vyy", Vyy}, {"Vzx", Vzx}, {"Vzy", Vzy}, {"Vzz", Vzz},
	{"Vxxx", Vxxx}, {"Vxxy", Vxxy}, {"Vxxz", Vxxz}, {"Vxyz", Vxyz},
	{"Vyyx", Vyyx}, {"Vyyy", Vyyy}, {"Vyyz", Vyyz},
	{"Vzzx", Vzzx}, {"Vzzy", Vzzy}, {"Vzzz", Vzzz},
}

// shellZero lists the components the spec requires to vanish for an
// observer directly over the prism's angular footprint (Φ = 0 branch),
// since a homogeneous spherical shell has no lateral derivatives there.
var shellZero = map[string]bool{
	"Vx": true, "Vy": true, "Vxy": true, "Vzx": true, "Vzy": true,
	"Vxxx": true, "Vxxy": true, "Vxyz": true, "Vyyx": true, "Vyyy": true,
	"Vzzx": true, "Vzzy": true,
}

func TestKernelsFiniteAwayFromSingularity(t *testing.T) {
	faiI, lamdaI := sampleGrid(-1, 1, 10, 12)
	r2, r1, r := 6381.0, 6371.0, 6400.0
	faiO, lamdaO := 20.0, 50.0

	for _, k := range allKernels {
		g := k.fn(&faiI, &lamdaI, r2, r1, r, faiO, lamdaO)
		for i := 0; i < N; i++ {
			for j := 0; j < N; j++ {
				v := g[i][j]
				assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0),
					"%s(%d,%d) = %v, want finite", k.name, i, j, v)
			}
		}
	}
}

func TestKernelsZeroAtObserverFootprint(t *testing.T) {
	r2, r1, r := 6381.0, 6371.0, 6400.0
	faiO, lamdaO := 0.0, 0.0
	faiI, lamdaI := sampleGrid(faiO, faiO, lamdaO, lamdaO)

	for _, k := range allKernels {
		if !shellZero[k.name] {
			continue
		}
		g := k.fn(&faiI, &lamdaI, r2, r1, r, faiO, lamdaO)
		for i := 0; i < N; i++ {
			for j := 0; j < N; j++ {
				assert.InDeltaf(t, 0, g[i][j], 1e-9, "%s(%d,%d)", k.name, i, j)
			}
		}
	}
}

func TestBindClosesOverEvaluationPoint(t *testing.T) {
	faiI, lamdaI := sampleGrid(-1, 1, 10, 12)
	f := Bind(V, 6381.0, 6371.0, 6400.0, 20.0, 50.0)
	direct := V(&faiI, &lamdaI, 6381.0, 6371.0, 6400.0, 20.0, 50.0)
	bound := f(&faiI, &lamdaI)
	assert.Equal(t, direct, bound)
}

func TestVFiniteNearRightAngleSeparation(t *testing.T) {
	r2, r1, r := 6381.0, 6371.0, 6400.0
	faiO, lamdaO := 0.0, 0.0
	faiI, lamdaI := sampleGrid(89, 91, 10, 12)

	g := V(&faiI, &lamdaI, r2, r1, r, faiO, lamdaO)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			assert.False(t, math.IsNaN(g[i][j]) || math.IsInf(g[i][j], 0))
		}
	}
}
