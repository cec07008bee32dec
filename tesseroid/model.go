// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tesseroid implements the Point Evaluator (C3): the data model for
// a spherical-prism source and an observer, and the three-case logic that
// turns one (tesseroid, observer) pair into the 20 gravity or 10 magnetic
// field components, driving package quad over package kernel.
package tesseroid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RadianCorrection, (π/180)², converts a measure integrated over degrees²
// of latitude/longitude to radians². ScaleFinal applies it once per field
// component in the Aggregator's final scaling pass; sphericalShell divides
// its closed forms by it beforehand so they match raw quadrature results.
const RadianCorrection = 2 * 3.141592653589793 * 3.141592653589793 / (180 * 360)

// Tesseroid is a spherical-prism source: latitude/longitude bounds in
// degrees, radial bounds in the caller's length unit, and the source
// scalar(s) that weight it (density for gravity, magnetization for
// magnetism). Immutable once constructed.
type Tesseroid struct {
	Fai1, Fai2     float64 // latitude bounds, degrees, Fai1 < Fai2
	Lamda1, Lamda2 float64 // longitude bounds, degrees, Lamda1 < Lamda2
	R1, R2         float64 // radial bounds, R1 < R2, both > 0
	Rho            float64 // density, used by the gravity aggregator
	Mx, My, Mz     float64 // magnetization in local north-east-radial axes
}

// NewTesseroid validates and builds a prism. Domain validation happens once,
// at construction, per the spec's "validate at the aggregator boundary"
// error taxonomy: a Tesseroid that exists is known-good for the rest of
// the pipeline.
func NewTesseroid(fai1, fai2, lamda1, lamda2, r1, r2, rho float64) (*Tesseroid, error) {
	if !(fai1 < fai2) || fai1 < -90 || fai2 > 90 {
		return nil, chk.Err("tesseroid: latitude bounds must satisfy -90<=Fai1<Fai2<=90, got Fai1=%v Fai2=%v", fai1, fai2)
	}
	if !(lamda1 < lamda2) {
		return nil, chk.Err("tesseroid: longitude bounds must satisfy Lamda1<Lamda2, got Lamda1=%v Lamda2=%v", lamda1, lamda2)
	}
	if !(0 < r1 && r1 < r2) {
		return nil, chk.Err("tesseroid: radial bounds must satisfy 0<R1<R2, got R1=%v R2=%v", r1, r2)
	}
	return &Tesseroid{Fai1: fai1, Fai2: fai2, Lamda1: lamda1, Lamda2: lamda2, R1: r1, R2: r2, Rho: rho}, nil
}

// WithMagnetization attaches a magnetization vector to a prism already
// built for gravity, returning the same pointer for chaining.
func (t *Tesseroid) WithMagnetization(mx, my, mz float64) *Tesseroid {
	t.Mx, t.My, t.Mz = mx, my, mz
	return t
}

// Observer is an evaluation point: geocentric latitude/longitude in
// degrees and radius in the same unit as a Tesseroid's R1/R2.
type Observer struct {
	Fai, Lamda, R float64
}

// NewObserver validates and builds an observer.
func NewObserver(fai, lamda, r float64) (*Observer, error) {
	if fai < -90 || fai > 90 {
		return nil, chk.Err("tesseroid: observer latitude out of range, got %v", fai)
	}
	if r <= 0 {
		return nil, chk.Err("tesseroid: observer radius must be > 0, got %v", r)
	}
	return &Observer{Fai: fai, Lamda: normalizeLongitude(lamda), R: r}, nil
}

// normalizeLongitude wraps lamda into (-180,180], mirroring the original
// point evaluator's own pre-processing step.
func normalizeLongitude(lamda float64) float64 {
	lamda = math.Mod(lamda, 360)
	switch {
	case lamda <= -180:
		return 360 + lamda
	case lamda > 180:
		return -360 + lamda
	default:
		return lamda
	}
}

// GravityField is the 20-component field tuple of potential plus its
// first, second and third derivatives, in the order spec'd by the data
// model: {V, Vx, Vy, Vz, Vxx, Vxy, Vyy, Vzx, Vzy, Vzz, Vxxx, Vxxy, Vxxz,
// Vxyz, Vyyx, Vyyy, Vyyz, Vzzx, Vzzy, Vzzz}.
type GravityField struct {
	V                            float64
	Vx, Vy, Vz                   float64
	Vxx, Vxy, Vyy, Vzx, Vzy, Vzz float64
	Vxxx, Vxxy, Vxxz, Vxyz       float64
	Vyyx, Vyyy, Vyyz             float64
	Vzzx, Vzzy, Vzzz             float64
}

// Add accumulates another field's components into the receiver, weighted
// by w; used by the Aggregator's per-prism density/magnetization-weighted
// summation.
func (f *GravityField) Add(g GravityField, w float64) {
	f.V += g.V * w
	f.Vx += g.Vx * w
	f.Vy += g.Vy * w
	f.Vz += g.Vz * w
	f.Vxx += g.Vxx * w
	f.Vxy += g.Vxy * w
	f.Vyy += g.Vyy * w
	f.Vzx += g.Vzx * w
	f.Vzy += g.Vzy * w
	f.Vzz += g.Vzz * w
	f.Vxxx += g.Vxxx * w
	f.Vxxy += g.Vxxy * w
	f.Vxxz += g.Vxxz * w
	f.Vxyz += g.Vxyz * w
	f.Vyyx += g.Vyyx * w
	f.Vyyy += g.Vyyy * w
	f.Vyyz += g.Vyyz * w
	f.Vzzx += g.Vzzx * w
	f.Vzzy += g.Vzzy * w
	f.Vzzz += g.Vzzz * w
}

// ScaleFinal applies the Aggregator's final radial/radian scaling in
// place: V by r²·RC, first derivatives by r·RC, second derivatives by RC,
// third derivatives by RC/r.
func (f *GravityField) ScaleFinal(r float64) {
	f.V *= r * r * RadianCorrection

	f.Vx *= r * RadianCorrection
	f.Vy *= r * RadianCorrection
	f.Vz *= r * RadianCorrection

	f.Vxx *= RadianCorrection
	f.Vxy *= RadianCorrection
	f.Vyy *= RadianCorrection
	f.Vzx *= RadianCorrection
	f.Vzy *= RadianCorrection
	f.Vzz *= RadianCorrection

	f.Vxxx = f.Vxxx / r * RadianCorrection
	f.Vxxy = f.Vxxy / r * RadianCorrection
	f.Vxxz = f.Vxxz / r * RadianCorrection
	f.Vxyz = f.Vxyz / r * RadianCorrection
	f.Vyyx = f.Vyyx / r * RadianCorrection
	f.Vyyy = f.Vyyy / r * RadianCorrection
	f.Vyyz = f.Vyyz / r * RadianCorrection
	f.Vzzx = f.Vzzx / r * RadianCorrection
	f.Vzzy = f.Vzzy / r * RadianCorrection
	f.Vzzz = f.Vzzz / r * RadianCorrection
}

// MagneticField is the 10-component field tuple {V, Vx, Vy, Vz, Vxx, Vxy,
// Vyy, Vzx, Vzy, Vzz} produced by the magnetic point evaluator.
type MagneticField struct {
	V                            float64
	Vx, Vy, Vz                   float64
	Vxx, Vxy, Vyy, Vzx, Vzy, Vzz float64
}

// Add accumulates another field's components into the receiver, unweighted;
// unlike GravityField.Add it takes no weight, since the rotation in
// MagneticPoint already folds in Mx,My,Mz.
func (f *MagneticField) Add(g MagneticField) {
	f.V += g.V
	f.Vx += g.Vx
	f.Vy += g.Vy
	f.Vz += g.Vz
	f.Vxx += g.Vxx
	f.Vxy += g.Vxy
	f.Vyy += g.Vyy
	f.Vzx += g.Vzx
	f.Vzy += g.Vzy
	f.Vzz += g.Vzz
}

// ScaleFinal applies the Aggregator's final scaling for the magnetic
// 0th/1st/2nd-order groups only (there is no 3rd group in a MagneticField).
func (f *MagneticField) ScaleFinal(r float64) {
	f.V *= r * r * RadianCorrection

	f.Vx *= r * RadianCorrection
	f.Vy *= r * RadianCorrection
	f.Vz *= r * RadianCorrection

	f.Vxx *= RadianCorrection
	f.Vxy *= RadianCorrection
	f.Vyy *= RadianCorrection
	f.Vzx *= RadianCorrection
	f.Vzy *= RadianCorrection
	f.Vzz *= RadianCorrection
}
