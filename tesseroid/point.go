// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tesseroid

import (
	"math"

	"github.com/mista-math/tesseroid/kernel"
	"github.com/mista-math/tesseroid/quad"
)

// wholeSphere is the outer rectangle the interior-observer case subtracts
// its hole from.
var wholeSphere = Rect{Fai1: -90, Fai2: 90, Lamda1: -180, Lamda2: 180}

// evaluateAllOverRect drives all 20 kernels through package quad over one
// rectangle, for one (observer, prism radii) evaluation point. The result
// is in "raw quadrature" units: the Aggregator's final radial/radian
// scaling has not yet been applied.
func evaluateAllOverRect(r2, r1, r, faiO, lamdaO float64, rect Rect, atol, rtol float64, maxEval int) GravityField {
	integrate := func(k kernel.RawFunc) float64 {
		f := kernel.Bind(k, r2, r1, r, faiO, lamdaO)
		return quad.Integrate(f, rect.Fai1, rect.Fai2, rect.Lamda1, rect.Lamda2, atol, rtol, maxEval)
	}
	return GravityField{
		V:  integrate(kernel.V),
		Vx: integrate(kernel.Vx), Vy: integrate(kernel.Vy), Vz: integrate(kernel.Vz),
		Vxx: integrate(kernel.Vxx), Vxy: integrate(kernel.Vxy), Vyy: integrate(kernel.Vyy),
		Vzx: integrate(kernel.Vzx), Vzy: integrate(kernel.Vzy), Vzz: integrate(kernel.Vzz),
		Vxxx: integrate(kernel.Vxxx), Vxxy: integrate(kernel.Vxxy), Vxxz: integrate(kernel.Vxxz), Vxyz: integrate(kernel.Vxyz),
		Vyyx: integrate(kernel.Vyyx), Vyyy: integrate(kernel.Vyyy), Vyyz: integrate(kernel.Vyyz),
		Vzzx: integrate(kernel.Vzzx), Vzzy: integrate(kernel.Vzzy), Vzzz: integrate(kernel.Vzzz),
	}
}

// sub subtracts another field componentwise, returning a new field; used
// to combine the shell closed form with the split-rectangle quadrature.
func sub(a, b GravityField) GravityField {
	var out GravityField
	out.Add(a, 1)
	out.Add(b, -1)
	return out
}

// GravityPoint evaluates the 20-component gravity field contribution of
// one tesseroid at one observer, in the "raw" per-prism units the
// Aggregator later weights by density and scales by r²·RC (etc). It
// implements the three cases of the Point Evaluator: pole observer,
// observer strictly inside the prism's angular footprint, and otherwise.
func GravityPoint(t *Tesseroid, o *Observer, atol, rtol float64, maxEval int) GravityField {
	fai, lamda, r := o.Fai, normalizeLongitude(o.Lamda), o.R

	footprint := Rect{Fai1: t.Fai1, Fai2: t.Fai2, Lamda1: t.Lamda1, Lamda2: t.Lamda2}

	// Case 1: pole observer — direct evaluation, no splitting needed since
	// the kernels are never singular there.
	if math.Abs(fai) == 90 {
		return evaluateAllOverRect(t.R2, t.R1, r, fai, lamda, footprint, atol, rtol, maxEval)
	}

	// Case 2: observer strictly inside the prism's angular footprint — the
	// kernels are singular there, so integrate over the complement of a
	// hole centered on the prism's own centroid (not the observer) instead,
	// and recover the hole's contribution from the closed-form spherical
	// shell. See SPEC_FULL §12.1 for why the hole centers on the prism.
	if fai > t.Fai1 && fai < t.Fai2 && lamda > t.Lamda1 && lamda < t.Lamda2 {
		centerFai := (t.Fai1 + t.Fai2) / 2
		centerLamda := (t.Lamda1 + t.Lamda2) / 2
		rects := splitTesseroid(wholeSphere, centerFai, centerLamda, t.Fai2-t.Fai1, t.Lamda2-t.Lamda1)

		var split GravityField
		for _, rect := range rects {
			split.Add(evaluateAllOverRect(t.R2, t.R1, r, fai, lamda, rect, atol, rtol, maxEval), 1)
		}

		shell := sphericalShell(t.R1, t.R2, r)
		return sub(shell, split)
	}

	// Case 3: otherwise — direct evaluation on the prism's own footprint.
	return evaluateAllOverRect(t.R2, t.R1, r, fai, lamda, footprint, atol, rtol, maxEval)
}

// MagneticPoint evaluates the 10-component magnetic field contribution of
// one magnetized tesseroid at one observer. It reuses the same 20 gravity
// kernel evaluations GravityPoint produces (the potential's first
// derivatives feed the magnetic potential, the second and third feed the
// magnetic gradient) rather than a separate magnetic kernel library — see
// SPEC_FULL §12.2.
func MagneticPoint(t *Tesseroid, o *Observer, atol, rtol float64, maxEval int) MagneticField {
	g := GravityPoint(t, o, atol, rtol, maxEval)

	beita := (t.Lamda2+t.Lamda1)/2 - o.Lamda
	cosBeita := math.Cos(beita * degToRad)
	sinBeita := math.Sin(beita * degToRad)

	faiS := (t.Fai1 + t.Fai2) / 2
	cosFaiS := math.Cos(faiS * degToRad)
	sinFaiS := math.Sin(faiS * degToRad)

	cosFaiO := math.Cos(o.Fai * degToRad)
	sinFaiO := math.Sin(o.Fai * degToRad)

	mxLocal := (cosBeita*sinFaiO*sinFaiS+cosFaiO*cosFaiS)*t.Mx +
		(sinBeita*sinFaiO)*t.My +
		(cosBeita*sinFaiO*cosFaiS-cosFaiO*sinFaiS)*t.Mz
	myLocal := (-sinBeita*sinFaiS)*t.Mx +
		cosBeita*t.My -
		sinBeita*cosFaiS*t.Mz
	mzLocal := (cosBeita*cosFaiO*sinFaiS-sinFaiO*cosFaiS)*t.Mx +
		(sinBeita*cosFaiO)*t.My +
		(cosBeita*cosFaiO*cosFaiS+sinFaiO*sinFaiS)*t.Mz

	return MagneticField{
		V: mxLocal*g.Vx + myLocal*g.Vy + mzLocal*g.Vz,

		Vx: mxLocal*g.Vxx + myLocal*g.Vxy + mzLocal*g.Vzx,
		Vy: mxLocal*g.Vxy + myLocal*g.Vyy + mzLocal*g.Vzy,
		Vz: mxLocal*g.Vzx + myLocal*g.Vzy + mzLocal*g.Vzz,

		Vxx: mxLocal*g.Vxxx + myLocal*g.Vxxy + mzLocal*g.Vxxz,
		Vxy: mxLocal*g.Vxxy + myLocal*g.Vyyx + mzLocal*g.Vxyz,
		Vyy: mxLocal*g.Vyyx + myLocal*g.Vyyy + mzLocal*g.Vyyz,
		Vzx: mxLocal*g.Vxxz + myLocal*g.Vxyz + mzLocal*g.Vzzx,
		Vzy: mxLocal*g.Vxyz + myLocal*g.Vyyz + mzLocal*g.Vzzy,
		Vzz: mxLocal*g.Vzzx + myLocal*g.Vzzy + mzLocal*g.Vzzz,
	}
}

const degToRad = math.Pi / 180.0
