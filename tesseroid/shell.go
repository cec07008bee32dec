// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tesseroid

import "math"

// sphericalShell returns the closed-form potential and its derivatives for
// a homogeneous spherical shell of radii [r1,r2] (Newton's shell theorem),
// evaluated at radius r, already divided down to the same "raw quadrature"
// scale as a split-rectangle integral (V divided by r²·RC, first
// derivatives by r·RC, second by RC, third multiplied by r/RC) so it can
// be combined with the splitTesseroid rectangles' integrals before
// the Aggregator's uniform final scaling. All components that vanish by
// the shell's spherical symmetry (Vx, Vy, Vxy, Vzx, Vzy, Vxxx, Vxxy, Vxyz,
// Vyyx, Vyyy, Vzzx, Vzzy) are zero regardless of which of the three radial
// sub-cases applies.
func sphericalShell(r1, r2, r float64) GravityField {
	m0 := 4 * math.Pi / 3 * (r2*r2*r2 - r1*r1*r1)

	var v, vz, vxx, vyy, vzz, vxxz, vyyz, vzzz float64

	switch {
	case r >= r2:
		v = m0 / r
		vz = -m0 / (r * r)
		vxx = -m0 / (r * r * r)
		vyy = vxx
		vzz = 2 * m0 / (r * r * r)
		vxxz = 3 * m0 / (r * r * r * r)
		vyyz = vxxz
		vzzz = -6 * m0 / (r * r * r * r)

	case r <= r1:
		v = 2 * math.Pi * (r2*r2 - r1*r1)
		vz, vxx, vyy, vzz, vxxz, vyyz, vzzz = 0, 0, 0, 0, 0, 0, 0

	default:
		r1p3 := r1 * r1 * r1
		v = 2 * math.Pi * (r2*r2 - r*r/3 - 2*r1p3/(3*r))
		vz = -4 * math.Pi / 3 * (r - r1p3/(r*r))
		vxx = -4 * math.Pi / 3 * (1 - r1p3/(r*r*r))
		vyy = vxx
		vzz = -4 * math.Pi / 3 * (1 + 2*r1p3/(r*r*r))
		vxxz = -4 * math.Pi * r1p3 / (r * r * r * r)
		vyyz = vxxz
		vzzz = 8 * math.Pi * r1p3 / (r * r * r * r)
	}

	return GravityField{
		V:    v / (r * r * RadianCorrection),
		Vz:   vz / (r * RadianCorrection),
		Vxx:  vxx / RadianCorrection,
		Vyy:  vyy / RadianCorrection,
		Vzz:  vzz / RadianCorrection,
		Vxxz: vxxz * (r / RadianCorrection),
		Vyyz: vyyz * (r / RadianCorrection),
		Vzzz: vzzz * (r / RadianCorrection),
	}
}
