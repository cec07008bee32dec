// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// PointMassVz returns the radial attraction -mass/r^2 of a point mass at
// the origin, observed at radius r, in the library's own G-less unit
// convention (see DESIGN.md's C3 implementation notes): the far-field
// limit any sufficiently small, sufficiently distant tesseroid must
// approach.
func PointMassVz(mass, r float64) float64 {
	return -mass / (r * r)
}

// PointMassPotential returns the point-mass potential mass/r, the
// zeroth-order far-field limit of GravityField.V.
func PointMassPotential(mass, r float64) float64 {
	return mass / r
}

// HomogeneousShellPotential returns the closed-form potential of a
// homogeneous spherical shell of radii [r1,r2] and density rho, evaluated
// at radius r (Newton's shell theorem): the reference a whole-sphere-
// minus-hole tesseroid model must reduce to, used by the shell-limit
// end-to-end scenario.
func HomogeneousShellPotential(r1, r2, rho, r float64) float64 {
	mass := 4.0 / 3.0 * math.Pi * (r2*r2*r2 - r1*r1*r1) * rho
	switch {
	case r >= r2:
		return mass / r
	case r <= r1:
		return 2 * math.Pi * rho * (r2*r2 - r1*r1)
	default:
		r1p3 := r1 * r1 * r1
		return 2 * math.Pi * rho * (r2*r2 - r*r/3 - 2*r1p3/(3*r))
	}
}
