// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana holds diagnostics and analytic reference solutions that sit
// downstream of the Aggregator: gravity-gradient tensor invariants for
// gradiometry interpretation, and the point-mass/homogeneous-shell closed
// forms the end-to-end tests check the numerical result against.
package ana

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// GradientTensor is the symmetric 3x3 second-derivative block of a
// GravityField or MagneticField, in local north-east-radial axes.
type GradientTensor struct {
	Vxx, Vxy, Vyy, Vzx, Vzy, Vzz float64
}

// Invariants holds the mean (P) and deviatoric (Q) invariants of a
// gradient tensor, plus its three principal values (eigenvalues of the
// 3x3 symmetric matrix), ordered λ1>=λ2>=λ3.
type Invariants struct {
	P           float64
	Q           float64
	Eigenvalues [3]float64
}

// mandel packs the tensor into gosl/tsr's Mandel basis: the full matrix
// form (allocated via gosl/la.MatAlloc, the same helper msolid's
// PrincStrainsUp.Init uses for its 3x3 working matrices) feeds
// tsr.Ten2Man the same way msolid's SpectralCompose does (auxiliary.go),
// giving p=tr/3 and q the standard deviatoric-norm invariants via
// tsr.M_p/tsr.M_q.
func (g GradientTensor) mandel() []float64 {
	full := la.MatAlloc(3, 3)
	full[0][0], full[0][1], full[0][2] = g.Vxx, g.Vxy, g.Vzx
	full[1][0], full[1][1], full[1][2] = g.Vxy, g.Vyy, g.Vzy
	full[2][0], full[2][1], full[2][2] = g.Vzx, g.Vzy, g.Vzz
	m := make([]float64, 6)
	tsr.Ten2Man(m, full)
	return m
}

// GradientInvariants computes the mean/deviatoric invariants and the
// principal values of a gravity- or magnetic-gradient tensor. In vacuum
// (away from any source) trace(g)=0 by Laplace's equation, so P should be
// ~0 for any field the Aggregator produces outside a prism; a nonzero P
// signals either a source-interior evaluation or a tolerance too loose to
// trust.
func GradientInvariants(g GradientTensor) (Invariants, error) {
	m := g.mandel()
	p := tsr.M_p(m)
	q := tsr.M_q(m)
	eig := make([]float64, 3)
	if err := tsr.M_EigenValsNum(eig, m); err != nil {
		return Invariants{}, chk.Err("ana: eigenvalue decomposition failed: %v", err)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(eig)))
	return Invariants{P: p, Q: q, Eigenvalues: [3]float64{eig[0], eig[1], eig[2]}}, nil
}
