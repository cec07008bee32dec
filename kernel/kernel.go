// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the twenty closed-form tesseroid surface
// integral kernels: one for the potential, three for its first derivatives,
// six for its second, and ten for its third. Each kernel maps a 14x14 grid
// of source-node latitudes/longitudes plus an observer (φ,λ,r) and the
// prism's radial bounds (R1,R2) to a 14x14 matrix of kernel values, with
// separate analytic branches near the source (Φ→0), near the antipode
// (Φ→π), and the regular (slant-distance) branch elsewhere.
//
// Kernels never allocate on the heap and never fail: inputs are trusted,
// and NaN/Inf leakage is the caller's problem to avoid.
package kernel

import "math"

// N is the fixed quadrature node count shared with package quad.
const N = 14

// Grid is a 14x14 table of per-node values, stack-allocated by callers.
type Grid = [N][N]float64

const degToRad = math.Pi / 180.0

var acosEps = math.Acos(1e-5)

// RawFunc is a kernel's full signature: node grids plus the observer/prism
// parameters it needs bound before the quadrature engine can drive it.
type RawFunc func(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid

// Func is the narrow handle the quadrature engine actually calls: a pure
// 2-D function already bound to one (observer, R1, R2).
type Func func(faiI, lamdaI *Grid) Grid

// Bind wraps a RawFunc into a small-capture Func closed over one evaluation
// point, matching the "closures as kernel handles" idiom the engine expects.
func Bind(k RawFunc, r2, r1, r, faiO, lamdaO float64) Func {
	return func(faiI, lamdaI *Grid) Grid {
		return k(faiI, lamdaI, r2, r1, r, faiO, lamdaO)
	}
}

// bounds holds the per-call invariants shared by every node of one kernel
// evaluation: the normalized radial ratios and the observer's latitude trig.
type bounds struct {
	r          float64
	r2, r1     float64 // 1 - h/r, the normalized radial bounds
	hRatio2    float64
	hRatio1    float64
	cosFaiO    float64
	sinFaiO    float64
}

func newBounds(r2, r1, r, faiO float64) bounds {
	h2 := r - r2
	h1 := r - r1
	hRatio2 := h2 / r
	hRatio1 := h1 / r
	return bounds{
		r:       r,
		r2:      1 - hRatio2,
		r1:      1 - hRatio1,
		hRatio2: hRatio2,
		hRatio1: hRatio1,
		cosFaiO: math.Cos(faiO * degToRad),
		sinFaiO: math.Sin(faiO * degToRad),
	}
}

// node holds the per-source-point angular quantities common to every kernel.
type node struct {
	cosFai float64
	phi    float64 // Φ, the angular distance between source node and observer
	alpha  float64 // azimuth, only meaningful where a kernel consumes it
	tx, ty float64 // direction cosines feeding Φ and azimuth
}

func evalNode(b bounds, faiDeg, lamdaDeg, lamdaO float64) node {
	faiRad := faiDeg * degToRad
	lamdaDiffRad := (lamdaDeg - lamdaO) * degToRad
	cosFai := math.Cos(faiRad)
	sinFai := math.Sin(faiRad)
	cosLamdaDiff := math.Cos(lamdaDiffRad)
	sinLamdaDiff := math.Sin(lamdaDiffRad)

	tx := b.cosFaiO*sinFai - b.sinFaiO*cosFai*cosLamdaDiff
	ty := cosFai * sinLamdaDiff

	num := math.Hypot(ty, tx)
	den := b.sinFaiO*sinFai + b.cosFaiO*cosFai*cosLamdaDiff
	phi := math.Atan2(num, den)
	alpha := math.Atan2(ty, tx)

	return node{cosFai: cosFai, phi: phi, alpha: alpha, tx: tx, ty: ty}
}

// slant returns the slant distance l = sqrt(4 sin^2(Φ/2)(1-h/r) + (h/r)^2)
// for the radial boundary whose normalized ratio is hRatio.
func slant(phi, hRatio float64) float64 {
	sinHalf := math.Sin(phi / 2)
	s2 := sinHalf * sinHalf
	return math.Sqrt(2*(2*s2)*(1-hRatio) + hRatio*hRatio)
}

func evalGrid(faiI, lamdaI *Grid, b bounds, lamdaO float64, f func(b bounds, nd node) float64) Grid {
	var out Grid
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			nd := evalNode(b, faiI[i][j], lamdaI[i][j], lamdaO)
			out[i][j] = f(b, nd)
		}
	}
	return out
}

func near(nd node, acosEps float64) bool { return nd.phi < math.Pi/2-acosEps }
func far(nd node, acosEps float64) bool  { return nd.phi > math.Pi/2+acosEps }
