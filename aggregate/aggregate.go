// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregate implements the Aggregator (C4): it sums the Point
// Evaluator's per-prism contribution over a whole model, weighted by
// density or magnetization, for every observer, under one of three
// execution modes (serial, thread-pool, MPI) sharing the same i-outer/
// j-inner accumulation order and the same final radial/radian scaling.
package aggregate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/mista-math/tesseroid/tesseroid"
)

// Mode selects the Aggregator's execution strategy. All three visit the
// same (observer i, prism j) pairs and produce the same result; they
// differ only in how the outer loop over i is scheduled.
type Mode int

const (
	// Serial computes every observer on the calling goroutine.
	Serial Mode = iota
	// Pool fans the observers out across a fixed goroutine pool, each
	// worker owning a contiguous, disjoint range of observers.
	Pool
	// MPI partitions the observers across MPI ranks (gosl/mpi), each
	// rank computing its own chunk and the results reduced across ranks.
	MPI
)

// GravityModel is the input to Gravity: the prisms to sum and the
// observers to evaluate them at, plus the quadrature tolerances shared by
// every Point Evaluator call.
type GravityModel struct {
	Prisms    []*tesseroid.Tesseroid
	Observers []*tesseroid.Observer
	AbsTol    float64
	RelTol    float64
	MaxEval   int
	Verbose   bool // print a progress banner/ticks (rank 0 only under MPI)
}

// MagneticModel mirrors GravityModel for magnetic aggregation.
type MagneticModel struct {
	Prisms    []*tesseroid.Tesseroid
	Observers []*tesseroid.Observer
	AbsTol    float64
	RelTol    float64
	MaxEval   int
	Verbose   bool
}

func (m *GravityModel) validate() error {
	if len(m.Observers) == 0 {
		return chk.Err("aggregate: no observers given")
	}
	if len(m.Prisms) == 0 {
		return chk.Err("aggregate: no tesseroids given")
	}
	return nil
}

func (m *MagneticModel) validate() error {
	if len(m.Observers) == 0 {
		return chk.Err("aggregate: no observers given")
	}
	if len(m.Prisms) == 0 {
		return chk.Err("aggregate: no tesseroids given")
	}
	return nil
}

// Gravity computes the 20-component gravity field of every prism in m at
// every observer in m, weighted by each prism's density, under the
// requested execution Mode.
func Gravity(mode Mode, m GravityModel) ([]tesseroid.GravityField, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	switch mode {
	case Serial:
		return gravitySerial(m, 0, len(m.Observers)), nil
	case Pool:
		return gravityPool(m), nil
	case MPI:
		return gravityMPI(m), nil
	}
	return nil, chk.Err("aggregate: unknown mode %v", mode)
}

// Magnetic computes the 10-component magnetic field of every magnetized
// prism in m at every observer in m, under the requested execution Mode.
func Magnetic(mode Mode, m MagneticModel) ([]tesseroid.MagneticField, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	switch mode {
	case Serial:
		return magneticSerial(m, 0, len(m.Observers)), nil
	case Pool:
		return magneticPool(m), nil
	case MPI:
		return magneticMPI(m), nil
	}
	return nil, chk.Err("aggregate: unknown mode %v", mode)
}

// gravitySerial accumulates observers [lo,hi) of m, each against every
// prism (i outer, j inner, matching Tesseroid_GravityEstimate's loop
// order), then applies the final scaling. Shared by Serial and by each
// Pool/MPI worker's local chunk.
func gravitySerial(m GravityModel, lo, hi int) []tesseroid.GravityField {
	out := make([]tesseroid.GravityField, hi-lo)
	bar := newProgressBar(m.Verbose, hi-lo)
	for i := lo; i < hi; i++ {
		o := m.Observers[i]
		var acc tesseroid.GravityField
		for _, t := range m.Prisms {
			acc.Add(tesseroid.GravityPoint(t, o, m.AbsTol, m.RelTol, m.MaxEval), t.Rho)
		}
		acc.ScaleFinal(o.R)
		out[i-lo] = acc
		bar.tick()
	}
	bar.done()
	return out
}

// magneticSerial mirrors gravitySerial for the magnetic field.
func magneticSerial(m MagneticModel, lo, hi int) []tesseroid.MagneticField {
	out := make([]tesseroid.MagneticField, hi-lo)
	bar := newProgressBar(m.Verbose, hi-lo)
	for i := lo; i < hi; i++ {
		o := m.Observers[i]
		var acc tesseroid.MagneticField
		for _, t := range m.Prisms {
			acc.Add(tesseroid.MagneticPoint(t, o, m.AbsTol, m.RelTol, m.MaxEval))
		}
		acc.ScaleFinal(o.R)
		out[i-lo] = acc
		bar.tick()
	}
	bar.done()
	return out
}

// progressBar prints a yellow banner followed by '|' ticks at roughly
// every 5% of progress, matching the teacher's io.Pfyel/io.Pf reporting
// idiom (fem/solver.go) and the original's own Reportbar cadence.
type progressBar struct {
	on      bool
	total   int
	done0   int
	nextPct int
}

func newProgressBar(verbose bool, total int) *progressBar {
	on := verbose && total > 0 && (!mpi.IsOn() || mpi.Rank() == 0)
	if on {
		io.Pfyel("\nestimating field at %d point(s)\n", total)
	}
	return &progressBar{on: on, total: total, nextPct: 5}
}

func (b *progressBar) tick() {
	if !b.on {
		return
	}
	b.done0++
	pct := 100 * b.done0 / b.total
	for pct >= b.nextPct && b.nextPct <= 100 {
		io.Pf("|")
		b.nextPct += 5
	}
}

func (b *progressBar) done() {
	if !b.on {
		return
	}
	io.Pfgreen(" done\n")
}
