// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/cpmech/gosl/mpi"

	"github.com/mista-math/tesseroid/tesseroid"
)

// mpiDistribute partitions num items across nprocs ranks as evenly as
// possible, the first num%nprocs ranks getting one extra item, and
// returns the contiguous [lo,hi) range owned by rank. Ported from
// MPIDistribute (_tesseroid_estimate.h): DataPerBatch=(num-num%nprocs)/
// nprocs, VectorShiftList accumulates prior ranks' chunk sizes.
func mpiDistribute(num, nprocs, rank int) (lo, hi int) {
	if nprocs < 1 {
		nprocs = 1
	}
	perBatch := (num - num%nprocs) / nprocs
	shift := 0
	size := perBatch
	for r := 0; r < rank; r++ {
		s := perBatch
		if r < num%nprocs {
			s++
		}
		shift += s
	}
	if rank < num%nprocs {
		size++
	}
	return shift, shift + size
}

// reduceSum sums data across every MPI rank in place, using AllReduceSum
// the same way fem/s_implicit.go reduces its residual vector (a local
// buffer plus a same-sized workspace buffer) — ranks outside a given
// observer's owning chunk hold zero there, so the sum reassembles the
// full result on every rank (an AllReduce, rather than the original's
// Gatherv-to-rank-0, is the idiom actually available from gosl/mpi; see
// DESIGN.md).
func reduceSum(data []float64) {
	workspace := make([]float64, len(data))
	mpi.AllReduceSum(data, workspace)
}

// gravityMPI partitions the observers across MPI ranks, computes each
// rank's chunk locally (scaling applied per-observer, independent of the
// partition), then reduces the zero-padded per-component arrays across
// ranks so every rank ends up holding the complete result.
func gravityMPI(m GravityModel) []tesseroid.GravityField {
	n := len(m.Observers)
	nprocs, rank := 1, 0
	if mpi.IsOn() {
		nprocs, rank = mpi.Size(), mpi.Rank()
	}
	lo, hi := mpiDistribute(n, nprocs, rank)

	sub := m
	sub.Verbose = m.Verbose && rank == 0
	local := gravitySerial(sub, lo, hi)

	full := make([]tesseroid.GravityField, n)
	copy(full[lo:hi], local)

	if mpi.IsOn() && nprocs > 1 {
		reduceGravityFields(full)
	}
	return full
}

// magneticMPI mirrors gravityMPI for the magnetic field.
func magneticMPI(m MagneticModel) []tesseroid.MagneticField {
	n := len(m.Observers)
	nprocs, rank := 1, 0
	if mpi.IsOn() {
		nprocs, rank = mpi.Size(), mpi.Rank()
	}
	lo, hi := mpiDistribute(n, nprocs, rank)

	sub := m
	sub.Verbose = m.Verbose && rank == 0
	local := magneticSerial(sub, lo, hi)

	full := make([]tesseroid.MagneticField, n)
	copy(full[lo:hi], local)

	if mpi.IsOn() && nprocs > 1 {
		reduceMagneticFields(full)
	}
	return full
}

// reduceGravityFields reduces all 20 components of full across ranks.
func reduceGravityFields(full []tesseroid.GravityField) {
	n := len(full)
	extract := func(get func(*tesseroid.GravityField) *float64) {
		buf := make([]float64, n)
		for i := range full {
			buf[i] = *get(&full[i])
		}
		reduceSum(buf)
		for i := range full {
			*get(&full[i]) = buf[i]
		}
	}

	extract(func(f *tesseroid.GravityField) *float64 { return &f.V })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vx })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vz })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vxx })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vxy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vyy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vzx })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vzy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vzz })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vxxx })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vxxy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vxxz })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vxyz })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vyyx })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vyyy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vyyz })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vzzx })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vzzy })
	extract(func(f *tesseroid.GravityField) *float64 { return &f.Vzzz })
}

// reduceMagneticFields reduces all 10 components of full across ranks.
func reduceMagneticFields(full []tesseroid.MagneticField) {
	n := len(full)
	extract := func(get func(*tesseroid.MagneticField) *float64) {
		buf := make([]float64, n)
		for i := range full {
			buf[i] = *get(&full[i])
		}
		reduceSum(buf)
		for i := range full {
			*get(&full[i]) = buf[i]
		}
	}

	extract(func(f *tesseroid.MagneticField) *float64 { return &f.V })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vx })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vy })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vz })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vxx })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vxy })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vyy })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vzx })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vzy })
	extract(func(f *tesseroid.MagneticField) *float64 { return &f.Vzz })
}
