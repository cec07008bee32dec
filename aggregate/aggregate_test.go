// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mista-math/tesseroid/tesseroid"
)

func buildModel(t *testing.T) GravityModel {
	t1, err := tesseroid.NewTesseroid(-10, 10, -10, 10, 6300000, 6371000, 2670)
	require.NoError(t, err)
	t2, err := tesseroid.NewTesseroid(20, 30, 40, 50, 6350000, 6371000, 3000)
	require.NoError(t, err)

	o1, err := tesseroid.NewObserver(0, 0, 6380000)
	require.NoError(t, err)
	o2, err := tesseroid.NewObserver(25, 45, 6390000)
	require.NoError(t, err)
	o3, err := tesseroid.NewObserver(-5, 5, 6400000)
	require.NoError(t, err)

	return GravityModel{
		Prisms:    []*tesseroid.Tesseroid{t1, t2},
		Observers: []*tesseroid.Observer{o1, o2, o3},
		AbsTol:    1e-8,
		RelTol:    1e-6,
		MaxEval:   20000,
	}
}

func TestGravityRejectsEmptyModel(t *testing.T) {
	_, err := Gravity(Serial, GravityModel{})
	require.Error(t, err)
}

func TestGravitySerialSumsEveryPrism(t *testing.T) {
	m := buildModel(t)
	fields, err := Gravity(Serial, m)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	for i, o := range m.Observers {
		var want tesseroid.GravityField
		for _, prism := range m.Prisms {
			want.Add(tesseroid.GravityPoint(prism, o, m.AbsTol, m.RelTol, m.MaxEval), prism.Rho)
		}
		want.ScaleFinal(o.R)
		assert.InDelta(t, want.V, fields[i].V, math.Abs(want.V)*1e-9+1e-12)
		assert.InDelta(t, want.Vzz, fields[i].Vzz, math.Abs(want.Vzz)*1e-9+1e-12)
	}
}

func TestGravityPoolMatchesSerial(t *testing.T) {
	m := buildModel(t)
	serial, err := Gravity(Serial, m)
	require.NoError(t, err)
	pooled, err := Gravity(Pool, m)
	require.NoError(t, err)

	require.Len(t, pooled, len(serial))
	for i := range serial {
		assert.InDelta(t, serial[i].V, pooled[i].V, 1e-12)
		assert.InDelta(t, serial[i].Vz, pooled[i].Vz, 1e-12)
		assert.InDelta(t, serial[i].Vzzz, pooled[i].Vzzz, 1e-12)
	}
}

func TestMagneticPoolMatchesSerial(t *testing.T) {
	t1, err := tesseroid.NewTesseroid(-10, 10, -10, 10, 6300000, 6371000, 0)
	require.NoError(t, err)
	t1.WithMagnetization(0.5, -0.2, 0.1)

	o1, err := tesseroid.NewObserver(0, 0, 6380000)
	require.NoError(t, err)
	o2, err := tesseroid.NewObserver(5, -5, 6390000)
	require.NoError(t, err)

	m := MagneticModel{
		Prisms:    []*tesseroid.Tesseroid{t1},
		Observers: []*tesseroid.Observer{o1, o2},
		AbsTol:    1e-8,
		RelTol:    1e-6,
		MaxEval:   20000,
	}

	serial, err := Magnetic(Serial, m)
	require.NoError(t, err)
	pooled, err := Magnetic(Pool, m)
	require.NoError(t, err)

	require.Len(t, pooled, len(serial))
	for i := range serial {
		assert.InDelta(t, serial[i].V, pooled[i].V, 1e-12)
		assert.InDelta(t, serial[i].Vzz, pooled[i].Vzz, 1e-12)
	}
}

// mpiDistribute (without MPI actually on) must still partition a range
// the same way mpi.IsOn()==false does: the whole range on "rank 0 of 1".
func TestMpiDistributeSingleRankCoversWholeRange(t *testing.T) {
	lo, hi := mpiDistribute(7, 1, 0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 7, hi)
}

// Matches MPIDistribute's contiguous-chunk formula: first Num%nprocs
// ranks get one extra item, the rest share the base size evenly, and
// every item is covered by exactly one rank.
func TestMpiDistributePartitionsContiguouslyAndCompletely(t *testing.T) {
	const num = 17
	const nprocs = 5
	covered := make([]bool, num)
	prevHi := 0
	for rank := 0; rank < nprocs; rank++ {
		lo, hi := mpiDistribute(num, nprocs, rank)
		assert.Equal(t, prevHi, lo, "rank %d should start where rank %d left off", rank, rank-1)
		for i := lo; i < hi; i++ {
			require.False(t, covered[i], "index %d covered twice", i)
			covered[i] = true
		}
		prevHi = hi
	}
	assert.Equal(t, num, prevHi)
	for i, c := range covered {
		assert.True(t, c, "index %d never covered", i)
	}
}

func TestWorkerChunksCoverRangeExactlyOnce(t *testing.T) {
	chunks := workerChunks(10, 3)
	covered := make([]bool, 10)
	for _, c := range chunks {
		for i := c[0]; i < c[1]; i++ {
			require.False(t, covered[i])
			covered[i] = true
		}
	}
	for i, c := range covered {
		assert.True(t, c, "index %d never covered", i)
	}
}

func TestWorkerChunksHandlesFewerItemsThanWorkers(t *testing.T) {
	chunks := workerChunks(2, 8)
	total := 0
	for _, c := range chunks {
		total += c[1] - c[0]
	}
	assert.Equal(t, 2, total)
}
