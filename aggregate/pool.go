// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"runtime"
	"sync"

	"github.com/mista-math/tesseroid/tesseroid"
)

// workerChunks splits [0,n) into at most workers contiguous, disjoint
// ranges, as even as possible. Each observer is owned by exactly one
// worker, so no synchronization is needed across the per-observer
// accumulators (the Aggregator's thread/process contract).
func workerChunks(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	base := n / workers
	rem := n % workers
	chunks := make([][2]int, 0, workers)
	lo := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		hi := lo + size
		if hi > lo {
			chunks = append(chunks, [2]int{lo, hi})
		}
		lo = hi
	}
	return chunks
}

// gravityPool fans the observers out across runtime.NumCPU() goroutines,
// grounded on ChristopherRabotin-smd's bare sync/goroutine worker
// fan-out (no third-party worker-pool library appears anywhere in the
// pack; see DESIGN.md).
func gravityPool(m GravityModel) []tesseroid.GravityField {
	chunks := workerChunks(len(m.Observers), runtime.NumCPU())
	out := make([]tesseroid.GravityField, len(m.Observers))
	var wg sync.WaitGroup
	for idx, c := range chunks {
		lo, hi := c[0], c[1]
		wg.Add(1)
		go func(lo, hi int, verbose bool) {
			defer wg.Done()
			sub := m
			sub.Verbose = verbose
			res := gravitySerial(sub, lo, hi)
			copy(out[lo:hi], res)
		}(lo, hi, m.Verbose && idx == 0)
	}
	wg.Wait()
	return out
}

// magneticPool mirrors gravityPool for the magnetic field.
func magneticPool(m MagneticModel) []tesseroid.MagneticField {
	chunks := workerChunks(len(m.Observers), runtime.NumCPU())
	out := make([]tesseroid.MagneticField, len(m.Observers))
	var wg sync.WaitGroup
	for idx, c := range chunks {
		lo, hi := c[0], c[1]
		wg.Add(1)
		go func(lo, hi int, verbose bool) {
			defer wg.Done()
			sub := m
			sub.Verbose = verbose
			res := magneticSerial(sub, lo, hi)
			copy(out[lo:hi], res)
		}(lo, hi, m.Verbose && idx == 0)
	}
	wg.Wait()
	return out
}
