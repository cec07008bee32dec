// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tesseroid reads a binary parameter file (spec §6), aggregates
// the gravity or magnetic field of every prism at every observer, and
// writes a binary result file. Modelled on gofem's main.go: mpi.Start/
// mpi.Stop wrapping, defer/recover for a clean top-level error report,
// and io.ArgTo* positional arguments rather than the stdlib flag package.
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/mista-math/tesseroid/aggregate"
	"github.com/mista-math/tesseroid/fileio"
	"github.com/mista-math/tesseroid/tesseroid"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
			mpi.Stop(false)
			os.Exit(2)
		}
	}()
	mpi.Start(false)

	// input parameters
	paramPath, _ := io.ArgToFilename(0, "", "", false)
	resultPath := io.ArgToString(1, "result.bin")
	modeName := io.ArgToString(2, "serial")
	magnetic := io.ArgToBool(3, false)
	verbose := io.ArgToBool(4, true)
	allowParallel := io.ArgToBool(5, true)

	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nTesseroid -- spherical-prism gravity/magnetic forward modelling\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"parameter file", "paramPath", paramPath,
			"result file", "resultPath", resultPath,
			"execution mode", "modeName", modeName,
			"magnetic parameter file", "magnetic", magnetic,
			"show messages", "verbose", verbose,
			"allow MPI parallel run", "allowParallel", allowParallel,
		))
	}

	mode, err := parseMode(modeName, allowParallel)
	if err != nil {
		chk.Panic("%v", err)
	}

	fil, err := os.Open(paramPath)
	if err != nil {
		// spec §6: exit code 0 signals failure to open the parameter file.
		if mpi.Rank() == 0 {
			io.PfRed("ERROR: cannot open parameter file %q: %v\n", paramPath, err)
		}
		mpi.Stop(false)
		os.Exit(0)
	}

	if magnetic {
		runMagnetic(fil, resultPath, mode, verbose)
	} else {
		runGravity(fil, resultPath, mode, verbose)
	}
	fil.Close()

	mpi.Stop(false)
	os.Exit(1) // spec §6: exit code 1 signals success.
}

func parseMode(name string, allowParallel bool) (aggregate.Mode, error) {
	switch name {
	case "serial":
		return aggregate.Serial, nil
	case "pool":
		return aggregate.Pool, nil
	case "mpi":
		if !allowParallel {
			return aggregate.Serial, nil
		}
		return aggregate.MPI, nil
	}
	return aggregate.Serial, chk.Err("unknown execution mode %q (want serial, pool or mpi)", name)
}

func runGravity(fil *os.File, resultPath string, mode aggregate.Mode, verbose bool) {
	params, err := fileio.ReadGravityParams(fil)
	if err != nil {
		chk.Panic("cannot read gravity parameter file:\n%v", err)
	}

	prisms := make([]*tesseroid.Tesseroid, len(params.Fai1))
	for j := range prisms {
		t, err := tesseroid.NewTesseroid(params.Fai1[j], params.Fai2[j], params.Lamda1[j], params.Lamda2[j], params.R1[j], params.R2[j], params.Rho[j])
		if err != nil {
			chk.Panic("prism %d: %v", j, err)
		}
		prisms[j] = t
	}

	observers := make([]*tesseroid.Observer, len(params.Longitude))
	for i := range observers {
		o, err := tesseroid.NewObserver(params.Latitude[i], params.Longitude[i], params.Radius[i])
		if err != nil {
			chk.Panic("observer %d: %v", i, err)
		}
		observers[i] = o
	}

	fields, err := aggregate.Gravity(mode, aggregate.GravityModel{
		Prisms: prisms, Observers: observers,
		AbsTol: params.AbsTol, RelTol: params.RelTol, MaxEval: defaultMaxEval,
		Verbose: verbose,
	})
	if err != nil {
		chk.Panic("gravity aggregation failed:\n%v", err)
	}

	if mpi.Rank() != 0 {
		return
	}
	out, err := os.Create(resultPath)
	if err != nil {
		chk.Panic("cannot create result file %q: %v", resultPath, err)
	}
	defer out.Close()
	if err := fileio.WriteGravityResult(out, params.Longitude, params.Latitude, params.Radius, fields); err != nil {
		chk.Panic("cannot write gravity result file:\n%v", err)
	}
	if verbose {
		io.Pfblue2("result file <%s> written\n", resultPath)
	}
}

func runMagnetic(fil *os.File, resultPath string, mode aggregate.Mode, verbose bool) {
	params, err := fileio.ReadMagneticParams(fil)
	if err != nil {
		chk.Panic("cannot read magnetic parameter file:\n%v", err)
	}

	prisms := make([]*tesseroid.Tesseroid, len(params.Fai1))
	for j := range prisms {
		t, err := tesseroid.NewTesseroid(params.Fai1[j], params.Fai2[j], params.Lamda1[j], params.Lamda2[j], params.R1[j], params.R2[j], 0)
		if err != nil {
			chk.Panic("prism %d: %v", j, err)
		}
		t.WithMagnetization(params.Mx[j], params.My[j], params.Mz[j])
		prisms[j] = t
	}

	observers := make([]*tesseroid.Observer, len(params.Longitude))
	for i := range observers {
		o, err := tesseroid.NewObserver(params.Latitude[i], params.Longitude[i], params.Radius[i])
		if err != nil {
			chk.Panic("observer %d: %v", i, err)
		}
		observers[i] = o
	}

	fields, err := aggregate.Magnetic(mode, aggregate.MagneticModel{
		Prisms: prisms, Observers: observers,
		AbsTol: params.AbsTol, RelTol: params.RelTol, MaxEval: defaultMaxEval,
		Verbose: verbose,
	})
	if err != nil {
		chk.Panic("magnetic aggregation failed:\n%v", err)
	}

	if mpi.Rank() != 0 {
		return
	}
	out, err := os.Create(resultPath)
	if err != nil {
		chk.Panic("cannot create result file %q: %v", resultPath, err)
	}
	defer out.Close()
	if err := fileio.WriteMagneticResult(out, params.Longitude, params.Latitude, params.Radius, fields); err != nil {
		chk.Panic("cannot write magnetic result file:\n%v", err)
	}
	if verbose {
		io.Pfblue2("result file <%s> written\n", resultPath)
	}
}

// defaultMaxEval bounds the adaptive quadrature's function-evaluation
// budget per (prism, observer) pair; the parameter file fixes tolerances
// but not this, so the driver picks one generous enough for any tesseroid
// aspect ratio the tolerances themselves don't already reject.
const defaultMaxEval = 200000
