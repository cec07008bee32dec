// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileio reads and writes the exact binary parameter/result file
// layout external drivers exchange with this library: fixed-order
// float64 arrays framed by little-endian int32 counts, no business logic
// beyond framing. Kept separate from package aggregate so the core stays
// a pure library with no I/O of its own.
package fileio

import (
	"encoding/binary"
	"io"

	"github.com/cpmech/gosl/chk"

	"github.com/mista-math/tesseroid/tesseroid"
)

// GravityParams is the gravity parameter file's contents: quadrature
// tolerances, N prisms' {Fai1,Fai2,Lamda1,Lamda2,R1,R2,Rho} arrays, and M
// observers' {Longitude,Latitude,Radius} arrays.
type GravityParams struct {
	AbsTol, RelTol                          float64
	Fai1, Fai2, Lamda1, Lamda2, R1, R2, Rho []float64
	Longitude, Latitude, Radius              []float64
}

// MagneticParams mirrors GravityParams with Mx,My,Mz in place of Rho.
type MagneticParams struct {
	AbsTol, RelTol                     float64
	Fai1, Fai2, Lamda1, Lamda2, R1, R2 []float64
	Mx, My, Mz                         []float64
	Longitude, Latitude, Radius        []float64
}

func readF64s(r io.Reader, n int32) ([]float64, error) {
	s := make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, &s); err != nil {
		return nil, err
	}
	return s, nil
}

func writeF64s(w io.Writer, s []float64) error {
	return binary.Write(w, binary.LittleEndian, s)
}

// ReadGravityParams reads a gravity parameter file per spec §6: AbsTol
// f64, RelTol f64, N i32, seven length-N arrays, M i32, three length-M
// arrays.
func ReadGravityParams(r io.Reader) (*GravityParams, error) {
	p := &GravityParams{}
	if err := binary.Read(r, binary.LittleEndian, &p.AbsTol); err != nil {
		return nil, chk.Err("fileio: cannot read AbsTol: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &p.RelTol); err != nil {
		return nil, chk.Err("fileio: cannot read RelTol: %v", err)
	}
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, chk.Err("fileio: cannot read N: %v", err)
	}
	if n < 0 {
		return nil, chk.Err("fileio: negative prism count N=%d", n)
	}
	arrays := []*[]float64{&p.Fai1, &p.Fai2, &p.Lamda1, &p.Lamda2, &p.R1, &p.R2, &p.Rho}
	for _, a := range arrays {
		v, err := readF64s(r, n)
		if err != nil {
			return nil, chk.Err("fileio: cannot read prism array: %v", err)
		}
		*a = v
	}
	var m int32
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, chk.Err("fileio: cannot read M: %v", err)
	}
	if m < 0 {
		return nil, chk.Err("fileio: negative observer count M=%d", m)
	}
	obsArrays := []*[]float64{&p.Longitude, &p.Latitude, &p.Radius}
	for _, a := range obsArrays {
		v, err := readF64s(r, m)
		if err != nil {
			return nil, chk.Err("fileio: cannot read observer array: %v", err)
		}
		*a = v
	}
	return p, nil
}

// WriteGravityParams writes p in the same layout ReadGravityParams reads.
func WriteGravityParams(w io.Writer, p *GravityParams) error {
	if err := binary.Write(w, binary.LittleEndian, p.AbsTol); err != nil {
		return chk.Err("fileio: cannot write AbsTol: %v", err)
	}
	if err := binary.Write(w, binary.LittleEndian, p.RelTol); err != nil {
		return chk.Err("fileio: cannot write RelTol: %v", err)
	}
	n := int32(len(p.Fai1))
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return chk.Err("fileio: cannot write N: %v", err)
	}
	for _, a := range [][]float64{p.Fai1, p.Fai2, p.Lamda1, p.Lamda2, p.R1, p.R2, p.Rho} {
		if err := writeF64s(w, a); err != nil {
			return chk.Err("fileio: cannot write prism array: %v", err)
		}
	}
	m := int32(len(p.Longitude))
	if err := binary.Write(w, binary.LittleEndian, m); err != nil {
		return chk.Err("fileio: cannot write M: %v", err)
	}
	for _, a := range [][]float64{p.Longitude, p.Latitude, p.Radius} {
		if err := writeF64s(w, a); err != nil {
			return chk.Err("fileio: cannot write observer array: %v", err)
		}
	}
	return nil
}

// ReadMagneticParams mirrors ReadGravityParams with nine prism arrays.
func ReadMagneticParams(r io.Reader) (*MagneticParams, error) {
	p := &MagneticParams{}
	if err := binary.Read(r, binary.LittleEndian, &p.AbsTol); err != nil {
		return nil, chk.Err("fileio: cannot read AbsTol: %v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &p.RelTol); err != nil {
		return nil, chk.Err("fileio: cannot read RelTol: %v", err)
	}
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, chk.Err("fileio: cannot read N: %v", err)
	}
	if n < 0 {
		return nil, chk.Err("fileio: negative prism count N=%d", n)
	}
	arrays := []*[]float64{&p.Fai1, &p.Fai2, &p.Lamda1, &p.Lamda2, &p.R1, &p.R2, &p.Mx, &p.My, &p.Mz}
	for _, a := range arrays {
		v, err := readF64s(r, n)
		if err != nil {
			return nil, chk.Err("fileio: cannot read prism array: %v", err)
		}
		*a = v
	}
	var m int32
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, chk.Err("fileio: cannot read M: %v", err)
	}
	if m < 0 {
		return nil, chk.Err("fileio: negative observer count M=%d", m)
	}
	obsArrays := []*[]float64{&p.Longitude, &p.Latitude, &p.Radius}
	for _, a := range obsArrays {
		v, err := readF64s(r, m)
		if err != nil {
			return nil, chk.Err("fileio: cannot read observer array: %v", err)
		}
		*a = v
	}
	return p, nil
}

// WriteMagneticParams writes p in the same layout ReadMagneticParams reads.
func WriteMagneticParams(w io.Writer, p *MagneticParams) error {
	if err := binary.Write(w, binary.LittleEndian, p.AbsTol); err != nil {
		return chk.Err("fileio: cannot write AbsTol: %v", err)
	}
	if err := binary.Write(w, binary.LittleEndian, p.RelTol); err != nil {
		return chk.Err("fileio: cannot write RelTol: %v", err)
	}
	n := int32(len(p.Fai1))
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return chk.Err("fileio: cannot write N: %v", err)
	}
	for _, a := range [][]float64{p.Fai1, p.Fai2, p.Lamda1, p.Lamda2, p.R1, p.R2, p.Mx, p.My, p.Mz} {
		if err := writeF64s(w, a); err != nil {
			return chk.Err("fileio: cannot write prism array: %v", err)
		}
	}
	m := int32(len(p.Longitude))
	if err := binary.Write(w, binary.LittleEndian, m); err != nil {
		return chk.Err("fileio: cannot write M: %v", err)
	}
	for _, a := range [][]float64{p.Longitude, p.Latitude, p.Radius} {
		if err := writeF64s(w, a); err != nil {
			return chk.Err("fileio: cannot write observer array: %v", err)
		}
	}
	return nil
}

// WriteGravityResult writes a gravity result file per spec §6: M i32,
// then longitude/latitude/radius arrays, then the 20 field-component
// arrays in the fixed order of the data model.
func WriteGravityResult(w io.Writer, longitude, latitude, radius []float64, fields []tesseroid.GravityField) error {
	m := int32(len(fields))
	if err := binary.Write(w, binary.LittleEndian, m); err != nil {
		return chk.Err("fileio: cannot write M: %v", err)
	}
	for _, a := range [][]float64{longitude, latitude, radius} {
		if err := writeF64s(w, a); err != nil {
			return chk.Err("fileio: cannot write coordinate array: %v", err)
		}
	}
	extract := func(get func(*tesseroid.GravityField) float64) []float64 {
		out := make([]float64, len(fields))
		for i := range fields {
			out[i] = get(&fields[i])
		}
		return out
	}
	getters := []func(*tesseroid.GravityField) float64{
		func(f *tesseroid.GravityField) float64 { return f.V },
		func(f *tesseroid.GravityField) float64 { return f.Vx },
		func(f *tesseroid.GravityField) float64 { return f.Vy },
		func(f *tesseroid.GravityField) float64 { return f.Vz },
		func(f *tesseroid.GravityField) float64 { return f.Vxx },
		func(f *tesseroid.GravityField) float64 { return f.Vxy },
		func(f *tesseroid.GravityField) float64 { return f.Vyy },
		func(f *tesseroid.GravityField) float64 { return f.Vzx },
		func(f *tesseroid.GravityField) float64 { return f.Vzy },
		func(f *tesseroid.GravityField) float64 { return f.Vzz },
		func(f *tesseroid.GravityField) float64 { return f.Vxxx },
		func(f *tesseroid.GravityField) float64 { return f.Vxxy },
		func(f *tesseroid.GravityField) float64 { return f.Vxxz },
		func(f *tesseroid.GravityField) float64 { return f.Vxyz },
		func(f *tesseroid.GravityField) float64 { return f.Vyyx },
		func(f *tesseroid.GravityField) float64 { return f.Vyyy },
		func(f *tesseroid.GravityField) float64 { return f.Vyyz },
		func(f *tesseroid.GravityField) float64 { return f.Vzzx },
		func(f *tesseroid.GravityField) float64 { return f.Vzzy },
		func(f *tesseroid.GravityField) float64 { return f.Vzzz },
	}
	for _, get := range getters {
		if err := writeF64s(w, extract(get)); err != nil {
			return chk.Err("fileio: cannot write field component: %v", err)
		}
	}
	return nil
}

// ReadGravityResult reads a gravity result file written by
// WriteGravityResult.
func ReadGravityResult(r io.Reader) (longitude, latitude, radius []float64, fields []tesseroid.GravityField, err error) {
	var m int32
	if err = binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read M: %v", err)
	}
	if m < 0 {
		return nil, nil, nil, nil, chk.Err("fileio: negative observer count M=%d", m)
	}
	if longitude, err = readF64s(r, m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read longitude: %v", err)
	}
	if latitude, err = readF64s(r, m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read latitude: %v", err)
	}
	if radius, err = readF64s(r, m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read radius: %v", err)
	}
	fields = make([]tesseroid.GravityField, m)
	setters := []func(*tesseroid.GravityField, float64){
		func(f *tesseroid.GravityField, v float64) { f.V = v },
		func(f *tesseroid.GravityField, v float64) { f.Vx = v },
		func(f *tesseroid.GravityField, v float64) { f.Vy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vz = v },
		func(f *tesseroid.GravityField, v float64) { f.Vxx = v },
		func(f *tesseroid.GravityField, v float64) { f.Vxy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vyy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vzx = v },
		func(f *tesseroid.GravityField, v float64) { f.Vzy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vzz = v },
		func(f *tesseroid.GravityField, v float64) { f.Vxxx = v },
		func(f *tesseroid.GravityField, v float64) { f.Vxxy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vxxz = v },
		func(f *tesseroid.GravityField, v float64) { f.Vxyz = v },
		func(f *tesseroid.GravityField, v float64) { f.Vyyx = v },
		func(f *tesseroid.GravityField, v float64) { f.Vyyy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vyyz = v },
		func(f *tesseroid.GravityField, v float64) { f.Vzzx = v },
		func(f *tesseroid.GravityField, v float64) { f.Vzzy = v },
		func(f *tesseroid.GravityField, v float64) { f.Vzzz = v },
	}
	for _, set := range setters {
		col, err := readF64s(r, m)
		if err != nil {
			return nil, nil, nil, nil, chk.Err("fileio: cannot read field component: %v", err)
		}
		for i := range fields {
			set(&fields[i], col[i])
		}
	}
	return longitude, latitude, radius, fields, nil
}

// WriteMagneticResult mirrors WriteGravityResult for the 10-component
// magnetic field.
func WriteMagneticResult(w io.Writer, longitude, latitude, radius []float64, fields []tesseroid.MagneticField) error {
	m := int32(len(fields))
	if err := binary.Write(w, binary.LittleEndian, m); err != nil {
		return chk.Err("fileio: cannot write M: %v", err)
	}
	for _, a := range [][]float64{longitude, latitude, radius} {
		if err := writeF64s(w, a); err != nil {
			return chk.Err("fileio: cannot write coordinate array: %v", err)
		}
	}
	extract := func(get func(*tesseroid.MagneticField) float64) []float64 {
		out := make([]float64, len(fields))
		for i := range fields {
			out[i] = get(&fields[i])
		}
		return out
	}
	getters := []func(*tesseroid.MagneticField) float64{
		func(f *tesseroid.MagneticField) float64 { return f.V },
		func(f *tesseroid.MagneticField) float64 { return f.Vx },
		func(f *tesseroid.MagneticField) float64 { return f.Vy },
		func(f *tesseroid.MagneticField) float64 { return f.Vz },
		func(f *tesseroid.MagneticField) float64 { return f.Vxx },
		func(f *tesseroid.MagneticField) float64 { return f.Vxy },
		func(f *tesseroid.MagneticField) float64 { return f.Vyy },
		func(f *tesseroid.MagneticField) float64 { return f.Vzx },
		func(f *tesseroid.MagneticField) float64 { return f.Vzy },
		func(f *tesseroid.MagneticField) float64 { return f.Vzz },
	}
	for _, get := range getters {
		if err := writeF64s(w, extract(get)); err != nil {
			return chk.Err("fileio: cannot write field component: %v", err)
		}
	}
	return nil
}

// ReadMagneticResult reads a magnetic result file written by
// WriteMagneticResult.
func ReadMagneticResult(r io.Reader) (longitude, latitude, radius []float64, fields []tesseroid.MagneticField, err error) {
	var m int32
	if err = binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read M: %v", err)
	}
	if m < 0 {
		return nil, nil, nil, nil, chk.Err("fileio: negative observer count M=%d", m)
	}
	if longitude, err = readF64s(r, m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read longitude: %v", err)
	}
	if latitude, err = readF64s(r, m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read latitude: %v", err)
	}
	if radius, err = readF64s(r, m); err != nil {
		return nil, nil, nil, nil, chk.Err("fileio: cannot read radius: %v", err)
	}
	fields = make([]tesseroid.MagneticField, m)
	setters := []func(*tesseroid.MagneticField, float64){
		func(f *tesseroid.MagneticField, v float64) { f.V = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vx = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vy = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vz = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vxx = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vxy = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vyy = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vzx = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vzy = v },
		func(f *tesseroid.MagneticField, v float64) { f.Vzz = v },
	}
	for _, set := range setters {
		col, err := readF64s(r, m)
		if err != nil {
			return nil, nil, nil, nil, chk.Err("fileio: cannot read field component: %v", err)
		}
		for i := range fields {
			set(&fields[i], col[i])
		}
	}
	return longitude, latitude, radius, fields, nil
}
