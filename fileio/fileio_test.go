// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mista-math/tesseroid/tesseroid"
)

func TestGravityParamsRoundTrip(t *testing.T) {
	want := &GravityParams{
		AbsTol: 1e-8, RelTol: 1e-6,
		Fai1: []float64{-10, 5}, Fai2: []float64{10, 15},
		Lamda1: []float64{-20, 0}, Lamda2: []float64{20, 10},
		R1: []float64{6300000, 6350000}, R2: []float64{6371000, 6371000},
		Rho:       []float64{2670, 3000},
		Longitude: []float64{0, 1, 2}, Latitude: []float64{0, -1, -2}, Radius: []float64{6380000, 6390000, 6400000},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteGravityParams(&buf, want))

	got, err := ReadGravityParams(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMagneticParamsRoundTrip(t *testing.T) {
	want := &MagneticParams{
		AbsTol: 1e-8, RelTol: 1e-6,
		Fai1: []float64{-10}, Fai2: []float64{10},
		Lamda1: []float64{-20}, Lamda2: []float64{20},
		R1: []float64{6300000}, R2: []float64{6371000},
		Mx: []float64{1}, My: []float64{0.5}, Mz: []float64{-0.2},
		Longitude: []float64{0, 1}, Latitude: []float64{0, -1}, Radius: []float64{6380000, 6390000},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteMagneticParams(&buf, want))

	got, err := ReadMagneticParams(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGravityResultRoundTrip(t *testing.T) {
	fields := []tesseroid.GravityField{
		{V: 1, Vx: 2, Vy: 3, Vz: 4, Vxx: 5, Vxy: 6, Vyy: 7, Vzx: 8, Vzy: 9, Vzz: 10,
			Vxxx: 11, Vxxy: 12, Vxxz: 13, Vxyz: 14, Vyyx: 15, Vyyy: 16, Vyyz: 17, Vzzx: 18, Vzzy: 19, Vzzz: 20},
		{V: -1, Vzzz: -20},
	}
	longitude := []float64{0, 1}
	latitude := []float64{10, 20}
	radius := []float64{6380000, 6390000}

	var buf bytes.Buffer
	require.NoError(t, WriteGravityResult(&buf, longitude, latitude, radius, fields))

	gotLon, gotLat, gotR, gotFields, err := ReadGravityResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, longitude, gotLon)
	assert.Equal(t, latitude, gotLat)
	assert.Equal(t, radius, gotR)
	assert.Equal(t, fields, gotFields)
}

func TestMagneticResultRoundTrip(t *testing.T) {
	fields := []tesseroid.MagneticField{
		{V: 1, Vx: 2, Vy: 3, Vz: 4, Vxx: 5, Vxy: 6, Vyy: 7, Vzx: 8, Vzy: 9, Vzz: 10},
	}
	longitude := []float64{5}
	latitude := []float64{-5}
	radius := []float64{6400000}

	var buf bytes.Buffer
	require.NoError(t, WriteMagneticResult(&buf, longitude, latitude, radius, fields))

	gotLon, gotLat, gotR, gotFields, err := ReadMagneticResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, longitude, gotLon)
	assert.Equal(t, latitude, gotLat)
	assert.Equal(t, radius, gotR)
	assert.Equal(t, fields, gotFields)
}

func TestReadGravityParamsRejectsNegativeCount(t *testing.T) {
	var buf bytes.Buffer
	p := &GravityParams{AbsTol: 1, RelTol: 1}
	require.NoError(t, WriteGravityParams(&buf, p))

	// corrupt N (byte offset 16, right after AbsTol+RelTol) to -1
	b := buf.Bytes()
	b[16], b[17], b[18], b[19] = 0xff, 0xff, 0xff, 0xff

	_, err := ReadGravityParams(bytes.NewReader(b))
	require.Error(t, err)
}
