// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tesseroid

// Rect is a latitude/longitude rectangle: [Fai1,Fai2]x[Lamda1,Lamda2].
type Rect struct {
	Fai1, Fai2     float64
	Lamda1, Lamda2 float64
}

// splitTesseroid subtracts a hole from an outer rectangle and returns the
// up-to-4 rectangles making up the complement. The hole is centered on
// (pFai,pLamda) with full widths (dFai,dLamda) and clamped to the outer
// rectangle; the caller passes the PRISM's own centroid and own full
// angular extent here, not the observer's position (confirmed intentional
// against the original: see SPEC_FULL §12.1). If the center point falls
// outside the outer rectangle, the outer rectangle is returned unsplit.
func splitTesseroid(outer Rect, pFai, pLamda, dFai, dLamda float64) []Rect {
	if pFai < outer.Fai1 || pFai > outer.Fai2 || pLamda < outer.Lamda1 || pLamda > outer.Lamda2 {
		return []Rect{outer}
	}

	halfDFai := dFai / 2
	halfDLamda := dLamda / 2

	smallFai1 := max(pFai-halfDFai, outer.Fai1)
	smallFai2 := min(pFai+halfDFai, outer.Fai2)
	smallLamda1 := max(pLamda-halfDLamda, outer.Lamda1)
	smallLamda2 := min(pLamda+halfDLamda, outer.Lamda2)

	var rects []Rect

	if smallFai2 < outer.Fai2 {
		rects = append(rects, Rect{smallFai2, outer.Fai2, outer.Lamda1, outer.Lamda2})
	}
	if smallFai1 > outer.Fai1 {
		rects = append(rects, Rect{outer.Fai1, smallFai1, outer.Lamda1, outer.Lamda2})
	}
	if smallLamda1 > outer.Lamda1 {
		rects = append(rects, Rect{smallFai1, smallFai2, outer.Lamda1, smallLamda1})
	}
	if smallLamda2 < outer.Lamda2 {
		rects = append(rects, Rect{smallFai1, smallFai2, smallLamda2, outer.Lamda2})
	}

	return rects
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
