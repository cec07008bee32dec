// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad implements the adaptive 2-D tensor-product Gauss-Kronrod
// 3/7 quadrature engine that drives the kernel library over a tesseroid's
// angular footprint. Subdivision follows a cosine change of variable
// (theta bound to latitude, phi bound to longitude) and is ordered by a
// max-heap priority queue keyed on an adjusted local error estimate, so
// the regions contributing the most error are always refined first.
package quad

import (
	"container/heap"
	"math"

	"github.com/mista-math/tesseroid/kernel"
)

const n = kernel.N
const halfN = n / 2

// eps100 is 100 times the float64 machine epsilon, the same slack the
// engine uses to decide a rectangle's contribution is already negligible.
const eps100 = 100 * 2.220446049250313e-16

// nArray holds the 14 Chebyshev-like quadrature abscissas in [0,1], shared
// by both the theta and phi directions.
var nArray = [n]float64{
	0.009877182822994962, 0.05635083268962915, 0.14143906266329936, 0.25,
	0.35856093733670064, 0.44364916731037085, 0.490122817177005,
	0.509877182822995, 0.5563508326896291, 0.6414390626632993, 0.75,
	0.8585609373367007, 0.9436491673103709, 0.990122817177005,
}

// lowWeights is the 3-point Gauss rule, embedded in the 7-node layout with
// zero weight at the nodes it does not use.
var lowWeights = [halfN]float64{0, 5.0 / 9.0, 0, 8.0 / 9.0, 0, 5.0 / 9.0, 0}

// highWeights is the 7-point Kronrod rule.
var highWeights = [halfN]float64{
	0.1046562260264672, 0.2684880898683334, 0.4013974147759622,
	0.4509165386584744, 0.4013974147759622, 0.2684880898683334, 0.1046562260264672,
}

// subRectangle is one pending child of the subdivision tree: its own
// quadrature estimate/error plus the (theta, phi) bounds it was cut from.
type subRectangle struct {
	q, e                     float64
	left, right, bottom, top float64
	adjer                    float64
}

// rectHeap is a max-heap over subRectangle.adjer, via container/heap.
type rectHeap []*subRectangle

func (h rectHeap) Len() int            { return len(h) }
func (h rectHeap) Less(i, j int) bool  { return h[i].adjer > h[j].adjer }
func (h rectHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rectHeap) Push(x interface{}) { *h = append(*h, x.(*subRectangle)) }
func (h *rectHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	item := old[last]
	old[last] = nil
	*h = old[:last]
	return item
}

// manager tracks the running error-bound invariant err_ok + sum_adjer_in_pq
// == errbnd across the whole subdivision, alongside the pending-rectangle
// priority queue.
type manager struct {
	pq         rectHeap
	errOK      float64
	errBnd     float64
	sumAdjInPQ float64
}

func (m *manager) saveRectInfo(qsub, esub [4]float64, thetaL, thetaR, phiB, phiT, tol, area, adjust float64) {
	dThetaD2 := (thetaR - thetaL) / 2
	thetaM := thetaL + dThetaD2
	dPhiD2 := (phiT - phiB) / 2
	phiM := phiB + dPhiD2

	localTol := tol * dThetaD2 * dPhiD2 / area
	sum := qsub[0] + qsub[1] + qsub[2] + qsub[3]
	localTol = math.Max(math.Abs(localTol), eps100*math.Abs(sum))

	bounds := [4][4]float64{
		{thetaL, thetaM, phiB, phiM},
		{thetaM, thetaR, phiB, phiM},
		{thetaL, thetaM, phiM, phiT},
		{thetaM, thetaR, phiM, phiT},
	}

	for i := 0; i < 4; i++ {
		adjerI := adjust * esub[i]
		if adjerI > localTol {
			heap.Push(&m.pq, &subRectangle{
				q: qsub[i], e: esub[i],
				left: bounds[i][0], right: bounds[i][1],
				bottom: bounds[i][2], top: bounds[i][3],
				adjer: adjerI,
			})
			m.sumAdjInPQ += adjerI
		} else {
			m.errOK += adjerI
		}
	}
	m.errBnd = m.errOK + m.sumAdjInPQ
}

func (m *manager) getNext() *subRectangle {
	rect := heap.Pop(&m.pq).(*subRectangle)
	m.sumAdjInPQ -= rect.adjer
	m.errBnd = m.errOK + m.sumAdjInPQ
	return rect
}

// partition evaluates k once over the 14x14 node grid spanning
// [thetaL,thetaR]x[phiB,phiT] (transformed by cosine substitution into the
// fixed [faiMin,faiMax]x[lamMin,lamMax] angular domain, theta carrying
// latitude and phi carrying longitude) and returns the Gauss-Kronrod
// 7-point estimate and the |7-point - 3-point| error estimate for each of
// the four child quadrants, without ever subdividing itself.
//
// Returns ok=false when the boundary-skip policy applies: after the first
// evaluation, a transformed grid that again lands exactly on an endpoint of
// the outer domain contributes nothing further and is left at zero.
func partition(k kernel.Func, thetaL, thetaR, phiB, phiT float64, firstEval bool, nfe *int, faiMin, faiMax, lamMin, lamMax float64) (qsub, esub [4]float64, ok bool) {
	dtheta := thetaR - thetaL
	dphi := phiT - phiB

	var theta, phi [n]float64
	for i := 0; i < n; i++ {
		theta[i] = thetaL + nArray[i]*dtheta
		phi[i] = phiB + nArray[i]*dphi
	}

	var fai [n]float64
	for j := 0; j < n; j++ {
		fai[j] = 0.5*(faiMax+faiMin) + 0.5*(faiMax-faiMin)*math.Cos(theta[j])
	}
	if !firstEval && (fai[0] == faiMax || fai[n-1] == faiMin) {
		return qsub, esub, false
	}

	dydt := lamMax - lamMin
	var lam [n]float64
	for i := 0; i < n; i++ {
		lam[i] = lamMin + (0.5+0.5*math.Cos(phi[i]))*dydt
	}
	if !firstEval && (lam[0] == lamMax || lam[n-1] == lamMin) {
		return qsub, esub, false
	}

	var faiGrid, lamGrid kernel.Grid
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			faiGrid[i][j] = fai[j]
			lamGrid[i][j] = lam[i]
		}
	}

	z := k(&faiGrid, &lamGrid)
	*nfe++

	for i := 0; i < n; i++ {
		jac := 0.25 * (faiMax - faiMin) * math.Sin(phi[i]) * dydt
		for j := 0; j < n; j++ {
			z[i][j] *= jac * math.Sin(theta[j])
		}
	}

	r := (dtheta / 4) * (dphi / 4)

	quadrant := func(rowOff, colOff int) (float64, float64) {
		var qHigh, qLow float64
		for lr := 0; lr < halfN; lr++ {
			for lc := 0; lc < halfN; lc++ {
				v := z[rowOff+lr][colOff+lc]
				qHigh += highWeights[lr] * highWeights[lc] * v
				qLow += lowWeights[lr] * lowWeights[lc] * v
			}
		}
		qHigh *= r
		qLow *= r
		return qHigh, math.Abs(qLow - qHigh)
	}

	qsub[0], esub[0] = quadrant(0, 0)
	qsub[1], esub[1] = quadrant(0, halfN)
	qsub[2], esub[2] = quadrant(halfN, 0)
	qsub[3], esub[3] = quadrant(halfN, halfN)

	return qsub, esub, true
}

// Integrate evaluates the double integral of k over latitude [faiMin,faiMax]
// and longitude [lamMin,lamMax], adaptively subdividing until the error
// bound falls below max(ATOL/8, RTOL/8 * |Q|) or maxEval function
// evaluations have been spent, whichever comes first. A MAX_EVAL cutoff is
// not an error: the best available estimate is returned.
func Integrate(k kernel.Func, faiMin, faiMax, lamMin, lamMax, atol, rtol float64, maxEval int) float64 {
	firstEval := true
	nfe := 0

	thetaL, thetaR := 0.0, math.Pi
	phiB, phiT := 0.0, math.Pi
	area := (thetaR - thetaL) * (phiT - phiB)

	qsub, esub, _ := partition(k, thetaL, thetaR, phiB, phiT, firstEval, &nfe, faiMin, faiMax, lamMin, lamMax)
	firstEval = false
	q := qsub[0] + qsub[1] + qsub[2] + qsub[3]

	if rtol < eps100 {
		rtol = eps100
	}
	rtolD8 := math.Max(rtol/8, eps100)
	atolD8 := atol / 8
	tol := eps100 * math.Abs(q)

	mgr := &manager{}
	adjust := 1.0
	mgr.saveRectInfo(qsub, esub, thetaL, thetaR, phiB, phiT, tol, area, adjust)

	for mgr.pq.Len() > 0 && mgr.errBnd > tol {
		if nfe >= maxEval {
			break
		}
		rect := mgr.getNext()
		qsub, esub, _ = partition(k, rect.left, rect.right, rect.bottom, rect.top, firstEval, &nfe, faiMin, faiMax, lamMin, lamMax)
		newq := qsub[0] + qsub[1] + qsub[2] + qsub[3]
		adjust = math.Min(1.0, math.Abs(rect.q-newq)/rect.e)
		q += newq - rect.q
		tol = math.Max(atolD8, rtolD8*math.Abs(q))
		mgr.saveRectInfo(qsub, esub, rect.left, rect.right, rect.bottom, rect.top, tol, area, adjust)
	}

	return q
}
