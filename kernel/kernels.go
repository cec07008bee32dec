// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// V is the gravitational (or magnetic-substitute) potential kernel.
func V(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return -0.5 * nd.cosFai * (2*b.r2 + b.r2*b.r2 - 2*b.r1 - b.r1*b.r1 + 2*math.Log((b.r2-1)/(b.r1-1)))
			case b.r1 < 1:
				return 0.5 * nd.cosFai * (2*b.r2 + b.r2*b.r2 + 2*b.r1 + b.r1*b.r1 + 4*math.Log(b.r) + 2*math.Log((1-b.r1)*(b.r2-1)))
			default:
				return -0.5 * nd.cosFai * (2*b.r2 + b.r2*b.r2 - 2*b.r1 - b.r1*b.r1 + 2*math.Log((b.r2-1)/(b.r1-1)))
			}
		case far(nd, acosEps):
			return 0.5 * nd.cosFai * (-2*b.r2 + b.r2*b.r2 + 2*b.r1 - b.r1*b.r1 + 2*math.Log((b.r2+1)/(b.r1+1)))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			cosPhi := math.Cos(nd.phi)
			return 0.5 * nd.cosFai * ((3*cosPhi+b.r2)*l2 - (3*cosPhi+b.r1)*l1 +
				(1-3*cosPhi*cosPhi)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
		}
	})
}

// Vx is the first derivative of V with respect to the observer's north axis.
func Vx(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		cscPhi := 1 / math.Sin(nd.phi)
		cotPhi := 1 / math.Tan(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		return nd.cosFai * math.Cos(nd.alpha) * (
			(0.5*cscPhi*(1-3*cos2Phi)*(l1-l2)+
				0.5*(-cotPhi+3*cscPhi*math.Cos(3*nd.phi))*(b.r2*l1-b.r1*l2)+
				0.5*cscPhi*(1-cos2Phi)*(b.r2*b.r2*l1-b.r1*b.r1*l2))/(l2*l1) -
				1.5*math.Sin(2*nd.phi)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
	})
}

// Vy is the first derivative of V with respect to the observer's east axis.
func Vy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		cscPhi := 1 / math.Sin(nd.phi)
		cotPhi := 1 / math.Tan(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		return nd.cosFai * math.Sin(nd.alpha) * (
			(0.5*cscPhi*(1-3*cos2Phi)*(l1-l2)+
				0.5*(-cotPhi+3*cscPhi*math.Cos(3*nd.phi))*(b.r2*l1-b.r1*l2)+
				0.5*cscPhi*(1-cos2Phi)*(b.r2*b.r2*l1-b.r1*b.r1*l2))/(l2*l1) -
				1.5*math.Sin(2*nd.phi)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
	})
}

// Vz is the first derivative of V with respect to the observer's radial axis
// (positive outward, so a mass below the observer gives a negative Vz).
func Vz(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return -nd.cosFai * ((b.r2-b.r1)/((1-b.r2)*(1-b.r1)) + (b.r2 - b.r1) + 2*math.Log((1-b.r2)/(1-b.r1)))
			case b.r1 < 1:
				return nd.cosFai * ((2-b.r2-b.r1)/((1-b.r2)*(1-b.r1)) + (b.r2 + b.r1) + 4*math.Log(b.r) + 2*math.Log((1-b.r1)*(b.r2-1)))
			default:
				return nd.cosFai * ((b.r2-b.r1)/((1-b.r2)*(1-b.r1)) + (b.r2 - b.r1) + 2*math.Log((1-b.r2)/(1-b.r1)))
			}
		case far(nd, acosEps):
			return nd.cosFai * ((b.r1-b.r2)/((1+b.r2)*(1+b.r1)) - (b.r2 - b.r1) + 2*math.Log((1+b.r2)/(1+b.r1)))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			cosPhi := math.Cos(nd.phi)
			return nd.cosFai * ((3*cosPhi*(l1-l2)+
				(1-6*cosPhi*cosPhi)*(b.r2*l1-b.r1*l2)+
				cosPhi*(b.r2*b.r2*l1-b.r1*b.r1*l2))/(l2*l1) +
				(1-3*cosPhi*cosPhi)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
		}
	})
}

// Vxx is the second derivative ∂²V/∂x².
func Vxx(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) - (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + math.Log((1-b.r2)/(1-b.r1)))
			case b.r1 < 1:
				return -nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) + (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + 2*math.Log(b.r) + math.Log((b.r2-1)/(1-b.r1)))
			default:
				return -nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) - (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + math.Log((b.r2-1)/(b.r1-1)))
			}
		case far(nd, acosEps):
			return -nd.cosFai * ((3+4*b.r2)/(2*(1+b.r2)*(1+b.r2)) - (3+4*b.r1)/(2*(1+b.r1)*(1+b.r1)) + math.Log((1+b.r2)/(1+b.r1)))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			l2p3 := l2 * l2 * l2
			l1p3 := l1 * l1 * l1
			cscPhi := 1 / math.Sin(nd.phi)
			cotPhi := 1 / math.Tan(nd.phi)
			cosPhi := math.Cos(nd.phi)
			cos2Phi := math.Cos(2 * nd.phi)
			cosAlpha2 := math.Cos(nd.alpha) * math.Cos(nd.alpha)
			return nd.cosFai * (
				cosAlpha2*cscPhi*cscPhi*(
					(-5*cosPhi+3*cosPhi*cosPhi*cosPhi)*(l1p3-l2p3)+
						(-3+15*cosPhi*cosPhi-6*cosPhi*cosPhi*cos2Phi)*(b.r2*l1p3-b.r1*l2p3)+
						(-9*cosPhi*cosPhi*cosPhi+3*cosPhi*cosPhi*math.Cos(3*nd.phi))*(b.r2*b.r2*l1p3-b.r1*b.r1*l2p3)+
						(-4+10*cosPhi*cosPhi-4*cosPhi*cosPhi*cos2Phi)*(b.r2*b.r2*b.r2*l1p3-b.r1*b.r1*b.r1*l2p3))/(l2p3*l1p3)+
					(cotPhi*cscPhi*(l1-l2)+(1-cotPhi*cotPhi)*(b.r2*l1-b.r1*l2))/(l2*l1)+
					(1-3*nd.tx*nd.tx)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
		}
	})
}

// Vxy is the second derivative ∂²V/∂x∂y.
func Vxy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cosPhi := math.Cos(nd.phi)
		return nd.cosFai*0.5*math.Sin(2*nd.alpha)*(cscPhi*cscPhi*(
			(cosPhi*(-5+3*cosPhi*cosPhi))*(l1p3-l2p3)+
				3*(-1+7*cosPhi*cosPhi-4*math.Pow(cosPhi, 4))*(b.r2*l1p3-b.r1*l2p3)+
				6*cosPhi*cosPhi*cosPhi*(-2+math.Cos(2*nd.phi))*(b.r2*b.r2*l1p3-b.r1*b.r1*l2p3)+
				(3*math.Cos(2*nd.phi)-math.Cos(4*nd.phi))*(b.r2*b.r2*b.r2*l1p3-b.r1*b.r1*b.r1*l2p3))/(l2p3*l1p3)) -
			nd.cosFai*nd.tx*nd.ty*3*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1))
	})
}

// Vyy is the second derivative ∂²V/∂y².
func Vyy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) - (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + math.Log((1-b.r2)/(1-b.r1)))
			case b.r1 < 1:
				return -nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) + (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + 2*math.Log(b.r) + math.Log((b.r2-1)/(1-b.r1)))
			default:
				return -nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) - (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + math.Log((b.r2-1)/(b.r1-1)))
			}
		case far(nd, acosEps):
			return -nd.cosFai * ((3+4*b.r2)/(2*(1+b.r2)*(1+b.r2)) - (3+4*b.r1)/(2*(1+b.r1)*(1+b.r1)) + math.Log((1+b.r2)/(1+b.r1)))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			l2p3 := l2 * l2 * l2
			l1p3 := l1 * l1 * l1
			cscPhi := 1 / math.Sin(nd.phi)
			cotPhi := 1 / math.Tan(nd.phi)
			cosPhi := math.Cos(nd.phi)
			cos2Phi := math.Cos(2 * nd.phi)
			sinAlpha2 := math.Sin(nd.alpha) * math.Sin(nd.alpha)
			return nd.cosFai * (
				sinAlpha2*cscPhi*cscPhi*(
					(-5*cosPhi+3*cosPhi*cosPhi*cosPhi)*(l1p3-l2p3)+
						(-3+15*cosPhi*cosPhi-6*cosPhi*cosPhi*cos2Phi)*(b.r2*l1p3-b.r1*l2p3)+
						(-9*cosPhi*cosPhi*cosPhi+3*cosPhi*cosPhi*math.Cos(3*nd.phi))*(b.r2*b.r2*l1p3-b.r1*b.r1*l2p3)+
						(-4+10*cosPhi*cosPhi-4*cosPhi*cosPhi*cos2Phi)*(b.r2*b.r2*b.r2*l1p3-b.r1*b.r1*b.r1*l2p3))/(l2p3*l1p3)+
					(cotPhi*cscPhi*(l1-l2)+(1-cotPhi*cotPhi)*(b.r2*l1-b.r1*l2))/(l2*l1)+
					(1-3*nd.ty*nd.ty)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
		}
	})
}

// Vzx is the second derivative ∂²V/∂z∂x.
func Vzx(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cotPhi := 1 / math.Tan(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		return nd.cosFai * (0.5*math.Cos(nd.alpha)*(
			(cscPhi*(1-3*cos2Phi)*(l1p3-l2p3)+
				cscPhi*6*math.Cos(3*nd.phi)*(b.r2*l1p3-b.r1*l2p3)+
				cscPhi*3*(1-2*cos2Phi-math.Cos(4*nd.phi))*(b.r2*b.r2*l1p3-b.r1*b.r1*l2p3)+
				(2*(2*math.Cos(3*nd.phi)*cscPhi-cotPhi))*(b.r2*b.r2*b.r2*l1p3-b.r1*b.r1*b.r1*l2p3))/(l2p3*l1p3)) -
			3*cosPhi*nd.tx*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
	})
}

// Vzy is the second derivative ∂²V/∂z∂y.
func Vzy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cotPhi := 1 / math.Tan(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		return nd.cosFai * (0.5*math.Sin(nd.alpha)*(
			(cscPhi*(1-3*cos2Phi)*(l1p3-l2p3)+
				cscPhi*6*math.Cos(3*nd.phi)*(b.r2*l1p3-b.r1*l2p3)+
				cscPhi*3*(1-2*cos2Phi-math.Cos(4*nd.phi))*(b.r2*b.r2*l1p3-b.r1*b.r1*l2p3)+
				(2*(2*math.Cos(3*nd.phi)*cscPhi-cotPhi))*(b.r2*b.r2*b.r2*l1p3-b.r1*b.r1*b.r1*l2p3))/(l2p3*l1p3)) -
			3*cosPhi*nd.ty*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
	})
}

// Vzz is the second derivative ∂²V/∂z².
func Vzz(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return -2 * nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) - (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + math.Log((1-b.r2)/(1-b.r1)))
			case b.r1 < 1:
				return 2 * nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) + (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + 2*math.Log(b.r) + math.Log((b.r2-1)*(1-b.r1)))
			default:
				return 2 * nd.cosFai * ((3-4*b.r2)/(2*(1-b.r2)*(1-b.r2)) - (3-4*b.r1)/(2*(1-b.r1)*(1-b.r1)) + math.Log((b.r2-1)/(b.r1-1)))
			}
		case far(nd, acosEps):
			return 2 * nd.cosFai * ((3+4*b.r2)/(2*(1+b.r2)*(1+b.r2)) - (3+4*b.r1)/(2*(1+b.r1)*(1+b.r1)) + math.Log((1+b.r2)/(1+b.r1)))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			l2p3 := l2 * l2 * l2
			l1p3 := l1 * l1 * l1
			cosPhi := math.Cos(nd.phi)
			cos2Phi := math.Cos(2 * nd.phi)
			return nd.cosFai * ((3*cosPhi*(l1p3-l2p3)+
				(-5-6*cos2Phi)*(b.r2*l1p3-b.r1*l2p3)+
				2*cosPhi*(4+3*cos2Phi)*(b.r2*b.r2*l1p3-b.r1*b.r1*l2p3)+
				2*(-1-2*cos2Phi)*(b.r2*b.r2*b.r2*l1p3-b.r1*b.r1*b.r1*l2p3))/(l2p3*l1p3) +
				(1-3*cosPhi*cosPhi)*math.Log((cosPhi-b.r2+l2)/(cosPhi-b.r1+l1)))
		}
	})
}

// Vxxx is the third derivative ∂³V/∂x³.
func Vxxx(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		l2p5 := l2p3 * l2 * l2
		l1p5 := l1p3 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		cosAlpha2 := math.Cos(nd.alpha) * math.Cos(nd.alpha)
		g2 := func(R float64) float64 { return 1 - R*cosPhi }
		return -nd.cosFai * math.Cos(nd.alpha) * math.Pow(cscPhi, 3) * (
			(cosAlpha2*8*(g2(b.r2)*l1p5-g2(b.r1)*l2p5)-
				cosAlpha2*32*cosPhi*(b.r2*g2(b.r2)*l1p5-b.r1*g2(b.r1)*l2p5)+
				cosAlpha2*4*(5+7*cosPhi*cosPhi)*(b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*g2(b.r1)*l2p5)+
				cosAlpha2*4*cosPhi*(-9+cos2Phi)*(b.r2*b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*b.r1*g2(b.r1)*l2p5)+
				cosAlpha2*(15-10*cosPhi*cosPhi+3*math.Pow(cosPhi, 4))*(math.Pow(b.r2, 4)*g2(b.r2)*l1p5-math.Pow(b.r1, 4)*g2(b.r1)*l2p5))/(l2p5*l1p5)+
				(-6*(g2(b.r2)*l1p3-g2(b.r1)*l2p3)+
					12*cosPhi*(b.r2*g2(b.r2)*l1p3-b.r1*g2(b.r1)*l2p3)+
					1.5*(-5+cos2Phi)*(b.r2*b.r2*g2(b.r2)*l1p3-b.r1*b.r1*g2(b.r1)*l2p3))/(l2p3*l1p3))
	})
}

// Vxxy is the third derivative ∂³V/∂x²∂y.
func Vxxy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		l2p5 := l2p3 * l2 * l2
		l1p5 := l1p3 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		cosAlpha2 := math.Cos(nd.alpha) * math.Cos(nd.alpha)
		g2 := func(R float64) float64 { return 1 - R*cosPhi }
		return -nd.cosFai * math.Sin(nd.alpha) * math.Pow(cscPhi, 3) * (
			cosAlpha2*(8*(g2(b.r2)*l1p5-g2(b.r1)*l2p5)-
				32*cosPhi*(b.r2*g2(b.r2)*l1p5-b.r1*g2(b.r1)*l2p5)+
				4*(5+7*cosPhi*cosPhi)*(b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*g2(b.r1)*l2p5)+
				4*cosPhi*(-9+cos2Phi)*(b.r2*b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*b.r1*g2(b.r1)*l2p5)+
				(15-10*cosPhi*cosPhi+3*math.Pow(cosPhi, 4))*(math.Pow(b.r2, 4)*g2(b.r2)*l1p5-math.Pow(b.r1, 4)*g2(b.r1)*l2p5))/(l2p5*l1p5)+
				(-2*(g2(b.r2)*l1p3-g2(b.r1)*l2p3)+
					4*cosPhi*(b.r2*g2(b.r2)*l1p3-b.r1*g2(b.r1)*l2p3)+
					(-3+cosPhi*cosPhi)*(b.r2*b.r2*g2(b.r2)*l1p3-b.r1*b.r1*g2(b.r1)*l2p3))/(l2p3*l1p3))
	})
}

// Vxxz is the third derivative ∂³V/∂x²∂z.
func Vxxz(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) - (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			case b.r1 < 1:
				return -nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) + (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			default:
				return -nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) - (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			}
		case far(nd, acosEps):
			return -nd.cosFai * ((1+3*b.r2+3*b.r2*b.r2)/math.Pow(1+b.r2, 3) - (1+3*b.r1+3*b.r1*b.r1)/math.Pow(1+b.r1, 3))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			l2p5 := l2 * l2 * l2 * l2 * l2
			l1p5 := l1 * l1 * l1 * l1 * l1
			cosPhi := math.Cos(nd.phi)
			return nd.cosFai * ((math.Pow(b.r2, 3)*l1p5-math.Pow(b.r1, 3)*l2p5 -
				2*cosPhi*(math.Pow(b.r2, 4)*l1p5-math.Pow(b.r1, 4)*l2p5) +
				(1-3*nd.tx*nd.tx)*(math.Pow(b.r2, 5)*l1p5-math.Pow(b.r1, 5)*l2p5)) / (l2p5 * l1p5))
		}
	})
}

// Vxyz is the third derivative ∂³V/∂x∂y∂z.
func Vxyz(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p5 := l2 * l2 * l2 * l2 * l2
		l1p5 := l1 * l1 * l1 * l1 * l1
		return -3 * nd.cosFai * nd.tx * nd.ty * (math.Pow(b.r2, 5)*l1p5 - math.Pow(b.r1, 5)*l2p5) / (l2p5 * l1p5)
	})
}

// Vyyx is the third derivative ∂³V/∂y²∂x.
func Vyyx(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		l2p5 := l2p3 * l2 * l2
		l1p5 := l1p3 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		sinAlpha2 := math.Sin(nd.alpha) * math.Sin(nd.alpha)
		g2 := func(R float64) float64 { return 1 - R*cosPhi }
		return -nd.cosFai * math.Cos(nd.alpha) * math.Pow(cscPhi, 3) * (
			sinAlpha2*(8*(g2(b.r2)*l1p5-g2(b.r1)*l2p5)-
				32*cosPhi*(b.r2*g2(b.r2)*l1p5-b.r1*g2(b.r1)*l2p5)+
				4*(5+7*cosPhi*cosPhi)*(b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*g2(b.r1)*l2p5)+
				4*cosPhi*(-9+cos2Phi)*(b.r2*b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*b.r1*g2(b.r1)*l2p5)+
				(15-10*cosPhi*cosPhi+3*math.Pow(cosPhi, 4))*(math.Pow(b.r2, 4)*g2(b.r2)*l1p5-math.Pow(b.r1, 4)*g2(b.r1)*l2p5))/(l2p5*l1p5)+
				(-2*(g2(b.r2)*l1p3-g2(b.r1)*l2p3)+
					4*cosPhi*(b.r2*g2(b.r2)*l1p3-b.r1*g2(b.r1)*l2p3)+
					(-3+cosPhi*cosPhi)*(b.r2*b.r2*g2(b.r2)*l1p3-b.r1*b.r1*g2(b.r1)*l2p3))/(l2p3*l1p3))
	})
}

// Vyyy is the third derivative ∂³V/∂y³.
func Vyyy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p3 := l2 * l2 * l2
		l1p3 := l1 * l1 * l1
		l2p5 := l2p3 * l2 * l2
		l1p5 := l1p3 * l1 * l1
		cscPhi := 1 / math.Sin(nd.phi)
		cosPhi := math.Cos(nd.phi)
		cos2Phi := math.Cos(2 * nd.phi)
		sinAlpha2 := math.Sin(nd.alpha) * math.Sin(nd.alpha)
		g2 := func(R float64) float64 { return 1 - R*cosPhi }
		return -nd.cosFai * math.Sin(nd.alpha) * math.Pow(cscPhi, 3) * (
			sinAlpha2*(8*(g2(b.r2)*l1p5-g2(b.r1)*l2p5)-
				32*cosPhi*(b.r2*g2(b.r2)*l1p5-b.r1*g2(b.r1)*l2p5)+
				4*(5+7*cosPhi*cosPhi)*(b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*g2(b.r1)*l2p5)+
				4*cosPhi*(-9+cos2Phi)*(b.r2*b.r2*b.r2*g2(b.r2)*l1p5-b.r1*b.r1*b.r1*g2(b.r1)*l2p5)+
				(15-10*cosPhi*cosPhi+3*math.Pow(cosPhi, 4))*(math.Pow(b.r2, 4)*g2(b.r2)*l1p5-math.Pow(b.r1, 4)*g2(b.r1)*l2p5))/(l2p5*l1p5)+
				(-6*(g2(b.r2)*l1p3-g2(b.r1)*l2p3)+
					12*cosPhi*(b.r2*g2(b.r2)*l1p3-b.r1*g2(b.r1)*l2p3)+
					1.5*(-5+cos2Phi)*(b.r2*b.r2*g2(b.r2)*l1p3-b.r1*b.r1*g2(b.r1)*l2p3))/(l2p3*l1p3))
	})
}

// Vyyz is the third derivative ∂³V/∂y²∂z.
func Vyyz(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) - (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			case b.r1 < 1:
				return -nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) + (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			default:
				return -nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) - (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			}
		case far(nd, acosEps):
			return -nd.cosFai * ((1+3*b.r2+3*b.r2*b.r2)/math.Pow(1+b.r2, 3) - (1+3*b.r1+3*b.r1*b.r1)/math.Pow(1+b.r1, 3))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			l2p5 := l2 * l2 * l2 * l2 * l2
			l1p5 := l1 * l1 * l1 * l1 * l1
			cosPhi := math.Cos(nd.phi)
			return nd.cosFai * ((math.Pow(b.r2, 3)*l1p5-math.Pow(b.r1, 3)*l2p5 -
				2*cosPhi*(math.Pow(b.r2, 4)*l1p5-math.Pow(b.r1, 4)*l2p5) +
				(1-3*nd.ty*nd.ty)*(math.Pow(b.r2, 5)*l1p5-math.Pow(b.r1, 5)*l2p5)) / (l2p5 * l1p5))
		}
	})
}

// Vzzx is the third derivative ∂³V/∂z²∂x.
func Vzzx(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p5 := l2 * l2 * l2 * l2 * l2
		l1p5 := l1 * l1 * l1 * l1 * l1
		cosPhi := math.Cos(nd.phi)
		g2 := func(R float64) float64 { return 1 - R*cosPhi }
		return 3 * nd.cosFai * nd.tx * (math.Pow(b.r2, 4)*g2(b.r2)*l1p5 - math.Pow(b.r1, 4)*g2(b.r1)*l2p5) / (l2p5 * l1p5)
	})
}

// Vzzy is the third derivative ∂³V/∂z²∂y.
func Vzzy(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		if near(nd, acosEps) || far(nd, acosEps) {
			return 0
		}
		l2 := slant(nd.phi, b.hRatio2)
		l1 := slant(nd.phi, b.hRatio1)
		l2p5 := l2 * l2 * l2 * l2 * l2
		l1p5 := l1 * l1 * l1 * l1 * l1
		cosPhi := math.Cos(nd.phi)
		g2 := func(R float64) float64 { return 1 - R*cosPhi }
		return 3 * nd.cosFai * nd.ty * (math.Pow(b.r2, 4)*g2(b.r2)*l1p5 - math.Pow(b.r1, 4)*g2(b.r1)*l2p5) / (l2p5 * l1p5)
	})
}

// Vzzz is the third derivative ∂³V/∂z³.
func Vzzz(faiI, lamdaI *Grid, r2, r1, r, faiO, lamdaO float64) Grid {
	b := newBounds(r2, r1, r, faiO)
	return evalGrid(faiI, lamdaI, b, lamdaO, func(b bounds, nd node) float64 {
		switch {
		case near(nd, acosEps):
			switch {
			case b.r2 < 1:
				return -2 * nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) - (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			case b.r1 < 1:
				return 2 * nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) + (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			default:
				return 2 * nd.cosFai * ((1-3*b.r2+3*b.r2*b.r2)/math.Pow(1-b.r2, 3) - (1-3*b.r1+3*b.r1*b.r1)/math.Pow(1-b.r1, 3))
			}
		case far(nd, acosEps):
			return 2 * nd.cosFai * ((1+3*b.r2+3*b.r2*b.r2)/math.Pow(1+b.r2, 3) - (1+3*b.r1+3*b.r1*b.r1)/math.Pow(1+b.r1, 3))
		default:
			l2 := slant(nd.phi, b.hRatio2)
			l1 := slant(nd.phi, b.hRatio1)
			l2p5 := l2 * l2 * l2 * l2 * l2
			l1p5 := l1 * l1 * l1 * l1 * l1
			cosPhi := math.Cos(nd.phi)
			return nd.cosFai * ((-2*(math.Pow(b.r2, 3)*l1p5-math.Pow(b.r1, 3)*l2p5) +
				4*cosPhi*(math.Pow(b.r2, 4)*l1p5-math.Pow(b.r1, 4)*l2p5) +
				(1-3*cosPhi*cosPhi)*(math.Pow(b.r2, 5)*l1p5-math.Pow(b.r1, 5)*l2p5)) / (l2p5 * l1p5))
		}
	})
}
