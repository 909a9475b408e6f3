// Package mathutil provides the scalar math shared by the window, kernel and
// waveform builders.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order
// zero. Kaiser windows are built from ratios of I₀ values.
//
// Two Abramowitz & Stegun polynomial fits are used:
//   - |x| < 3.75: polynomial in (x/3.75)²
//   - otherwise: eˣ/√x times a polynomial in 3.75/|x|
//
// Relative accuracy is around 1e-7, well below the resolution of any window
// built from it.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)

	if ax < besselSmallArgThreshold {
		t := x / besselSmallArgThreshold
		t *= t
		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	t := besselSmallArgThreshold / ax
	poly := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))

	return math.Exp(ax) * poly / math.Sqrt(ax)
}

// KaiserBeta returns the Kaiser β that reaches the given stopband attenuation
// in dB (Kaiser & Schafer):
//   - att > 50:       β = 0.1102 (att - 8.7)
//   - 21 <= att <= 50: β = 0.5842 (att - 21)^0.4 + 0.07886 (att - 21)
//   - att < 21:       β = 0
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	default:
		return 0.0
	}
}

// KaiserAttenuation is the approximate inverse of KaiserBeta:
// att ≈ 8.7 + β / 0.1102. Used to report the nominal stopband of a kernel
// profile that was specified by β directly.
func KaiserAttenuation(beta float64) float64 {
	if beta < kaiserBetaMinThreshold {
		return 0.0
	}
	return kaiserBetaHighOffset + beta/kaiserBetaHighCoeff1
}

// Sinc is the normalized sinc, sin(πx)/(πx), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1.0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Odd coerces n to an odd integer with 2*(n/2)+1. Even values round up,
// odd values are unchanged.
func Odd(n int) int {
	return oddMultiplier*(n/oddMultiplier) + 1
}
