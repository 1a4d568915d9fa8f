// Package mathutil provides the special functions behind the analysis
// windows applied to pipeline input.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order
// zero: I₀(x). It overflows to +Inf for |x| above roughly 713; use
// BesselI0Scaled for ratios of large arguments. NaN returns NaN.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < besselSmallArgThreshold {
		return besselI0Small(x)
	}
	return math.Exp(ax) * besselI0Asymp(ax)
}

// BesselI0Scaled computes exp(-|x|)·I₀(x), which stays finite for every
// finite x.
func BesselI0Scaled(x float64) float64 {
	ax := math.Abs(x)
	if ax < besselSmallArgThreshold {
		return math.Exp(-ax) * besselI0Small(x)
	}
	return besselI0Asymp(ax)
}

// besselI0Small evaluates I₀(x) ≈ 1 + P(t), t = (x/3.75)², for |x| < 3.75.
func besselI0Small(x float64) float64 {
	t := x / besselSmallArgThreshold
	t *= t
	return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
		t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
}

// besselI0Asymp evaluates exp(-x)·I₀(x) ≈ P(3.75/x)/√x for x ≥ 3.75.
func besselI0Asymp(ax float64) float64 {
	t := besselSmallArgThreshold / ax
	p := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))
	return p / math.Sqrt(ax)
}

// KaiserBeta computes the Kaiser window β parameter from the desired
// sidelobe attenuation in decibels.
//
// Formula from Kaiser & Schafer:
//   - For att > 50 dB: β = 0.1102 * (att - 8.7)
//   - For 21 dB ≤ att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - For att < 21 dB: β = 0
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}

// KaiserAttenuation estimates the attenuation in dB reached by a Kaiser
// window with the given β. It inverts the high-attenuation branch of
// KaiserBeta.
func KaiserAttenuation(beta float64) float64 {
	if beta < kaiserBetaMinThreshold {
		return 0.0
	}
	return kaiserBetaHighOffset + beta/kaiserBetaHighCoeff1
}
