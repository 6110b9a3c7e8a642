package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero.
//
// Uses Chebyshev polynomial approximations:
//   - |x| < 3.75: series in (x/3.75)²
//   - otherwise: asymptotic expansion scaled by eˣ/√x
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions".
func BesselI0(x float64) float64 {
	ax := math.Abs(x)

	if ax < besselSmallArgThreshold {
		t := x / besselSmallArgThreshold
		t *= t
		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	t := besselSmallArgThreshold / ax
	p := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))
	return math.Exp(ax) * p / math.Sqrt(ax)
}

// KaiserBeta returns the Kaiser window β giving roughly the requested
// sidelobe attenuation in dB.
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	default:
		return 0
	}
}

// KaiserWindow returns a symmetric Kaiser window of the given length with a
// peak of 1 at the center:
//
//	w[n] = I₀(β·√(1 - ((n-α)/α)²)) / I₀(β),  α = (N-1)/2
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	alpha := float64(length-1) / halfDivisor
	i0Beta := BesselI0(beta)
	for n := range window {
		x := (float64(n) - alpha) / alpha
		window[n] = BesselI0(beta*math.Sqrt(1.0-x*x)) / i0Beta
	}
	return window
}
