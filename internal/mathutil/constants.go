package mathutil

// Bessel function approximation constants.
// Polynomial coefficients from Abramowitz & Stegun, "Handbook of
// Mathematical Functions", 9.8.1 and 9.8.2.
const (
	// besselSmallArgThreshold switches between the polynomial and the
	// asymptotic approximation.
	besselSmallArgThreshold = 3.75
)

// Coefficients for I₀(x), |x| < 3.75
const (
	besselI0Coeff1 = 3.5156229
	besselI0Coeff2 = 3.0899424
	besselI0Coeff3 = 1.2067492
	besselI0Coeff4 = 0.2659732
	besselI0Coeff5 = 0.360768e-1
	besselI0Coeff6 = 0.45813e-2
)

// Coefficients for exp(-x)·√x·I₀(x), x ≥ 3.75
const (
	besselI0AsympCoeff0 = 0.39894228
	besselI0AsympCoeff1 = 0.1328592e-1
	besselI0AsympCoeff2 = 0.225319e-2
	besselI0AsympCoeff3 = -0.157565e-2
	besselI0AsympCoeff4 = 0.916281e-2
	besselI0AsympCoeff5 = -0.2057706e-1
	besselI0AsympCoeff6 = 0.2635537e-1
	besselI0AsympCoeff7 = -0.1647633e-1
	besselI0AsympCoeff8 = 0.392377e-2
)

// Kaiser window formula constants (Kaiser & Schafer).
const (
	kaiserAttHigh   = 50.0 // dB, above this β grows linearly
	kaiserAttMedium = 21.0 // dB, below this the window is rectangular

	kaiserBetaHighCoeff1 = 0.1102
	kaiserBetaHighOffset = 8.7

	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886

	kaiserBetaMinThreshold = 0.1 // below this no attenuation is reported
)
