// Package simdops provides SIMD-accelerated helpers for moving spectra
// between split and interleaved layouts.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides the SIMD-accelerated float64 operations used by FFT plans.
type Ops struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)

	// Deinterleave2 splits src into its even (a) and odd (b) elements.
	Deinterleave2 func(a, b, src []float64)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	Interleave2:   f64.Interleave2,
	Deinterleave2: f64.Deinterleave2,
	Scale:         f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// SplitComplex writes the real and imaginary parts of spec into re and im,
// which must be at least len(spec) long.
func SplitComplex(re, im []float64, spec []complex128) {
	for k, c := range spec {
		re[k] = real(c)
		im[k] = imag(c)
	}
}

// JoinComplex builds spec from its real and imaginary parts.
func JoinComplex(spec []complex128, re, im []float64) {
	for k := range spec {
		spec[k] = complex(re[k], im[k])
	}
}
