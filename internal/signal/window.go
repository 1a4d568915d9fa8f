package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-gpu-rfft/internal/mathutil"
	"gonum.org/v1/gonum/dsp/window"
)

// ErrUnknownWindow is returned for unsupported window names.
var ErrUnknownWindow = errors.New("signal: unknown window")

// Window names accepted by ApplyWindow.
const (
	WindowNone     = "none"
	WindowHann     = "hann"
	WindowHamming  = "hamming"
	WindowBlackman = "blackman"
	WindowKaiser   = "kaiser"
)

// DefaultKaiserBeta gives roughly 60 dB of sidelobe suppression.
const DefaultKaiserBeta = 6.0

// ApplyWindow multiplies x in place by the named window. beta is used only
// by the Kaiser window and must be finite and non-negative. An empty name
// is the same as WindowNone.
func ApplyWindow(x []float64, name string, beta float64) error {
	switch name {
	case "", WindowNone:
	case WindowHann:
		window.Hann(x)
	case WindowHamming:
		window.Hamming(x)
	case WindowBlackman:
		window.Blackman(x)
	case WindowKaiser:
		if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
			return fmt.Errorf("%w: kaiser beta must be finite and non-negative, got %g", ErrUnknownWindow, beta)
		}
		for i, w := range Kaiser(len(x), beta) {
			x[i] *= w
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
	return nil
}

// Kaiser returns a symmetric Kaiser window of length n:
//
//	w[i] = I₀(β·√(1 - r²)) / I₀(β),  r = (i - α)/α,  α = (n-1)/2
//
// The ratio is evaluated on exponentially scaled Bessel values so that it
// stays finite for any finite β.
func Kaiser(n int, beta float64) []float64 {
	if n < 1 {
		return []float64{}
	}
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	alpha := float64(n-1) / 2
	i0Beta := mathutil.BesselI0Scaled(beta)
	for i := range w {
		r := (float64(i) - alpha) / alpha
		arg := beta * math.Sqrt(1-r*r)
		w[i] = mathutil.BesselI0Scaled(arg) / i0Beta * math.Exp(arg-beta)
	}
	return w
}
