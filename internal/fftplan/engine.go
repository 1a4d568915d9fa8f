package fftplan

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// DefaultEngine is used when Options.Engine is empty.
const DefaultEngine = "gonum"

// engine computes unnormalized real transforms of a fixed length n.
type engine interface {
	// forward writes the n/2+1 spectrum of src (len n) into dst.
	forward(dst []complex128, src []float64) []complex128
	// backward writes the n-point real sequence of the half spectrum src
	// into dst, without 1/n scaling.
	backward(dst []float64, src []complex128) []float64
}

type engineFactory func(n int) engine

var (
	enginesMu sync.RWMutex
	engines   = map[string]engineFactory{
		"gonum": newGonumEngine,
		"godsp": newGoDSPEngine,
	}
)

// Engines returns the sorted names of available engines.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEngine(name string) (engineFactory, error) {
	if name == "" {
		name = DefaultEngine
	}
	enginesMu.RLock()
	f, ok := engines[name]
	enginesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return f, nil
}

// gonumEngine uses gonum's real FFT, which produces the half spectrum
// directly.
type gonumEngine struct {
	fft *fourier.FFT
}

func newGonumEngine(n int) engine {
	return &gonumEngine{fft: fourier.NewFFT(n)}
}

func (e *gonumEngine) forward(dst []complex128, src []float64) []complex128 {
	return e.fft.Coefficients(dst, src)
}

func (e *gonumEngine) backward(dst []float64, src []complex128) []float64 {
	return e.fft.Sequence(dst, src)
}

// goDSPEngine uses go-dsp's complex FFT. The backward direction rebuilds
// the full spectrum from Hermitian symmetry.
type goDSPEngine struct {
	n    int
	full []complex128
}

func newGoDSPEngine(n int) engine {
	return &goDSPEngine{n: n, full: make([]complex128, n)}
}

func (e *goDSPEngine) forward(dst []complex128, src []float64) []complex128 {
	spec := fft.FFTReal(src)
	return append(dst[:0], spec[:SpectrumLen(e.n)]...)
}

func (e *goDSPEngine) backward(dst []float64, src []complex128) []float64 {
	n := e.n
	half := SpectrumLen(n)
	copy(e.full, src[:half])
	for k := half; k < n; k++ {
		c := src[n-k]
		e.full[k] = complex(real(c), -imag(c))
	}

	// go-dsp normalizes its inverse by 1/n; undo it to match gonum.
	seq := fft.IFFT(e.full)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	scale := float64(n)
	for i, c := range seq {
		dst[i] = real(c) * scale
	}
	return dst
}
