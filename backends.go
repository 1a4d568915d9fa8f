package rfft

import (
	"github.com/tphakala/go-gpu-rfft/internal/compute"
	"github.com/tphakala/go-gpu-rfft/internal/cpudevice"
	"github.com/tphakala/go-gpu-rfft/internal/fftplan"
	"github.com/tphakala/go-gpu-rfft/internal/kernels"
)

func init() {
	compute.Register(cpudevice.BackendName, cpudevice.New(kernels.Natives()))
}

// Backends returns the names of the registered compute backends.
func Backends() []string {
	return compute.Backends()
}

// FFTEngines returns the names of the available FFT engines.
func FFTEngines() []string {
	return fftplan.Engines()
}
