package rfft

import (
	"fmt"
	"log"
)

// Config holds pipeline configuration.
type Config struct {
	// SignalLen is the number of real samples (N). Zero takes the length
	// of the input passed to Run.
	SignalLen int

	// WarpSize is the work-group size used for the scaling kernel. Zero
	// uses the warp size reported by the device.
	WarpSize int

	// ApplyInverse runs the backward transform after the scaling kernel,
	// returning time-domain data instead of the scaled spectrum.
	ApplyInverse bool

	// Backend names the registered compute backend. Empty selects
	// DefaultBackend.
	Backend string

	// DeviceIndex selects the device of the backend.
	DeviceIndex int

	// FFTEngine names the FFT engine. Empty selects the fftplan default.
	FFTEngine string

	// Logger receives stage progress. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the default configuration:
// 128 samples, warp size 32, CPU backend, no inverse transform.
func DefaultConfig() *Config {
	return &Config{
		SignalLen: DefaultSignalLen,
		WarpSize:  DefaultWarpSize,
		Backend:   DefaultBackend,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SignalLen <= 0 {
		return fmt.Errorf("%w: signal length must be positive, got %d", ErrInvalidConfig, c.SignalLen)
	}
	if c.WarpSize < 0 {
		return fmt.Errorf("%w: warp size must not be negative, got %d", ErrInvalidConfig, c.WarpSize)
	}
	if c.DeviceIndex < 0 {
		return fmt.Errorf("%w: device index must not be negative, got %d", ErrInvalidConfig, c.DeviceIndex)
	}
	return nil
}

func (c *Config) backendName() string {
	if c.Backend == "" {
		return DefaultBackend
	}
	return c.Backend
}
