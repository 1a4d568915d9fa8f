// Package cpudevice implements an always-available compute backend that
// executes kernels on the host CPU.
//
// The device emulates the execution model of a GPU: a dispatch is split into
// work-groups of LocalSize work items, work-groups are spread over a bounded
// pool of goroutines, and commands run in submission order on a single
// queue goroutine. Kernels are supplied as native Go functions and matched
// by name against the __kernel declarations found in program source text.
package cpudevice

import (
	"fmt"
	"runtime"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

// Backend is the CPU compute backend.
type Backend struct {
	device  compute.DeviceInfo
	kernels map[string]compute.NativeKernel
	workers int
}

// Option configures a Backend.
type Option func(*Backend)

// WithWarpSize overrides the emulated warp width reported by the device.
func WithWarpSize(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.device.WarpSize = n
		}
	}
}

// WithWorkers bounds the number of goroutines executing work-groups.
func WithWorkers(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.workers = n
			b.device.ComputeUnits = n
		}
	}
}

// WithMaxWorkGroupSize overrides the largest accepted local size.
func WithMaxWorkGroupSize(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.device.MaxWorkGroupSize = n
		}
	}
}

// New returns a CPU backend that can build programs declaring any of the
// given native kernels.
func New(kernels map[string]compute.NativeKernel, opts ...Option) *Backend {
	workers := runtime.GOMAXPROCS(0)
	b := &Backend{
		device: compute.DeviceInfo{
			Name:             deviceName,
			Vendor:           deviceVendor,
			Driver:           driverVersion,
			Type:             compute.DeviceCPU,
			WarpSize:         defaultWarpSize,
			MaxWorkGroupSize: defaultMaxWorkGroupSize,
			ComputeUnits:     workers,
			Extensions:       hostExtensions(),
			SIMD:             simdInfo(),
		},
		kernels: make(map[string]compute.NativeKernel, len(kernels)),
		workers: workers,
	}
	for name, k := range kernels {
		b.kernels[name] = k
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Info() compute.BackendInfo {
	return compute.BackendInfo{
		Name:        BackendName,
		Version:     driverVersion,
		Description: "CPU-emulated compute device",
	}
}

func (b *Backend) Available() bool {
	return true
}

func (b *Backend) Devices() ([]compute.DeviceInfo, error) {
	return []compute.DeviceInfo{b.device}, nil
}

func (b *Backend) NewContext(deviceIndex int) (compute.Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("%w: cpu backend has 1 device, index %d requested",
			compute.ErrNoDevice, deviceIndex)
	}
	return newContext(b), nil
}
