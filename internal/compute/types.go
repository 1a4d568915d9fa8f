package compute

// BytesPerElement is the size of one buffer element (double precision).
const BytesPerElement = 8

// DeviceType classifies a device.
type DeviceType uint8

const (
	DeviceCPU DeviceType = iota
	DeviceGPU
	DeviceAccelerator
)

func (t DeviceType) String() string {
	switch t {
	case DeviceCPU:
		return "cpu"
	case DeviceGPU:
		return "gpu"
	case DeviceAccelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// DeviceInfo describes a compute device.
type DeviceInfo struct {
	Name   string
	Vendor string
	Driver string
	Type   DeviceType

	// WarpSize is the number of work items executed in lockstep
	// (warp/wavefront/SIMD width).
	WarpSize int

	// MaxWorkGroupSize bounds the local size of a dispatch.
	MaxWorkGroupSize int

	// ComputeUnits is the number of work-groups that can run concurrently.
	ComputeUnits int

	// Extensions lists supported extensions (e.g. "cl_khr_fp64").
	Extensions []string

	// SIMD describes host SIMD support for emulated devices.
	SIMD string
}

// HasExtension reports whether the device advertises ext.
func (d DeviceInfo) HasExtension(ext string) bool {
	for _, e := range d.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// WorkItem identifies one work item of a 1-D dispatch.
type WorkItem struct {
	GlobalID  int
	LocalID   int
	GroupID   int
	LocalSize int
}

// KernelArgs gives a native kernel access to its bound buffers.
type KernelArgs interface {
	Float64s(index int) []float64
}

// KernelFunc is the host implementation of a device kernel. It is invoked
// once per work item.
type KernelFunc func(wi WorkItem, args KernelArgs)

// NativeKernel pairs a kernel implementation with its argument count.
type NativeKernel struct {
	Fn      KernelFunc
	NumArgs int
}
