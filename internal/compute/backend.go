// Package compute defines the contract between the host pipeline and a
// compute device. The shape follows OpenCL: a backend exposes devices, a
// context owns buffers and programs, and work is submitted to an in-order
// queue that is synchronized explicitly with Finish.
package compute

import "context"

// Backend is implemented by compute backends (CPU emulation, OpenCL, ...).
// It is responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific context tied to one device.
type Context interface {
	ID() string
	Device() DeviceInfo
	// NewQueue creates an in-order command queue.
	NewQueue() (Queue, error)
	// BuildProgram compiles program source text for the context's device.
	// A failed build returns a *BuildError carrying the build log.
	BuildProgram(source string) (Program, error)
	// NewBuffer allocates a device buffer of elemCount float64 values.
	NewBuffer(elemCount int) (Buffer, error)
	Close() error
}

// Queue is an in-order command queue. Enqueue methods only submit work;
// failures of submitted commands are reported by the next Finish.
type Queue interface {
	// WriteBuffer copies src into buf starting at element 0. When blocking
	// is set the call returns after the copy completed.
	WriteBuffer(buf Buffer, blocking bool, src []float64) error
	// ReadBuffer copies buf into dst starting at element 0.
	ReadBuffer(buf Buffer, blocking bool, dst []float64) error
	// EnqueueKernel dispatches kernel over a 1-D range of globalSize work
	// items split into work-groups of localSize.
	EnqueueKernel(kernel Kernel, globalSize, localSize int) error
	// EnqueueNative submits a host function executed in queue order.
	EnqueueNative(name string, fn func() error) error
	// Finish blocks until every previously submitted command completed and
	// returns the first command error since the previous Finish.
	Finish(ctx context.Context) error
	Close() error
}

// Program is a built program holding one or more kernels.
type Program interface {
	BuildLog() string
	KernelNames() []string
	NewKernel(name string) (Kernel, error)
	Close() error
}

// Kernel is a kernel instance with its own argument bindings.
type Kernel interface {
	Name() string
	NumArgs() int
	SetArg(index int, buf Buffer) error
	Close() error
}

// Buffer is a device buffer of float64 values.
type Buffer interface {
	Len() int
	Bytes() int
	Close() error
}

// HostMapped is implemented by buffers whose storage is addressable from
// the host. Native queue tasks use it to operate on device data in place.
type HostMapped interface {
	HostView() []float64
}
