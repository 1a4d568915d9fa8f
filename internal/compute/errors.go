package compute

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBackend is returned when no backend is registered under a name.
	ErrNoBackend = errors.New("compute: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (no device, driver missing).
	ErrBackendUnavailable = errors.New("compute: backend unavailable")

	// ErrNoDevice is returned for an out-of-range device index.
	ErrNoDevice = errors.New("compute: device not found")

	// ErrBuildProgramFailure is returned when program source fails to build.
	ErrBuildProgramFailure = errors.New("compute: build program failure")

	// ErrInvalidKernel is returned for unknown kernel names.
	ErrInvalidKernel = errors.New("compute: invalid kernel")

	// ErrInvalidKernelArgs is returned when a kernel is dispatched with
	// missing or invalid argument bindings.
	ErrInvalidKernelArgs = errors.New("compute: invalid kernel args")

	// ErrInvalidWorkGroupSize is returned when the global size is not a
	// multiple of the local size or exceeds device limits.
	ErrInvalidWorkGroupSize = errors.New("compute: invalid work group size")

	// ErrInvalidBufferSize is returned for non-positive buffer sizes.
	ErrInvalidBufferSize = errors.New("compute: invalid buffer size")

	// ErrOutOfRange is returned when a transfer exceeds buffer bounds.
	ErrOutOfRange = errors.New("compute: transfer out of range")

	// ErrReleased is returned when a released object is used.
	ErrReleased = errors.New("compute: object released")

	// ErrForeignObject is returned when an object from another backend or
	// context is passed in.
	ErrForeignObject = errors.New("compute: object belongs to another context")
)

// BuildError reports a failed program build together with the device build
// log.
type BuildError struct {
	Device string
	Log    string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("compute: building program for %s failed:\n%s", e.Device, e.Log)
}

func (e *BuildError) Unwrap() error {
	return ErrBuildProgramFailure
}
