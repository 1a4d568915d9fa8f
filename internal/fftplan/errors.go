package fftplan

import "errors"

var (
	// ErrInvalidLength is returned for transform lengths below 1.
	ErrInvalidLength = errors.New("fftplan: invalid length")

	// ErrUnknownEngine is returned when no engine is registered under a name.
	ErrUnknownEngine = errors.New("fftplan: unknown engine")

	// ErrNotImplemented is returned for precision, layout or placement
	// combinations no engine supports.
	ErrNotImplemented = errors.New("fftplan: not implemented")

	// ErrInvalidLayout is returned for layout pairs that do not describe a
	// real transform.
	ErrInvalidLayout = errors.New("fftplan: invalid layout")

	// ErrDirectionMismatch is returned when a transform is enqueued in the
	// direction the plan's layouts do not describe.
	ErrDirectionMismatch = errors.New("fftplan: direction does not match plan layout")

	// ErrBufferTooSmall is returned when a buffer cannot hold the in-place
	// transform.
	ErrBufferTooSmall = errors.New("fftplan: buffer too small for in-place transform")

	// ErrUnsupportedBuffer is returned for buffers that are not host mapped.
	ErrUnsupportedBuffer = errors.New("fftplan: buffer is not host mapped")

	// ErrPlanClosed is returned when a closed plan is used.
	ErrPlanClosed = errors.New("fftplan: plan closed")
)
