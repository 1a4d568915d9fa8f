package rfft

import (
	"errors"
	"fmt"
)

// Common errors returned by the planner and the pipeline.
var (
	// ErrInvalidLength indicates a non-positive signal length.
	ErrInvalidLength = errors.New("rfft: invalid length")

	// ErrInvalidWarpSize indicates a non-positive warp size.
	ErrInvalidWarpSize = errors.New("rfft: invalid warp size")

	// ErrInvalidMultiple indicates a non-positive rounding multiple.
	ErrInvalidMultiple = errors.New("rfft: multiple must be positive")

	// ErrOverflow indicates a layout that does not fit the integer range.
	ErrOverflow = errors.New("rfft: layout overflows")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("rfft: invalid configuration")
)

// StageError reports the pipeline stage at which a run failed. Stages after
// the failed one are not executed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("rfft: %s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
