package rfft

import "math"

// Pipeline defaults.
const (
	DefaultSignalLen = 128
	DefaultWarpSize  = 32
	DefaultBackend   = "cpu"
)

// Buffer constants
const (
	bytesPerFloat64 = 8

	// maxComplexSlots keeps PaddedLen and Bytes within int range.
	maxComplexSlots = math.MaxInt / (2 * bytesPerFloat64)
)
