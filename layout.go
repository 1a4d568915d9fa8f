package rfft

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Layout is the buffer and dispatch plan for an in-place real-to-Hermitian
// transform of SignalLen samples followed by a per-complex-value kernel.
//
// The transform needs SignalLen+2 elements to store SignalLen/2+1 complex
// values. One work item handles one complex value (elements 2*id and
// 2*id+1), and the number of work items is rounded up to a whole number of
// warps so no work-group is partially filled. The kernel also runs over
// the zero padding.
type Layout struct {
	// SignalLen is the number of real input samples (N).
	SignalLen int

	// ComplexSlots is (N+2)/2, the complex values needed before padding.
	ComplexSlots int

	// PaddedLen is the buffer length in float64 elements. It is even,
	// at least N+2, and PaddedLen/2 is a multiple of LocalWorkItems.
	PaddedLen int

	// GlobalWorkItems is PaddedLen/2, one work item per complex value.
	GlobalWorkItems int

	// LocalWorkItems is the work-group size, equal to the warp size.
	LocalWorkItems int
}

// RoundUpToMultiple returns the smallest multiple of n that is >= x.
func RoundUpToMultiple[T constraints.Integer](x, n T) (T, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMultiple, n)
	}
	if x < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLength, x)
	}
	rem := x % n
	if rem == 0 {
		return x, nil
	}
	r := x + (n - rem)
	if r < x {
		return 0, fmt.Errorf("%w: rounding %v up to a multiple of %v", ErrOverflow, x, n)
	}
	return r, nil
}

// ComputeLayout plans the padded buffer and dispatch geometry for a real
// signal of n samples on a device with the given warp size.
func ComputeLayout(n, warpSize int) (Layout, error) {
	if n <= 0 {
		return Layout{}, fmt.Errorf("%w: signal length %d", ErrInvalidLength, n)
	}
	if warpSize <= 0 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidWarpSize, warpSize)
	}

	complexSlots := n/2 + 1 // (n+2)/2 without overflowing at math.MaxInt
	padded, err := RoundUpToMultiple(complexSlots, warpSize)
	if err != nil {
		return Layout{}, err
	}
	if padded > maxComplexSlots {
		return Layout{}, fmt.Errorf("%w: signal length %d", ErrOverflow, n)
	}

	return Layout{
		SignalLen:       n,
		ComplexSlots:    complexSlots,
		PaddedLen:       2 * padded,
		GlobalWorkItems: padded,
		LocalWorkItems:  warpSize,
	}, nil
}

// SpectrumLen returns N/2+1, the number of meaningful Hermitian bins.
func (l Layout) SpectrumLen() int {
	return l.SignalLen/2 + 1
}

// Bytes returns the buffer size in bytes.
func (l Layout) Bytes() int {
	return l.PaddedLen * bytesPerFloat64
}

// WorkGroups returns the number of work-groups of a dispatch.
func (l Layout) WorkGroups() int {
	if l.LocalWorkItems == 0 {
		return 0
	}
	return l.GlobalWorkItems / l.LocalWorkItems
}

// PaddingLen returns the number of elements past the signal.
func (l Layout) PaddingLen() int {
	return l.PaddedLen - l.SignalLen
}

func (l Layout) String() string {
	return fmt.Sprintf("N=%d padded=%d (%d bytes) global=%d local=%d groups=%d",
		l.SignalLen, l.PaddedLen, l.Bytes(), l.GlobalWorkItems, l.LocalWorkItems, l.WorkGroups())
}
