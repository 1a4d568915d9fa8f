package fftplan

// Direction selects the transform direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Precision is the floating point precision of a plan.
type Precision int

const (
	PrecisionDouble Precision = iota
	PrecisionSingle
)

// Layout describes how data is arranged in a buffer.
type Layout int

const (
	// LayoutReal is a sequence of N real values.
	LayoutReal Layout = iota
	// LayoutHermitianInterleaved is N/2+1 complex values stored as
	// alternating real and imaginary parts.
	LayoutHermitianInterleaved
)

func (l Layout) String() string {
	switch l {
	case LayoutReal:
		return "real"
	case LayoutHermitianInterleaved:
		return "hermitian-interleaved"
	default:
		return "unknown"
	}
}

// Placement selects where results are written.
type Placement int

const (
	InPlace Placement = iota
	OutOfPlace
)

// Options configures a plan.
type Options struct {
	Precision    Precision
	InputLayout  Layout
	OutputLayout Layout
	Placement    Placement

	// Engine names the transform engine. Empty selects DefaultEngine.
	Engine string

	// BackwardScale multiplies backward results. Zero selects 1/N.
	BackwardScale float64
}

// ForwardOptions returns the options of an in-place double precision
// real-to-Hermitian plan.
func ForwardOptions() Options {
	return Options{
		Precision:    PrecisionDouble,
		InputLayout:  LayoutReal,
		OutputLayout: LayoutHermitianInterleaved,
		Placement:    InPlace,
	}
}

// BackwardOptions returns the options of an in-place double precision
// Hermitian-to-real plan.
func BackwardOptions() Options {
	return Options{
		Precision:    PrecisionDouble,
		InputLayout:  LayoutHermitianInterleaved,
		OutputLayout: LayoutReal,
		Placement:    InPlace,
	}
}

// SpectrumLen returns the number of complex values of a real transform of
// length n.
func SpectrumLen(n int) int {
	return n/hermitianDivisor + 1
}

// RequiredLen returns the minimum in-place buffer length for length n.
func RequiredLen(n int) int {
	return 2 * SpectrumLen(n)
}

const hermitianDivisor = 2
