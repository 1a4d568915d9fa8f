package rfft

// Stage identifies one step of the pipeline.
type Stage int

const (
	// StageSetup resolves the backend and creates the context and queue.
	StageSetup Stage = iota

	// StageBuild builds the kernel program and creates the scaling kernel.
	StageBuild

	// StageAllocate allocates the padded device buffer.
	StageAllocate

	// StageUpload copies the signal host to device.
	StageUpload

	// StagePlan creates and bakes the FFT plans.
	StagePlan

	// StageForward runs the forward real-to-Hermitian transform.
	StageForward

	// StageKernel dispatches the scaling kernel.
	StageKernel

	// StageInverse runs the optional backward transform.
	StageInverse

	// StageDownload copies the buffer device to host.
	StageDownload

	// StageRelease releases device resources.
	StageRelease
)

// String returns the human-readable name of the stage.
func (s Stage) String() string {
	switch s {
	case StageSetup:
		return "setup"
	case StageBuild:
		return "build"
	case StageAllocate:
		return "allocate"
	case StageUpload:
		return "upload"
	case StagePlan:
		return "plan"
	case StageForward:
		return "forward"
	case StageKernel:
		return "kernel"
	case StageInverse:
		return "inverse"
	case StageDownload:
		return "download"
	case StageRelease:
		return "release"
	default:
		return "unknown"
	}
}
