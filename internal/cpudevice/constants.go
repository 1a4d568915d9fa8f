package cpudevice

// BackendName is the registry name of the CPU backend.
const BackendName = "cpu"

const (
	deviceName    = "Host CPU"
	deviceVendor  = "go-gpu-rfft"
	driverVersion = "1.0"

	// defaultWarpSize matches the warp width of common NVIDIA hardware so
	// that layouts planned for the CPU device carry over unchanged.
	defaultWarpSize = 32

	defaultMaxWorkGroupSize = 1024

	// queueDepth is the number of commands that can be pending before
	// Enqueue blocks.
	queueDepth = 64

	// extFP64 is the double precision extension every host supports.
	extFP64 = "cl_khr_fp64"
)
