//go:build opencl

package compute

// OpenCLBackend is a stub backend enabled with the "opencl" build tag.
// It does not bind to an OpenCL ICD loader yet.
type OpenCLBackend struct{}

func (b *OpenCLBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "opencl",
		Version:     "stub",
		Description: "OpenCL backend stub (no ICD binding)",
	}
}

func (b *OpenCLBackend) Available() bool {
	return false
}

func (b *OpenCLBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (b *OpenCLBackend) NewContext(_ int) (Context, error) {
	return nil, ErrBackendUnavailable
}

func init() {
	Register("opencl", &OpenCLBackend{})
}
