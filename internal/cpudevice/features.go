package cpudevice

import (
	"runtime"

	simdcpu "github.com/tphakala/simd/cpu"
	"golang.org/x/sys/cpu"
)

// hostExtensions lists the extensions advertised by the CPU device. Double
// precision is always present; SIMD features are reported for diagnostics.
func hostExtensions() []string {
	exts := []string{extFP64}
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE41 {
			exts = append(exts, "sse4.1")
		}
		if cpu.X86.HasAVX2 {
			exts = append(exts, "avx2")
		}
		if cpu.X86.HasFMA {
			exts = append(exts, "fma")
		}
		if cpu.X86.HasAVX512F {
			exts = append(exts, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			exts = append(exts, "neon")
		}
		if cpu.ARM64.HasSVE {
			exts = append(exts, "sve")
		}
	}
	return exts
}

func simdInfo() string {
	return simdcpu.Info()
}
