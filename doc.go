// Package rfft runs a real-to-complex FFT and a spectral scaling kernel on a
// GPU-style compute device.
//
// A run uploads N real samples into a device buffer, transforms them in
// place into the Hermitian-interleaved half spectrum, multiplies every real
// part by 2 and every imaginary part by 4 with the "mult" kernel, optionally
// transforms back to the time domain, and reads the buffer back.
//
// # Quick Start
//
//	input := make([]float64, 128)
//	for i := range input {
//	    input[i] = float64(i)
//	}
//	res, err := rfft.Run(ctx, rfft.DefaultConfig(), input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Output())
//
// # Buffer Layout
//
// The real FFT of N samples has N/2+1 complex bins. The device buffer holds
// that many bins rounded up to a multiple of the warp size, so the scaling
// kernel always runs complete work-groups:
//
//	complexSlots = N/2 + 1
//	padded       = roundUp(complexSlots, warp)
//	PaddedLen    = 2 * padded   (float64 elements)
//	global       = padded, local = warp
//
// For N=128 and warp 32 this gives 65 slots padded to 96, a 192 element
// (1536 byte) buffer and three work-groups of 32. [ComputeLayout] performs
// the arithmetic without touching a device. Padding past the spectrum stays
// zero through the kernel.
//
// # Backends
//
// Compute backends register by name. The "cpu" backend is always available
// and executes kernels on a goroutine pool that mirrors the work-group
// structure of a GPU dispatch. An "opencl" backend is compiled in with the
// opencl build tag.
//
// # Errors
//
// Each step of a run is a [Stage]. The first failing stage stops the run and
// is reported as a [*StageError]; resources acquired up to that point are
// released before Run returns.
package rfft
