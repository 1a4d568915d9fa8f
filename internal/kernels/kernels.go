// Package kernels holds the device kernels used by the spectral pipeline:
// their OpenCL C source text and the native implementations executed by
// host-emulated devices.
package kernels

import "github.com/tphakala/go-gpu-rfft/internal/compute"

// MultName is the name of the spectral scaling kernel.
const MultName = "mult"

// Spectral scaling factors applied by the mult kernel.
const (
	RealFactor = 2.0
	ImagFactor = 4.0
)

// Source is the program source for all kernels. One work item handles one
// complex number of the Hermitian-interleaved spectrum.
const Source = `#pragma OPENCL EXTENSION cl_khr_fp64 : enable
__kernel void mult(__global double *v) {
    int id, v_re, v_im;
    id   = get_global_id(0);
    v_re = 2*id;
    v_im = v_re + 1;

    v[v_re] = 2*v[v_re];
    v[v_im] = 4*v[v_im];
}
`

// Mult scales the complex value owned by a work item: the real part at
// index 2*id by RealFactor and the imaginary part at 2*id+1 by ImagFactor.
// It touches no other element.
func Mult(wi compute.WorkItem, args compute.KernelArgs) {
	v := args.Float64s(0)
	re := 2 * wi.GlobalID
	im := re + 1
	v[re] *= RealFactor
	v[im] *= ImagFactor
}

// Natives returns the native implementations of every kernel in Source.
func Natives() map[string]compute.NativeKernel {
	return map[string]compute.NativeKernel{
		MultName: {Fn: Mult, NumArgs: 1},
	}
}
