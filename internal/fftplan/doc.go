// Package fftplan provides 1-D real-to-Hermitian FFT plans that execute on
// compute queues.
//
// A plan is configured the way GPU FFT libraries configure theirs: length,
// precision, input/output layout and result placement are fixed at creation,
// the plan is baked once, and transforms are enqueued against a device
// buffer. Forward plans take N real values and produce N/2+1 complex
// values stored interleaved (re, im, re, im, ...) in the same buffer, so an
// in-place buffer must hold at least 2*(N/2+1) elements. Backward plans
// reverse that and scale the result by 1/N unless configured otherwise.
//
// The transform math is delegated to an engine; "gonum" and "godsp" are
// available.
package fftplan
