package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaveRoundTrip(t *testing.T) {
	ops := Float64Ops()
	re := []float64{1, 2, 3}
	im := []float64{-1, -2, -3}

	dst := make([]float64, 6)
	ops.Interleave2(dst, re, im)
	assert.Equal(t, []float64{1, -1, 2, -2, 3, -3}, dst)

	gotRe := make([]float64, 3)
	gotIm := make([]float64, 3)
	ops.Deinterleave2(gotRe, gotIm, dst)
	assert.Equal(t, re, gotRe)
	assert.Equal(t, im, gotIm)
}

func TestDeinterleave2_LongVectors(t *testing.T) {
	const n = 67 // past any vector width, with a scalar tail
	src := make([]float64, 2*n)
	for i := range src {
		src[i] = float64(i)
	}
	a := make([]float64, n)
	b := make([]float64, n)
	Float64Ops().Deinterleave2(a, b, src)
	for i := range n {
		require.InDelta(t, float64(2*i), a[i], 0, "a[%d]", i)
		require.InDelta(t, float64(2*i+1), b[i], 0, "b[%d]", i)
	}
}

func TestScale(t *testing.T) {
	dst := make([]float64, 4)
	Float64Ops().Scale(dst, []float64{1, 2, 3, 4}, 0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, dst)
}

func TestSplitJoinComplex(t *testing.T) {
	spec := []complex128{complex(1, 2), complex(-3, 0.5)}
	re := make([]float64, 2)
	im := make([]float64, 2)
	SplitComplex(re, im, spec)
	assert.Equal(t, []float64{1, -3}, re)
	assert.Equal(t, []float64{2, 0.5}, im)

	out := make([]complex128, 2)
	JoinComplex(out, re, im)
	assert.Equal(t, spec, out)
}

func BenchmarkScale(b *testing.B) {
	ops := Float64Ops()
	a := make([]float64, 256)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(a, a, 1.0001)
	}
}
