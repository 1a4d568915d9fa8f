package kernels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-gpu-rfft/internal/compute"
	"github.com/tphakala/go-gpu-rfft/internal/cpudevice"
)

type sliceArgs [][]float64

func (a sliceArgs) Float64s(i int) []float64 { return a[i] }

func TestMult_ScalesOnlyOwnPair(t *testing.T) {
	v := []float64{1, 1, 3, 5, 7, 11}
	Mult(compute.WorkItem{GlobalID: 1}, sliceArgs{v})
	assert.Equal(t, []float64{1, 1, 6, 20, 7, 11}, v)
}

func TestMult_OnCPUDevice(t *testing.T) {
	const (
		global = 96
		local  = 32
		n      = 2 * global
	)

	b := cpudevice.New(Natives())
	ctx, err := b.NewContext(0)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	queue, err := ctx.NewQueue()
	require.NoError(t, err)
	defer func() { _ = queue.Close() }()

	prog, err := ctx.BuildProgram(Source)
	require.NoError(t, err)
	defer func() { _ = prog.Close() }()

	k, err := prog.NewKernel(MultName)
	require.NoError(t, err)
	defer func() { _ = k.Close() }()

	buf, err := ctx.NewBuffer(n)
	require.NoError(t, err)
	defer func() { _ = buf.Close() }()

	in := make([]float64, n)
	for i := range in {
		in[i] = float64(i) - 50
	}
	require.NoError(t, queue.WriteBuffer(buf, true, in))
	require.NoError(t, k.SetArg(0, buf))
	require.NoError(t, queue.EnqueueKernel(k, global, local))
	require.NoError(t, queue.Finish(context.Background()))

	out := make([]float64, n)
	require.NoError(t, queue.ReadBuffer(buf, true, out))

	for i := range global {
		assert.InDelta(t, RealFactor*in[2*i], out[2*i], 0, "real part of item %d", i)
		assert.InDelta(t, ImagFactor*in[2*i+1], out[2*i+1], 0, "imaginary part of item %d", i)
	}
}
