package rfft

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-gpu-rfft/internal/compute"
	"github.com/tphakala/go-gpu-rfft/internal/cpudevice"
	"github.com/tphakala/go-gpu-rfft/internal/kernels"
	"github.com/tphakala/go-gpu-rfft/internal/testutil"
)

// scaledSpectrum returns the interleaved spectrum of x after the mult
// kernel: real parts doubled, imaginary parts quadrupled.
func scaledSpectrum(x []float64) []float64 {
	spec := testutil.Interleave(testutil.NaiveRealDFT(x))
	for k := 0; k < len(spec); k += 2 {
		spec[k] *= 2
		spec[k+1] *= 4
	}
	return spec
}

func TestRun_DefaultConfigReproducesReference(t *testing.T) {
	input := testutil.Ramp(DefaultSignalLen)

	res, err := Run(context.Background(), nil, input)
	require.NoError(t, err)

	want, err := ComputeLayout(128, 32)
	require.NoError(t, err)
	assert.Equal(t, want, res.Layout)
	require.Len(t, res.Data, 192)
	assert.Equal(t, DefaultBackend, res.Backend)
	assert.Equal(t, "gonum", res.Engine)
	assert.False(t, res.Inverse)

	expected := scaledSpectrum(input)
	testutil.AssertNoNaNOrInf(t, res.Data)
	testutil.AssertSliceInDelta(t, expected[:128], res.Output(), testutil.SpectrumTolerance)
	testutil.AssertSliceInDelta(t, expected, res.Data[:130], testutil.SpectrumTolerance)
	testutil.AssertAllZero(t, res.Data[130:], "padding must stay zero")

	spec := res.Spectrum()
	require.Len(t, spec, 65)
	assert.InDelta(t, 2*8128.0, real(spec[0]), testutil.SpectrumTolerance, "DC is twice the ramp sum")
}

func TestRun_InverseReturnsTimeDomain(t *testing.T) {
	const n = 128
	input := testutil.Ramp(n)

	for _, engine := range FFTEngines() {
		t.Run(engine, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ApplyInverse = true
			cfg.FFTEngine = engine

			res, err := Run(context.Background(), cfg, input)
			require.NoError(t, err)
			assert.True(t, res.Inverse)
			assert.Equal(t, engine, res.Engine)

			// Scaling by (2, 4i) equals 3X - conj(X); conj(X) is the spectrum
			// of x reversed, so y[i] = 3x[i] - x[(n-i) mod n].
			want := make([]float64, n)
			for i := range want {
				want[i] = 3*input[i] - input[(n-i)%n]
			}
			testutil.AssertSliceInDelta(t, want, res.Output(), 1e-9)
		})
	}
}

func TestRun_EnginesAgree(t *testing.T) {
	input := testutil.Ramp(100)
	cfg := &Config{WarpSize: 16}

	var outputs [][]float64
	for _, engine := range FFTEngines() {
		cfg.FFTEngine = engine
		res, err := Run(context.Background(), cfg, input)
		require.NoError(t, err, engine)
		assert.Equal(t, 100, res.Layout.SignalLen, "zero SignalLen takes the input length")
		outputs = append(outputs, res.Data)
	}
	require.Len(t, outputs, 2)
	testutil.AssertSliceInDelta(t, outputs[0], outputs[1], testutil.SpectrumTolerance)
}

func TestRun_ShortInputIsZeroPadded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SignalLen = 30

	res, err := Run(context.Background(), cfg, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 64, res.Layout.PaddedLen)

	// An impulse has a flat spectrum of ones.
	for k := range res.Layout.SpectrumLen() {
		assert.InDelta(t, 2.0, res.Data[2*k], testutil.DefaultTolerance, "bin %d real", k)
		assert.InDelta(t, 0.0, res.Data[2*k+1], testutil.DefaultTolerance, "bin %d imag", k)
	}
}

func TestRun_WarpSizeFromDevice(t *testing.T) {
	compute.Register("cpu-wide", cpudevice.New(kernels.Natives(), cpudevice.WithWarpSize(64)))
	t.Cleanup(func() { compute.Register("cpu-wide", nil) })

	cfg := &Config{SignalLen: 128, Backend: "cpu-wide"}
	res, err := Run(context.Background(), cfg, testutil.Ramp(128))
	require.NoError(t, err)
	assert.Equal(t, 64, res.Layout.LocalWorkItems)
	assert.Equal(t, 128, res.Layout.GlobalWorkItems)
	assert.Equal(t, "cpu", res.Backend)
}

func TestRun_StageErrors(t *testing.T) {
	compute.Register("cpu-nokernels", cpudevice.New(nil))
	compute.Register("cpu-tiny", cpudevice.New(kernels.Natives(), cpudevice.WithMaxWorkGroupSize(16)))
	t.Cleanup(func() {
		compute.Register("cpu-nokernels", nil)
		compute.Register("cpu-tiny", nil)
	})

	tests := []struct {
		name      string
		cfg       *Config
		wantStage Stage
		wantErr   error
	}{
		{
			name:      "unknown_backend",
			cfg:       &Config{SignalLen: 128, Backend: "cuda"},
			wantStage: StageSetup,
			wantErr:   compute.ErrNoBackend,
		},
		{
			name:      "bad_device",
			cfg:       &Config{SignalLen: 128, DeviceIndex: 3},
			wantStage: StageSetup,
			wantErr:   compute.ErrNoDevice,
		},
		{
			name:      "build_failure",
			cfg:       &Config{SignalLen: 128, Backend: "cpu-nokernels"},
			wantStage: StageBuild,
			wantErr:   compute.ErrBuildProgramFailure,
		},
		{
			name:      "work_group_too_large",
			cfg:       &Config{SignalLen: 128, WarpSize: 32, Backend: "cpu-tiny"},
			wantStage: StageKernel,
			wantErr:   compute.ErrInvalidWorkGroupSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(context.Background(), tt.cfg, testutil.Ramp(128))
			require.Error(t, err)
			assert.Nil(t, res)

			var se *StageError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantStage, se.Stage, "failed stage")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_BuildFailureIsLogged(t *testing.T) {
	compute.Register("cpu-nokernels-log", cpudevice.New(nil))
	t.Cleanup(func() { compute.Register("cpu-nokernels-log", nil) })

	var logBuf bytes.Buffer
	cfg := &Config{SignalLen: 8, Backend: "cpu-nokernels-log", Logger: log.New(&logBuf, "", 0)}
	_, err := Run(context.Background(), cfg, nil)
	require.ErrorIs(t, err, compute.ErrBuildProgramFailure)
	assert.Contains(t, logBuf.String(), "building program failed")
	assert.Contains(t, logBuf.String(), `kernel "mult" has no implementation`)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), &Config{}, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(context.Background(), &Config{SignalLen: 4, WarpSize: -1}, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(context.Background(), &Config{SignalLen: 4, DeviceIndex: -1}, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(context.Background(), &Config{SignalLen: 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultConfig(), testutil.Ramp(128))
	require.ErrorIs(t, err, context.Canceled)

	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageSetup, se.Stage)
}

func TestRun_VerboseLoggingAndTimings(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ApplyInverse = true
	cfg.Logger = log.New(&logBuf, "", 0)

	res, err := Run(context.Background(), cfg, testutil.Ramp(128))
	require.NoError(t, err)

	var stages []Stage
	for _, st := range res.Timings {
		stages = append(stages, st.Stage)
	}
	assert.Equal(t, []Stage{
		StageSetup, StageSetup, StageBuild, StageBuild, StageAllocate, StageUpload,
		StagePlan, StagePlan, StageForward, StageKernel, StageInverse, StageDownload,
	}, stages)
	assert.Contains(t, logBuf.String(), "N=128 padded=192")
	assert.Contains(t, logBuf.String(), "kernel: done")
	assert.Contains(t, logBuf.String(), "warp 32, max work-group 1024")
	assert.Contains(t, logBuf.String(), "cl_khr_fp64")
	assert.Contains(t, logBuf.String(), "simd ")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "forward", StageForward.String())
	assert.Equal(t, "release", StageRelease.String())
	assert.Equal(t, "unknown", Stage(99).String())

	err := &StageError{Stage: StageKernel, Err: compute.ErrInvalidKernel}
	assert.Equal(t, "rfft: kernel stage failed: compute: invalid kernel", err.Error())
}

func BenchmarkRun(b *testing.B) {
	input := testutil.Ramp(4096)
	cfg := &Config{SignalLen: 4096, WarpSize: 32}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(ctx, cfg, input); err != nil {
			b.Fatal(err)
		}
	}
}
