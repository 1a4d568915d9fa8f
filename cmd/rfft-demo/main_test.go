package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rfft "github.com/tphakala/go-gpu-rfft"
	"github.com/tphakala/go-gpu-rfft/internal/signal"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func fields(t *testing.T, out string) []string {
	t.Helper()
	require.True(t, strings.HasPrefix(out, "[  "), "output %q", out)
	require.True(t, strings.HasSuffix(out, " ]\n"), "output %q", out)
	return strings.Fields(strings.TrimSuffix(strings.TrimPrefix(out, "[  "), " ]\n"))
}

func values(t *testing.T, out string) []float64 {
	t.Helper()
	var vals []float64
	for _, f := range fields(t, out) {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		vals = append(vals, v)
	}
	return vals
}

func TestRun_Defaults(t *testing.T) {
	stdout, stderr, err := runArgs(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	vals := fields(t, stdout)
	require.Len(t, vals, defaultSignalLen)
	assert.Equal(t, "16256.000000", vals[0], "DC bin is twice the ramp sum")
}

func TestRun_InverseOutputsTimeDomain(t *testing.T) {
	stdout, _, err := runArgs(t, "-n", "8", "-warp", "4", "-inverse", "-fft", "godsp")
	require.NoError(t, err)

	// y[i] = 3x[i] - x[(8-i) mod 8] for the ramp 0..7.
	vals := values(t, stdout)
	want := []float64{0, -4, 0, 4, 8, 12, 16, 20}
	require.Len(t, vals, len(want))
	for i := range want {
		assert.InDelta(t, want[i], vals[i], 1e-6, "sample %d", i)
	}
}

func TestRun_Verbose(t *testing.T) {
	_, stderr, err := runArgs(t, "-v", "-input", "sine")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rfft: ")
	assert.Contains(t, stderr, "N=128 padded=192")
}

func TestRun_Layout(t *testing.T) {
	stdout, _, err := runArgs(t, "-layout", "-n", "30")
	require.NoError(t, err)
	assert.Contains(t, stdout, "complex slots:   16\n")
	assert.Contains(t, stdout, "padded length:   64 (512 bytes)\n")
	assert.Contains(t, stdout, "global size:     32\n")

	_, _, err = runArgs(t, "-layout", "-n", "0")
	require.ErrorIs(t, err, rfft.ErrInvalidLength)
}

func TestRun_List(t *testing.T) {
	stdout, _, err := runArgs(t, "-list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  cpu (CPU-emulated compute device)\n")
	assert.Contains(t, stdout, "    [0] Host CPU, cpu\n")
	assert.Contains(t, stdout, "        warp size:       32\n")
	assert.Contains(t, stdout, "        max work-group:  1024\n")
	assert.Regexp(t, `extensions: +cl_khr_fp64`, stdout)
	assert.Regexp(t, `simd: +\S`, stdout)
	assert.Contains(t, stdout, "  gonum\n")
	assert.Contains(t, stdout, "  godsp\n")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runArgs(t, "-backend", "opencl")
	var se *rfft.StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, rfft.StageSetup, se.Stage)

	_, _, err = runArgs(t, "-fft", "fftw")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, rfft.StagePlan, se.Stage)

	_, _, err = runArgs(t, "-n", "-4")
	require.Error(t, err)

	_, _, err = runArgs(t, "-input", filepath.Join(t.TempDir(), "missing.wav"))
	require.ErrorContains(t, err, "failed to load input")

	_, _, err = runArgs(t, "-window", "welch")
	require.ErrorIs(t, err, signal.ErrUnknownWindow)

	_, _, err = runArgs(t, "-bogus")
	require.Error(t, err)

	_, _, err = runArgs(t, "extra")
	require.ErrorContains(t, err, "unexpected arguments")

	_, _, err = runArgs(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_WAVInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "impulse.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	data := make([]int, 64)
	data[0] = 32767
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	stdout, _, err := runArgs(t, "-input", path, "-n", "16", "-warp", "8")
	require.NoError(t, err)

	// A full-scale impulse has a flat unit spectrum; the kernel doubles
	// the real parts.
	vals := values(t, stdout)
	require.Len(t, vals, 16)
	for i := 0; i < len(vals); i += 2 {
		assert.InDelta(t, 2.0, vals[i], 1e-9, "bin %d real", i/2)
		assert.InDelta(t, 0.0, vals[i+1], 1e-9, "bin %d imag", i/2)
	}
}

func TestRun_WindowedInput(t *testing.T) {
	plain, _, err := runArgs(t, "-input", "sine", "-n", "64")
	require.NoError(t, err)
	windowed, _, err := runArgs(t, "-input", "sine", "-n", "64", "-window", "hann")
	require.NoError(t, err)

	// A Hann taper roughly halves the sine peak at bin 4.
	p := values(t, plain)
	w := values(t, windowed)
	assert.InDelta(t, -128.0, p[9], 1e-6)
	assert.Greater(t, w[9], p[9])
}

func TestParseFlags_AttenuationDerivesBeta(t *testing.T) {
	opts, err := parseFlags([]string{"-window", "kaiser", "-attenuation", "60"}, io.Discard)
	require.NoError(t, err)
	assert.InDelta(t, 0.1102*(60-8.7), opts.beta, 1e-12)

	opts, err = parseFlags([]string{"-beta", "3"}, io.Discard)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, opts.beta, 0, "-beta is kept without -attenuation")
}

func TestRun_KaiserWindow(t *testing.T) {
	_, stderr, err := runArgs(t, "-v", "-input", "sine", "-window", "kaiser", "-attenuation", "60")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Kaiser window: beta 5.6533 (~60.0 dB)")

	// Large beta must not stall window construction.
	stdout, _, err := runArgs(t, "-input", "sine", "-n", "32", "-warp", "8", "-window", "kaiser", "-beta", "1500")
	require.NoError(t, err)
	for i, v := range values(t, stdout) {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %d", i)
	}

	_, _, err = runArgs(t, "-window", "kaiser", "-beta", "NaN")
	require.ErrorIs(t, err, signal.ErrUnknownWindow)
}
