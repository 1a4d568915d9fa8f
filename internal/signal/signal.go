// Package signal produces the real-valued input sequences fed to the
// spectral pipeline.
package signal

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	// ErrInvalidLength is returned for non-positive signal lengths.
	ErrInvalidLength = errors.New("signal: invalid length")

	// ErrInvalidWAV is returned for files that are not valid PCM WAV files.
	ErrInvalidWAV = errors.New("signal: invalid WAV file")
)

// PCM full-scale values used for normalization to [-1.0, 1.0].
const (
	maxInt8  = 127.0
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// wavChunkFrames is the number of frames decoded per read.
	wavChunkFrames = 4096

	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Ramp returns the sequence 0, 1, ..., n-1.
func Ramp(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out, nil
}

// Sine returns n samples of a unit sine completing cycles periods.
func Sine(n int, cycles float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	out := make([]float64, n)
	omega := 2 * math.Pi * cycles / float64(n)
	for i := range out {
		out[i] = math.Sin(omega * float64(i))
	}
	return out, nil
}

// WAVInfo describes a decoded WAV file.
type WAVInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int

	// Frames is the number of frames decoded, at most the requested limit.
	Frames int
}

// LoadWAV reads the first channel of a PCM WAV file normalized to
// [-1.0, 1.0]. When maxFrames > 0 at most that many frames are returned.
func LoadWAV(path string, maxFrames int) ([]float64, WAVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WAVInfo{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	samples, info, err := DecodeWAV(f, maxFrames)
	if errors.Is(err, ErrInvalidWAV) || errors.Is(err, ErrInvalidLength) {
		return nil, info, fmt.Errorf("%w (%s)", err, path)
	}
	return samples, info, err
}

// DecodeWAV is LoadWAV on an open stream. PCM data is decoded in chunks of
// wavChunkFrames and reading stops once maxFrames frames are collected.
func DecodeWAV(r io.ReadSeeker, maxFrames int) ([]float64, WAVInfo, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, WAVInfo{}, ErrInvalidWAV
	}

	format := decoder.Format()
	info := WAVInfo{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   int(decoder.BitDepth),
	}
	channels := info.Channels
	if channels < 1 {
		return nil, info, fmt.Errorf("%w: %d channels", ErrInvalidWAV, channels)
	}

	chunkFrames := wavChunkFrames
	if maxFrames > 0 && maxFrames < chunkFrames {
		chunkFrames = maxFrames
	}
	chunk := &audio.IntBuffer{
		Data:   make([]int, chunkFrames*channels),
		Format: format,
	}

	invMaxVal := 1.0 / fullScale(info.BitDepth)
	var out []float64
	for maxFrames <= 0 || len(out) < maxFrames {
		chunk.Data = chunk.Data[:cap(chunk.Data)]
		n, err := decoder.PCMBuffer(chunk)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, info, fmt.Errorf("failed to read audio data: %w", err)
		}

		// n counts samples across all channels.
		frames := n / channels
		if maxFrames > 0 {
			frames = min(frames, maxFrames-len(out))
		}
		for i := range frames {
			out = append(out, float64(chunk.Data[i*channels])*invMaxVal)
		}
		if n == 0 || err != nil {
			break
		}
	}

	info.Frames = len(out)
	if len(out) == 0 {
		return nil, info, fmt.Errorf("%w: no audio frames", ErrInvalidLength)
	}
	return out, info, nil
}

// fullScale returns the maximum sample value for the given bit depth.
func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample8:
		return maxInt8
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}
