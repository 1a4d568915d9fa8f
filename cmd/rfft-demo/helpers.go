package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	rfft "github.com/tphakala/go-gpu-rfft"
	"github.com/tphakala/go-gpu-rfft/internal/compute"
	"github.com/tphakala/go-gpu-rfft/internal/mathutil"
	"github.com/tphakala/go-gpu-rfft/internal/signal"
)

// loadInput builds the input signal selected by -input and applies the
// -window taper.
func loadInput(opts *options, logger *log.Logger) ([]float64, error) {
	samples, err := readSignal(opts, logger)
	if err != nil {
		return nil, err
	}
	if err := signal.ApplyWindow(samples, opts.window, opts.beta); err != nil {
		return nil, err
	}
	if logger != nil && opts.window == signal.WindowKaiser {
		logger.Printf("Kaiser window: beta %.4f (~%.1f dB)", opts.beta, mathutil.KaiserAttenuation(opts.beta))
	}
	return samples, nil
}

func readSignal(opts *options, logger *log.Logger) ([]float64, error) {
	switch opts.input {
	case inputRamp, "":
		return signal.Ramp(opts.signalLen)
	case inputSine:
		return signal.Sine(opts.signalLen, opts.sineCycles)
	}

	samples, info, err := signal.LoadWAV(opts.input, opts.signalLen)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}
	if logger != nil {
		logger.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames read",
			info.SampleRate, info.Channels, info.BitDepth, info.Frames)
	}
	return samples, nil
}

// printLayout writes the buffer layout for the configured length and warp
// size without touching a device.
func printLayout(w io.Writer, opts *options) error {
	warp := opts.warpSize
	if warp == 0 {
		warp = rfft.DefaultWarpSize
	}
	layout, err := rfft.ComputeLayout(opts.signalLen, warp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "signal length:   %d\n"+
		"complex slots:   %d\n"+
		"padded length:   %d (%d bytes)\n"+
		"global size:     %d\n"+
		"local size:      %d\n"+
		"work-groups:     %d\n",
		layout.SignalLen, layout.ComplexSlots, layout.PaddedLen, layout.Bytes(),
		layout.GlobalWorkItems, layout.LocalWorkItems, layout.WorkGroups())
	return err
}

// printInventory lists every registered backend with its devices, and the
// FFT engines.
func printInventory(w io.Writer) {
	fmt.Fprintln(w, "Backends:")
	for _, name := range rfft.Backends() {
		b, err := compute.Lookup(name)
		if err != nil {
			fmt.Fprintf(w, "  %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "  %s (%s)\n", name, b.Info().Description)
		devs, err := b.Devices()
		if err != nil {
			fmt.Fprintf(w, "    devices: %v\n", err)
			continue
		}
		for i, dev := range devs {
			fmt.Fprintf(w, "    [%d] %s, %s\n", i, dev.Name, dev.Type)
			fmt.Fprintf(w, "        warp size:       %d\n", dev.WarpSize)
			fmt.Fprintf(w, "        max work-group:  %d\n", dev.MaxWorkGroupSize)
			fmt.Fprintf(w, "        compute units:   %d\n", dev.ComputeUnits)
			fmt.Fprintf(w, "        extensions:      %s\n", strings.Join(dev.Extensions, " "))
			fmt.Fprintf(w, "        simd:            %s\n", dev.SIMD)
		}
	}
	fmt.Fprintln(w, "FFT engines:")
	for _, name := range rfft.FFTEngines() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
