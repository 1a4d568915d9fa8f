// Command rfft-demo runs a real-to-complex FFT, scales the spectrum with a
// device kernel and prints the resulting buffer.
//
// Without flags it transforms a 128-sample ramp and prints the first 128
// interleaved values of the scaled spectrum:
//
//	rfft-demo
//	rfft-demo -n 1024 -warp 64 -inverse
//	rfft-demo -input tone.wav -n 4096 -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	rfft "github.com/tphakala/go-gpu-rfft"
	"github.com/tphakala/go-gpu-rfft/internal/mathutil"
	"github.com/tphakala/go-gpu-rfft/internal/signal"
)

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("rfft-demo: %v", err)
	}
}

type options struct {
	signalLen  int
	warpSize   int
	inverse    bool
	backend    string
	device     int
	engine     string
	input      string
	sineCycles float64
	window     string
	beta       float64
	atten      float64
	layoutOnly bool
	list       bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("rfft-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.IntVar(&opts.signalLen, "n", defaultSignalLen, "Number of real samples")
	fs.IntVar(&opts.warpSize, "warp", defaultWarpSize, "Work-group size (0 = device warp size)")
	fs.BoolVar(&opts.inverse, "inverse", false, "Apply the inverse FFT after scaling")
	fs.StringVar(&opts.backend, "backend", rfft.DefaultBackend, "Compute backend ("+strings.Join(rfft.Backends(), ", ")+")")
	fs.IntVar(&opts.device, "device", defaultDevice, "Device index within the backend")
	fs.StringVar(&opts.engine, "fft", "", "FFT engine ("+strings.Join(rfft.FFTEngines(), ", ")+")")
	fs.StringVar(&opts.input, "input", inputRamp, "Input signal: ramp, sine, or a WAV file path")
	fs.Float64Var(&opts.sineCycles, "cycles", defaultSineCycles, "Periods of the sine input")
	fs.StringVar(&opts.window, "window", signal.WindowNone, "Window applied to the input: none, hann, hamming, blackman, kaiser")
	fs.Float64Var(&opts.beta, "beta", signal.DefaultKaiserBeta, "Kaiser window beta")
	fs.Float64Var(&opts.atten, "attenuation", 0, "Kaiser sidelobe attenuation in dB; derives -beta when > 0")
	fs.BoolVar(&opts.layoutOnly, "layout", false, "Print the buffer layout and exit")
	fs.BoolVar(&opts.list, "list", false, "List backends and FFT engines and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Log stage progress to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.atten > 0 {
		opts.beta = mathutil.KaiserBeta(opts.atten)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		printInventory(stdout)
		return nil
	}

	if opts.layoutOnly {
		return printLayout(stdout, opts)
	}

	var logger *log.Logger
	if opts.verbose {
		logger = log.New(stderr, "rfft: ", log.Lmicroseconds)
	}

	input, err := loadInput(opts, logger)
	if err != nil {
		return err
	}

	cfg := &rfft.Config{
		SignalLen:    opts.signalLen,
		WarpSize:     opts.warpSize,
		ApplyInverse: opts.inverse,
		Backend:      opts.backend,
		DeviceIndex:  opts.device,
		FFTEngine:    opts.engine,
		Logger:       logger,
	}

	res, err := rfft.Run(ctx, cfg, input)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Printf("%s on %s via %s engine", res.Layout, res.Device, res.Engine)
		for _, st := range res.Timings {
			logger.Printf("  %-9s %v", st.Stage, st.Duration)
		}
	}

	return rfft.WriteBracketed(stdout, res.Output())
}
