package rfft

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
	"github.com/tphakala/go-gpu-rfft/internal/fftplan"
	"github.com/tphakala/go-gpu-rfft/internal/kernels"
)

// StageTiming records the wall time of one executed stage.
type StageTiming struct {
	Stage    Stage
	Duration time.Duration
}

// Result is the outcome of a successful Run.
type Result struct {
	Layout Layout

	// Data is the full padded buffer read back from the device.
	Data []float64

	Backend string
	Device  string
	Engine  string
	Inverse bool

	Timings []StageTiming
}

// Output returns the first SignalLen values of the buffer. Without the
// inverse transform these are the first N interleaved values of the scaled
// spectrum; with it they are the time-domain samples.
func (r *Result) Output() []float64 {
	return r.Data[:r.Layout.SignalLen]
}

// Spectrum returns the SignalLen/2+1 meaningful complex bins of the buffer.
// It is only meaningful when the inverse transform was not applied.
func (r *Result) Spectrum() []complex128 {
	out := make([]complex128, r.Layout.SpectrumLen())
	for k := range out {
		out[k] = complex(r.Data[2*k], r.Data[2*k+1])
	}
	return out
}

// Run transforms input on the configured device: forward real FFT, the
// spectral scaling kernel, the optional inverse FFT, then readback.
//
// input holds up to cfg.SignalLen samples; shorter input is zero padded.
// Every stage is synchronized before the next starts. The first failure
// stops the pipeline and is returned as a *StageError; all device
// resources are released on every path.
func Run(ctx context.Context, cfg *Config, input []float64) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.SignalLen == 0 {
		c.SignalLen = len(input)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(input) > c.SignalLen {
		return nil, fmt.Errorf("%w: input has %d samples, signal length is %d",
			ErrInvalidConfig, len(input), c.SignalLen)
	}

	r := &runner{cfg: &c, logger: c.Logger}
	return r.run(ctx, input)
}

type runner struct {
	cfg     *Config
	logger  *log.Logger
	timings []StageTiming
}

func (r *runner) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

// stage runs fn as stage s, recording its duration and wrapping its error.
func (r *runner) stage(ctx context.Context, s Stage, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return &StageError{Stage: s, Err: err}
	}
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	r.timings = append(r.timings, StageTiming{Stage: s, Duration: elapsed})
	if err != nil {
		r.logf("%s: failed after %v: %v", s, elapsed, err)
		return &StageError{Stage: s, Err: err}
	}
	r.logf("%s: done in %v", s, elapsed)
	return nil
}

func (r *runner) run(ctx context.Context, input []float64) (res *Result, err error) {
	cfg := r.cfg

	// release closes a resource when run returns. A close failure is
	// reported only if the run itself succeeded.
	release := func(name string, c io.Closer) {
		if cerr := c.Close(); cerr != nil {
			r.logf("release %s: %v", name, cerr)
			if err == nil {
				res = nil
				err = &StageError{Stage: StageRelease, Err: fmt.Errorf("%s: %w", name, cerr)}
			}
		}
	}

	var (
		backend compute.Backend
		dc      compute.Context
		queue   compute.Queue
	)
	err = r.stage(ctx, StageSetup, func() error {
		var err error
		backend, err = compute.Lookup(cfg.backendName())
		if err != nil {
			return err
		}
		dc, err = backend.NewContext(cfg.DeviceIndex)
		return err
	})
	if err != nil {
		return nil, err
	}
	defer release("context", dc)

	err = r.stage(ctx, StageSetup, func() error {
		var err error
		queue, err = dc.NewQueue()
		return err
	})
	if err != nil {
		return nil, err
	}
	defer release("queue", queue)

	dev := dc.Device()
	warp := cfg.WarpSize
	if warp == 0 {
		warp = dev.WarpSize
	}
	if warp == 0 {
		warp = DefaultWarpSize
	}
	layout, err := ComputeLayout(cfg.SignalLen, warp)
	if err != nil {
		return nil, &StageError{Stage: StageSetup, Err: err}
	}
	r.logf("device %q (context %s): warp %d, max work-group %d, extensions [%s], simd %s",
		dev.Name, dc.ID(), dev.WarpSize, dev.MaxWorkGroupSize, strings.Join(dev.Extensions, " "), dev.SIMD)
	r.logf("layout %s", layout)

	var (
		program compute.Program
		kernel  compute.Kernel
	)
	err = r.stage(ctx, StageBuild, func() error {
		var err error
		program, err = dc.BuildProgram(kernels.Source)
		if err != nil {
			var be *compute.BuildError
			if errors.As(err, &be) {
				r.logf("building program failed\n%s", be.Log)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer release("program", program)

	err = r.stage(ctx, StageBuild, func() error {
		var err error
		kernel, err = program.NewKernel(kernels.MultName)
		return err
	})
	if err != nil {
		return nil, err
	}
	defer release("kernel", kernel)

	var buf compute.Buffer
	host := make([]float64, layout.PaddedLen)
	copy(host, input)
	err = r.stage(ctx, StageAllocate, func() error {
		var err error
		buf, err = dc.NewBuffer(layout.PaddedLen)
		return err
	})
	if err != nil {
		return nil, err
	}
	defer release("buffer", buf)

	err = r.stage(ctx, StageUpload, func() error {
		return queue.WriteBuffer(buf, true, host)
	})
	if err != nil {
		return nil, err
	}

	var forward, backward *fftplan.Plan
	err = r.stage(ctx, StagePlan, func() error {
		var err error
		forward, err = r.newPlan(fftplan.ForwardOptions(), layout.SignalLen)
		return err
	})
	if err != nil {
		return nil, err
	}
	defer release("forward plan", forward)

	if cfg.ApplyInverse {
		err = r.stage(ctx, StagePlan, func() error {
			var err error
			backward, err = r.newPlan(fftplan.BackwardOptions(), layout.SignalLen)
			return err
		})
		if err != nil {
			return nil, err
		}
		defer release("backward plan", backward)
	}

	err = r.stage(ctx, StageForward, func() error {
		if err := forward.Enqueue(queue, fftplan.Forward, buf); err != nil {
			return err
		}
		return queue.Finish(ctx)
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, StageKernel, func() error {
		if err := kernel.SetArg(0, buf); err != nil {
			return err
		}
		if err := queue.EnqueueKernel(kernel, layout.GlobalWorkItems, layout.LocalWorkItems); err != nil {
			return err
		}
		return queue.Finish(ctx)
	})
	if err != nil {
		return nil, err
	}

	if backward != nil {
		err = r.stage(ctx, StageInverse, func() error {
			if err := backward.Enqueue(queue, fftplan.Backward, buf); err != nil {
				return err
			}
			return queue.Finish(ctx)
		})
		if err != nil {
			return nil, err
		}
	}

	err = r.stage(ctx, StageDownload, func() error {
		if err := queue.ReadBuffer(buf, true, host); err != nil {
			return err
		}
		return queue.Finish(ctx)
	})
	if err != nil {
		return nil, err
	}

	engine := cfg.FFTEngine
	if engine == "" {
		engine = fftplan.DefaultEngine
	}
	return &Result{
		Layout:  layout,
		Data:    host,
		Backend: backend.Info().Name,
		Device:  dev.Name,
		Engine:  engine,
		Inverse: cfg.ApplyInverse,
		Timings: r.timings,
	}, nil
}

func (r *runner) newPlan(opts fftplan.Options, n int) (*fftplan.Plan, error) {
	opts.Engine = r.cfg.FFTEngine
	plan, err := fftplan.NewPlan(n, opts)
	if err != nil {
		return nil, err
	}
	if err := plan.Bake(); err != nil {
		_ = plan.Close()
		return nil, err
	}
	return plan, nil
}
