package fftplan

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
	"github.com/tphakala/go-gpu-rfft/internal/simdops"
)

// Plan is a 1-D real FFT plan of fixed length.
//
// Transforms are executed as native tasks on the queue they are enqueued
// on, so they are ordered with the kernels and transfers of that queue.
type Plan struct {
	n    int
	opts Options
	dir  Direction

	mu      sync.Mutex
	factory engineFactory
	eng     engine
	spec    []complex128
	seq     []float64
	re, im  []float64
	ops     *simdops.Ops
	closed  bool
}

// NewPlan creates a plan for length n. The plan is baked lazily on first
// use unless Bake is called.
func NewPlan(n int, opts Options) (*Plan, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if opts.Precision != PrecisionDouble {
		return nil, fmt.Errorf("%w: only double precision is supported", ErrNotImplemented)
	}
	if opts.Placement != InPlace {
		return nil, fmt.Errorf("%w: only in-place transforms are supported", ErrNotImplemented)
	}

	var dir Direction
	switch {
	case opts.InputLayout == LayoutReal && opts.OutputLayout == LayoutHermitianInterleaved:
		dir = Forward
	case opts.InputLayout == LayoutHermitianInterleaved && opts.OutputLayout == LayoutReal:
		dir = Backward
	default:
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidLayout, opts.InputLayout, opts.OutputLayout)
	}

	factory, err := lookupEngine(opts.Engine)
	if err != nil {
		return nil, err
	}
	if opts.BackwardScale == 0 {
		opts.BackwardScale = 1 / float64(n)
	}

	return &Plan{
		n:       n,
		opts:    opts,
		dir:     dir,
		factory: factory,
	}, nil
}

// Len returns the number of real samples.
func (p *Plan) Len() int {
	return p.n
}

// Direction returns the direction described by the plan's layouts.
func (p *Plan) Direction() Direction {
	return p.dir
}

// RequiredLen returns the minimum buffer length for in-place execution.
func (p *Plan) RequiredLen() int {
	return RequiredLen(p.n)
}

// Bake prepares the engine and scratch space. Calling it more than once is
// a no-op.
func (p *Plan) Bake() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bakeLocked()
}

func (p *Plan) bakeLocked() error {
	if p.closed {
		return ErrPlanClosed
	}
	if p.eng != nil {
		return nil
	}
	p.eng = p.factory(p.n)
	p.spec = make([]complex128, SpectrumLen(p.n))
	p.seq = make([]float64, p.n)
	p.re = make([]float64, len(p.spec))
	p.im = make([]float64, len(p.spec))
	p.ops = simdops.Float64Ops()
	return nil
}

// Enqueue submits the transform of buf to queue. Validation errors are
// returned immediately; execution errors are reported by queue.Finish.
func (p *Plan) Enqueue(queue compute.Queue, dir Direction, buf compute.Buffer) error {
	if dir != p.dir {
		return fmt.Errorf("%w: %s plan enqueued %s", ErrDirectionMismatch, p.dir, dir)
	}
	hm, ok := buf.(compute.HostMapped)
	if !ok {
		return ErrUnsupportedBuffer
	}
	if buf.Len() < p.RequiredLen() {
		return fmt.Errorf("%w: need %d elements for N=%d, have %d",
			ErrBufferTooSmall, p.RequiredLen(), p.n, buf.Len())
	}
	if err := p.Bake(); err != nil {
		return err
	}

	return queue.EnqueueNative("fft "+dir.String(), func() error {
		data := hm.HostView()
		if data == nil {
			return compute.ErrReleased
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			return ErrPlanClosed
		}
		if dir == Forward {
			p.forward(data)
		} else {
			p.backward(data)
		}
		return nil
	})
}

// forward transforms data[:n] into the interleaved half spectrum.
func (p *Plan) forward(data []float64) {
	p.spec = p.eng.forward(p.spec, data[:p.n])
	simdops.SplitComplex(p.re, p.im, p.spec)
	p.ops.Interleave2(data[:2*len(p.spec)], p.re, p.im)
}

// backward transforms the interleaved half spectrum into data[:n].
func (p *Plan) backward(data []float64) {
	p.ops.Deinterleave2(p.re, p.im, data[:2*len(p.spec)])
	simdops.JoinComplex(p.spec, p.re, p.im)
	p.seq = p.eng.backward(p.seq, p.spec)
	p.ops.Scale(p.seq, p.seq, p.opts.BackwardScale)
	copy(data[:p.n], p.seq)
}

// Close releases the plan's scratch space.
func (p *Plan) Close() error {
	p.mu.Lock()
	p.closed = true
	p.eng = nil
	p.spec = nil
	p.seq = nil
	p.re, p.im = nil, nil
	p.mu.Unlock()
	return nil
}
