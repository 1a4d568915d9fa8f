package cpudevice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

// ErrCommandSkipped is reported for commands that were not executed because
// an earlier command on the same queue failed.
var ErrCommandSkipped = errors.New("cpudevice: command skipped after earlier failure")

type command struct {
	name string
	run  func() error // nil for finish markers
	done chan error

	// abandoned is set, under errMu, on a finish marker whose caller
	// stopped waiting. Such a marker leaves the pending error in place.
	abandoned *bool
}

// Queue is an in-order command queue drained by a single goroutine.
// After a command fails, later commands are skipped until Finish reports
// the failure.
type Queue struct {
	ctx  *Context
	cmds chan command
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	errMu   sync.Mutex
	pending error
}

func newQueue(c *Context) *Queue {
	q := &Queue{
		ctx:  c,
		cmds: make(chan command, queueDepth),
	}
	q.wg.Add(1)
	go q.loop()
	return q
}

func (q *Queue) loop() {
	defer q.wg.Done()
	for cmd := range q.cmds {
		if cmd.run == nil {
			q.finishMarker(cmd)
			continue
		}

		if err := q.peekErr(); err != nil {
			if cmd.done != nil {
				cmd.done <- fmt.Errorf("%w: %s: %w", ErrCommandSkipped, cmd.name, err)
			}
			continue
		}

		err := cmd.run()
		if err != nil {
			err = fmt.Errorf("%s: %w", cmd.name, err)
		}
		if cmd.done != nil {
			// Blocking commands report their own failure directly.
			cmd.done <- err
			continue
		}
		if err != nil {
			q.setErr(err)
		}
	}
}

func (q *Queue) WriteBuffer(buf compute.Buffer, blocking bool, src []float64) error {
	b, err := q.ownBuffer(buf)
	if err != nil {
		return err
	}
	if len(src) > b.Len() {
		return fmt.Errorf("%w: writing %d elements into buffer of %d",
			compute.ErrOutOfRange, len(src), b.Len())
	}
	return q.submit("write buffer", blocking, func() error {
		data, err := b.view()
		if err != nil {
			return err
		}
		copy(data, src)
		return nil
	})
}

func (q *Queue) ReadBuffer(buf compute.Buffer, blocking bool, dst []float64) error {
	b, err := q.ownBuffer(buf)
	if err != nil {
		return err
	}
	if len(dst) > b.Len() {
		return fmt.Errorf("%w: reading %d elements from buffer of %d",
			compute.ErrOutOfRange, len(dst), b.Len())
	}
	return q.submit("read buffer", blocking, func() error {
		data, err := b.view()
		if err != nil {
			return err
		}
		copy(dst, data)
		return nil
	})
}

func (q *Queue) EnqueueKernel(kernel compute.Kernel, globalSize, localSize int) error {
	k, ok := kernel.(*Kernel)
	if !ok || k.ctx != q.ctx {
		return fmt.Errorf("%w: kernel", compute.ErrForeignObject)
	}
	if err := compute.ValidateGeometry(q.ctx.Device(), globalSize, localSize); err != nil {
		return fmt.Errorf("kernel %q: %w", k.name, err)
	}
	args, err := k.bind()
	if err != nil {
		return err
	}
	workers := q.ctx.backend.workers
	return q.submit("kernel "+k.name, false, func() error {
		return execute(k.name, k.native.Fn, args, globalSize, localSize, workers)
	})
}

func (q *Queue) EnqueueNative(name string, fn func() error) error {
	if fn == nil {
		return fmt.Errorf("%w: nil native task %q", compute.ErrInvalidKernel, name)
	}
	return q.submit(name, false, fn)
}

// Finish blocks until every earlier command has run and returns the first
// failure since the previous Finish. If ctx ends first the failure is kept
// for the next call.
func (q *Queue) Finish(ctx context.Context) error {
	abandoned := false
	done := make(chan error, 1)
	if err := q.send(command{name: "finish", done: done, abandoned: &abandoned}); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		q.errMu.Lock()
		abandoned = true
		select {
		case err := <-done:
			// The marker ran before we gave up; put its error back for
			// the next Finish.
			if err != nil {
				q.pending = err
			}
		default:
		}
		q.errMu.Unlock()
		return ctx.Err()
	}
}

// finishMarker hands the pending error to a waiting Finish. Taking the
// error and sending it happen under errMu so Finish can reclaim it.
func (q *Queue) finishMarker(cmd command) {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	if cmd.abandoned != nil && *cmd.abandoned {
		return
	}
	err := q.pending
	q.pending = nil
	cmd.done <- err
}

// Close drains outstanding commands and stops the queue goroutine.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.cmds)
	q.mu.Unlock()

	q.wg.Wait()
	return q.takeErr()
}

func (q *Queue) submit(name string, blocking bool, run func() error) error {
	cmd := command{name: name, run: run}
	if blocking {
		cmd.done = make(chan error, 1)
	}
	if err := q.send(cmd); err != nil {
		return err
	}
	if blocking {
		return <-cmd.done
	}
	return nil
}

func (q *Queue) send(cmd command) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return fmt.Errorf("%w: queue", compute.ErrReleased)
	}
	q.cmds <- cmd
	return nil
}

func (q *Queue) ownBuffer(buf compute.Buffer) (*Buffer, error) {
	b, ok := buf.(*Buffer)
	if !ok || b.ctx != q.ctx {
		return nil, fmt.Errorf("%w: buffer", compute.ErrForeignObject)
	}
	return b, nil
}

func (q *Queue) setErr(err error) {
	q.errMu.Lock()
	if q.pending == nil {
		q.pending = err
	}
	q.errMu.Unlock()
}

func (q *Queue) peekErr() error {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	return q.pending
}

func (q *Queue) takeErr() error {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	err := q.pending
	q.pending = nil
	return err
}
