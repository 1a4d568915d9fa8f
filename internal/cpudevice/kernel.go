package cpudevice

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

// Kernel is a kernel instance with its argument bindings.
type Kernel struct {
	ctx    *Context
	name   string
	native compute.NativeKernel

	mu     sync.Mutex
	args   []*Buffer
	closed bool
}

func (k *Kernel) Name() string {
	return k.name
}

func (k *Kernel) NumArgs() int {
	return k.native.NumArgs
}

func (k *Kernel) SetArg(index int, buf compute.Buffer) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return compute.ErrReleased
	}
	if index < 0 || index >= len(k.args) {
		return fmt.Errorf("%w: kernel %q has %d arguments, index %d",
			compute.ErrInvalidKernelArgs, k.name, len(k.args), index)
	}
	b, ok := buf.(*Buffer)
	if !ok || b.ctx != k.ctx {
		return fmt.Errorf("%w: argument %d of kernel %q", compute.ErrForeignObject, index, k.name)
	}
	k.args[index] = b
	return nil
}

func (k *Kernel) Close() error {
	k.mu.Lock()
	k.closed = true
	k.args = nil
	k.mu.Unlock()
	return nil
}

// bind snapshots the current argument bindings as host views.
func (k *Kernel) bind() (hostArgs, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return nil, compute.ErrReleased
	}
	args := make(hostArgs, len(k.args))
	for i, b := range k.args {
		if b == nil {
			return nil, fmt.Errorf("%w: argument %d of kernel %q is not set",
				compute.ErrInvalidKernelArgs, i, k.name)
		}
		data, err := b.view()
		if err != nil {
			return nil, fmt.Errorf("argument %d of kernel %q: %w", i, k.name, err)
		}
		args[i] = data
	}
	return args, nil
}

type hostArgs [][]float64

func (a hostArgs) Float64s(index int) []float64 {
	return a[index]
}
