package cpudevice

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

// Context is a CPU device context. Objects created from it stay usable
// until they are closed individually; closing the context rejects further
// object creation.
type Context struct {
	id      string
	backend *Backend

	mu     sync.Mutex
	closed bool
}

func newContext(b *Backend) *Context {
	return &Context{
		id:      uuid.NewString(),
		backend: b,
	}
}

func (c *Context) ID() string {
	return c.id
}

func (c *Context) Device() compute.DeviceInfo {
	return c.backend.device
}

func (c *Context) NewQueue() (compute.Queue, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return newQueue(c), nil
}

func (c *Context) BuildProgram(source string) (compute.Program, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return buildProgram(c, source)
}

func (c *Context) NewBuffer(elemCount int) (compute.Buffer, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if elemCount <= 0 {
		return nil, fmt.Errorf("%w: %d elements", compute.ErrInvalidBufferSize, elemCount)
	}
	return &Buffer{
		ctx:  c,
		data: make([]float64, elemCount),
	}, nil
}

func (c *Context) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func (c *Context) check() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("%w: context %s", compute.ErrReleased, c.id)
	}
	return nil
}
