package cpudevice

import (
	"sync"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

// Buffer is a device buffer backed by host memory.
type Buffer struct {
	ctx *Context

	mu   sync.RWMutex
	data []float64
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

func (b *Buffer) Bytes() int {
	return b.Len() * compute.BytesPerElement
}

// HostView returns the buffer storage. It is nil after Close.
func (b *Buffer) HostView() []float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data
}

func (b *Buffer) Close() error {
	b.mu.Lock()
	b.data = nil
	b.mu.Unlock()
	return nil
}

// view returns the storage or ErrReleased.
func (b *Buffer) view() ([]float64, error) {
	data := b.HostView()
	if data == nil {
		return nil, compute.ErrReleased
	}
	return data, nil
}
