package cpudevice

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

// ErrKernelFault is returned when a kernel faults while executing, e.g. by
// indexing outside its buffers.
var ErrKernelFault = errors.New("cpudevice: kernel fault")

// execute runs fn over globalSize work items in work-groups of localSize.
// Work-groups are distributed over at most workers goroutines; the work
// items of one group run sequentially on the same goroutine.
func execute(name string, fn compute.KernelFunc, args hostArgs, globalSize, localSize, workers int) error {
	groups := globalSize / localSize
	if workers > groups {
		workers = groups
	}
	if workers < 1 {
		workers = 1
	}

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)

	perWorker := (groups + workers - 1) / workers
	for w := range workers {
		first := w * perWorker
		last := min(first+perWorker, groups)
		if first >= last {
			break
		}
		wg.Add(1)
		go func(first, last int) {
			defer wg.Done()
			if err := runGroups(name, fn, args, first, last, localSize); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(first, last)
	}
	wg.Wait()

	return firstErr
}

func runGroups(name string, fn compute.KernelFunc, args hostArgs, first, last, localSize int) (err error) {
	group := first
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: kernel %q work-group %d: %v", ErrKernelFault, name, group, r)
		}
	}()

	for ; group < last; group++ {
		base := group * localSize
		for local := range localSize {
			fn(compute.WorkItem{
				GlobalID:  base + local,
				LocalID:   local,
				GroupID:   group,
				LocalSize: localSize,
			}, args)
		}
	}
	return nil
}
