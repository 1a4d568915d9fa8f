package compute

import (
	"fmt"
	"sort"
	"sync"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Backend)
)

// Register makes a backend available under name. Passing nil removes it.
func Register(name string, b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if b == nil {
		delete(backends, name)
		return
	}
	backends[name] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	backendsMu.RLock()
	b, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoBackend, name)
	}
	if !b.Available() {
		return nil, fmt.Errorf("%w: %q", ErrBackendUnavailable, name)
	}
	return b, nil
}

// Backends returns the sorted names of registered backends.
func Backends() []string {
	backendsMu.RLock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	backendsMu.RUnlock()
	sort.Strings(names)
	return names
}
