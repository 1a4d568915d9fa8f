package cpudevice

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tphakala/go-gpu-rfft/internal/compute"
)

var (
	pragmaRe = regexp.MustCompile(`#pragma\s+OPENCL\s+EXTENSION\s+(\w+)\s*:\s*(enable|disable)`)
	kernelRe = regexp.MustCompile(`__kernel\s+void\s+(\w+)\s*\(([^)]*)\)`)
)

// Program is a built program. Building resolves every __kernel declaration
// in the source to a native implementation registered with the backend.
type Program struct {
	ctx     *Context
	log     string
	kernels map[string]compute.NativeKernel
}

func buildProgram(c *Context, source string) (*Program, error) {
	var (
		diag    []string
		kernels = make(map[string]compute.NativeKernel)
		dev     = c.backend.device
	)

	for _, m := range pragmaRe.FindAllStringSubmatchIndex(source, -1) {
		ext := source[m[2]:m[3]]
		mode := source[m[4]:m[5]]
		if mode == "enable" && !dev.HasExtension(ext) {
			diag = append(diag, fmt.Sprintf("%d: error: extension %q is not supported on %s",
				lineOf(source, m[0]), ext, dev.Name))
		}
	}

	matches := kernelRe.FindAllStringSubmatchIndex(source, -1)
	if len(matches) == 0 {
		diag = append(diag, "error: program declares no kernels")
	}
	for _, m := range matches {
		name := source[m[2]:m[3]]
		params := countParams(source[m[4]:m[5]])
		line := lineOf(source, m[0])

		native, ok := c.backend.kernels[name]
		switch {
		case !ok:
			diag = append(diag, fmt.Sprintf("%d: error: kernel %q has no implementation for %s",
				line, name, dev.Name))
		case native.NumArgs != params:
			diag = append(diag, fmt.Sprintf("%d: error: kernel %q declares %d arguments, implementation takes %d",
				line, name, params, native.NumArgs))
		default:
			kernels[name] = native
		}
	}

	log := strings.Join(diag, "\n")
	if len(diag) > 0 {
		return nil, &compute.BuildError{Device: dev.Name, Log: log}
	}
	return &Program{ctx: c, log: log, kernels: kernels}, nil
}

func (p *Program) BuildLog() string {
	return p.log
}

func (p *Program) KernelNames() []string {
	names := make([]string, 0, len(p.kernels))
	for name := range p.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Program) NewKernel(name string) (compute.Kernel, error) {
	if p.kernels == nil {
		return nil, compute.ErrReleased
	}
	native, ok := p.kernels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", compute.ErrInvalidKernel, name)
	}
	return &Kernel{
		ctx:    p.ctx,
		name:   name,
		native: native,
		args:   make([]*Buffer, native.NumArgs),
	}, nil
}

func (p *Program) Close() error {
	p.kernels = nil
	return nil
}

func lineOf(source string, offset int) int {
	return strings.Count(source[:offset], "\n") + 1
}

func countParams(list string) int {
	list = strings.TrimSpace(list)
	if list == "" || list == "void" {
		return 0
	}
	return strings.Count(list, ",") + 1
}
