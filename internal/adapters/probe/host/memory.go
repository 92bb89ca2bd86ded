package host

import (
	"context"
	"fmt"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// Memory reports RAM and swap usage percentages.
type Memory struct {
	src Source
}

func NewMemory(src Source) *Memory { return &Memory{src: src} }

func (p *Memory) Name() string { return ProbeMemory }

func (p *Memory) Collect(ctx context.Context) (domain.MetricResult, error) {
	vm, err := p.src.VirtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}
	sw, err := p.src.SwapMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("swap memory: %w", err)
	}
	return domain.MetricResult{
		"memory": domain.FormatPercent(vm.UsedPercent),
		"swap":   domain.FormatPercent(sw.UsedPercent),
	}, nil
}

// VirtualMemory reports every virtual memory field under vmem.<field>.
type VirtualMemory struct {
	src Source
}

func NewVirtualMemory(src Source) *VirtualMemory { return &VirtualMemory{src: src} }

func (p *VirtualMemory) Name() string { return ProbeVMem }

func (p *VirtualMemory) Collect(ctx context.Context) (domain.MetricResult, error) {
	vm, err := p.src.VirtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}
	return domain.MetricResult{
		"vmem.total":     formatUint(vm.Total),
		"vmem.available": formatUint(vm.Available),
		"vmem.percent":   formatFloat(vm.UsedPercent),
		"vmem.used":      formatUint(vm.Used),
		"vmem.free":      formatUint(vm.Free),
		"vmem.active":    formatUint(vm.Active),
		"vmem.inactive":  formatUint(vm.Inactive),
		"vmem.buffers":   formatUint(vm.Buffers),
		"vmem.cached":    formatUint(vm.Cached),
		"vmem.shared":    formatUint(vm.Shared),
		"vmem.slab":      formatUint(vm.Slab),
	}, nil
}
