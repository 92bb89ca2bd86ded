package host

import (
	"context"
	"fmt"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// ContextSwitches reports the current process's voluntary and involuntary context switches.
type ContextSwitches struct {
	src Source
}

func NewContextSwitches(src Source) *ContextSwitches { return &ContextSwitches{src: src} }

func (p *ContextSwitches) Name() string { return ProbeCtxSwitch }

func (p *ContextSwitches) Collect(ctx context.Context) (domain.MetricResult, error) {
	cs, err := p.src.CtxSwitches(ctx)
	if err != nil {
		return nil, fmt.Errorf("context switches: %w", err)
	}
	return domain.MetricResult{
		"ctx-switch.voluntary":   formatInt(cs.Voluntary),
		"ctx-switch.involuntary": formatInt(cs.Involuntary),
	}, nil
}
