package host

import (
	"context"
	"fmt"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// LoadAverage passes the 1, 5 and 15 minute load averages through as decimals.
type LoadAverage struct {
	src Source
}

func NewLoadAverage(src Source) *LoadAverage { return &LoadAverage{src: src} }

func (p *LoadAverage) Name() string { return ProbeLoad }

func (p *LoadAverage) Collect(ctx context.Context) (domain.MetricResult, error) {
	avg, err := p.src.LoadAvg(ctx)
	if err != nil {
		return nil, fmt.Errorf("load average: %w", err)
	}
	return domain.MetricResult{
		"load_1_min":  formatFloat(avg.Load1),
		"load_5_min":  formatFloat(avg.Load5),
		"load_15_min": formatFloat(avg.Load15),
	}, nil
}
