package host

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// CPUPercent reports overall CPU utilisation sampled over a blocking interval.
type CPUPercent struct {
	src      Source
	interval time.Duration
}

func NewCPUPercent(src Source, interval time.Duration) *CPUPercent {
	return &CPUPercent{src: src, interval: interval}
}

func (p *CPUPercent) Name() string { return ProbeCPU }

func (p *CPUPercent) Collect(ctx context.Context) (domain.MetricResult, error) {
	pct, err := p.src.CPUPercent(ctx, p.interval)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	if len(pct) == 0 {
		return nil, errors.New("cpu percent: no samples")
	}
	return domain.MetricResult{"cpu": domain.FormatPercent(pct[0])}, nil
}

// CPUTimes reports the share of time spent in each CPU state, overall and per core,
// between two readings taken interval apart.
type CPUTimes struct {
	src      Source
	interval time.Duration
	sleep    Sleeper
}

func NewCPUTimes(src Source, interval time.Duration, sleep Sleeper) *CPUTimes {
	if sleep == nil {
		sleep = sleepCtx
	}
	return &CPUTimes{src: src, interval: interval, sleep: sleep}
}

func (p *CPUTimes) Name() string { return ProbeCPUTime }

func (p *CPUTimes) Collect(ctx context.Context) (domain.MetricResult, error) {
	allBefore, perBefore, err := p.read(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.sleep(ctx, p.interval); err != nil {
		return nil, err
	}
	allAfter, perAfter, err := p.read(ctx)
	if err != nil {
		return nil, err
	}

	out := make(domain.MetricResult)
	for field, v := range timesPercent(allBefore, allAfter) {
		out[key("cpu", field)] = formatTenths(v)
	}
	n := min(len(perBefore), len(perAfter))
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		for field, v := range timesPercent(perBefore[i], perAfter[i]) {
			out[key("cpu", idx, field)] = formatTenths(v)
		}
	}
	return out, nil
}

func (p *CPUTimes) read(ctx context.Context) (cpu.TimesStat, []cpu.TimesStat, error) {
	all, err := p.src.CPUTimes(ctx, false)
	if err != nil {
		return cpu.TimesStat{}, nil, fmt.Errorf("cpu times: %w", err)
	}
	if len(all) == 0 {
		return cpu.TimesStat{}, nil, errors.New("cpu times: no samples")
	}
	per, err := p.src.CPUTimes(ctx, true)
	if err != nil {
		return cpu.TimesStat{}, nil, fmt.Errorf("per-cpu times: %w", err)
	}
	return all[0], per, nil
}

func timesFields(t cpu.TimesStat) map[string]float64 {
	return map[string]float64{
		"user":       t.User,
		"nice":       t.Nice,
		"system":     t.System,
		"idle":       t.Idle,
		"iowait":     t.Iowait,
		"irq":        t.Irq,
		"softirq":    t.Softirq,
		"steal":      t.Steal,
		"guest":      t.Guest,
		"guest_nice": t.GuestNice,
	}
}

// timesTotal excludes guest time, which the kernel already accounts in user and nice.
func timesTotal(t cpu.TimesStat) float64 {
	return t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
}

// timesPercent converts the growth of each state between two readings into a
// percentage of total elapsed CPU time, clamped to [0, 100].
func timesPercent(before, after cpu.TimesStat) map[string]float64 {
	total := timesTotal(after) - timesTotal(before)
	b, a := timesFields(before), timesFields(after)
	out := make(map[string]float64, len(a))
	for field, av := range a {
		if total <= 0 {
			out[field] = 0
			continue
		}
		pct := (av - b[field]) / total * 100
		out[field] = min(max(pct, 0), 100)
	}
	return out
}
