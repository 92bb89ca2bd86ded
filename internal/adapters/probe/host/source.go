// Package host implements the host resource probes on top of gopsutil.
package host

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Source is the operating system surface the probes read from.
type Source interface {
	Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
	DiskIOCounters(ctx context.Context) (map[string]disk.IOCountersStat, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error)
	CPUPercent(ctx context.Context, interval time.Duration) ([]float64, error)
	CPUTimes(ctx context.Context, percpu bool) ([]cpu.TimesStat, error)
	NetIOCounters(ctx context.Context, pernic bool) ([]net.IOCountersStat, error)
	LoadAvg(ctx context.Context) (*load.AvgStat, error)
	CtxSwitches(ctx context.Context) (*process.NumCtxSwitchesStat, error)
}

// System reads the live host through gopsutil.
type System struct {
	pid int32
}

var _ Source = (*System)(nil)

// NewSystem returns a Source bound to the current process for per-process counters.
func NewSystem() *System {
	return &System{pid: int32(os.Getpid())} // #nosec G115
}

func (s *System) Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, all)
}

func (s *System) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (s *System) DiskIOCounters(ctx context.Context) (map[string]disk.IOCountersStat, error) {
	return disk.IOCountersWithContext(ctx)
}

func (s *System) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (s *System) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

func (s *System) CPUPercent(ctx context.Context, interval time.Duration) ([]float64, error) {
	return cpu.PercentWithContext(ctx, interval, false)
}

func (s *System) CPUTimes(ctx context.Context, percpu bool) ([]cpu.TimesStat, error) {
	return cpu.TimesWithContext(ctx, percpu)
}

func (s *System) NetIOCounters(ctx context.Context, pernic bool) ([]net.IOCountersStat, error) {
	return net.IOCountersWithContext(ctx, pernic)
}

func (s *System) LoadAvg(ctx context.Context) (*load.AvgStat, error) {
	return load.AvgWithContext(ctx)
}

func (s *System) CtxSwitches(ctx context.Context) (*process.NumCtxSwitchesStat, error) {
	p, err := process.NewProcessWithContext(ctx, s.pid)
	if err != nil {
		return nil, err
	}
	return p.NumCtxSwitchesWithContext(ctx)
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
