package host

import (
	"context"
	"errors"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

var errBoom = errors.New("boom")

// fakeSource serves canned readings; the *Seq fields are consumed one call at a time.
type fakeSource struct {
	partitions   []disk.PartitionStat
	partitionErr error
	usage        map[string]*disk.UsageStat
	usageErr     map[string]error
	diskIO       map[string]disk.IOCountersStat
	diskIOErr    error
	vm           *mem.VirtualMemoryStat
	vmErr        error
	swap         *mem.SwapMemoryStat
	swapErr      error
	cpuPct       []float64
	cpuPctErr    error
	cpuInterval  time.Duration
	cpuTimesSeq  [][]cpu.TimesStat
	perCPUSeq    [][]cpu.TimesStat
	cpuTimesErr  error
	netSeq       [][]net.IOCountersStat
	perNIC       []net.IOCountersStat
	netErr       error
	load         *load.AvgStat
	loadErr      error
	ctxSw        *process.NumCtxSwitchesStat
	ctxSwErr     error
}

func (f *fakeSource) Partitions(context.Context, bool) ([]disk.PartitionStat, error) {
	return f.partitions, f.partitionErr
}

func (f *fakeSource) DiskUsage(_ context.Context, path string) (*disk.UsageStat, error) {
	if err := f.usageErr[path]; err != nil {
		return nil, err
	}
	return f.usage[path], nil
}

func (f *fakeSource) DiskIOCounters(context.Context) (map[string]disk.IOCountersStat, error) {
	return f.diskIO, f.diskIOErr
}

func (f *fakeSource) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	return f.vm, f.vmErr
}

func (f *fakeSource) SwapMemory(context.Context) (*mem.SwapMemoryStat, error) {
	return f.swap, f.swapErr
}

func (f *fakeSource) CPUPercent(_ context.Context, interval time.Duration) ([]float64, error) {
	f.cpuInterval = interval
	return f.cpuPct, f.cpuPctErr
}

func (f *fakeSource) CPUTimes(_ context.Context, percpu bool) ([]cpu.TimesStat, error) {
	if f.cpuTimesErr != nil {
		return nil, f.cpuTimesErr
	}
	if percpu {
		return pop(&f.perCPUSeq), nil
	}
	return pop(&f.cpuTimesSeq), nil
}

func (f *fakeSource) NetIOCounters(_ context.Context, pernic bool) ([]net.IOCountersStat, error) {
	if f.netErr != nil {
		return nil, f.netErr
	}
	if pernic {
		return f.perNIC, nil
	}
	return pop(&f.netSeq), nil
}

func (f *fakeSource) LoadAvg(context.Context) (*load.AvgStat, error) {
	return f.load, f.loadErr
}

func (f *fakeSource) CtxSwitches(context.Context) (*process.NumCtxSwitchesStat, error) {
	return f.ctxSw, f.ctxSwErr
}

func pop[T any](seq *[][]T) []T {
	if len(*seq) == 0 {
		return nil
	}
	head := (*seq)[0]
	if len(*seq) > 1 {
		*seq = (*seq)[1:]
	}
	return head
}

// recordSleep returns a Sleeper that records requested durations without blocking.
func recordSleep(got *[]time.Duration) Sleeper {
	return func(_ context.Context, d time.Duration) error {
		*got = append(*got, d)
		return nil
	}
}
