package host

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/ports"
)

const (
	ProbeDisk      = "disk"
	ProbeCPU       = "cpu"
	ProbeMemory    = "memory"
	ProbeNet       = "net"
	ProbeLoad      = "load"
	ProbeCPUTime   = "cputime"
	ProbeNetIO     = "netio"
	ProbeDiskIO    = "diskio"
	ProbeVMem      = "vmem"
	ProbeCtxSwitch = "ctxswitch"
)

// DefaultOrder is the execution order used when no probe list is configured.
var DefaultOrder = []string{
	ProbeDisk, ProbeCPU, ProbeMemory, ProbeNet, ProbeLoad,
	ProbeCPUTime, ProbeNetIO, ProbeDiskIO, ProbeVMem, ProbeCtxSwitch,
}

// Options tunes the probes built by Build.
type Options struct {
	Logger      *zap.Logger
	MountFilter MountFilter
	Sleep       Sleeper
	MapperDir   string
	SysBlockDir string
	NetInterval time.Duration
	CPUInterval time.Duration
}

// Build returns the named probes in the given order.
func Build(names []string, src Source, opts Options) ([]ports.Probe, error) {
	if opts.MountFilter == nil {
		opts.MountFilter = MountFilterFor(runtime.GOOS)
	}
	if opts.NetInterval <= 0 {
		opts.NetInterval = time.Second
	}
	if opts.CPUInterval <= 0 {
		opts.CPUInterval = time.Second
	}

	probes := make([]ports.Probe, 0, len(names))
	for _, name := range names {
		var p ports.Probe
		switch name {
		case ProbeDisk:
			p = NewDiskUsage(src, opts.MountFilter)
		case ProbeCPU:
			p = NewCPUPercent(src, opts.CPUInterval)
		case ProbeMemory:
			p = NewMemory(src)
		case ProbeNet:
			p = NewNetThroughput(src, opts.NetInterval, opts.Sleep)
		case ProbeLoad:
			p = NewLoadAverage(src)
		case ProbeCPUTime:
			p = NewCPUTimes(src, opts.CPUInterval, opts.Sleep)
		case ProbeNetIO:
			p = NewNetIO(src)
		case ProbeDiskIO:
			p = NewDiskIO(src, DiskIOPaths{MapperDir: opts.MapperDir, SysBlockDir: opts.SysBlockDir}, opts.Logger)
		case ProbeVMem:
			p = NewVirtualMemory(src)
		case ProbeCtxSwitch:
			p = NewContextSwitches(src)
		default:
			return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownProbe)
		}
		probes = append(probes, p)
	}
	return probes, nil
}
