package host

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/multierr"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// MountFilter reports whether a partition should be included in disk usage.
type MountFilter func(disk.PartitionStat) bool

// MountFilterFor selects the partition filter for the given GOOS once at startup.
func MountFilterFor(goos string) MountFilter {
	if goos == "windows" {
		return func(p disk.PartitionStat) bool {
			if p.Fstype == "" || strings.Contains(strings.Join(p.Opts, ","), "cdrom") {
				return false
			}
			return keepMount(p)
		}
	}
	return keepMount
}

// keepMount drops macOS volume mounts and bind-mounted shared objects.
func keepMount(p disk.PartitionStat) bool {
	return !strings.Contains(p.Mountpoint, "Volumes") && !strings.Contains(p.Mountpoint, "libc.so")
}

// DiskUsage reports the used percentage of every real mounted filesystem, keyed by mount point.
type DiskUsage struct {
	src    Source
	filter MountFilter
}

func NewDiskUsage(src Source, filter MountFilter) *DiskUsage {
	if filter == nil {
		filter = keepMount
	}
	return &DiskUsage{src: src, filter: filter}
}

func (p *DiskUsage) Name() string { return ProbeDisk }

// Collect skips mounts whose usage cannot be read and fails only when none could be read.
func (p *DiskUsage) Collect(ctx context.Context) (domain.MetricResult, error) {
	parts, err := p.src.Partitions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("partitions: %w", err)
	}

	out := make(domain.MetricResult, len(parts))
	var errs error
	for _, part := range parts {
		if !p.filter(part) {
			continue
		}
		usage, err := p.src.DiskUsage(ctx, part.Mountpoint)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("usage %s: %w", part.Mountpoint, err))
			continue
		}
		out[mountKey(part.Mountpoint)] = domain.FormatPercent(usage.UsedPercent)
	}
	if len(out) == 0 && errs != nil {
		return nil, errs
	}
	return out, nil
}

func mountKey(mountpoint string) string {
	return strings.ReplaceAll(mountpoint, " ", "_")
}
