package host

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/vshulcz/hostcheck/internal/domain"
)

const (
	// DefaultMapperDir is where device-mapper exposes its named volumes.
	DefaultMapperDir = "/dev/mapper"
	// DefaultSysBlockDir lists the kernel's whole block devices.
	DefaultSysBlockDir = "/sys/block"
)

// DiskIOPaths locates the filesystem views DiskIO consults besides its Source.
type DiskIOPaths struct {
	MapperDir   string
	SysBlockDir string
}

// DiskIO reports raw cumulative block I/O counters, in total and per device.
// Devices that back a device-mapper volume are reported a second time under
// the volume's friendly name.
type DiskIO struct {
	src   Source
	paths DiskIOPaths
	log   *zap.Logger
}

func NewDiskIO(src Source, paths DiskIOPaths, log *zap.Logger) *DiskIO {
	if paths.MapperDir == "" {
		paths.MapperDir = DefaultMapperDir
	}
	if paths.SysBlockDir == "" {
		paths.SysBlockDir = DefaultSysBlockDir
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DiskIO{src: src, paths: paths, log: log}
}

func (p *DiskIO) Name() string { return ProbeDiskIO }

func (p *DiskIO) Collect(ctx context.Context) (domain.MetricResult, error) {
	perDisk, err := p.src.DiskIOCounters(ctx)
	if err != nil {
		return nil, fmt.Errorf("disk io counters: %w", err)
	}

	out := make(domain.MetricResult)
	for dev, c := range perDisk {
		putDiskCounters(out, key("disk", dev), c)
	}
	putDiskCounters(out, "disk", p.total(perDisk))

	maps.Copy(out, p.mapperAliases(ctx, perDisk))
	return out, nil
}

// total sums the physical disks only, so partitions and stacked devices
// (device-mapper, md, loop) are not counted twice. Without a sysfs view of
// the devices every entry is summed.
func (p *DiskIO) total(perDisk map[string]disk.IOCountersStat) disk.IOCountersStat {
	var all, physical disk.IOCountersStat
	found := false
	for dev, c := range perDisk {
		all = addDiskCounters(all, c)
		if isPhysicalDisk(p.paths.SysBlockDir, dev) {
			physical = addDiskCounters(physical, c)
			found = true
		}
	}
	if !found {
		return all
	}
	return physical
}

// isPhysicalDisk reports whether dev is a whole disk backed by hardware.
// Partitions have no entry of their own under sysBlockDir, and virtual
// block devices have no "device" link.
func isPhysicalDisk(sysBlockDir, dev string) bool {
	_, err := os.Stat(filepath.Join(sysBlockDir, strings.ReplaceAll(dev, "/", "!"), "device"))
	return err == nil
}

// mapperAliases re-keys counters of device-mapper backed devices by volume name.
// Any failure here only costs the aliases.
func (p *DiskIO) mapperAliases(ctx context.Context, perDisk map[string]disk.IOCountersStat) domain.MetricResult {
	out := make(domain.MetricResult)
	parts, err := p.src.Partitions(ctx, false)
	if err != nil {
		p.log.Debug("device-mapper check skipped", zap.Error(err))
		return out
	}
	if !usesDeviceMapper(parts) {
		return out
	}
	names, err := ResolveMapperNames(p.paths.MapperDir)
	if err != nil {
		p.log.Debug("device-mapper names unavailable", zap.String("dir", p.paths.MapperDir), zap.Error(err))
		return out
	}
	for dev, c := range perDisk {
		if friendly, ok := names[dev]; ok {
			putDiskCounters(out, key("disk", friendly), c)
		}
	}
	return out
}

func usesDeviceMapper(parts []disk.PartitionStat) bool {
	for _, p := range parts {
		if strings.Contains(p.Device, "/dev/mapper") {
			return true
		}
	}
	return false
}

func addDiskCounters(a, b disk.IOCountersStat) disk.IOCountersStat {
	a.ReadCount += b.ReadCount
	a.WriteCount += b.WriteCount
	a.ReadBytes += b.ReadBytes
	a.WriteBytes += b.WriteBytes
	a.ReadTime += b.ReadTime
	a.WriteTime += b.WriteTime
	a.MergedReadCount += b.MergedReadCount
	a.MergedWriteCount += b.MergedWriteCount
	a.IoTime += b.IoTime
	return a
}

func putDiskCounters(out domain.MetricResult, prefix string, c disk.IOCountersStat) {
	out[key(prefix, "read_count")] = formatUint(c.ReadCount)
	out[key(prefix, "write_count")] = formatUint(c.WriteCount)
	out[key(prefix, "read_bytes")] = formatUint(c.ReadBytes)
	out[key(prefix, "write_bytes")] = formatUint(c.WriteBytes)
	out[key(prefix, "read_time")] = formatUint(c.ReadTime)
	out[key(prefix, "write_time")] = formatUint(c.WriteTime)
	out[key(prefix, "read_merged_count")] = formatUint(c.MergedReadCount)
	out[key(prefix, "write_merged_count")] = formatUint(c.MergedWriteCount)
	out[key(prefix, "busy_time")] = formatUint(c.IoTime)
}
