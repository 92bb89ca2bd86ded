package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// NetThroughput reports download and upload rates in Kbytes/s over a sampling interval.
type NetThroughput struct {
	src      Source
	interval time.Duration
	sleep    Sleeper
}

func NewNetThroughput(src Source, interval time.Duration, sleep Sleeper) *NetThroughput {
	if sleep == nil {
		sleep = sleepCtx
	}
	return &NetThroughput{src: src, interval: interval, sleep: sleep}
}

func (p *NetThroughput) Name() string { return ProbeNet }

func (p *NetThroughput) Collect(ctx context.Context) (domain.MetricResult, error) {
	before, err := totalNetCounters(ctx, p.src)
	if err != nil {
		return nil, err
	}
	if err := p.sleep(ctx, p.interval); err != nil {
		return nil, err
	}
	after, err := totalNetCounters(ctx, p.src)
	if err != nil {
		return nil, err
	}

	rx, err := p.rate(before.BytesRecv, after.BytesRecv)
	if err != nil {
		return nil, fmt.Errorf("bytes received: %w", err)
	}
	tx, err := p.rate(before.BytesSent, after.BytesSent)
	if err != nil {
		return nil, fmt.Errorf("bytes sent: %w", err)
	}
	return domain.MetricResult{
		"net_download": rx,
		"net_upload":   tx,
	}, nil
}

func (p *NetThroughput) rate(before, after uint64) (string, error) {
	d, err := domain.CounterDelta(before, after, domain.Width64)
	if err != nil {
		return "", err
	}
	return domain.FormatRate(d, p.interval)
}

func totalNetCounters(ctx context.Context, src Source) (net.IOCountersStat, error) {
	all, err := src.NetIOCounters(ctx, false)
	if err != nil {
		return net.IOCountersStat{}, fmt.Errorf("net io counters: %w", err)
	}
	if len(all) == 0 {
		return net.IOCountersStat{}, errors.New("net io counters: no interfaces")
	}
	return all[0], nil
}

// NetIO reports raw cumulative traffic counters, in total and per interface.
type NetIO struct {
	src Source
}

func NewNetIO(src Source) *NetIO { return &NetIO{src: src} }

func (p *NetIO) Name() string { return ProbeNetIO }

func (p *NetIO) Collect(ctx context.Context) (domain.MetricResult, error) {
	total, err := totalNetCounters(ctx, p.src)
	if err != nil {
		return nil, err
	}
	perNIC, err := p.src.NetIOCounters(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("per-nic io counters: %w", err)
	}

	out := make(domain.MetricResult, 8*(len(perNIC)+1))
	putNetCounters(out, "network", total)
	for _, nic := range perNIC {
		putNetCounters(out, key("network", nic.Name), nic)
	}
	return out, nil
}

func putNetCounters(out domain.MetricResult, prefix string, c net.IOCountersStat) {
	out[key(prefix, "bytes_sent")] = formatUint(c.BytesSent)
	out[key(prefix, "bytes_recv")] = formatUint(c.BytesRecv)
	out[key(prefix, "packets_sent")] = formatUint(c.PacketsSent)
	out[key(prefix, "packets_recv")] = formatUint(c.PacketsRecv)
	out[key(prefix, "errin")] = formatUint(c.Errin)
	out[key(prefix, "errout")] = formatUint(c.Errout)
	out[key(prefix, "dropin")] = formatUint(c.Dropin)
	out[key(prefix, "dropout")] = formatUint(c.Dropout)
}
