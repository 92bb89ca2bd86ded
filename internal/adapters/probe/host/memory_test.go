package host

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshulcz/hostcheck/internal/domain"
)

func TestMemory_Collect(t *testing.T) {
	src := &fakeSource{
		vm:   &mem.VirtualMemoryStat{UsedPercent: 63.7},
		swap: &mem.SwapMemoryStat{UsedPercent: 0.4},
	}
	got, err := NewMemory(src).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MetricResult{"memory": "63%", "swap": "0%"}, got)

	_, err = NewMemory(&fakeSource{vm: src.vm, swapErr: errBoom}).Collect(context.Background())
	require.ErrorIs(t, err, errBoom)
}

func TestVirtualMemory_Collect(t *testing.T) {
	src := &fakeSource{vm: &mem.VirtualMemoryStat{
		Total: 8192, Available: 4096, UsedPercent: 50, Used: 4000, Free: 96,
		Active: 1, Inactive: 2, Buffers: 3, Cached: 4, Shared: 5, Slab: 6,
	}}
	got, err := NewVirtualMemory(src).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 11)
	assert.Equal(t, "8192", got["vmem.total"])
	assert.Equal(t, "50", got["vmem.percent"])
	assert.Equal(t, "6", got["vmem.slab"])
	for k := range got {
		assert.Contains(t, k, "vmem.")
	}
}

func TestLoadAverage_Collect(t *testing.T) {
	src := &fakeSource{load: &load.AvgStat{Load1: 0.52, Load5: 1, Load15: 1.25}}
	got, err := NewLoadAverage(src).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MetricResult{
		"load_1_min":  "0.52",
		"load_5_min":  "1",
		"load_15_min": "1.25",
	}, got)

	_, err = NewLoadAverage(&fakeSource{loadErr: errBoom}).Collect(context.Background())
	require.ErrorIs(t, err, errBoom)
}

func TestContextSwitches_Collect(t *testing.T) {
	src := &fakeSource{ctxSw: &process.NumCtxSwitchesStat{Voluntary: 12, Involuntary: 3}}
	got, err := NewContextSwitches(src).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MetricResult{
		"ctx-switch.voluntary":   "12",
		"ctx-switch.involuntary": "3",
	}, got)
}
