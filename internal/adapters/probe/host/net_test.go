package host

import (
	"context"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshulcz/hostcheck/internal/domain"
)

func TestNetThroughput_Collect(t *testing.T) {
	tests := []struct {
		name     string
		before   net.IOCountersStat
		after    net.IOCountersStat
		interval time.Duration
		want     domain.MetricResult
	}{
		{
			name:     "plain growth",
			before:   net.IOCountersStat{BytesRecv: 1000, BytesSent: 0},
			after:    net.IOCountersStat{BytesRecv: 1000 + 2048, BytesSent: 10240},
			interval: time.Second,
			want:     domain.MetricResult{"net_download": "2Kps", "net_upload": "10Kps"},
		},
		{
			name:     "32 bit wrap",
			before:   net.IOCountersStat{BytesRecv: 4294967290, BytesSent: 5},
			after:    net.IOCountersStat{BytesRecv: 2042, BytesSent: 5},
			interval: time.Second,
			want:     domain.MetricResult{"net_download": "2Kps", "net_upload": "0Kps"},
		},
		{
			name:     "longer interval",
			before:   net.IOCountersStat{BytesRecv: 0, BytesSent: 0},
			after:    net.IOCountersStat{BytesRecv: 8192, BytesSent: 4096},
			interval: 2 * time.Second,
			want:     domain.MetricResult{"net_download": "4Kps", "net_upload": "2Kps"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{netSeq: [][]net.IOCountersStat{{tt.before}, {tt.after}}}
			var slept []time.Duration

			got, err := NewNetThroughput(src, tt.interval, recordSleep(&slept)).Collect(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []time.Duration{tt.interval}, slept)
		})
	}
}

func TestNetThroughput_Errors(t *testing.T) {
	_, err := NewNetThroughput(&fakeSource{netErr: errBoom}, time.Second, recordSleep(new([]time.Duration))).
		Collect(context.Background())
	require.ErrorIs(t, err, errBoom)

	_, err = NewNetThroughput(&fakeSource{}, time.Second, recordSleep(new([]time.Duration))).
		Collect(context.Background())
	require.Error(t, err, "no interfaces must fail")
}

func TestNetIO_Collect(t *testing.T) {
	src := &fakeSource{
		netSeq: [][]net.IOCountersStat{{{Name: "all", BytesSent: 30, BytesRecv: 70, PacketsSent: 3, PacketsRecv: 7}}},
		perNIC: []net.IOCountersStat{
			{Name: "eth0", BytesSent: 20, BytesRecv: 60, Errin: 1},
			{Name: "lo", BytesSent: 10, BytesRecv: 10, Dropout: 2},
		},
	}
	got, err := NewNetIO(src).Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, got, 8*3)
	assert.Equal(t, "30", got["network.bytes_sent"])
	assert.Equal(t, "7", got["network.packets_recv"])
	assert.Equal(t, "60", got["network.eth0.bytes_recv"])
	assert.Equal(t, "1", got["network.eth0.errin"])
	assert.Equal(t, "2", got["network.lo.dropout"])
}
