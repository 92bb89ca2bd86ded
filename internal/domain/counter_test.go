package domain

import (
	"errors"
	"testing"
	"time"
)

func TestCounterDelta(t *testing.T) {
	tests := []struct {
		name    string
		before  uint64
		after   uint64
		width   CounterWidth
		want    uint64
		wantErr error
	}{
		{name: "no wrap", before: 100, after: 150, width: Width64, want: 50},
		{name: "unchanged", before: 7, after: 7, width: Width64, want: 0},
		{name: "16 bit wrap", before: 65530, after: 4, width: Width16, want: 10},
		{name: "32 bit wrap", before: 4294967290, after: 5, width: Width32, want: 11},
		{name: "32 bit wrap seen as 64 bit counter", before: 4294967290, after: 5, width: Width64, want: 11},
		{name: "16 bit boundary tried first", before: 70000, after: 69990, width: Width64, want: 65526},
		{name: "exact 16 bit distance falls to 32", before: 65536, after: 0, width: Width32, want: 4294901760},
		{name: "64 bit wrap", before: ^uint64(0) - 1, after: 3, width: Width64, want: 5},
		{name: "beyond 16 bit domain", before: 70000, after: 1, width: Width16, wantErr: ErrUnmeasurable},
		{name: "beyond 32 bit domain", before: 1 << 40, after: 1, width: Width32, wantErr: ErrUnmeasurable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CounterDelta(tt.before, tt.after, tt.width)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("CounterDelta(%d, %d) = %d, want %d", tt.before, tt.after, got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	cases := []struct {
		delta   uint64
		elapsed time.Duration
		want    string
	}{
		{2048, time.Second, "2Kps"},
		{2047, time.Second, "1Kps"},
		{1023, time.Second, "0Kps"},
		{10240, 2 * time.Second, "5Kps"},
		{3072, 500 * time.Millisecond, "6Kps"},
	}
	for _, c := range cases {
		got, err := FormatRate(c.delta, c.elapsed)
		if err != nil {
			t.Fatalf("FormatRate(%d, %v) error: %v", c.delta, c.elapsed, err)
		}
		if got != c.want {
			t.Errorf("FormatRate(%d, %v) = %q, want %q", c.delta, c.elapsed, got, c.want)
		}
	}

	if _, err := FormatRate(1, 0); !errors.Is(err, ErrUnmeasurable) {
		t.Fatalf("zero elapsed: err = %v, want ErrUnmeasurable", err)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		0:     "0%",
		42.99: "42%",
		100:   "100%",
	}
	for in, want := range cases {
		if got := FormatPercent(in); got != want {
			t.Errorf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}
