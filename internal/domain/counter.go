package domain

import (
	"fmt"
	"strconv"
	"time"
)

// CounterWidth is the bit width a raw OS counter wraps within.
type CounterWidth uint8

const (
	Width16 CounterWidth = 16
	Width32 CounterWidth = 32
	Width64 CounterWidth = 64
)

var wrapBoundaries = []CounterWidth{Width16, Width32, Width64}

// CounterDelta returns the increase between two readings of the same counter.
//
// When after < before the counter is assumed to have wrapped once: the
// boundaries 2^16, 2^32 and 2^64 (up to w) are added in turn to the negative
// difference and the first strictly positive sum wins. If none qualifies the
// readings are inconsistent with w and ErrUnmeasurable is returned.
func CounterDelta(before, after uint64, w CounterWidth) (uint64, error) {
	if after >= before {
		return after - before, nil
	}
	back := before - after
	for _, b := range wrapBoundaries {
		if b > w {
			break
		}
		if b == Width64 {
			// 2^64 - back, computed in modular arithmetic.
			return after - before, nil
		}
		if limit := uint64(1) << b; back < limit {
			return limit - back, nil
		}
	}
	return 0, fmt.Errorf("%d -> %d within %d bits: %w", before, after, w, ErrUnmeasurable)
}

// FormatRate renders a byte delta over elapsed as whole kilobytes per second.
func FormatRate(delta uint64, elapsed time.Duration) (string, error) {
	if elapsed <= 0 {
		return "", fmt.Errorf("elapsed %v: %w", elapsed, ErrUnmeasurable)
	}
	kps := float64(delta) / 1024 / elapsed.Seconds()
	return strconv.FormatInt(int64(kps), 10) + "Kps", nil
}

// FormatPercent truncates p toward zero and appends a percent sign.
func FormatPercent(p float64) string {
	return strconv.FormatInt(int64(p), 10) + "%"
}
