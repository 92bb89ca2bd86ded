package domain

import (
	"maps"
	"slices"
)

// MetricResult maps a dotted metric key to its display value as produced by one probe.
type MetricResult map[string]string

// Report is the merged output of every probe in a run.
type Report map[string]string

// Merge returns a fresh report holding acc overlaid with next.
// Keys present in both take the value from next.
func Merge(acc Report, next MetricResult) Report {
	out := make(Report, len(acc)+len(next))
	maps.Copy(out, acc)
	maps.Copy(out, next)
	return out
}

// Keys returns the report keys in ascending order.
func (r Report) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}
