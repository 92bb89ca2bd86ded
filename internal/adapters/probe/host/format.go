package host

import (
	"strconv"
	"strings"
)

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatFloat keeps the shortest exact decimal, e.g. 0.52 or 12.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTenths(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func key(parts ...string) string {
	return strings.Join(parts, ".")
}
