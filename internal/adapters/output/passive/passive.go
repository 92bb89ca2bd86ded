// Package passive renders a report as a monitoring passive check line.
package passive

import (
	"fmt"
	"io"
	"strings"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// Separator sits between the status word and the perfdata tokens.
const Separator = " | "

// Format returns "<status> | key=value;;;; key=value;;;; " with keys in ascending order.
// The four trailing semicolons leave the warn, crit, min and max fields empty.
func Format(status string, r domain.Report) string {
	var b strings.Builder
	b.WriteString(status)
	b.WriteString(Separator)
	for _, k := range r.Keys() {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(r[k])
		b.WriteString(";;;; ")
	}
	return b.String()
}

// Write prints the formatted line followed by a newline.
func Write(w io.Writer, status string, r domain.Report) error {
	if _, err := fmt.Fprintln(w, Format(status, r)); err != nil {
		return fmt.Errorf("write check line: %w", err)
	}
	return nil
}
