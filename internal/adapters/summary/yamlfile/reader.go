// Package yamlfile reads Puppet's last_run_summary.yaml.
package yamlfile

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/ports"
)

// DefaultPath is where the Puppet agent leaves its run summary.
const DefaultPath = "/var/lib/puppet/state/last_run_summary.yaml"

type Reader struct{}

var _ ports.SummaryReader = Reader{}

func New() Reader { return Reader{} }

// Read loads the summary at path.
//
// A path that is absent or not a regular file yields domain.ErrSummaryMissing.
// Unparsable YAML, a missing events.failure entry, or (for runs without
// failures) a missing or non-numeric time.last_run yields domain.ErrSummaryMalformed.
func (Reader) Read(path string) (ports.Summary, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !fi.Mode().IsRegular()) {
		return ports.Summary{}, fmt.Errorf("%s: %w", path, domain.ErrSummaryMissing)
	}
	if err != nil {
		return ports.Summary{}, fmt.Errorf("stat summary: %w", err)
	}

	raw, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return ports.Summary{}, fmt.Errorf("read summary: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a summary document.
func Parse(raw []byte) (ports.Summary, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ports.Summary{}, fmt.Errorf("%w: %v", domain.ErrSummaryMalformed, err)
	}

	failure, ok := lookup(doc, "events", "failure")
	if !ok {
		return ports.Summary{}, fmt.Errorf("%w: no events.failure", domain.ErrSummaryMalformed)
	}
	if truthy(failure) {
		return ports.Summary{Failed: true}, nil
	}

	lr, ok := lookup(doc, "time", "last_run")
	if !ok {
		return ports.Summary{}, fmt.Errorf("%w: no time.last_run", domain.ErrSummaryMalformed)
	}
	lastRun, err := epochSeconds(lr)
	if err != nil {
		return ports.Summary{}, fmt.Errorf("%w: time.last_run: %v", domain.ErrSummaryMalformed, err)
	}
	return ports.Summary{LastRun: lastRun}, nil
}

func lookup(doc map[string]any, section, field string) (any, bool) {
	sec, ok := doc[section].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := sec[field]
	return v, ok
}

// truthy treats zero, empty and null failure indicators as "no failures".
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

func epochSeconds(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("out of range: %d", x)
		}
		return int64(x), nil
	case float64:
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
