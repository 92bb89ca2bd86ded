// Package config resolves tool settings with the precedence ENV > CLI > defaults.
package config

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/logging"
	"github.com/vshulcz/hostcheck/internal/misc"
)

// FromEnvOrFlag returns the environment value when present, otherwise the flag value.
// Flag values already carry their defaults, so def only covers a blank flag.
func FromEnvOrFlag(envKey, flagVal, def string) string {
	if v := misc.Getenv(envKey, ""); v != "" {
		return v
	}
	if v := strings.TrimSpace(flagVal); v != "" {
		return v
	}
	return def
}

// FromEnvOrFlagDuration resolves a positive interval.
func FromEnvOrFlagDuration(envKey string, flagVal time.Duration) (time.Duration, error) {
	d, err := misc.GetDuration(envKey, flagVal)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0, got %v", strings.ToLower(envKey), d)
	}
	return d, nil
}

// FromEnvOrFlagList resolves a comma separated list; an empty result falls back to def.
func FromEnvOrFlagList(envKey string, flagVal, def []string) []string {
	if v := misc.GetList(envKey, nil); len(v) > 0 {
		return v
	}
	var out []string
	for _, item := range flagVal {
		out = append(out, misc.SplitList(item)...)
	}
	if len(out) == 0 {
		return slices.Clone(def)
	}
	return out
}

// FromEnvOrFlagSeconds resolves a non-negative whole number of seconds.
func FromEnvOrFlagSeconds(envKey, name string, flagVal int64) (int64, error) {
	n, err := misc.GetInt64(envKey, flagVal)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be >= 0, got %d", name, n)
	}
	return n, nil
}

func logLevel(flagVal string) (string, error) {
	lvl := FromEnvOrFlag("LOG_LEVEL", flagVal, logging.DefaultLevel)
	if _, err := logging.ParseLevel(lvl); err != nil {
		return "", err
	}
	return lvl, nil
}

func validateProbes(names, known []string) error {
	for _, n := range names {
		if !slices.Contains(known, n) {
			return fmt.Errorf("probe %q: %w", n, domain.ErrUnknownProbe)
		}
	}
	return nil
}

func newFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false
	return fs
}
