package check

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/pkg/observer"
)

// Outcome is the explicit result of running one probe: either metrics or an error.
type Outcome struct {
	Err      error
	Metrics  domain.MetricResult
	Probe    string
	Duration time.Duration
}

// Available reports whether the probe contributed to the report.
func (o Outcome) Available() bool { return o.Err == nil }

type Outcomes []Outcome

// Unavailable lists the probes that failed, in execution order.
func (outs Outcomes) Unavailable() []string {
	var names []string
	for _, o := range outs {
		if !o.Available() {
			names = append(names, o.Probe)
		}
	}
	return names
}

// Err combines the errors of every failed probe, or returns nil.
func (outs Outcomes) Err() error {
	var errs error
	for _, o := range outs {
		if o.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", o.Probe, o.Err))
		}
	}
	return errs
}

// LogObserver writes each outcome to log: failures at warn, successes at debug.
func LogObserver(log *zap.Logger) observer.Observer[Outcome] {
	return observer.ObserverFunc[Outcome](func(_ context.Context, o Outcome) error {
		if !o.Available() {
			log.Warn("probe unavailable",
				zap.String("probe", o.Probe),
				zap.Duration("duration", o.Duration),
				zap.Error(o.Err),
			)
			return nil
		}
		log.Debug("probe collected",
			zap.String("probe", o.Probe),
			zap.Int("metrics", len(o.Metrics)),
			zap.Duration("duration", o.Duration),
		)
		return nil
	})
}
