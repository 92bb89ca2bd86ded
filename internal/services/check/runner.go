// Package check runs host probes one after another and folds their results into a single report.
package check

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/ports"
	"github.com/vshulcz/hostcheck/pkg/observer"
)

// Runner executes its probes strictly sequentially. A failing or panicking
// probe contributes nothing and never stops the remaining ones.
type Runner struct {
	log    *zap.Logger
	events *observer.Subject[Outcome]
	now    func() time.Time
	probes []ports.Probe
}

// New builds a Runner. Outcomes reach observers registered with Observe;
// log only records observer failures.
func New(log *zap.Logger, probes ...ports.Probe) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		log:    log,
		events: observer.NewSubject[Outcome](),
		now:    time.Now,
		probes: probes,
	}
}

// Observe registers outcome observers, notified in registration order.
func (r *Runner) Observe(obs ...observer.Observer[Outcome]) {
	r.events.Attach(obs...)
}

// Run executes every probe in order and returns the merged report plus one outcome per probe.
func (r *Runner) Run(ctx context.Context) (domain.Report, Outcomes) {
	report := domain.Report{}
	outcomes := make(Outcomes, 0, len(r.probes))
	for _, p := range r.probes {
		start := r.now()
		res, err := r.collect(ctx, p)
		o := Outcome{Probe: p.Name(), Duration: r.now().Sub(start), Err: err}
		if err == nil {
			o.Metrics = res
			report = domain.Merge(report, res)
		}
		outcomes = append(outcomes, o)

		if perr := r.events.Publish(ctx, o); perr != nil {
			r.log.Warn("outcome observer failed", zap.String("probe", o.Probe), zap.Error(perr))
		}
	}
	return report, outcomes
}

func (r *Runner) collect(ctx context.Context, p ports.Probe) (res domain.MetricResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res, err = nil, fmt.Errorf("probe panicked: %v", rec)
		}
	}()
	return p.Collect(ctx)
}
