// Package puppet classifies the freshness of the last Puppet agent run.
package puppet

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/ports"
)

const (
	msgNeverRun   = "Puppet has never run, no %s found."
	msgMalformed  = "Yaml file not properly formatted, last puppet run failed."
	msgUnreadable = "Unable to read %s: %v"
	msgFailures   = "Puppet status file lists failures."
	msgFuture     = "Puppet summary file modified in the future!"
	msgLastRun    = "Puppet was last run %s"
)

// Input is everything Classify needs from reading the summary file.
type Input struct {
	Err     error
	Path    string
	Summary ports.Summary
}

// Classify maps a summary read result to a verdict. Thresholds are
// exclusive: an elapsed time equal to Warn is still OK.
func Classify(in Input, th domain.Thresholds, now time.Time) domain.Verdict {
	switch {
	case errors.Is(in.Err, domain.ErrSummaryMissing):
		return domain.Verdict{Status: domain.Warning, Message: fmt.Sprintf(msgNeverRun, in.Path)}
	case errors.Is(in.Err, domain.ErrSummaryMalformed):
		return domain.Verdict{Status: domain.Critical, Message: msgMalformed}
	case in.Err != nil:
		return domain.Verdict{Status: domain.Critical, Message: fmt.Sprintf(msgUnreadable, in.Path, in.Err)}
	case in.Summary.Failed:
		return domain.Verdict{Status: domain.Critical, Message: msgFailures}
	}

	last := time.Unix(in.Summary.LastRun, 0)
	if last.After(now) {
		return domain.Verdict{Status: domain.Warning, Message: msgFuture}
	}

	elapsed := now.Sub(last)
	msg := fmt.Sprintf(msgLastRun, Humanize(elapsed))
	switch {
	case exceeds(elapsed, th.Crit):
		return domain.Verdict{Status: domain.Critical, Message: msg}
	case exceeds(elapsed, th.Warn):
		return domain.Verdict{Status: domain.Warning, Message: msg}
	default:
		return domain.Verdict{Status: domain.OK, Message: msg}
	}
}

// maxLimit is the largest threshold, in seconds, a time.Duration can hold.
const maxLimit = int64(math.MaxInt64 / time.Second)

// exceeds reports whether elapsed is strictly longer than limit seconds.
// Limits too large for a time.Duration are never exceeded.
func exceeds(elapsed time.Duration, limit int64) bool {
	if limit > maxLimit {
		return false
	}
	return elapsed > time.Duration(limit)*time.Second
}
