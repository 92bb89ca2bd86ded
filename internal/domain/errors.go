// Package domain holds the value types shared by both checks: metric maps, counter math and plugin statuses.
package domain

import "errors"

var (
	// ErrUnmeasurable is returned when two counter readings cannot be turned into a delta.
	ErrUnmeasurable = errors.New("counter delta unmeasurable")
	// ErrUnknownProbe indicates a probe name that is not registered.
	ErrUnknownProbe = errors.New("unknown probe")
	// ErrSummaryMissing is returned when the run summary file does not exist.
	ErrSummaryMissing = errors.New("run summary not found")
	// ErrSummaryMalformed indicates a run summary lacking the expected structure.
	ErrSummaryMalformed = errors.New("run summary malformed")
)
