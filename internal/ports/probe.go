// Package ports declares the interfaces services depend on.
package ports

import (
	"context"

	"github.com/vshulcz/hostcheck/internal/domain"
)

// Probe samples one host resource. Collect returns either a populated result or an error.
type Probe interface {
	Name() string
	Collect(ctx context.Context) (domain.MetricResult, error)
}
