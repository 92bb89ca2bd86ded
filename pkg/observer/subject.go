// Package observer provides a minimal synchronous fan-out of typed events.
package observer

import (
	"context"

	"go.uber.org/multierr"
)

// Observer receives events of type T.
type Observer[T any] interface {
	Notify(context.Context, T) error
}

// ObserverFunc adapts a plain function into an Observer.
//
//revive:disable-next-line:exported
type ObserverFunc[T any] func(context.Context, T) error

// Notify calls f; a nil func is a no-op.
func (f ObserverFunc[T]) Notify(ctx context.Context, evt T) error {
	if f == nil {
		return nil
	}
	return f(ctx, evt)
}

// Subject delivers each published event to its observers in registration order.
// It is meant for single-goroutine use and does no locking.
type Subject[T any] struct {
	observers []Observer[T]
}

func NewSubject[T any](observers ...Observer[T]) *Subject[T] {
	s := &Subject[T]{}
	s.Attach(observers...)
	return s
}

// Attach registers observers, skipping nil ones.
func (s *Subject[T]) Attach(observers ...Observer[T]) {
	for _, o := range observers {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Publish notifies every observer even if some fail, and returns their combined errors.
func (s *Subject[T]) Publish(ctx context.Context, evt T) error {
	if s == nil {
		return nil
	}
	var errs error
	for _, o := range s.observers {
		errs = multierr.Append(errs, o.Notify(ctx, evt))
	}
	return errs
}
