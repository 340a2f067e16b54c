package srv

import "context"

// CleanupFunc is a Service that does nothing on start and runs itself on
// shutdown. Place it first in the list so it runs last.
type CleanupFunc func(ctx context.Context) error

func (CleanupFunc) Start(context.Context) error { return nil }

func (f CleanupFunc) Shutdown(ctx context.Context) error {
	if f == nil {
		return nil
	}
	return f(ctx)
}

func NewCleanup(fn func(ctx context.Context) error) Service {
	return CleanupFunc(fn)
}
