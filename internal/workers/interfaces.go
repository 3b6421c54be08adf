// Package workers runs long-lived background tasks side by side and waits
// for all of them to wind down.
package workers

import "context"

// Worker is a long-lived task. Run blocks until ctx is done and the worker
// has released its resources.
type Worker interface {
	Run(ctx context.Context)
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context)

func (f Func) Run(ctx context.Context) {
	f(ctx)
}
