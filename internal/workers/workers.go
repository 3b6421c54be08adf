package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// ServeUntilDone turns a blocking serve loop with a separate stop call into a
// [Worker]: serve runs until ctx is done, then shutdown is called and the
// worker waits for serve to return.
func ServeUntilDone(serve, shutdown func()) Worker {
	return Func(func(ctx context.Context) {
		served := make(chan struct{})
		go func() {
			defer close(served)
			serve()
		}()

		<-ctx.Done()
		shutdown()
		<-served
	})
}
