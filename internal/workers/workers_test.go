// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var runs atomic.Int32
	count := Func(func(context.Context) { runs.Add(1) })

	ws := New(count, count, count)
	ws.Run(context.Background())

	assert.Equal(t, int32(3), runs.Load())
	assert.Equal(t, 3, ws.Len())
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block on an empty workers list
	New().Run(context.Background())
}

func TestWorkers_Run_WaitsForCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		New(Func(func(ctx context.Context) { <-ctx.Done() })).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("workers returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not return after cancellation")
	}
}

func TestServeUntilDone(t *testing.T) {
	stop := make(chan struct{})
	var shutdowns atomic.Int32

	worker := ServeUntilDone(
		func() { <-stop },
		func() { shutdowns.Add(1); close(stop) },
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	worker.Run(ctx)

	assert.Equal(t, int32(1), shutdowns.Load())
}
