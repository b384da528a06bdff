package execq_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	eq "github.com/azargarov/execq"
)

func TestPumpLoopRunsSubmittedTasks(t *testing.T) {
	t.Parallel()

	q := eq.New()
	loop := eq.NewPumpLoop(q, eq.LoadConfig(""))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(ctx)
	}()

	first := make(chan struct{})
	if err := q.Submit(eq.PriorityHigh, func() { close(first) }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("pump loop did not run the first task")
	}

	// a later submission must be picked up after an idle stretch
	second := make(chan struct{})
	time.Sleep(20 * time.Millisecond)
	if err := q.Submit(eq.PriorityLow, func() { close(second) }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("pump loop did not wake for a task submitted while idle")
	}

	cancel()
	select {
	case err := <-loopDone:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v; want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pump loop did not stop after cancel")
	}
}

func TestPumpLoopBusyBurst(t *testing.T) {
	t.Parallel()

	q := eq.New()
	loop := eq.NewPumpLoop(q, eq.LoadConfig(""))

	const n = 100
	var ran atomic.Int64
	allDone := make(chan struct{})
	for i := 0; i < n; i++ {
		_ = q.Submit(i%3*40, func() {
			if ran.Add(1) == n {
				close(allDone)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(ctx)
	}()

	select {
	case <-allDone:
	case <-time.After(2 * time.Second):
		t.Fatalf("pump loop ran %d of %d burst tasks", ran.Load(), n)
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("Len = %d after burst; want 0", got)
	}

	cancel()
	select {
	case <-loopDone:
	case <-time.After(2 * time.Second):
		t.Fatal("pump loop did not stop after cancel")
	}
}

func TestPumpLoopStopsWhenAlreadyCanceled(t *testing.T) {
	t.Parallel()

	q := eq.New()
	loop := eq.NewPumpLoop(q, eq.LoadConfig(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v; want context.Canceled", err)
	}
}
