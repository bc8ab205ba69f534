package executor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/probe"
)

type fakeBackend struct {
	name string
	fn   func(ctx context.Context, path string) probe.Outcome
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Probe(ctx context.Context, path string) probe.Outcome {
	return f.fn(ctx, path)
}

func TestRunPassesOutcomeThrough(t *testing.T) {
	b := &fakeBackend{name: "ok", fn: func(_ context.Context, path string) probe.Outcome {
		n := 42
		return probe.Succeeded("ok", &n, 3, 5*time.Millisecond)
	}}

	out := Run(context.Background(), b, "x.pdf", time.Second)
	assert.Equal(t, constants.StatusSuccess, out.Status)
	require.NotNil(t, out.TextLen)
	assert.Equal(t, 42, *out.TextLen)
	assert.Equal(t, 3, out.Pages)
}

func TestRunTimesOutWithinBudget(t *testing.T) {
	b := &fakeBackend{name: "sleepy", fn: func(_ context.Context, _ string) probe.Outcome {
		time.Sleep(500 * time.Millisecond) // 5x the timeout
		return probe.Succeeded("sleepy", nil, 0, 0)
	}}

	start := time.Now()
	out := Run(context.Background(), b, "x.pdf", 100*time.Millisecond)
	elapsed := time.Since(start)

	assert.Equal(t, constants.StatusTimedOut, out.Status)
	assert.Less(t, elapsed, 250*time.Millisecond, "caller must get control back near the deadline")
	assert.Equal(t, "sleepy", out.Backend)
	require.Len(t, out.Messages, 1)
	assert.Nil(t, out.TextLen)
}

func TestRunRecoversPanic(t *testing.T) {
	b := &fakeBackend{name: "bomb", fn: func(_ context.Context, _ string) probe.Outcome {
		panic("boom")
	}}

	var out probe.Outcome
	require.NotPanics(t, func() {
		out = Run(context.Background(), b, "x.pdf", time.Second)
	})
	assert.Equal(t, constants.StatusCrashed, out.Status)
	require.Len(t, out.Messages, 1)
	assert.Contains(t, out.Messages[0].Text, "boom")
	assert.Nil(t, out.TextLen)
}

func TestRunCancelsProbeContextOnTimeout(t *testing.T) {
	cancelled := make(chan struct{})
	b := &fakeBackend{name: "watcher", fn: func(ctx context.Context, _ string) probe.Outcome {
		<-ctx.Done()
		close(cancelled)
		return probe.Failure("watcher", 0)
	}}

	out := Run(context.Background(), b, "x.pdf", 50*time.Millisecond)
	assert.Equal(t, constants.StatusTimedOut, out.Status)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("abandoned probe never observed cancellation")
	}
}

func TestRunAbandonedGoroutinesDrain(t *testing.T) {
	var running atomic.Int32
	b := &fakeBackend{name: "slow", fn: func(_ context.Context, _ string) probe.Outcome {
		running.Add(1)
		defer running.Add(-1)
		time.Sleep(100 * time.Millisecond)
		return probe.Succeeded("slow", nil, 0, 0)
	}}

	for i := 0; i < 20; i++ {
		out := Run(context.Background(), b, "x.pdf", 10*time.Millisecond)
		assert.Equal(t, constants.StatusTimedOut, out.Status)
	}

	// every abandoned unit finishes on its own; nothing accumulates
	assert.Eventually(t, func() bool { return running.Load() == 0 },
		2*time.Second, 20*time.Millisecond)
}

func TestRunParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := &fakeBackend{name: "stuck", fn: func(_ context.Context, _ string) probe.Outcome {
		time.Sleep(2 * time.Second) // ignores cancellation
		return probe.Succeeded("stuck", nil, 0, 0)
	}}

	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	out := Run(ctx, b, "x.pdf", 10*time.Second)
	assert.Equal(t, constants.StatusTimedOut, out.Status)
	assert.Less(t, time.Since(start), time.Second, "batch cancel must not wait out the full timeout")
}
