package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/probe"
)

type fakeBackend struct {
	name  string
	calls atomic.Int64
	fn    func(ctx context.Context, path string) probe.Outcome
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Probe(ctx context.Context, path string) probe.Outcome {
	f.calls.Add(1)
	return f.fn(ctx, path)
}

func succeeding(name string) *fakeBackend {
	return &fakeBackend{name: name, fn: func(_ context.Context, _ string) probe.Outcome {
		n := 100
		return probe.Succeeded(name, &n, 1, time.Millisecond)
	}}
}

func failing(name string) *fakeBackend {
	return &fakeBackend{name: name, fn: func(_ context.Context, _ string) probe.Outcome {
		return probe.Failure(name, time.Millisecond,
			probe.Message{Category: constants.CategoryStructure, Text: "bad xref"})
	}}
}

func panicking(name string) *fakeBackend {
	return &fakeBackend{name: name, fn: func(_ context.Context, _ string) probe.Outcome {
		panic("backend fault")
	}}
}

func warning(name string, n int) *fakeBackend {
	return &fakeBackend{name: name, fn: func(_ context.Context, _ string) probe.Outcome {
		msgs := make([]probe.Message, n)
		for i := range msgs {
			msgs[i] = probe.Message{Category: constants.CategoryEncoding, Text: "bad cmap"}
		}
		l := 50
		return probe.Succeeded(name, &l, 1, time.Millisecond, msgs...)
	}}
}

func sleeping(name string, d time.Duration) *fakeBackend {
	return &fakeBackend{name: name, fn: func(_ context.Context, _ string) probe.Outcome {
		time.Sleep(d)
		return probe.Succeeded(name, nil, 0, d)
	}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, string(rune('a'+i))+".pdf")
		require.NoError(t, os.WriteFile(paths[i], []byte("%PDF-1.4"), 0o644))
	}
	return paths
}

func newAggregator(t *testing.T, opts Options, backends ...probe.Backend) *Aggregator {
	t.Helper()
	reg, err := probe.NewRegistry(backends...)
	require.NoError(t, err)
	agg, err := NewAggregator(reg, opts, testLogger())
	require.NoError(t, err)
	return agg
}

func TestNewAggregatorRejectsBadConfig(t *testing.T) {
	reg, err := probe.NewRegistry(succeeding("a"))
	require.NoError(t, err)

	_, err = NewAggregator(reg, Options{Timeout: 0, Concurrency: 1}, testLogger())
	assert.Error(t, err, "non-positive timeout")

	_, err = NewAggregator(reg, Options{Timeout: time.Second, Concurrency: 0}, testLogger())
	assert.Error(t, err, "non-positive concurrency")

	_, err = NewAggregator(nil, Options{Timeout: time.Second, Concurrency: 1}, testLogger())
	assert.Error(t, err, "nil registry")
}

func TestAnalyzeProbesEveryPairExactlyOnce(t *testing.T) {
	a, b, c := succeeding("a"), failing("b"), succeeding("c")
	files := writeFiles(t, 5)

	agg := newAggregator(t, Options{Timeout: time.Second, Concurrency: 3}, a, b, c)
	results, err := agg.Analyze(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, int64(5), a.calls.Load())
	assert.Equal(t, int64(5), b.calls.Load())
	assert.Equal(t, int64(5), c.calls.Load())

	for _, r := range results {
		require.Len(t, r.Outcomes, 3)
		// outcome order is registration order regardless of scheduling
		assert.Equal(t, "a", r.Outcomes[0].Backend)
		assert.Equal(t, "b", r.Outcomes[1].Backend)
		assert.Equal(t, "c", r.Outcomes[2].Backend)
	}
}

func TestAnalyzeIsolatesCrashingBackend(t *testing.T) {
	files := writeFiles(t, 3)

	withBomb := newAggregator(t, Options{Timeout: time.Second, Concurrency: 2},
		succeeding("good"), panicking("bomb"), warning("warny", 2))
	resultsWith, err := withBomb.Analyze(context.Background(), files)
	require.NoError(t, err)

	without := newAggregator(t, Options{Timeout: time.Second, Concurrency: 2},
		succeeding("good"), warning("warny", 2))
	resultsWithout, err := without.Analyze(context.Background(), files)
	require.NoError(t, err)

	for i := range resultsWith {
		assert.Equal(t, constants.StatusCrashed, resultsWith[i].Outcomes[1].Status)
		// siblings keep the statuses they had in a run without the crasher
		assert.Equal(t, resultsWithout[i].Outcomes[0].Status, resultsWith[i].Outcomes[0].Status)
		assert.Equal(t, resultsWithout[i].Outcomes[1].Status, resultsWith[i].Outcomes[2].Status)
	}
}

func TestAnalyzeUnreadableFile(t *testing.T) {
	a, b := succeeding("a"), succeeding("b")
	agg := newAggregator(t, Options{Timeout: time.Second, Concurrency: 1}, a, b)

	results, err := agg.Analyze(context.Background(), []string{"/nonexistent/zzz.pdf"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.Len(t, r.Outcomes, 2, "unreadable files still carry one outcome per backend")
	for _, o := range r.Outcomes {
		assert.Equal(t, constants.StatusCrashed, o.Status)
	}
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, constants.BucketFailed, r.Bucket)
	assert.Equal(t, int64(0), a.calls.Load(), "no probe runs for an unreadable file")
	assert.Equal(t, int64(0), b.calls.Load())
}

func TestAnalyzeEmitsOneEventPerProbe(t *testing.T) {
	files := writeFiles(t, 4)

	var mu sync.Mutex
	var events []Event
	opts := Options{
		Timeout:     time.Second,
		Concurrency: 2,
		Progress: func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	}
	agg := newAggregator(t, opts, succeeding("a"), failing("b"))
	_, err := agg.Analyze(context.Background(), files)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, events, 8)
	perFile := map[string]int{}
	for _, ev := range events {
		perFile[ev.Path]++
	}
	for _, f := range files {
		assert.Equal(t, 2, perFile[f])
	}
}

func TestAnalyzeSingleSuccessScenario(t *testing.T) {
	files := writeFiles(t, 1)
	agg := newAggregator(t, Options{Timeout: time.Second, Concurrency: 1}, succeeding("only"))

	results, err := agg.Analyze(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, constants.BucketExcellent, r.Bucket)
	assert.Equal(t, "only", r.Recommended)
	assert.True(t, r.Viable)
}

func TestAnalyzeAllTimedOutScenario(t *testing.T) {
	files := writeFiles(t, 1)
	slow := 300 * time.Millisecond
	agg := newAggregator(t, Options{Timeout: 30 * time.Millisecond, Concurrency: 1},
		sleeping("s1", slow), sleeping("s2", slow), sleeping("s3", slow))

	var mu sync.Mutex
	var timedOut int
	agg.opts.Progress = func(ev Event) {
		mu.Lock()
		if ev.Status == string(constants.StatusTimedOut) {
			timedOut++
		}
		mu.Unlock()
	}

	results, err := agg.Analyze(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, constants.BucketFailed, r.Bucket)
	assert.Equal(t, "s1", r.Recommended, "tie-break falls back to first registered")
	assert.False(t, r.Viable)

	mu.Lock()
	assert.Equal(t, 3, timedOut, "exactly one TimedOut event per backend")
	mu.Unlock()
}

func TestAnalyzeCancellationStopsScheduling(t *testing.T) {
	files := writeFiles(t, 20)
	b := sleeping("slow", 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	agg := newAggregator(t, Options{Timeout: time.Second, Concurrency: 1}, b)

	go func() {
		time.Sleep(75 * time.Millisecond)
		cancel()
	}()

	results, err := agg.Analyze(ctx, files)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, len(results), 20, "cancel must stop new files from being scheduled")
	assert.Less(t, b.calls.Load(), int64(20))
}

func TestAnalyzeConcurrencyIsBounded(t *testing.T) {
	files := writeFiles(t, 8)

	var inFlight, peak atomic.Int32
	b := &fakeBackend{name: "gauge", fn: func(_ context.Context, _ string) probe.Outcome {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		return probe.Succeeded("gauge", nil, 0, 0)
	}}

	agg := newAggregator(t, Options{Timeout: time.Second, Concurrency: 2}, b)
	_, err := agg.Analyze(context.Background(), files)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}
