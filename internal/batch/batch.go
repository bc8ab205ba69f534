// Package batch runs every registered backend against every file, bounded by
// a file-level concurrency limit, and reduces the per-file results into
// corpus statistics.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avelsher/pdfprobe/internal/common"
	"github.com/avelsher/pdfprobe/internal/entity"
	"github.com/avelsher/pdfprobe/internal/executor"
	"github.com/avelsher/pdfprobe/internal/probe"
	"github.com/avelsher/pdfprobe/internal/scoring"
)

// Event is emitted once per completed (file, backend) probe; an external
// progress indicator consumes the stream.
type Event struct {
	Path    string
	Backend string
	Status  string
	Elapsed time.Duration
}

// Options configures a run. Progress may be nil; it is invoked from worker
// goroutines and must be safe for concurrent use.
type Options struct {
	Timeout     time.Duration
	Concurrency int
	Progress    func(Event)
}

func (o Options) validate() error {
	if o.Timeout <= 0 {
		return common.NewAppError("CONFIG_ERROR", "probe timeout must be positive", common.ErrInvalidInput)
	}
	if o.Concurrency < 1 {
		return common.NewAppError("CONFIG_ERROR", "concurrency must be at least 1", common.ErrInvalidInput)
	}
	return nil
}

// Aggregator owns a run: the fixed backend registry plus run options.
type Aggregator struct {
	reg    *probe.Registry
	opts   Options
	logger *slog.Logger
}

func NewAggregator(reg *probe.Registry, opts Options, logger *slog.Logger) (*Aggregator, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, common.NewAppError("CONFIG_ERROR", "at least one backend is required", common.ErrInvalidInput)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{reg: reg, opts: opts, logger: logger}, nil
}

// Analyze probes every file with every registered backend, files in parallel
// up to Concurrency, backends in registration order within a file. A crash or
// timeout on one (file, backend) pair never disturbs any other pair. On
// context cancellation no new files are scheduled; in-flight files finish and
// the completed results are returned alongside ctx.Err().
func (a *Aggregator) Analyze(ctx context.Context, files []string) ([]entity.Result, error) {
	results := make([]entity.Result, len(files))
	completed := make([]bool, len(files))

	g := new(errgroup.Group)
	g.SetLimit(a.opts.Concurrency)

	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = a.analyzeFile(ctx, path)
			completed[i] = true
			return nil
		})
	}
	// workers never return errors; Wait only joins them
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		done := results[:0:0]
		for i := range results {
			if completed[i] {
				done = append(done, results[i])
			}
		}
		return done, err
	}
	return results, nil
}

func (a *Aggregator) analyzeFile(ctx context.Context, path string) entity.Result {
	var size int64
	outcomes := make([]probe.Outcome, 0, a.reg.Len())

	f, err := os.Open(path)
	if err != nil {
		// no backend can be meaningfully probed; record one crashed-equivalent
		// outcome per backend so the file still lands in the statistics
		a.logger.Warn("batch.file.unreadable", "path", path, "err", err)
		for _, b := range a.reg.Backends() {
			o := probe.Crash(b.Name(), fmt.Sprintf("file access: %v", err), 0)
			outcomes = append(outcomes, o)
			a.emit(path, o)
		}
		return a.finish(path, 0, outcomes)
	}
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	_ = f.Close()

	for _, b := range a.reg.Backends() {
		o := executor.Run(ctx, b, path, a.opts.Timeout)
		switch {
		case o.Status.OK():
			a.logger.Debug("batch.probe.ok", "path", path, "backend", b.Name(),
				"status", o.Status, "warnings", o.Warnings, "elapsed_ms", o.Elapsed.Milliseconds())
		default:
			a.logger.Debug("batch.probe.bad", "path", path, "backend", b.Name(),
				"status", o.Status, "elapsed_ms", o.Elapsed.Milliseconds())
		}
		outcomes = append(outcomes, o)
		a.emit(path, o)
	}
	return a.finish(path, size, outcomes)
}

func (a *Aggregator) finish(path string, size int64, outcomes []probe.Outcome) entity.Result {
	ev, err := scoring.Evaluate(outcomes)
	if err != nil {
		// unreachable: the registry guarantees at least one backend
		a.logger.Error("batch.score.failed", "path", path, "err", err)
	}
	return entity.Result{
		Path:        path,
		FileSize:    size,
		Outcomes:    outcomes,
		Score:       ev.Score,
		Bucket:      ev.Bucket,
		Recommended: ev.Recommended,
		Viable:      ev.Viable,
	}
}

func (a *Aggregator) emit(path string, o probe.Outcome) {
	if a.opts.Progress == nil {
		return
	}
	a.opts.Progress(Event{Path: path, Backend: o.Backend, Status: string(o.Status), Elapsed: o.Elapsed})
}
