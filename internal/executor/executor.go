// Package executor bounds a single probe invocation: whether the backend
// returns, panics, or hangs, the caller gets an Outcome back within the
// timeout plus scheduling slack.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/avelsher/pdfprobe/internal/probe"
)

// Run executes b.Probe(path) in its own goroutine.
//
// Three cases:
//   - the probe returns in time: its Outcome is passed through verbatim;
//   - the probe panics: the panic is recovered into a CRASHED Outcome and
//     never reaches the caller;
//   - the probe is still running at the deadline: a TIMED_OUT Outcome is
//     returned immediately and the goroutine is abandoned.
//
// The result channel is buffered so an abandoned goroutine can always deliver
// its (ignored) outcome and exit; nothing is ever joined synchronously, and
// the probe's context is cancelled when Run returns, so exec-backed probes
// get their child process killed. Concurrent abandoned goroutines are
// therefore bounded by how many Runs the caller has in flight.
func Run(ctx context.Context, b probe.Backend, path string, timeout time.Duration) probe.Outcome {
	start := time.Now()

	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan probe.Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- probe.Crash(b.Name(), fmt.Sprintf("probe panic: %v", r), time.Since(start))
			}
		}()
		done <- b.Probe(pctx, path)
	}()

	select {
	case out := <-done:
		return out
	case <-pctx.Done():
		// give a probe that raced the deadline one last chance to hand over
		// a real outcome before we write it off
		select {
		case out := <-done:
			return out
		default:
		}
		return probe.Timeout(b.Name(), timeout, time.Since(start))
	}
}
