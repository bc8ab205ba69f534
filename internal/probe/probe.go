package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/avelsher/pdfprobe/constants"
)

// Backend is one PDF parsing implementation under test. Implementations are
// stateless: Probe may be called concurrently for different files and must not
// share mutable state across invocations.
type Backend interface {
	Name() string
	// Probe parses path and reports what happened. It never returns an error:
	// any parse failure is folded into an Outcome with StatusFailed. A probe
	// that panics or never returns is handled by the executor, not here.
	Probe(ctx context.Context, path string) Outcome
}

// Message is one warning or error reported by a backend, tagged with a coarse
// category so batch statistics can group them.
type Message struct {
	Category constants.MessageCategory `json:"category"`
	Text     string                    `json:"text"`
}

// Outcome is the result of probing one backend against one file.
//
// Invariants: Status == StatusSuccess implies Warnings == 0, and a terminal
// status (FAILED, TIMED_OUT, CRASHED) implies TextLen == nil.
type Outcome struct {
	Backend  string                `json:"backend"`
	Status   constants.ProbeStatus `json:"status"`
	Warnings int                   `json:"warnings"`
	Messages []Message             `json:"messages,omitempty"`
	// TextLen is the extracted-text length, or nil if the backend does not
	// extract text (or did not get that far).
	TextLen *int          `json:"text_len,omitempty"`
	Pages   int           `json:"pages,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
}

// Succeeded builds a success outcome; warnings flip the status to SUCCESS_WARN.
func Succeeded(backend string, textLen *int, pages int, elapsed time.Duration, msgs ...Message) Outcome {
	status := constants.StatusSuccess
	if len(msgs) > 0 {
		status = constants.StatusSuccessWarn
	}
	return Outcome{
		Backend:  backend,
		Status:   status,
		Warnings: len(msgs),
		Messages: msgs,
		TextLen:  textLen,
		Pages:    pages,
		Elapsed:  elapsed,
	}
}

// Failure builds a FAILED outcome from the backend's own error messages.
func Failure(backend string, elapsed time.Duration, msgs ...Message) Outcome {
	if len(msgs) == 0 {
		msgs = []Message{{Category: constants.CategoryUnknown, Text: "backend reported failure without detail"}}
	}
	return Outcome{
		Backend:  backend,
		Status:   constants.StatusFailed,
		Warnings: len(msgs),
		Messages: msgs,
		Elapsed:  elapsed,
	}
}

// Crash builds a CRASHED outcome with a single fault description.
func Crash(backend, fault string, elapsed time.Duration) Outcome {
	return Outcome{
		Backend:  backend,
		Status:   constants.StatusCrashed,
		Warnings: 1,
		Messages: []Message{{Category: constants.CategoryUnknown, Text: fault}},
		Elapsed:  elapsed,
	}
}

// Timeout builds a TIMED_OUT outcome.
func Timeout(backend string, timeout, elapsed time.Duration) Outcome {
	return Outcome{
		Backend:  backend,
		Status:   constants.StatusTimedOut,
		Warnings: 1,
		Messages: []Message{{
			Category: constants.CategoryUnknown,
			Text:     fmt.Sprintf("probe did not return within %s", timeout),
		}},
		Elapsed: elapsed,
	}
}

func intPtr(n int) *int { return &n }
