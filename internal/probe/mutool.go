package probe

import (
	"context"
	"strings"
	"time"

	"github.com/avelsher/pdfprobe/constants"
)

// Mutool probes a file with MuPDF's mutool, the engine a lot of document
// pipelines reach for when poppler chokes on damaged files.
type Mutool struct {
	runner Runner
	bin    string
}

func NewMutool(bin string, runner Runner) *Mutool {
	if bin == "" {
		bin = "mutool"
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Mutool{runner: runner, bin: bin}
}

func (m *Mutool) Name() string { return "mutool" }

func (m *Mutool) Available() bool { return toolOnPath(m.bin) }

func (m *Mutool) Probe(ctx context.Context, path string) Outcome {
	start := time.Now()

	// mutool draw -F txt -o - <path>
	out, errb, err := m.runner.Run(ctx, m.bin, "draw", "-F", "txt", "-o", "-", path)
	if err != nil {
		msgs := classifyLines(string(errb))
		if len(msgs) == 0 {
			msgs = []Message{{Category: constants.CategoryStructure, Text: err.Error()}}
		}
		return Failure(m.Name(), time.Since(start), msgs...)
	}

	// mutool prints per-page progress and repair notes to stderr; progress
	// lines ("page <n>") are noise, the rest are genuine warnings
	var warns []Message
	for _, line := range strings.Split(string(errb), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "page ") {
			continue
		}
		warns = append(warns, Message{Category: Classify(line), Text: line})
	}

	text := string(out)
	pages := strings.Count(text, "\f")
	if pages == 0 && len(text) > 0 {
		pages = 1
	}

	return Succeeded(m.Name(), intPtr(len(text)), pages, time.Since(start), warns...)
}
