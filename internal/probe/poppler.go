package probe

import (
	"context"
	"strings"
	"time"

	"github.com/avelsher/pdfprobe/constants"
)

// Poppler probes a file with the poppler-utils tools: pdftotext for text
// extraction and pdfinfo for the document info dictionary.
type Poppler struct {
	runner    Runner
	pdftotext string
	pdfinfo   string
}

type PopplerConfig struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdfinfo   string // binary name or absolute path; if empty -> "pdfinfo"
}

func NewPoppler(cfg PopplerConfig, runner Runner) *Poppler {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Poppler{runner: runner, pdftotext: cfg.Pdftotext, pdfinfo: cfg.Pdfinfo}
}

func (p *Poppler) Name() string { return "poppler" }

func (p *Poppler) Available() bool { return toolOnPath(p.pdftotext) && toolOnPath(p.pdfinfo) }

func (p *Poppler) Probe(ctx context.Context, path string) Outcome {
	start := time.Now()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := p.runner.Run(ctx, p.pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		msgs := classifyLines(string(errb))
		if len(msgs) == 0 {
			msgs = []Message{{Category: constants.CategoryStructure, Text: err.Error()}}
		}
		return Failure(p.Name(), time.Since(start), msgs...)
	}

	// poppler writes recoverable problems (syntax warnings, bad xref entries)
	// to stderr while still producing output
	warns := classifyLines(string(errb))

	text := string(out)
	pages := 1 + strings.Count(text, "\f") // form-feed separates pages

	// info dict; failure here degrades to a metadata warning, not a probe failure
	if _, infoErr, err := p.runner.Run(ctx, p.pdfinfo, path); err != nil {
		detail := strings.TrimSpace(string(infoErr))
		if detail == "" {
			detail = err.Error()
		}
		warns = append(warns, Message{Category: constants.CategoryMetadata, Text: "pdfinfo: " + detail})
	}

	return Succeeded(p.Name(), intPtr(len(text)), pages, time.Since(start), warns...)
}
