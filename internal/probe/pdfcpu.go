package probe

import (
	"context"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/avelsher/pdfprobe/constants"
)

// PDFCPU probes a file with pdfcpu's structural validator. It is the one
// backend that never extracts text, so its outcomes always carry a nil text
// length.
type PDFCPU struct{}

func NewPDFCPU() *PDFCPU { return &PDFCPU{} }

func (*PDFCPU) Name() string { return "pdfcpu" }

func (b *PDFCPU) Probe(ctx context.Context, path string) Outcome {
	start := time.Now()

	if err := api.ValidateFile(path, nil); err != nil {
		return Failure(b.Name(), time.Since(start),
			Message{Category: constants.CategoryStructure, Text: err.Error()})
	}

	if err := ctx.Err(); err != nil {
		// batch already gave up on us; report the interruption rather than
		// pretend the remaining steps ran
		return Failure(b.Name(), time.Since(start),
			Message{Category: constants.CategoryUnknown, Text: err.Error()})
	}

	var warns []Message
	pages, err := api.PageCountFile(path)
	if err != nil {
		warns = append(warns, Message{Category: constants.CategoryStructure, Text: "page count: " + err.Error()})
	}

	return Succeeded(b.Name(), nil, pages, time.Since(start), warns...)
}
