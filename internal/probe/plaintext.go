package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/avelsher/pdfprobe/constants"
)

// Plaintext probes a file with the pure-Go ledongthuc/pdf reader. The library
// is quick but brittle on malformed content streams, so page extraction runs
// behind a recover and downgrades per-page panics to warnings, the same way
// the exec backends downgrade stderr noise.
type Plaintext struct{}

func NewPlaintext() *Plaintext { return &Plaintext{} }

func (*Plaintext) Name() string { return "plaintext" }

func (b *Plaintext) Probe(ctx context.Context, path string) Outcome {
	start := time.Now()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Failure(b.Name(), time.Since(start),
			Message{Category: constants.CategoryStructure, Text: err.Error()})
	}
	defer f.Close()

	total := r.NumPage()
	var sb strings.Builder
	var warns []Message
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			warns = append(warns, Message{Category: constants.CategoryUnknown,
				Text: fmt.Sprintf("stopped at page %d: %v", i, err)})
			break
		}
		text, err := extractPage(r, i)
		if err != nil {
			warns = append(warns, Message{Category: constants.CategoryText,
				Text: fmt.Sprintf("page %d: %v", i, err)})
			continue
		}
		sb.WriteString(text)
	}

	return Succeeded(b.Name(), intPtr(sb.Len()), total, time.Since(start), warns...)
}

// extractPage isolates the library's panics on broken pages.
func extractPage(r *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extraction panic: %v", rec)
		}
	}()
	p := r.Page(n)
	if p.V.IsNull() {
		return "", fmt.Errorf("page object is null")
	}
	return p.GetPlainText(nil)
}
