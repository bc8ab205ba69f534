package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
)

func TestMutoolCleanExtraction(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"mutool": {stdout: "first\fsecond\f", stderr: "page 1\npage 2\n"},
	}}
	m := NewMutool("", runner)

	out := m.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, constants.StatusSuccess, out.Status, "progress lines are not warnings")
	assert.Equal(t, 2, out.Pages)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "mutool draw -F txt -o - doc.pdf", runner.calls[0])
}

func TestMutoolRepairNotesBecomeWarnings(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"mutool": {stdout: "text\f", stderr: "page 1\nwarning: repairing PDF document\n"},
	}}
	m := NewMutool("", runner)

	out := m.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, constants.StatusSuccessWarn, out.Status)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, constants.CategoryStructure, out.Messages[0].Category)
}

func TestMutoolFailure(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"mutool": {stderr: "error: cannot find startxref\n", err: errors.New("exit status 1")},
	}}
	m := NewMutool("", runner)

	out := m.Probe(context.Background(), "broken.pdf")
	assert.Equal(t, constants.StatusFailed, out.Status)
	assert.Nil(t, out.TextLen)
	assert.Equal(t, constants.CategoryStructure, out.Messages[0].Category)
}

func TestMutoolSinglePageWithoutFormFeed(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"mutool": {stdout: "just one page, no separator"},
	}}
	m := NewMutool("", runner)

	out := m.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, 1, out.Pages)
}
