package probe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
)

// fakeRunner replays canned (stdout, stderr, err) per binary name.
type fakeRunner struct {
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	r := f.responses[name]
	return []byte(r.stdout), []byte(r.stderr), r.err
}

func TestPopplerCleanExtraction(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"pdftotext": {stdout: "page one\fpage two\fpage three"},
		"pdfinfo":   {stdout: "Pages: 3\nProducer: test"},
	}}
	p := NewPoppler(PopplerConfig{}, runner)

	out := p.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.Equal(t, 3, out.Pages)
	require.NotNil(t, out.TextLen)
	assert.Equal(t, len("page one\fpage two\fpage three"), *out.TextLen)
	assert.Equal(t, 0, out.Warnings)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "pdftotext -layout -enc UTF-8 -eol unix doc.pdf -", runner.calls[0])
	assert.Equal(t, "pdfinfo doc.pdf", runner.calls[1])
}

func TestPopplerStderrBecomesWarnings(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"pdftotext": {stdout: "some text", stderr: "Syntax Warning: bad xref entry\nInvalid CMap\n"},
		"pdfinfo":   {stdout: "Pages: 1"},
	}}
	p := NewPoppler(PopplerConfig{}, runner)

	out := p.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, constants.StatusSuccessWarn, out.Status)
	assert.Equal(t, 2, out.Warnings)
	assert.Equal(t, constants.CategoryStructure, out.Messages[0].Category)
	assert.Equal(t, constants.CategoryEncoding, out.Messages[1].Category)
}

func TestPopplerExtractionFailure(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"pdftotext": {stderr: "Syntax Error: Couldn't read xref table", err: errors.New("exit status 1")},
	}}
	p := NewPoppler(PopplerConfig{}, runner)

	out := p.Probe(context.Background(), "broken.pdf")
	assert.Equal(t, constants.StatusFailed, out.Status)
	assert.Nil(t, out.TextLen)
	require.NotEmpty(t, out.Messages)
	assert.Equal(t, constants.CategoryStructure, out.Messages[0].Category)
	// pdfinfo is pointless once extraction failed
	require.Len(t, runner.calls, 1)
}

func TestPopplerFailureWithoutStderr(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"pdftotext": {err: errors.New("exit status 99")},
	}}
	p := NewPoppler(PopplerConfig{}, runner)

	out := p.Probe(context.Background(), "broken.pdf")
	assert.Equal(t, constants.StatusFailed, out.Status)
	require.Len(t, out.Messages, 1)
	assert.Contains(t, out.Messages[0].Text, "exit status 99")
}

func TestPopplerInfoFailureDowngradesToWarning(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"pdftotext": {stdout: "text"},
		"pdfinfo":   {stderr: "May not be a PDF file", err: errors.New("exit status 1")},
	}}
	p := NewPoppler(PopplerConfig{}, runner)

	out := p.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, constants.StatusSuccessWarn, out.Status)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, constants.CategoryMetadata, out.Messages[0].Category)
	assert.Contains(t, out.Messages[0].Text, "pdfinfo:")
}

func TestPopplerCustomBinaries(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResponse{
		"/opt/poppler/pdftotext": {stdout: "x"},
		"/opt/poppler/pdfinfo":   {stdout: "Pages: 1"},
	}}
	p := NewPoppler(PopplerConfig{
		Pdftotext: "/opt/poppler/pdftotext",
		Pdfinfo:   "/opt/poppler/pdfinfo",
	}, runner)

	out := p.Probe(context.Background(), "doc.pdf")
	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.True(t, strings.HasPrefix(runner.calls[0], "/opt/poppler/pdftotext "))
}
