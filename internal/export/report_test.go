package export

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/entity"
	"github.com/avelsher/pdfprobe/internal/probe"
)

func testWriter() *Writer {
	return NewWriter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

func sampleResult() entity.Result {
	n := 120
	return entity.Result{
		Path:     "/corpus/a.pdf",
		FileSize: 4096,
		Outcomes: []probe.Outcome{
			{Backend: "poppler", Status: constants.StatusSuccess, TextLen: &n, Pages: 2, Elapsed: 12 * time.Millisecond},
			{Backend: "mutool", Status: constants.StatusFailed, Warnings: 1,
				Messages: []probe.Message{{Category: constants.CategoryStructure, Text: "bad xref"}}},
		},
		Score:       0.5,
		Bucket:      constants.BucketGood,
		Recommended: "poppler",
		Viable:      true,
	}
}

func sampleReport() Report {
	r := sampleResult()
	return Report{
		GeneratedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		RootDir:     "/corpus",
		Backends:    []string{"poppler", "mutool"},
		TimeoutSec:  30,
		TotalFiles:  1,
		Summary:     entity.Summary{TotalFiles: 1},
		Results:     []entity.Result{r},
	}
}

func TestBuildJSONRoundTrip(t *testing.T) {
	data, err := testWriter().BuildJSON(sampleReport())
	require.NoError(t, err)

	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "/corpus", back.RootDir)
	require.Len(t, back.Results, 1)
	assert.Equal(t, constants.BucketGood, back.Results[0].Bucket)
	require.Len(t, back.Results[0].Outcomes, 2)
	require.NotNil(t, back.Results[0].Outcomes[0].TextLen)
	assert.Equal(t, 120, *back.Results[0].Outcomes[0].TextLen)
}

func TestBuildJSONRejectsNoBackends(t *testing.T) {
	rep := sampleReport()
	rep.Backends = nil

	_, err := testWriter().BuildJSON(rep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestBuildJSONRejectsNonPositiveTimeout(t *testing.T) {
	rep := sampleReport()
	rep.TimeoutSec = 0

	_, err := testWriter().BuildJSON(rep)
	assert.Error(t, err)
}

func TestBuildJSONAllowsEmptyResults(t *testing.T) {
	rep := sampleReport()
	rep.Results = []entity.Result{}
	rep.TotalFiles = 0

	_, err := testWriter().BuildJSON(rep)
	assert.NoError(t, err)
}

func TestBuildTextSummary(t *testing.T) {
	summary := entity.Summary{
		TotalFiles: 3,
		Buckets: map[constants.QualityBucket]int{
			constants.BucketExcellent:   1,
			constants.BucketProblematic: 1,
			constants.BucketFailed:      1,
		},
		Backends: []entity.BackendStats{
			{Backend: "poppler", Probes: 3, Successes: 2, SuccessRate: 2.0 / 3.0,
				AvgElapsed: 15 * time.Millisecond, TotalWarnings: 1, Wins: 2},
			{Backend: "mutool", Probes: 3, Successes: 1, SuccessRate: 1.0 / 3.0, Wins: 0},
		},
		Categories: map[constants.MessageCategory]int{
			constants.CategoryStructure: 2,
			constants.CategoryEncoding:  1,
		},
		Problematic: []entity.ProblemFile{
			{Path: "/corpus/bad.pdf", Score: 0.2, Bucket: constants.BucketProblematic,
				Issues: []string{"poppler: [structure] bad xref"}},
		},
		NoViable: 1,
	}

	out := testWriter().BuildTextSummary(summary)
	assert.Contains(t, out, "PDF BACKEND ANALYSIS SUMMARY")
	assert.Contains(t, out, "Total PDF files analyzed: 3")
	assert.Contains(t, out, "Excellent: 1")
	assert.Contains(t, out, "poppler: 2 files (66.7%)")
	assert.Contains(t, out, "no viable backend: 1 files")
	assert.Contains(t, out, "structure: 2")
	assert.Contains(t, out, "File: /corpus/bad.pdf")
	assert.Contains(t, out, "Score: 20.0%")
	assert.Contains(t, out, "- poppler: [structure] bad xref")
}

func TestBuildTextSummaryTruncatesIssues(t *testing.T) {
	issues := make([]string, maxIssueLines+5)
	for i := range issues {
		issues[i] = "poppler: [structure] issue"
	}
	summary := entity.Summary{
		TotalFiles:  1,
		Buckets:     map[constants.QualityBucket]int{constants.BucketFailed: 1},
		Problematic: []entity.ProblemFile{{Path: "x.pdf", Bucket: constants.BucketFailed, Issues: issues}},
	}

	out := testWriter().BuildTextSummary(summary)
	assert.Contains(t, out, "... and 5 more")
}

func TestRecommendationLine(t *testing.T) {
	summary := entity.Summary{
		TotalFiles: 4,
		Backends: []entity.BackendStats{
			{Backend: "poppler", Wins: 3},
			{Backend: "mutool", Wins: 1},
		},
	}
	assert.Equal(t, "poppler: 3 files (75.0%)", testWriter().RecommendationLine(summary))
}

func TestRecommendationLineNoViable(t *testing.T) {
	summary := entity.Summary{
		TotalFiles: 2,
		Backends:   []entity.BackendStats{{Backend: "poppler"}, {Backend: "mutool"}},
	}
	assert.Equal(t, "no viable backend for any file", testWriter().RecommendationLine(summary))
}
