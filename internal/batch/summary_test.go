package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/entity"
	"github.com/avelsher/pdfprobe/internal/probe"
)

func result(path string, score float64, recommended string, viable bool, outcomes ...probe.Outcome) entity.Result {
	return entity.Result{
		Path:        path,
		Outcomes:    outcomes,
		Score:       score,
		Bucket:      bucketOf(score),
		Recommended: recommended,
		Viable:      viable,
	}
}

// bucketOf keeps the fixtures honest without importing scoring into every call site.
func bucketOf(score float64) constants.QualityBucket {
	switch {
	case score >= 0.9:
		return constants.BucketExcellent
	case score >= 0.5:
		return constants.BucketGood
	case score > 0:
		return constants.BucketProblematic
	default:
		return constants.BucketFailed
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, []string{"a", "b"})
	assert.Equal(t, 0, s.TotalFiles)
	require.Len(t, s.Backends, 2)
	assert.Equal(t, "a", s.Backends[0].Backend)
	assert.Equal(t, 0, s.Backends[0].Probes)
	assert.Empty(t, s.Problematic)

	_, ok := s.BestBackend()
	assert.False(t, ok)
}

func TestSummarizeCountsAndWins(t *testing.T) {
	names := []string{"alpha", "beta"}
	results := []entity.Result{
		result("1.pdf", 1.0, "alpha", true,
			probe.Outcome{Backend: "alpha", Status: constants.StatusSuccess, Elapsed: 10 * time.Millisecond},
			probe.Outcome{Backend: "beta", Status: constants.StatusSuccess, Elapsed: 30 * time.Millisecond}),
		result("2.pdf", 0.85, "beta", true,
			probe.Outcome{Backend: "alpha", Status: constants.StatusSuccessWarn, Warnings: 1,
				Messages: []probe.Message{{Category: constants.CategoryEncoding, Text: "bad cmap"}},
				Elapsed:  20 * time.Millisecond},
			probe.Outcome{Backend: "beta", Status: constants.StatusSuccess, Elapsed: 10 * time.Millisecond}),
		result("3.pdf", 0.0, "alpha", false,
			probe.Outcome{Backend: "alpha", Status: constants.StatusFailed,
				Messages: []probe.Message{{Category: constants.CategoryStructure, Text: "bad xref"}},
				Elapsed:  30 * time.Millisecond},
			probe.Outcome{Backend: "beta", Status: constants.StatusCrashed,
				Messages: []probe.Message{{Category: constants.CategoryUnknown, Text: "panic"}},
				Elapsed:  20 * time.Millisecond}),
	}

	s := Summarize(results, names)
	assert.Equal(t, 3, s.TotalFiles)
	assert.Equal(t, 1, s.Buckets[constants.BucketExcellent])
	assert.Equal(t, 1, s.Buckets[constants.BucketGood])
	assert.Equal(t, 1, s.Buckets[constants.BucketFailed])
	assert.Equal(t, 1, s.NoViable, "a non-viable file counts nowhere as a win")

	require.Len(t, s.Backends, 2)
	alpha, beta := s.Backends[0], s.Backends[1]
	assert.Equal(t, 3, alpha.Probes)
	assert.Equal(t, 2, alpha.Successes)
	assert.InDelta(t, 2.0/3.0, alpha.SuccessRate, 1e-9)
	assert.Equal(t, 20*time.Millisecond, alpha.AvgElapsed)
	assert.Equal(t, 1, alpha.TotalWarnings)
	assert.Equal(t, 1, alpha.Wins)
	assert.Equal(t, 1, beta.Wins)

	assert.Equal(t, 1, s.Categories[constants.CategoryEncoding])
	assert.Equal(t, 1, s.Categories[constants.CategoryStructure])
	assert.Equal(t, 1, s.Categories[constants.CategoryUnknown])
}

func TestSummarizeProblemRanking(t *testing.T) {
	results := []entity.Result{
		result("fine.pdf", 0.95, "a", true),
		result("edge.pdf", 0.7, "a", true), // at the threshold, not a problem
		result("z-mid.pdf", 0.4, "a", true),
		result("a-mid.pdf", 0.4, "a", true),
		result("worst.pdf", 0.0, "a", false,
			probe.Outcome{Backend: "a", Status: constants.StatusFailed,
				Messages: []probe.Message{{Category: constants.CategoryStructure, Text: "truncated"}}}),
	}

	s := Summarize(results, []string{"a"})
	require.Len(t, s.Problematic, 3)
	assert.Equal(t, "worst.pdf", s.Problematic[0].Path)
	assert.Equal(t, "a-mid.pdf", s.Problematic[1].Path, "equal scores order by path")
	assert.Equal(t, "z-mid.pdf", s.Problematic[2].Path)

	require.Len(t, s.Problematic[0].Issues, 1)
	assert.Contains(t, s.Problematic[0].Issues[0], "a: [structure] truncated")
}

func TestBestBackendTieBreak(t *testing.T) {
	s := entity.Summary{Backends: []entity.BackendStats{
		{Backend: "first", Wins: 2},
		{Backend: "second", Wins: 2},
		{Backend: "third", Wins: 1},
	}}
	best, ok := s.BestBackend()
	require.True(t, ok)
	assert.Equal(t, "first", best.Backend, "ties go to the earlier registration")
}
