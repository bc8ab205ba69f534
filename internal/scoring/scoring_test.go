package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/probe"
)

func outcome(backend string, status constants.ProbeStatus, warnings int) probe.Outcome {
	o := probe.Outcome{Backend: backend, Status: status, Warnings: warnings}
	return o
}

func TestSubScore(t *testing.T) {
	tests := []struct {
		name string
		o    probe.Outcome
		want float64
	}{
		{"success", outcome("a", constants.StatusSuccess, 0), 1.0},
		{"one warning", outcome("a", constants.StatusSuccessWarn, 1), 0.95},
		{"four warnings", outcome("a", constants.StatusSuccessWarn, 4), 0.8},
		{"ten warnings hits floor", outcome("a", constants.StatusSuccessWarn, 10), 0.5},
		{"fifty warnings stays at floor", outcome("a", constants.StatusSuccessWarn, 50), 0.5},
		{"failed", outcome("a", constants.StatusFailed, 1), 0.0},
		{"timed out", outcome("a", constants.StatusTimedOut, 1), 0.0},
		{"crashed", outcome("a", constants.StatusCrashed, 1), 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SubScore(tt.o), 1e-9)
		})
	}
}

func TestSubScoreMonotonicInWarnings(t *testing.T) {
	prev := 1.0
	for w := 1; w <= 30; w++ {
		s := SubScore(outcome("a", constants.StatusSuccessWarn, w))
		assert.LessOrEqual(t, s, prev, "warnings=%d", w)
		assert.GreaterOrEqual(t, s, 0.5)
		prev = s
	}
}

func TestEvaluateEmptyIsConfigError(t *testing.T) {
	_, err := Evaluate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
}

func TestEvaluateAllSuccessIsPerfect(t *testing.T) {
	ev, err := Evaluate([]probe.Outcome{
		outcome("a", constants.StatusSuccess, 0),
		outcome("b", constants.StatusSuccess, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ev.Score)
	assert.Equal(t, constants.BucketExcellent, ev.Bucket)
	assert.Equal(t, "a", ev.Recommended) // tie resolves to first registered
	assert.True(t, ev.Viable)
}

func TestEvaluateAllTerminalIsZero(t *testing.T) {
	ev, err := Evaluate([]probe.Outcome{
		outcome("a", constants.StatusFailed, 1),
		outcome("b", constants.StatusTimedOut, 1),
		outcome("c", constants.StatusCrashed, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, ev.Score)
	assert.Equal(t, constants.BucketFailed, ev.Bucket)
	assert.Equal(t, "a", ev.Recommended)
	assert.False(t, ev.Viable, "a zero recommendation is only the tie-break default")
}

func TestEvaluateMixedWarningsAndFailure(t *testing.T) {
	// 4 warnings -> 0.8, failure -> 0.0, mean 0.4
	ev, err := Evaluate([]probe.Outcome{
		outcome("warny", constants.StatusSuccessWarn, 4),
		outcome("broken", constants.StatusFailed, 1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, ev.Score, 1e-9)
	assert.Equal(t, constants.BucketProblematic, ev.Bucket)
	assert.Equal(t, "warny", ev.Recommended)
	assert.True(t, ev.Viable)
}

func TestEvaluateRecommendationIsMaximal(t *testing.T) {
	outcomes := []probe.Outcome{
		outcome("a", constants.StatusSuccessWarn, 8), // 0.6
		outcome("b", constants.StatusSuccess, 0),     // 1.0
		outcome("c", constants.StatusSuccess, 0),     // 1.0, loses tie to b
		outcome("d", constants.StatusFailed, 1),      // 0.0
	}
	ev, err := Evaluate(outcomes)
	require.NoError(t, err)
	assert.Equal(t, "b", ev.Recommended)

	max := 0.0
	for _, o := range outcomes {
		if s := SubScore(o); s > max {
			max = s
		}
	}
	for _, o := range outcomes {
		if o.Backend == ev.Recommended {
			assert.Equal(t, max, SubScore(o))
		}
	}
}

func TestEvaluateScoreBounds(t *testing.T) {
	statuses := []constants.ProbeStatus{
		constants.StatusSuccess, constants.StatusSuccessWarn,
		constants.StatusFailed, constants.StatusTimedOut, constants.StatusCrashed,
	}
	for _, s1 := range statuses {
		for _, s2 := range statuses {
			ev, err := Evaluate([]probe.Outcome{
				outcome("a", s1, 3),
				outcome("b", s2, 3),
			})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, ev.Score, 0.0)
			assert.LessOrEqual(t, ev.Score, 1.0)
		}
	}
}

func TestBucketThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  constants.QualityBucket
	}{
		{1.0, constants.BucketExcellent},
		{0.9, constants.BucketExcellent},
		{0.89, constants.BucketGood},
		{0.5, constants.BucketGood},
		{0.49, constants.BucketProblematic},
		{0.01, constants.BucketProblematic},
		{0.0, constants.BucketFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.score), "score=%v", tt.score)
	}
}
