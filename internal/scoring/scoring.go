// Package scoring folds one file's probe outcomes into a composite quality
// score, a bucket, and a backend recommendation.
package scoring

import (
	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/common"
	"github.com/avelsher/pdfprobe/internal/probe"
)

// warning penalty: 0.05 per warning, floored at 0.5
const (
	warningPenalty = 0.05
	warningFloor   = 0.5
)

// Evaluation is the derived per-file verdict.
type Evaluation struct {
	Score       float64
	Bucket      constants.QualityBucket
	Recommended string
	// Viable is false when every backend scored zero; the recommendation is
	// then only the registration-order tie-break, not a genuine suggestion.
	Viable bool
}

// SubScore maps one outcome to its per-backend score in [0, 1].
func SubScore(o probe.Outcome) float64 {
	switch o.Status {
	case constants.StatusSuccess:
		return 1.0
	case constants.StatusSuccessWarn:
		s := 1.0 - warningPenalty*float64(o.Warnings)
		if s < warningFloor {
			s = warningFloor
		}
		return s
	default: // FAILED, TIMED_OUT, CRASHED
		return 0.0
	}
}

// Evaluate scores a file from its ordered outcome sequence. Outcomes must be
// in backend registration order; ties on the best sub-score resolve to the
// earliest-registered backend. An empty sequence is a configuration error.
func Evaluate(outcomes []probe.Outcome) (Evaluation, error) {
	if len(outcomes) == 0 {
		return Evaluation{}, common.NewAppError("CONFIG_ERROR", "no outcomes to score", common.ErrInvalidInput)
	}

	var sum float64
	best := 0
	bestScore := -1.0
	for i, o := range outcomes {
		s := SubScore(o)
		sum += s
		if s > bestScore { // strict: first-registered wins ties
			bestScore = s
			best = i
		}
	}

	score := sum / float64(len(outcomes))
	return Evaluation{
		Score:       score,
		Bucket:      BucketFor(score),
		Recommended: outcomes[best].Backend,
		Viable:      bestScore > 0,
	}, nil
}

// BucketFor maps a composite score to its quality bucket.
func BucketFor(score float64) constants.QualityBucket {
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
