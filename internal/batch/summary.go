package batch

import (
	"fmt"
	"sort"
	"time"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/entity"
)

// files at or above this score are left out of the problem ranking
const problemThreshold = 0.7

// Summarize reduces a result set to corpus statistics. backendNames must be
// the registration-order names, so per-backend rows come out deterministic
// even though results may arrive in any order.
func Summarize(results []entity.Result, backendNames []string) entity.Summary {
	s := entity.Summary{
		TotalFiles: len(results),
		Buckets:    make(map[constants.QualityBucket]int, len(constants.Buckets)),
		Categories: make(map[constants.MessageCategory]int),
	}

	byBackend := make(map[string]*entity.BackendStats, len(backendNames))
	for _, name := range backendNames {
		st := &entity.BackendStats{Backend: name}
		byBackend[name] = st
	}

	var elapsedSum = make(map[string]time.Duration, len(backendNames))

	for _, r := range results {
		s.Buckets[r.Bucket]++
		if !r.Viable {
			s.NoViable++
		} else if st, ok := byBackend[r.Recommended]; ok {
			st.Wins++
		}

		for _, o := range r.Outcomes {
			st, ok := byBackend[o.Backend]
			if !ok {
				continue
			}
			st.Probes++
			if o.Status.OK() {
				st.Successes++
			}
			st.TotalWarnings += o.Warnings
			elapsedSum[o.Backend] += o.Elapsed

			for _, m := range o.Messages {
				s.Categories[m.Category]++
			}
		}
	}

	for _, name := range backendNames {
		st := byBackend[name]
		if st.Probes > 0 {
			st.SuccessRate = float64(st.Successes) / float64(st.Probes)
			st.AvgElapsed = elapsedSum[name] / time.Duration(st.Probes)
		}
		s.Backends = append(s.Backends, *st)
	}

	s.Problematic = rankProblems(results)
	return s
}

// rankProblems lists the worst files first; equal scores fall back to path
// order so reports are stable run to run.
func rankProblems(results []entity.Result) []entity.ProblemFile {
	var probs []entity.ProblemFile
	for _, r := range results {
		if r.Score >= problemThreshold {
			continue
		}
		var issues []string
		for _, o := range r.Outcomes {
			for _, m := range o.Messages {
				issues = append(issues, fmt.Sprintf("%s: [%s] %s", o.Backend, m.Category, m.Text))
			}
		}
		probs = append(probs, entity.ProblemFile{Path: r.Path, Score: r.Score, Bucket: r.Bucket, Issues: issues})
	}
	sort.SliceStable(probs, func(i, j int) bool {
		if probs[i].Score != probs[j].Score {
			return probs[i].Score < probs[j].Score
		}
		return probs[i].Path < probs[j].Path
	})
	return probs
}
