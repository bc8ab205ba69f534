package entity

import (
	"time"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/probe"
)

// Result is the per-file record handed to report writers: the ordered outcome
// sequence (backend registration order) plus the derived verdict. Immutable
// once built.
type Result struct {
	Path        string                  `json:"path"`
	FileSize    int64                   `json:"file_size"`
	Outcomes    []probe.Outcome         `json:"outcomes"`
	Score       float64                 `json:"score"`
	Bucket      constants.QualityBucket `json:"bucket"`
	Recommended string                  `json:"recommended"`
	// Viable is false when no backend produced usable output; Recommended is
	// then only the tie-break default.
	Viable bool `json:"viable"`
}

// BackendStats is the corpus-level aggregate for one backend.
type BackendStats struct {
	Backend       string        `json:"backend"`
	Probes        int           `json:"probes"`
	Successes     int           `json:"successes"`
	SuccessRate   float64       `json:"success_rate"`
	AvgElapsed    time.Duration `json:"avg_elapsed"`
	TotalWarnings int           `json:"total_warnings"`
	// Wins counts files for which this backend was the genuine recommendation.
	Wins int `json:"wins"`
}

// ProblemFile is one entry in the worst-files ranking.
type ProblemFile struct {
	Path   string                  `json:"path"`
	Score  float64                 `json:"score"`
	Bucket constants.QualityBucket `json:"bucket"`
	Issues []string                `json:"issues"`
}

// Summary is derived from a set of Results; it is recomputed, never stored on
// its own.
type Summary struct {
	TotalFiles  int                                 `json:"total_files"`
	Buckets     map[constants.QualityBucket]int     `json:"buckets"`
	Backends    []BackendStats                      `json:"backends"`
	Categories  map[constants.MessageCategory]int   `json:"categories"`
	Problematic []ProblemFile                       `json:"problematic"`
	// NoViable counts files where every backend scored zero.
	NoViable int `json:"no_viable"`
}

// BestBackend returns the backend with the most wins, ties resolved by
// registration order, and false when no file had a viable backend.
func (s Summary) BestBackend() (BackendStats, bool) {
	best := -1
	for i, b := range s.Backends {
		if b.Wins == 0 {
			continue
		}
		if best == -1 || b.Wins > s.Backends[best].Wins {
			best = i
		}
	}
	if best == -1 {
		return BackendStats{}, false
	}
	return s.Backends[best], true
}
