package export

import (
	"fmt"
	"strings"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/entity"
)

// show at most this many issue lines per problematic file
const maxIssueLines = 10

// BuildTextSummary renders the human-readable summary.
func (w *Writer) BuildTextSummary(summary entity.Summary) string {
	var b strings.Builder

	line := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\nPDF BACKEND ANALYSIS SUMMARY\n%s\n", line, line)
	fmt.Fprintf(&b, "Total PDF files analyzed: %d\n", summary.TotalFiles)
	fmt.Fprintf(&b, "Excellent: %d\n", summary.Buckets[constants.BucketExcellent])
	fmt.Fprintf(&b, "Good: %d\n", summary.Buckets[constants.BucketGood])
	fmt.Fprintf(&b, "Problematic: %d\n", summary.Buckets[constants.BucketProblematic])
	fmt.Fprintf(&b, "Failed: %d\n", summary.Buckets[constants.BucketFailed])

	b.WriteString("\nBackend recommendations:\n")
	for _, bs := range summary.Backends {
		pct := 0.0
		if summary.TotalFiles > 0 {
			pct = float64(bs.Wins) / float64(summary.TotalFiles) * 100
		}
		fmt.Fprintf(&b, "  %s: %d files (%.1f%%), success rate %.1f%%, avg %dms, %d warnings\n",
			bs.Backend, bs.Wins, pct, bs.SuccessRate*100, bs.AvgElapsed.Milliseconds(), bs.TotalWarnings)
	}
	if summary.NoViable > 0 {
		fmt.Fprintf(&b, "  no viable backend: %d files\n", summary.NoViable)
	}

	if len(summary.Categories) > 0 {
		b.WriteString("\nIssue categories:\n")
		for _, cat := range []constants.MessageCategory{
			constants.CategoryStructure, constants.CategoryMetadata,
			constants.CategoryText, constants.CategoryEncoding, constants.CategoryUnknown,
		} {
			if n := summary.Categories[cat]; n > 0 {
				fmt.Fprintf(&b, "  %s: %d\n", cat, n)
			}
		}
	}

	if len(summary.Problematic) > 0 {
		fmt.Fprintf(&b, "\nProblematic files: %d\n%s\n", len(summary.Problematic), strings.Repeat("-", 50))
		for _, p := range summary.Problematic {
			fmt.Fprintf(&b, "\nFile: %s\nScore: %.1f%%\nBucket: %s\n", p.Path, p.Score*100, p.Bucket)
			if len(p.Issues) > 0 {
				b.WriteString("Issues:\n")
				for i, issue := range p.Issues {
					if i == maxIssueLines {
						fmt.Fprintf(&b, "  ... and %d more\n", len(p.Issues)-maxIssueLines)
						break
					}
					fmt.Fprintf(&b, "  - %s\n", issue)
				}
			}
		}
	}

	return b.String()
}

// RecommendationLine is the one-line output for recommendation-only mode.
func (w *Writer) RecommendationLine(summary entity.Summary) string {
	best, ok := summary.BestBackend()
	if !ok {
		return "no viable backend for any file"
	}
	pct := float64(best.Wins) / float64(summary.TotalFiles) * 100
	return fmt.Sprintf("%s: %d files (%.1f%%)", best.Backend, best.Wins, pct)
}
