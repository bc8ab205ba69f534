package constants

// QualityBucket classifies a file by its composite score.
type QualityBucket string

const (
	BucketExcellent   QualityBucket = "EXCELLENT"   // score >= 0.9
	BucketGood        QualityBucket = "GOOD"        // score >= 0.5
	BucketProblematic QualityBucket = "PROBLEMATIC" // score > 0
	BucketFailed      QualityBucket = "FAILED"      // score == 0
)

// Buckets lists all buckets in quality order, best first.
var Buckets = []QualityBucket{BucketExcellent, BucketGood, BucketProblematic, BucketFailed}
