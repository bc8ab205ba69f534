// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisRun is the predicate function for analysisrun builders.
type AnalysisRun func(*sql.Selector)

// FileResult is the predicate function for fileresult builders.
type FileResult func(*sql.Selector)

// ProbeOutcome is the predicate function for probeoutcome builders.
type ProbeOutcome func(*sql.Selector)
