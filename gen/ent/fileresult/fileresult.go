// Code generated by ent, DO NOT EDIT.

package fileresult

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fileresult type in the database.
	Label = "file_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldBucket holds the string denoting the bucket field in the database.
	FieldBucket = "bucket"
	// FieldRecommended holds the string denoting the recommended field in the database.
	FieldRecommended = "recommended"
	// FieldViable holds the string denoting the viable field in the database.
	FieldViable = "viable"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeOutcomes holds the string denoting the outcomes edge name in mutations.
	EdgeOutcomes = "outcomes"
	// Table holds the table name of the fileresult in the database.
	Table = "file_result"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "file_result"
	// RunInverseTable is the table name for the AnalysisRun entity.
	// It exists in this package in order to avoid circular dependency with the "analysisrun" package.
	RunInverseTable = "analysis_run"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// OutcomesTable is the table that holds the outcomes relation/edge.
	OutcomesTable = "probe_outcome"
	// OutcomesInverseTable is the table name for the ProbeOutcome entity.
	// It exists in this package in order to avoid circular dependency with the "probeoutcome" package.
	OutcomesInverseTable = "probe_outcome"
	// OutcomesColumn is the table column denoting the outcomes relation/edge.
	OutcomesColumn = "file_result_id"
)

// Columns holds all SQL columns for fileresult fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldPath,
	FieldFileSize,
	FieldScore,
	FieldBucket,
	FieldRecommended,
	FieldViable,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PathValidator is a validator for the "path" field. It is called by the builders before save.
	PathValidator func(string) error
	// DefaultFileSize holds the default value on creation for the "file_size" field.
	DefaultFileSize int64
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
	// BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	BucketValidator func(string) error
	// RecommendedValidator is a validator for the "recommended" field. It is called by the builders before save.
	RecommendedValidator func(string) error
	// DefaultViable holds the default value on creation for the "viable" field.
	DefaultViable bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FileResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByBucket orders the results by the bucket field.
func ByBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBucket, opts...).ToFunc()
}

// ByRecommended orders the results by the recommended field.
func ByRecommended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommended, opts...).ToFunc()
}

// ByViable orders the results by the viable field.
func ByViable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViable, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByOutcomesCount orders the results by outcomes count.
func ByOutcomesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutcomesStep(), opts...)
	}
}

// ByOutcomes orders the results by outcomes terms.
func ByOutcomes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutcomesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newOutcomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
	)
}
