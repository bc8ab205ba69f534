// Code generated by ent, DO NOT EDIT.

package analysisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the analysisrun type in the database.
	Label = "analysis_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRootDir holds the string denoting the root_dir field in the database.
	FieldRootDir = "root_dir"
	// FieldTimeoutMs holds the string denoting the timeout_ms field in the database.
	FieldTimeoutMs = "timeout_ms"
	// FieldConcurrency holds the string denoting the concurrency field in the database.
	FieldConcurrency = "concurrency"
	// FieldBackends holds the string denoting the backends field in the database.
	FieldBackends = "backends"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldTotalFiles holds the string denoting the total_files field in the database.
	FieldTotalFiles = "total_files"
	// FieldBestBackend holds the string denoting the best_backend field in the database.
	FieldBestBackend = "best_backend"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// Table holds the table name of the analysisrun in the database.
	Table = "analysis_run"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "file_result"
	// ResultsInverseTable is the table name for the FileResult entity.
	// It exists in this package in order to avoid circular dependency with the "fileresult" package.
	ResultsInverseTable = "file_result"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "run_id"
)

// Columns holds all SQL columns for analysisrun fields.
var Columns = []string{
	FieldID,
	FieldRootDir,
	FieldTimeoutMs,
	FieldConcurrency,
	FieldBackends,
	FieldStartedAt,
	FieldFinishedAt,
	FieldTotalFiles,
	FieldBestBackend,
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
	// RootDirValidator is a validator for the "root_dir" field. It is called by the builders before save.
	RootDirValidator func(string) error
	// TimeoutMsValidator is a validator for the "timeout_ms" field. It is called by the builders before save.
	TimeoutMsValidator func(int64) error
	// ConcurrencyValidator is a validator for the "concurrency" field. It is called by the builders before save.
	ConcurrencyValidator func(int) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultTotalFiles holds the default value on creation for the "total_files" field.
	DefaultTotalFiles int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AnalysisRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRootDir orders the results by the root_dir field.
func ByRootDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootDir, opts...).ToFunc()
}

// ByTimeoutMs orders the results by the timeout_ms field.
func ByTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMs, opts...).ToFunc()
}

// ByConcurrency orders the results by the concurrency field.
func ByConcurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrency, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByTotalFiles orders the results by the total_files field.
func ByTotalFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFiles, opts...).ToFunc()
}

// ByBestBackend orders the results by the best_backend field.
func ByBestBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestBackend, opts...).ToFunc()
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
