// Code generated by ent, DO NOT EDIT.

package probeoutcome

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the probeoutcome type in the database.
	Label = "probe_outcome"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileResultID holds the string denoting the file_result_id field in the database.
	FieldFileResultID = "file_result_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldBackend holds the string denoting the backend field in the database.
	FieldBackend = "backend"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldMessages holds the string denoting the messages field in the database.
	FieldMessages = "messages"
	// FieldTextLen holds the string denoting the text_len field in the database.
	FieldTextLen = "text_len"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// EdgeFileResult holds the string denoting the file_result edge name in mutations.
	EdgeFileResult = "file_result"
	// Table holds the table name of the probeoutcome in the database.
	Table = "probe_outcome"
	// FileResultTable is the table that holds the file_result relation/edge.
	FileResultTable = "probe_outcome"
	// FileResultInverseTable is the table name for the FileResult entity.
	// It exists in this package in order to avoid circular dependency with the "fileresult" package.
	FileResultInverseTable = "file_result"
	// FileResultColumn is the table column denoting the file_result relation/edge.
	FileResultColumn = "file_result_id"
)

// Columns holds all SQL columns for probeoutcome fields.
var Columns = []string{
	FieldID,
	FieldFileResultID,
	FieldSeq,
	FieldBackend,
	FieldStatus,
	FieldWarnings,
	FieldMessages,
	FieldTextLen,
	FieldPages,
	FieldElapsedMs,
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
	// SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	SeqValidator func(int) error
	// BackendValidator is a validator for the "backend" field. It is called by the builders before save.
	BackendValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultWarnings holds the default value on creation for the "warnings" field.
	DefaultWarnings int
	// DefaultPages holds the default value on creation for the "pages" field.
	DefaultPages int
	// DefaultElapsedMs holds the default value on creation for the "elapsed_ms" field.
	DefaultElapsedMs int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ProbeOutcome queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileResultID orders the results by the file_result_id field.
func ByFileResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileResultID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByBackend orders the results by the backend field.
func ByBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackend, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWarnings orders the results by the warnings field.
func ByWarnings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarnings, opts...).ToFunc()
}

// ByTextLen orders the results by the text_len field.
func ByTextLen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextLen, opts...).ToFunc()
}

// ByPages orders the results by the pages field.
func ByPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPages, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}

// ByFileResultField orders the results by file_result field.
func ByFileResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileResultStep(), sql.OrderByField(field, opts...))
	}
}
func newFileResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileResultInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileResultTable, FileResultColumn),
	)
}
