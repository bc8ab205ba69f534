// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/google/uuid"
)

// FileResult is the model entity for the FileResult schema.
type FileResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Bucket holds the value of the "bucket" field.
	Bucket string `json:"bucket,omitempty"`
	// Recommended holds the value of the "recommended" field.
	Recommended string `json:"recommended,omitempty"`
	// Viable holds the value of the "viable" field.
	Viable bool `json:"viable,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileResultQuery when eager-loading is set.
	Edges        FileResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileResultEdges holds the relations/edges for other nodes in the graph.
type FileResultEdges struct {
	// Run holds the value of the run edge.
	Run *AnalysisRun `json:"run,omitempty"`
	// Outcomes holds the value of the outcomes edge.
	Outcomes []*ProbeOutcome `json:"outcomes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileResultEdges) RunOrErr() (*AnalysisRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// OutcomesOrErr returns the Outcomes value or an error if the edge
// was not loaded in eager-loading.
func (e FileResultEdges) OutcomesOrErr() ([]*ProbeOutcome, error) {
	if e.loadedTypes[1] {
		return e.Outcomes, nil
	}
	return nil, &NotLoadedError{edge: "outcomes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fileresult.FieldViable:
			values[i] = new(sql.NullBool)
		case fileresult.FieldScore:
			values[i] = new(sql.NullFloat64)
		case fileresult.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case fileresult.FieldPath, fileresult.FieldBucket, fileresult.FieldRecommended:
			values[i] = new(sql.NullString)
		case fileresult.FieldID, fileresult.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileResult fields.
func (_m *FileResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fileresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fileresult.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case fileresult.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case fileresult.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case fileresult.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case fileresult.FieldBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bucket", values[i])
			} else if value.Valid {
				_m.Bucket = value.String
			}
		case fileresult.FieldRecommended:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended", values[i])
			} else if value.Valid {
				_m.Recommended = value.String
			}
		case fileresult.FieldViable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field viable", values[i])
			} else if value.Valid {
				_m.Viable = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileResult.
// This includes values selected through modifiers, order, etc.
func (_m *FileResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the FileResult entity.
func (_m *FileResult) QueryRun() *AnalysisRunQuery {
	return NewFileResultClient(_m.config).QueryRun(_m)
}

// QueryOutcomes queries the "outcomes" edge of the FileResult entity.
func (_m *FileResult) QueryOutcomes() *ProbeOutcomeQuery {
	return NewFileResultClient(_m.config).QueryOutcomes(_m)
}

// Update returns a builder for updating this FileResult.
// Note that you need to call FileResult.Unwrap() before calling this method if this FileResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileResult) Update() *FileResultUpdateOne {
	return NewFileResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileResult) Unwrap() *FileResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileResult) String() string {
	var builder strings.Builder
	builder.WriteString("FileResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("bucket=")
	builder.WriteString(_m.Bucket)
	builder.WriteString(", ")
	builder.WriteString("recommended=")
	builder.WriteString(_m.Recommended)
	builder.WriteString(", ")
	builder.WriteString("viable=")
	builder.WriteString(fmt.Sprintf("%v", _m.Viable))
	builder.WriteByte(')')
	return builder.String()
}

// FileResults is a parsable slice of FileResult.
type FileResults []*FileResult
