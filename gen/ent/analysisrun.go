// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/google/uuid"
)

// AnalysisRun is the model entity for the AnalysisRun schema.
type AnalysisRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RootDir holds the value of the "root_dir" field.
	RootDir string `json:"root_dir,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int64 `json:"timeout_ms,omitempty"`
	// Concurrency holds the value of the "concurrency" field.
	Concurrency int `json:"concurrency,omitempty"`
	// Backends holds the value of the "backends" field.
	Backends []string `json:"backends,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// TotalFiles holds the value of the "total_files" field.
	TotalFiles int `json:"total_files,omitempty"`
	// BestBackend holds the value of the "best_backend" field.
	BestBackend *string `json:"best_backend,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisRunQuery when eager-loading is set.
	Edges        AnalysisRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisRunEdges holds the relations/edges for other nodes in the graph.
type AnalysisRunEdges struct {
	// Results holds the value of the results edge.
	Results []*FileResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisRunEdges) ResultsOrErr() ([]*FileResult, error) {
	if e.loadedTypes[0] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrun.FieldBackends:
			values[i] = new([]byte)
		case analysisrun.FieldTimeoutMs, analysisrun.FieldConcurrency, analysisrun.FieldTotalFiles:
			values[i] = new(sql.NullInt64)
		case analysisrun.FieldRootDir, analysisrun.FieldBestBackend:
			values[i] = new(sql.NullString)
		case analysisrun.FieldStartedAt, analysisrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case analysisrun.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRun fields.
func (_m *AnalysisRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisrun.FieldRootDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_dir", values[i])
			} else if value.Valid {
				_m.RootDir = value.String
			}
		case analysisrun.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = value.Int64
			}
		case analysisrun.FieldConcurrency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concurrency", values[i])
			} else if value.Valid {
				_m.Concurrency = int(value.Int64)
			}
		case analysisrun.FieldBackends:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field backends", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Backends); err != nil {
					return fmt.Errorf("unmarshal field backends: %w", err)
				}
			}
		case analysisrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case analysisrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case analysisrun.FieldTotalFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_files", values[i])
			} else if value.Valid {
				_m.TotalFiles = int(value.Int64)
			}
		case analysisrun.FieldBestBackend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field best_backend", values[i])
			} else if value.Valid {
				_m.BestBackend = new(string)
				*_m.BestBackend = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRun.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResults queries the "results" edge of the AnalysisRun entity.
func (_m *AnalysisRun) QueryResults() *FileResultQuery {
	return NewAnalysisRunClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this AnalysisRun.
// Note that you need to call AnalysisRun.Unwrap() before calling this method if this AnalysisRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRun) Update() *AnalysisRunUpdateOne {
	return NewAnalysisRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRun) Unwrap() *AnalysisRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRun) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("root_dir=")
	builder.WriteString(_m.RootDir)
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("concurrency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concurrency))
	builder.WriteString(", ")
	builder.WriteString("backends=")
	builder.WriteString(fmt.Sprintf("%v", _m.Backends))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFiles))
	builder.WriteString(", ")
	if v := _m.BestBackend; v != nil {
		builder.WriteString("best_backend=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRuns is a parsable slice of AnalysisRun.
type AnalysisRuns []*AnalysisRun
