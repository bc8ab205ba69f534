// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

// ProbeOutcome is the model entity for the ProbeOutcome schema.
type ProbeOutcome struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileResultID holds the value of the "file_result_id" field.
	FileResultID uuid.UUID `json:"file_result_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// Backend holds the value of the "backend" field.
	Backend string `json:"backend,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings int `json:"warnings,omitempty"`
	// Messages holds the value of the "messages" field.
	Messages json.RawMessage `json:"messages,omitempty"`
	// TextLen holds the value of the "text_len" field.
	TextLen *int `json:"text_len,omitempty"`
	// Pages holds the value of the "pages" field.
	Pages int `json:"pages,omitempty"`
	// ElapsedMs holds the value of the "elapsed_ms" field.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProbeOutcomeQuery when eager-loading is set.
	Edges        ProbeOutcomeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProbeOutcomeEdges holds the relations/edges for other nodes in the graph.
type ProbeOutcomeEdges struct {
	// FileResult holds the value of the file_result edge.
	FileResult *FileResult `json:"file_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileResultOrErr returns the FileResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProbeOutcomeEdges) FileResultOrErr() (*FileResult, error) {
	if e.FileResult != nil {
		return e.FileResult, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fileresult.Label}
	}
	return nil, &NotLoadedError{edge: "file_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProbeOutcome) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case probeoutcome.FieldMessages:
			values[i] = new([]byte)
		case probeoutcome.FieldSeq, probeoutcome.FieldWarnings, probeoutcome.FieldTextLen, probeoutcome.FieldPages, probeoutcome.FieldElapsedMs:
			values[i] = new(sql.NullInt64)
		case probeoutcome.FieldBackend, probeoutcome.FieldStatus:
			values[i] = new(sql.NullString)
		case probeoutcome.FieldID, probeoutcome.FieldFileResultID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProbeOutcome fields.
func (_m *ProbeOutcome) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case probeoutcome.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case probeoutcome.FieldFileResultID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_result_id", values[i])
			} else if value != nil {
				_m.FileResultID = *value
			}
		case probeoutcome.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case probeoutcome.FieldBackend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backend", values[i])
			} else if value.Valid {
				_m.Backend = value.String
			}
		case probeoutcome.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case probeoutcome.FieldWarnings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value.Valid {
				_m.Warnings = int(value.Int64)
			}
		case probeoutcome.FieldMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Messages); err != nil {
					return fmt.Errorf("unmarshal field messages: %w", err)
				}
			}
		case probeoutcome.FieldTextLen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field text_len", values[i])
			} else if value.Valid {
				_m.TextLen = new(int)
				*_m.TextLen = int(value.Int64)
			}
		case probeoutcome.FieldPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value.Valid {
				_m.Pages = int(value.Int64)
			}
		case probeoutcome.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProbeOutcome.
// This includes values selected through modifiers, order, etc.
func (_m *ProbeOutcome) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFileResult queries the "file_result" edge of the ProbeOutcome entity.
func (_m *ProbeOutcome) QueryFileResult() *FileResultQuery {
	return NewProbeOutcomeClient(_m.config).QueryFileResult(_m)
}

// Update returns a builder for updating this ProbeOutcome.
// Note that you need to call ProbeOutcome.Unwrap() before calling this method if this ProbeOutcome
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProbeOutcome) Update() *ProbeOutcomeUpdateOne {
	return NewProbeOutcomeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProbeOutcome entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProbeOutcome) Unwrap() *ProbeOutcome {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProbeOutcome is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProbeOutcome) String() string {
	var builder strings.Builder
	builder.WriteString("ProbeOutcome(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_result_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileResultID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("backend=")
	builder.WriteString(_m.Backend)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Messages))
	builder.WriteString(", ")
	if v := _m.TextLen; v != nil {
		builder.WriteString("text_len=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pages))
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteByte(')')
	return builder.String()
}

// ProbeOutcomes is a parsable slice of ProbeOutcome.
type ProbeOutcomes []*ProbeOutcome
