// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

// ProbeOutcomeUpdate is the builder for updating ProbeOutcome entities.
type ProbeOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *ProbeOutcomeMutation
}

// Where appends a list predicates to the ProbeOutcomeUpdate builder.
func (_u *ProbeOutcomeUpdate) Where(ps ...predicate.ProbeOutcome) *ProbeOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileResultID sets the "file_result_id" field.
func (_u *ProbeOutcomeUpdate) SetFileResultID(v uuid.UUID) *ProbeOutcomeUpdate {
	_u.mutation.SetFileResultID(v)
	return _u
}

// SetNillableFileResultID sets the "file_result_id" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableFileResultID(v *uuid.UUID) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetFileResultID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ProbeOutcomeUpdate) SetSeq(v int) *ProbeOutcomeUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableSeq(v *int) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ProbeOutcomeUpdate) AddSeq(v int) *ProbeOutcomeUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetBackend sets the "backend" field.
func (_u *ProbeOutcomeUpdate) SetBackend(v string) *ProbeOutcomeUpdate {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableBackend(v *string) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProbeOutcomeUpdate) SetStatus(v string) *ProbeOutcomeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableStatus(v *string) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *ProbeOutcomeUpdate) SetWarnings(v int) *ProbeOutcomeUpdate {
	_u.mutation.ResetWarnings()
	_u.mutation.SetWarnings(v)
	return _u
}

// SetNillableWarnings sets the "warnings" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableWarnings(v *int) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetWarnings(*v)
	}
	return _u
}

// AddWarnings adds value to the "warnings" field.
func (_u *ProbeOutcomeUpdate) AddWarnings(v int) *ProbeOutcomeUpdate {
	_u.mutation.AddWarnings(v)
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ProbeOutcomeUpdate) SetMessages(v json.RawMessage) *ProbeOutcomeUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ProbeOutcomeUpdate) AppendMessages(v json.RawMessage) *ProbeOutcomeUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *ProbeOutcomeUpdate) ClearMessages() *ProbeOutcomeUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// SetTextLen sets the "text_len" field.
func (_u *ProbeOutcomeUpdate) SetTextLen(v int) *ProbeOutcomeUpdate {
	_u.mutation.ResetTextLen()
	_u.mutation.SetTextLen(v)
	return _u
}

// SetNillableTextLen sets the "text_len" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableTextLen(v *int) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetTextLen(*v)
	}
	return _u
}

// AddTextLen adds value to the "text_len" field.
func (_u *ProbeOutcomeUpdate) AddTextLen(v int) *ProbeOutcomeUpdate {
	_u.mutation.AddTextLen(v)
	return _u
}

// ClearTextLen clears the value of the "text_len" field.
func (_u *ProbeOutcomeUpdate) ClearTextLen() *ProbeOutcomeUpdate {
	_u.mutation.ClearTextLen()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ProbeOutcomeUpdate) SetPages(v int) *ProbeOutcomeUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillablePages(v *int) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ProbeOutcomeUpdate) AddPages(v int) *ProbeOutcomeUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ProbeOutcomeUpdate) SetElapsedMs(v int64) *ProbeOutcomeUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ProbeOutcomeUpdate) SetNillableElapsedMs(v *int64) *ProbeOutcomeUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ProbeOutcomeUpdate) AddElapsedMs(v int64) *ProbeOutcomeUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetFileResult sets the "file_result" edge to the FileResult entity.
func (_u *ProbeOutcomeUpdate) SetFileResult(v *FileResult) *ProbeOutcomeUpdate {
	return _u.SetFileResultID(v.ID)
}

// Mutation returns the ProbeOutcomeMutation object of the builder.
func (_u *ProbeOutcomeUpdate) Mutation() *ProbeOutcomeMutation {
	return _u.mutation
}

// ClearFileResult clears the "file_result" edge to the FileResult entity.
func (_u *ProbeOutcomeUpdate) ClearFileResult() *ProbeOutcomeUpdate {
	_u.mutation.ClearFileResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProbeOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProbeOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProbeOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProbeOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProbeOutcomeUpdate) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := probeoutcome.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Backend(); ok {
		if err := probeoutcome.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.backend": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := probeoutcome.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.status": %w`, err)}
		}
	}
	if _u.mutation.FileResultCleared() && len(_u.mutation.FileResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProbeOutcome.file_result"`)
	}
	return nil
}

func (_u *ProbeOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(probeoutcome.Table, probeoutcome.Columns, sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(probeoutcome.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(probeoutcome.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(probeoutcome.FieldBackend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(probeoutcome.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(probeoutcome.FieldWarnings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarnings(); ok {
		_spec.AddField(probeoutcome.FieldWarnings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(probeoutcome.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, probeoutcome.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(probeoutcome.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.TextLen(); ok {
		_spec.SetField(probeoutcome.FieldTextLen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLen(); ok {
		_spec.AddField(probeoutcome.FieldTextLen, field.TypeInt, value)
	}
	if _u.mutation.TextLenCleared() {
		_spec.ClearField(probeoutcome.FieldTextLen, field.TypeInt)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(probeoutcome.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(probeoutcome.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(probeoutcome.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(probeoutcome.FieldElapsedMs, field.TypeInt64, value)
	}
	if _u.mutation.FileResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   probeoutcome.FileResultTable,
			Columns: []string{probeoutcome.FileResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   probeoutcome.FileResultTable,
			Columns: []string{probeoutcome.FileResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{probeoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProbeOutcomeUpdateOne is the builder for updating a single ProbeOutcome entity.
type ProbeOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProbeOutcomeMutation
}

// SetFileResultID sets the "file_result_id" field.
func (_u *ProbeOutcomeUpdateOne) SetFileResultID(v uuid.UUID) *ProbeOutcomeUpdateOne {
	_u.mutation.SetFileResultID(v)
	return _u
}

// SetNillableFileResultID sets the "file_result_id" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableFileResultID(v *uuid.UUID) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetFileResultID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ProbeOutcomeUpdateOne) SetSeq(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableSeq(v *int) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ProbeOutcomeUpdateOne) AddSeq(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetBackend sets the "backend" field.
func (_u *ProbeOutcomeUpdateOne) SetBackend(v string) *ProbeOutcomeUpdateOne {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableBackend(v *string) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProbeOutcomeUpdateOne) SetStatus(v string) *ProbeOutcomeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableStatus(v *string) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *ProbeOutcomeUpdateOne) SetWarnings(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.ResetWarnings()
	_u.mutation.SetWarnings(v)
	return _u
}

// SetNillableWarnings sets the "warnings" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableWarnings(v *int) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetWarnings(*v)
	}
	return _u
}

// AddWarnings adds value to the "warnings" field.
func (_u *ProbeOutcomeUpdateOne) AddWarnings(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.AddWarnings(v)
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ProbeOutcomeUpdateOne) SetMessages(v json.RawMessage) *ProbeOutcomeUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ProbeOutcomeUpdateOne) AppendMessages(v json.RawMessage) *ProbeOutcomeUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *ProbeOutcomeUpdateOne) ClearMessages() *ProbeOutcomeUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// SetTextLen sets the "text_len" field.
func (_u *ProbeOutcomeUpdateOne) SetTextLen(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.ResetTextLen()
	_u.mutation.SetTextLen(v)
	return _u
}

// SetNillableTextLen sets the "text_len" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableTextLen(v *int) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetTextLen(*v)
	}
	return _u
}

// AddTextLen adds value to the "text_len" field.
func (_u *ProbeOutcomeUpdateOne) AddTextLen(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.AddTextLen(v)
	return _u
}

// ClearTextLen clears the value of the "text_len" field.
func (_u *ProbeOutcomeUpdateOne) ClearTextLen() *ProbeOutcomeUpdateOne {
	_u.mutation.ClearTextLen()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ProbeOutcomeUpdateOne) SetPages(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillablePages(v *int) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ProbeOutcomeUpdateOne) AddPages(v int) *ProbeOutcomeUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ProbeOutcomeUpdateOne) SetElapsedMs(v int64) *ProbeOutcomeUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ProbeOutcomeUpdateOne) SetNillableElapsedMs(v *int64) *ProbeOutcomeUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ProbeOutcomeUpdateOne) AddElapsedMs(v int64) *ProbeOutcomeUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetFileResult sets the "file_result" edge to the FileResult entity.
func (_u *ProbeOutcomeUpdateOne) SetFileResult(v *FileResult) *ProbeOutcomeUpdateOne {
	return _u.SetFileResultID(v.ID)
}

// Mutation returns the ProbeOutcomeMutation object of the builder.
func (_u *ProbeOutcomeUpdateOne) Mutation() *ProbeOutcomeMutation {
	return _u.mutation
}

// ClearFileResult clears the "file_result" edge to the FileResult entity.
func (_u *ProbeOutcomeUpdateOne) ClearFileResult() *ProbeOutcomeUpdateOne {
	_u.mutation.ClearFileResult()
	return _u
}

// Where appends a list predicates to the ProbeOutcomeUpdate builder.
func (_u *ProbeOutcomeUpdateOne) Where(ps ...predicate.ProbeOutcome) *ProbeOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProbeOutcomeUpdateOne) Select(field string, fields ...string) *ProbeOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProbeOutcome entity.
func (_u *ProbeOutcomeUpdateOne) Save(ctx context.Context) (*ProbeOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProbeOutcomeUpdateOne) SaveX(ctx context.Context) *ProbeOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProbeOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProbeOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProbeOutcomeUpdateOne) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := probeoutcome.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Backend(); ok {
		if err := probeoutcome.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.backend": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := probeoutcome.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.status": %w`, err)}
		}
	}
	if _u.mutation.FileResultCleared() && len(_u.mutation.FileResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProbeOutcome.file_result"`)
	}
	return nil
}

func (_u *ProbeOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *ProbeOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(probeoutcome.Table, probeoutcome.Columns, sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProbeOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, probeoutcome.FieldID)
		for _, f := range fields {
			if !probeoutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != probeoutcome.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(probeoutcome.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(probeoutcome.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(probeoutcome.FieldBackend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(probeoutcome.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(probeoutcome.FieldWarnings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarnings(); ok {
		_spec.AddField(probeoutcome.FieldWarnings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(probeoutcome.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, probeoutcome.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(probeoutcome.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.TextLen(); ok {
		_spec.SetField(probeoutcome.FieldTextLen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLen(); ok {
		_spec.AddField(probeoutcome.FieldTextLen, field.TypeInt, value)
	}
	if _u.mutation.TextLenCleared() {
		_spec.ClearField(probeoutcome.FieldTextLen, field.TypeInt)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(probeoutcome.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(probeoutcome.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(probeoutcome.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(probeoutcome.FieldElapsedMs, field.TypeInt64, value)
	}
	if _u.mutation.FileResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   probeoutcome.FileResultTable,
			Columns: []string{probeoutcome.FileResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   probeoutcome.FileResultTable,
			Columns: []string{probeoutcome.FileResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProbeOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{probeoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
