// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/google/uuid"
)

// AnalysisRunUpdate is the builder for updating AnalysisRun entities.
type AnalysisRunUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRunMutation
}

// Where appends a list predicates to the AnalysisRunUpdate builder.
func (_u *AnalysisRunUpdate) Where(ps ...predicate.AnalysisRun) *AnalysisRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRootDir sets the "root_dir" field.
func (_u *AnalysisRunUpdate) SetRootDir(v string) *AnalysisRunUpdate {
	_u.mutation.SetRootDir(v)
	return _u
}

// SetNillableRootDir sets the "root_dir" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableRootDir(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetRootDir(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *AnalysisRunUpdate) SetTimeoutMs(v int64) *AnalysisRunUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableTimeoutMs(v *int64) *AnalysisRunUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *AnalysisRunUpdate) AddTimeoutMs(v int64) *AnalysisRunUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetConcurrency sets the "concurrency" field.
func (_u *AnalysisRunUpdate) SetConcurrency(v int) *AnalysisRunUpdate {
	_u.mutation.ResetConcurrency()
	_u.mutation.SetConcurrency(v)
	return _u
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableConcurrency(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetConcurrency(*v)
	}
	return _u
}

// AddConcurrency adds value to the "concurrency" field.
func (_u *AnalysisRunUpdate) AddConcurrency(v int) *AnalysisRunUpdate {
	_u.mutation.AddConcurrency(v)
	return _u
}

// SetBackends sets the "backends" field.
func (_u *AnalysisRunUpdate) SetBackends(v []string) *AnalysisRunUpdate {
	_u.mutation.SetBackends(v)
	return _u
}

// AppendBackends appends value to the "backends" field.
func (_u *AnalysisRunUpdate) AppendBackends(v []string) *AnalysisRunUpdate {
	_u.mutation.AppendBackends(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisRunUpdate) SetStartedAt(v time.Time) *AnalysisRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableStartedAt(v *time.Time) *AnalysisRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnalysisRunUpdate) SetFinishedAt(v time.Time) *AnalysisRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableFinishedAt(v *time.Time) *AnalysisRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnalysisRunUpdate) ClearFinishedAt() *AnalysisRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *AnalysisRunUpdate) SetTotalFiles(v int) *AnalysisRunUpdate {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableTotalFiles(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *AnalysisRunUpdate) AddTotalFiles(v int) *AnalysisRunUpdate {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetBestBackend sets the "best_backend" field.
func (_u *AnalysisRunUpdate) SetBestBackend(v string) *AnalysisRunUpdate {
	_u.mutation.SetBestBackend(v)
	return _u
}

// SetNillableBestBackend sets the "best_backend" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableBestBackend(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetBestBackend(*v)
	}
	return _u
}

// ClearBestBackend clears the value of the "best_backend" field.
func (_u *AnalysisRunUpdate) ClearBestBackend() *AnalysisRunUpdate {
	_u.mutation.ClearBestBackend()
	return _u
}

// AddResultIDs adds the "results" edge to the FileResult entity by IDs.
func (_u *AnalysisRunUpdate) AddResultIDs(ids ...uuid.UUID) *AnalysisRunUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the FileResult entity.
func (_u *AnalysisRunUpdate) AddResults(v ...*FileResult) *AnalysisRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_u *AnalysisRunUpdate) Mutation() *AnalysisRunMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the FileResult entity.
func (_u *AnalysisRunUpdate) ClearResults() *AnalysisRunUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to FileResult entities by IDs.
func (_u *AnalysisRunUpdate) RemoveResultIDs(ids ...uuid.UUID) *AnalysisRunUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to FileResult entities.
func (_u *AnalysisRunUpdate) RemoveResults(v ...*FileResult) *AnalysisRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRunUpdate) check() error {
	if v, ok := _u.mutation.RootDir(); ok {
		if err := analysisrun.RootDirValidator(v); err != nil {
			return &ValidationError{Name: "root_dir", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.root_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeoutMs(); ok {
		if err := analysisrun.TimeoutMsValidator(v); err != nil {
			return &ValidationError{Name: "timeout_ms", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.timeout_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concurrency(); ok {
		if err := analysisrun.ConcurrencyValidator(v); err != nil {
			return &ValidationError{Name: "concurrency", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.concurrency": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrun.Table, analysisrun.Columns, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RootDir(); ok {
		_spec.SetField(analysisrun.FieldRootDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(analysisrun.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(analysisrun.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Concurrency(); ok {
		_spec.SetField(analysisrun.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrency(); ok {
		_spec.AddField(analysisrun.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Backends(); ok {
		_spec.SetField(analysisrun.FieldBackends, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBackends(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisrun.FieldBackends, value)
		})
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(analysisrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(analysisrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(analysisrun.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(analysisrun.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestBackend(); ok {
		_spec.SetField(analysisrun.FieldBestBackend, field.TypeString, value)
	}
	if _u.mutation.BestBackendCleared() {
		_spec.ClearField(analysisrun.FieldBestBackend, field.TypeString)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrun.ResultsTable,
			Columns: []string{analysisrun.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrun.ResultsTable,
			Columns: []string{analysisrun.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrun.ResultsTable,
			Columns: []string{analysisrun.ResultsColumn},
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
			err = &NotFoundError{analysisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRunUpdateOne is the builder for updating a single AnalysisRun entity.
type AnalysisRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRunMutation
}

// SetRootDir sets the "root_dir" field.
func (_u *AnalysisRunUpdateOne) SetRootDir(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetRootDir(v)
	return _u
}

// SetNillableRootDir sets the "root_dir" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableRootDir(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetRootDir(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *AnalysisRunUpdateOne) SetTimeoutMs(v int64) *AnalysisRunUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableTimeoutMs(v *int64) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *AnalysisRunUpdateOne) AddTimeoutMs(v int64) *AnalysisRunUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetConcurrency sets the "concurrency" field.
func (_u *AnalysisRunUpdateOne) SetConcurrency(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetConcurrency()
	_u.mutation.SetConcurrency(v)
	return _u
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableConcurrency(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetConcurrency(*v)
	}
	return _u
}

// AddConcurrency adds value to the "concurrency" field.
func (_u *AnalysisRunUpdateOne) AddConcurrency(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddConcurrency(v)
	return _u
}

// SetBackends sets the "backends" field.
func (_u *AnalysisRunUpdateOne) SetBackends(v []string) *AnalysisRunUpdateOne {
	_u.mutation.SetBackends(v)
	return _u
}

// AppendBackends appends value to the "backends" field.
func (_u *AnalysisRunUpdateOne) AppendBackends(v []string) *AnalysisRunUpdateOne {
	_u.mutation.AppendBackends(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisRunUpdateOne) SetStartedAt(v time.Time) *AnalysisRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnalysisRunUpdateOne) SetFinishedAt(v time.Time) *AnalysisRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableFinishedAt(v *time.Time) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnalysisRunUpdateOne) ClearFinishedAt() *AnalysisRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *AnalysisRunUpdateOne) SetTotalFiles(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableTotalFiles(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *AnalysisRunUpdateOne) AddTotalFiles(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetBestBackend sets the "best_backend" field.
func (_u *AnalysisRunUpdateOne) SetBestBackend(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetBestBackend(v)
	return _u
}

// SetNillableBestBackend sets the "best_backend" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableBestBackend(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetBestBackend(*v)
	}
	return _u
}

// ClearBestBackend clears the value of the "best_backend" field.
func (_u *AnalysisRunUpdateOne) ClearBestBackend() *AnalysisRunUpdateOne {
	_u.mutation.ClearBestBackend()
	return _u
}

// AddResultIDs adds the "results" edge to the FileResult entity by IDs.
func (_u *AnalysisRunUpdateOne) AddResultIDs(ids ...uuid.UUID) *AnalysisRunUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the FileResult entity.
func (_u *AnalysisRunUpdateOne) AddResults(v ...*FileResult) *AnalysisRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_u *AnalysisRunUpdateOne) Mutation() *AnalysisRunMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the FileResult entity.
func (_u *AnalysisRunUpdateOne) ClearResults() *AnalysisRunUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to FileResult entities by IDs.
func (_u *AnalysisRunUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *AnalysisRunUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to FileResult entities.
func (_u *AnalysisRunUpdateOne) RemoveResults(v ...*FileResult) *AnalysisRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the AnalysisRunUpdate builder.
func (_u *AnalysisRunUpdateOne) Where(ps ...predicate.AnalysisRun) *AnalysisRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRunUpdateOne) Select(field string, fields ...string) *AnalysisRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRun entity.
func (_u *AnalysisRunUpdateOne) Save(ctx context.Context) (*AnalysisRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunUpdateOne) SaveX(ctx context.Context) *AnalysisRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRunUpdateOne) check() error {
	if v, ok := _u.mutation.RootDir(); ok {
		if err := analysisrun.RootDirValidator(v); err != nil {
			return &ValidationError{Name: "root_dir", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.root_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeoutMs(); ok {
		if err := analysisrun.TimeoutMsValidator(v); err != nil {
			return &ValidationError{Name: "timeout_ms", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.timeout_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concurrency(); ok {
		if err := analysisrun.ConcurrencyValidator(v); err != nil {
			return &ValidationError{Name: "concurrency", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.concurrency": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRunUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrun.Table, analysisrun.Columns, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrun.FieldID)
		for _, f := range fields {
			if !analysisrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrun.FieldID {
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
	if value, ok := _u.mutation.RootDir(); ok {
		_spec.SetField(analysisrun.FieldRootDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(analysisrun.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(analysisrun.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Concurrency(); ok {
		_spec.SetField(analysisrun.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrency(); ok {
		_spec.AddField(analysisrun.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Backends(); ok {
		_spec.SetField(analysisrun.FieldBackends, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBackends(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisrun.FieldBackends, value)
		})
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(analysisrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(analysisrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(analysisrun.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(analysisrun.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestBackend(); ok {
		_spec.SetField(analysisrun.FieldBestBackend, field.TypeString, value)
	}
	if _u.mutation.BestBackendCleared() {
		_spec.ClearField(analysisrun.FieldBestBackend, field.TypeString)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrun.ResultsTable,
			Columns: []string{analysisrun.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrun.ResultsTable,
			Columns: []string{analysisrun.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrun.ResultsTable,
			Columns: []string{analysisrun.ResultsColumn},
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
	_node = &AnalysisRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
