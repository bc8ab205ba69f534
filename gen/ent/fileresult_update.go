// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

// FileResultUpdate is the builder for updating FileResult entities.
type FileResultUpdate struct {
	config
	hooks    []Hook
	mutation *FileResultMutation
}

// Where appends a list predicates to the FileResultUpdate builder.
func (_u *FileResultUpdate) Where(ps ...predicate.FileResult) *FileResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *FileResultUpdate) SetRunID(v uuid.UUID) *FileResultUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableRunID(v *uuid.UUID) *FileResultUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *FileResultUpdate) SetPath(v string) *FileResultUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillablePath(v *string) *FileResultUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *FileResultUpdate) SetFileSize(v int64) *FileResultUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableFileSize(v *int64) *FileResultUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *FileResultUpdate) AddFileSize(v int64) *FileResultUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *FileResultUpdate) SetScore(v float64) *FileResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableScore(v *float64) *FileResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *FileResultUpdate) AddScore(v float64) *FileResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *FileResultUpdate) SetBucket(v string) *FileResultUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableBucket(v *string) *FileResultUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetRecommended sets the "recommended" field.
func (_u *FileResultUpdate) SetRecommended(v string) *FileResultUpdate {
	_u.mutation.SetRecommended(v)
	return _u
}

// SetNillableRecommended sets the "recommended" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableRecommended(v *string) *FileResultUpdate {
	if v != nil {
		_u.SetRecommended(*v)
	}
	return _u
}

// SetViable sets the "viable" field.
func (_u *FileResultUpdate) SetViable(v bool) *FileResultUpdate {
	_u.mutation.SetViable(v)
	return _u
}

// SetNillableViable sets the "viable" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableViable(v *bool) *FileResultUpdate {
	if v != nil {
		_u.SetViable(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the AnalysisRun entity.
func (_u *FileResultUpdate) SetRun(v *AnalysisRun) *FileResultUpdate {
	return _u.SetRunID(v.ID)
}

// AddOutcomeIDs adds the "outcomes" edge to the ProbeOutcome entity by IDs.
func (_u *FileResultUpdate) AddOutcomeIDs(ids ...uuid.UUID) *FileResultUpdate {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the ProbeOutcome entity.
func (_u *FileResultUpdate) AddOutcomes(v ...*ProbeOutcome) *FileResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the FileResultMutation object of the builder.
func (_u *FileResultUpdate) Mutation() *FileResultMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the AnalysisRun entity.
func (_u *FileResultUpdate) ClearRun() *FileResultUpdate {
	_u.mutation.ClearRun()
	return _u
}

// ClearOutcomes clears all "outcomes" edges to the ProbeOutcome entity.
func (_u *FileResultUpdate) ClearOutcomes() *FileResultUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to ProbeOutcome entities by IDs.
func (_u *FileResultUpdate) RemoveOutcomeIDs(ids ...uuid.UUID) *FileResultUpdate {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to ProbeOutcome entities.
func (_u *FileResultUpdate) RemoveOutcomes(v ...*ProbeOutcome) *FileResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileResultUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := fileresult.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "FileResult.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := fileresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "FileResult.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := fileresult.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "FileResult.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Recommended(); ok {
		if err := fileresult.RecommendedValidator(v); err != nil {
			return &ValidationError{Name: "recommended", err: fmt.Errorf(`ent: validator failed for field "FileResult.recommended": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileResult.run"`)
	}
	return nil
}

func (_u *FileResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileresult.Table, fileresult.Columns, sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(fileresult.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(fileresult.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(fileresult.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(fileresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(fileresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(fileresult.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommended(); ok {
		_spec.SetField(fileresult.FieldRecommended, field.TypeString, value)
	}
	if value, ok := _u.mutation.Viable(); ok {
		_spec.SetField(fileresult.FieldViable, field.TypeBool, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fileresult.RunTable,
			Columns: []string{fileresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fileresult.RunTable,
			Columns: []string{fileresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileresult.OutcomesTable,
			Columns: []string{fileresult.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileresult.OutcomesTable,
			Columns: []string{fileresult.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileresult.OutcomesTable,
			Columns: []string{fileresult.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileResultUpdateOne is the builder for updating a single FileResult entity.
type FileResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileResultMutation
}

// SetRunID sets the "run_id" field.
func (_u *FileResultUpdateOne) SetRunID(v uuid.UUID) *FileResultUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableRunID(v *uuid.UUID) *FileResultUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *FileResultUpdateOne) SetPath(v string) *FileResultUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillablePath(v *string) *FileResultUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *FileResultUpdateOne) SetFileSize(v int64) *FileResultUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableFileSize(v *int64) *FileResultUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *FileResultUpdateOne) AddFileSize(v int64) *FileResultUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *FileResultUpdateOne) SetScore(v float64) *FileResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableScore(v *float64) *FileResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *FileResultUpdateOne) AddScore(v float64) *FileResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *FileResultUpdateOne) SetBucket(v string) *FileResultUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableBucket(v *string) *FileResultUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetRecommended sets the "recommended" field.
func (_u *FileResultUpdateOne) SetRecommended(v string) *FileResultUpdateOne {
	_u.mutation.SetRecommended(v)
	return _u
}

// SetNillableRecommended sets the "recommended" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableRecommended(v *string) *FileResultUpdateOne {
	if v != nil {
		_u.SetRecommended(*v)
	}
	return _u
}

// SetViable sets the "viable" field.
func (_u *FileResultUpdateOne) SetViable(v bool) *FileResultUpdateOne {
	_u.mutation.SetViable(v)
	return _u
}

// SetNillableViable sets the "viable" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableViable(v *bool) *FileResultUpdateOne {
	if v != nil {
		_u.SetViable(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the AnalysisRun entity.
func (_u *FileResultUpdateOne) SetRun(v *AnalysisRun) *FileResultUpdateOne {
	return _u.SetRunID(v.ID)
}

// AddOutcomeIDs adds the "outcomes" edge to the ProbeOutcome entity by IDs.
func (_u *FileResultUpdateOne) AddOutcomeIDs(ids ...uuid.UUID) *FileResultUpdateOne {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the ProbeOutcome entity.
func (_u *FileResultUpdateOne) AddOutcomes(v ...*ProbeOutcome) *FileResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the FileResultMutation object of the builder.
func (_u *FileResultUpdateOne) Mutation() *FileResultMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the AnalysisRun entity.
func (_u *FileResultUpdateOne) ClearRun() *FileResultUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// ClearOutcomes clears all "outcomes" edges to the ProbeOutcome entity.
func (_u *FileResultUpdateOne) ClearOutcomes() *FileResultUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to ProbeOutcome entities by IDs.
func (_u *FileResultUpdateOne) RemoveOutcomeIDs(ids ...uuid.UUID) *FileResultUpdateOne {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to ProbeOutcome entities.
func (_u *FileResultUpdateOne) RemoveOutcomes(v ...*ProbeOutcome) *FileResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Where appends a list predicates to the FileResultUpdate builder.
func (_u *FileResultUpdateOne) Where(ps ...predicate.FileResult) *FileResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileResultUpdateOne) Select(field string, fields ...string) *FileResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileResult entity.
func (_u *FileResultUpdateOne) Save(ctx context.Context) (*FileResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileResultUpdateOne) SaveX(ctx context.Context) *FileResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileResultUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := fileresult.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "FileResult.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := fileresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "FileResult.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := fileresult.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "FileResult.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Recommended(); ok {
		if err := fileresult.RecommendedValidator(v); err != nil {
			return &ValidationError{Name: "recommended", err: fmt.Errorf(`ent: validator failed for field "FileResult.recommended": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileResult.run"`)
	}
	return nil
}

func (_u *FileResultUpdateOne) sqlSave(ctx context.Context) (_node *FileResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileresult.Table, fileresult.Columns, sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fileresult.FieldID)
		for _, f := range fields {
			if !fileresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fileresult.FieldID {
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
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(fileresult.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(fileresult.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(fileresult.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(fileresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(fileresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(fileresult.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommended(); ok {
		_spec.SetField(fileresult.FieldRecommended, field.TypeString, value)
	}
	if value, ok := _u.mutation.Viable(); ok {
		_spec.SetField(fileresult.FieldViable, field.TypeBool, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fileresult.RunTable,
			Columns: []string{fileresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fileresult.RunTable,
			Columns: []string{fileresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileresult.OutcomesTable,
			Columns: []string{fileresult.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileresult.OutcomesTable,
			Columns: []string{fileresult.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileresult.OutcomesTable,
			Columns: []string{fileresult.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
