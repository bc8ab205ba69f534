// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

// FileResultCreate is the builder for creating a FileResult entity.
type FileResultCreate struct {
	config
	mutation *FileResultMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *FileResultCreate) SetRunID(v uuid.UUID) *FileResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *FileResultCreate) SetPath(v string) *FileResultCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *FileResultCreate) SetFileSize(v int64) *FileResultCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *FileResultCreate) SetNillableFileSize(v *int64) *FileResultCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *FileResultCreate) SetScore(v float64) *FileResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *FileResultCreate) SetBucket(v string) *FileResultCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetRecommended sets the "recommended" field.
func (_c *FileResultCreate) SetRecommended(v string) *FileResultCreate {
	_c.mutation.SetRecommended(v)
	return _c
}

// SetViable sets the "viable" field.
func (_c *FileResultCreate) SetViable(v bool) *FileResultCreate {
	_c.mutation.SetViable(v)
	return _c
}

// SetNillableViable sets the "viable" field if the given value is not nil.
func (_c *FileResultCreate) SetNillableViable(v *bool) *FileResultCreate {
	if v != nil {
		_c.SetViable(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FileResultCreate) SetID(v uuid.UUID) *FileResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FileResultCreate) SetNillableID(v *uuid.UUID) *FileResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the AnalysisRun entity.
func (_c *FileResultCreate) SetRun(v *AnalysisRun) *FileResultCreate {
	return _c.SetRunID(v.ID)
}

// AddOutcomeIDs adds the "outcomes" edge to the ProbeOutcome entity by IDs.
func (_c *FileResultCreate) AddOutcomeIDs(ids ...uuid.UUID) *FileResultCreate {
	_c.mutation.AddOutcomeIDs(ids...)
	return _c
}

// AddOutcomes adds the "outcomes" edges to the ProbeOutcome entity.
func (_c *FileResultCreate) AddOutcomes(v ...*ProbeOutcome) *FileResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeIDs(ids...)
}

// Mutation returns the FileResultMutation object of the builder.
func (_c *FileResultCreate) Mutation() *FileResultMutation {
	return _c.mutation
}

// Save creates the FileResult in the database.
func (_c *FileResultCreate) Save(ctx context.Context) (*FileResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileResultCreate) SaveX(ctx context.Context) *FileResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileResultCreate) defaults() {
	if _, ok := _c.mutation.FileSize(); !ok {
		v := fileresult.DefaultFileSize
		_c.mutation.SetFileSize(v)
	}
	if _, ok := _c.mutation.Viable(); !ok {
		v := fileresult.DefaultViable
		_c.mutation.SetViable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fileresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileResultCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "FileResult.run_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "FileResult.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := fileresult.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "FileResult.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "FileResult.file_size"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "FileResult.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := fileresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "FileResult.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "FileResult.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := fileresult.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "FileResult.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recommended(); !ok {
		return &ValidationError{Name: "recommended", err: errors.New(`ent: missing required field "FileResult.recommended"`)}
	}
	if v, ok := _c.mutation.Recommended(); ok {
		if err := fileresult.RecommendedValidator(v); err != nil {
			return &ValidationError{Name: "recommended", err: fmt.Errorf(`ent: validator failed for field "FileResult.recommended": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Viable(); !ok {
		return &ValidationError{Name: "viable", err: errors.New(`ent: missing required field "FileResult.viable"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "FileResult.run"`)}
	}
	return nil
}

func (_c *FileResultCreate) sqlSave(ctx context.Context) (*FileResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileResultCreate) createSpec() (*FileResult, *sqlgraph.CreateSpec) {
	var (
		_node = &FileResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fileresult.Table, sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(fileresult.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(fileresult.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(fileresult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(fileresult.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Recommended(); ok {
		_spec.SetField(fileresult.FieldRecommended, field.TypeString, value)
		_node.Recommended = value
	}
	if value, ok := _c.mutation.Viable(); ok {
		_spec.SetField(fileresult.FieldViable, field.TypeBool, value)
		_node.Viable = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FileResultCreateBulk is the builder for creating many FileResult entities in bulk.
type FileResultCreateBulk struct {
	config
	err      error
	builders []*FileResultCreate
}

// Save creates the FileResult entities in the database.
func (_c *FileResultCreateBulk) Save(ctx context.Context) ([]*FileResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FileResultCreateBulk) SaveX(ctx context.Context) []*FileResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
