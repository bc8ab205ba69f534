// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/google/uuid"
)

// AnalysisRunCreate is the builder for creating a AnalysisRun entity.
type AnalysisRunCreate struct {
	config
	mutation *AnalysisRunMutation
	hooks    []Hook
}

// SetRootDir sets the "root_dir" field.
func (_c *AnalysisRunCreate) SetRootDir(v string) *AnalysisRunCreate {
	_c.mutation.SetRootDir(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *AnalysisRunCreate) SetTimeoutMs(v int64) *AnalysisRunCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetConcurrency sets the "concurrency" field.
func (_c *AnalysisRunCreate) SetConcurrency(v int) *AnalysisRunCreate {
	_c.mutation.SetConcurrency(v)
	return _c
}

// SetBackends sets the "backends" field.
func (_c *AnalysisRunCreate) SetBackends(v []string) *AnalysisRunCreate {
	_c.mutation.SetBackends(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisRunCreate) SetStartedAt(v time.Time) *AnalysisRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableStartedAt(v *time.Time) *AnalysisRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AnalysisRunCreate) SetFinishedAt(v time.Time) *AnalysisRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableFinishedAt(v *time.Time) *AnalysisRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetTotalFiles sets the "total_files" field.
func (_c *AnalysisRunCreate) SetTotalFiles(v int) *AnalysisRunCreate {
	_c.mutation.SetTotalFiles(v)
	return _c
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableTotalFiles(v *int) *AnalysisRunCreate {
	if v != nil {
		_c.SetTotalFiles(*v)
	}
	return _c
}

// SetBestBackend sets the "best_backend" field.
func (_c *AnalysisRunCreate) SetBestBackend(v string) *AnalysisRunCreate {
	_c.mutation.SetBestBackend(v)
	return _c
}

// SetNillableBestBackend sets the "best_backend" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableBestBackend(v *string) *AnalysisRunCreate {
	if v != nil {
		_c.SetBestBackend(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisRunCreate) SetID(v uuid.UUID) *AnalysisRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableID(v *uuid.UUID) *AnalysisRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddResultIDs adds the "results" edge to the FileResult entity by IDs.
func (_c *AnalysisRunCreate) AddResultIDs(ids ...uuid.UUID) *AnalysisRunCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the FileResult entity.
func (_c *AnalysisRunCreate) AddResults(v ...*FileResult) *AnalysisRunCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_c *AnalysisRunCreate) Mutation() *AnalysisRunMutation {
	return _c.mutation
}

// Save creates the AnalysisRun in the database.
func (_c *AnalysisRunCreate) Save(ctx context.Context) (*AnalysisRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRunCreate) SaveX(ctx context.Context) *AnalysisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := analysisrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		v := analysisrun.DefaultTotalFiles
		_c.mutation.SetTotalFiles(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRunCreate) check() error {
	if _, ok := _c.mutation.RootDir(); !ok {
		return &ValidationError{Name: "root_dir", err: errors.New(`ent: missing required field "AnalysisRun.root_dir"`)}
	}
	if v, ok := _c.mutation.RootDir(); ok {
		if err := analysisrun.RootDirValidator(v); err != nil {
			return &ValidationError{Name: "root_dir", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.root_dir": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "AnalysisRun.timeout_ms"`)}
	}
	if v, ok := _c.mutation.TimeoutMs(); ok {
		if err := analysisrun.TimeoutMsValidator(v); err != nil {
			return &ValidationError{Name: "timeout_ms", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.timeout_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concurrency(); !ok {
		return &ValidationError{Name: "concurrency", err: errors.New(`ent: missing required field "AnalysisRun.concurrency"`)}
	}
	if v, ok := _c.mutation.Concurrency(); ok {
		if err := analysisrun.ConcurrencyValidator(v); err != nil {
			return &ValidationError{Name: "concurrency", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.concurrency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Backends(); !ok {
		return &ValidationError{Name: "backends", err: errors.New(`ent: missing required field "AnalysisRun.backends"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AnalysisRun.started_at"`)}
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "AnalysisRun.total_files"`)}
	}
	return nil
}

func (_c *AnalysisRunCreate) sqlSave(ctx context.Context) (*AnalysisRun, error) {
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

func (_c *AnalysisRunCreate) createSpec() (*AnalysisRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrun.Table, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RootDir(); ok {
		_spec.SetField(analysisrun.FieldRootDir, field.TypeString, value)
		_node.RootDir = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(analysisrun.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.Concurrency(); ok {
		_spec.SetField(analysisrun.FieldConcurrency, field.TypeInt, value)
		_node.Concurrency = value
	}
	if value, ok := _c.mutation.Backends(); ok {
		_spec.SetField(analysisrun.FieldBackends, field.TypeJSON, value)
		_node.Backends = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysisrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(analysisrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.TotalFiles(); ok {
		_spec.SetField(analysisrun.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := _c.mutation.BestBackend(); ok {
		_spec.SetField(analysisrun.FieldBestBackend, field.TypeString, value)
		_node.BestBackend = &value
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisRunCreateBulk is the builder for creating many AnalysisRun entities in bulk.
type AnalysisRunCreateBulk struct {
	config
	err      error
	builders []*AnalysisRunCreate
}

// Save creates the AnalysisRun entities in the database.
func (_c *AnalysisRunCreateBulk) Save(ctx context.Context) ([]*AnalysisRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRunMutation)
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
func (_c *AnalysisRunCreateBulk) SaveX(ctx context.Context) []*AnalysisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
