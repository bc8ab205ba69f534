// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

// ProbeOutcomeCreate is the builder for creating a ProbeOutcome entity.
type ProbeOutcomeCreate struct {
	config
	mutation *ProbeOutcomeMutation
	hooks    []Hook
}

// SetFileResultID sets the "file_result_id" field.
func (_c *ProbeOutcomeCreate) SetFileResultID(v uuid.UUID) *ProbeOutcomeCreate {
	_c.mutation.SetFileResultID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *ProbeOutcomeCreate) SetSeq(v int) *ProbeOutcomeCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetBackend sets the "backend" field.
func (_c *ProbeOutcomeCreate) SetBackend(v string) *ProbeOutcomeCreate {
	_c.mutation.SetBackend(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProbeOutcomeCreate) SetStatus(v string) *ProbeOutcomeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *ProbeOutcomeCreate) SetWarnings(v int) *ProbeOutcomeCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetNillableWarnings sets the "warnings" field if the given value is not nil.
func (_c *ProbeOutcomeCreate) SetNillableWarnings(v *int) *ProbeOutcomeCreate {
	if v != nil {
		_c.SetWarnings(*v)
	}
	return _c
}

// SetMessages sets the "messages" field.
func (_c *ProbeOutcomeCreate) SetMessages(v json.RawMessage) *ProbeOutcomeCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// SetTextLen sets the "text_len" field.
func (_c *ProbeOutcomeCreate) SetTextLen(v int) *ProbeOutcomeCreate {
	_c.mutation.SetTextLen(v)
	return _c
}

// SetNillableTextLen sets the "text_len" field if the given value is not nil.
func (_c *ProbeOutcomeCreate) SetNillableTextLen(v *int) *ProbeOutcomeCreate {
	if v != nil {
		_c.SetTextLen(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ProbeOutcomeCreate) SetPages(v int) *ProbeOutcomeCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *ProbeOutcomeCreate) SetNillablePages(v *int) *ProbeOutcomeCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *ProbeOutcomeCreate) SetElapsedMs(v int64) *ProbeOutcomeCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *ProbeOutcomeCreate) SetNillableElapsedMs(v *int64) *ProbeOutcomeCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProbeOutcomeCreate) SetID(v uuid.UUID) *ProbeOutcomeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProbeOutcomeCreate) SetNillableID(v *uuid.UUID) *ProbeOutcomeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFileResult sets the "file_result" edge to the FileResult entity.
func (_c *ProbeOutcomeCreate) SetFileResult(v *FileResult) *ProbeOutcomeCreate {
	return _c.SetFileResultID(v.ID)
}

// Mutation returns the ProbeOutcomeMutation object of the builder.
func (_c *ProbeOutcomeCreate) Mutation() *ProbeOutcomeMutation {
	return _c.mutation
}

// Save creates the ProbeOutcome in the database.
func (_c *ProbeOutcomeCreate) Save(ctx context.Context) (*ProbeOutcome, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProbeOutcomeCreate) SaveX(ctx context.Context) *ProbeOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProbeOutcomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProbeOutcomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProbeOutcomeCreate) defaults() {
	if _, ok := _c.mutation.Warnings(); !ok {
		v := probeoutcome.DefaultWarnings
		_c.mutation.SetWarnings(v)
	}
	if _, ok := _c.mutation.Pages(); !ok {
		v := probeoutcome.DefaultPages
		_c.mutation.SetPages(v)
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		v := probeoutcome.DefaultElapsedMs
		_c.mutation.SetElapsedMs(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := probeoutcome.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProbeOutcomeCreate) check() error {
	if _, ok := _c.mutation.FileResultID(); !ok {
		return &ValidationError{Name: "file_result_id", err: errors.New(`ent: missing required field "ProbeOutcome.file_result_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "ProbeOutcome.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := probeoutcome.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Backend(); !ok {
		return &ValidationError{Name: "backend", err: errors.New(`ent: missing required field "ProbeOutcome.backend"`)}
	}
	if v, ok := _c.mutation.Backend(); ok {
		if err := probeoutcome.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.backend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProbeOutcome.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := probeoutcome.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProbeOutcome.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Warnings(); !ok {
		return &ValidationError{Name: "warnings", err: errors.New(`ent: missing required field "ProbeOutcome.warnings"`)}
	}
	if _, ok := _c.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "ProbeOutcome.pages"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "ProbeOutcome.elapsed_ms"`)}
	}
	if len(_c.mutation.FileResultIDs()) == 0 {
		return &ValidationError{Name: "file_result", err: errors.New(`ent: missing required edge "ProbeOutcome.file_result"`)}
	}
	return nil
}

func (_c *ProbeOutcomeCreate) sqlSave(ctx context.Context) (*ProbeOutcome, error) {
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

func (_c *ProbeOutcomeCreate) createSpec() (*ProbeOutcome, *sqlgraph.CreateSpec) {
	var (
		_node = &ProbeOutcome{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(probeoutcome.Table, sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(probeoutcome.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Backend(); ok {
		_spec.SetField(probeoutcome.FieldBackend, field.TypeString, value)
		_node.Backend = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(probeoutcome.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(probeoutcome.FieldWarnings, field.TypeInt, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(probeoutcome.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	if value, ok := _c.mutation.TextLen(); ok {
		_spec.SetField(probeoutcome.FieldTextLen, field.TypeInt, value)
		_node.TextLen = &value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(probeoutcome.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(probeoutcome.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if nodes := _c.mutation.FileResultIDs(); len(nodes) > 0 {
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
		_node.FileResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProbeOutcomeCreateBulk is the builder for creating many ProbeOutcome entities in bulk.
type ProbeOutcomeCreateBulk struct {
	config
	err      error
	builders []*ProbeOutcomeCreate
}

// Save creates the ProbeOutcome entities in the database.
func (_c *ProbeOutcomeCreateBulk) Save(ctx context.Context) ([]*ProbeOutcome, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProbeOutcome, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProbeOutcomeMutation)
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
func (_c *ProbeOutcomeCreateBulk) SaveX(ctx context.Context) []*ProbeOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProbeOutcomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProbeOutcomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
