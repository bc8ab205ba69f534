// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avelsher/pdfprobe/gen/ent/predicate"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
)

// ProbeOutcomeDelete is the builder for deleting a ProbeOutcome entity.
type ProbeOutcomeDelete struct {
	config
	hooks    []Hook
	mutation *ProbeOutcomeMutation
}

// Where appends a list predicates to the ProbeOutcomeDelete builder.
func (_d *ProbeOutcomeDelete) Where(ps ...predicate.ProbeOutcome) *ProbeOutcomeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProbeOutcomeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProbeOutcomeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProbeOutcomeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(probeoutcome.Table, sqlgraph.NewFieldSpec(probeoutcome.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProbeOutcomeDeleteOne is the builder for deleting a single ProbeOutcome entity.
type ProbeOutcomeDeleteOne struct {
	_d *ProbeOutcomeDelete
}

// Where appends a list predicates to the ProbeOutcomeDelete builder.
func (_d *ProbeOutcomeDeleteOne) Where(ps ...predicate.ProbeOutcome) *ProbeOutcomeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProbeOutcomeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{probeoutcome.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProbeOutcomeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
