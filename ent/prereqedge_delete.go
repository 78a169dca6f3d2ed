// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/predicate"
	"github.com/abhisek/autodidact/ent/prereqedge"
)

// PrereqEdgeDelete is the builder for deleting a PrereqEdge entity.
type PrereqEdgeDelete struct {
	config
	hooks    []Hook
	mutation *PrereqEdgeMutation
}

// Where appends a list predicates to the PrereqEdgeDelete builder.
func (_d *PrereqEdgeDelete) Where(ps ...predicate.PrereqEdge) *PrereqEdgeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PrereqEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PrereqEdgeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PrereqEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(prereqedge.Table, sqlgraph.NewFieldSpec(prereqedge.FieldID, field.TypeInt))
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

// PrereqEdgeDeleteOne is the builder for deleting a single PrereqEdge entity.
type PrereqEdgeDeleteOne struct {
	_d *PrereqEdgeDelete
}

// Where appends a list predicates to the PrereqEdgeDelete builder.
func (_d *PrereqEdgeDeleteOne) Where(ps ...predicate.PrereqEdge) *PrereqEdgeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PrereqEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{prereqedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PrereqEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
