// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/learningobjective"
	"github.com/abhisek/autodidact/ent/predicate"
)

// LearningObjectiveDelete is the builder for deleting a LearningObjective entity.
type LearningObjectiveDelete struct {
	config
	hooks    []Hook
	mutation *LearningObjectiveMutation
}

// Where appends a list predicates to the LearningObjectiveDelete builder.
func (_d *LearningObjectiveDelete) Where(ps ...predicate.LearningObjective) *LearningObjectiveDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearningObjectiveDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningObjectiveDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearningObjectiveDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learningobjective.Table, sqlgraph.NewFieldSpec(learningobjective.FieldID, field.TypeInt))
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

// LearningObjectiveDeleteOne is the builder for deleting a single LearningObjective entity.
type LearningObjectiveDeleteOne struct {
	_d *LearningObjectiveDelete
}

// Where appends a list predicates to the LearningObjectiveDelete builder.
func (_d *LearningObjectiveDeleteOne) Where(ps ...predicate.LearningObjective) *LearningObjectiveDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearningObjectiveDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learningobjective.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningObjectiveDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
