// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/predicate"
	"github.com/abhisek/autodidact/ent/prereqedge"
	"github.com/abhisek/autodidact/ent/project"
)

// PrereqEdgeUpdate is the builder for updating PrereqEdge entities.
type PrereqEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *PrereqEdgeMutation
}

// Where appends a list predicates to the PrereqEdgeUpdate builder.
func (_u *PrereqEdgeUpdate) Where(ps ...predicate.PrereqEdge) *PrereqEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *PrereqEdgeUpdate) SetSourceKey(v string) *PrereqEdgeUpdate {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *PrereqEdgeUpdate) SetNillableSourceKey(v *string) *PrereqEdgeUpdate {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetTargetKey sets the "target_key" field.
func (_u *PrereqEdgeUpdate) SetTargetKey(v string) *PrereqEdgeUpdate {
	_u.mutation.SetTargetKey(v)
	return _u
}

// SetNillableTargetKey sets the "target_key" field if the given value is not nil.
func (_u *PrereqEdgeUpdate) SetNillableTargetKey(v *string) *PrereqEdgeUpdate {
	if v != nil {
		_u.SetTargetKey(*v)
	}
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *PrereqEdgeUpdate) SetProjectID(id int) *PrereqEdgeUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PrereqEdgeUpdate) SetProject(v *Project) *PrereqEdgeUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the PrereqEdgeMutation object of the builder.
func (_u *PrereqEdgeUpdate) Mutation() *PrereqEdgeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PrereqEdgeUpdate) ClearProject() *PrereqEdgeUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrereqEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrereqEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrereqEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrereqEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrereqEdgeUpdate) check() error {
	if v, ok := _u.mutation.SourceKey(); ok {
		if err := prereqedge.SourceKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_key", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.source_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetKey(); ok {
		if err := prereqedge.TargetKeyValidator(v); err != nil {
			return &ValidationError{Name: "target_key", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.target_key": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PrereqEdge.project"`)
	}
	return nil
}

func (_u *PrereqEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prereqedge.Table, prereqedge.Columns, sqlgraph.NewFieldSpec(prereqedge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(prereqedge.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetKey(); ok {
		_spec.SetField(prereqedge.FieldTargetKey, field.TypeString, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prereqedge.ProjectTable,
			Columns: []string{prereqedge.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prereqedge.ProjectTable,
			Columns: []string{prereqedge.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prereqedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrereqEdgeUpdateOne is the builder for updating a single PrereqEdge entity.
type PrereqEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrereqEdgeMutation
}

// SetSourceKey sets the "source_key" field.
func (_u *PrereqEdgeUpdateOne) SetSourceKey(v string) *PrereqEdgeUpdateOne {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *PrereqEdgeUpdateOne) SetNillableSourceKey(v *string) *PrereqEdgeUpdateOne {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetTargetKey sets the "target_key" field.
func (_u *PrereqEdgeUpdateOne) SetTargetKey(v string) *PrereqEdgeUpdateOne {
	_u.mutation.SetTargetKey(v)
	return _u
}

// SetNillableTargetKey sets the "target_key" field if the given value is not nil.
func (_u *PrereqEdgeUpdateOne) SetNillableTargetKey(v *string) *PrereqEdgeUpdateOne {
	if v != nil {
		_u.SetTargetKey(*v)
	}
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *PrereqEdgeUpdateOne) SetProjectID(id int) *PrereqEdgeUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PrereqEdgeUpdateOne) SetProject(v *Project) *PrereqEdgeUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the PrereqEdgeMutation object of the builder.
func (_u *PrereqEdgeUpdateOne) Mutation() *PrereqEdgeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PrereqEdgeUpdateOne) ClearProject() *PrereqEdgeUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the PrereqEdgeUpdate builder.
func (_u *PrereqEdgeUpdateOne) Where(ps ...predicate.PrereqEdge) *PrereqEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrereqEdgeUpdateOne) Select(field string, fields ...string) *PrereqEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PrereqEdge entity.
func (_u *PrereqEdgeUpdateOne) Save(ctx context.Context) (*PrereqEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrereqEdgeUpdateOne) SaveX(ctx context.Context) *PrereqEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrereqEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrereqEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrereqEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.SourceKey(); ok {
		if err := prereqedge.SourceKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_key", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.source_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetKey(); ok {
		if err := prereqedge.TargetKeyValidator(v); err != nil {
			return &ValidationError{Name: "target_key", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.target_key": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PrereqEdge.project"`)
	}
	return nil
}

func (_u *PrereqEdgeUpdateOne) sqlSave(ctx context.Context) (_node *PrereqEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prereqedge.Table, prereqedge.Columns, sqlgraph.NewFieldSpec(prereqedge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PrereqEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prereqedge.FieldID)
		for _, f := range fields {
			if !prereqedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prereqedge.FieldID {
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
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(prereqedge.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetKey(); ok {
		_spec.SetField(prereqedge.FieldTargetKey, field.TypeString, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prereqedge.ProjectTable,
			Columns: []string{prereqedge.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prereqedge.ProjectTable,
			Columns: []string{prereqedge.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PrereqEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prereqedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
