// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/learningobjective"
	"github.com/abhisek/autodidact/ent/node"
	"github.com/abhisek/autodidact/ent/predicate"
)

// LearningObjectiveUpdate is the builder for updating LearningObjective entities.
type LearningObjectiveUpdate struct {
	config
	hooks    []Hook
	mutation *LearningObjectiveMutation
}

// Where appends a list predicates to the LearningObjectiveUpdate builder.
func (_u *LearningObjectiveUpdate) Where(ps ...predicate.LearningObjective) *LearningObjectiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjectiveKey sets the "objective_key" field.
func (_u *LearningObjectiveUpdate) SetObjectiveKey(v string) *LearningObjectiveUpdate {
	_u.mutation.SetObjectiveKey(v)
	return _u
}

// SetNillableObjectiveKey sets the "objective_key" field if the given value is not nil.
func (_u *LearningObjectiveUpdate) SetNillableObjectiveKey(v *string) *LearningObjectiveUpdate {
	if v != nil {
		_u.SetObjectiveKey(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearningObjectiveUpdate) SetDescription(v string) *LearningObjectiveUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearningObjectiveUpdate) SetNillableDescription(v *string) *LearningObjectiveUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *LearningObjectiveUpdate) SetMastery(v float64) *LearningObjectiveUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *LearningObjectiveUpdate) SetNillableMastery(v *float64) *LearningObjectiveUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *LearningObjectiveUpdate) AddMastery(v float64) *LearningObjectiveUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *LearningObjectiveUpdate) SetPosition(v int) *LearningObjectiveUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LearningObjectiveUpdate) SetNillablePosition(v *int) *LearningObjectiveUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LearningObjectiveUpdate) AddPosition(v int) *LearningObjectiveUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetNodeID sets the "node" edge to the Node entity by ID.
func (_u *LearningObjectiveUpdate) SetNodeID(id int) *LearningObjectiveUpdate {
	_u.mutation.SetNodeID(id)
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *LearningObjectiveUpdate) SetNode(v *Node) *LearningObjectiveUpdate {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the LearningObjectiveMutation object of the builder.
func (_u *LearningObjectiveUpdate) Mutation() *LearningObjectiveMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *LearningObjectiveUpdate) ClearNode() *LearningObjectiveUpdate {
	_u.mutation.ClearNode()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningObjectiveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningObjectiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningObjectiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningObjectiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningObjectiveUpdate) check() error {
	if v, ok := _u.mutation.ObjectiveKey(); ok {
		if err := learningobjective.ObjectiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "objective_key", err: fmt.Errorf(`ent: validator failed for field "LearningObjective.objective_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := learningobjective.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LearningObjective.description": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningObjective.node"`)
	}
	return nil
}

func (_u *LearningObjectiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningobjective.Table, learningobjective.Columns, sqlgraph.NewFieldSpec(learningobjective.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjectiveKey(); ok {
		_spec.SetField(learningobjective.FieldObjectiveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learningobjective.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(learningobjective.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(learningobjective.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(learningobjective.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(learningobjective.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   learningobjective.NodeTable,
			Columns: []string{learningobjective.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   learningobjective.NodeTable,
			Columns: []string{learningobjective.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningobjective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningObjectiveUpdateOne is the builder for updating a single LearningObjective entity.
type LearningObjectiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningObjectiveMutation
}

// SetObjectiveKey sets the "objective_key" field.
func (_u *LearningObjectiveUpdateOne) SetObjectiveKey(v string) *LearningObjectiveUpdateOne {
	_u.mutation.SetObjectiveKey(v)
	return _u
}

// SetNillableObjectiveKey sets the "objective_key" field if the given value is not nil.
func (_u *LearningObjectiveUpdateOne) SetNillableObjectiveKey(v *string) *LearningObjectiveUpdateOne {
	if v != nil {
		_u.SetObjectiveKey(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearningObjectiveUpdateOne) SetDescription(v string) *LearningObjectiveUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearningObjectiveUpdateOne) SetNillableDescription(v *string) *LearningObjectiveUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *LearningObjectiveUpdateOne) SetMastery(v float64) *LearningObjectiveUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *LearningObjectiveUpdateOne) SetNillableMastery(v *float64) *LearningObjectiveUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *LearningObjectiveUpdateOne) AddMastery(v float64) *LearningObjectiveUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *LearningObjectiveUpdateOne) SetPosition(v int) *LearningObjectiveUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LearningObjectiveUpdateOne) SetNillablePosition(v *int) *LearningObjectiveUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LearningObjectiveUpdateOne) AddPosition(v int) *LearningObjectiveUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetNodeID sets the "node" edge to the Node entity by ID.
func (_u *LearningObjectiveUpdateOne) SetNodeID(id int) *LearningObjectiveUpdateOne {
	_u.mutation.SetNodeID(id)
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *LearningObjectiveUpdateOne) SetNode(v *Node) *LearningObjectiveUpdateOne {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the LearningObjectiveMutation object of the builder.
func (_u *LearningObjectiveUpdateOne) Mutation() *LearningObjectiveMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *LearningObjectiveUpdateOne) ClearNode() *LearningObjectiveUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// Where appends a list predicates to the LearningObjectiveUpdate builder.
func (_u *LearningObjectiveUpdateOne) Where(ps ...predicate.LearningObjective) *LearningObjectiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningObjectiveUpdateOne) Select(field string, fields ...string) *LearningObjectiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningObjective entity.
func (_u *LearningObjectiveUpdateOne) Save(ctx context.Context) (*LearningObjective, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningObjectiveUpdateOne) SaveX(ctx context.Context) *LearningObjective {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningObjectiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningObjectiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningObjectiveUpdateOne) check() error {
	if v, ok := _u.mutation.ObjectiveKey(); ok {
		if err := learningobjective.ObjectiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "objective_key", err: fmt.Errorf(`ent: validator failed for field "LearningObjective.objective_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := learningobjective.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LearningObjective.description": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningObjective.node"`)
	}
	return nil
}

func (_u *LearningObjectiveUpdateOne) sqlSave(ctx context.Context) (_node *LearningObjective, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningobjective.Table, learningobjective.Columns, sqlgraph.NewFieldSpec(learningobjective.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningObjective.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningobjective.FieldID)
		for _, f := range fields {
			if !learningobjective.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningobjective.FieldID {
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
	if value, ok := _u.mutation.ObjectiveKey(); ok {
		_spec.SetField(learningobjective.FieldObjectiveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learningobjective.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(learningobjective.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(learningobjective.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(learningobjective.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(learningobjective.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   learningobjective.NodeTable,
			Columns: []string{learningobjective.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   learningobjective.NodeTable,
			Columns: []string{learningobjective.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LearningObjective{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningobjective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
