// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/learningobjective"
	"github.com/abhisek/autodidact/ent/node"
)

// LearningObjectiveCreate is the builder for creating a LearningObjective entity.
type LearningObjectiveCreate struct {
	config
	mutation *LearningObjectiveMutation
	hooks    []Hook
}

// SetObjectiveKey sets the "objective_key" field.
func (_c *LearningObjectiveCreate) SetObjectiveKey(v string) *LearningObjectiveCreate {
	_c.mutation.SetObjectiveKey(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LearningObjectiveCreate) SetDescription(v string) *LearningObjectiveCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *LearningObjectiveCreate) SetMastery(v float64) *LearningObjectiveCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *LearningObjectiveCreate) SetNillableMastery(v *float64) *LearningObjectiveCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *LearningObjectiveCreate) SetPosition(v int) *LearningObjectiveCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *LearningObjectiveCreate) SetNillablePosition(v *int) *LearningObjectiveCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetNodeID sets the "node" edge to the Node entity by ID.
func (_c *LearningObjectiveCreate) SetNodeID(id int) *LearningObjectiveCreate {
	_c.mutation.SetNodeID(id)
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *LearningObjectiveCreate) SetNode(v *Node) *LearningObjectiveCreate {
	return _c.SetNodeID(v.ID)
}

// Mutation returns the LearningObjectiveMutation object of the builder.
func (_c *LearningObjectiveCreate) Mutation() *LearningObjectiveMutation {
	return _c.mutation
}

// Save creates the LearningObjective in the database.
func (_c *LearningObjectiveCreate) Save(ctx context.Context) (*LearningObjective, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningObjectiveCreate) SaveX(ctx context.Context) *LearningObjective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningObjectiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningObjectiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningObjectiveCreate) defaults() {
	if _, ok := _c.mutation.Mastery(); !ok {
		v := learningobjective.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := learningobjective.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningObjectiveCreate) check() error {
	if _, ok := _c.mutation.ObjectiveKey(); !ok {
		return &ValidationError{Name: "objective_key", err: errors.New(`ent: missing required field "LearningObjective.objective_key"`)}
	}
	if v, ok := _c.mutation.ObjectiveKey(); ok {
		if err := learningobjective.ObjectiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "objective_key", err: fmt.Errorf(`ent: validator failed for field "LearningObjective.objective_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "LearningObjective.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := learningobjective.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LearningObjective.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "LearningObjective.mastery"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LearningObjective.position"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`ent: missing required edge "LearningObjective.node"`)}
	}
	return nil
}

func (_c *LearningObjectiveCreate) sqlSave(ctx context.Context) (*LearningObjective, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningObjectiveCreate) createSpec() (*LearningObjective, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningObjective{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningobjective.Table, sqlgraph.NewFieldSpec(learningobjective.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ObjectiveKey(); ok {
		_spec.SetField(learningobjective.FieldObjectiveKey, field.TypeString, value)
		_node.ObjectiveKey = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(learningobjective.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(learningobjective.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(learningobjective.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
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
		_node.node_objectives = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LearningObjectiveCreateBulk is the builder for creating many LearningObjective entities in bulk.
type LearningObjectiveCreateBulk struct {
	config
	err      error
	builders []*LearningObjectiveCreate
}

// Save creates the LearningObjective entities in the database.
func (_c *LearningObjectiveCreateBulk) Save(ctx context.Context) ([]*LearningObjective, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningObjective, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningObjectiveMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LearningObjectiveCreateBulk) SaveX(ctx context.Context) []*LearningObjective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningObjectiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningObjectiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
