// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/autodidact/ent/prereqedge"
	"github.com/abhisek/autodidact/ent/project"
)

// PrereqEdgeCreate is the builder for creating a PrereqEdge entity.
type PrereqEdgeCreate struct {
	config
	mutation *PrereqEdgeMutation
	hooks    []Hook
}

// SetSourceKey sets the "source_key" field.
func (_c *PrereqEdgeCreate) SetSourceKey(v string) *PrereqEdgeCreate {
	_c.mutation.SetSourceKey(v)
	return _c
}

// SetTargetKey sets the "target_key" field.
func (_c *PrereqEdgeCreate) SetTargetKey(v string) *PrereqEdgeCreate {
	_c.mutation.SetTargetKey(v)
	return _c
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *PrereqEdgeCreate) SetProjectID(id int) *PrereqEdgeCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *PrereqEdgeCreate) SetProject(v *Project) *PrereqEdgeCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the PrereqEdgeMutation object of the builder.
func (_c *PrereqEdgeCreate) Mutation() *PrereqEdgeMutation {
	return _c.mutation
}

// Save creates the PrereqEdge in the database.
func (_c *PrereqEdgeCreate) Save(ctx context.Context) (*PrereqEdge, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrereqEdgeCreate) SaveX(ctx context.Context) *PrereqEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrereqEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrereqEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrereqEdgeCreate) check() error {
	if _, ok := _c.mutation.SourceKey(); !ok {
		return &ValidationError{Name: "source_key", err: errors.New(`ent: missing required field "PrereqEdge.source_key"`)}
	}
	if v, ok := _c.mutation.SourceKey(); ok {
		if err := prereqedge.SourceKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_key", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.source_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetKey(); !ok {
		return &ValidationError{Name: "target_key", err: errors.New(`ent: missing required field "PrereqEdge.target_key"`)}
	}
	if v, ok := _c.mutation.TargetKey(); ok {
		if err := prereqedge.TargetKeyValidator(v); err != nil {
			return &ValidationError{Name: "target_key", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.target_key": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "PrereqEdge.project"`)}
	}
	return nil
}

func (_c *PrereqEdgeCreate) sqlSave(ctx context.Context) (*PrereqEdge, error) {
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

func (_c *PrereqEdgeCreate) createSpec() (*PrereqEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &PrereqEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prereqedge.Table, sqlgraph.NewFieldSpec(prereqedge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceKey(); ok {
		_spec.SetField(prereqedge.FieldSourceKey, field.TypeString, value)
		_node.SourceKey = value
	}
	if value, ok := _c.mutation.TargetKey(); ok {
		_spec.SetField(prereqedge.FieldTargetKey, field.TypeString, value)
		_node.TargetKey = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.project_prereq_edges = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PrereqEdgeCreateBulk is the builder for creating many PrereqEdge entities in bulk.
type PrereqEdgeCreateBulk struct {
	config
	err      error
	builders []*PrereqEdgeCreate
}

// Save creates the PrereqEdge entities in the database.
func (_c *PrereqEdgeCreateBulk) Save(ctx context.Context) ([]*PrereqEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PrereqEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrereqEdgeMutation)
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
func (_c *PrereqEdgeCreateBulk) SaveX(ctx context.Context) []*PrereqEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrereqEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrereqEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
