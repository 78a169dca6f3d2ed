// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/autodidact/ent/prereqedge"
	"github.com/abhisek/autodidact/ent/project"
)

// PrereqEdge is the model entity for the PrereqEdge schema.
type PrereqEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Node key of the prerequisite
	SourceKey string `json:"source_key,omitempty"`
	// Node key of the dependent node
	TargetKey string `json:"target_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PrereqEdgeQuery when eager-loading is set.
	Edges                PrereqEdgeEdges `json:"edges"`
	project_prereq_edges *int
	selectValues         sql.SelectValues
}

// PrereqEdgeEdges holds the relations/edges for other nodes in the graph.
type PrereqEdgeEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PrereqEdgeEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PrereqEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prereqedge.FieldID:
			values[i] = new(sql.NullInt64)
		case prereqedge.FieldSourceKey, prereqedge.FieldTargetKey:
			values[i] = new(sql.NullString)
		case prereqedge.ForeignKeys[0]: // project_prereq_edges
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PrereqEdge fields.
func (_m *PrereqEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prereqedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case prereqedge.FieldSourceKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_key", values[i])
			} else if value.Valid {
				_m.SourceKey = value.String
			}
		case prereqedge.FieldTargetKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_key", values[i])
			} else if value.Valid {
				_m.TargetKey = value.String
			}
		case prereqedge.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field project_prereq_edges", value)
			} else if value.Valid {
				_m.project_prereq_edges = new(int)
				*_m.project_prereq_edges = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PrereqEdge.
// This includes values selected through modifiers, order, etc.
func (_m *PrereqEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the PrereqEdge entity.
func (_m *PrereqEdge) QueryProject() *ProjectQuery {
	return NewPrereqEdgeClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this PrereqEdge.
// Note that you need to call PrereqEdge.Unwrap() before calling this method if this PrereqEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PrereqEdge) Update() *PrereqEdgeUpdateOne {
	return NewPrereqEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PrereqEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PrereqEdge) Unwrap() *PrereqEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PrereqEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PrereqEdge) String() string {
	var builder strings.Builder
	builder.WriteString("PrereqEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_key=")
	builder.WriteString(_m.SourceKey)
	builder.WriteString(", ")
	builder.WriteString("target_key=")
	builder.WriteString(_m.TargetKey)
	builder.WriteByte(')')
	return builder.String()
}

// PrereqEdges is a parsable slice of PrereqEdge.
type PrereqEdges []*PrereqEdge
