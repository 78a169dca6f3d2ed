// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/autodidact/ent/learningobjective"
	"github.com/abhisek/autodidact/ent/node"
)

// LearningObjective is the model entity for the LearningObjective schema.
type LearningObjective struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable identifier of the objective
	ObjectiveKey string `json:"objective_key,omitempty"`
	// What the learner should be able to do
	Description string `json:"description,omitempty"`
	// Mastery estimate in [0,1]
	Mastery float64 `json:"mastery,omitempty"`
	// Teaching order within the node
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LearningObjectiveQuery when eager-loading is set.
	Edges           LearningObjectiveEdges `json:"edges"`
	node_objectives *int
	selectValues    sql.SelectValues
}

// LearningObjectiveEdges holds the relations/edges for other nodes in the graph.
type LearningObjectiveEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LearningObjectiveEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningObjective) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningobjective.FieldMastery:
			values[i] = new(sql.NullFloat64)
		case learningobjective.FieldID, learningobjective.FieldPosition:
			values[i] = new(sql.NullInt64)
		case learningobjective.FieldObjectiveKey, learningobjective.FieldDescription:
			values[i] = new(sql.NullString)
		case learningobjective.ForeignKeys[0]: // node_objectives
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningObjective fields.
func (_m *LearningObjective) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningobjective.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningobjective.FieldObjectiveKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_key", values[i])
			} else if value.Valid {
				_m.ObjectiveKey = value.String
			}
		case learningobjective.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case learningobjective.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		case learningobjective.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case learningobjective.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field node_objectives", value)
			} else if value.Valid {
				_m.node_objectives = new(int)
				*_m.node_objectives = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningObjective.
// This includes values selected through modifiers, order, etc.
func (_m *LearningObjective) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the LearningObjective entity.
func (_m *LearningObjective) QueryNode() *NodeQuery {
	return NewLearningObjectiveClient(_m.config).QueryNode(_m)
}

// Update returns a builder for updating this LearningObjective.
// Note that you need to call LearningObjective.Unwrap() before calling this method if this LearningObjective
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningObjective) Update() *LearningObjectiveUpdateOne {
	return NewLearningObjectiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningObjective entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningObjective) Unwrap() *LearningObjective {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningObjective is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningObjective) String() string {
	var builder strings.Builder
	builder.WriteString("LearningObjective(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("objective_key=")
	builder.WriteString(_m.ObjectiveKey)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// LearningObjectives is a parsable slice of LearningObjective.
type LearningObjectives []*LearningObjective
