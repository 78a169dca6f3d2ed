// Code generated by ent, DO NOT EDIT.

package learningobjective

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the learningobjective type in the database.
	Label = "learning_objective"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldObjectiveKey holds the string denoting the objective_key field in the database.
	FieldObjectiveKey = "objective_key"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeNode holds the string denoting the node edge name in mutations.
	EdgeNode = "node"
	// Table holds the table name of the learningobjective in the database.
	Table = "learning_objectives"
	// NodeTable is the table that holds the node relation/edge.
	NodeTable = "learning_objectives"
	// NodeInverseTable is the table name for the Node entity.
	// It exists in this package in order to avoid circular dependency with the "node" package.
	NodeInverseTable = "nodes"
	// NodeColumn is the table column denoting the node relation/edge.
	NodeColumn = "node_objectives"
)

// Columns holds all SQL columns for learningobjective fields.
var Columns = []string{
	FieldID,
	FieldObjectiveKey,
	FieldDescription,
	FieldMastery,
	FieldPosition,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "learning_objectives"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"node_objectives",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// ObjectiveKeyValidator is a validator for the "objective_key" field. It is called by the builders before save.
	ObjectiveKeyValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery float64
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
)

// OrderOption defines the ordering options for the LearningObjective queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByObjectiveKey orders the results by the objective_key field.
func ByObjectiveKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveKey, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByNodeField orders the results by node field.
func ByNodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodeStep(), sql.OrderByField(field, opts...))
	}
}
func newNodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NodeTable, NodeColumn),
	)
}
