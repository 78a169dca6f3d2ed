// Code generated by ent, DO NOT EDIT.

package prereqedge

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the prereqedge type in the database.
	Label = "prereq_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceKey holds the string denoting the source_key field in the database.
	FieldSourceKey = "source_key"
	// FieldTargetKey holds the string denoting the target_key field in the database.
	FieldTargetKey = "target_key"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// Table holds the table name of the prereqedge in the database.
	Table = "prereq_edges"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "prereq_edges"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_prereq_edges"
)

// Columns holds all SQL columns for prereqedge fields.
var Columns = []string{
	FieldID,
	FieldSourceKey,
	FieldTargetKey,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "prereq_edges"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"project_prereq_edges",
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
	// SourceKeyValidator is a validator for the "source_key" field. It is called by the builders before save.
	SourceKeyValidator func(string) error
	// TargetKeyValidator is a validator for the "target_key" field. It is called by the builders before save.
	TargetKeyValidator func(string) error
)

// OrderOption defines the ordering options for the PrereqEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceKey orders the results by the source_key field.
func BySourceKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceKey, opts...).ToFunc()
}

// ByTargetKey orders the results by the target_key field.
func ByTargetKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetKey, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
