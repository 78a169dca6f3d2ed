// Code generated by ent, DO NOT EDIT.

package prereqedge

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/autodidact/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldID, id))
}

// SourceKey applies equality check predicate on the "source_key" field. It's identical to SourceKeyEQ.
func SourceKey(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldSourceKey, v))
}

// TargetKey applies equality check predicate on the "target_key" field. It's identical to TargetKeyEQ.
func TargetKey(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldTargetKey, v))
}

// SourceKeyEQ applies the EQ predicate on the "source_key" field.
func SourceKeyEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldSourceKey, v))
}

// SourceKeyNEQ applies the NEQ predicate on the "source_key" field.
func SourceKeyNEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldSourceKey, v))
}

// SourceKeyIn applies the In predicate on the "source_key" field.
func SourceKeyIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldSourceKey, vs...))
}

// SourceKeyNotIn applies the NotIn predicate on the "source_key" field.
func SourceKeyNotIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldSourceKey, vs...))
}

// SourceKeyGT applies the GT predicate on the "source_key" field.
func SourceKeyGT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldSourceKey, v))
}

// SourceKeyGTE applies the GTE predicate on the "source_key" field.
func SourceKeyGTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldSourceKey, v))
}

// SourceKeyLT applies the LT predicate on the "source_key" field.
func SourceKeyLT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldSourceKey, v))
}

// SourceKeyLTE applies the LTE predicate on the "source_key" field.
func SourceKeyLTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldSourceKey, v))
}

// SourceKeyContains applies the Contains predicate on the "source_key" field.
func SourceKeyContains(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContains(FieldSourceKey, v))
}

// SourceKeyHasPrefix applies the HasPrefix predicate on the "source_key" field.
func SourceKeyHasPrefix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasPrefix(FieldSourceKey, v))
}

// SourceKeyHasSuffix applies the HasSuffix predicate on the "source_key" field.
func SourceKeyHasSuffix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasSuffix(FieldSourceKey, v))
}

// SourceKeyEqualFold applies the EqualFold predicate on the "source_key" field.
func SourceKeyEqualFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEqualFold(FieldSourceKey, v))
}

// SourceKeyContainsFold applies the ContainsFold predicate on the "source_key" field.
func SourceKeyContainsFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContainsFold(FieldSourceKey, v))
}

// TargetKeyEQ applies the EQ predicate on the "target_key" field.
func TargetKeyEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldTargetKey, v))
}

// TargetKeyNEQ applies the NEQ predicate on the "target_key" field.
func TargetKeyNEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldTargetKey, v))
}

// TargetKeyIn applies the In predicate on the "target_key" field.
func TargetKeyIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldTargetKey, vs...))
}

// TargetKeyNotIn applies the NotIn predicate on the "target_key" field.
func TargetKeyNotIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldTargetKey, vs...))
}

// TargetKeyGT applies the GT predicate on the "target_key" field.
func TargetKeyGT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldTargetKey, v))
}

// TargetKeyGTE applies the GTE predicate on the "target_key" field.
func TargetKeyGTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldTargetKey, v))
}

// TargetKeyLT applies the LT predicate on the "target_key" field.
func TargetKeyLT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldTargetKey, v))
}

// TargetKeyLTE applies the LTE predicate on the "target_key" field.
func TargetKeyLTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldTargetKey, v))
}

// TargetKeyContains applies the Contains predicate on the "target_key" field.
func TargetKeyContains(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContains(FieldTargetKey, v))
}

// TargetKeyHasPrefix applies the HasPrefix predicate on the "target_key" field.
func TargetKeyHasPrefix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasPrefix(FieldTargetKey, v))
}

// TargetKeyHasSuffix applies the HasSuffix predicate on the "target_key" field.
func TargetKeyHasSuffix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasSuffix(FieldTargetKey, v))
}

// TargetKeyEqualFold applies the EqualFold predicate on the "target_key" field.
func TargetKeyEqualFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEqualFold(FieldTargetKey, v))
}

// TargetKeyContainsFold applies the ContainsFold predicate on the "target_key" field.
func TargetKeyContainsFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContainsFold(FieldTargetKey, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.PrereqEdge {
	return predicate.PrereqEdge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.PrereqEdge {
	return predicate.PrereqEdge(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PrereqEdge) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PrereqEdge) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PrereqEdge) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.NotPredicates(p))
}
