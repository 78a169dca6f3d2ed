// Code generated by ent, DO NOT EDIT.

package learningobjective

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/autodidact/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLTE(FieldID, id))
}

// ObjectiveKey applies equality check predicate on the "objective_key" field. It's identical to ObjectiveKeyEQ.
func ObjectiveKey(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldObjectiveKey, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldDescription, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldMastery, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldPosition, v))
}

// ObjectiveKeyEQ applies the EQ predicate on the "objective_key" field.
func ObjectiveKeyEQ(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldObjectiveKey, v))
}

// ObjectiveKeyNEQ applies the NEQ predicate on the "objective_key" field.
func ObjectiveKeyNEQ(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNEQ(FieldObjectiveKey, v))
}

// ObjectiveKeyIn applies the In predicate on the "objective_key" field.
func ObjectiveKeyIn(vs ...string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldIn(FieldObjectiveKey, vs...))
}

// ObjectiveKeyNotIn applies the NotIn predicate on the "objective_key" field.
func ObjectiveKeyNotIn(vs ...string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNotIn(FieldObjectiveKey, vs...))
}

// ObjectiveKeyGT applies the GT predicate on the "objective_key" field.
func ObjectiveKeyGT(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGT(FieldObjectiveKey, v))
}

// ObjectiveKeyGTE applies the GTE predicate on the "objective_key" field.
func ObjectiveKeyGTE(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGTE(FieldObjectiveKey, v))
}

// ObjectiveKeyLT applies the LT predicate on the "objective_key" field.
func ObjectiveKeyLT(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLT(FieldObjectiveKey, v))
}

// ObjectiveKeyLTE applies the LTE predicate on the "objective_key" field.
func ObjectiveKeyLTE(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLTE(FieldObjectiveKey, v))
}

// ObjectiveKeyContains applies the Contains predicate on the "objective_key" field.
func ObjectiveKeyContains(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldContains(FieldObjectiveKey, v))
}

// ObjectiveKeyHasPrefix applies the HasPrefix predicate on the "objective_key" field.
func ObjectiveKeyHasPrefix(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldHasPrefix(FieldObjectiveKey, v))
}

// ObjectiveKeyHasSuffix applies the HasSuffix predicate on the "objective_key" field.
func ObjectiveKeyHasSuffix(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldHasSuffix(FieldObjectiveKey, v))
}

// ObjectiveKeyEqualFold applies the EqualFold predicate on the "objective_key" field.
func ObjectiveKeyEqualFold(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEqualFold(FieldObjectiveKey, v))
}

// ObjectiveKeyContainsFold applies the ContainsFold predicate on the "objective_key" field.
func ObjectiveKeyContainsFold(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldContainsFold(FieldObjectiveKey, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldContainsFold(FieldDescription, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLTE(FieldMastery, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.LearningObjective {
	return predicate.LearningObjective(sql.FieldLTE(FieldPosition, v))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.LearningObjective {
	return predicate.LearningObjective(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.Node) predicate.LearningObjective {
	return predicate.LearningObjective(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningObjective) predicate.LearningObjective {
	return predicate.LearningObjective(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningObjective) predicate.LearningObjective {
	return predicate.LearningObjective(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningObjective) predicate.LearningObjective {
	return predicate.LearningObjective(sql.NotPredicates(p))
}
