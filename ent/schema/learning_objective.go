package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningObjective is a single teachable outcome within a node.
// Mastery is a running estimate in [0,1], updated after graded tests.
type LearningObjective struct {
	ent.Schema
}

func (LearningObjective) Fields() []ent.Field {
	return []ent.Field{
		field.String("objective_key").
			Unique().
			NotEmpty().
			Comment("Stable identifier of the objective"),
		field.String("description").
			NotEmpty().
			Comment("What the learner should be able to do"),
		field.Float("mastery").
			Default(0).
			Comment("Mastery estimate in [0,1]"),
		field.Int("position").
			Default(0).
			Comment("Teaching order within the node"),
	}
}

func (LearningObjective) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", Node.Type).
			Ref("objectives").
			Unique().
			Required(),
	}
}

func (LearningObjective) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("objective_key"),
	}
}
