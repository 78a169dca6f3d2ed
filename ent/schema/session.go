package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one tutoring session on a single curriculum node.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID identifying the session"),
		field.Int("project_id").
			Comment("Project the session belongs to"),
		field.Int("node_id").
			Comment("Curriculum node being taught"),
		field.String("status").
			Default("active").
			Comment("active, completed, or abandoned"),
		field.Float("final_score").
			Default(0).
			Comment("Overall test score at wrap, 0 if not reached"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status"),
		index.Fields("node_id"),
	}
}
