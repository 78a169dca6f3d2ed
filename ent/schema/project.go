package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Project is a learning project: a topic the learner is studying,
// decomposed into a graph of curriculum nodes.
type Project struct {
	ent.Schema
}

// Resource is a serialized learning resource attached to a project.
type Resource struct {
	ResourceID string `json:"resource_id"`
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Overall topic of the project"),
		field.JSON("resources", []Resource{}).
			Optional().
			Comment("Learning resources cited during teaching"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("nodes", Node.Type),
		edge.To("prereq_edges", PrereqEdge.Type),
	}
}
