package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Node is one unit of the curriculum graph: a concept with its own
// learning objectives, connected to other nodes by prerequisite edges.
type Node struct {
	ent.Schema
}

func (Node) Fields() []ent.Field {
	return []ent.Field{
		field.String("node_key").
			NotEmpty().
			Comment("Stable key of the node within its project graph"),
		field.String("label").
			NotEmpty().
			Comment("Human-readable concept name"),
	}
}

func (Node) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("nodes").
			Unique().
			Required(),
		edge.To("objectives", LearningObjective.Type),
	}
}

func (Node) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_key").
			Edges("project").
			Unique(),
	}
}
