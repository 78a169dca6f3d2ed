package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PrereqEdge is a directed edge in the curriculum graph: source must
// be learned before target.
type PrereqEdge struct {
	ent.Schema
}

func (PrereqEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_key").
			NotEmpty().
			Comment("Node key of the prerequisite"),
		field.String("target_key").
			NotEmpty().
			Comment("Node key of the dependent node"),
	}
}

func (PrereqEdge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("prereq_edges").
			Unique().
			Required(),
	}
}

func (PrereqEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_key"),
		index.Fields("source_key"),
	}
}
