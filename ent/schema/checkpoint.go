package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint stores a serialized session state after each phase
// transition, enabling resume after interruption or crash.
type Checkpoint struct {
	ent.Schema
}

func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session this checkpoint belongs to"),
		field.String("phase").
			NotEmpty().
			Comment("Phase at the time of the checkpoint"),
		field.JSON("state", json.RawMessage{}).
			Comment("Full serialized session state"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}
