package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records a raw activity submitted for a user, persisted
// verbatim before any derived state is touched.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Caller-supplied or generated UUID for idempotency"),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("activity_type").NotEmpty().Immutable(),
		field.JSON("metadata", map[string]any{}).Optional().Immutable(),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "activity_type"),
	}
}
