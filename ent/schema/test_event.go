package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestEvent records a completed test. Rows are append-only: aggregates are
// recomputed onto the progress record, never back onto history.
type TestEvent struct {
	ent.Schema
}

func (TestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("test_name").NotEmpty().Immutable(),
		field.String("category").NotEmpty().Immutable(),
		field.String("difficulty").NotEmpty().Immutable(),
		field.Int("score").NonNegative().Immutable(),
		field.Int("total_score").Positive().Immutable(),
		field.Float("accuracy").Immutable().
			Comment("Declared per-test accuracy, 0-100"),
		field.Int("duration_secs").NonNegative().Immutable(),
		field.JSON("topics", []string{}).Optional().Immutable(),
	}
}

func (TestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "category"),
	}
}
