package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement holds one user's state against one catalog rule. The
// (user_id, rule_id) pair is unique: progress only ever increases and
// earned_at is set exactly once, when progress first reaches 100.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("rule_id").NotEmpty().Immutable().
			Comment("Stable catalog rule id; the display name is presentational"),
		field.String("name").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.Int("points").NonNegative(),
		field.Float("progress").
			Default(0).
			Comment("0-100, monotonically non-decreasing"),
		field.Time("earned_at").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "rule_id").Unique(),
		index.Fields("user_id"),
	}
}
