package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord is the per-user progress document. Exactly one row exists
// per user; it is created lazily on the user's first event and updated
// read-modify-write under an optimistic version check.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("current_streak").
			Default(0).
			NonNegative(),
		field.Int("longest_streak").
			Default(0).
			NonNegative(),
		field.Time("last_active").
			Optional().
			Nillable().
			Comment("Calendar date of the most recent qualifying activity"),
		field.Int("total_points").
			Default(0).
			NonNegative().
			Comment("Sum of points over fully earned achievements"),
		field.Int("problems_solved").
			Default(0).
			NonNegative(),
		field.JSON("skills", map[string]any{}).
			Optional().
			Comment("Per-skill proficiency entries with history"),
		field.JSON("analytics", map[string]any{}).
			Optional().
			Comment("Derived study analytics aggregate"),
		field.JSON("career", map[string]any{}).
			Optional().
			Comment("Per-track career projection"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency guard; bumped on every update"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
