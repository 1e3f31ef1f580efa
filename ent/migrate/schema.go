// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "progress", Type: field.TypeFloat64, Default: 0},
		{Name: "earned_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_user_id_rule_id",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
			{
				Name:    "achievement_user_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[1]},
			},
		},
	}
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "activity_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4]},
			},
			{
				Name:    "activityevent_user_id_activity_type",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4], ActivityEventsColumns[5]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_active", Type: field.TypeTime, Nullable: true},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "problems_solved", Type: field.TypeInt, Default: 0},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "analytics", Type: field.TypeJSON, Nullable: true},
		{Name: "career", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
	}
	// TestEventsColumns holds the columns for the "test_events" table.
	TestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "test_name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_score", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
	}
	// TestEventsTable holds the schema information for the "test_events" table.
	TestEventsTable = &schema.Table{
		Name:       "test_events",
		Columns:    TestEventsColumns,
		PrimaryKey: []*schema.Column{TestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[1]},
			},
			{
				Name:    "testevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[2]},
			},
			{
				Name:    "testevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[3]},
			},
			{
				Name:    "testevent_user_id_category",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[3], TestEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		ActivityEventsTable,
		ProgressRecordsTable,
		TestEventsTable,
	}
)

func init() {
}
