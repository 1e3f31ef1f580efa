// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avinash/preptrack/ent/achievement"
	"github.com/avinash/preptrack/ent/activityevent"
	"github.com/avinash/preptrack/ent/progressrecord"
	"github.com/avinash/preptrack/ent/schema"
	"github.com/avinash/preptrack/ent/testevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[0].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescRuleID is the schema descriptor for rule_id field.
	achievementDescRuleID := achievementFields[1].Descriptor()
	// achievement.RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	achievement.RuleIDValidator = achievementDescRuleID.Validators[0].(func(string) error)
	// achievementDescName is the schema descriptor for name field.
	achievementDescName := achievementFields[2].Descriptor()
	// achievement.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievement.NameValidator = achievementDescName.Validators[0].(func(string) error)
	// achievementDescCategory is the schema descriptor for category field.
	achievementDescCategory := achievementFields[3].Descriptor()
	// achievement.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievement.CategoryValidator = achievementDescCategory.Validators[0].(func(string) error)
	// achievementDescRarity is the schema descriptor for rarity field.
	achievementDescRarity := achievementFields[4].Descriptor()
	// achievement.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	achievement.RarityValidator = achievementDescRarity.Validators[0].(func(string) error)
	// achievementDescPoints is the schema descriptor for points field.
	achievementDescPoints := achievementFields[5].Descriptor()
	// achievement.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	achievement.PointsValidator = achievementDescPoints.Validators[0].(func(int) error)
	// achievementDescProgress is the schema descriptor for progress field.
	achievementDescProgress := achievementFields[6].Descriptor()
	// achievement.DefaultProgress holds the default value on creation for the progress field.
	achievement.DefaultProgress = achievementDescProgress.Default.(float64)
	// achievementDescIsActive is the schema descriptor for is_active field.
	achievementDescIsActive := achievementFields[8].Descriptor()
	// achievement.DefaultIsActive holds the default value on creation for the is_active field.
	achievement.DefaultIsActive = achievementDescIsActive.Default.(bool)
	// achievementDescCreatedAt is the schema descriptor for created_at field.
	achievementDescCreatedAt := achievementFields[9].Descriptor()
	// achievement.DefaultCreatedAt holds the default value on creation for the created_at field.
	achievement.DefaultCreatedAt = achievementDescCreatedAt.Default.(func() time.Time)
	// achievementDescUpdatedAt is the schema descriptor for updated_at field.
	achievementDescUpdatedAt := achievementFields[10].Descriptor()
	// achievement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	achievement.DefaultUpdatedAt = achievementDescUpdatedAt.Default.(func() time.Time)
	// achievement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	achievement.UpdateDefaultUpdatedAt = achievementDescUpdatedAt.UpdateDefault.(func() time.Time)
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescActivityID is the schema descriptor for activity_id field.
	activityeventDescActivityID := activityeventFields[0].Descriptor()
	// activityevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	activityevent.ActivityIDValidator = activityeventDescActivityID.Validators[0].(func(string) error)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[1].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescActivityType is the schema descriptor for activity_type field.
	activityeventDescActivityType := activityeventFields[2].Descriptor()
	// activityevent.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	activityevent.ActivityTypeValidator = activityeventDescActivityType.Validators[0].(func(string) error)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescCurrentStreak is the schema descriptor for current_streak field.
	progressrecordDescCurrentStreak := progressrecordFields[1].Descriptor()
	// progressrecord.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	progressrecord.DefaultCurrentStreak = progressrecordDescCurrentStreak.Default.(int)
	// progressrecord.CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	progressrecord.CurrentStreakValidator = progressrecordDescCurrentStreak.Validators[0].(func(int) error)
	// progressrecordDescLongestStreak is the schema descriptor for longest_streak field.
	progressrecordDescLongestStreak := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	progressrecord.DefaultLongestStreak = progressrecordDescLongestStreak.Default.(int)
	// progressrecord.LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	progressrecord.LongestStreakValidator = progressrecordDescLongestStreak.Validators[0].(func(int) error)
	// progressrecordDescTotalPoints is the schema descriptor for total_points field.
	progressrecordDescTotalPoints := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultTotalPoints holds the default value on creation for the total_points field.
	progressrecord.DefaultTotalPoints = progressrecordDescTotalPoints.Default.(int)
	// progressrecord.TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	progressrecord.TotalPointsValidator = progressrecordDescTotalPoints.Validators[0].(func(int) error)
	// progressrecordDescProblemsSolved is the schema descriptor for problems_solved field.
	progressrecordDescProblemsSolved := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultProblemsSolved holds the default value on creation for the problems_solved field.
	progressrecord.DefaultProblemsSolved = progressrecordDescProblemsSolved.Default.(int)
	// progressrecord.ProblemsSolvedValidator is a validator for the "problems_solved" field. It is called by the builders before save.
	progressrecord.ProblemsSolvedValidator = progressrecordDescProblemsSolved.Validators[0].(func(int) error)
	// progressrecordDescVersion is the schema descriptor for version field.
	progressrecordDescVersion := progressrecordFields[9].Descriptor()
	// progressrecord.DefaultVersion holds the default value on creation for the version field.
	progressrecord.DefaultVersion = progressrecordDescVersion.Default.(int64)
	// progressrecordDescCreatedAt is the schema descriptor for created_at field.
	progressrecordDescCreatedAt := progressrecordFields[10].Descriptor()
	// progressrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	progressrecord.DefaultCreatedAt = progressrecordDescCreatedAt.Default.(func() time.Time)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[11].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	testeventMixin := schema.TestEvent{}.Mixin()
	testeventMixinFields0 := testeventMixin[0].Fields()
	_ = testeventMixinFields0
	testeventFields := schema.TestEvent{}.Fields()
	_ = testeventFields
	// testeventDescTimestamp is the schema descriptor for timestamp field.
	testeventDescTimestamp := testeventMixinFields0[1].Descriptor()
	// testevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	testevent.DefaultTimestamp = testeventDescTimestamp.Default.(func() time.Time)
	// testeventDescUserID is the schema descriptor for user_id field.
	testeventDescUserID := testeventFields[0].Descriptor()
	// testevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	testevent.UserIDValidator = testeventDescUserID.Validators[0].(func(string) error)
	// testeventDescTestName is the schema descriptor for test_name field.
	testeventDescTestName := testeventFields[1].Descriptor()
	// testevent.TestNameValidator is a validator for the "test_name" field. It is called by the builders before save.
	testevent.TestNameValidator = testeventDescTestName.Validators[0].(func(string) error)
	// testeventDescCategory is the schema descriptor for category field.
	testeventDescCategory := testeventFields[2].Descriptor()
	// testevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	testevent.CategoryValidator = testeventDescCategory.Validators[0].(func(string) error)
	// testeventDescDifficulty is the schema descriptor for difficulty field.
	testeventDescDifficulty := testeventFields[3].Descriptor()
	// testevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	testevent.DifficultyValidator = testeventDescDifficulty.Validators[0].(func(string) error)
	// testeventDescScore is the schema descriptor for score field.
	testeventDescScore := testeventFields[4].Descriptor()
	// testevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	testevent.ScoreValidator = testeventDescScore.Validators[0].(func(int) error)
	// testeventDescTotalScore is the schema descriptor for total_score field.
	testeventDescTotalScore := testeventFields[5].Descriptor()
	// testevent.TotalScoreValidator is a validator for the "total_score" field. It is called by the builders before save.
	testevent.TotalScoreValidator = testeventDescTotalScore.Validators[0].(func(int) error)
	// testeventDescDurationSecs is the schema descriptor for duration_secs field.
	testeventDescDurationSecs := testeventFields[7].Descriptor()
	// testevent.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	testevent.DurationSecsValidator = testeventDescDurationSecs.Validators[0].(func(int) error)
}
