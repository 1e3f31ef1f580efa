package taxonomy

// ActivityType identifies a raw activity event submitted for a user.
type ActivityType string

const (
	ActivityTestStarted         ActivityType = "test_started"
	ActivityTestCompleted       ActivityType = "test_completed"
	ActivityQuestionAnswered    ActivityType = "question_answered"
	ActivityProblemSolved       ActivityType = "problem_solved"
	ActivityStreakMaintained    ActivityType = "streak_maintained"
	ActivityAchievementUnlocked ActivityType = "achievement_unlocked"
	ActivityLogin               ActivityType = "login"
	ActivityMockInterview       ActivityType = "mock_interview"
	ActivityDiscussionReply     ActivityType = "discussion_reply"
)

// AllActivityTypes returns the closed activity-type set.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTestStarted,
		ActivityTestCompleted,
		ActivityQuestionAnswered,
		ActivityProblemSolved,
		ActivityStreakMaintained,
		ActivityAchievementUnlocked,
		ActivityLogin,
		ActivityMockInterview,
		ActivityDiscussionReply,
	}
}

// ValidActivityType reports whether t belongs to the closed set.
func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivityTestStarted, ActivityTestCompleted, ActivityQuestionAnswered,
		ActivityProblemSolved, ActivityStreakMaintained,
		ActivityAchievementUnlocked, ActivityLogin, ActivityMockInterview,
		ActivityDiscussionReply:
		return true
	}
	return false
}
