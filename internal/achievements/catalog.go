package achievements

// Catalog returns the full rule set in evaluation order. The catalog is
// immutable process-wide configuration: ids are stable (clients and stored
// rows key on them), display names are presentational and safe to rename.
func Catalog() []Rule {
	return catalog
}

// RuleByID looks up a catalog rule by its stable id.
func RuleByID(id string) (Rule, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

var catalog = []Rule{
	// Consistency: daily streak milestones.
	{
		ID:          "streak_3",
		Name:        "Getting Started",
		Description: "Practice 3 days in a row",
		Category:    CategoryConsistency,
		Rarity:      StreakRarity(3),
		Points:      100,
		Unlock:      func(s Stats) bool { return s.CurrentStreak >= 3 },
	},
	{
		ID:          "streak_7",
		Name:        "7-Day Streak",
		Description: "Practice every day for a week",
		Category:    CategoryConsistency,
		Rarity:      StreakRarity(7),
		Points:      250,
		Unlock:      func(s Stats) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID:          "streak_30",
		Name:        "Monthly Master",
		Description: "Practice every day for 30 days",
		Category:    CategoryConsistency,
		Rarity:      StreakRarity(30),
		Points:      1000,
		Unlock:      func(s Stats) bool { return s.CurrentStreak >= 30 },
	},
	{
		ID:          "streak_100",
		Name:        "Centurion",
		Description: "Practice every day for 100 days",
		Category:    CategoryConsistency,
		Rarity:      StreakRarity(100),
		Points:      2500,
		Unlock:      func(s Stats) bool { return s.CurrentStreak >= 100 },
	},

	// Performance.
	{
		ID:          "perfect_test",
		Name:        "Flawless",
		Description: "Score 100% on a test",
		Category:    CategoryPerformance,
		Rarity:      RarityRare,
		Points:      300,
		Unlock:      func(s Stats) bool { return s.HighestAccuracy >= 100 },
	},
	{
		ID:          "accuracy_90",
		Name:        "Sharpshooter",
		Description: "Hold 90% average accuracy over at least 5 tests",
		Category:    CategoryPerformance,
		Rarity:      RarityEpic,
		Points:      500,
		Unlock: func(s Stats) bool {
			return s.TotalTestsTaken >= 5 && s.AverageAccuracy >= 90
		},
	},
	{
		ID:          "points_5000",
		Name:        "Point Collector",
		Description: "Accumulate 5,000 achievement points",
		Category:    CategoryPerformance,
		Rarity:      RarityLegendary,
		Points:      1000,
		Unlock:      func(s Stats) bool { return s.TotalPoints >= 5000 },
	},

	// Volume: first test unlocks instantly, the rest track progress.
	{
		ID:          "first_test",
		Name:        "First Steps",
		Description: "Complete your first test",
		Category:    CategoryVolume,
		Rarity:      RarityCommon,
		Points:      50,
		Unlock:      func(s Stats) bool { return s.TotalTestsTaken >= 1 },
	},
	{
		ID:          "tests_10",
		Name:        "Test Veteran",
		Description: "Complete 10 tests",
		Category:    CategoryVolume,
		Rarity:      RarityCommon,
		Points:      150,
		Progress:    func(s Stats) float64 { return progressToward(s.TotalTestsTaken, 10) },
	},
	{
		ID:          "tests_50",
		Name:        "Test Centurion",
		Description: "Complete 50 tests",
		Category:    CategoryVolume,
		Rarity:      RarityRare,
		Points:      500,
		Progress:    func(s Stats) float64 { return progressToward(s.TotalTestsTaken, 50) },
	},
	{
		ID:          "questions_100",
		Name:        "Century",
		Description: "Attempt 100 questions",
		Category:    CategoryVolume,
		Rarity:      RarityCommon,
		Points:      200,
		Progress:    func(s Stats) float64 { return progressToward(s.TotalQuestionsAttempted, 100) },
	},
	{
		ID:          "questions_500",
		Name:        "Scholar",
		Description: "Attempt 500 questions",
		Category:    CategoryVolume,
		Rarity:      RarityRare,
		Points:      400,
		Progress:    func(s Stats) float64 { return progressToward(s.TotalQuestionsAttempted, 500) },
	},
	{
		ID:          "problems_25",
		Name:        "Problem Solver",
		Description: "Solve 25 practice problems",
		Category:    CategoryVolume,
		Rarity:      RarityCommon,
		Points:      150,
		Progress:    func(s Stats) float64 { return progressToward(s.ProblemsSolved, 25) },
	},
	{
		ID:          "problems_100",
		Name:        "Grinder",
		Description: "Solve 100 practice problems",
		Category:    CategoryVolume,
		Rarity:      RarityEpic,
		Points:      750,
		Progress:    func(s Stats) float64 { return progressToward(s.ProblemsSolved, 100) },
	},

	// Skill.
	{
		ID:          "skill_90",
		Name:        "Specialist",
		Description: "Reach 90 proficiency in any skill",
		Category:    CategorySkill,
		Rarity:      RarityEpic,
		Points:      750,
		Unlock:      func(s Stats) bool { return s.MaxProficiency() >= 90 },
	},
	{
		ID:          "all_skills_50",
		Name:        "Well Rounded",
		Description: "Reach 50 proficiency in every skill",
		Category:    CategorySkill,
		Rarity:      RarityRare,
		Points:      400,
		Unlock: func(s Stats) bool {
			return len(s.SkillProficiency) > 0 && s.MinProficiency() >= 50
		},
	},

	// Community.
	{
		ID:          "helpful_10",
		Name:        "Community Helper",
		Description: "Have 10 answers marked helpful",
		Category:    CategoryCommunity,
		Rarity:      RarityRare,
		Points:      300,
		Progress:    func(s Stats) float64 { return progressToward(s.HelpfulAnswers, 10) },
	},

	// Participation.
	{
		ID:          "mock_interview_1",
		Name:        "Interview Ready",
		Description: "Complete your first mock interview",
		Category:    CategoryParticipation,
		Rarity:      RarityCommon,
		Points:      100,
		Unlock:      func(s Stats) bool { return s.MockInterviews >= 1 },
	},
}
