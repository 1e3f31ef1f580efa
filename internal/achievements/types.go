package achievements

import (
	"time"

	"github.com/avinash/preptrack/internal/taxonomy"
)

// Category groups achievements by the behavior they reward.
type Category string

const (
	CategoryConsistency   Category = "consistency"
	CategoryPerformance   Category = "performance"
	CategoryVolume        Category = "volume"
	CategorySkill         Category = "skill"
	CategoryCommunity     Category = "community"
	CategoryParticipation Category = "participation"
)

// AllCategories returns the achievement categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryConsistency,
		CategoryPerformance,
		CategoryVolume,
		CategorySkill,
		CategoryCommunity,
		CategoryParticipation,
	}
}

// Stats is the aggregate user snapshot that rule predicates evaluate.
// Predicates take it as an explicit argument so every rule is independently
// unit-testable; nothing closes over ambient request state.
type Stats struct {
	UserID                  string
	CurrentStreak           int
	LongestStreak           int
	TotalTestsTaken         int
	TotalQuestionsAttempted int
	ProblemsSolved          int
	AverageAccuracy         float64
	HighestAccuracy         float64
	TotalPoints             int
	SkillProficiency        map[taxonomy.Skill]float64
	HelpfulAnswers          int
	MockInterviews          int
}

// MaxProficiency returns the highest tracked skill proficiency.
func (s Stats) MaxProficiency() float64 {
	best := 0.0
	for _, v := range s.SkillProficiency {
		if v > best {
			best = v
		}
	}
	return best
}

// MinProficiency returns the lowest tracked skill proficiency, 0 when no
// skills are tracked.
func (s Stats) MinProficiency() float64 {
	if len(s.SkillProficiency) == 0 {
		return 0
	}
	min := 100.0
	for _, v := range s.SkillProficiency {
		if v < min {
			min = v
		}
	}
	return min
}

// Rule is one immutable catalog entry. Exactly one of Unlock and Progress
// is set: Unlock rules jump straight to 100 when satisfied, Progress rules
// report partial completion as a 0-100 percentage.
type Rule struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Points      int
	Unlock      func(Stats) bool
	Progress    func(Stats) float64
}

// Status is a user's persisted state against one rule.
type Status struct {
	RuleID   string
	Progress float64
	EarnedAt *time.Time
}

// Unlocked reports whether the achievement is fully earned.
func (s Status) Unlocked() bool {
	return s.Progress >= 100
}

// Award is a newly completed achievement, returned by Evaluate and
// persisted together with its point credit.
type Award struct {
	RuleID   string
	Name     string
	Category Category
	Rarity   Rarity
	Points   int
	EarnedAt time.Time
}

// progressToward converts a current/target pair into a capped percentage.
func progressToward(value, target int) float64 {
	if target <= 0 {
		return 0
	}
	p := 100 * float64(value) / float64(target)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
