package scoring

import (
	"math"
	"sort"

	"github.com/avinash/preptrack/internal/taxonomy"
)

const (
	// AccuracyWindow is the rolling window of per-test accuracies feeding
	// the consistency score.
	AccuracyWindow = 20

	// WeakAreaThreshold marks a category as weak below this accuracy.
	WeakAreaThreshold = 70.0

	// StrongAreaThreshold marks a category as strong at or above this accuracy.
	StrongAreaThreshold = 80.0

	// AreaLimit caps the number of reported weak/strong areas.
	AreaLimit = 3
)

// CategoryStats accumulates raw per-category totals.
type CategoryStats struct {
	Tests    int `json:"tests"`
	ScoreSum int `json:"score_sum"`
	TotalSum int `json:"total_sum"`
}

// Accuracy returns the category's running accuracy ratio, 0-100.
func (c CategoryStats) Accuracy() float64 {
	if c.TotalSum == 0 {
		return 0
	}
	return 100 * float64(c.ScoreSum) / float64(c.TotalSum)
}

// Analytics is the derived study aggregate kept on the progress record.
// Raw accumulators are stored so each new result updates in O(1) without
// refetching history; derived fields are recomputed on every Apply.
type Analytics struct {
	TotalQuestionsAttempted int                                  `json:"total_questions_attempted"`
	TotalTestsTaken         int                                  `json:"total_tests_taken"`
	ScoreSum                int                                  `json:"score_sum"`
	TotalScoreSum           int                                  `json:"total_score_sum"`
	DurationSum             int                                  `json:"duration_sum"`
	AverageAccuracy         float64                              `json:"average_accuracy"`
	AverageTimePerQuestion  float64                              `json:"average_time_per_question"`
	ConsistencyScore        float64                              `json:"consistency_score"`
	EstimatedReadiness      int                                  `json:"estimated_readiness"`
	RecentAccuracies        []float64                            `json:"recent_accuracies,omitempty"`
	Categories              map[taxonomy.Skill]*CategoryStats    `json:"categories,omitempty"`
	WeakAreas               []taxonomy.Skill                     `json:"weak_areas,omitempty"`
	StrongAreas             []taxonomy.Skill                     `json:"strong_areas,omitempty"`
}

// NewAnalytics returns a zero-valued aggregate with readiness at the floor.
func NewAnalytics() *Analytics {
	return &Analytics{
		EstimatedReadiness: 1,
		Categories:         make(map[taxonomy.Skill]*CategoryStats),
	}
}

// Apply folds one new test result into the aggregate and recomputes every
// derived field.
func (a *Analytics) Apply(r TestResult) {
	a.TotalTestsTaken++
	a.TotalQuestionsAttempted += r.TotalScore
	a.ScoreSum += r.Score
	a.TotalScoreSum += r.TotalScore
	a.DurationSum += r.DurationSecs

	a.RecentAccuracies = append(a.RecentAccuracies, r.Accuracy)
	if len(a.RecentAccuracies) > AccuracyWindow {
		a.RecentAccuracies = a.RecentAccuracies[len(a.RecentAccuracies)-AccuracyWindow:]
	}

	if a.Categories == nil {
		a.Categories = make(map[taxonomy.Skill]*CategoryStats)
	}
	cs, ok := a.Categories[r.Category]
	if !ok {
		cs = &CategoryStats{}
		a.Categories[r.Category] = cs
	}
	cs.Tests++
	cs.ScoreSum += r.Score
	cs.TotalSum += r.TotalScore

	a.recompute()
}

// CategoryAccuracy returns the running accuracy ratio for one category,
// and whether the user has any activity in it.
func (a *Analytics) CategoryAccuracy(cat taxonomy.Skill) (float64, bool) {
	cs, ok := a.Categories[cat]
	if !ok || cs.Tests == 0 {
		return 0, false
	}
	return cs.Accuracy(), true
}

// HighestAccuracy returns the best declared per-test accuracy in the
// recent window, 0 when no tests have been taken.
func (a *Analytics) HighestAccuracy() float64 {
	best := 0.0
	for _, v := range a.RecentAccuracies {
		if v > best {
			best = v
		}
	}
	return best
}

func (a *Analytics) recompute() {
	// The running ratio of raw correct to raw total is the authoritative
	// average accuracy. The per-test declared accuracies feed only the
	// consistency variance.
	if a.TotalScoreSum > 0 {
		a.AverageAccuracy = 100 * float64(a.ScoreSum) / float64(a.TotalScoreSum)
		a.AverageTimePerQuestion = float64(a.DurationSum) / float64(a.TotalScoreSum)
	} else {
		a.AverageAccuracy = 0
		a.AverageTimePerQuestion = 0
	}

	a.ConsistencyScore = consistency(a.RecentAccuracies)
	a.EstimatedReadiness = readinessLevel(0.7*a.AverageAccuracy + 0.3*a.ConsistencyScore)
	a.WeakAreas, a.StrongAreas = rankAreas(a.Categories)
}

// consistency is 100 minus the standard deviation of the recent per-test
// accuracies, floored at zero. Stable performance scores high.
func consistency(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	score := 100 - math.Sqrt(variance)
	if score < 0 {
		return 0
	}
	return score
}

// readinessLevel buckets the weighted accuracy/consistency score into 1-5.
func readinessLevel(weighted float64) int {
	switch {
	case weighted >= 90:
		return 5
	case weighted >= 80:
		return 4
	case weighted >= 70:
		return 3
	case weighted >= 60:
		return 2
	default:
		return 1
	}
}

// rankAreas picks the weakest categories below the weak threshold
// (ascending) and the strongest at or above the strong threshold
// (descending), three of each at most.
func rankAreas(cats map[taxonomy.Skill]*CategoryStats) (weak, strong []taxonomy.Skill) {
	type area struct {
		skill taxonomy.Skill
		acc   float64
	}
	var all []area
	for s, cs := range cats {
		if cs.Tests == 0 {
			continue
		}
		all = append(all, area{skill: s, acc: cs.Accuracy()})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].acc != all[j].acc {
			return all[i].acc < all[j].acc
		}
		return all[i].skill < all[j].skill
	})
	for _, ar := range all {
		if ar.acc < WeakAreaThreshold && len(weak) < AreaLimit {
			weak = append(weak, ar.skill)
		}
	}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].acc >= StrongAreaThreshold && len(strong) < AreaLimit {
			strong = append(strong, all[i].skill)
		}
	}
	return weak, strong
}
