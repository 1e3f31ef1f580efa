package scoring

import (
	"testing"

	"github.com/avinash/preptrack/internal/taxonomy"
)

func result(cat taxonomy.Skill, score, total, duration int) TestResult {
	return TestResult{
		TestName:     "t",
		Category:     cat,
		Score:        score,
		TotalScore:   total,
		Accuracy:     100 * float64(score) / float64(total),
		DurationSecs: duration,
		Date:         testNow,
	}
}

func TestAnalytics_AverageAccuracyIsRatioOfSums(t *testing.T) {
	a := NewAnalytics()
	a.Apply(result("algorithms", 5, 10, 100))
	a.Apply(result("algorithms", 10, 10, 50))

	// 15 correct out of 20, not the mean of the per-test percentages.
	if a.AverageAccuracy != 75 {
		t.Errorf("AverageAccuracy = %v, want 75", a.AverageAccuracy)
	}
	if a.TotalQuestionsAttempted != 20 {
		t.Errorf("TotalQuestionsAttempted = %d, want 20", a.TotalQuestionsAttempted)
	}
	if a.AverageTimePerQuestion != 7.5 {
		t.Errorf("AverageTimePerQuestion = %v, want 7.5", a.AverageTimePerQuestion)
	}
}

func TestAnalytics_WeightedAverageDiffersFromMeanOfPercentages(t *testing.T) {
	a := NewAnalytics()
	a.Apply(result("algorithms", 1, 2, 0))   // 50%
	a.Apply(result("algorithms", 90, 98, 0)) // ~91.8%

	// Mean of percentages would be ~70.9; the ratio is 91/100.
	if a.AverageAccuracy != 91 {
		t.Errorf("AverageAccuracy = %v, want 91", a.AverageAccuracy)
	}
}

func TestAnalytics_RecentAccuraciesWindow(t *testing.T) {
	a := NewAnalytics()
	for i := 0; i < AccuracyWindow+5; i++ {
		a.Apply(result("algorithms", 8, 10, 60))
	}
	if len(a.RecentAccuracies) != AccuracyWindow {
		t.Errorf("len(RecentAccuracies) = %d, want %d", len(a.RecentAccuracies), AccuracyWindow)
	}
}

func TestAnalytics_ConsistencyPerfectlyStable(t *testing.T) {
	a := NewAnalytics()
	for i := 0; i < 5; i++ {
		a.Apply(result("algorithms", 8, 10, 60))
	}
	// Identical accuracies have zero deviation.
	if a.ConsistencyScore != 100 {
		t.Errorf("ConsistencyScore = %v, want 100", a.ConsistencyScore)
	}
}

func TestAnalytics_ConsistencyDropsWithVariance(t *testing.T) {
	a := NewAnalytics()
	a.Apply(result("algorithms", 10, 10, 60))
	a.Apply(result("algorithms", 0, 10, 60))

	// Accuracies 100 and 0: stddev 50, consistency 50.
	if a.ConsistencyScore != 50 {
		t.Errorf("ConsistencyScore = %v, want 50", a.ConsistencyScore)
	}
}

func TestAnalytics_ReadinessLevels(t *testing.T) {
	tests := []struct {
		weighted float64
		want     int
	}{
		{95, 5},
		{90, 5},
		{85, 4},
		{75, 3},
		{65, 2},
		{30, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := readinessLevel(tt.weighted); got != tt.want {
			t.Errorf("readinessLevel(%v) = %d, want %d", tt.weighted, got, tt.want)
		}
	}
}

func TestAnalytics_WeakAndStrongAreas(t *testing.T) {
	a := NewAnalytics()
	a.Apply(result("algorithms", 9, 10, 60))      // 90, strong
	a.Apply(result("databases", 5, 10, 60))       // 50, weak
	a.Apply(result("networking", 6, 10, 60))      // 60, weak
	a.Apply(result("system-design", 8, 10, 60))   // 80, strong
	a.Apply(result("data-structures", 7, 10, 60)) // 70, neither

	wantWeak := []taxonomy.Skill{"databases", "networking"}
	if len(a.WeakAreas) != len(wantWeak) {
		t.Fatalf("WeakAreas = %v, want %v", a.WeakAreas, wantWeak)
	}
	for i, s := range wantWeak {
		if a.WeakAreas[i] != s {
			t.Errorf("WeakAreas[%d] = %s, want %s", i, a.WeakAreas[i], s)
		}
	}

	wantStrong := []taxonomy.Skill{"algorithms", "system-design"}
	if len(a.StrongAreas) != len(wantStrong) {
		t.Fatalf("StrongAreas = %v, want %v", a.StrongAreas, wantStrong)
	}
	for i, s := range wantStrong {
		if a.StrongAreas[i] != s {
			t.Errorf("StrongAreas[%d] = %s, want %s", i, a.StrongAreas[i], s)
		}
	}
}

func TestAnalytics_AreaLimit(t *testing.T) {
	a := NewAnalytics()
	for _, s := range taxonomy.AllSkills() {
		a.Apply(result(s, 1, 10, 60))
	}
	if len(a.WeakAreas) != AreaLimit {
		t.Errorf("len(WeakAreas) = %d, want %d", len(a.WeakAreas), AreaLimit)
	}
}

func TestAnalytics_CategoryAccuracy(t *testing.T) {
	a := NewAnalytics()
	a.Apply(result("algorithms", 5, 10, 60))
	a.Apply(result("algorithms", 9, 10, 60))

	acc, ok := a.CategoryAccuracy("algorithms")
	if !ok {
		t.Fatal("expected algorithms activity")
	}
	if acc != 70 {
		t.Errorf("CategoryAccuracy = %v, want 70", acc)
	}

	if _, ok := a.CategoryAccuracy("databases"); ok {
		t.Error("expected no databases activity")
	}
}

func TestAnalytics_HighestAccuracy(t *testing.T) {
	a := NewAnalytics()
	if a.HighestAccuracy() != 0 {
		t.Errorf("HighestAccuracy (empty) = %v, want 0", a.HighestAccuracy())
	}
	a.Apply(result("algorithms", 5, 10, 60))
	a.Apply(result("algorithms", 10, 10, 60))
	a.Apply(result("algorithms", 7, 10, 60))
	if a.HighestAccuracy() != 100 {
		t.Errorf("HighestAccuracy = %v, want 100", a.HighestAccuracy())
	}
}
