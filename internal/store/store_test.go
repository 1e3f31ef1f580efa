package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avinash/preptrack/internal/achievements"
	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/taxonomy"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get before create: %v, want ErrNotFound", err)
	}

	doc, err := repo.GetOrCreate(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if doc.Version != 1 {
		t.Errorf("Version = %d, want 1", doc.Version)
	}
	if len(doc.Skills) != len(taxonomy.AllSkills()) {
		t.Errorf("Skills = %d entries, want the full set", len(doc.Skills))
	}
	if doc.Analytics == nil || doc.Analytics.EstimatedReadiness != 1 {
		t.Errorf("Analytics = %+v, want fresh aggregate", doc.Analytics)
	}

	// Second call returns the existing record.
	again, err := repo.GetOrCreate(ctx, "u1", testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("second get or create: %v", err)
	}
	if again.Version != 1 {
		t.Errorf("Version = %d, want unchanged 1", again.Version)
	}
}

func TestProgressUpdateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	doc, err := repo.GetOrCreate(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	doc.CurrentStreak = 4
	doc.LongestStreak = 9
	last := testNow
	doc.LastActive = &last
	doc.Analytics.Apply(scoring.TestResult{
		TestName: "t", Category: "algorithms",
		Score: 8, TotalScore: 10, Accuracy: 80, Date: testNow,
	})
	if err := doc.Skills.Update("algorithms", 80, testNow); err != nil {
		t.Fatalf("skills update: %v", err)
	}

	if err := repo.Update(ctx, doc); err != nil {
		t.Fatalf("update: %v", err)
	}
	if doc.Version != 2 {
		t.Errorf("Version = %d, want bumped to 2", doc.Version)
	}

	loaded, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.CurrentStreak != 4 || loaded.LongestStreak != 9 {
		t.Errorf("streaks = %d/%d, want 4/9", loaded.CurrentStreak, loaded.LongestStreak)
	}
	if loaded.Analytics.TotalTestsTaken != 1 || loaded.Analytics.AverageAccuracy != 80 {
		t.Errorf("analytics = %+v", loaded.Analytics)
	}
	if got := loaded.Skills["algorithms"].Proficiency; got != 80 {
		t.Errorf("proficiency = %v, want 80", got)
	}
}

func TestProgressUpdateVersionGuard(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	doc, err := repo.GetOrCreate(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	// A second reader updates first; the stale writer must fail.
	other, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	other.CurrentStreak = 1
	if err := repo.Update(ctx, other); err != nil {
		t.Fatalf("first update: %v", err)
	}

	doc.CurrentStreak = 99
	if err := repo.Update(ctx, doc); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale update: %v, want ErrVersionConflict", err)
	}

	loaded, _ := repo.Get(ctx, "u1")
	if loaded.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, stale write must not land", loaded.CurrentStreak)
	}
}

func TestAddProblemsSolved(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.AddProblemsSolved(ctx, "ghost", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("increment missing user: %v, want ErrNotFound", err)
	}

	if _, err := repo.GetOrCreate(ctx, "u1", testNow); err != nil {
		t.Fatalf("get or create: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := repo.AddProblemsSolved(ctx, "u1", 1); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	doc, _ := repo.Get(ctx, "u1")
	if doc.ProblemsSolved != 3 {
		t.Errorf("ProblemsSolved = %d, want 3", doc.ProblemsSolved)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := events.AppendTestEvent(ctx, TestEventData{
			UserID: "u1",
			Result: scoring.TestResult{
				TestName: "t", Category: "algorithms",
				Score: i, TotalScore: 10, Accuracy: float64(10 * i),
				Date: testNow.Add(time.Duration(i) * time.Hour),
			},
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := events.QueryTestEvents(ctx, "u1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	// Newest first.
	if recs[0].Result.Score != 3 || recs[1].Result.Score != 2 {
		t.Errorf("order = %d,%d, want 3,2", recs[0].Result.Score, recs[1].Result.Score)
	}
	if recs[0].Sequence <= recs[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", recs[0].Sequence, recs[1].Sequence)
	}
}

func TestActivityAppendIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	data := ActivityEventData{
		ActivityID: "act-1",
		UserID:     "u1",
		Type:       taxonomy.ActivityProblemSolved,
		Metadata:   map[string]any{"difficulty": "easy"},
	}
	if err := events.AppendActivityEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := events.AppendActivityEvent(ctx, data); !errors.Is(err, ErrDuplicateActivity) {
		t.Fatalf("replay: %v, want ErrDuplicateActivity", err)
	}

	n, err := events.CountActivityEvents(ctx, "u1", taxonomy.ActivityProblemSolved)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestAwardCreditsPointsOnce(t *testing.T) {
	s := openTestStore(t)
	progress := s.ProgressRepo()
	achRepo := s.AchievementRepo()
	ctx := context.Background()

	if _, err := progress.GetOrCreate(ctx, "u1", testNow); err != nil {
		t.Fatalf("get or create: %v", err)
	}

	award := achievements.Award{
		RuleID:   "streak_7",
		Name:     "7-Day Streak",
		Category: achievements.CategoryConsistency,
		Rarity:   achievements.RarityRare,
		Points:   250,
		EarnedAt: testNow,
	}
	if err := achRepo.Award(ctx, "u1", award); err != nil {
		t.Fatalf("award: %v", err)
	}
	// Replay must not credit again.
	if err := achRepo.Award(ctx, "u1", award); err != nil {
		t.Fatalf("replay award: %v", err)
	}

	doc, _ := progress.Get(ctx, "u1")
	if doc.TotalPoints != 250 {
		t.Errorf("TotalPoints = %d, want 250", doc.TotalPoints)
	}

	rows, err := achRepo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].EarnedAt == nil || rows[0].Progress != 100 {
		t.Errorf("row = %+v, want earned at 100", rows[0])
	}
}

func TestAwardWithoutProgressRecordRollsBack(t *testing.T) {
	s := openTestStore(t)
	achRepo := s.AchievementRepo()
	ctx := context.Background()

	err := achRepo.Award(ctx, "ghost", achievements.Award{
		RuleID: "first_test", Name: "First Steps", Points: 50, EarnedAt: testNow,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("award: %v, want ErrNotFound", err)
	}

	// The rolled-back achievement row must not exist.
	rows, err := achRepo.ListByUser(ctx, "ghost")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0 after rollback", len(rows))
	}
}

func TestUpdateProgressIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	achRepo := s.AchievementRepo()
	ctx := context.Background()

	rule, ok := achievements.RuleByID("problems_25")
	if !ok {
		t.Fatal("rule not found")
	}

	if err := achRepo.UpdateProgress(ctx, "u1", rule.ID, 40, rule); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := achRepo.UpdateProgress(ctx, "u1", rule.ID, 20, rule); err != nil {
		t.Fatalf("lower update: %v", err)
	}

	existing, err := achRepo.Existing(ctx, "u1")
	if err != nil {
		t.Fatalf("existing: %v", err)
	}
	if got := existing[rule.ID].Progress; got != 40 {
		t.Errorf("progress = %v, want 40 (never decreases)", got)
	}
}
