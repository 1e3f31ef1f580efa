package progress

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avinash/preptrack/internal/achievements"
	"github.com/avinash/preptrack/internal/leaderboard"
	"github.com/avinash/preptrack/internal/proficiency"
	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/store"
	"github.com/avinash/preptrack/internal/taxonomy"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// world is the shared in-memory state behind the mock repositories. It
// mirrors the store semantics the service relies on: guarded updates,
// atomic counters, idempotent activity appends and transactional awards.
type world struct {
	mu             sync.Mutex
	docs           map[string]*store.ProgressDoc
	tests          []store.TestEventRecord
	activities     []store.ActivityEventRecord
	achState       map[string]map[string]store.AchievementRecord
	seq            int64
	forceConflicts int
}

func newWorld() *world {
	return &world{
		docs:     make(map[string]*store.ProgressDoc),
		achState: make(map[string]map[string]store.AchievementRecord),
	}
}

func cloneDoc(doc *store.ProgressDoc) *store.ProgressDoc {
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	out := &store.ProgressDoc{}
	if err := json.Unmarshal(b, out); err != nil {
		panic(err)
	}
	return out
}

type mockProgressRepo struct{ w *world }

func (m *mockProgressRepo) GetOrCreate(ctx context.Context, userID string, now time.Time) (*store.ProgressDoc, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	if doc, ok := m.w.docs[userID]; ok {
		return cloneDoc(doc), nil
	}
	doc := &store.ProgressDoc{
		UserID:    userID,
		Skills:    proficiency.DefaultSet(now),
		Analytics: scoring.NewAnalytics(),
		Version:   1,
	}
	m.w.docs[userID] = doc
	return cloneDoc(doc), nil
}

func (m *mockProgressRepo) Get(ctx context.Context, userID string) (*store.ProgressDoc, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	doc, ok := m.w.docs[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (m *mockProgressRepo) Update(ctx context.Context, doc *store.ProgressDoc) error {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	if m.w.forceConflicts > 0 {
		m.w.forceConflicts--
		return store.ErrVersionConflict
	}
	stored, ok := m.w.docs[doc.UserID]
	if !ok || stored.Version != doc.Version {
		return store.ErrVersionConflict
	}
	next := cloneDoc(doc)
	// Counters change only through their atomic paths.
	next.TotalPoints = stored.TotalPoints
	next.ProblemsSolved = stored.ProblemsSolved
	next.Version = stored.Version + 1
	m.w.docs[doc.UserID] = next
	doc.Version = next.Version
	return nil
}

func (m *mockProgressRepo) AddProblemsSolved(ctx context.Context, userID string, delta int) error {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	doc, ok := m.w.docs[userID]
	if !ok {
		return store.ErrNotFound
	}
	doc.ProblemsSolved += delta
	return nil
}

func (m *mockProgressRepo) All(ctx context.Context) ([]*store.ProgressDoc, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	out := make([]*store.ProgressDoc, 0, len(m.w.docs))
	for _, doc := range m.w.docs {
		out = append(out, cloneDoc(doc))
	}
	return out, nil
}

type mockEventRepo struct{ w *world }

func (m *mockEventRepo) AppendTestEvent(ctx context.Context, data store.TestEventData) error {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	m.w.seq++
	m.w.tests = append(m.w.tests, store.TestEventRecord{
		UserID:    data.UserID,
		Result:    data.Result,
		Sequence:  m.w.seq,
		Timestamp: data.Result.Date,
	})
	return nil
}

func (m *mockEventRepo) QueryTestEvents(ctx context.Context, userID string, opts store.QueryOpts) ([]store.TestEventRecord, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	var out []store.TestEventRecord
	for i := len(m.w.tests) - 1; i >= 0; i-- {
		if m.w.tests[i].UserID != userID {
			continue
		}
		out = append(out, m.w.tests[i])
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockEventRepo) AppendActivityEvent(ctx context.Context, data store.ActivityEventData) error {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	for _, a := range m.w.activities {
		if a.ActivityID == data.ActivityID {
			return store.ErrDuplicateActivity
		}
	}
	m.w.seq++
	m.w.activities = append(m.w.activities, store.ActivityEventRecord{
		ActivityID: data.ActivityID,
		UserID:     data.UserID,
		Type:       data.Type,
		Metadata:   data.Metadata,
		Sequence:   m.w.seq,
		Timestamp:  fixedNow,
	})
	return nil
}

func (m *mockEventRepo) QueryActivityEvents(ctx context.Context, userID string, opts store.QueryOpts) ([]store.ActivityEventRecord, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	var out []store.ActivityEventRecord
	for i := len(m.w.activities) - 1; i >= 0; i-- {
		if m.w.activities[i].UserID != userID {
			continue
		}
		out = append(out, m.w.activities[i])
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockEventRepo) CountActivityEvents(ctx context.Context, userID string, typ taxonomy.ActivityType) (int, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	n := 0
	for _, a := range m.w.activities {
		if a.UserID == userID && a.Type == typ {
			n++
		}
	}
	return n, nil
}

type mockAchievementRepo struct{ w *world }

func (m *mockAchievementRepo) Existing(ctx context.Context, userID string) (map[string]achievements.Status, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	out := make(map[string]achievements.Status)
	for id, rec := range m.w.achState[userID] {
		out[id] = achievements.Status{RuleID: id, Progress: rec.Progress, EarnedAt: rec.EarnedAt}
	}
	return out, nil
}

func (m *mockAchievementRepo) Award(ctx context.Context, userID string, award achievements.Award) error {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	if m.w.achState[userID] == nil {
		m.w.achState[userID] = make(map[string]store.AchievementRecord)
	}
	if prior, ok := m.w.achState[userID][award.RuleID]; ok && prior.Progress >= 100 {
		return nil
	}
	earned := award.EarnedAt
	m.w.achState[userID][award.RuleID] = store.AchievementRecord{
		RuleID:   award.RuleID,
		Name:     award.Name,
		Category: award.Category,
		Rarity:   award.Rarity,
		Points:   award.Points,
		Progress: 100,
		EarnedAt: &earned,
		IsActive: true,
	}
	if doc, ok := m.w.docs[userID]; ok {
		doc.TotalPoints += award.Points
	}
	return nil
}

func (m *mockAchievementRepo) UpdateProgress(ctx context.Context, userID, ruleID string, progress float64, rule achievements.Rule) error {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	if m.w.achState[userID] == nil {
		m.w.achState[userID] = make(map[string]store.AchievementRecord)
	}
	prior := m.w.achState[userID][ruleID]
	if progress > prior.Progress {
		m.w.achState[userID][ruleID] = store.AchievementRecord{
			RuleID:   ruleID,
			Name:     rule.Name,
			Category: rule.Category,
			Rarity:   rule.Rarity,
			Points:   rule.Points,
			Progress: progress,
			IsActive: true,
		}
	}
	return nil
}

func (m *mockAchievementRepo) ListByUser(ctx context.Context, userID string) ([]store.AchievementRecord, error) {
	m.w.mu.Lock()
	defer m.w.mu.Unlock()
	var out []store.AchievementRecord
	for _, rec := range m.w.achState[userID] {
		out = append(out, rec)
	}
	return out, nil
}

func newTestService(w *world) *Service {
	svc := NewService(&mockProgressRepo{w: w}, &mockEventRepo{w: w}, &mockAchievementRepo{w: w}, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestRecordTestResult_FirstTestPipeline(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	ctx := context.Background()

	outcome, err := svc.RecordTestResult(ctx, "u1", scoring.TestInput{
		TestName:     "Graph Basics",
		Category:     "algorithms",
		Difficulty:   "medium",
		Score:        8,
		TotalScore:   10,
		DurationSecs: 300,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if outcome.CurrentStreak != 1 || outcome.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", outcome.CurrentStreak, outcome.LongestStreak)
	}
	if outcome.Result.Accuracy != 80 {
		t.Errorf("accuracy = %v, want 80", outcome.Result.Accuracy)
	}

	// First Steps unlocks on the first test.
	found := false
	for _, a := range outcome.NewAchievements {
		if a.RuleID == "first_test" {
			found = true
		}
	}
	if !found {
		t.Errorf("NewAchievements = %v, want first_test", outcome.NewAchievements)
	}

	doc := w.docs["u1"]
	if doc.Analytics.TotalTestsTaken != 1 {
		t.Errorf("TotalTestsTaken = %d, want 1", doc.Analytics.TotalTestsTaken)
	}
	if got := doc.Skills["algorithms"].Proficiency; got != 80 {
		t.Errorf("algorithms proficiency = %v, want 80 (category accuracy)", got)
	}
	if len(doc.Career) == 0 {
		t.Error("career projection not recomputed")
	}
	if doc.TotalPoints != 50 {
		t.Errorf("TotalPoints = %d, want 50 from First Steps", doc.TotalPoints)
	}
	if len(w.tests) != 1 {
		t.Fatalf("test events = %d, want 1", len(w.tests))
	}
}

func TestRecordTestResult_InvalidInput(t *testing.T) {
	svc := newTestService(newWorld())

	_, err := svc.RecordTestResult(context.Background(), "u1", scoring.TestInput{Category: "algorithms"})
	var invalid *ErrValidation
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	_, err = svc.RecordTestResult(context.Background(), "", scoring.TestInput{TestName: "t", Category: "algorithms"})
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrValidation for missing user, got %v", err)
	}
}

func TestRecordTestResult_EvaluationIsIdempotent(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	ctx := context.Background()

	in := scoring.TestInput{TestName: "t", Category: "databases", Score: 5, TotalScore: 10}
	if _, err := svc.RecordTestResult(ctx, "u1", in); err != nil {
		t.Fatalf("record: %v", err)
	}
	pointsAfterFirst := w.docs["u1"].TotalPoints

	outcome, err := svc.RecordTestResult(ctx, "u1", in)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	for _, a := range outcome.NewAchievements {
		if a.RuleID == "first_test" {
			t.Error("first_test awarded twice")
		}
	}
	if w.docs["u1"].TotalPoints != pointsAfterFirst {
		t.Errorf("points changed on second identical test: %d -> %d",
			pointsAfterFirst, w.docs["u1"].TotalPoints)
	}
}

func TestRecordTestResult_StreakAcrossDays(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	ctx := context.Background()
	in := scoring.TestInput{TestName: "t", Category: "algorithms", Score: 5, TotalScore: 10}

	day := fixedNow
	for i := 0; i < 3; i++ {
		svc.now = func() time.Time { return day }
		if _, err := svc.RecordTestResult(ctx, "u1", in); err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		day = day.AddDate(0, 0, 1)
	}

	if got := w.docs["u1"].CurrentStreak; got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestRecordTestResult_RetriesOnceOnVersionConflict(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	w.forceConflicts = 1

	outcome, err := svc.RecordTestResult(context.Background(), "u1",
		scoring.TestInput{TestName: "t", Category: "algorithms", Score: 5, TotalScore: 10})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if outcome.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after retry", outcome.CurrentStreak)
	}
}

func TestRecordTestResult_ConflictSurfacesAfterRetry(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	w.forceConflicts = 2

	_, err := svc.RecordTestResult(context.Background(), "u1",
		scoring.TestInput{TestName: "t", Category: "algorithms", Score: 5, TotalScore: 10})
	var conflict *ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	// The raw event is retained for replay even when the update fails.
	if len(w.tests) != 1 {
		t.Errorf("test events = %d, want 1", len(w.tests))
	}
}

func TestRecordActivity_ProblemSolvedEarnsDifficultyPoints(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)

	act, err := svc.RecordActivity(context.Background(), ActivityInput{
		UserID:   "u1",
		Type:     taxonomy.ActivityProblemSolved,
		Metadata: map[string]any{"difficulty": "hard"},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if act.PointsEarned != 10 {
		t.Errorf("PointsEarned = %d, want 10 for hard", act.PointsEarned)
	}
	if act.ActivityID == "" {
		t.Error("expected a generated activity id")
	}
	if got := w.docs["u1"].ProblemsSolved; got != 1 {
		t.Errorf("ProblemsSolved = %d, want 1", got)
	}
	if got := w.docs["u1"].CurrentStreak; got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestRecordActivity_DuplicateIDIsIdempotent(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	in := ActivityInput{
		ActivityID: "act-1",
		UserID:     "u1",
		Type:       taxonomy.ActivityProblemSolved,
		Metadata:   map[string]any{"difficulty": "easy"},
	}

	if _, err := svc.RecordActivity(context.Background(), in); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if _, err := svc.RecordActivity(context.Background(), in); err != nil {
		t.Fatalf("replay: %v", err)
	}

	if got := w.docs["u1"].ProblemsSolved; got != 1 {
		t.Errorf("ProblemsSolved = %d, want 1 after replay", got)
	}
	count := 0
	for _, a := range w.activities {
		if a.ActivityID == "act-1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("stored copies = %d, want 1", count)
	}
}

func TestRecordActivity_UnknownTypeRejected(t *testing.T) {
	svc := newTestService(newWorld())
	_, err := svc.RecordActivity(context.Background(), ActivityInput{UserID: "u1", Type: "napping"})
	var invalid *ErrValidation
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecordActivity_MockInterviewUnlocksAchievement(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)

	if _, err := svc.RecordActivity(context.Background(), ActivityInput{
		UserID: "u1",
		Type:   taxonomy.ActivityMockInterview,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	rec, ok := w.achState["u1"]["mock_interview_1"]
	if !ok || rec.Progress < 100 {
		t.Errorf("mock_interview_1 = %+v, want unlocked", rec)
	}
}

func TestUpdateSkillProficiency(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	ctx := context.Background()

	if err := svc.UpdateSkillProficiency(ctx, "u1", "system-design", 85); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := w.docs["u1"].Skills["system-design"].Proficiency; got != 85 {
		t.Errorf("proficiency = %v, want 85", got)
	}
	if len(w.docs["u1"].Career) == 0 {
		t.Error("career projection not recomputed")
	}

	err := svc.UpdateSkillProficiency(ctx, "u1", "astrology", 50)
	var invalid *proficiency.ErrInvalidSkill
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidSkill, got %v", err)
	}
}

func TestGetProgressSummary(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	ctx := context.Background()

	if _, err := svc.GetProgressSummary(ctx, "ghost"); err == nil {
		t.Fatal("expected not-found error")
	} else {
		var notFound *ErrNotFound
		if !errors.As(err, &notFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}

	if _, err := svc.RecordTestResult(ctx, "u1",
		scoring.TestInput{TestName: "t", Category: "algorithms", Score: 5, TotalScore: 10}); err != nil {
		t.Fatalf("record: %v", err)
	}

	summary, err := svc.GetProgressSummary(ctx, "u1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Record.UserID != "u1" {
		t.Errorf("UserID = %q", summary.Record.UserID)
	}
	if len(summary.RecentTests) != 1 {
		t.Errorf("RecentTests = %d, want 1", len(summary.RecentTests))
	}
	if len(summary.Achievements) == 0 {
		t.Error("expected achievement rows")
	}
}

func TestGetLeaderboard(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)
	ctx := context.Background()

	for _, u := range []string{"u1", "u2"} {
		if _, err := svc.RecordTestResult(ctx, u,
			scoring.TestInput{TestName: "t", Category: "algorithms", Score: 5, TotalScore: 10}); err != nil {
			t.Fatalf("record %s: %v", u, err)
		}
	}
	if _, err := svc.RecordActivity(ctx, ActivityInput{
		UserID: "u2", Type: taxonomy.ActivityProblemSolved,
	}); err != nil {
		t.Fatalf("activity: %v", err)
	}

	view, err := svc.GetLeaderboard(ctx, leaderboard.Query{Board: leaderboard.BoardOverall}, "u1")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if view.Total != 2 {
		t.Fatalf("Total = %d, want 2", view.Total)
	}
	if view.Entries[0].UserID != "u2" {
		t.Errorf("leader = %s, want u2 (extra problem solved)", view.Entries[0].UserID)
	}
	if view.CurrentUserRank != 2 {
		t.Errorf("CurrentUserRank = %d, want 2", view.CurrentUserRank)
	}

	_, err = svc.GetLeaderboard(ctx, leaderboard.Query{Board: leaderboard.BoardCategory, Category: "alchemy"}, "")
	var invalid *ErrValidation
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrValidation for unknown category, got %v", err)
	}
}
