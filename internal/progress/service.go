// Package progress orchestrates the event pipeline: record the raw event,
// recompute scoring aggregates, advance the streak, refresh skill
// proficiency, evaluate achievements, and recompute career projections.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avinash/preptrack/internal/achievements"
	"github.com/avinash/preptrack/internal/career"
	"github.com/avinash/preptrack/internal/leaderboard"
	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/store"
	"github.com/avinash/preptrack/internal/streak"
	"github.com/avinash/preptrack/internal/taxonomy"
)

// Service is the entry point consumed by the transport layer.
type Service struct {
	progress store.ProgressRepo
	events   store.EventRepo
	achRepo  store.AchievementRepo
	engine   *achievements.Engine
	locks    *userLocks
	log      *slog.Logger
	now      func() time.Time
}

// NewService wires a Service over the store repositories.
func NewService(progress store.ProgressRepo, events store.EventRepo, achRepo store.AchievementRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		progress: progress,
		events:   events,
		achRepo:  achRepo,
		engine:   achievements.NewEngine(achRepo, logger),
		locks:    newUserLocks(),
		log:      logger,
		now:      time.Now,
	}
}

// ActivityInput is a raw activity submission.
type ActivityInput struct {
	ActivityID string
	UserID     string
	Type       taxonomy.ActivityType
	Metadata   map[string]any
}

// Activity is the persisted view of a recorded activity.
type Activity struct {
	ActivityID   string
	UserID       string
	Type         taxonomy.ActivityType
	Metadata     map[string]any
	PointsEarned int // problem points for problem_solved activities
	RecordedAt   time.Time
}

// RecordActivity persists a raw activity event verbatim, touches the
// user's streak/last-active state, and re-evaluates achievements. The
// event is never silently dropped: the returned error is definitive.
func (s *Service) RecordActivity(ctx context.Context, in ActivityInput) (*Activity, error) {
	if in.UserID == "" {
		return nil, &ErrValidation{Err: fmt.Errorf("user_id is required")}
	}
	if !taxonomy.ValidActivityType(in.Type) {
		return nil, &ErrValidation{Err: fmt.Errorf("unknown activity type %q", in.Type)}
	}
	if in.ActivityID == "" {
		in.ActivityID = uuid.NewString()
	}

	release := s.locks.acquire(in.UserID)
	defer release()

	now := s.now()
	if _, err := s.progress.GetOrCreate(ctx, in.UserID, now); err != nil {
		return nil, fmt.Errorf("load progress record: %w", err)
	}

	points := 0
	if in.Type == taxonomy.ActivityProblemSolved {
		points = scoring.PointsFor(problemDifficulty(in.Metadata))
		if in.Metadata == nil {
			in.Metadata = make(map[string]any)
		}
		in.Metadata["points_earned"] = points
	}

	err := s.events.AppendActivityEvent(ctx, store.ActivityEventData{
		ActivityID: in.ActivityID,
		UserID:     in.UserID,
		Type:       in.Type,
		Metadata:   in.Metadata,
	})
	if errors.Is(err, store.ErrDuplicateActivity) {
		// Same submission replayed; derived state already reflects it.
		s.log.Info("duplicate activity ignored", "user", in.UserID, "activity", in.ActivityID)
		return &Activity{
			ActivityID: in.ActivityID,
			UserID:     in.UserID,
			Type:       in.Type,
			Metadata:   in.Metadata,
			RecordedAt: now,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist activity: %w", err)
	}

	if in.Type == taxonomy.ActivityProblemSolved {
		if err := s.progress.AddProblemsSolved(ctx, in.UserID, 1); err != nil {
			return nil, fmt.Errorf("count solved problem: %w", err)
		}
	}

	if err := s.updateGuarded(ctx, in.UserID, func(doc *store.ProgressDoc) error {
		s.advanceStreak(doc, now)
		return nil
	}); err != nil {
		return nil, err
	}

	// Achievement evaluation is replayable; its failure stays internal.
	_ = s.evaluateAndNotify(ctx, in.UserID)

	return &Activity{
		ActivityID:   in.ActivityID,
		UserID:       in.UserID,
		Type:         in.Type,
		Metadata:     in.Metadata,
		PointsEarned: points,
		RecordedAt:   now,
	}, nil
}

// TestOutcome is the result of the full test-completion pipeline.
type TestOutcome struct {
	Result          scoring.TestResult
	CurrentStreak   int
	LongestStreak   int
	NewAchievements []achievements.Award
}

// RecordTestResult runs the full pipeline for a completed test. The raw
// event always persists before derived state; failures after that point
// leave the event replayable rather than lost.
func (s *Service) RecordTestResult(ctx context.Context, userID string, input scoring.TestInput) (*TestOutcome, error) {
	if userID == "" {
		return nil, &ErrValidation{Err: fmt.Errorf("user_id is required")}
	}

	result, err := scoring.BuildResult(input, s.now())
	if err != nil {
		return nil, &ErrValidation{Err: err}
	}

	release := s.locks.acquire(userID)
	defer release()

	if _, err := s.progress.GetOrCreate(ctx, userID, result.Date); err != nil {
		return nil, fmt.Errorf("load progress record: %w", err)
	}

	if err := s.events.AppendTestEvent(ctx, store.TestEventData{UserID: userID, Result: result}); err != nil {
		return nil, fmt.Errorf("persist test result: %w", err)
	}

	outcome := &TestOutcome{Result: result}
	if err := s.updateGuarded(ctx, userID, func(doc *store.ProgressDoc) error {
		doc.Analytics.Apply(result)
		s.advanceStreak(doc, result.Date)

		// The test's category skill tracks that category's running
		// accuracy ratio.
		if acc, ok := doc.Analytics.CategoryAccuracy(result.Category); ok {
			if err := doc.Skills.Update(result.Category, acc, result.Date); err != nil {
				return err
			}
		}

		doc.Career = career.Recompute(doc.Skills, doc.Analytics)
		outcome.CurrentStreak = doc.CurrentStreak
		outcome.LongestStreak = doc.LongestStreak
		return nil
	}); err != nil {
		return nil, err
	}

	outcome.NewAchievements = s.evaluateAndNotify(ctx, userID)
	return outcome, nil
}

// UpdateSkillProficiency sets an externally assessed proficiency value.
// Unknown skill names are rejected; the progress record is auto-created.
func (s *Service) UpdateSkillProficiency(ctx context.Context, userID string, skill taxonomy.Skill, value float64) error {
	if userID == "" {
		return &ErrValidation{Err: fmt.Errorf("user_id is required")}
	}

	release := s.locks.acquire(userID)
	defer release()

	now := s.now()
	if _, err := s.progress.GetOrCreate(ctx, userID, now); err != nil {
		return fmt.Errorf("load progress record: %w", err)
	}

	return s.updateGuarded(ctx, userID, func(doc *store.ProgressDoc) error {
		if err := doc.Skills.Update(skill, value, now); err != nil {
			return err
		}
		doc.Career = career.Recompute(doc.Skills, doc.Analytics)
		return nil
	})
}

// Summary is the read-only progress projection for one user.
type Summary struct {
	Record       *store.ProgressDoc
	Achievements []store.AchievementRecord
	RecentTests  []store.TestEventRecord
}

// GetProgressSummary returns the user's progress document with their
// achievement rows and recent test history.
func (s *Service) GetProgressSummary(ctx context.Context, userID string) (*Summary, error) {
	doc, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &ErrNotFound{Entity: "progress record", ID: userID}
		}
		return nil, fmt.Errorf("load progress record: %w", err)
	}

	achRows, err := s.achRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	tests, err := s.events.QueryTestEvents(ctx, userID, store.QueryOpts{Limit: 10})
	if err != nil {
		return nil, fmt.Errorf("load test history: %w", err)
	}

	return &Summary{Record: doc, Achievements: achRows, RecentTests: tests}, nil
}

// EvaluateAchievements re-runs the catalog for a user, for standalone
// replay/backfill. Evaluation is idempotent: unchanged stats award
// nothing and credit no points.
func (s *Service) EvaluateAchievements(ctx context.Context, userID string) ([]achievements.Award, error) {
	release := s.locks.acquire(userID)
	defer release()

	doc, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &ErrNotFound{Entity: "progress record", ID: userID}
		}
		return nil, fmt.Errorf("load progress record: %w", err)
	}

	stats, err := s.buildStats(ctx, doc)
	if err != nil {
		return nil, err
	}

	awards, err := s.engine.Evaluate(ctx, stats)
	if err != nil {
		return nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	s.notifyAwards(ctx, userID, awards)
	return awards, nil
}

// LeaderboardView is a ranked page plus the requesting user's position.
type LeaderboardView struct {
	Entries         []leaderboard.Entry
	Total           int
	CurrentUserRank int     // 0 when the user does not qualify
	Percentile      float64 // of the current user
}

// GetLeaderboard ranks all users for the query. Rankings are eventually
// consistent snapshots; a read failure surfaces whole rather than
// returning a partial board.
func (s *Service) GetLeaderboard(ctx context.Context, q leaderboard.Query, currentUser string) (*LeaderboardView, error) {
	docs, err := s.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress records: %w", err)
	}

	snaps := make([]leaderboard.Snapshot, len(docs))
	for i, doc := range docs {
		snaps[i] = leaderboard.Snapshot{
			UserID:         doc.UserID,
			ProblemsSolved: doc.ProblemsSolved,
			TestsTaken:     doc.Analytics.TotalTestsTaken,
			CurrentStreak:  doc.CurrentStreak,
			LongestStreak:  doc.LongestStreak,
			LastActive:     doc.LastActive,
			Analytics:      doc.Analytics,
		}
	}

	now := s.now()
	res, err := leaderboard.Compute(snaps, q, now)
	if err != nil {
		return nil, &ErrValidation{Err: err}
	}

	view := &LeaderboardView{Entries: res.Entries, Total: res.Total}
	if currentUser != "" {
		rank, err := leaderboard.RankOf(snaps, q, now, currentUser)
		if err != nil {
			return nil, &ErrValidation{Err: err}
		}
		view.CurrentUserRank = rank
		if rank > 0 {
			view.Percentile = leaderboard.Percentile(rank, res.Total)
		}
	}
	return view, nil
}

// updateGuarded applies mutate to the user's document under the storage
// version guard, retrying once on conflict before surfacing ErrConflict.
func (s *Service) updateGuarded(ctx context.Context, userID string, mutate func(*store.ProgressDoc) error) error {
	for attempt := 0; attempt < 2; attempt++ {
		doc, err := s.progress.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress record: %w", err)
		}
		if err := mutate(doc); err != nil {
			return err
		}
		err = s.progress.Update(ctx, doc)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return fmt.Errorf("update progress record: %w", err)
		}
		s.log.Warn("progress update lost version race, retrying", "user", userID)
	}
	return &ErrConflict{UserID: userID, Err: store.ErrVersionConflict}
}

// advanceStreak folds an activity date into the document's streak state
// and logs anomalies. Out-of-order events never shrink the streak.
func (s *Service) advanceStreak(doc *store.ProgressDoc, activity time.Time) {
	st := streak.State{
		Current:    doc.CurrentStreak,
		Longest:    doc.LongestStreak,
		LastActive: doc.LastActive,
	}
	outcome := streak.Update(&st, activity)
	doc.CurrentStreak = st.Current
	doc.LongestStreak = st.Longest
	doc.LastActive = st.LastActive

	switch outcome {
	case streak.OutOfOrder:
		s.log.Warn("out-of-order activity ignored for streak",
			"user", doc.UserID, "activity_date", activity)
	case streak.Extended:
		s.appendDerived(context.Background(), doc.UserID, taxonomy.ActivityStreakMaintained, map[string]any{
			"current_streak": doc.CurrentStreak,
		})
	}
}

// evaluateAndNotify builds the stats snapshot, runs the engine, and emits
// unlock notifications. Failures are logged, never surfaced: awards can
// always be recovered by a later EvaluateAchievements replay.
func (s *Service) evaluateAndNotify(ctx context.Context, userID string) []achievements.Award {
	doc, err := s.progress.Get(ctx, userID)
	if err != nil {
		s.log.Warn("achievement evaluation skipped", "user", userID, "error", err)
		return nil
	}
	stats, err := s.buildStats(ctx, doc)
	if err != nil {
		s.log.Warn("achievement evaluation skipped", "user", userID, "error", err)
		return nil
	}
	awards, err := s.engine.Evaluate(ctx, stats)
	if err != nil {
		s.log.Warn("achievement evaluation failed", "user", userID, "error", err)
		return nil
	}
	s.notifyAwards(ctx, userID, awards)
	return awards
}

func (s *Service) buildStats(ctx context.Context, doc *store.ProgressDoc) (achievements.Stats, error) {
	helpful, err := s.events.CountActivityEvents(ctx, doc.UserID, taxonomy.ActivityDiscussionReply)
	if err != nil {
		return achievements.Stats{}, fmt.Errorf("count helpful answers: %w", err)
	}
	mocks, err := s.events.CountActivityEvents(ctx, doc.UserID, taxonomy.ActivityMockInterview)
	if err != nil {
		return achievements.Stats{}, fmt.Errorf("count mock interviews: %w", err)
	}

	profs := make(map[taxonomy.Skill]float64, len(doc.Skills))
	for skill, entry := range doc.Skills {
		profs[skill] = entry.Proficiency
	}

	return achievements.Stats{
		UserID:                  doc.UserID,
		CurrentStreak:           doc.CurrentStreak,
		LongestStreak:           doc.LongestStreak,
		TotalTestsTaken:         doc.Analytics.TotalTestsTaken,
		TotalQuestionsAttempted: doc.Analytics.TotalQuestionsAttempted,
		ProblemsSolved:          doc.ProblemsSolved,
		AverageAccuracy:         doc.Analytics.AverageAccuracy,
		HighestAccuracy:         doc.Analytics.HighestAccuracy(),
		TotalPoints:             doc.TotalPoints,
		SkillProficiency:        profs,
		HelpfulAnswers:          helpful,
		MockInterviews:          mocks,
	}, nil
}

// notifyAwards appends one achievement_unlocked event per award. These are
// derived notifications; losing one is logged, not fatal.
func (s *Service) notifyAwards(ctx context.Context, userID string, awards []achievements.Award) {
	for _, a := range awards {
		s.log.Info("achievement unlocked",
			"user", userID, "rule", a.RuleID, "name", a.Name, "points", a.Points)
		s.appendDerived(ctx, userID, taxonomy.ActivityAchievementUnlocked, map[string]any{
			"rule_id": a.RuleID,
			"name":    a.Name,
			"rarity":  string(a.Rarity),
			"points":  a.Points,
		})
	}
}

func (s *Service) appendDerived(ctx context.Context, userID string, typ taxonomy.ActivityType, metadata map[string]any) {
	err := s.events.AppendActivityEvent(ctx, store.ActivityEventData{
		ActivityID: uuid.NewString(),
		UserID:     userID,
		Type:       typ,
		Metadata:   metadata,
	})
	if err != nil {
		s.log.Warn("failed to append derived event",
			"user", userID, "type", typ, "error", err)
	}
}

func problemDifficulty(metadata map[string]any) taxonomy.Difficulty {
	if metadata == nil {
		return taxonomy.DifficultyUnknown
	}
	raw, _ := metadata["difficulty"].(string)
	return taxonomy.NormalizeDifficulty(raw)
}
