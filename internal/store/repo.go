package store

import (
	"context"
	"time"

	"github.com/avinash/preptrack/internal/achievements"
	"github.com/avinash/preptrack/internal/career"
	"github.com/avinash/preptrack/internal/proficiency"
	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/taxonomy"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressDoc is the per-user progress document as seen by the domain
// layer. TotalPoints and ProblemsSolved change only through atomic
// increments (award transactions, activity counters), never through the
// guarded Update, so concurrent credits are never lost.
type ProgressDoc struct {
	UserID         string
	CurrentStreak  int
	LongestStreak  int
	LastActive     *time.Time
	TotalPoints    int
	ProblemsSolved int
	Skills         proficiency.Set
	Analytics      *scoring.Analytics
	Career         career.Projection
	Version        int64
}

// ProgressRepo manages per-user progress documents.
type ProgressRepo interface {
	// GetOrCreate loads a user's document, lazily creating the default
	// record (full skill set at zero, empty analytics) on first contact.
	GetOrCreate(ctx context.Context, userID string, now time.Time) (*ProgressDoc, error)

	// Get loads a user's document or returns ErrNotFound.
	Get(ctx context.Context, userID string) (*ProgressDoc, error)

	// Update writes the document's derived state guarded by its version.
	// On success doc.Version reflects the stored version; when the guard
	// fails it returns ErrVersionConflict and writes nothing.
	Update(ctx context.Context, doc *ProgressDoc) error

	// AddProblemsSolved atomically increments the solved-problem counter.
	AddProblemsSolved(ctx context.Context, userID string, delta int) error

	// All returns every progress document, for leaderboard snapshots.
	All(ctx context.Context) ([]*ProgressDoc, error)
}

// TestEventData captures one completed test for persistence.
type TestEventData struct {
	UserID string
	Result scoring.TestResult
}

// TestEventRecord is a persisted test event.
type TestEventRecord struct {
	UserID    string
	Result    scoring.TestResult
	Sequence  int64
	Timestamp time.Time
}

// ActivityEventData captures one raw activity for persistence.
type ActivityEventData struct {
	ActivityID string
	UserID     string
	Type       taxonomy.ActivityType
	Metadata   map[string]any
}

// ActivityEventRecord is a persisted activity event.
type ActivityEventRecord struct {
	ActivityID string
	UserID     string
	Type       taxonomy.ActivityType
	Metadata   map[string]any
	Sequence   int64
	Timestamp  time.Time
}

// EventRepo provides append and query access to the event history.
type EventRepo interface {
	// AppendTestEvent records a completed test, append-only.
	AppendTestEvent(ctx context.Context, data TestEventData) error

	// QueryTestEvents returns a user's test history, newest first.
	QueryTestEvents(ctx context.Context, userID string, opts QueryOpts) ([]TestEventRecord, error)

	// AppendActivityEvent records a raw activity, append-only.
	AppendActivityEvent(ctx context.Context, data ActivityEventData) error

	// QueryActivityEvents returns a user's activity history, newest first.
	QueryActivityEvents(ctx context.Context, userID string, opts QueryOpts) ([]ActivityEventRecord, error)

	// CountActivityEvents counts a user's events of one activity type.
	CountActivityEvents(ctx context.Context, userID string, typ taxonomy.ActivityType) (int, error)
}

// AchievementRecord is a persisted achievement row.
type AchievementRecord struct {
	RuleID   string
	Name     string
	Category achievements.Category
	Rarity   achievements.Rarity
	Points   int
	Progress float64
	EarnedAt *time.Time
	IsActive bool
}

// AchievementRepo persists achievement state. It satisfies
// achievements.Sink so the engine can write through it directly.
type AchievementRepo interface {
	achievements.Sink

	// ListByUser returns all of a user's achievement rows.
	ListByUser(ctx context.Context, userID string) ([]AchievementRecord, error)
}
