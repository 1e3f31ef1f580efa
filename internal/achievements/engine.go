package achievements

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Sink persists achievement state. The store-backed implementation must
// commit an Award's row and its point credit in one transaction, and treat
// a duplicate award as a no-op.
type Sink interface {
	// Existing returns the user's achievement state keyed by rule id.
	Existing(ctx context.Context, userID string) (map[string]Status, error)

	// Award creates or completes the achievement and credits its points,
	// atomically and at most once per (user, rule).
	Award(ctx context.Context, userID string, award Award) error

	// UpdateProgress upserts partial progress for a rule. Implementations
	// never decrease stored progress.
	UpdateProgress(ctx context.Context, userID, ruleID string, progress float64, rule Rule) error
}

// Engine evaluates the rule catalog against user stats snapshots.
type Engine struct {
	rules []Rule
	sink  Sink
	log   *slog.Logger
	now   func() time.Time
}

// NewEngine creates an engine over the process-wide catalog.
func NewEngine(sink Sink, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		rules: Catalog(),
		sink:  sink,
		log:   logger,
		now:   time.Now,
	}
}

// Evaluate runs every catalog rule against the stats snapshot and returns
// the newly completed achievements, in catalog order. Rule evaluation is
// isolated: a failing rule is logged and skipped, never aborting the rest.
// Re-running Evaluate with unchanged stats awards nothing and credits no
// points.
func (e *Engine) Evaluate(ctx context.Context, stats Stats) ([]Award, error) {
	existing, err := e.sink.Existing(ctx, stats.UserID)
	if err != nil {
		return nil, fmt.Errorf("load achievement state: %w", err)
	}

	var awarded []Award
	for _, rule := range e.rules {
		award, err := e.evaluateRule(ctx, rule, stats, existing)
		if err != nil {
			e.log.Warn("achievement rule evaluation failed",
				"rule", rule.ID, "user", stats.UserID, "error", err)
			continue
		}
		if award != nil {
			awarded = append(awarded, *award)
		}
	}
	return awarded, nil
}

// evaluateRule applies one rule. A panic inside a predicate (malformed
// stats shape) is converted to an error so the remaining rules still run.
func (e *Engine) evaluateRule(ctx context.Context, rule Rule, stats Stats, existing map[string]Status) (award *Award, err error) {
	defer func() {
		if r := recover(); r != nil {
			award = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID, r)
		}
	}()

	prior, has := existing[rule.ID]
	if has && prior.Unlocked() {
		return nil, nil // already earned, never re-award
	}

	target := 0.0
	switch {
	case rule.Unlock != nil:
		if !rule.Unlock(stats) {
			return nil, nil
		}
		target = 100
	case rule.Progress != nil:
		target = rule.Progress(stats)
	default:
		return nil, fmt.Errorf("rule %s has no predicate", rule.ID)
	}

	// Progress is monotonic: only strictly greater values are persisted.
	if has && target <= prior.Progress {
		return nil, nil
	}
	if !has && target <= 0 {
		return nil, nil
	}

	if target >= 100 {
		a := Award{
			RuleID:   rule.ID,
			Name:     rule.Name,
			Category: rule.Category,
			Rarity:   rule.Rarity,
			Points:   rule.Points,
			EarnedAt: e.now(),
		}
		if err := e.sink.Award(ctx, stats.UserID, a); err != nil {
			return nil, fmt.Errorf("award %s: %w", rule.ID, err)
		}
		return &a, nil
	}

	if err := e.sink.UpdateProgress(ctx, stats.UserID, rule.ID, target, rule); err != nil {
		return nil, fmt.Errorf("update progress %s: %w", rule.ID, err)
	}
	return nil, nil
}
