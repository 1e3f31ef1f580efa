package store

import (
	"context"
	"fmt"

	"github.com/avinash/preptrack/ent"
	"github.com/avinash/preptrack/ent/achievement"
	"github.com/avinash/preptrack/ent/progressrecord"
	"github.com/avinash/preptrack/internal/achievements"
)

// achievementRepo implements AchievementRepo (and thereby
// achievements.Sink) using the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Existing(ctx context.Context, userID string) (map[string]achievements.Status, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}

	out := make(map[string]achievements.Status, len(rows))
	for _, a := range rows {
		out[a.RuleID] = achievements.Status{
			RuleID:   a.RuleID,
			Progress: a.Progress,
			EarnedAt: a.EarnedAt,
		}
	}
	return out, nil
}

// Award completes an achievement and credits its points in one
// transaction: either both the row and the point credit commit, or
// neither does. A row already at 100 makes the call a no-op, so replays
// never double-credit.
func (r *achievementRepo) Award(ctx context.Context, userID string, award achievements.Award) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin award tx: %w", err)
	}

	if err := awardInTx(ctx, tx, userID, award); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit award tx: %w", err)
	}
	return nil
}

func awardInTx(ctx context.Context, tx *ent.Tx, userID string, award achievements.Award) error {
	existing, err := tx.Achievement.Query().
		Where(
			achievement.UserID(userID),
			achievement.RuleID(award.RuleID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query achievement: %w", err)
	}

	if existing != nil {
		if existing.Progress >= 100 {
			return nil // already earned; points were credited then
		}
		_, err = tx.Achievement.UpdateOne(existing).
			SetProgress(100).
			SetEarnedAt(award.EarnedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("complete achievement: %w", err)
		}
	} else {
		_, err = tx.Achievement.Create().
			SetUserID(userID).
			SetRuleID(award.RuleID).
			SetName(award.Name).
			SetCategory(string(award.Category)).
			SetRarity(string(award.Rarity)).
			SetPoints(award.Points).
			SetProgress(100).
			SetEarnedAt(award.EarnedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create achievement: %w", err)
		}
	}

	n, err := tx.ProgressRecord.Update().
		Where(progressrecord.UserID(userID)).
		AddTotalPoints(award.Points).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("credit points: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("credit points: %w", ErrNotFound)
	}
	return nil
}

// UpdateProgress upserts partial progress for a rule. Stored progress
// never decreases; reaching 100 goes through Award instead so the point
// credit stays transactional.
func (r *achievementRepo) UpdateProgress(ctx context.Context, userID, ruleID string, progress float64, rule achievements.Rule) error {
	existing, err := r.client.Achievement.Query().
		Where(
			achievement.UserID(userID),
			achievement.RuleID(ruleID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query achievement: %w", err)
	}

	if existing == nil {
		_, err = r.client.Achievement.Create().
			SetUserID(userID).
			SetRuleID(ruleID).
			SetName(rule.Name).
			SetCategory(string(rule.Category)).
			SetRarity(string(rule.Rarity)).
			SetPoints(rule.Points).
			SetProgress(progress).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create achievement progress: %w", err)
		}
		return nil
	}

	if progress <= existing.Progress || existing.Progress >= 100 {
		return nil
	}
	_, err = r.client.Achievement.UpdateOne(existing).
		SetProgress(progress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update achievement progress: %w", err)
	}
	return nil
}

func (r *achievementRepo) ListByUser(ctx context.Context, userID string) ([]AchievementRecord, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Asc(achievement.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}

	records := make([]AchievementRecord, len(rows))
	for i, a := range rows {
		records[i] = AchievementRecord{
			RuleID:   a.RuleID,
			Name:     a.Name,
			Category: achievements.Category(a.Category),
			Rarity:   achievements.Rarity(a.Rarity),
			Points:   a.Points,
			Progress: a.Progress,
			EarnedAt: a.EarnedAt,
			IsActive: a.IsActive,
		}
	}
	return records, nil
}
