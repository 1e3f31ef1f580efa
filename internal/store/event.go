package store

import (
	"context"
	"fmt"

	"github.com/avinash/preptrack/ent"
	"github.com/avinash/preptrack/ent/activityevent"
	"github.com/avinash/preptrack/ent/testevent"
	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/taxonomy"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTestEvent(ctx context.Context, data TestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TestEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Result.Date).
		SetUserID(data.UserID).
		SetTestName(data.Result.TestName).
		SetCategory(string(data.Result.Category)).
		SetDifficulty(string(data.Result.Difficulty)).
		SetScore(data.Result.Score).
		SetTotalScore(data.Result.TotalScore).
		SetAccuracy(data.Result.Accuracy).
		SetDurationSecs(data.Result.DurationSecs).
		SetTopics(data.Result.Topics).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save test event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTestEvents(ctx context.Context, userID string, opts QueryOpts) ([]TestEventRecord, error) {
	query := r.client.TestEvent.Query().
		Where(testevent.UserID(userID)).
		Order(ent.Desc(testevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(testevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(testevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(testevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(testevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test events: %w", err)
	}

	records := make([]TestEventRecord, len(events))
	for i, e := range events {
		records[i] = TestEventRecord{
			UserID: e.UserID,
			Result: scoring.TestResult{
				TestName:     e.TestName,
				Category:     taxonomy.Skill(e.Category),
				Difficulty:   taxonomy.Difficulty(e.Difficulty),
				Score:        e.Score,
				TotalScore:   e.TotalScore,
				Accuracy:     e.Accuracy,
				DurationSecs: e.DurationSecs,
				Date:         e.Timestamp,
				Topics:       e.Topics,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) AppendActivityEvent(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetActivityID(data.ActivityID).
		SetUserID(data.UserID).
		SetActivityType(string(data.Type))
	if data.Metadata != nil {
		builder = builder.SetMetadata(data.Metadata)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateActivity
		}
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryActivityEvents(ctx context.Context, userID string, opts QueryOpts) ([]ActivityEventRecord, error) {
	query := r.client.ActivityEvent.Query().
		Where(activityevent.UserID(userID)).
		Order(ent.Desc(activityevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(activityevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(activityevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(activityevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(activityevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	records := make([]ActivityEventRecord, len(events))
	for i, e := range events {
		records[i] = ActivityEventRecord{
			ActivityID: e.ActivityID,
			UserID:     e.UserID,
			Type:       taxonomy.ActivityType(e.ActivityType),
			Metadata:   e.Metadata,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) CountActivityEvents(ctx context.Context, userID string, typ taxonomy.ActivityType) (int, error) {
	n, err := r.client.ActivityEvent.Query().
		Where(
			activityevent.UserID(userID),
			activityevent.ActivityType(string(typ)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count activity events: %w", err)
	}
	return n, nil
}
