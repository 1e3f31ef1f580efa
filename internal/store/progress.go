package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avinash/preptrack/ent"
	"github.com/avinash/preptrack/ent/progressrecord"
	"github.com/avinash/preptrack/internal/career"
	"github.com/avinash/preptrack/internal/proficiency"
	"github.com/avinash/preptrack/internal/scoring"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) GetOrCreate(ctx context.Context, userID string, now time.Time) (*ProgressDoc, error) {
	doc, err := r.Get(ctx, userID)
	if err == nil {
		return doc, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	fresh := &ProgressDoc{
		UserID:    userID,
		Skills:    proficiency.DefaultSet(now),
		Analytics: scoring.NewAnalytics(),
		Career:    career.Projection{},
		Version:   1,
	}

	skills, analytics, careerMap, err := marshalDerived(fresh)
	if err != nil {
		return nil, err
	}

	_, err = r.client.ProgressRecord.Create().
		SetUserID(userID).
		SetSkills(skills).
		SetAnalytics(analytics).
		SetCareer(careerMap).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a creation race; the other writer's record wins.
			return r.Get(ctx, userID)
		}
		return nil, fmt.Errorf("create progress record: %w", err)
	}
	return fresh, nil
}

func (r *progressRepo) Get(ctx context.Context, userID string) (*ProgressDoc, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return docFromRecord(rec)
}

func (r *progressRepo) Update(ctx context.Context, doc *ProgressDoc) error {
	skills, analytics, careerMap, err := marshalDerived(doc)
	if err != nil {
		return err
	}

	builder := r.client.ProgressRecord.Update().
		Where(
			progressrecord.UserID(doc.UserID),
			progressrecord.Version(doc.Version),
		).
		SetCurrentStreak(doc.CurrentStreak).
		SetLongestStreak(doc.LongestStreak).
		SetSkills(skills).
		SetAnalytics(analytics).
		SetCareer(careerMap).
		SetVersion(doc.Version + 1)
	if doc.LastActive != nil {
		builder = builder.SetLastActive(*doc.LastActive)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	doc.Version++
	return nil
}

func (r *progressRepo) AddProblemsSolved(ctx context.Context, userID string, delta int) error {
	n, err := r.client.ProgressRecord.Update().
		Where(progressrecord.UserID(userID)).
		AddProblemsSolved(delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("increment problems solved: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *progressRepo) All(ctx context.Context) ([]*ProgressDoc, error) {
	recs, err := r.client.ProgressRecord.Query().
		Order(ent.Asc(progressrecord.FieldUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress records: %w", err)
	}

	docs := make([]*ProgressDoc, 0, len(recs))
	for _, rec := range recs {
		doc, err := docFromRecord(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// docFromRecord converts an ent row into a typed document.
func docFromRecord(rec *ent.ProgressRecord) (*ProgressDoc, error) {
	doc := &ProgressDoc{
		UserID:         rec.UserID,
		CurrentStreak:  rec.CurrentStreak,
		LongestStreak:  rec.LongestStreak,
		LastActive:     rec.LastActive,
		TotalPoints:    rec.TotalPoints,
		ProblemsSolved: rec.ProblemsSolved,
		Skills:         make(proficiency.Set),
		Analytics:      scoring.NewAnalytics(),
		Career:         career.Projection{},
		Version:        rec.Version,
	}
	if err := fromMap(rec.Skills, &doc.Skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	if err := fromMap(rec.Analytics, doc.Analytics); err != nil {
		return nil, fmt.Errorf("decode analytics: %w", err)
	}
	if err := fromMap(rec.Career, &doc.Career); err != nil {
		return nil, fmt.Errorf("decode career projection: %w", err)
	}
	return doc, nil
}

func marshalDerived(doc *ProgressDoc) (skills, analytics, careerMap map[string]any, err error) {
	if skills, err = toMap(doc.Skills); err != nil {
		return nil, nil, nil, fmt.Errorf("encode skills: %w", err)
	}
	if analytics, err = toMap(doc.Analytics); err != nil {
		return nil, nil, nil, fmt.Errorf("encode analytics: %w", err)
	}
	if careerMap, err = toMap(doc.Career); err != nil {
		return nil, nil, nil, fmt.Errorf("encode career projection: %w", err)
	}
	return skills, analytics, careerMap, nil
}

// toMap converts a typed value to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap decodes an ent JSON map back into a typed value. A nil map
// leaves the target at its zero value.
func fromMap(m map[string]any, out any) error {
	if m == nil {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
