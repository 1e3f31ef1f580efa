package achievements

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// memorySink is an in-memory Sink with the same award/progress semantics
// as the store-backed one.
type memorySink struct {
	state      map[string]map[string]Status // userID -> ruleID -> status
	points     map[string]int
	awardErr   error
	existErr   error
	awardCalls int
}

func newMemorySink() *memorySink {
	return &memorySink{
		state:  make(map[string]map[string]Status),
		points: make(map[string]int),
	}
}

func (m *memorySink) Existing(ctx context.Context, userID string) (map[string]Status, error) {
	if m.existErr != nil {
		return nil, m.existErr
	}
	out := make(map[string]Status, len(m.state[userID]))
	for id, st := range m.state[userID] {
		out[id] = st
	}
	return out, nil
}

func (m *memorySink) Award(ctx context.Context, userID string, award Award) error {
	if m.awardErr != nil {
		return m.awardErr
	}
	m.awardCalls++
	if m.state[userID] == nil {
		m.state[userID] = make(map[string]Status)
	}
	if prior, ok := m.state[userID][award.RuleID]; ok && prior.Unlocked() {
		return nil
	}
	earned := award.EarnedAt
	m.state[userID][award.RuleID] = Status{RuleID: award.RuleID, Progress: 100, EarnedAt: &earned}
	m.points[userID] += award.Points
	return nil
}

func (m *memorySink) UpdateProgress(ctx context.Context, userID, ruleID string, progress float64, rule Rule) error {
	if m.state[userID] == nil {
		m.state[userID] = make(map[string]Status)
	}
	prior := m.state[userID][ruleID]
	if progress > prior.Progress {
		m.state[userID][ruleID] = Status{RuleID: ruleID, Progress: progress}
	}
	return nil
}

func testEngine(sink Sink) *Engine {
	e := NewEngine(sink, nil)
	e.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return e
}

func awardIDs(awards []Award) []string {
	ids := make([]string, len(awards))
	for i, a := range awards {
		ids[i] = a.RuleID
	}
	return ids
}

func TestEvaluate_FirstTestUnlocksFirstSteps(t *testing.T) {
	sink := newMemorySink()
	e := testEngine(sink)

	awards, err := e.Evaluate(context.Background(), Stats{UserID: "u1", TotalTestsTaken: 1, CurrentStreak: 1})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 1 || awards[0].RuleID != "first_test" {
		t.Fatalf("awards = %v, want [first_test]", awardIDs(awards))
	}
	if sink.points["u1"] != 50 {
		t.Errorf("points = %d, want 50", sink.points["u1"])
	}
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	sink := newMemorySink()
	e := testEngine(sink)
	stats := Stats{UserID: "u1", TotalTestsTaken: 1, CurrentStreak: 7}

	first, err := e.Evaluate(context.Background(), stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(first) != 3 { // first_test, streak_3, streak_7
		t.Fatalf("first awards = %v, want 3", awardIDs(first))
	}
	pointsAfterFirst := sink.points["u1"]
	if pointsAfterFirst != 50+100+250 {
		t.Errorf("points = %d, want 400", pointsAfterFirst)
	}

	for i := 0; i < 2; i++ {
		again, err := e.Evaluate(context.Background(), stats)
		if err != nil {
			t.Fatalf("re-evaluate: %v", err)
		}
		if len(again) != 0 {
			t.Errorf("re-evaluate awarded %v, want none", awardIDs(again))
		}
	}
	if sink.points["u1"] != pointsAfterFirst {
		t.Errorf("points changed on re-evaluate: %d", sink.points["u1"])
	}
}

func TestEvaluate_SevenDayStreakAwardsOnce(t *testing.T) {
	sink := newMemorySink()
	e := testEngine(sink)

	// Day 7, then days 8 and 9 of the same streak.
	for _, streak := range []int{7, 8, 9} {
		_, err := e.Evaluate(context.Background(), Stats{UserID: "u1", CurrentStreak: streak})
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
	}

	st := sink.state["u1"]["streak_7"]
	if !st.Unlocked() {
		t.Fatal("streak_7 not unlocked")
	}
	if sink.points["u1"] != 100+250 { // streak_3 + streak_7
		t.Errorf("points = %d, want 350", sink.points["u1"])
	}
}

func TestEvaluate_ProgressIsMonotonic(t *testing.T) {
	sink := newMemorySink()
	e := testEngine(sink)
	ctx := context.Background()

	if _, err := e.Evaluate(ctx, Stats{UserID: "u1", ProblemsSolved: 10}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := sink.state["u1"]["problems_25"].Progress; got != 40 {
		t.Fatalf("progress = %v, want 40", got)
	}

	// A lower snapshot must not regress stored progress.
	if _, err := e.Evaluate(ctx, Stats{UserID: "u1", ProblemsSolved: 5}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := sink.state["u1"]["problems_25"].Progress; got != 40 {
		t.Errorf("progress regressed to %v", got)
	}

	if _, err := e.Evaluate(ctx, Stats{UserID: "u1", ProblemsSolved: 25}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !sink.state["u1"]["problems_25"].Unlocked() {
		t.Error("problems_25 not unlocked at target")
	}
}

func TestEvaluate_RuleFailureDoesNotAbortOthers(t *testing.T) {
	sink := newMemorySink()
	e := testEngine(sink)
	e.rules = []Rule{
		{ID: "boom", Name: "Boom", Unlock: func(s Stats) bool { panic("bad stats") }},
		{ID: "ok", Name: "OK", Points: 10, Unlock: func(s Stats) bool { return true }},
	}

	awards, err := e.Evaluate(context.Background(), Stats{UserID: "u1"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 1 || awards[0].RuleID != "ok" {
		t.Fatalf("awards = %v, want [ok]", awardIDs(awards))
	}
}

func TestEvaluate_SinkErrorSurfacesFromExisting(t *testing.T) {
	sink := newMemorySink()
	sink.existErr = fmt.Errorf("db down")
	e := testEngine(sink)

	if _, err := e.Evaluate(context.Background(), Stats{UserID: "u1"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestEvaluate_AwardErrorSkipsRuleOnly(t *testing.T) {
	sink := newMemorySink()
	sink.awardErr = errors.New("tx failed")
	e := testEngine(sink)

	awards, err := e.Evaluate(context.Background(), Stats{UserID: "u1", TotalTestsTaken: 1})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 0 {
		t.Errorf("awards = %v, want none when the sink fails", awardIDs(awards))
	}
}
