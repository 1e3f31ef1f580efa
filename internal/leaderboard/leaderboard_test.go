package leaderboard

import (
	"testing"
	"time"

	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/taxonomy"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func active(daysAgo int) *time.Time {
	t := now.AddDate(0, 0, -daysAgo)
	return &t
}

func analyticsWith(avg float64, cats map[taxonomy.Skill]*scoring.CategoryStats) *scoring.Analytics {
	return &scoring.Analytics{AverageAccuracy: avg, Categories: cats}
}

func userIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	return ids
}

func TestCompute_OverallScoreAndOrdering(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "alice", ProblemsSolved: 3, TestsTaken: 2, LastActive: active(1)},  // 40
		{UserID: "bob", ProblemsSolved: 5, TestsTaken: 1, LastActive: active(1)},    // 55
		{UserID: "carol", ProblemsSolved: 0, TestsTaken: 8, LastActive: active(1)},  // 40
		{UserID: "dave", ProblemsSolved: 0, TestsTaken: 0, LastActive: active(1)},   // inactive
	}

	res, err := Compute(snaps, Query{Board: BoardOverall}, now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("Total = %d, want 3 (inactive users excluded)", res.Total)
	}

	// Alice and carol tie on score; alice wins on problems solved.
	want := []string{"bob", "alice", "carol"}
	got := userIDs(res.Entries)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if res.Entries[0].Score != 55 {
		t.Errorf("bob score = %v, want 55", res.Entries[0].Score)
	}
	if res.Entries[1].Rank != 2 {
		t.Errorf("alice rank = %d, want 2", res.Entries[1].Rank)
	}
}

func TestCompute_TieBreakFallsBackToUserID(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "zed", ProblemsSolved: 1, LastActive: active(1)},
		{UserID: "amy", ProblemsSolved: 1, LastActive: active(1)},
	}
	res, err := Compute(snaps, Query{Board: BoardOverall}, now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got := userIDs(res.Entries); got[0] != "amy" || got[1] != "zed" {
		t.Errorf("order = %v, want [amy zed]", got)
	}
}

func TestCompute_IsDeterministic(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "u1", ProblemsSolved: 2, LastActive: active(1)},
		{UserID: "u2", ProblemsSolved: 2, LastActive: active(1)},
		{UserID: "u3", ProblemsSolved: 2, LastActive: active(1)},
	}
	first, _ := Compute(snaps, Query{Board: BoardOverall}, now)
	for i := 0; i < 5; i++ {
		again, _ := Compute(snaps, Query{Board: BoardOverall}, now)
		for j := range first.Entries {
			if again.Entries[j].UserID != first.Entries[j].UserID {
				t.Fatal("ordering changed between identical computes")
			}
		}
	}
}

func TestCompute_WeeklyWindowAndStreakRanking(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "fresh", CurrentStreak: 4, LongestStreak: 4, LastActive: active(2)},
		{UserID: "fresher", CurrentStreak: 4, LongestStreak: 9, LastActive: active(1)},
		{UserID: "stale", CurrentStreak: 50, LongestStreak: 50, LastActive: active(10)},
	}
	res, err := Compute(snaps, Query{Board: BoardWeekly}, now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2 (stale user outside the 7-day window)", res.Total)
	}
	// Equal current streaks; longest streak breaks the tie.
	if got := userIDs(res.Entries); got[0] != "fresher" {
		t.Errorf("order = %v, want fresher first", got)
	}
}

func TestCompute_MonthlyWindow(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "recent", ProblemsSolved: 1, LastActive: active(20)},
		{UserID: "ancient", ProblemsSolved: 100, LastActive: active(40)},
		{UserID: "never", ProblemsSolved: 100, LastActive: nil},
	}
	res, err := Compute(snaps, Query{Board: BoardMonthly}, now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Total != 1 || res.Entries[0].UserID != "recent" {
		t.Errorf("entries = %v, want [recent]", userIDs(res.Entries))
	}
}

func TestCompute_CategoryBoard(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "a", LastActive: active(1), Analytics: analyticsWith(0, map[taxonomy.Skill]*scoring.CategoryStats{
			"algorithms": {Tests: 4, ScoreSum: 9, TotalSum: 10},
		})},
		{UserID: "b", LastActive: active(1), Analytics: analyticsWith(0, map[taxonomy.Skill]*scoring.CategoryStats{
			"algorithms": {Tests: 2, ScoreSum: 18, TotalSum: 20},
		})},
		{UserID: "c", LastActive: active(1), Analytics: analyticsWith(0, map[taxonomy.Skill]*scoring.CategoryStats{
			"databases": {Tests: 9, ScoreSum: 9, TotalSum: 9},
		})},
	}
	res, err := Compute(snaps, Query{Board: BoardCategory, Category: "algorithms"}, now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2 (no algorithms activity excluded)", res.Total)
	}
	// Both at 90% accuracy; a has more category tests.
	if got := userIDs(res.Entries); got[0] != "a" {
		t.Errorf("order = %v, want a first", got)
	}
}

func TestCompute_CategoryBoardRejectsUnknownCategory(t *testing.T) {
	_, err := Compute(nil, Query{Board: BoardCategory, Category: "alchemy"}, now)
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestCompute_Pagination(t *testing.T) {
	var snaps []Snapshot
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		snaps = append(snaps, Snapshot{UserID: id, ProblemsSolved: 1, LastActive: active(1)})
	}
	res, err := Compute(snaps, Query{Board: BoardOverall, Page: 2, Limit: 2}, now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Total != 5 {
		t.Errorf("Total = %d, want 5", res.Total)
	}
	if got := userIDs(res.Entries); len(got) != 2 || got[0] != "c" {
		t.Errorf("page 2 = %v, want [c d]", got)
	}
	// Ranks reflect position in the full ranking, not the page.
	if res.Entries[0].Rank != 3 {
		t.Errorf("rank = %d, want 3", res.Entries[0].Rank)
	}

	empty, _ := Compute(snaps, Query{Board: BoardOverall, Page: 9, Limit: 2}, now)
	if len(empty.Entries) != 0 {
		t.Errorf("expected empty page, got %v", userIDs(empty.Entries))
	}
}

func TestRankOfAndPercentile(t *testing.T) {
	snaps := []Snapshot{
		{UserID: "a", ProblemsSolved: 9, LastActive: active(1)},
		{UserID: "b", ProblemsSolved: 5, LastActive: active(1)},
		{UserID: "c", ProblemsSolved: 1, LastActive: active(1)},
		{UserID: "d", ProblemsSolved: 7, LastActive: active(1)},
	}
	// Paged query: RankOf must still see the full ranking.
	rank, err := RankOf(snaps, Query{Board: BoardOverall, Page: 1, Limit: 1}, now, "b")
	if err != nil {
		t.Fatalf("rankof: %v", err)
	}
	if rank != 3 {
		t.Errorf("rank = %d, want 3", rank)
	}

	if got := Percentile(rank, 4); got != 25 {
		t.Errorf("Percentile(3,4) = %v, want 25", got)
	}
	if got := Percentile(1, 4); got != 75 {
		t.Errorf("Percentile(1,4) = %v, want 75", got)
	}
	if got := Percentile(0, 4); got != 0 {
		t.Errorf("Percentile(0,4) = %v, want 0", got)
	}

	missing, err := RankOf(snaps, Query{Board: BoardOverall}, now, "ghost")
	if err != nil {
		t.Fatalf("rankof: %v", err)
	}
	if missing != 0 {
		t.Errorf("rank = %d, want 0 for unranked user", missing)
	}
}
