// Package leaderboard ranks users by derived scores over eventually
// consistent snapshots of their progress records. Ranking is an explicit
// in-memory group-and-sort over a projection, independent of the storage
// engine's query language.
package leaderboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/taxonomy"
)

// Board selects the ranking formula.
type Board string

const (
	BoardOverall  Board = "overall"
	BoardWeekly   Board = "weekly"
	BoardMonthly  Board = "monthly"
	BoardCategory Board = "category"
)

// Overall score weights.
const (
	ProblemPoints = 10
	TestPoints    = 5
)

// Snapshot is the per-user projection the aggregator ranks over.
type Snapshot struct {
	UserID         string
	ProblemsSolved int
	TestsTaken     int
	CurrentStreak  int
	LongestStreak  int
	LastActive     *time.Time
	Analytics      *scoring.Analytics
}

// Query selects a board, an optional category, and a result page.
type Query struct {
	Board    Board
	Category taxonomy.Skill // required for BoardCategory
	Page     int            // 1-based; 0 means first page
	Limit    int            // 0 means no paging
}

// Entry is one ranked row.
type Entry struct {
	UserID string
	Score  float64
	Rank   int
}

// Result is a ranked page plus the total qualifying population.
type Result struct {
	Entries []Entry
	Total   int
}

// Compute ranks the snapshots for the query. Users with no qualifying
// activity are excluded from non-weekly boards; time-windowed boards drop
// users whose last activity falls outside the window.
func Compute(snaps []Snapshot, q Query, now time.Time) (Result, error) {
	if q.Board == BoardCategory && !taxonomy.ValidSkill(q.Category) {
		return Result{}, fmt.Errorf("leaderboard: %q is not a known category", q.Category)
	}

	var cutoff time.Time
	switch q.Board {
	case BoardWeekly:
		cutoff = now.AddDate(0, 0, -7)
	case BoardMonthly:
		cutoff = now.AddDate(0, 0, -30)
	}

	var rows []Snapshot
	for _, s := range snaps {
		if !cutoff.IsZero() {
			if s.LastActive == nil || s.LastActive.Before(cutoff) {
				continue
			}
		}
		if !qualifies(s, q) {
			continue
		}
		rows = append(rows, s)
	}

	sortRows(rows, q)

	entries := make([]Entry, len(rows))
	for i, s := range rows {
		entries[i] = Entry{
			UserID: s.UserID,
			Score:  scoreFor(s, q),
			Rank:   i + 1,
		}
	}

	total := len(entries)
	return Result{Entries: paginate(entries, q.Page, q.Limit), Total: total}, nil
}

// RankOf returns the rank of userID within the full ranking (not just the
// returned page), 0 when the user does not qualify.
func RankOf(snaps []Snapshot, q Query, now time.Time, userID string) (int, error) {
	full := q
	full.Page = 0
	full.Limit = 0
	res, err := Compute(snaps, full, now)
	if err != nil {
		return 0, err
	}
	for _, e := range res.Entries {
		if e.UserID == userID {
			return e.Rank, nil
		}
	}
	return 0, nil
}

// Percentile converts a rank into the share of users ranked at or below it.
func Percentile(rank, total int) float64 {
	if total == 0 || rank <= 0 {
		return 0
	}
	return float64(total-rank) / float64(total) * 100
}

func qualifies(s Snapshot, q Query) bool {
	switch q.Board {
	case BoardWeekly:
		return true
	case BoardCategory:
		if s.Analytics == nil {
			return false
		}
		_, ok := s.Analytics.CategoryAccuracy(q.Category)
		return ok
	default:
		return s.ProblemsSolved > 0 || s.TestsTaken > 0
	}
}

func scoreFor(s Snapshot, q Query) float64 {
	switch q.Board {
	case BoardWeekly:
		return float64(s.CurrentStreak)
	case BoardCategory:
		acc, _ := s.Analytics.CategoryAccuracy(q.Category)
		return acc
	default:
		return float64(s.ProblemsSolved*ProblemPoints + s.TestsTaken*TestPoints)
	}
}

func sortRows(rows []Snapshot, q Query) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch q.Board {
		case BoardWeekly:
			// Streak length, then longest streak.
			if a.CurrentStreak != b.CurrentStreak {
				return a.CurrentStreak > b.CurrentStreak
			}
			if a.LongestStreak != b.LongestStreak {
				return a.LongestStreak > b.LongestStreak
			}
		case BoardCategory:
			// Category accuracy, then category test count.
			accA, _ := a.Analytics.CategoryAccuracy(q.Category)
			accB, _ := b.Analytics.CategoryAccuracy(q.Category)
			if accA != accB {
				return accA > accB
			}
			if ta, tb := categoryTests(a, q.Category), categoryTests(b, q.Category); ta != tb {
				return ta > tb
			}
		default:
			// Derived score, then problems solved, then average accuracy.
			sa, sb := scoreFor(a, q), scoreFor(b, q)
			if sa != sb {
				return sa > sb
			}
			if a.ProblemsSolved != b.ProblemsSolved {
				return a.ProblemsSolved > b.ProblemsSolved
			}
			if aa, ab := avgAccuracy(a), avgAccuracy(b); aa != ab {
				return aa > ab
			}
		}
		// Deterministic final ordering.
		return a.UserID < b.UserID
	})
}

func avgAccuracy(s Snapshot) float64 {
	if s.Analytics == nil {
		return 0
	}
	return s.Analytics.AverageAccuracy
}

func categoryTests(s Snapshot, cat taxonomy.Skill) int {
	if s.Analytics == nil {
		return 0
	}
	if cs, ok := s.Analytics.Categories[cat]; ok {
		return cs.Tests
	}
	return 0
}

func paginate(entries []Entry, page, limit int) []Entry {
	if limit <= 0 {
		return entries
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(entries) {
		return nil
	}
	end := start + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
