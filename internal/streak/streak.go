// Package streak computes consecutive-day activity streaks. Streaks compare
// calendar dates, not timestamps: any number of events on one day counts as
// a single day of activity.
package streak

import "time"

// State holds a user's streak counters.
type State struct {
	Current    int
	Longest    int
	LastActive *time.Time
}

// Outcome describes what an Update call did, for logging and for the
// streak-maintained notification event.
type Outcome int

const (
	// Started means this was the first recorded activity (streak = 1).
	Started Outcome = iota
	// SameDay means the activity fell on an already-counted day; no change.
	SameDay
	// Extended means the streak grew by one consecutive day.
	Extended
	// Reset means a gap of more than one day reset the streak to 1.
	Reset
	// OutOfOrder means the activity predates the last active date and was
	// ignored; a late replay must never shrink or corrupt the streak.
	OutOfOrder
)

// Update applies an activity on the given date to the state and reports
// the outcome. Same-day activity is idempotent; the longest streak is
// maintained on every change.
func Update(s *State, activity time.Time) Outcome {
	day := DateOf(activity)

	if s.LastActive == nil {
		s.Current = 1
		if s.Longest < 1 {
			s.Longest = 1
		}
		s.LastActive = &day
		return Started
	}

	last := DateOf(*s.LastActive)
	switch gap := daysBetween(last, day); {
	case gap < 0:
		return OutOfOrder
	case gap == 0:
		return SameDay
	case gap == 1:
		s.Current++
		if s.Current > s.Longest {
			s.Longest = s.Current
		}
		s.LastActive = &day
		return Extended
	default:
		s.Current = 1
		if s.Longest < 1 {
			s.Longest = 1
		}
		s.LastActive = &day
		return Reset
	}
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b; negative when b
// is earlier.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
