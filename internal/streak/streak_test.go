package streak

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
}

func TestUpdate_FirstActivityStartsStreak(t *testing.T) {
	var s State
	if got := Update(&s, day(1)); got != Started {
		t.Fatalf("outcome = %v, want Started", got)
	}
	if s.Current != 1 || s.Longest != 1 {
		t.Errorf("state = %+v, want current 1 longest 1", s)
	}
}

func TestUpdate_SameDayIsIdempotent(t *testing.T) {
	var s State
	Update(&s, day(1))
	for i := 0; i < 3; i++ {
		if got := Update(&s, day(1).Add(time.Duration(i)*time.Hour)); got != SameDay {
			t.Fatalf("outcome = %v, want SameDay", got)
		}
	}
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
}

func TestUpdate_ConsecutiveDaysExtend(t *testing.T) {
	var s State
	Update(&s, day(1))
	for d := 2; d <= 7; d++ {
		if got := Update(&s, day(d)); got != Extended {
			t.Fatalf("day %d: outcome = %v, want Extended", d, got)
		}
	}
	if s.Current != 7 || s.Longest != 7 {
		t.Errorf("state = %+v, want current 7 longest 7", s)
	}
}

func TestUpdate_GapResetsButKeepsLongest(t *testing.T) {
	var s State
	Update(&s, day(1))
	Update(&s, day(2))
	Update(&s, day(3))

	if got := Update(&s, day(10)); got != Reset {
		t.Fatalf("outcome = %v, want Reset", got)
	}
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
	if s.Longest != 3 {
		t.Errorf("Longest = %d, want 3", s.Longest)
	}
}

func TestUpdate_OutOfOrderIsIgnored(t *testing.T) {
	var s State
	Update(&s, day(5))
	Update(&s, day(6))

	if got := Update(&s, day(2)); got != OutOfOrder {
		t.Fatalf("outcome = %v, want OutOfOrder", got)
	}
	if s.Current != 2 || !s.LastActive.Equal(DateOf(day(6))) {
		t.Errorf("state mutated by out-of-order event: %+v", s)
	}
}

func TestUpdate_MidnightBoundary(t *testing.T) {
	var s State
	Update(&s, time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
	if got := Update(&s, time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)); got != Extended {
		t.Fatalf("outcome = %v, want Extended across midnight", got)
	}
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2", s.Current)
	}
}

func TestDateOf_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:00 on March 2nd at UTC+5 is still March 1st in UTC.
	got := DateOf(time.Date(2026, 3, 2, 2, 0, 0, 0, loc))
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
}
