package proficiency

import (
	"errors"
	"testing"
	"time"

	"github.com/avinash/preptrack/internal/taxonomy"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestDefaultSet_CoversAllSkills(t *testing.T) {
	set := DefaultSet(now)
	if len(set) != len(taxonomy.AllSkills()) {
		t.Fatalf("len = %d, want %d", len(set), len(taxonomy.AllSkills()))
	}
	for _, s := range taxonomy.AllSkills() {
		e, ok := set[s]
		if !ok {
			t.Errorf("missing skill %s", s)
			continue
		}
		if e.Proficiency != 0 {
			t.Errorf("%s proficiency = %v, want 0", s, e.Proficiency)
		}
	}
}

func TestUpdate_ClampsAndRecordsHistory(t *testing.T) {
	set := DefaultSet(now)

	if err := set.Update("algorithms", 150, now); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := set.Get("algorithms"); got != 100 {
		t.Errorf("Get = %v, want 100 after clamp", got)
	}

	if err := set.Update("algorithms", -10, now.Add(time.Hour)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := set.Get("algorithms"); got != 0 {
		t.Errorf("Get = %v, want 0 after clamp", got)
	}

	hist := set["algorithms"].History
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	if hist[0].Proficiency != 100 || hist[1].Proficiency != 0 {
		t.Errorf("history = %+v, want clamped values in order", hist)
	}
}

func TestUpdate_RejectsUnknownSkill(t *testing.T) {
	set := DefaultSet(now)
	err := set.Update("interpretive-dance", 50, now)
	var invalid *ErrInvalidSkill
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidSkill, got %v", err)
	}
	if invalid.Skill != "interpretive-dance" {
		t.Errorf("Skill = %q", invalid.Skill)
	}
}

func TestAverage(t *testing.T) {
	set := Set{}
	if set.Average() != 0 {
		t.Errorf("empty Average = %v, want 0", set.Average())
	}

	set.Update("algorithms", 80, now)
	set.Update("databases", 40, now)
	if got := set.Average(); got != 60 {
		t.Errorf("Average = %v, want 60", got)
	}
}

func TestSubsetAverage(t *testing.T) {
	set := Set{}
	set.Update("algorithms", 90, now)
	set.Update("data-structures", 70, now)

	got, ok := set.SubsetAverage(taxonomy.QuantSkills())
	if !ok {
		t.Fatal("expected tracked quant skills")
	}
	if got != 80 {
		t.Errorf("SubsetAverage = %v, want 80", got)
	}

	if _, ok := set.SubsetAverage([]taxonomy.Skill{"behavioral"}); ok {
		t.Error("expected ok=false for untracked subset")
	}
}

func TestMinimum(t *testing.T) {
	set := Set{}
	if set.Minimum() != 0 {
		t.Errorf("empty Minimum = %v, want 0", set.Minimum())
	}
	set.Update("algorithms", 90, now)
	set.Update("databases", 35, now)
	if got := set.Minimum(); got != 35 {
		t.Errorf("Minimum = %v, want 35", got)
	}
}
