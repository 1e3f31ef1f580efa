package achievements

import (
	"testing"

	"github.com/avinash/preptrack/internal/taxonomy"
)

func TestCatalog_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Catalog() {
		if seen[r.ID] {
			t.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestCatalog_EveryRuleHasOnePredicate(t *testing.T) {
	for _, r := range Catalog() {
		hasUnlock := r.Unlock != nil
		hasProgress := r.Progress != nil
		if hasUnlock == hasProgress {
			t.Errorf("rule %q: want exactly one of Unlock/Progress", r.ID)
		}
		if r.Points <= 0 {
			t.Errorf("rule %q: points = %d", r.ID, r.Points)
		}
		if r.Name == "" || r.Description == "" {
			t.Errorf("rule %q: missing name or description", r.ID)
		}
	}
}

func TestRuleByID(t *testing.T) {
	r, ok := RuleByID("streak_7")
	if !ok {
		t.Fatal("streak_7 not found")
	}
	if r.Name != "7-Day Streak" || r.Points != 250 {
		t.Errorf("rule = %+v", r)
	}
	if _, ok := RuleByID("nope"); ok {
		t.Error("expected lookup miss")
	}
}

func TestStreakRarityTiers(t *testing.T) {
	tests := []struct {
		days int
		want Rarity
	}{
		{3, RarityCommon},
		{7, RarityRare},
		{29, RarityRare},
		{30, RarityEpic},
		{100, RarityLegendary},
	}
	for _, tt := range tests {
		if got := StreakRarity(tt.days); got != tt.want {
			t.Errorf("StreakRarity(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestProgressToward(t *testing.T) {
	if got := progressToward(5, 10); got != 50 {
		t.Errorf("progressToward(5,10) = %v, want 50", got)
	}
	if got := progressToward(30, 10); got != 100 {
		t.Errorf("progressToward(30,10) = %v, want capped 100", got)
	}
	if got := progressToward(0, 10); got != 0 {
		t.Errorf("progressToward(0,10) = %v, want 0", got)
	}
}

func TestStats_ProficiencyExtremes(t *testing.T) {
	s := Stats{SkillProficiency: map[taxonomy.Skill]float64{
		"algorithms": 95,
		"databases":  40,
	}}
	if s.MaxProficiency() != 95 {
		t.Errorf("MaxProficiency = %v, want 95", s.MaxProficiency())
	}
	if s.MinProficiency() != 40 {
		t.Errorf("MinProficiency = %v, want 40", s.MinProficiency())
	}

	var empty Stats
	if empty.MaxProficiency() != 0 || empty.MinProficiency() != 0 {
		t.Error("empty stats should report zero proficiency extremes")
	}
}
