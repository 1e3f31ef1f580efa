package taxonomy

import "testing"

func TestValidSkill(t *testing.T) {
	for _, s := range AllSkills() {
		if !ValidSkill(s) {
			t.Errorf("ValidSkill(%s) = false", s)
		}
	}
	for _, s := range []Skill{"", "ALGORITHMS", "cooking"} {
		if ValidSkill(s) {
			t.Errorf("ValidSkill(%q) = true", s)
		}
	}
}

func TestQuantSkillsAreValid(t *testing.T) {
	for _, s := range QuantSkills() {
		if !ValidSkill(s) {
			t.Errorf("quant skill %s not in the closed set", s)
		}
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		raw  string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"Medium", DifficultyMedium},
		{"HARD", DifficultyHard},
		{"tough", DifficultyHard},
		{" easy ", DifficultyEasy},
		{"brutal", DifficultyUnknown},
		{"", DifficultyUnknown},
	}
	for _, tt := range tests {
		if got := NormalizeDifficulty(tt.raw); got != tt.want {
			t.Errorf("NormalizeDifficulty(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestValidActivityType(t *testing.T) {
	for _, a := range AllActivityTypes() {
		if !ValidActivityType(a) {
			t.Errorf("ValidActivityType(%s) = false", a)
		}
	}
	if ValidActivityType("napping") {
		t.Error("ValidActivityType(napping) = true")
	}
}
