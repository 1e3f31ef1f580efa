package taxonomy

import "strings"

// Difficulty represents a test or problem difficulty tier.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyUnknown Difficulty = "unknown"
)

// AllDifficulties returns the difficulty tiers from lowest to highest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// NormalizeDifficulty maps free-form difficulty labels onto the closed set.
// "Tough" is a legacy alias for hard; anything unrecognized becomes unknown
// rather than failing, since unknown difficulties still count toward totals.
func NormalizeDifficulty(raw string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard", "tough":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}
