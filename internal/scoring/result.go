package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/avinash/preptrack/internal/taxonomy"
)

// DefaultTotalScore is used when a submission omits or corrupts totalScore.
const DefaultTotalScore = 10

// TestInput is a raw test submission as received from the caller.
type TestInput struct {
	TestName     string   `json:"test_name"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty"`
	Score        int      `json:"score"`
	TotalScore   int      `json:"total_score"`
	Accuracy     float64  `json:"accuracy"`
	DurationSecs int      `json:"duration_secs"`
	Topics       []string `json:"topics,omitempty"`
}

// TestResult is an immutable, normalized test record. Once built it is
// appended to history and never mutated.
type TestResult struct {
	TestName     string              `json:"test_name"`
	Category     taxonomy.Skill      `json:"category"`
	Difficulty   taxonomy.Difficulty `json:"difficulty"`
	Score        int                 `json:"score"`
	TotalScore   int                 `json:"total_score"`
	Accuracy     float64             `json:"accuracy"`
	DurationSecs int                 `json:"duration_secs"`
	Date         time.Time           `json:"date"`
	Topics       []string            `json:"topics,omitempty"`
}

// ErrInvalidInput reports a test submission whose shape cannot be repaired
// by clamping.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid test input: %s %s", e.Field, e.Reason)
}

// BuildResult validates and clamps a raw submission into an immutable
// TestResult. Numeric fields are repaired (clamped) rather than rejected;
// only missing required fields and unknown categories fail.
func BuildResult(in TestInput, now time.Time) (TestResult, error) {
	name := strings.TrimSpace(in.TestName)
	if name == "" {
		return TestResult{}, &ErrInvalidInput{Field: "test_name", Reason: "is required"}
	}

	cat := taxonomy.Skill(strings.ToLower(strings.TrimSpace(in.Category)))
	if !taxonomy.ValidSkill(cat) {
		return TestResult{}, &ErrInvalidInput{Field: "category", Reason: fmt.Sprintf("%q is not a known category", in.Category)}
	}

	total := in.TotalScore
	if total < 1 {
		total = DefaultTotalScore
	}
	score := in.Score
	if score < 0 {
		score = 0
	}
	if score > total {
		score = total
	}

	accuracy := in.Accuracy
	if accuracy <= 0 {
		// Fall back to the raw ratio when no accuracy was declared.
		accuracy = 100 * float64(score) / float64(total)
	}
	if accuracy > 100 {
		accuracy = 100
	}

	duration := in.DurationSecs
	if duration < 0 {
		duration = 0
	}

	return TestResult{
		TestName:     name,
		Category:     cat,
		Difficulty:   taxonomy.NormalizeDifficulty(in.Difficulty),
		Score:        score,
		TotalScore:   total,
		Accuracy:     accuracy,
		DurationSecs: duration,
		Date:         now,
		Topics:       in.Topics,
	}, nil
}
