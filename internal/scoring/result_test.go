package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/avinash/preptrack/internal/taxonomy"
)

var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func TestBuildResult_DerivesAccuracyFromRatio(t *testing.T) {
	r, err := BuildResult(TestInput{
		TestName:   "Arrays Quiz",
		Category:   "algorithms",
		Score:      5,
		TotalScore: 10,
	}, testNow)
	if err != nil {
		t.Fatalf("BuildResult: %v", err)
	}
	if r.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", r.Accuracy)
	}
}

func TestBuildResult_AccuracyOverrideWins(t *testing.T) {
	r, err := BuildResult(TestInput{
		TestName:   "Arrays Quiz",
		Category:   "algorithms",
		Score:      5,
		TotalScore: 10,
		Accuracy:   62.5,
	}, testNow)
	if err != nil {
		t.Fatalf("BuildResult: %v", err)
	}
	if r.Accuracy != 62.5 {
		t.Errorf("Accuracy = %v, want 62.5", r.Accuracy)
	}
}

func TestBuildResult_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		in         TestInput
		wantScore  int
		wantTotal  int
		wantAcc    float64
		wantDur    int
	}{
		{
			name:      "zero total falls back to default",
			in:        TestInput{TestName: "t", Category: "databases", Score: 3},
			wantScore: 3, wantTotal: DefaultTotalScore, wantAcc: 30,
		},
		{
			name:      "negative total falls back to default",
			in:        TestInput{TestName: "t", Category: "databases", Score: 3, TotalScore: -5},
			wantScore: 3, wantTotal: DefaultTotalScore, wantAcc: 30,
		},
		{
			name:      "score above total clamps to total",
			in:        TestInput{TestName: "t", Category: "databases", Score: 15, TotalScore: 10},
			wantScore: 10, wantTotal: 10, wantAcc: 100,
		},
		{
			name:      "negative score clamps to zero",
			in:        TestInput{TestName: "t", Category: "databases", Score: -2, TotalScore: 10},
			wantScore: 0, wantTotal: 10, wantAcc: 0,
		},
		{
			name:      "accuracy above 100 clamps",
			in:        TestInput{TestName: "t", Category: "databases", Score: 5, TotalScore: 10, Accuracy: 140},
			wantScore: 5, wantTotal: 10, wantAcc: 100,
		},
		{
			name:      "negative duration clamps to zero",
			in:        TestInput{TestName: "t", Category: "databases", Score: 5, TotalScore: 10, DurationSecs: -30},
			wantScore: 5, wantTotal: 10, wantAcc: 50, wantDur: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := BuildResult(tt.in, testNow)
			if err != nil {
				t.Fatalf("BuildResult: %v", err)
			}
			if r.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", r.Score, tt.wantScore)
			}
			if r.TotalScore != tt.wantTotal {
				t.Errorf("TotalScore = %d, want %d", r.TotalScore, tt.wantTotal)
			}
			if r.Accuracy != tt.wantAcc {
				t.Errorf("Accuracy = %v, want %v", r.Accuracy, tt.wantAcc)
			}
			if r.DurationSecs != tt.wantDur {
				t.Errorf("DurationSecs = %d, want %d", r.DurationSecs, tt.wantDur)
			}
		})
	}
}

func TestBuildResult_RequiredFields(t *testing.T) {
	_, err := BuildResult(TestInput{Category: "algorithms"}, testNow)
	var invalid *ErrInvalidInput
	if !errors.As(err, &invalid) || invalid.Field != "test_name" {
		t.Fatalf("expected test_name error, got %v", err)
	}

	_, err = BuildResult(TestInput{TestName: "t", Category: "underwater-basket-weaving"}, testNow)
	if !errors.As(err, &invalid) || invalid.Field != "category" {
		t.Fatalf("expected category error, got %v", err)
	}
}

func TestBuildResult_NormalizesCategoryCase(t *testing.T) {
	r, err := BuildResult(TestInput{TestName: "t", Category: "  Algorithms "}, testNow)
	if err != nil {
		t.Fatalf("BuildResult: %v", err)
	}
	if r.Category != "algorithms" {
		t.Errorf("Category = %q, want algorithms", r.Category)
	}
}

func TestBuildResult_DifficultyNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"easy", "easy"},
		{"TOUGH", "hard"},
		{"gibberish", "unknown"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		r, err := BuildResult(TestInput{TestName: "t", Category: "algorithms", Difficulty: tt.raw}, testNow)
		if err != nil {
			t.Fatalf("BuildResult(%q): %v", tt.raw, err)
		}
		if string(r.Difficulty) != tt.want {
			t.Errorf("Difficulty(%q) = %q, want %q", tt.raw, r.Difficulty, tt.want)
		}
	}
}

func TestPointsFor(t *testing.T) {
	tests := []struct {
		difficulty string
		want       int
	}{
		{"easy", 3},
		{"medium", 7},
		{"hard", 10},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got := PointsFor(taxonomy.Difficulty(tt.difficulty))
		if got != tt.want {
			t.Errorf("PointsFor(%s) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}
