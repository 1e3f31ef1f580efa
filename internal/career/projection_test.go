package career

import (
	"testing"
	"time"

	"github.com/avinash/preptrack/internal/proficiency"
	"github.com/avinash/preptrack/internal/scoring"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestRecompute_EmptyInputs(t *testing.T) {
	p := Recompute(proficiency.Set{}, nil)

	prod := p[TrackProductCompanies]
	if prod.MatchPercentage != 0 || prod.ReadinessLevel != 1 || prod.EstimatedMonths != 10 {
		t.Errorf("product = %+v", prod)
	}

	// With no timing data the speed term contributes its full 40 points.
	startup := p[TrackEarlyStartups]
	if startup.MatchPercentage != 40 || startup.ReadinessLevel != 2 || startup.EstimatedMonths != 4 {
		t.Errorf("startup = %+v", startup)
	}

	quant := p[TrackQuantTrading]
	if quant.MatchPercentage != 0 || quant.EstimatedMonths != 13 {
		t.Errorf("quant = %+v", quant)
	}
}

func TestRecompute_TrackFormulas(t *testing.T) {
	skills := proficiency.Set{}
	skills.Update("algorithms", 80, now)
	skills.Update("data-structures", 60, now)

	analytics := &scoring.Analytics{
		ConsistencyScore:       100,
		AverageTimePerQuestion: 2,
	}
	p := Recompute(skills, analytics)

	// 0.8*70 + 0.2*100 = 76.
	prod := p[TrackProductCompanies]
	if prod.MatchPercentage != 76 || prod.ReadinessLevel != 4 || prod.EstimatedMonths != 3 {
		t.Errorf("product = %+v", prod)
	}

	// 0.6*70 + 0.4*(100/2) = 62.
	startup := p[TrackEarlyStartups]
	if startup.MatchPercentage != 62 || startup.ReadinessLevel != 4 || startup.EstimatedMonths != 3 {
		t.Errorf("startup = %+v", startup)
	}

	// Quant skills tracked: (80+60)/2 = 70.
	quant := p[TrackQuantTrading]
	if quant.MatchPercentage != 70 || quant.ReadinessLevel != 4 || quant.EstimatedMonths != 4 {
		t.Errorf("quant = %+v", quant)
	}
}

func TestRecompute_QuantFallsBackWithoutQuantSkills(t *testing.T) {
	skills := proficiency.Set{}
	skills.Update("behavioral", 80, now)

	p := Recompute(skills, nil)
	quant := p[TrackQuantTrading]
	// Half the overall average when no quant skill is tracked.
	if quant.MatchPercentage != 40 {
		t.Errorf("quant match = %v, want 40", quant.MatchPercentage)
	}
}

func TestRecompute_IsPure(t *testing.T) {
	skills := proficiency.Set{}
	skills.Update("algorithms", 55, now)
	analytics := &scoring.Analytics{ConsistencyScore: 80, AverageTimePerQuestion: 5}

	a := Recompute(skills, analytics)
	b := Recompute(skills, analytics)
	for _, track := range AllTracks() {
		if a[track] != b[track] {
			t.Errorf("%s differs between identical recomputes", track)
		}
	}
}

func TestEstimate_Bounds(t *testing.T) {
	e := estimate(150, productDivisor)
	if e.MatchPercentage != 100 || e.ReadinessLevel != 5 || e.EstimatedMonths != 1 {
		t.Errorf("estimate(150) = %+v", e)
	}

	e = estimate(-20, productDivisor)
	if e.MatchPercentage != 0 || e.ReadinessLevel != 1 || e.EstimatedMonths != 10 {
		t.Errorf("estimate(-20) = %+v", e)
	}
}
