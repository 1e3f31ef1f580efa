// Package career derives per-track readiness projections from skill
// proficiency and study analytics.
package career

import (
	"math"

	"github.com/avinash/preptrack/internal/proficiency"
	"github.com/avinash/preptrack/internal/scoring"
	"github.com/avinash/preptrack/internal/taxonomy"
)

// Track identifies a career track.
type Track string

const (
	TrackProductCompanies Track = "productCompanies"
	TrackEarlyStartups    Track = "earlyStartups"
	TrackQuantTrading     Track = "quantTrading"
)

// AllTracks returns the tracks in display order.
func AllTracks() []Track {
	return []Track{TrackProductCompanies, TrackEarlyStartups, TrackQuantTrading}
}

// Estimate is one track's projection.
type Estimate struct {
	MatchPercentage float64 `json:"match_percentage"`
	ReadinessLevel  int     `json:"readiness_level"`
	EstimatedMonths int     `json:"estimated_months"`
}

// Projection holds the estimate for every track.
type Projection map[Track]Estimate

// Months-to-readiness divisors. Quant penalizes a shortfall fastest.
const (
	productDivisor = 10
	startupDivisor = 15
	quantDivisor   = 8
)

// Recompute derives the full projection from the current skill set and
// analytics. It is a pure function: same inputs, same projection.
func Recompute(skills proficiency.Set, analytics *scoring.Analytics) Projection {
	avgProf := skills.Average()
	consistency := 0.0
	avgTime := 0.0
	if analytics != nil {
		consistency = analytics.ConsistencyScore
		avgTime = analytics.AverageTimePerQuestion
	}

	product := 0.8*avgProf + 0.2*consistency

	// Startups reward speed: the time term grows as seconds-per-question
	// shrinks.
	startup := 0.6*avgProf + 0.4*(100/math.Max(1, avgTime))

	quant, ok := skills.SubsetAverage(taxonomy.QuantSkills())
	if !ok {
		quant = 0.5 * avgProf
	}

	return Projection{
		TrackProductCompanies: estimate(product, productDivisor),
		TrackEarlyStartups:    estimate(startup, startupDivisor),
		TrackQuantTrading:     estimate(quant, quantDivisor),
	}
}

func estimate(match float64, divisor float64) Estimate {
	if match < 0 {
		match = 0
	}
	if match > 100 {
		match = 100
	}

	level := int(math.Ceil(match / 20))
	if level > 5 {
		level = 5
	}
	if level < 1 {
		level = 1
	}

	months := int(math.Ceil((100 - match) / divisor))
	if months < 1 {
		months = 1
	}

	return Estimate{
		MatchPercentage: match,
		ReadinessLevel:  level,
		EstimatedMonths: months,
	}
}
