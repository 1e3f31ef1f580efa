// Package proficiency maintains per-skill 0-100 proficiency scores with an
// append-only snapshot history per skill.
package proficiency

import (
	"fmt"
	"time"

	"github.com/avinash/preptrack/internal/taxonomy"
)

// Snapshot is one historical proficiency data point.
type Snapshot struct {
	Proficiency float64   `json:"proficiency"`
	Date        time.Time `json:"date"`
}

// Entry is the current proficiency for one skill plus its history.
type Entry struct {
	Skill       taxonomy.Skill `json:"skill"`
	Proficiency float64        `json:"proficiency"`
	LastUpdated time.Time      `json:"last_updated"`
	History     []Snapshot     `json:"history,omitempty"`
}

// Set maps each skill to at most one entry.
type Set map[taxonomy.Skill]*Entry

// ErrInvalidSkill reports a skill name outside the closed set.
type ErrInvalidSkill struct {
	Skill string
}

func (e *ErrInvalidSkill) Error() string {
	return fmt.Sprintf("unknown skill %q", e.Skill)
}

// DefaultSet returns a fresh set covering the full closed skill set at
// zero proficiency, used when a progress record is created lazily.
func DefaultSet(now time.Time) Set {
	set := make(Set, len(taxonomy.AllSkills()))
	for _, s := range taxonomy.AllSkills() {
		set[s] = &Entry{Skill: s, LastUpdated: now}
	}
	return set
}

// Update sets a skill's proficiency, clamped to [0,100], and appends a
// history snapshot. Unknown skills are rejected.
func (s Set) Update(skill taxonomy.Skill, value float64, now time.Time) error {
	if !taxonomy.ValidSkill(skill) {
		return &ErrInvalidSkill{Skill: string(skill)}
	}

	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	e, ok := s[skill]
	if !ok {
		e = &Entry{Skill: skill}
		s[skill] = e
	}
	e.Proficiency = value
	e.LastUpdated = now
	e.History = append(e.History, Snapshot{Proficiency: value, Date: now})
	return nil
}

// Get returns the proficiency for a skill, 0 when untracked.
func (s Set) Get(skill taxonomy.Skill) float64 {
	if e, ok := s[skill]; ok {
		return e.Proficiency
	}
	return 0
}

// Average returns the mean proficiency across all tracked skills.
func (s Set) Average() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range s {
		sum += e.Proficiency
	}
	return sum / float64(len(s))
}

// SubsetAverage returns the mean proficiency over the given skills, counting
// only skills present in the set. The second result is false when none of
// the requested skills are tracked.
func (s Set) SubsetAverage(skills []taxonomy.Skill) (float64, bool) {
	sum, n := 0.0, 0
	for _, skill := range skills {
		if e, ok := s[skill]; ok {
			sum += e.Proficiency
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Minimum returns the lowest proficiency across all tracked skills, 0 for
// an empty set.
func (s Set) Minimum() float64 {
	if len(s) == 0 {
		return 0
	}
	min := 100.0
	for _, e := range s {
		if e.Proficiency < min {
			min = e.Proficiency
		}
	}
	return min
}
