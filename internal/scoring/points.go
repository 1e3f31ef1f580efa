package scoring

import "github.com/avinash/preptrack/internal/taxonomy"

// Point values awarded for a solved problem by difficulty.
const (
	EasyPoints   = 3
	MediumPoints = 7
	HardPoints   = 10
)

// PointsFor returns the points awarded for solving a problem of the given
// difficulty. Unknown difficulties score zero but still count toward totals.
func PointsFor(d taxonomy.Difficulty) int {
	switch d {
	case taxonomy.DifficultyEasy:
		return EasyPoints
	case taxonomy.DifficultyMedium:
		return MediumPoints
	case taxonomy.DifficultyHard:
		return HardPoints
	default:
		return 0
	}
}
