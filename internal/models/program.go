package models

import "strings"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// MuscleAll matches every muscle group when filtering.
const MuscleAll = "all"

type Workout struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Muscle     string     `json:"muscle"`
	Difficulty string     `json:"difficulty"`
	Duration   string     `json:"duration"` // Estimated, informational only.
	Exercises  []Exercise `json:"exercises"`
	Custom     bool       `json:"custom,omitempty"`
}

// TotalSets sums the target sets of every exercise.
func (w Workout) TotalSets() int {
	total := 0
	for _, ex := range w.Exercises {
		total += ex.TargetSets()
	}
	return total
}

func IsValidDifficulty(d string) bool {
	switch strings.ToLower(d) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

//
// For TOML parsing only
//

type WorkoutImport struct {
	Workouts []WorkoutTOML `toml:"workout"`
}

type WorkoutTOML struct {
	Name       string     `toml:"name"`
	Muscle     string     `toml:"muscle"`
	Difficulty string     `toml:"difficulty"`
	Duration   string     `toml:"duration"`
	Exercises  []Exercise `toml:"exercise"`
}
