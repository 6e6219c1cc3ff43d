package models

import (
	"strconv"
	"strings"
	"unicode"
)

// Exercise is one entry of a workout program.
type Exercise struct {
	Name string `json:"name" toml:"name"`
	Sets int    `json:"sets" toml:"sets"`
	Reps string `json:"reps" toml:"reps"` // "8-10", "To Failure", "60 seconds"...
	Rest string `json:"rest" toml:"rest"` // "90s", "2 min".
	Tips string `json:"tips,omitempty" toml:"tips,omitempty"`
}

// TargetSets never goes below one, so a set counter always has somewhere to land.
func (e Exercise) TargetSets() int {
	if e.Sets < 1 {
		return 1
	}
	return e.Sets
}

// RestSeconds parses the rest spec. Malformed specs mean no rest at all.
func (e Exercise) RestSeconds() int {
	return ParseRestSeconds(e.Rest)
}

// ParseRestSeconds extracts the leading integer of a rest spec like "90s",
// "45 sec" or "2 min". Minute units are converted to seconds, everything else
// is read as seconds. Empty, negative or malformed specs return 0.
func ParseRestSeconds(spec string) int {
	spec = strings.TrimSpace(strings.ToLower(spec))
	end := 0
	for end < len(spec) && spec[end] >= '0' && spec[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(spec[:end])
	if err != nil || n < 0 {
		return 0
	}

	unit := strings.TrimFunc(spec[end:], func(r rune) bool {
		return unicode.IsSpace(r) || r == '.'
	})
	switch unit {
	case "m", "min", "mins", "minute", "minutes":
		return n * 60
	default:
		return n
	}
}

// CatalogExercise is an entry of the exercise database (name + muscle group).
type CatalogExercise struct {
	Name       string `json:"name"`
	Muscle     string `json:"muscle"`
	Type       string `json:"type,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	MatchScore int    `json:"match_score,omitempty"`
}
