package catalog

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/misterclayt0n/forja/internal/models"
)

// Match scores, best first.
const (
	scoreExact      = 100
	scorePrefix     = 90
	scoreWordPrefix = 80
	scoreContains   = 70
)

// ExerciseDB is the exercise name list, grouped by muscle.
type ExerciseDB struct {
	byMuscle map[string][]string
}

func NewExerciseDB() *ExerciseDB {
	db := &ExerciseDB{byMuscle: make(map[string][]string, len(exerciseNames))}
	for muscle, names := range exerciseNames {
		db.byMuscle[muscle] = append([]string(nil), names...)
	}
	return db
}

// Merge adds exercises fetched elsewhere, skipping names the muscle already has.
// Returns how many were added.
func (db *ExerciseDB) Merge(exercises []models.CatalogExercise) int {
	added := 0
	for _, ex := range exercises {
		muscle := strings.ToLower(strings.TrimSpace(ex.Muscle))
		name := strings.TrimSpace(ex.Name)
		if muscle == "" || name == "" || db.has(muscle, name) {
			continue
		}
		db.byMuscle[muscle] = append(db.byMuscle[muscle], name)
		added++
	}
	return added
}

func (db *ExerciseDB) has(muscle, name string) bool {
	for _, n := range db.byMuscle[muscle] {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func (db *ExerciseDB) Muscles() []string {
	muscles := make([]string, 0, len(db.byMuscle))
	for m := range db.byMuscle {
		muscles = append(muscles, m)
	}
	sort.Strings(muscles)
	return muscles
}

func (db *ExerciseDB) ByMuscle(muscle string) []string {
	return append([]string(nil), db.byMuscle[strings.ToLower(muscle)]...)
}

// Search does a case-insensitive substring search over every name, best
// matches first. Names listed under several muscles show up once per muscle.
func (db *ExerciseDB) Search(query string) []models.CatalogExercise {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var results []models.CatalogExercise
	for muscle, names := range db.byMuscle {
		for _, name := range names {
			if !strings.Contains(strings.ToLower(name), term) {
				continue
			}
			results = append(results, models.CatalogExercise{
				Name:       name,
				Muscle:     muscle,
				MatchScore: matchScore(name, term),
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Muscle < b.Muscle
	})
	return results
}

// matchScore expects name to contain term already.
func matchScore(name, term string) int {
	lower := strings.ToLower(name)
	switch {
	case lower == term:
		return scoreExact
	case strings.HasPrefix(lower, term):
		return scorePrefix
	}
	for _, word := range strings.Fields(lower) {
		if strings.HasPrefix(word, term) {
			return scoreWordPrefix
		}
	}
	return scoreContains
}

// Random picks up to n distinct exercises for muscle.
func (db *ExerciseDB) Random(muscle string, n int) []string {
	names := db.ByMuscle(muscle)
	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	if n < 0 {
		n = 0
	}
	if n < len(names) {
		names = names[:n]
	}
	return names
}
