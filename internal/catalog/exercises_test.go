package catalog

import (
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseDB_Search(t *testing.T) {
	db := NewExerciseDB()

	results := db.Search("press")
	require.NotEmpty(t, results)

	for i, r := range results {
		assert.Contains(t, r.Name, "Press")
		if i > 0 {
			assert.LessOrEqual(t, r.MatchScore, results[i-1].MatchScore)
		}
	}

	exact := db.Search("Plank")
	require.NotEmpty(t, exact)
	assert.Equal(t, models.CatalogExercise{Name: "Plank", Muscle: "core", MatchScore: 100}, exact[0])
	assert.Equal(t, "Side Plank", exact[1].Name)
	assert.Equal(t, 80, exact[1].MatchScore)
}

func TestExerciseDB_SearchTiesByName(t *testing.T) {
	db := NewExerciseDB()

	results := db.Search("diamond")
	require.Len(t, results, 2)
	assert.Equal(t, "arms", results[0].Muscle)
	assert.Equal(t, "chest", results[1].Muscle)
	assert.Equal(t, 90, results[0].MatchScore)
}

func TestExerciseDB_SearchEmpty(t *testing.T) {
	db := NewExerciseDB()
	assert.Empty(t, db.Search("  "))
	assert.Empty(t, db.Search("zumba"))
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name, term string
		want       int
	}{
		{"Dips", "dips", 100},
		{"Dips", "di", 90},
		{"Chest Dips", "dip", 80},
		{"Pull-ups", "ll-u", 70},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchScore(tt.name, tt.term), tt.name)
	}
}

func TestExerciseDB_ByMuscle(t *testing.T) {
	db := NewExerciseDB()

	assert.Equal(t, []string{"arms", "back", "chest", "core", "legs", "shoulders"}, db.Muscles())
	assert.Len(t, db.ByMuscle("Legs"), 18)
	assert.Empty(t, db.ByMuscle("neck"))

	// Callers get a copy.
	legs := db.ByMuscle("legs")
	legs[0] = "Changed"
	assert.Equal(t, "Back Squats", db.ByMuscle("legs")[0])
}

func TestExerciseDB_Random(t *testing.T) {
	db := NewExerciseDB()

	picked := db.Random("back", 5)
	require.Len(t, picked, 5)
	seen := map[string]bool{}
	for _, name := range picked {
		assert.Contains(t, db.ByMuscle("back"), name)
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
	}

	assert.Len(t, db.Random("core", 100), 18)
	assert.Empty(t, db.Random("core", -1))
	assert.Empty(t, db.Random("neck", 3))
}

func TestExerciseDB_Merge(t *testing.T) {
	db := NewExerciseDB()

	added := db.Merge([]models.CatalogExercise{
		{Name: "Incline Hammer Curls", Muscle: "Biceps", Type: "strength"},
		{Name: "plank", Muscle: "core"},
		{Name: "", Muscle: "core"},
		{Name: "Sissy Squat", Muscle: "legs"},
	})
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Incline Hammer Curls"}, db.ByMuscle("biceps"))
	assert.Len(t, db.ByMuscle("core"), 18)

	results := db.Search("sissy")
	require.Len(t, results, 1)
	assert.Equal(t, "legs", results[0].Muscle)
}
