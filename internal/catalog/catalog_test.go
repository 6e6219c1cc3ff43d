package catalog

import (
	"errors"
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoWorkouts = `
[[workout]]
name = "Garage Pull"
muscle = "Back"
difficulty = "Beginner"

[[workout.exercise]]
name = "Pull-ups"
sets = 3
reps = "8"
rest = "90s"

[[workout.exercise]]
name = "Dumbbell Rows"
sets = 3
reps = "12"
rest = "1 min"
tips = "Flat back"

[[workout]]
name = "Quick Core"
muscle = "core"
difficulty = "advanced"
duration = "20 min"

[[workout.exercise]]
name = "Plank"
sets = 2
reps = "60 seconds"
rest = "30s"
`

func newCatalog(t *testing.T) (*Catalog, *storage.Repo) {
	t.Helper()
	repo := storage.NewRepo(storage.NewMemoryStore(0), nil)
	return New(repo, nil), repo
}

func TestCatalog_Builtins(t *testing.T) {
	c, _ := newCatalog(t)

	all, err := c.All()
	require.NoError(t, err)
	require.Len(t, all, 8)

	for i, w := range all {
		assert.NotEmpty(t, w.Exercises, w.Name)
		assert.False(t, w.Custom)
		assert.True(t, models.IsValidDifficulty(w.Difficulty), w.Name)
		assert.Equal(t, string(rune('1'+i)), w.ID)
	}

	w, err := c.Find("3")
	require.NoError(t, err)
	assert.Equal(t, "Leg Day - Strength", w.Name)
	assert.Equal(t, 180, w.Exercises[0].RestSeconds())
	assert.Equal(t, 23, w.TotalSets())
}

func TestCatalog_BuiltinsAreCopies(t *testing.T) {
	c, _ := newCatalog(t)

	w, err := c.Find("1")
	require.NoError(t, err)
	w.Exercises[0].Name = "Changed"

	again, err := c.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "Barbell Bench Press", again.Exercises[0].Name)
}

func TestCatalog_Find_NotFound(t *testing.T) {
	c, _ := newCatalog(t)
	_, err := c.Find("42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_FilterByMuscle(t *testing.T) {
	c, _ := newCatalog(t)

	tests := []struct {
		muscle string
		want   []string
	}{
		{muscle: "chest", want: []string{"1", "8"}},
		{muscle: "LEGS", want: []string{"3"}},
		{muscle: "all", want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{muscle: "", want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{muscle: "neck", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.muscle, func(t *testing.T) {
			got, err := c.FilterByMuscle(tt.muscle)
			require.NoError(t, err)

			var ids []string
			for _, w := range got {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalog_ImportTOML(t *testing.T) {
	c, repo := newCatalog(t)

	imported, err := c.ImportTOML([]byte(twoWorkouts))
	require.NoError(t, err)
	require.Len(t, imported, 2)

	pull := imported[0]
	assert.NotEmpty(t, pull.ID)
	assert.True(t, pull.Custom)
	assert.Equal(t, "back", pull.Muscle)
	assert.Equal(t, models.DifficultyBeginner, pull.Difficulty)
	assert.Equal(t, "60 min", pull.Duration)
	assert.Equal(t, 60, pull.Exercises[1].RestSeconds())
	assert.Equal(t, "Flat back", pull.Exercises[1].Tips)
	assert.Equal(t, "20 min", imported[1].Duration)

	stored, err := repo.LoadCustomWorkouts()
	require.NoError(t, err)
	assert.Equal(t, imported, stored)

	back, err := c.FilterByMuscle("back")
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "Garage Pull", back[1].Name)

	found, err := c.Find(pull.ID)
	require.NoError(t, err)
	assert.Equal(t, pull, found)
}

func TestCatalog_ImportTOML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed", doc: `[[workout]] name = `},
		{name: "empty", doc: `title = "nothing here"`},
		{name: "no name", doc: "[[workout]]\nmuscle = \"back\"\ndifficulty = \"beginner\"\n[[workout.exercise]]\nname = \"Rows\"\nsets = 3\n"},
		{name: "bad difficulty", doc: "[[workout]]\nname = \"X\"\nmuscle = \"back\"\ndifficulty = \"insane\"\n[[workout.exercise]]\nname = \"Rows\"\nsets = 3\n"},
		{name: "no exercises", doc: "[[workout]]\nname = \"X\"\nmuscle = \"back\"\ndifficulty = \"beginner\"\n"},
		{name: "zero sets", doc: "[[workout]]\nname = \"X\"\nmuscle = \"back\"\ndifficulty = \"beginner\"\n[[workout.exercise]]\nname = \"Rows\"\nsets = 0\n"},
		{name: "no muscle", doc: "[[workout]]\nname = \"X\"\ndifficulty = \"beginner\"\n[[workout.exercise]]\nname = \"Rows\"\nsets = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo := newCatalog(t)
			_, err := c.ImportTOML([]byte(tt.doc))
			assert.Error(t, err)

			stored, err := repo.LoadCustomWorkouts()
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestCatalog_Delete(t *testing.T) {
	c, _ := newCatalog(t)
	imported, err := c.ImportTOML([]byte(twoWorkouts))
	require.NoError(t, err)

	assert.ErrorIs(t, c.Delete("1"), ErrReadOnly)
	assert.ErrorIs(t, c.Delete("missing"), ErrNotFound)

	require.NoError(t, c.Delete(imported[0].ID))
	all, err := c.All()
	require.NoError(t, err)
	assert.Len(t, all, 9)

	_, err = c.Find(imported[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Find(imported[1].ID)
	assert.NoError(t, err)
}

type brokenStore struct{}

func (brokenStore) LoadCustomWorkouts() ([]models.Workout, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) SaveCustomWorkouts([]models.Workout) error {
	return errors.New("disk on fire")
}

func TestCatalog_StoreErrors(t *testing.T) {
	c := New(brokenStore{}, nil)

	_, err := c.All()
	assert.ErrorContains(t, err, "disk on fire")
	_, err = c.ImportTOML([]byte(twoWorkouts))
	assert.ErrorContains(t, err, "disk on fire")
	assert.ErrorContains(t, c.Delete("x"), "disk on fire")
	// Built-ins are refused before the store is touched.
	assert.ErrorIs(t, c.Delete("2"), ErrReadOnly)
}
