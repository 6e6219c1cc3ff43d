package storage

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSession() *models.SessionState {
	start := time.Date(2025, 2, 7, 18, 0, 0, 0, time.UTC)
	return &models.SessionState{
		SessionID: "8b0b7d4e",
		WorkoutID: "3",
		Workout: models.Workout{
			ID:   "3",
			Name: "Leg Day - Strength",
			Exercises: []models.Exercise{
				{Name: "Back Squats", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Leg Press", Sets: 4, Reps: "12-15", Rest: "75s"},
			},
		},
		SetLog:               []models.SetLogEntry{{ExerciseIndex: 0, Exercise: "Back Squats", Set: 1, Timestamp: start}},
		CurrentExerciseIndex: 0,
		CurrentSet:           2,
		CompletedExercises:   []int{},
		StartTime:            start,
		Phase:                models.PhaseResting,
		RestRemaining:        180,
	}
}

func TestRepo_SessionRoundTrip(t *testing.T) {
	repo := NewRepo(NewMemoryStore(0), nil)
	assert.False(t, repo.SessionExists())

	_, err := repo.LoadSession()
	assert.ErrorIs(t, err, ErrNotFound)

	state := testSession()
	require.NoError(t, repo.SaveSession(state))
	assert.True(t, repo.SessionExists())

	got, err := repo.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, state, got)

	require.NoError(t, repo.ClearSession())
	assert.False(t, repo.SessionExists())
}

func TestRepo_LoadSession_Malformed(t *testing.T) {
	kv := NewMemoryStore(0)
	repo := NewRepo(kv, nil)
	require.NoError(t, kv.Set(KeyActiveSession, "{not json"))

	_, err := repo.LoadSession()
	assert.ErrorIs(t, err, ErrCorrupt)

	// Corrupt data is discarded.
	_, err = kv.Get(KeyActiveSession)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepo_LoadSession_Inconsistent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *models.SessionState)
	}{
		{name: "no exercises", mutate: func(s *models.SessionState) { s.Workout.Exercises = nil }},
		{name: "index out of range", mutate: func(s *models.SessionState) { s.CurrentExerciseIndex = 2 }},
		{name: "set past target", mutate: func(s *models.SessionState) { s.CurrentSet = 6 }},
		{name: "set zero", mutate: func(s *models.SessionState) { s.CurrentSet = 0 }},
		{name: "terminal phase", mutate: func(s *models.SessionState) { s.Phase = models.PhaseCompleted }},
		{name: "paused without time", mutate: func(s *models.SessionState) { s.Phase = models.PhasePaused }},
		{name: "negative rest", mutate: func(s *models.SessionState) { s.RestRemaining = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepo(NewMemoryStore(0), nil)
			state := testSession()
			tt.mutate(state)
			require.NoError(t, repo.SaveSession(state))

			_, err := repo.LoadSession()
			assert.ErrorIs(t, err, ErrCorrupt)
			assert.False(t, repo.SessionExists())
		})
	}
}

func TestRepo_History(t *testing.T) {
	repo := NewRepo(NewMemoryStore(0), nil)

	history, err := repo.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history)

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < MaxHistory+5; i++ {
		require.NoError(t, repo.AppendHistory(models.WorkoutHistoryRecord{
			ID:      fmt.Sprintf("s%d", i),
			Workout: gofakeit.Name(),
			Date:    base.AddDate(0, 0, i),
		}))
	}

	history, err = repo.LoadHistory()
	require.NoError(t, err)
	require.Len(t, history, MaxHistory)
	assert.Equal(t, "s5", history[0].ID)
	assert.Equal(t, fmt.Sprintf("s%d", MaxHistory+4), history[MaxHistory-1].ID)
}

func TestRepo_History_Corrupt(t *testing.T) {
	kv := NewMemoryStore(0)
	repo := NewRepo(kv, nil)
	require.NoError(t, kv.Set(KeyWorkoutHistory, "[{"))

	history, err := repo.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history)

	require.NoError(t, repo.AppendHistory(models.WorkoutHistoryRecord{ID: "fresh"}))
	history, err = repo.LoadHistory()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "fresh", history[0].ID)
}

func TestRepo_ReplaceHistory(t *testing.T) {
	repo := NewRepo(NewMemoryStore(0), nil)
	require.NoError(t, repo.AppendHistory(models.WorkoutHistoryRecord{ID: "a"}))
	require.NoError(t, repo.ReplaceHistory(nil))

	history, err := repo.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRepo_PersonalRecords(t *testing.T) {
	kv := NewMemoryStore(0)
	repo := NewRepo(kv, nil)

	records, err := repo.LoadPersonalRecords()
	require.NoError(t, err)
	assert.Empty(t, records)

	records["Deadlifts"] = append(records["Deadlifts"], models.PersonalRecord{Weight: 180, Reps: 3, OneRepMax: 198})
	require.NoError(t, repo.SavePersonalRecords(records))

	got, err := repo.LoadPersonalRecords()
	require.NoError(t, err)
	assert.Equal(t, records, got)

	require.NoError(t, kv.Set(KeyPersonalRecord, "null"))
	got, err = repo.LoadPersonalRecords()
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRepo_CustomWorkouts(t *testing.T) {
	repo := NewRepo(NewMemoryStore(0), nil)

	workouts, err := repo.LoadCustomWorkouts()
	require.NoError(t, err)
	assert.Empty(t, workouts)

	in := []models.Workout{{ID: "x", Name: "Garage Day", Custom: true, Exercises: []models.Exercise{{Name: "Goblet Squats", Sets: 3}}}}
	require.NoError(t, repo.SaveCustomWorkouts(in))

	workouts, err = repo.LoadCustomWorkouts()
	require.NoError(t, err)
	assert.Equal(t, in, workouts)
}

func TestRepo_CachedResponse(t *testing.T) {
	kv := NewMemoryStore(0)
	repo := NewRepo(kv, nil)

	_, _, err := repo.LoadCachedResponse("quote")
	assert.ErrorIs(t, err, ErrNotFound)

	fetched := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveCachedResponse("quote", []byte(`{"content":"Go."}`), fetched))

	data, at, err := repo.LoadCachedResponse("quote")
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"Go."}`, string(data))
	assert.True(t, at.Equal(fetched))

	raw, err := kv.Get("apiCache::quote")
	require.NoError(t, err)
	assert.Contains(t, raw, `"fetched_at":"2026-03-01T08:00:00Z"`)

	require.NoError(t, kv.Set("apiCache::quote", "{"))
	_, _, err = repo.LoadCachedResponse("quote")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestRepo_BackendFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := NewMockKV(ctrl)
	repo := NewRepo(kv, nil)

	boom := errors.New("disk on fire")

	kv.EXPECT().Get(KeyWorkoutHistory).Return("", boom)
	_, err := repo.LoadHistory()
	assert.ErrorIs(t, err, boom)

	kv.EXPECT().Get(KeyWorkoutHistory).Return("[]", nil)
	kv.EXPECT().Set(KeyWorkoutHistory, gomock.Any()).Return(ErrQuotaExceeded)
	err = repo.AppendHistory(models.WorkoutHistoryRecord{ID: "x"})
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	kv.EXPECT().Set(KeyActiveSession, gomock.Any()).Return(ErrQuotaExceeded)
	assert.ErrorIs(t, repo.SaveSession(testSession()), ErrQuotaExceeded)

	kv.EXPECT().Get(KeyActiveSession).Return("garbage", nil)
	kv.EXPECT().Remove(KeyActiveSession).Return(boom)
	_, err = repo.LoadSession()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestExportImport(t *testing.T) {
	src := NewMemoryStore(0)
	require.NoError(t, src.Set(KeyWorkoutHistory, `[{"id":"a","workout":"Arms Blast"}]`))
	require.NoError(t, src.Set(KeyActiveSession, `{"session_id":"s"}`))

	var buf bytes.Buffer
	n, err := Export(src, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := NewMemoryStore(0)
	require.NoError(t, dst.Set("stale", "x"))

	n, err = Import(dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	keys, err := dst.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyActiveSession, KeyWorkoutHistory}, keys)

	v, err := dst.Get(KeyWorkoutHistory)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a","workout":"Arms Blast"}]`, v)
}

func TestImport_Malformed(t *testing.T) {
	_, err := Import(NewMemoryStore(0), bytes.NewBufferString("entries = ["))
	assert.Error(t, err)
}
