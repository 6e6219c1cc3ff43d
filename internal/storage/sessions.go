package storage

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
)

func (r *Repo) SaveSession(state *models.SessionState) error {
	return r.putJSON(KeyActiveSession, state)
}

// LoadSession returns the persisted active session. Anything that decodes but
// could not have been written by the engine counts as corrupt too.
func (r *Repo) LoadSession() (*models.SessionState, error) {
	var state models.SessionState
	if err := r.getJSON(KeyActiveSession, &state); err != nil {
		return nil, err
	}

	if err := checkSession(&state); err != nil {
		r.discard(KeyActiveSession, err)
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &state, nil
}

func (r *Repo) ClearSession() error {
	return r.kv.Remove(KeyActiveSession)
}

func (r *Repo) SessionExists() bool {
	_, err := r.kv.Get(KeyActiveSession)
	return err == nil
}

func checkSession(s *models.SessionState) error {
	n := len(s.Workout.Exercises)
	switch {
	case n == 0:
		return errors.New("session workout has no exercises")
	case s.CurrentExerciseIndex < 0 || s.CurrentExerciseIndex >= n:
		return fmt.Errorf("exercise index %d out of range", s.CurrentExerciseIndex)
	case s.CurrentSet < 1 || s.CurrentSet > s.Workout.Exercises[s.CurrentExerciseIndex].TargetSets():
		return fmt.Errorf("set %d out of range", s.CurrentSet)
	case s.RestRemaining < 0:
		return errors.New("negative rest countdown")
	}

	switch s.Phase {
	case models.PhaseActive, models.PhaseResting, models.PhasePaused:
	default:
		return fmt.Errorf("unexpected phase %q", s.Phase)
	}

	if s.Phase == models.PhasePaused && s.PausedAt == nil {
		return errors.New("paused session without pause time")
	}
	return nil
}
