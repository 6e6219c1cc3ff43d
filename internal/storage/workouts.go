package storage

import (
	"errors"

	"github.com/misterclayt0n/forja/internal/models"
)

func (r *Repo) LoadCustomWorkouts() ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.getJSON(KeyCustomWorkouts, &workouts)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupt) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *Repo) SaveCustomWorkouts(workouts []models.Workout) error {
	if workouts == nil {
		workouts = []models.Workout{}
	}
	return r.putJSON(KeyCustomWorkouts, workouts)
}
