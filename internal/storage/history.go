package storage

import (
	"errors"

	"github.com/misterclayt0n/forja/internal/models"
)

// LoadHistory never fails on missing or corrupt data, both mean "no history".
func (r *Repo) LoadHistory() ([]models.WorkoutHistoryRecord, error) {
	var history []models.WorkoutHistoryRecord
	err := r.getJSON(KeyWorkoutHistory, &history)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupt) {
		return []models.WorkoutHistoryRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	return history, nil
}

// AppendHistory adds rec and evicts the oldest records past MaxHistory.
func (r *Repo) AppendHistory(rec models.WorkoutHistoryRecord) error {
	history, err := r.LoadHistory()
	if err != nil {
		return err
	}

	history = append(history, rec)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	return r.putJSON(KeyWorkoutHistory, history)
}

// ReplaceHistory overwrites the whole log. Only retention cleanup uses it.
func (r *Repo) ReplaceHistory(history []models.WorkoutHistoryRecord) error {
	if history == nil {
		history = []models.WorkoutHistoryRecord{}
	}
	return r.putJSON(KeyWorkoutHistory, history)
}
