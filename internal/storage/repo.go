package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	KeyActiveSession  = "activeWorkoutSession"
	KeyWorkoutHistory = "workoutHistory"
	KeyPersonalRecord = "personalRecords"
	KeyCustomWorkouts = "customWorkouts"
)

// MaxHistory is how many history records are kept, oldest evicted first.
const MaxHistory = 100

// Repo is typed, JSON encoded access on top of a KV.
type Repo struct {
	kv  KV
	log *logrus.Entry
}

func NewRepo(kv KV, log *logrus.Entry) *Repo {
	if log == nil {
		log = logrus.WithField("component", "storage")
	}
	return &Repo{kv: kv, log: log}
}

func (r *Repo) KV() KV {
	return r.kv
}

func (r *Repo) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// getJSON decodes key into v. Missing keys return ErrNotFound, malformed
// values are dropped from the store and reported as ErrCorrupt.
func (r *Repo) getJSON(key string, v any) error {
	raw, err := r.kv.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		r.discard(key, err)
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (r *Repo) discard(key string, cause error) {
	r.log.WithError(cause).Warnf("discarding corrupt %s", key)
	if err := r.kv.Remove(key); err != nil {
		r.log.WithError(err).Errorf("failed to remove corrupt %s", key)
	}
}
