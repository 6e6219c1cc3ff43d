package storage

import (
	"errors"

	"github.com/misterclayt0n/forja/internal/models"
)

// LoadPersonalRecords returns every logged record keyed by exercise name.
func (r *Repo) LoadPersonalRecords() (map[string][]models.PersonalRecord, error) {
	records := make(map[string][]models.PersonalRecord)
	err := r.getJSON(KeyPersonalRecord, &records)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupt) {
		return make(map[string][]models.PersonalRecord), nil
	}
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = make(map[string][]models.PersonalRecord)
	}
	return records, nil
}

func (r *Repo) SavePersonalRecords(records map[string][]models.PersonalRecord) error {
	return r.putJSON(KeyPersonalRecord, records)
}
