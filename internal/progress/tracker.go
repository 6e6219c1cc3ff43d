package progress

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// retentionMonths is how far back cleanup keeps history and records.
const retentionMonths = 6

const (
	maxWeight = 1000
	maxReps   = 100
)

type Store interface {
	LoadHistory() ([]models.WorkoutHistoryRecord, error)
	ReplaceHistory(history []models.WorkoutHistoryRecord) error
	LoadPersonalRecords() (map[string][]models.PersonalRecord, error)
	SavePersonalRecords(records map[string][]models.PersonalRecord) error
}

// Tracker keeps personal records and derives statistics from the workout
// history the session engine writes.
type Tracker struct {
	store Store
	log   *logrus.Entry
}

func NewTracker(store Store, log *logrus.Entry) *Tracker {
	if log == nil {
		log = logrus.WithField("component", "progress")
	}
	return &Tracker{store: store, log: log}
}

// AddRecord logs a lift and reports whether it beats the previous best
// estimated one-rep max.
func (t *Tracker) AddRecord(exercise string, weight float32, reps int, at time.Time) (models.PersonalRecord, bool, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return models.PersonalRecord{}, false, errors.New("exercise name is required")
	}
	if err := utils.ValidateNumber(float64(weight), 0.5, maxWeight); err != nil {
		return models.PersonalRecord{}, false, fmt.Errorf("invalid weight: %w", err)
	}
	if err := utils.ValidateNumber(float64(reps), 1, maxReps); err != nil {
		return models.PersonalRecord{}, false, fmt.Errorf("invalid reps: %w", err)
	}

	records, err := t.store.LoadPersonalRecords()
	if err != nil {
		return models.PersonalRecord{}, false, fmt.Errorf("Failed to load personal records: %w", err)
	}

	previous, hadPrevious := best(records[exercise])
	rec := models.PersonalRecord{
		Weight:    weight,
		Reps:      reps,
		Date:      at,
		OneRepMax: utils.CalculateEpley1RM(weight, reps),
	}
	records[exercise] = append(records[exercise], rec)

	if err := t.store.SavePersonalRecords(records); err != nil {
		return models.PersonalRecord{}, false, fmt.Errorf("Failed to save personal records: %w", err)
	}

	isPR := !hadPrevious || rec.OneRepMax > previous.OneRepMax
	if isPR {
		t.log.WithField("exercise", exercise).Infof("new PR, estimated 1RM %.0f", rec.OneRepMax)
	}
	return rec, isPR, nil
}

// NewPRMessage is the notification shown when AddRecord reports a new PR.
func NewPRMessage(exercise string, rec models.PersonalRecord) string {
	return fmt.Sprintf("New PR for %s! %gkg x %d reps", exercise, rec.Weight, rec.Reps)
}

// CurrentPR is the record with the highest estimated one-rep max.
func (t *Tracker) CurrentPR(exercise string) (models.PersonalRecord, bool, error) {
	records, err := t.store.LoadPersonalRecords()
	if err != nil {
		return models.PersonalRecord{}, false, fmt.Errorf("Failed to load personal records: %w", err)
	}
	rec, ok := best(records[strings.TrimSpace(exercise)])
	return rec, ok, nil
}

// Records returns every logged record, keyed by exercise.
func (t *Tracker) Records() (map[string][]models.PersonalRecord, error) {
	return t.store.LoadPersonalRecords()
}

// best returns the first record with the highest one-rep max.
func best(records []models.PersonalRecord) (models.PersonalRecord, bool) {
	idx := bestIndex(records)
	if idx < 0 {
		return models.PersonalRecord{}, false
	}
	return records[idx], true
}

func bestIndex(records []models.PersonalRecord) int {
	idx := -1
	for i, r := range records {
		if idx < 0 || r.OneRepMax > records[idx].OneRepMax {
			idx = i
		}
	}
	return idx
}

// History returns finished sessions newest first, optionally filtered by
// muscle. limit <= 0 means everything.
func (t *Tracker) History(muscle string, limit int) ([]models.WorkoutHistoryRecord, error) {
	history, err := t.store.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("Failed to load workout history: %w", err)
	}

	muscle = strings.ToLower(strings.TrimSpace(muscle))
	var out []models.WorkoutHistoryRecord
	for i := len(history) - 1; i >= 0; i-- {
		h := history[i]
		if muscle != "" && muscle != models.MuscleAll && !strings.EqualFold(h.Muscle, muscle) {
			continue
		}
		out = append(out, h)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type Stats struct {
	TotalWorkouts    int
	ThisWeek         int
	ThisMonth        int
	Streak           int // Consecutive days with a workout, ending today.
	FavoriteExercise string
	TotalVolume      float64 // Sum of weight x reps over every record, in kg.
	AverageDuration  int     // Minutes.
}

func (t *Tracker) Stats(now time.Time) (Stats, error) {
	history, err := t.store.LoadHistory()
	if err != nil {
		return Stats{}, fmt.Errorf("Failed to load workout history: %w", err)
	}
	records, err := t.store.LoadPersonalRecords()
	if err != nil {
		return Stats{}, fmt.Errorf("Failed to load personal records: %w", err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	s := Stats{TotalWorkouts: len(history)}
	totalDuration := 0
	for _, h := range history {
		if h.Date.After(weekAgo) {
			s.ThisWeek++
		}
		if h.Date.After(monthAgo) {
			s.ThisMonth++
		}
		totalDuration += h.Duration
	}
	if len(history) > 0 {
		s.AverageDuration = int(math.Round(float64(totalDuration) / float64(len(history))))
	}

	s.Streak = streak(history, now)
	s.FavoriteExercise = favorite(records)
	for _, recs := range records {
		for _, r := range recs {
			s.TotalVolume += float64(r.Weight) * float64(r.Reps)
		}
	}
	return s, nil
}

func streak(history []models.WorkoutHistoryRecord, now time.Time) int {
	dates := make([]time.Time, 0, len(history))
	for _, h := range history {
		dates = append(dates, h.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	today := utils.StartOfDay(now)
	n := 0
	for _, d := range dates {
		day := utils.StartOfDay(d.In(now.Location()))
		expected := today.AddDate(0, 0, -n)
		if day.Equal(expected) {
			n++
		} else if day.Before(expected) {
			break
		}
	}
	return n
}

// favorite is the exercise with the most logged records, ties by name.
func favorite(records map[string][]models.PersonalRecord) string {
	fav, most := "", 0
	for name, recs := range records {
		if len(recs) > most || (len(recs) == most && most > 0 && name < fav) {
			fav, most = name, len(recs)
		}
	}
	return fav
}

type CleanupResult struct {
	HistoryRemoved int
	RecordsRemoved int
}

// Cleanup drops history and records older than six months. Each exercise
// keeps its best record no matter how old. Both writes are always attempted.
func (t *Tracker) Cleanup(now time.Time) (CleanupResult, error) {
	cutoff := now.AddDate(0, -retentionMonths, 0)
	var res CleanupResult

	history, err := t.store.LoadHistory()
	if err != nil {
		return res, fmt.Errorf("Failed to load workout history: %w", err)
	}
	records, err := t.store.LoadPersonalRecords()
	if err != nil {
		return res, fmt.Errorf("Failed to load personal records: %w", err)
	}

	kept := make([]models.WorkoutHistoryRecord, 0, len(history))
	for _, h := range history {
		if h.Date.After(cutoff) {
			kept = append(kept, h)
		}
	}
	res.HistoryRemoved = len(history) - len(kept)

	for exercise, recs := range records {
		bestIdx := bestIndex(recs)
		keptRecs := make([]models.PersonalRecord, 0, len(recs))
		for i, r := range recs {
			if i == bestIdx || r.Date.After(cutoff) {
				keptRecs = append(keptRecs, r)
			}
		}
		res.RecordsRemoved += len(recs) - len(keptRecs)
		records[exercise] = keptRecs
	}

	var errs error
	if err := t.store.ReplaceHistory(kept); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("Failed to save workout history: %w", err))
	}
	if err := t.store.SavePersonalRecords(records); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("Failed to save personal records: %w", err))
	}

	t.log.WithFields(logrus.Fields{
		"history_removed": res.HistoryRemoved,
		"records_removed": res.RecordsRemoved,
	}).Info("retention cleanup done")
	return res, errs
}
