package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound = errors.New("workout not found")
	ErrReadOnly = errors.New("built-in workouts cannot be deleted")
)

const defaultDuration = "60 min"

// Store is where custom workouts live.
type Store interface {
	LoadCustomWorkouts() ([]models.Workout, error)
	SaveCustomWorkouts(workouts []models.Workout) error
}

// Catalog is the built-in programs plus whatever the user imported.
type Catalog struct {
	store Store
	log   *logrus.Entry
}

func New(store Store, log *logrus.Entry) *Catalog {
	if log == nil {
		log = logrus.WithField("component", "catalog")
	}
	return &Catalog{store: store, log: log}
}

// All lists the built-in workouts first, then the custom ones in import order.
func (c *Catalog) All() ([]models.Workout, error) {
	custom, err := c.store.LoadCustomWorkouts()
	if err != nil {
		return nil, fmt.Errorf("Failed to load custom workouts: %w", err)
	}
	return append(builtin(), custom...), nil
}

func (c *Catalog) Find(id string) (models.Workout, error) {
	workouts, err := c.All()
	if err != nil {
		return models.Workout{}, err
	}
	for _, w := range workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Workout{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FilterByMuscle keeps the workouts targeting muscle. "all" (or an empty
// filter) keeps everything.
func (c *Catalog) FilterByMuscle(muscle string) ([]models.Workout, error) {
	workouts, err := c.All()
	if err != nil {
		return nil, err
	}

	muscle = strings.ToLower(strings.TrimSpace(muscle))
	if muscle == "" || muscle == models.MuscleAll {
		return workouts, nil
	}

	var filtered []models.Workout
	for _, w := range workouts {
		if strings.EqualFold(w.Muscle, muscle) {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// ImportTOML parses [[workout]] tables and stores them as custom workouts.
// Nothing is saved unless every workout in the file is valid.
func (c *Catalog) ImportTOML(data []byte) ([]models.Workout, error) {
	var doc models.WorkoutImport
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}
	if len(doc.Workouts) == 0 {
		return nil, errors.New("no [[workout]] tables found")
	}

	imported := make([]models.Workout, 0, len(doc.Workouts))
	for i, wt := range doc.Workouts {
		w, err := fromTOML(wt)
		if err != nil {
			return nil, fmt.Errorf("workout %d: %w", i+1, err)
		}
		imported = append(imported, w)
	}

	custom, err := c.store.LoadCustomWorkouts()
	if err != nil {
		return nil, fmt.Errorf("Failed to load custom workouts: %w", err)
	}
	if err := c.store.SaveCustomWorkouts(append(custom, imported...)); err != nil {
		return nil, fmt.Errorf("Failed to save custom workouts: %w", err)
	}

	c.log.WithField("count", len(imported)).Info("imported custom workouts")
	return imported, nil
}

// Delete removes a custom workout.
func (c *Catalog) Delete(id string) error {
	for _, w := range builtin() {
		if w.ID == id {
			return ErrReadOnly
		}
	}

	custom, err := c.store.LoadCustomWorkouts()
	if err != nil {
		return fmt.Errorf("Failed to load custom workouts: %w", err)
	}

	kept := custom[:0]
	for _, w := range custom {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(custom) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := c.store.SaveCustomWorkouts(kept); err != nil {
		return fmt.Errorf("Failed to save custom workouts: %w", err)
	}
	return nil
}

func fromTOML(wt models.WorkoutTOML) (models.Workout, error) {
	name := strings.TrimSpace(wt.Name)
	if name == "" {
		return models.Workout{}, errors.New("name is required")
	}

	muscle := strings.ToLower(strings.TrimSpace(wt.Muscle))
	if muscle == "" {
		return models.Workout{}, fmt.Errorf("%s: muscle is required", name)
	}

	difficulty := strings.ToLower(strings.TrimSpace(wt.Difficulty))
	if !models.IsValidDifficulty(difficulty) {
		return models.Workout{}, fmt.Errorf("%s: invalid difficulty %q", name, wt.Difficulty)
	}

	if len(wt.Exercises) == 0 {
		return models.Workout{}, fmt.Errorf("%s: add at least one exercise", name)
	}
	exercises := make([]models.Exercise, 0, len(wt.Exercises))
	for _, ex := range wt.Exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Name == "" {
			return models.Workout{}, fmt.Errorf("%s: exercise without a name", name)
		}
		if ex.Sets < 1 {
			return models.Workout{}, fmt.Errorf("%s: %s needs at least one set", name, ex.Name)
		}
		exercises = append(exercises, ex)
	}

	duration := strings.TrimSpace(wt.Duration)
	if duration == "" {
		duration = defaultDuration
	}

	return models.Workout{
		ID:         uuid.New().String(),
		Name:       name,
		Muscle:     muscle,
		Difficulty: difficulty,
		Duration:   duration,
		Exercises:  exercises,
		Custom:     true,
	}, nil
}
