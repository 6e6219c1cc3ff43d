package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/sirupsen/logrus"
)

// restWarnSeconds is when the countdown starts warning about the next set.
const restWarnSeconds = 3

// Store is where the engine persists the active session and the history.
type Store interface {
	SaveSession(state *models.SessionState) error
	LoadSession() (*models.SessionState, error)
	ClearSession() error
	AppendHistory(rec models.WorkoutHistoryRecord) error
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithLogger(l *logrus.Entry) Option {
	return func(e *Engine) { e.log = l }
}

// Engine plays back one workout session. It owns no timers: whoever drives it
// calls TimeTick and RestTick (see Runner). It is not safe for concurrent use,
// every call is expected to come from the same goroutine.
type Engine struct {
	store     Store
	clock     Clock
	notifier  Notifier
	log       *logrus.Entry
	observers []func(Event)

	state models.SessionState
	// Frozen once the session is over.
	finalElapsed time.Duration

	pending []Event
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		clock:    ClockFunc(time.Now),
		notifier: nopNotifier{},
		log:      logrus.WithField("component", "session"),
		state:    models.SessionState{Phase: models.PhaseNotStarted},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers fn for every event. Events are delivered after the
// operation that produced them has finished, so fn may call back into the
// engine.
func (e *Engine) Subscribe(fn func(Event)) {
	e.observers = append(e.observers, fn)
}

// Restore picks up the persisted session, if any. Missing, unreadable and
// corrupt sessions all mean there is nothing to resume.
func (e *Engine) Restore() error {
	st, err := e.store.LoadSession()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			e.log.WithError(err).Warn("could not restore session, starting clean")
		}
		return ErrNoActiveSession
	}

	e.state = st.Clone()
	e.finalElapsed = 0
	if e.state.Phase == models.PhaseResting {
		e.catchUpRest()
	}
	return nil
}

// catchUpRest counts down the rest that went by while nothing was driving
// the engine, ending it if it ran out.
func (e *Engine) catchUpRest() {
	if e.state.RestCheckpoint == nil {
		return
	}
	passed := int(e.clock.Now().Sub(*e.state.RestCheckpoint) / time.Second)
	if passed <= 0 {
		return
	}

	e.state.RestRemaining -= passed
	if e.state.RestRemaining <= 0 {
		e.cancelRest()
	}
	e.persist()
}

// Start begins a new session on workout, replacing whatever was active.
func (e *Engine) Start(workout models.Workout) (*models.SessionState, error) {
	if len(workout.Exercises) == 0 {
		return nil, fmt.Errorf("%w: %q has no exercises", ErrInvalidWorkout, workout.Name)
	}

	err := e.do(func() error {
		if !e.state.Phase.Terminal() && e.state.Phase != models.PhaseNotStarted {
			e.log.WithField("session", e.state.SessionID).Info("superseding active session")
		}

		workout.Exercises = append([]models.Exercise(nil), workout.Exercises...)
		e.state = models.SessionState{
			SessionID:            uuid.New().String(),
			WorkoutID:            workout.ID,
			Workout:              workout,
			SetLog:               []models.SetLogEntry{},
			CurrentExerciseIndex: 0,
			CurrentSet:           1,
			CompletedExercises:   []int{},
			StartTime:            e.clock.Now(),
			Phase:                models.PhaseActive,
		}
		e.finalElapsed = 0

		e.persist()
		e.emit(EventStarted, fmt.Sprintf("Started %s", workout.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	st := e.state.Clone()
	return &st, nil
}

// LogSet records the current set as done and moves on.
func (e *Engine) LogSet() (models.SetLogEntry, error) {
	var entry models.SetLogEntry
	err := e.do(func() error {
		if e.state.Phase != models.PhaseActive {
			return e.illegal("log a set")
		}

		entry = models.SetLogEntry{
			ExerciseIndex: e.state.CurrentExerciseIndex,
			Exercise:      e.current().Name,
			Set:           e.state.CurrentSet,
			Timestamp:     e.clock.Now(),
		}
		e.state.SetLog = append(e.state.SetLog, entry)
		e.emit(EventSetCompleted, fmt.Sprintf("Set %d completed!", entry.Set))

		return e.advanceSet()
	})
	return entry, err
}

// AdvanceSet moves to the next set, resting in between, or to the next
// exercise once the target sets are reached.
func (e *Engine) AdvanceSet() error {
	return e.do(func() error {
		if e.state.Phase != models.PhaseActive {
			return e.illegal("advance the set")
		}
		return e.advanceSet()
	})
}

func (e *Engine) advanceSet() error {
	ex := e.current()
	if e.state.CurrentSet < ex.TargetSets() {
		e.state.CurrentSet++
		e.startRest(ex.RestSeconds())
		e.persist()
		return nil
	}
	return e.advanceExercise()
}

func (e *Engine) AdvanceExercise() error {
	return e.do(func() error {
		if !e.state.Phase.Running() {
			return e.illegal("advance the exercise")
		}
		return e.advanceExercise()
	})
}

func (e *Engine) advanceExercise() error {
	e.cancelRest()

	if e.state.CurrentExerciseIndex >= len(e.state.Workout.Exercises)-1 {
		e.complete(true)
		return nil
	}

	e.state.CompletedExercises = append(e.state.CompletedExercises, e.state.CurrentExerciseIndex)
	e.state.CurrentExerciseIndex++
	e.state.CurrentSet = 1
	e.persist()
	e.emit(EventExerciseChanged, "Great job! Moving to next exercise")
	return nil
}

// PreviousExercise steps back one exercise. The revisited exercise (and
// anything after it) stops counting as completed.
func (e *Engine) PreviousExercise() error {
	return e.do(func() error {
		if !e.state.Phase.Running() {
			return e.illegal("go to the previous exercise")
		}
		if e.state.CurrentExerciseIndex == 0 {
			return nil
		}

		e.cancelRest()
		e.state.CurrentExerciseIndex--
		e.state.CurrentSet = 1

		kept := e.state.CompletedExercises[:0]
		for _, idx := range e.state.CompletedExercises {
			if idx < e.state.CurrentExerciseIndex {
				kept = append(kept, idx)
			}
		}
		e.state.CompletedExercises = kept

		e.persist()
		e.emit(EventExerciseChanged, "")
		return nil
	})
}

// RestTick counts the rest down by one second.
func (e *Engine) RestTick() error {
	return e.do(func() error {
		if e.state.Phase != models.PhaseResting {
			return e.illegal("tick the rest countdown")
		}

		e.state.RestRemaining--
		if e.state.RestRemaining > 0 {
			if e.state.RestRemaining <= restWarnSeconds {
				e.emit(EventRestWarning, "")
			}
			e.emit(EventRestTick, "")
			return nil
		}

		e.cancelRest()
		e.persist()
		e.emit(EventRestComplete, "Rest complete! Start next set")
		return nil
	})
}

func (e *Engine) SkipRest() error {
	return e.do(func() error {
		if e.state.Phase != models.PhaseResting {
			return e.illegal("skip the rest")
		}
		e.cancelRest()
		e.persist()
		e.emit(EventRestComplete, "Rest skipped, start next set")
		return nil
	})
}

// TimeTick reports the elapsed time. Nothing is persisted.
func (e *Engine) TimeTick() error {
	return e.do(func() error {
		if !e.state.Phase.Running() {
			return e.illegal("tick the session timer")
		}
		e.emit(EventTick, "")
		return nil
	})
}

func (e *Engine) Pause() error {
	return e.do(func() error {
		if !e.state.Phase.Running() {
			return e.illegal("pause")
		}

		e.cancelRest()
		now := e.clock.Now()
		e.state.PausedAt = &now
		e.state.Phase = models.PhasePaused
		e.persist()
		e.emit(EventPaused, "Workout paused. You can resume later.")
		return nil
	})
}

// Resume goes back to active. Rest countdowns do not survive a pause, and
// the paused interval does not count as workout time.
func (e *Engine) Resume() error {
	return e.do(func() error {
		if e.state.Phase != models.PhasePaused {
			return e.illegal("resume")
		}

		if e.state.PausedAt != nil {
			if paused := e.clock.Now().Sub(*e.state.PausedAt); paused > 0 {
				e.state.StartTime = e.state.StartTime.Add(paused)
			}
		}
		e.state.PausedAt = nil
		e.state.Phase = models.PhaseActive
		e.persist()
		e.emit(EventResumed, "Workout resumed")
		return nil
	})
}

// Abandon throws a paused session away without writing history.
func (e *Engine) Abandon() error {
	return e.do(func() error {
		if e.state.Phase != models.PhasePaused {
			return e.illegal("abandon")
		}

		e.finalElapsed = e.elapsed()
		e.state.Phase = models.PhaseAbandoned
		if err := e.store.ClearSession(); err != nil {
			e.log.WithError(err).Error("failed to clear abandoned session")
		}
		e.emit(EventAbandoned, "Workout abandoned")
		return nil
	})
}

// AbandonAndSave ends the session early but still records it in the history.
func (e *Engine) AbandonAndSave() (models.WorkoutHistoryRecord, error) {
	var rec models.WorkoutHistoryRecord
	err := e.do(func() error {
		if !e.state.Phase.Running() && e.state.Phase != models.PhasePaused {
			return e.illegal("end the workout")
		}
		rec = e.complete(false)
		return nil
	})
	return rec, err
}

func (e *Engine) complete(finished bool) models.WorkoutHistoryRecord {
	e.cancelRest()

	now := e.clock.Now()
	e.finalElapsed = e.elapsed()
	minutes := int(e.finalElapsed / time.Minute)

	attempted := len(e.state.CompletedExercises)
	if finished || e.loggedOnCurrent() > 0 {
		attempted++
	}

	rec := models.WorkoutHistoryRecord{
		ID:             e.state.SessionID,
		Workout:        e.state.Workout.Name,
		Muscle:         e.state.Workout.Muscle,
		Date:           now,
		Duration:       minutes,
		Completed:      finished,
		Exercises:      attempted,
		TotalExercises: len(e.state.Workout.Exercises),
		TotalSets:      len(e.state.SetLog),
	}

	e.state.Phase = models.PhaseCompleted
	if err := e.store.AppendHistory(rec); err != nil {
		e.log.WithError(err).Error("failed to save workout history")
	}
	if err := e.store.ClearSession(); err != nil {
		e.log.WithError(err).Error("failed to clear finished session")
	}

	e.emit(EventCompleted, fmt.Sprintf("Workout complete! %s in %d minutes", rec.Workout, minutes))
	e.pending[len(e.pending)-1].Record = &rec
	return rec
}

// Flush persists the current state. Runners call it when they stop in the
// middle of a rest countdown, which RestTick does not persist on its own.
func (e *Engine) Flush() {
	if e.state.Phase == models.PhaseNotStarted || e.state.Phase.Terminal() {
		return
	}
	e.persist()
}

// ProgressFraction is how much of the workout is done, in [0, 1]. Sets done on
// the current exercise count proportionally. Only a completed session is at 1.
func (e *Engine) ProgressFraction() float64 {
	switch e.state.Phase {
	case models.PhaseNotStarted, models.PhaseAbandoned:
		return 0
	case models.PhaseCompleted:
		return 1
	}

	total := len(e.state.Workout.Exercises)
	if total == 0 {
		return 0
	}

	done := float64(len(e.state.CompletedExercises)) +
		float64(e.state.CurrentSet-1)/float64(e.current().TargetSets())
	f := done / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (e *Engine) State() models.SessionState {
	return e.state.Clone()
}

func (e *Engine) Phase() models.Phase {
	return e.state.Phase
}

// CurrentExercise is the exercise being played, false when there is none.
func (e *Engine) CurrentExercise() (models.Exercise, bool) {
	if e.state.Phase == models.PhaseNotStarted || len(e.state.Workout.Exercises) == 0 {
		return models.Exercise{}, false
	}
	return e.current(), true
}

// TotalSets is how many sets the whole workout asks for.
func (e *Engine) TotalSets() int {
	return e.state.Workout.TotalSets()
}

func (e *Engine) RestRemaining() int {
	return e.state.RestRemaining
}

// Elapsed is the workout time so far, paused intervals excluded.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed()
}

func (e *Engine) elapsed() time.Duration {
	switch {
	case e.state.Phase == models.PhaseNotStarted:
		return 0
	case e.state.Phase.Terminal():
		return e.finalElapsed
	case e.state.PausedAt != nil:
		return nonNegative(e.state.PausedAt.Sub(e.state.StartTime))
	default:
		return nonNegative(e.clock.Now().Sub(e.state.StartTime))
	}
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

func (e *Engine) current() models.Exercise {
	return e.state.Workout.Exercises[e.state.CurrentExerciseIndex]
}

func (e *Engine) loggedOnCurrent() int {
	n := 0
	for _, s := range e.state.SetLog {
		if s.ExerciseIndex == e.state.CurrentExerciseIndex {
			n++
		}
	}
	return n
}

func (e *Engine) startRest(seconds int) {
	if seconds <= 0 {
		e.cancelRest()
		return
	}
	e.state.Phase = models.PhaseResting
	e.state.RestRemaining = seconds
	e.emit(EventRestStarted, fmt.Sprintf("Rest %ds", seconds))
}

func (e *Engine) cancelRest() {
	e.state.RestRemaining = 0
	if e.state.Phase == models.PhaseResting {
		e.state.Phase = models.PhaseActive
	}
}

// persist writes the session. Failures are logged only: the in-memory state
// stays authoritative and the next successful write catches up.
func (e *Engine) persist() {
	if e.state.Phase == models.PhaseResting {
		now := e.clock.Now()
		e.state.RestCheckpoint = &now
	} else {
		e.state.RestCheckpoint = nil
	}

	st := e.state.Clone()
	if err := e.store.SaveSession(&st); err != nil {
		e.log.WithError(err).WithField("session", st.SessionID).Error("failed to persist session")
	}
}

func (e *Engine) illegal(op string) error {
	e.log.WithFields(logrus.Fields{
		"op":    op,
		"phase": e.state.Phase,
	}).Warn("illegal state transition ignored")
	return &TransitionError{Op: op, Phase: e.state.Phase}
}

func (e *Engine) emit(typ EventType, msg string) {
	e.pending = append(e.pending, Event{
		Type:          typ,
		Message:       msg,
		Phase:         e.state.Phase,
		State:         e.state.Clone(),
		Progress:      e.ProgressFraction(),
		Elapsed:       e.elapsed(),
		RestRemaining: e.state.RestRemaining,
	})
}

// do runs op and only then delivers the events it queued.
func (e *Engine) do(op func() error) error {
	err := op()

	events := e.pending
	e.pending = nil
	for _, ev := range events {
		if ev.Message != "" {
			e.notifier.Notify(ev.Message)
		}
		for _, fn := range e.observers {
			fn(ev)
		}
	}
	return err
}
