package session

import (
	"time"

	"github.com/misterclayt0n/forja/internal/models"
)

type EventType string

const (
	EventStarted         EventType = "started"
	EventSetCompleted    EventType = "set_completed"
	EventRestStarted     EventType = "rest_started"
	EventRestTick        EventType = "rest_tick"
	EventRestWarning     EventType = "rest_warning"
	EventRestComplete    EventType = "rest_complete"
	EventExerciseChanged EventType = "exercise_changed"
	EventPaused          EventType = "paused"
	EventResumed         EventType = "resumed"
	EventTick            EventType = "tick"
	EventCompleted       EventType = "completed"
	EventAbandoned       EventType = "abandoned"
)

// Event is what the presentation layer gets after every state change.
type Event struct {
	Type          EventType
	Message       string // Human readable, empty for silent events.
	Phase         models.Phase
	State         models.SessionState
	Progress      float64
	Elapsed       time.Duration
	RestRemaining int
	Record        *models.WorkoutHistoryRecord // Only on EventCompleted.
}

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Notifier receives the human readable messages, fire-and-forget.
type Notifier interface {
	Notify(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
