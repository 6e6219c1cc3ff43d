package models

import (
	"slices"
	"time"
)

// Phase is the playback state of a workout session.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseActive     Phase = "active"
	PhaseResting    Phase = "resting"
	PhasePaused     Phase = "paused"
	PhaseCompleted  Phase = "completed"
	PhaseAbandoned  Phase = "abandoned"
)

func (p Phase) String() string {
	return string(p)
}

// Running reports whether the session clock is ticking.
func (p Phase) Running() bool {
	return p == PhaseActive || p == PhaseResting
}

// Terminal reports whether the session is over.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseAbandoned
}

type SetLogEntry struct {
	ExerciseIndex int       `json:"exercise_index"`
	Exercise      string    `json:"exercise"`
	Set           int       `json:"set"`
	Timestamp     time.Time `json:"timestamp"`
}

// SessionState is what gets persisted for the active session.
type SessionState struct {
	SessionID            string        `json:"session_id"`
	WorkoutID            string        `json:"workout_id"`
	Workout              Workout       `json:"workout"`
	SetLog               []SetLogEntry `json:"set_log"`
	CurrentExerciseIndex int           `json:"current_exercise_index"`
	CurrentSet           int           `json:"current_set"`
	CompletedExercises   []int         `json:"completed_exercises"`
	StartTime            time.Time     `json:"start_time"`
	PausedAt             *time.Time    `json:"paused_at,omitempty"`
	Phase                Phase         `json:"phase"`
	RestRemaining        int           `json:"rest_remaining"`
	// RestCheckpoint is when RestRemaining was last accurate, so a reload can
	// count down the rest that went by in between.
	RestCheckpoint *time.Time `json:"rest_checkpoint,omitempty"`
}

// Clone returns a deep copy, safe to hand out to observers.
func (s SessionState) Clone() SessionState {
	c := s
	c.Workout.Exercises = slices.Clone(s.Workout.Exercises)
	c.SetLog = slices.Clone(s.SetLog)
	c.CompletedExercises = slices.Clone(s.CompletedExercises)
	if s.PausedAt != nil {
		t := *s.PausedAt
		c.PausedAt = &t
	}
	if s.RestCheckpoint != nil {
		t := *s.RestCheckpoint
		c.RestCheckpoint = &t
	}
	return c
}

type WorkoutHistoryRecord struct {
	ID             string    `json:"id"`
	Workout        string    `json:"workout"`
	Muscle         string    `json:"muscle"`
	Date           time.Time `json:"date"`
	Duration       int       `json:"duration"` // Minutes.
	Completed      bool      `json:"completed"`
	Exercises      int       `json:"exercises"`
	TotalExercises int       `json:"totalExercises"`
	TotalSets      int       `json:"totalSets"`
}

type PersonalRecord struct {
	Weight    float32   `json:"weight"`
	Reps      int       `json:"reps"`
	Date      time.Time `json:"date"`
	OneRepMax float32   `json:"oneRepMax"`
}
