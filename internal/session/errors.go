package session

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
)

var (
	ErrInvalidWorkout         = errors.New("invalid workout")
	ErrIllegalStateTransition = errors.New("illegal state transition")
	ErrNoActiveSession        = errors.New("no active session")
)

// TransitionError is returned when an operation is invoked from a phase that
// does not allow it. Nothing has changed when it is returned.
type TransitionError struct {
	Op    string
	Phase models.Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.Phase)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}
