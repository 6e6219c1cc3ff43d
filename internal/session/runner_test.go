package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runAsync(ctx context.Context, r *Runner, commands <-chan Command) <-chan error {
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, commands) }()
	return done
}

func waitErr(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
		return nil
	}
}

func logSet(e *Engine) error {
	_, err := e.LogSet()
	return err
}

func TestRunner_PlaysWorkoutToTheEnd(t *testing.T) {
	f := newFixture(t)
	w := squats()
	w.Exercises[0].Sets = 2
	w.Exercises[0].Rest = "3s"
	_, err := f.engine.Start(w)
	require.NoError(t, err)

	restDone := make(chan struct{}, 1)
	f.engine.Subscribe(func(ev Event) {
		if ev.Type == EventRestComplete {
			restDone <- struct{}{}
		}
	})

	commands := make(chan Command)
	done := runAsync(context.Background(), NewRunner(f.engine, time.Millisecond), commands)

	commands <- logSet
	select {
	case <-restDone:
	case <-time.After(5 * time.Second):
		t.Fatal("rest never finished")
	}
	commands <- logSet

	require.NoError(t, waitErr(t, done))
	assert.Equal(t, models.PhaseCompleted, f.engine.Phase())
	assert.Equal(t, 3, f.rec.count(EventRestTick)+f.rec.count(EventRestComplete))
	assert.GreaterOrEqual(t, f.rec.count(EventTick), 1)

	history, err := f.repo.LoadHistory()
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestRunner_CancelFlushesCountdown(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Start(squats())
	require.NoError(t, err)
	_, err = f.engine.LogSet()
	require.NoError(t, err)

	ticked := make(chan struct{}, 1)
	f.engine.Subscribe(func(ev Event) {
		if ev.Type == EventRestTick {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, NewRunner(f.engine, time.Millisecond), nil)

	select {
	case <-ticked:
	case <-time.After(5 * time.Second):
		t.Fatal("no rest tick")
	}
	cancel()

	assert.ErrorIs(t, waitErr(t, done), context.Canceled)

	remaining := f.engine.RestRemaining()
	assert.Less(t, remaining, 60)
	persisted, err := f.repo.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, remaining, persisted.RestRemaining)
}

func TestRunner_ReportsCommandErrors(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Start(squats())
	require.NoError(t, err)

	var errs []error
	r := NewRunner(f.engine, time.Hour)
	r.OnError = func(err error) { errs = append(errs, err) }
	r.StopWhen = func(p models.Phase) bool { return p == models.PhasePaused }

	commands := make(chan Command, 3)
	commands <- func(e *Engine) error { return e.Resume() }
	commands <- func(e *Engine) error { return e.SkipRest() }
	commands <- func(e *Engine) error { return e.Pause() }

	require.NoError(t, waitErr(t, runAsync(context.Background(), r, commands)))
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.True(t, errors.Is(err, ErrIllegalStateTransition))
	}
	assert.Equal(t, models.PhasePaused, f.engine.Phase())
}

func TestRunner_ClosedCommandsKeepTicking(t *testing.T) {
	f := newFixture(t)
	w := squats()
	w.Exercises[0].Rest = "2s"
	_, err := f.engine.Start(w)
	require.NoError(t, err)
	_, err = f.engine.LogSet()
	require.NoError(t, err)

	r := NewRunner(f.engine, time.Millisecond)
	r.StopWhen = func(p models.Phase) bool { return p == models.PhaseActive }

	commands := make(chan Command)
	close(commands)

	require.NoError(t, waitErr(t, runAsync(context.Background(), r, commands)))
	assert.Equal(t, 0, f.engine.RestRemaining())
	assert.Equal(t, 1, f.rec.count(EventRestComplete))
}

func TestNewRunner_DefaultInterval(t *testing.T) {
	r := NewRunner(NewEngine(nil), 0)
	assert.Equal(t, time.Second, r.interval)
	assert.True(t, r.StopWhen(models.PhaseAbandoned))
	assert.False(t, r.StopWhen(models.PhasePaused))
}
