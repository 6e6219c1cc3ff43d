package session

import (
	"context"
	"time"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/sirupsen/logrus"
)

// Command is a user action applied to the engine from the runner's goroutine.
type Command func(e *Engine) error

// Runner is the scheduler behind the engine's timers: one ticker drives both
// the session clock and the rest countdown, and user commands are applied
// between ticks, so the engine only ever sees one goroutine.
type Runner struct {
	engine   *Engine
	interval time.Duration
	log      *logrus.Entry

	// StopWhen ends Run once it returns true. Defaults to terminal phases.
	StopWhen func(models.Phase) bool
	// OnError gets command errors. Illegal transitions are already logged.
	OnError func(error)
}

func NewRunner(e *Engine, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		engine:   e,
		interval: interval,
		log:      logrus.WithField("component", "runner"),
		StopWhen: models.Phase.Terminal,
	}
}

// Run blocks until StopWhen holds or ctx is done. A closed commands channel
// only stops input, the timers keep going. Whatever state the engine ends up
// in is persisted on the way out.
func (r *Runner) Run(ctx context.Context, commands <-chan Command) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer r.engine.Flush()

	for {
		if r.StopWhen != nil && r.StopWhen(r.engine.Phase()) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				// No more input, keep ticking until StopWhen or ctx.
				commands = nil
				continue
			}
			if err := cmd(r.engine); err != nil && r.OnError != nil {
				r.OnError(err)
			}
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Runner) tick() {
	phase := r.engine.Phase()
	if !phase.Running() {
		return
	}

	if err := r.engine.TimeTick(); err != nil {
		r.log.WithError(err).Debug("time tick skipped")
	}
	if phase == models.PhaseResting {
		if err := r.engine.RestTick(); err != nil {
			r.log.WithError(err).Debug("rest tick skipped")
		}
	}
}
