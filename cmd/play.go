package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [workout-id]",
	Short: "Play a workout interactively: sets, rest timers and progress in one screen",
	Long: `Play a workout interactively. Without an id the session in progress is resumed.

Keys (followed by enter):
  enter  log the current set, or skip the rest while resting
  n      next exercise
  b      previous exercise
  p      pause / resume
  e      end early and save
  x      abandon (pauses first)
  s      show the session
  q      quit, the session stays saved`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var e *session.Engine
		if len(args) == 1 {
			if a.repo.SessionExists() && !forceStart {
				return fmt.Errorf("A session is already in progress, run `forja play` to resume it or pass --force")
			}
			w, err := a.catalog().Find(args[0])
			if err != nil {
				return fmt.Errorf("Failed to start session: %w", err)
			}
			e = a.engine()
			if _, err := e.Start(w); err != nil {
				return fmt.Errorf("Failed to start session: %w", err)
			}
			printQuote(cmd.Context(), a.remote())
		} else {
			if e, err = a.activeEngine(); err != nil {
				return err
			}
		}

		var last *models.WorkoutHistoryRecord
		e.Subscribe(countdownPrinter())
		e.Subscribe(func(ev session.Event) {
			if ev.Type == session.EventCompleted {
				last = ev.Record
			}
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, quit := context.WithCancel(ctx)
		defer quit()

		printSession(e)

		r := session.NewRunner(e, tickInterval())
		r.OnError = func(err error) {
			fmt.Println(color.New(color.FgRed).Sprint(err))
		}
		err = r.Run(ctx, readKeys(ctx, os.Stdin, quit))
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		if last != nil {
			printRecord(*last)
			return nil
		}
		if e.Phase() == models.PhaseAbandoned {
			fmt.Println("✅ Session cancelled")
			return nil
		}
		fmt.Println("\nSession saved, run `forja play` to pick it up again.")
		return nil
	},
}

// readKeys turns input lines into engine commands until ctx is done or in
// runs dry.
func readKeys(ctx context.Context, in io.Reader, quit func()) <-chan session.Command {
	out := make(chan session.Command)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			cmd := keyCommand(strings.TrimSpace(strings.ToLower(sc.Text())), quit)
			if cmd == nil {
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func keyCommand(key string, quit func()) session.Command {
	switch key {
	case "":
		return func(e *session.Engine) error {
			if e.Phase() == models.PhaseResting {
				return e.SkipRest()
			}
			_, err := e.LogSet()
			if err == nil && !e.Phase().Terminal() {
				printProgress(e)
			}
			return err
		}
	case "n":
		return withProgress((*session.Engine).AdvanceExercise)
	case "b":
		return withProgress((*session.Engine).PreviousExercise)
	case "p":
		return func(e *session.Engine) error {
			if e.Phase() == models.PhasePaused {
				return e.Resume()
			}
			return e.Pause()
		}
	case "e":
		return func(e *session.Engine) error {
			_, err := e.AbandonAndSave()
			return err
		}
	case "x":
		return func(e *session.Engine) error {
			if e.Phase().Running() {
				if err := e.Pause(); err != nil {
					return err
				}
			}
			return e.Abandon()
		}
	case "s":
		return func(e *session.Engine) error {
			printSession(e)
			return nil
		}
	case "q":
		return func(e *session.Engine) error {
			quit()
			return nil
		}
	default:
		fmt.Printf("Unknown key %q, see `forja play --help`\n", key)
		return nil
	}
}

func withProgress(op session.Command) session.Command {
	return func(e *session.Engine) error {
		if err := op(e); err != nil {
			return err
		}
		if !e.Phase().Terminal() {
			printProgress(e)
		}
		return nil
	}
}

func init() {
	playCmd.Flags().BoolVarP(&forceStart, "force", "f", false, "Replace the session in progress")
	rootCmd.AddCommand(playCmd)
}
