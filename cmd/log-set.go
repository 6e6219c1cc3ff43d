package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/spf13/cobra"
)

var logSetSkipRest bool

var logSetCmd = &cobra.Command{
	Use:   "log-set",
	Short: "Mark the current set of the current exercise as done",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		e, err := a.activeEngine()
		if err != nil {
			return err
		}

		var last *models.WorkoutHistoryRecord
		e.Subscribe(func(ev session.Event) {
			if ev.Type == session.EventCompleted {
				last = ev.Record
			}
		})

		if e.Phase() == models.PhaseResting && logSetSkipRest {
			if err := e.SkipRest(); err != nil {
				return fmt.Errorf("Failed to skip rest: %w", err)
			}
		}

		entry, err := e.LogSet()
		if err != nil {
			if errors.Is(err, session.ErrIllegalStateTransition) && e.Phase() == models.PhaseResting {
				return fmt.Errorf("Still resting (%ds left), run `forja rest` or pass --skip-rest", e.RestRemaining())
			}
			return fmt.Errorf("Failed to log set: %w", err)
		}

		fmt.Printf("✅ Logged set %d of '%s'\n", entry.Set, entry.Exercise)
		if last != nil {
			printRecord(*last)
			return nil
		}
		printProgress(e)
		return nil
	},
}

func init() {
	logSetCmd.Flags().BoolVarP(&logSetSkipRest, "skip-rest", "s", false, "Skip the rest countdown if one is running")
	rootCmd.AddCommand(logSetCmd)
}
