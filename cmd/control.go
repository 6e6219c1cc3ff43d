package cmd

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/spf13/cobra"
)

// controlCommand builds the one-shot commands that apply a single engine
// operation to the persisted session.
func controlCommand(use, short, done string, op session.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
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

			if err := op(e); err != nil {
				return fmt.Errorf("Failed to %s: %w", use, err)
			}

			fmt.Printf("✅ %s\n", done)
			if last != nil {
				printRecord(*last)
				return nil
			}
			printProgress(e)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(
		controlCommand("skip-rest", "Skip the running rest countdown", "Rest skipped",
			(*session.Engine).SkipRest),
		controlCommand("next-exercise", "Move on to the next exercise", "Moved to the next exercise",
			(*session.Engine).AdvanceExercise),
		controlCommand("prev-exercise", "Go back to the previous exercise", "Back to the previous exercise",
			(*session.Engine).PreviousExercise),
		controlCommand("pause", "Pause the current workout", "Workout paused",
			(*session.Engine).Pause),
		controlCommand("resume", "Resume a paused workout", "Workout resumed",
			(*session.Engine).Resume),
	)
}
