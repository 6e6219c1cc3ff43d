package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-workout",
	Short: "End the current workout early and save it to the history",
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

		rec, err := e.AbandonAndSave()
		if err != nil {
			return fmt.Errorf("Failed to end session: %w", err)
		}

		fmt.Println("✅ Session saved successfully")
		printRecord(rec)
		return nil
	},
}

// printRecord summarizes a finished (or cut short) workout.
func printRecord(rec models.WorkoutHistoryRecord) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	status := green("Completed")
	if !rec.Completed {
		status = yellow("Ended early")
	}
	fmt.Printf("\n%s: %s\n", rec.Workout, status)
	printMetric("Duration", utils.Pluralize(rec.Duration, "minute"))
	printMetric("Exercises", fmt.Sprintf("%d/%d", rec.Exercises, rec.TotalExercises))
	printMetric("Total sets", rec.TotalSets)
	fmt.Println()
}

// printProgress is the one line summary shown after every command.
func printProgress(e *session.Engine) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	st := e.State()
	line := fmt.Sprintf("%s %s", progressBar(e.ProgressFraction(), 20), yellow(e.Phase()))
	if ex, ok := e.CurrentExercise(); ok && !st.Phase.Terminal() {
		line += fmt.Sprintf("  %s set %d/%d", cyan(ex.Name), st.CurrentSet, ex.TargetSets())
	}
	if st.Phase == models.PhaseResting {
		line += fmt.Sprintf("  rest %ds", e.RestRemaining())
	}
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
