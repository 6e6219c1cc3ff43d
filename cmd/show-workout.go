package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var showWorkoutCmd = &cobra.Command{
	Use:   "show-workout [id]",
	Short: "Display every exercise of a workout with its sets, reps and rest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		w, err := a.catalog().Find(args[0])
		if err != nil {
			return fmt.Errorf("failed to load workout: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(w.Name)))
		fmt.Printf("%s: %s\n", cyan("Muscle"), utils.CapitalizeFirst(w.Muscle))
		fmt.Printf("%s: %s\n", cyan("Difficulty"), w.Difficulty)
		fmt.Printf("%s: %s (%s)\n", cyan("Duration"), w.Duration, utils.Pluralize(w.TotalSets(), "set"))
		fmt.Println(strings.Repeat("=", 60))

		for i, ex := range w.Exercises {
			fmt.Printf("%d. %s\n", i+1, ex.Name)
			fmt.Printf("   %s: %d × %s\n", yellow("Target"), ex.TargetSets(), ex.Reps)
			fmt.Printf("   %s: %s\n", yellow("Rest"), restLabel(ex))
			if ex.Tips != "" {
				fmt.Printf("   %s: %s\n", cyan("Tips"), ex.Tips)
			}
		}
		fmt.Println()
		return nil
	},
}

// restLabel shows the rest as written next to what the timer will count.
func restLabel(ex models.Exercise) string {
	secs := ex.RestSeconds()
	if secs == 0 {
		return "none"
	}
	if ex.Rest == fmt.Sprintf("%ds", secs) {
		return ex.Rest
	}
	return fmt.Sprintf("%s (%ds)", ex.Rest, secs)
}

func init() {
	rootCmd.AddCommand(showWorkoutCmd)
}
