package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show current session status",
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

		printSession(e)
		return nil
	},
}

func printSession(e *session.Engine) {
	state := e.State()

	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Printf("%s\n", green(state.Workout.Name))
	fmt.Printf("\n%s %s\n", red("Status:"), state.Phase)
	fmt.Printf("%s %s\n", cyan("Muscle:"), utils.CapitalizeFirst(state.Workout.Muscle))
	fmt.Printf("%s %s\n", cyan("Started:"), utils.FormatLocal(state.StartTime))
	fmt.Printf("%s %s\n", yellow("Elapsed:"), utils.FormatClock(e.Elapsed()))
	if state.Phase == models.PhaseResting {
		fmt.Printf("%s %ds\n", yellow("Rest:"), e.RestRemaining())
	}
	fmt.Printf("%s %s\n\n", red("Progress:"), progressBar(e.ProgressFraction(), 30))

	tableIndent := "   "
	idxColWidth := 4
	nameColWidth := 28
	targetColWidth := 16
	restColWidth := 8
	statusColWidth := 14

	widths := []int{idxColWidth, nameColWidth, targetColWidth, restColWidth, statusColWidth}
	fmt.Println(tableIndent + tableBorder("┌", "┬", "┐", widths))
	fmt.Printf(tableIndent+"│%-*s│%-*s│%-*s│%-*s│%-*s│\n",
		idxColWidth, "#",
		nameColWidth, "Exercise",
		targetColWidth, "Target",
		restColWidth, "Rest",
		statusColWidth, "Status",
	)
	fmt.Println(tableIndent + tableBorder("├", "┼", "┤", widths))

	for i, ex := range state.Workout.Exercises {
		var status string
		switch {
		case slices.Contains(state.CompletedExercises, i):
			status = "Done"
		case i == state.CurrentExerciseIndex && !state.Phase.Terminal():
			status = fmt.Sprintf("Set %d/%d", state.CurrentSet, ex.TargetSets())
		default:
			status = "Pending"
		}

		rest := "-"
		if secs := ex.RestSeconds(); secs > 0 {
			rest = fmt.Sprintf("%ds", secs)
		}

		fmt.Printf(tableIndent+"│%-*d│%-*s│%-*s│%-*s│%-*s│\n",
			idxColWidth, i+1,
			nameColWidth, truncate(ex.Name, nameColWidth),
			targetColWidth, truncate(fmt.Sprintf("%d × %s", ex.TargetSets(), ex.Reps), targetColWidth),
			restColWidth, rest,
			statusColWidth, status,
		)
	}
	fmt.Println(tableIndent + tableBorder("└", "┴", "┘", widths))

	if ex, ok := e.CurrentExercise(); ok && ex.Tips != "" {
		fmt.Printf("\n%s %s\n", cyan("Tip:"), ex.Tips)
	}
	fmt.Println()
}

func tableBorder(left, mid, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return left + strings.Join(parts, mid) + right
}

// truncate cuts s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(filled, width))
	return fmt.Sprintf("[%s%s] %3.0f%%",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), fraction*100)
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
