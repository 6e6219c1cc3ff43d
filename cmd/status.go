package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workout stats: totals, streaks, favorite exercise and workouts per muscle (current week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		now := time.Now()
		tracker := a.tracker()
		stats, err := tracker.Stats(now)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		history, err := tracker.History("", 0)
		if err != nil {
			return err
		}

		muscleThisWeek := make(map[string]int)
		currentYear, currentWeek := now.ISOWeek()
		for _, h := range history {
			year, week := h.Date.In(time.Local).ISOWeek()
			if year == currentYear && week == currentWeek {
				muscleThisWeek[muscleOf(h)]++
			}
		}

		favorite := stats.FavoriteExercise
		if favorite == "" {
			favorite = "-"
		}

		printBoxedHeader("STATUS")

		printMetric("Total workouts", stats.TotalWorkouts)
		printMetric("Last 7 days", stats.ThisWeek)
		printMetric("Last 30 days", stats.ThisMonth)
		printMetric("Average duration", utils.Pluralize(stats.AverageDuration, "minute"))
		printMetric("Total volume (PRs)", fmt.Sprintf("%.1f kg", stats.TotalVolume))
		printMetric("Favorite exercise", favorite)
		printMetric("Day streak", utils.Pluralize(stats.Streak, "day"))
		printMetric("Week streak", utils.Pluralize(computeWeekStreak(history, now), "week"))
		if a.repo.SessionExists() {
			printMetric("In progress", "yes, see `forja show-session`")
		}
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Workouts per muscle (current week):")
		fmt.Println(header)
		var muscles []string
		for m := range muscleThisWeek {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)
		for _, m := range muscles {
			fmt.Printf("  • %s: %d\n", color.New(color.FgMagenta, color.Bold).Sprint(m), muscleThisWeek[m])
		}
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText2(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText2(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeWeekStreak counts consecutive ISO weeks, ending with the current
// one, that have at least one workout.
func computeWeekStreak(history []models.WorkoutHistoryRecord, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, h := range history {
		year, week := h.Date.In(time.Local).ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
