package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/spf13/cobra"
)

var (
	filterMuscle string
	filterDay    string
	historyLimit int
)

// historyCmd shows finished workouts grouped by day, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display workout history, optionally filtered by muscle group and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		limit := historyLimit
		if filterDay != "" {
			limit = 0
		}
		history, err := a.tracker().History(filterMuscle, limit)
		if err != nil {
			return err
		}

		if filterDay != "" {
			var parsedDay time.Time
			parsedDay, err = time.Parse("2006-01-02", filterDay)
			if err != nil {
				parsedDay, err = time.Parse("02/01/06", filterDay)
			}
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}

			var filtered []models.WorkoutHistoryRecord
			for _, h := range history {
				if h.Date.In(time.Local).Format("2006-01-02") == parsedDay.Format("2006-01-02") {
					filtered = append(filtered, h)
				}
			}
			history = filtered
		}

		if len(history) == 0 {
			fmt.Println("No workouts yet.")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		// History is already newest first, so days come out in order.
		currentDay := ""
		for _, h := range history {
			local := h.Date.In(time.Local)
			if day := local.Format("2006-01-02"); day != currentDay {
				if currentDay != "" {
					fmt.Println()
				}
				currentDay = day
				fmt.Printf("Date: %s\n", local.Format("Mon, 02 Jan 2006"))
			}

			status := green("✓")
			if !h.Completed {
				status = yellow("~")
			}
			fmt.Printf("  %s %s | %s | Start: %s | %d min | %d/%d exercises | %d sets\n",
				status, h.Workout, h.Muscle,
				local.Format("15:04"),
				h.Duration, h.Exercises, h.TotalExercises, h.TotalSets,
			)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterMuscle, "muscle", "m", "", "Filter by muscle group (case insensitive)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "How many workouts to show, 0 for all")
}
