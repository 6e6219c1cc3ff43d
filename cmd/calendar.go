package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose session details.
var details bool

// calendarCmd prints the calendar grid. Training days are colored by the
// muscle group of their first workout, with a legend below the grid.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days colored by muscle group",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		// Compute the first and last day of the month.
		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		history, err := a.tracker().History("", 0)
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}

		// Group workouts by day and build the set of muscle groups trained.
		workoutsByDay := make(map[int][]models.WorkoutHistoryRecord)
		muscleSet := make(map[string]bool)
		for _, h := range history {
			local := h.Date.In(time.Local)
			if local.Year() != year || local.Month() != month {
				continue
			}
			workoutsByDay[local.Day()] = append(workoutsByDay[local.Day()], h)
			muscleSet[muscleOf(h)] = true
		}

		// Define a fixed palette of colors.
		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		// Sorted so the same muscle keeps its color between runs.
		var muscles []string
		for m := range muscleSet {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)
		muscleColors := make(map[string]func(a ...interface{}) string)
		for i, m := range muscles {
			muscleColors[m] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 28))
		fmt.Println("Su  Mo  Tu  We  Th  Fr  Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		// Print initial empty slots.
		for i := 0; i < weekday; i++ {
			fmt.Print("    ")
		}

		// Print day numbers.
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if list, ok := workoutsByDay[day]; ok {
				// History is newest first, the last entry is the first workout of the day.
				dayStr = muscleColors[muscleOf(list[len(list)-1])](dayStr + "*")
			} else {
				dayStr += " "
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		// Print a legend mapping colors to muscle groups.
		fmt.Println("Legend:")
		for _, m := range muscles {
			fmt.Printf("  %s: %s\n", muscleColors[m]("██"), m)
		}

		// If the details flag is set, print additional workout details.
		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				list := workoutsByDay[day]
				for i := len(list) - 1; i >= 0; i-- {
					h := list[i]
					fmt.Printf("  %s (%s) at %s, %d min\n",
						h.Workout, muscleOf(h), h.Date.In(time.Local).Format("15:04"), h.Duration)
				}
			}
		}

		return nil
	},
}

func muscleOf(h models.WorkoutHistoryRecord) string {
	if strings.TrimSpace(h.Muscle) == "" {
		return "other"
	}
	return strings.ToLower(h.Muscle)
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}
