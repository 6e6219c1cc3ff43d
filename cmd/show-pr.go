package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var limitRecords int

var showPRCmd = &cobra.Command{
	Use:   "show-pr [exercise-name]",
	Short: "Display personal records, for every exercise or the history of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.tracker().Records()
		if err != nil {
			return err
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		if len(args) == 0 {
			if len(records) == 0 {
				fmt.Println(magenta("No personal records yet."))
				return nil
			}
			var names []string
			for name := range records {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Println(boldGreen("Personal Records:"))
			for _, name := range names {
				pr, ok, err := a.tracker().CurrentPR(name)
				if err != nil || !ok {
					continue
				}
				fmt.Printf("  %s: %gkg × %d (%s: %.1fkg) on %s\n",
					boldCyan(name), pr.Weight, pr.Reps,
					yellow("1RM"), pr.OneRepMax, pr.Date.Format("2006-01-02"))
			}
			return nil
		}

		name := args[0]
		var history []string
		for ex, recs := range records {
			if !strings.EqualFold(ex, name) {
				continue
			}
			name = ex
			// Newest first.
			for i := len(recs) - 1; i >= 0; i-- {
				r := recs[i]
				history = append(history, fmt.Sprintf("      %-16s | %-12g | %-5d | %.1f",
					r.Date.In(time.Local).Format("2006-01-02 15:04"), r.Weight, r.Reps, r.OneRepMax))
			}
		}

		fmt.Printf("%s %s:\n", boldGreen("Records for"), name)
		if len(history) == 0 {
			fmt.Println(magenta("  No records found."))
			return nil
		}
		if limitRecords > 0 && len(history) > limitRecords {
			history = history[:limitRecords]
		}

		fmt.Printf("      %-16s | %-12s | %-5s | %s\n", "Date", "Weight (kg)", "Reps", "1RM")
		fmt.Println("      " + strings.Repeat("─", 48))
		for _, line := range history {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showPRCmd)
	showPRCmd.Flags().IntVarP(&limitRecords, "limit", "l", 10, "Number of records to display")
}
