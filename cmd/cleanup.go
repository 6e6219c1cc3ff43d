package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Drop history and personal records older than six months (best lifts are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.tracker().Cleanup(time.Now())
		if err != nil {
			return fmt.Errorf("Failed to clean up: %w", err)
		}

		fmt.Printf("✅ Removed %d workouts and %d records\n", res.HistoryRemoved, res.RecordsRemoved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
