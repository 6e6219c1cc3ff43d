package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [id]",
	Short: "Delete a custom workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.catalog().Delete(args[0]); err != nil {
			return fmt.Errorf("Failed to delete workout: %w", err)
		}

		fmt.Printf("✅ Workout '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
