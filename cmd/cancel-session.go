package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-workout",
	Short: "Cancel the current workout without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		e, err := a.activeEngine()
		if err != nil {
			return fmt.Errorf("No active session to cancel")
		}

		// Only a paused workout can be thrown away.
		if e.Phase().Running() {
			if err := e.Pause(); err != nil {
				return fmt.Errorf("Failed to cancel session: %w", err)
			}
		}
		if err := e.Abandon(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
