package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var workoutMuscle string

var importWorkoutsCmd = &cobra.Command{
	Use:   "import-workouts [file]",
	Short: "Import custom workouts from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		file, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		imported, err := a.catalog().ImportTOML(file)
		if err != nil {
			return fmt.Errorf("failed to import workouts: %w", err)
		}

		for _, w := range imported {
			fmt.Printf("  %s - %s\n", w.ID, w.Name)
		}
		fmt.Printf("✅ Imported %s\n", utils.Pluralize(len(imported), "workout"))
		return nil
	},
}

var listWorkoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List all workouts, built-in and custom",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		workouts, err := a.catalog().FilterByMuscle(workoutMuscle)
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for _, w := range workouts {
			custom := ""
			if w.Custom {
				custom = yellow(" (custom)")
			}
			fmt.Printf("%s - %s%s\n", w.ID, cyan(w.Name), custom)
			fmt.Printf("   %s · %s · %s · %s\n",
				utils.CapitalizeFirst(w.Muscle), w.Difficulty, w.Duration,
				utils.Pluralize(len(w.Exercises), "exercise"))
		}
		return nil
	},
}

func init() {
	listWorkoutsCmd.Flags().StringVarP(&workoutMuscle, "muscle", "m", "", "Only workouts for this muscle group")

	rootCmd.AddCommand(importWorkoutsCmd)
	rootCmd.AddCommand(listWorkoutsCmd)
}
