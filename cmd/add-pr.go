package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/progress"
	"github.com/spf13/cobra"
)

var (
	prWeight float32
	prReps   int
)

var addPRCmd = &cobra.Command{
	Use:   "add-pr [exercise-name]",
	Short: "Record a lift, flagging it when it beats your best estimated 1RM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		rec, isPR, err := a.tracker().AddRecord(args[0], prWeight, prReps, time.Now())
		if err != nil {
			return fmt.Errorf("Failed to add record: %w", err)
		}

		if isPR {
			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("★ " + progress.NewPRMessage(args[0], rec)))
			return nil
		}
		fmt.Printf("✅ Recorded %gkg × %d for %s (1RM %.1fkg)\n", rec.Weight, rec.Reps, args[0], rec.OneRepMax)
		return nil
	},
}

func init() {
	addPRCmd.Flags().Float32VarP(&prWeight, "weight", "w", 0, "Weight lifted in kg")
	addPRCmd.Flags().IntVarP(&prReps, "reps", "r", 0, "Number of reps performed")
	addPRCmd.MarkFlagRequired("weight")
	addPRCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(addPRCmd)
}
