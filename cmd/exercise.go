package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/catalog"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var (
	randomCount int
	online      bool
)

var listExercisesCmd = &cobra.Command{
	Use:   "exercises [muscle]",
	Short: "List exercises for a muscle group, or every muscle group",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		muscle := ""
		if len(args) == 1 {
			muscle = strings.ToLower(args[0])
		}
		db, err := exerciseDB(cmd.Context(), muscle)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		if muscle == "" {
			for _, m := range db.Muscles() {
				fmt.Printf("%s (%d)\n", cyan(utils.CapitalizeFirst(m)), len(db.ByMuscle(m)))
			}
			return nil
		}

		names := db.ByMuscle(muscle)
		if randomCount > 0 {
			names = db.Random(muscle, randomCount)
		}
		if len(names) == 0 {
			return fmt.Errorf("No exercises for muscle group %q", muscle)
		}

		fmt.Println(cyan(utils.CapitalizeFirst(muscle)))
		for _, n := range names {
			fmt.Printf("  • %s\n", n)
		}
		return nil
	},
}

var searchExerciseCmd = &cobra.Command{
	Use:   "search-exercise [query]",
	Short: "Search exercises by name across every muscle group",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := exerciseDB(cmd.Context(), "")
		if err != nil {
			return err
		}

		results := db.Search(strings.Join(args, " "))
		if len(results) == 0 {
			fmt.Println("No matching exercises.")
			return nil
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		for _, r := range results {
			fmt.Printf("%-32s %s\n", r.Name, yellow(r.Muscle))
		}
		return nil
	},
}

// exerciseDB is the built-in exercise list, topped up from the exercise API
// when --online is set.
func exerciseDB(ctx context.Context, muscle string) (*catalog.ExerciseDB, error) {
	db := catalog.NewExerciseDB()
	if !online {
		return db, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := openApp()
	if err != nil {
		return nil, err
	}
	defer a.Close()

	fetched, live := a.remote().Exercises(ctx, muscle)
	added := db.Merge(fetched)
	if !live {
		fmt.Println(color.New(color.FgYellow).Sprint("Exercise API unavailable, showing offline list"))
	} else if added > 0 {
		fmt.Printf("Fetched %s from the exercise API\n", utils.Pluralize(added, "new exercise"))
	}
	return db, nil
}

func init() {
	listExercisesCmd.Flags().IntVarP(&randomCount, "random", "r", 0, "Pick this many random exercises")
	listExercisesCmd.Flags().BoolVar(&online, "online", false, "Also fetch exercises from the exercise API")
	searchExerciseCmd.Flags().BoolVar(&online, "online", false, "Also fetch exercises from the exercise API")

	rootCmd.AddCommand(listExercisesCmd)
	rootCmd.AddCommand(searchExerciseCmd)
}
