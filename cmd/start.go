package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/remote"
	"github.com/spf13/cobra"
)

var forceStart bool

var startCmd = &cobra.Command{
	Use:   "start-workout [id]",
	Short: "Starts a new workout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.repo.SessionExists() && !forceStart {
			return fmt.Errorf("A session is already in progress, finish it or pass --force to replace it")
		}

		w, err := a.catalog().Find(args[0])
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		state, err := a.engine().Start(w)
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		fmt.Printf("✅ Started session %s\n", state.SessionID)
		printQuote(cmd.Context(), a.remote())
		return nil
	},
}

func printQuote(ctx context.Context, client *remote.Client) {
	if ctx == nil {
		ctx = context.Background()
	}
	q, _ := client.Quote(ctx)
	italic := color.New(color.Italic).SprintFunc()
	fmt.Printf("\n  %s\n  - %s\n\n", italic(fmt.Sprintf("%q", q.Content)), q.Author)
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().BoolVarP(&forceStart, "force", "f", false, "Replace the session in progress")
}
