package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Count the current rest down in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		e, err := a.activeEngine()
		if err != nil {
			return err
		}
		if e.Phase() != models.PhaseResting {
			return fmt.Errorf("Not resting right now (%s)", e.Phase())
		}

		e.Subscribe(countdownPrinter())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		r := session.NewRunner(e, tickInterval())
		r.StopWhen = func(p models.Phase) bool { return p != models.PhaseResting }
		if err := r.Run(ctx, nil); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		fmt.Println()
		printProgress(e)
		return nil
	},
}

// countdownPrinter redraws the rest timer in place. Warned seconds ring the
// bell and turn red.
func countdownPrinter() func(session.Event) {
	red := color.New(color.FgRed, color.Bold).SprintfFunc()
	warned := false
	return func(ev session.Event) {
		switch ev.Type {
		case session.EventRestWarning:
			warned = true
			fmt.Print("\a")
		case session.EventRestStarted, session.EventRestTick:
			if ev.Type == session.EventRestStarted {
				warned = false
			}
			secs := fmt.Sprintf("%3ds", ev.RestRemaining)
			if warned {
				secs = red("%3ds", ev.RestRemaining)
			}
			fmt.Printf("\r  ⏱  %s ", secs)
		case session.EventRestComplete:
			warned = false
			fmt.Print("\r")
		}
	}
}

func tickInterval() time.Duration {
	return time.Duration(cfg.Session.TickMillis) * time.Millisecond
}

func init() {
	rootCmd.AddCommand(restCmd)
}
