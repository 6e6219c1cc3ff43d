package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/catalog"
	"github.com/misterclayt0n/forja/internal/config"
	"github.com/misterclayt0n/forja/internal/logging"
	"github.com/misterclayt0n/forja/internal/progress"
	"github.com/misterclayt0n/forja/internal/remote"
	"github.com/misterclayt0n/forja/internal/session"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	ephemeral bool
	logLevel  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "forja",
	Short:         "CLI workout player: guided sessions, rest timers, history and PRs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}

		logging.Setup(logging.Params{
			FileName:   c.Log.File,
			Level:      c.Log.Level,
			FormatJSON: c.Log.JSON,
		})
		cfg = c
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// app holds what a single command invocation needs.
type app struct {
	repo    *storage.Repo
	closeFn func() error
}

func openApp() (*app, error) {
	if ephemeral {
		kv := storage.NewMemoryStore(cfg.DB.QuotaBytes)
		return &app{
			repo:    storage.NewRepo(kv, logging.For("storage")),
			closeFn: func() error { return nil },
		}, nil
	}

	st, err := storage.NewStorage(cfg.DB.URL, cfg.DB.AuthToken, cfg.DB.QuotaBytes)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}
	return &app{
		repo:    storage.NewRepo(st, logging.For("storage")),
		closeFn: st.Close,
	}, nil
}

func (a *app) Close() {
	if err := a.closeFn(); err != nil {
		logging.For("cmd").WithError(err).Warn("failed to close storage")
	}
}

func (a *app) engine() *session.Engine {
	return session.NewEngine(a.repo,
		session.WithNotifier(session.NotifierFunc(notify)),
		session.WithLogger(logging.For("session")),
	)
}

// activeEngine is an engine with the persisted session already loaded.
func (a *app) activeEngine() (*session.Engine, error) {
	e := a.engine()
	if err := e.Restore(); err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return nil, fmt.Errorf("No active session")
		}
		return nil, err
	}
	return e, nil
}

func (a *app) catalog() *catalog.Catalog {
	return catalog.New(a.repo, logging.For("catalog"))
}

func (a *app) tracker() *progress.Tracker {
	return progress.NewTracker(a.repo, logging.For("progress"))
}

func (a *app) remote() *remote.Client {
	return remote.NewClient(remote.Params{
		ExerciseAPIURL: cfg.Remote.ExerciseAPIURL,
		ExerciseAPIKey: cfg.Remote.ExerciseAPIKey,
		QuoteAPIURL:    cfg.Remote.QuoteAPIURL,
		Timeout:        time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
		CacheMegabytes: cfg.Remote.CacheMegabytes,
		Store:          a.repo,
		Log:            logging.For("remote"),
	})
}

// notify prints the engine's messages as they happen.
func notify(msg string) {
	fmt.Println(color.New(color.FgGreen).Sprint("» " + msg))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/forja/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep everything in memory, nothing is saved")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}
