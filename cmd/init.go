package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/misterclayt0n/forja/internal/config"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("Failed to locate config: %w", err)
			}
			path = p
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := config.Write(path, cfg); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Printf("✅ Config written to %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s\n", path)
		}

		// Opening the storage creates the schema.
		a, err := openApp()
		if err != nil {
			return err
		}
		a.Close()

		fmt.Printf("✅ Database initialized successfully at %s\n", cfg.DB.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
