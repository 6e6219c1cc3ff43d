package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all the stored data to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "forja_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", outputFile, err)
		}
		defer f.Close()

		n, err := storage.Export(a.repo.KV(), f)
		if err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Exported %d keys to %s\n", n, outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Rebuild the whole database from the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Failed to open dump: %w", err)
		}
		defer f.Close()

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := storage.Import(a.repo.KV(), f)
		if err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Printf("✅ Database rebuilt from TOML dump (%d keys).\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
