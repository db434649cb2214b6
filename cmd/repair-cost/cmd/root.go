// Package cmd implements the CLI commands for repair-cost.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "repair-cost",
	Short: "Estimate device repair costs from inspection defect codes",
	Long: "An API-first service that groups inspection defect codes by part family,\n" +
		"prices each family from a price table, and stores the row total\n" +
		"(a number, a must-replace marker, or not-available) for every inspection.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		estimateCommand(),
		pricesCommand(),
		recostCommand(),
		versionCommand(),
	)
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
