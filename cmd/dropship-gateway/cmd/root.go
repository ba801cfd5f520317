// Package cmd implements the CLI commands for the dropship gateway server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dropship-gateway",
	Short: "Resilient gateway to the CJ Dropshipping API",
	Long: "An API-first service that fronts the CJ Dropshipping partner API with " +
		"session management, tier-aware request pacing, classified retries, " +
		"variant drift detection, and order transformation.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
