// Package cmd implements the CLI commands for the dealradar server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dealradar",
	Short: "Deal intelligence pipeline for promotional deal feeds",
	Long: "An API-first service that ingests promotional messages and scrape feeds,\n" +
		"extracts structured deal candidates, verifies them against product pages,\n" +
		"scores them on price history and seller trust, and maintains a ranked,\n" +
		"deduplicated deal catalog.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
