// Package cmd implements the carwatch server commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "carwatch",
	Short: "Score used-car listings against their market cohort",
	Long:  "An API-first service that ingests used-vehicle listings, scores each one against a cohort of comparable cars, and serves listings, score history and market statistics over HTTP.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
