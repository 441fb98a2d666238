// Package cli implements the fs-automation commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fs-automation",
	Short: "Batch-update Freshservice tickets from a CSV list",
	Long: `fs-automation reads ticket IDs from a CSV file and triggers the MC
workflow on each one through the Freshservice REST API, pacing requests
and recording failed IDs for a later re-run.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
