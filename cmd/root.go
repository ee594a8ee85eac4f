package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mlqsim",
	Short: "Discrete-event simulator for multilevel-queue CPU scheduling",
	Long: "mlqsim simulates a three-level CPU scheduler: two round-robin queues " +
		"with fixed quanta and one non-preemptive shortest-job-first queue, " +
		"computing per-process waiting, completion, response and turnaround times.",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
