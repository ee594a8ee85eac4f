package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var samplePath string

// sampleInput is the canonical five-process example: two queue-1 processes,
// two queue-2 processes, and one queue-3 process, all arriving at tick 0.
const sampleInput = `#etiqueta; burst time (BT); arrival time (AT); Queue (Q): Priority(5>1)
A;6;0;1;5
B;9;0;1;4
C;10;0;2;3
D;15;0;2;3
E;8;0;3;2
`

// sampleCmd writes an example process table to get started with.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write an example process table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.WriteFile(samplePath, []byte(sampleInput), 0o644); err != nil {
			logrus.Fatalf("Failed to write sample input: %v", err)
		}
		logrus.Infof("Sample input written to %s", samplePath)
	},
}

func init() {
	sampleCmd.Flags().StringVar(&samplePath, "output", "mlq001.txt", "Path of the sample process table")

	rootCmd.AddCommand(sampleCmd)
}
