package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mlq-sim/mlq-sim/sim/workload"
)

var convertInputPath string

// convertCmd lifts a delimited process table into the YAML spec format.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a ';'-delimited process table to a YAML workload spec",
	Long:  "Read a ';'-delimited process table and emit the equivalent YAML workload spec on stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.ConvertProcessFile(convertInputPath)
		if err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
		writeSpecToStdout(spec)
	},
}

// writeSpecToStdout marshals a WorkloadSpec to YAML and writes it to stdout.
func writeSpecToStdout(spec *workload.WorkloadSpec) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		logrus.Fatalf("Failed to marshal spec: %v", err)
	}
	fmt.Print(string(data))
}

func init() {
	convertCmd.Flags().StringVar(&convertInputPath, "input", "", "Path to ';'-delimited process table")
	_ = convertCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(convertCmd)
}
