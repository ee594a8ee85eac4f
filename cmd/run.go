package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlq-sim/mlq-sim/sim"
	"github.com/mlq-sim/mlq-sim/sim/report"
	"github.com/mlq-sim/mlq-sim/sim/trace"
	"github.com/mlq-sim/mlq-sim/sim/workload"
)

var (
	inputPath  string // Path to ';'-delimited process table
	specPath   string // Path to YAML workload spec (alternative to --input)
	outputPath string // Path of the report file; derived from the input when empty
	quantum1   int64  // Quantum for round-robin queue 1
	quantum2   int64  // Quantum for round-robin queue 2
	logLevel   string // Log verbosity level
	withTrace  bool   // Record execution slices and print a trace summary
)

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the multilevel-queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if (inputPath == "") == (specPath == "") {
			logrus.Fatalf("Exactly one of --input or --spec must be given")
		}

		cfg := sim.NewSchedulerConfig(quantum1, quantum2)

		var procs []*sim.Process
		sourceName := inputPath
		if specPath != "" {
			spec, err := workload.LoadSpec(specPath)
			if err != nil {
				logrus.Fatalf("Failed to load workload spec: %v", err)
			}
			// CLI flags win over spec quanta only when set explicitly.
			specCfg := spec.SchedulerConfig()
			if !cmd.Flags().Changed("quantum1") {
				cfg.Quantum1 = specCfg.Quantum1
			}
			if !cmd.Flags().Changed("quantum2") {
				cfg.Quantum2 = specCfg.Quantum2
			}
			procs = spec.BuildProcesses()
			sourceName = specPath
		} else {
			procs, err = workload.LoadProcessFile(inputPath)
			if err != nil {
				logrus.Fatalf("Failed to load processes: %v", err)
			}
		}

		logrus.Infof("Starting simulation with %d processes, quantum1=%d, quantum2=%d",
			len(procs), cfg.Quantum1, cfg.Quantum2)

		s := sim.NewSimulator(cfg, procs)
		if withTrace {
			s.Trace = trace.NewExecutionTrace()
		}
		s.Run()

		out := outputPath
		if out == "" {
			out = defaultOutputPath(sourceName)
		}
		if err := report.Write(out, filepath.Base(sourceName), s.Metrics); err != nil {
			logrus.Fatalf("Failed to write report: %v", err)
		}

		s.Metrics.Print()
		if withTrace {
			printTraceSummary(trace.Summarize(s.Trace))
		}
		logrus.Infof("Simulation complete. Results in %s", out)
	},
}

// defaultOutputPath derives "<stem>_output.txt" next to the input file.
func defaultOutputPath(input string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return stem + "_output.txt"
}

func printTraceSummary(ts *trace.TraceSummary) {
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Slices               : %d\n", ts.TotalSlices)
	fmt.Printf("Context Switches     : %d\n", ts.ContextSwitches)
	fmt.Printf("Busy Ticks           : %d\n", ts.BusyTicks)
	fmt.Printf("Idle Ticks           : %d\n", ts.IdleTicks)
	for q := 1; q <= 3; q++ {
		fmt.Printf("Queue %d Slices       : %d\n", q, ts.SlicesPerQueue[q])
	}
}

// init sets up CLI flags and attaches `run` to the root command
func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "Path to ';'-delimited process table")
	runCmd.Flags().StringVar(&specPath, "spec", "", "Path to YAML workload spec")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Report path (default: <input>_output.txt)")
	runCmd.Flags().Int64Var(&quantum1, "quantum1", sim.DefaultQuantum1, "Quantum for round-robin queue 1")
	runCmd.Flags().Int64Var(&quantum2, "quantum2", sim.DefaultQuantum2, "Quantum for round-robin queue 2")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&withTrace, "trace", false, "Record execution slices and print a trace summary")

	rootCmd.AddCommand(runCmd)
}
