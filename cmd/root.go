package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
	"github.com/cpusched/schedsim/sim/workload"
)

var (
	configPath  string // Optional YAML config file
	logLevel    string // Log verbosity level
	outputPath  string // Report destination; "-" is stdout
	showSummary bool   // Print the per-process metrics table
	showGantt   bool   // Print a Gantt chart of CPU ownership
	traceLevel  string // Decision trace level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Tick-based single-CPU process scheduling simulator",
}

// runCmd executes the simulation described by a workload file
var runCmd = &cobra.Command{
	Use:   "run <workload>",
	Short: "Run a scheduling simulation and write its report",
	Long: `Run simulates the workload file with the scheduler it selects
(fcfs, sjf, realSJF or rr) and writes the event report.

Files ending in .yaml or .yml are read as YAML workload specs; anything else
uses the text format (processcount/runfor/use/[quantum]/process.../end).
By default the report goes next to the input, with ".in" replaced by ".out".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		setupLogging(cfg.LogLevel)

		if err := runSimulation(args[0], cfg, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies the --log level to the standard logrus logger.
func setupLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(lvl)
}

// runSimulation loads the workload, runs it and writes the report plus any
// requested extras. Nothing is written when the workload is malformed.
func runSimulation(input string, cfg Config, stdout io.Writer) error {
	if !trace.IsValidTraceLevel(cfg.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, decisions, ticks", cfg.Trace)
	}
	level := trace.TraceLevel(cfg.Trace)
	if cfg.Gantt {
		level = trace.TraceLevelTicks
	}

	wl, err := workload.Load(input)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %d processes from %s (scheduler=%s, runfor=%d)", len(wl.Processes), input, wl.Algorithm, wl.RunFor)

	res, err := sim.Simulate(wl, sim.WithTrace(trace.TraceConfig{Level: level}))
	if err != nil {
		return err
	}

	dest := cfg.Output
	if dest == "" {
		dest = defaultOutputPath(input)
	}
	if err := writeReport(dest, res, stdout); err != nil {
		return err
	}

	if cfg.Summary {
		renderSummary(stdout, res.Metrics)
	}
	if cfg.Gantt && res.Trace != nil {
		renderGantt(stdout, trace.GanttSegments(res.Trace.Ticks))
	}
	requested := trace.TraceConfig{Level: trace.TraceLevel(cfg.Trace)}
	if requested.Enabled() && res.Trace != nil {
		renderTraceSummary(stdout, res.Trace)
	}
	return nil
}

// defaultOutputPath swaps a trailing ".in" for ".out", or appends ".out".
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, ".in") + ".out"
}

func writeReport(dest string, res *sim.Result, stdout io.Writer) error {
	if dest == "-" {
		_, err := res.WriteTo(stdout)
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if _, err := res.WriteTo(f); err != nil {
		f.Close() //nolint:errcheck // already failing
		return fmt.Errorf("writing report %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report %s: %w", dest, err)
	}
	logrus.Infof("Report written to %s", dest)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (flags override its values)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", `Report file ("-" for stdout; default derives from input)`)
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a per-process metrics table")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print a Gantt chart of CPU ownership")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions, ticks)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
