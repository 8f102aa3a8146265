package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/schedsim/sim/workload"
)

var (
	convertTo     string // Target format: yaml or text
	convertOutput string // Destination file; empty is stdout
)

var convertCmd = &cobra.Command{
	Use:   "convert <workload>",
	Short: "Convert a workload between the text format and YAML",
	Long:  "Convert reads a workload (format chosen by extension), validates it and writes it in the --to format. Output is written to stdout for piping unless --output is set.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		setupLogging(cfg.LogLevel)

		if err := convertWorkload(args[0], workload.Format(convertTo), convertOutput, os.Stdout); err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
	},
}

func convertWorkload(input string, to workload.Format, dest string, stdout io.Writer) error {
	if to != workload.FormatText && to != workload.FormatYAML {
		return fmt.Errorf("unknown target format %q; valid: text, yaml", to)
	}
	wl, err := workload.Load(input)
	if err != nil {
		return err
	}
	if dest == "" {
		return workload.Write(stdout, wl, to)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if err := workload.Write(f, wl, to); err != nil {
		f.Close() //nolint:errcheck // already failing
		return err
	}
	return f.Close()
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "yaml", "Target format (yaml, text)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(convertCmd)
}
