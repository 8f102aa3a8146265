package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config holds CLI settings that may come from a YAML file.
// Flags set explicitly on the command line override file values.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Output   string `yaml:"output"` // report path; "-" for stdout, "" derives it from the input path
	Summary  bool   `yaml:"summary"`
	Gantt    bool   `yaml:"gantt"`
	Trace    string `yaml:"trace"`
	Listen   string `yaml:"listen"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "error",
		Trace:    "none",
		Listen:   ":8080",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Unknown keys are rejected so typos cause errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads --config if given, then applies explicitly set flags.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("summary") {
		cfg.Summary = showSummary
	}
	if flags.Changed("gantt") {
		cfg.Gantt = showGantt
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}
	if flags.Changed("listen") {
		cfg.Listen = listenAddr
	}
	return cfg, nil
}
