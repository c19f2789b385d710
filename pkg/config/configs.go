// Package config provides configuration management for the chart pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the pipeline configuration. It is built once at startup
// and passed explicitly into the processing stages.
type Config struct {
	// InputDir is scanned (non-recursively) for sync and post-sync logs.
	InputDir string `mapstructure:"input_dir"`

	// OutputDir receives every chart and table. Defaults to <InputDir>/graficos.
	OutputDir string `mapstructure:"output_dir"`
}

// Default configuration values.
const (
	DefaultInputDir     = "."
	DefaultOutputSubdir = "graficos"
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		InputDir: DefaultInputDir,
	}
}

// ApplyDefaults fills in any missing values with defaults.
func (c *Config) ApplyDefaults() {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, DefaultOutputSubdir)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.InputDir == "" {
		errs = append(errs, errors.New("input directory is required"))
	} else if info, err := os.Stat(c.InputDir); err != nil {
		errs = append(errs, fmt.Errorf("cannot access input directory: %w", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Errorf("input path is not a directory: %s", c.InputDir))
	}

	if c.OutputDir == "" {
		errs = append(errs, errors.New("output directory is required"))
	} else if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
		errs = append(errs, fmt.Errorf("output path is not a directory: %s", c.OutputDir))
	}

	return errors.Join(errs...)
}

// ChartDir returns the directory holding the per-metric charts of one log.
func (c *Config) ChartDir(logType, profile string) string {
	return filepath.Join(c.OutputDir, logType, profile)
}

// ComparisonDir returns the directory holding cross-profile artifacts.
func (c *Config) ComparisonDir() string {
	return filepath.Join(c.OutputDir, ComparisonSubdir)
}

// SummaryPath returns the path of the run-wide summary table.
func (c *Config) SummaryPath() string {
	return filepath.Join(c.OutputDir, SummaryFile)
}

// ComparisonPath returns the path of a file inside the comparison directory.
func (c *Config) ComparisonPath(name string) string {
	return filepath.Join(c.ComparisonDir(), name)
}

// OutputPath returns the path of a file directly under the output directory.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name)
}

// String returns a human-readable configuration summary.
func (c *Config) String() string {
	return fmt.Sprintf("Input Dir:    %s\nOutput Dir:   %s\n", c.InputDir, c.OutputDir)
}
