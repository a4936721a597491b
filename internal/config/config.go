// Package config defines the checker configuration and its loading hooks.
//
// Values are layered defaults -> optional YAML file -> XAPI_* environment.
package config

import (
	"fmt"
	"strings"
)

// Report formats accepted by ReportFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const defaultMaxLineBytes = 1 << 20

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SamplesPath points at the newline-delimited mapped events fixture.
	SamplesPath string `koanf:"samples_path"`

	// StatementsPath points at the captured xAPI statements, one per line,
	// in the same order as the kept sample events.
	StatementsPath string `koanf:"statements_path"`

	// ReportFormat selects the report encoding: json or yaml.
	ReportFormat string `koanf:"report_format"`

	// FailFast stops a run at the first pair without a validator.
	FailFast bool `koanf:"fail_fast"`

	// MaxLineBytes bounds a single fixture line.
	MaxLineBytes int `koanf:"max_line_bytes"`

	// MetricsFile, when set, receives the Prometheus textfile after a run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		SamplesPath:  "example/events/mapped-events.json",
		ReportFormat: FormatJSON,
		MaxLineBytes: defaultMaxLineBytes,
	}
}

// Validate checks field values, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SamplesPath) == "" {
		return fmt.Errorf("%w: samples_path must not be empty", ErrInvalidConfig)
	}
	switch c.ReportFormat {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown report_format %q", ErrInvalidConfig, c.ReportFormat)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("%w: max_line_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
