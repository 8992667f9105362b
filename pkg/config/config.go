package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and loads the time zone.
// Empty fields are filled with their defaults.
func Validate(cfg *Config) error {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	cfg.location = loc

	if err := validateOutput(&cfg.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if err := validateLog(&cfg.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func validateOutput(out *OutputConfig) error {
	if out.Format == "" {
		out.Format = DefaultOutputFormat
	}

	switch out.Format {
	case OutputText, OutputJSON, OutputCSV, OutputSQLite:
	default:
		return fmt.Errorf("invalid format %q (must be text, json, csv, or sqlite)", out.Format)
	}

	if out.MaxWidth < 0 {
		return errors.New("max_width must be >= 0")
	}

	return nil
}

// ValidateOutputTarget checks that the configured output can be written.
// Only commands that write a table call it, so a sqlite format without a
// path does not block read-only commands.
func ValidateOutputTarget(cfg *Config) error {
	if cfg.Output.Format == OutputSQLite && cfg.Output.Path == "" {
		return errors.New("output: path is required for sqlite output")
	}
	return nil
}

func validateLog(l *LogConfig) error {
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", l.Level)
	}

	if l.Format == "" {
		l.Format = DefaultLogFormat
	}
	switch l.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (must be text or json)", l.Format)
	}

	return nil
}
