// Package config provides configuration loading and validation for chattable.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Inputs are transcript paths or glob patterns.
	Inputs []string `yaml:"inputs,omitempty"`

	// Timezone is the IANA zone transcript timestamps are read in.
	Timezone string `yaml:"timezone,omitempty"`

	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`

	// location is the loaded Timezone (populated during validation).
	location *time.Location
}

// Location returns the loaded time zone. It is UTC until Validate succeeds.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// OutputFormat names a table writer.
type OutputFormat string

const (
	OutputText   OutputFormat = "text"
	OutputJSON   OutputFormat = "json"
	OutputCSV    OutputFormat = "csv"
	OutputSQLite OutputFormat = "sqlite"
)

// OutputConfig controls how the table is written.
type OutputConfig struct {
	Format OutputFormat `yaml:"format,omitempty"`

	// Path is the destination file. Empty means stdout.
	// Required for the sqlite format.
	Path string `yaml:"path,omitempty"`

	// MaxWidth caps text output line width. 0 means the terminal width
	// when stdout is a terminal, otherwise unlimited.
	MaxWidth int `yaml:"max_width,omitempty"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text, json
}
