package config

import "os"

// Default values for configuration.
const (
	DefaultTimezone     = "UTC"
	DefaultOutputFormat = OutputText
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
)

// Environment variable names.
const (
	EnvTimezone     = "CHATTABLE_TIMEZONE"
	EnvLogLevel     = "CHATTABLE_LOG_LEVEL"
	EnvOutputFormat = "CHATTABLE_OUTPUT_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Inputs:   []string{},
		Timezone: DefaultTimezone,
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvironmentOverrides() {
	if tz := os.Getenv(EnvTimezone); tz != "" {
		c.Timezone = tz
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv(EnvOutputFormat); format != "" {
		c.Output.Format = OutputFormat(format)
	}
}
