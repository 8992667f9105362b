package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/chattable/internal/logging"
	"github.com/ccollicutt/chattable/pkg/config"
	"github.com/ccollicutt/chattable/pkg/transcript"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CommonOptions holds flags shared by commands that read transcripts.
type CommonOptions struct {
	ConfigFile string
	Timezone   string
	LogLevel   string
	LogFormat  string
}

func (o *CommonOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ConfigFile, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVar(&o.Timezone, "timezone", "", "Time zone of transcript timestamps (e.g. Europe/Berlin)")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", "", "Diagnostic log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&o.LogFormat, "log-format", "", "Diagnostic log format (text|json)")
}

// loadConfig builds the effective configuration: defaults, then the config
// file or environment, then any flags set on the command line.
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *CommonOptions, apply func(*config.Config)) (*config.Config, error) {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		loaded, err := config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		cfg.ApplyEnvironmentOverrides()
	}

	flags := cmd.Flags()
	if flags.Changed("timezone") {
		cfg.Timezone = opts.Timezone
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.LogFormat
	}
	if apply != nil {
		apply(cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// parseAll expands inputs, parses every file and merges the tables.
// Any failure aborts the whole run.
func parseAll(ctx context.Context, inputs []string, cfg *config.Config, logger *zap.Logger) (*transcript.Table, []string, error) {
	files, err := transcript.ExpandGlobs(inputs)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding inputs: %w", err)
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no transcripts matched: %v", inputs)
	}

	tables := make([]*transcript.Table, 0, len(files))
	for _, file := range files {
		table, err := transcript.ParseFile(ctx, file,
			transcript.WithLocation(cfg.Location()),
			transcript.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		logger.Info("parsed transcript",
			zap.String("source", file),
			zap.Int("rows", table.Len()))
		tables = append(tables, table)
	}

	return transcript.Merge(tables...), files, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
