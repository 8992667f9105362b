package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ccollicutt/chattable/pkg/config"
	"github.com/ccollicutt/chattable/pkg/output"
	"github.com/ccollicutt/chattable/pkg/transcript"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	CommonOptions

	Output   string
	Out      string
	MaxWidth int
	Quiet    bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [transcript...]",
		Short: "Convert chat transcripts into a message table",
		Long: `Parse exported chat transcripts into a table of timestamp, sender and message.

Each header line ("3/1/2021, 10:15 AM - Bob: Hello there") starts a message.
Lines that do not start with a date are folded into the previous message.
System events without a sender are dropped.

Several transcripts (paths or globs) are merged in chronological order.
When no transcript is given, the inputs of the --config file are used.

Exit codes:
  0 - Table written
  2 - Configuration, file or timestamp error

Example:
  chattable parse chat.txt
  chattable parse -o csv --out chat.csv exports/*.txt
  chattable parse -o sqlite --out chat.db --timezone Europe/Berlin chat.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json|csv|sqlite)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write to file instead of stdout (required for sqlite)")
	cmd.Flags().IntVar(&opts.MaxWidth, "max-width", 0, "Truncate text output to this width (0 = terminal width)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no rows")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := contextOf(cmd)

	cfg, err := loadConfig(ctx, cmd, &opts.CommonOptions, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.Output.Format = config.OutputFormat(opts.Output)
		}
		if flags.Changed("out") {
			cfg.Output.Path = opts.Out
		}
		if flags.Changed("max-width") {
			cfg.Output.MaxWidth = opts.MaxWidth
		}
	})
	if err != nil {
		return err
	}
	if err := config.ValidateOutputTarget(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	inputs := args
	if len(inputs) == 0 {
		inputs = cfg.Inputs
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no transcripts given (pass paths or set inputs in --config)")
	}

	table, files, err := parseAll(ctx, inputs, cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("table ready",
		zap.Int("files", len(files)),
		zap.Int("rows", table.Len()))

	return writeTable(ctx, cmd, cfg, opts.Quiet, table)
}

func writeTable(ctx context.Context, cmd *cobra.Command, cfg *config.Config, quiet bool, table *transcript.Table) (err error) {
	if cfg.Output.Format == config.OutputSQLite {
		if err := output.WriteSQLite(ctx, table, cfg.Output.Path); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
		}
		return nil
	}

	formatOpts := output.FormatOptions{
		Quiet:    quiet,
		MaxWidth: cfg.Output.MaxWidth,
	}

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		f, createErr := os.Create(cfg.Output.Path)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() { err = closeOutput(f, err) }()
		w = f
	} else if formatOpts.MaxWidth == 0 {
		formatOpts.MaxWidth = terminalWidth(w)
	}

	formatter, err := output.NewFormatter(string(cfg.Output.Format), formatOpts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, table, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

// closeOutput closes an output file and reports the close error unless an
// earlier error is already being returned.
func closeOutput(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("closing output file: %w", cerr)
	}
	return err
}

// terminalWidth returns the width of w when it is a terminal, otherwise 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
