package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &CommonOptions{}

	cmd := &cobra.Command{
		Use:   "validate <transcript>",
		Short: "Check a transcript without writing a table",
		Long: `Validate a chat transcript without producing output.

Checks:
  - UTF-8 encoding
  - Every header has a timestamp that parses as "M/D/YYYY, H:MM AM"
  - Lines outside any message (ignored, reported)

Exit codes:
  0 - Transcript is clean
  1 - Transcript parses but some lines were recovered or ignored
  2 - Transcript cannot be parsed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts *CommonOptions) error {
	path := args[0]
	ctx := contextOf(cmd)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(ctx, cmd, opts, nil)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fmt.Fprintf(out, "Validating %s...\n", path)

	result, err := transcript.ScanFile(ctx, path, transcript.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	table, err := transcript.Build(path, result.Records, cfg.Location())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	st := result.Stats
	fmt.Fprintf(out, "\nTranscript valid!\n")
	fmt.Fprintf(out, "  Lines:              %d\n", st.Lines)
	fmt.Fprintf(out, "  Header lines:       %d\n", st.HeaderLines)
	fmt.Fprintf(out, "  Continuation lines: %d\n", st.ContinuationLines)
	fmt.Fprintf(out, "  Blank lines:        %d\n", st.BlankLines)
	fmt.Fprintf(out, "  Messages:           %d\n", table.Len())
	fmt.Fprintf(out, "  Senders:            %d\n", len(table.Senders()))
	fmt.Fprintf(out, "  Events dropped:     %d\n", len(result.Records)-table.Len())
	fmt.Fprintf(out, "  Empty messages:     %d\n", st.MissingBody)

	if st.OrphanLines == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nWarnings:\n")
	fmt.Fprintf(out, "  - %d line(s) outside any message (ignored)\n", st.OrphanLines)

	ExitCode = 1
	return nil
}
