package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/chattable/pkg/output"
)

// SendersOptions holds command-line options for the senders command.
type SendersOptions struct {
	CommonOptions

	Output string
}

// NewSendersCommand creates the senders command.
func NewSendersCommand() *cobra.Command {
	opts := &SendersOptions{}

	cmd := &cobra.Command{
		Use:   "senders <transcript...>",
		Short: "Summarize messages per sender",
		Long: `Parse transcripts and print, for every sender, the number of messages
and the time of their first and last message.

Example:
  chattable senders chat.txt
  chattable senders -o json exports/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSenders(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runSenders(cmd *cobra.Command, args []string, opts *SendersOptions) error {
	ctx := contextOf(cmd)

	cfg, err := loadConfig(ctx, cmd, &opts.CommonOptions, nil)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	table, _, err := parseAll(ctx, args, cfg, logger)
	if err != nil {
		return err
	}

	return output.WriteSenders(cmd.OutOrStdout(), output.SummarizeSenders(table), opts.Output)
}
