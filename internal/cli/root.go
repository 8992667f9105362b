// Package cli provides the command-line interface for chattable.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/chattable/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration, file or timestamp error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chattable",
		Short: "Turn exported chat transcripts into message tables",
		Long: `chattable converts exported chat transcripts into a table of messages.

Input lines look like:
  3/1/2021, 10:15 AM - Bob: Hello there

Every message becomes one row with a timestamp, a sender and the message text.
Multi-line messages are joined, system events without a sender are dropped.

Tables can be printed as text, JSON or CSV, or stored in a SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewSendersCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
