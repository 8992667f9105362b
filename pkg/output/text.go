package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

const (
	columnGap = "  "

	// minMessageWidth keeps some of the message visible on narrow terminals.
	minMessageWidth = 10
)

// TextFormatter formats tables as aligned human-readable columns.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the table as text.
func (f *TextFormatter) Format(ctx context.Context, table *transcript.Table, w io.Writer) error {
	summary := NewSummary(table)
	if f.opts.Quiet {
		fmt.Fprintf(w, "chattable: %s\n", describe(summary))
		return nil
	}

	senderWidth := runewidth.StringWidth("SENDER")
	for _, row := range table.Rows {
		if sw := runewidth.StringWidth(row.Sender); sw > senderWidth {
			senderWidth = sw
		}
	}
	timeWidth := len(TimeLayout)

	messageWidth := 0
	if f.opts.MaxWidth > 0 {
		messageWidth = f.opts.MaxWidth - timeWidth - senderWidth - 2*len(columnGap)
		if messageWidth < minMessageWidth {
			messageWidth = minMessageWidth
		}
	}

	fmt.Fprintf(w, "%s%s%s%sMESSAGE\n",
		pad("TIMESTAMP", timeWidth), columnGap,
		pad("SENDER", senderWidth), columnGap)

	for _, row := range table.Rows {
		message := row.Message
		if messageWidth > 0 {
			message = runewidth.Truncate(message, messageWidth, "…")
		}
		fmt.Fprintf(w, "%s%s%s%s%s\n",
			row.Timestamp.Format(TimeLayout), columnGap,
			pad(row.Sender, senderWidth), columnGap,
			message)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintln(w, describe(summary))

	return nil
}

// pad right-pads s to the given display width.
func pad(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func describe(s Summary) string {
	if s.Rows == 0 {
		return "0 messages"
	}
	return fmt.Sprintf("%d %s from %d %s, %s to %s",
		s.Rows, plural(s.Rows, "message", "messages"),
		s.Senders, plural(s.Senders, "sender", "senders"),
		s.First.Format(TimeLayout), s.Last.Format(TimeLayout))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
