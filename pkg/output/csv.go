package output

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

// CSVFormatter formats tables as CSV with a header row.
type CSVFormatter struct {
	opts FormatOptions
}

// NewCSVFormatter creates a new CSV formatter with the given options.
func NewCSVFormatter(opts FormatOptions) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the table as CSV. Timestamps are RFC 3339.
// Quiet mode writes a single rows,senders record.
func (f *CSVFormatter) Format(ctx context.Context, table *transcript.Table, w io.Writer) error {
	cw := csv.NewWriter(w)

	if f.opts.Quiet {
		s := NewSummary(table)
		if err := cw.Write([]string{"rows", "senders"}); err != nil {
			return err
		}
		if err := cw.Write([]string{strconv.Itoa(s.Rows), strconv.Itoa(s.Senders)}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	if err := cw.Write(table.Columns()); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := []string{
			row.Timestamp.Format(time.RFC3339),
			row.Sender,
			row.Message,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
