package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

// JSONFormatter formats tables as a JSON array of rows.
type JSONFormatter struct {
	opts FormatOptions
}

// jsonRow is the wire shape of a table row.
type jsonRow struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the table as JSON. Quiet mode renders only the summary.
func (f *JSONFormatter) Format(ctx context.Context, table *transcript.Table, w io.Writer) error {
	var v interface{}
	if f.opts.Quiet {
		v = NewSummary(table)
	} else {
		rows := make([]jsonRow, len(table.Rows))
		for i, row := range table.Rows {
			rows[i] = jsonRow{
				Index:     row.Index,
				Timestamp: row.Timestamp,
				Sender:    row.Sender,
				Message:   row.Message,
			}
		}
		v = rows
	}

	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')

	_, err = w.Write(data)
	return err
}
