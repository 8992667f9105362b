package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

// Formatter renders a transcript table in a specific format.
type Formatter interface {
	// Format renders the table to the given writer.
	Format(ctx context.Context, table *transcript.Table, w io.Writer) error

	// Name returns the format name (text, json, csv).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet enables minimal summary-only output.
	Quiet bool

	// MaxWidth caps the width of a text line. 0 means unlimited.
	MaxWidth int
}

// NewFormatter returns the stream formatter with the given name.
// The sqlite format is not a stream format; use Store for it.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text", "":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "csv":
		return NewCSVFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json, or csv)", name)
	}
}
