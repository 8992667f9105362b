package transcript

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Build runs the second pass: it parses every record's timestamp, drops
// records without a sender, and re-indexes the remaining rows from zero.
//
// Timestamps are parsed before filtering, so an unparseable token on a
// system event line still fails the build. The first failure is returned
// as a *TimestampError and no table is produced.
func Build(source string, records []Record, loc *time.Location) (*Table, error) {
	tp := NewTimestampParser(loc)

	stamps := make([]time.Time, len(records))
	for i, rec := range records {
		ts, err := tp.Parse(rec.Timestamp)
		if err != nil {
			return nil, &TimestampError{
				Source: source,
				Line:   rec.Line,
				Token:  rec.Timestamp,
				Err:    err,
			}
		}
		stamps[i] = ts
	}

	table := &Table{Source: source, Rows: make([]Row, 0, len(records))}
	for i, rec := range records {
		if rec.Sender == "" {
			continue
		}
		table.Rows = append(table.Rows, Row{
			Timestamp: stamps[i],
			Sender:    rec.Sender,
			Message:   rec.Message,
		})
	}
	table.reindex()

	return table, nil
}

// Parse reads a whole transcript from r and returns its table.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Table, error) {
	o := newOptions(opts)

	result, err := Scan(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	return Build(o.source, result.Records, o.location)
}

// ParseFile opens path and parses it. The file is closed before returning.
func ParseFile(ctx context.Context, path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening transcript %s: %w", path, err)
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)
	return Parse(ctx, f, opts...)
}

// ScanFile runs only the scan pass over path.
func ScanFile(ctx context.Context, path string, opts ...Option) (*ScanResult, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening transcript %s: %w", path, err)
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)
	return Scan(ctx, f, opts...)
}
