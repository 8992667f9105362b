// Package transcript parses exported chat transcripts into message tables.
package transcript

import "time"

// Column names of a Table, in output order.
const (
	ColumnTimestamp = "timestamp"
	ColumnSender    = "sender"
	ColumnMessage   = "message"
)

// Record is one header line and its folded message body, before
// timestamp parsing and sender filtering.
type Record struct {
	// Line is the 1-based line number of the header line.
	Line int

	// Timestamp is the raw text before the first " - " separator.
	Timestamp string

	// Sender is empty for system events such as joins and group changes.
	Sender string

	// Message is the body with continuation lines joined by single spaces.
	Message string
}

// Row is a single authored message in a Table.
type Row struct {
	Index     int
	Timestamp time.Time
	Sender    string
	Message   string
}

// Table is the ordered set of authored messages from one or more transcripts.
type Table struct {
	// Source is the file the table was read from. Empty for merged tables.
	Source string

	Rows []Row
}

// Columns returns the table's column names.
func (t *Table) Columns() []string {
	return []string{ColumnTimestamp, ColumnSender, ColumnMessage}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Senders returns the distinct senders in order of first appearance.
func (t *Table) Senders() []string {
	seen := make(map[string]bool)
	var senders []string
	for _, row := range t.Rows {
		if !seen[row.Sender] {
			seen[row.Sender] = true
			senders = append(senders, row.Sender)
		}
	}
	return senders
}

// reindex assigns contiguous indexes starting at zero.
func (t *Table) reindex() {
	for i := range t.Rows {
		t.Rows[i].Index = i
	}
}

// Stats counts what the scan pass saw.
type Stats struct {
	// Lines is the number of physical lines read.
	Lines int

	// HeaderLines is the number of lines that started a record.
	HeaderLines int

	// ContinuationLines were folded into a preceding message body.
	ContinuationLines int

	// OrphanLines are non-header lines with no open message body, either
	// before the first header or after a header without ": ".
	OrphanLines int

	// BlankLines are empty lines; they never end a message body.
	BlankLines int

	// MissingTimestamp counts header lines without " - ".
	MissingTimestamp int

	// MissingSender counts header lines with no sender, usually system events.
	MissingSender int

	// MissingBody counts header lines without ": ".
	MissingBody int
}

// ScanResult is the output of the scan pass.
type ScanResult struct {
	Source  string
	Records []Record
	Stats   Stats
}
