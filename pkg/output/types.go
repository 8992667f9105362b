// Package output provides formatting and storage for transcript tables.
package output

import (
	"time"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

// TimeLayout is used for timestamps in text output.
const TimeLayout = "2006-01-02 15:04"

// Summary provides aggregate statistics for a table.
type Summary struct {
	// Rows is the number of messages.
	Rows int `json:"rows"`

	// Senders is the number of distinct senders.
	Senders int `json:"senders"`

	// First and Last are the earliest and latest message times.
	// Both are zero for an empty table.
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

// SenderSummary is the activity of one sender.
type SenderSummary struct {
	Sender   string    `json:"sender"`
	Messages int       `json:"messages"`
	First    time.Time `json:"first"`
	Last     time.Time `json:"last"`
}

// NewSummary computes the summary of a table.
func NewSummary(table *transcript.Table) Summary {
	s := Summary{
		Rows:    table.Len(),
		Senders: len(table.Senders()),
	}
	for i, row := range table.Rows {
		if i == 0 || row.Timestamp.Before(s.First) {
			s.First = row.Timestamp
		}
		if i == 0 || row.Timestamp.After(s.Last) {
			s.Last = row.Timestamp
		}
	}
	return s
}

// SummarizeSenders returns per-sender activity in order of first appearance.
func SummarizeSenders(table *transcript.Table) []SenderSummary {
	index := make(map[string]int)
	var out []SenderSummary

	for _, row := range table.Rows {
		i, ok := index[row.Sender]
		if !ok {
			index[row.Sender] = len(out)
			out = append(out, SenderSummary{
				Sender: row.Sender,
				First:  row.Timestamp,
				Last:   row.Timestamp,
			})
			i = len(out) - 1
		}

		s := &out[i]
		s.Messages++
		if row.Timestamp.Before(s.First) {
			s.First = row.Timestamp
		}
		if row.Timestamp.After(s.Last) {
			s.Last = row.Timestamp
		}
	}

	return out
}
