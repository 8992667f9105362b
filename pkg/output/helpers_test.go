package output

import (
	"time"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

func createTestTable() *transcript.Table {
	base := time.Date(2021, 3, 1, 10, 15, 0, 0, time.UTC)
	return &transcript.Table{
		Source: "chat.txt",
		Rows: []transcript.Row{
			{Index: 0, Timestamp: base, Sender: "Bob", Message: "Hello there"},
			{Index: 1, Timestamp: base.Add(time.Minute), Sender: "Zoë 🌻", Message: "Hi Bob! How are you?"},
			{Index: 2, Timestamp: base.Add(2 * time.Hour), Sender: "Bob", Message: `Good, "thanks", see you`},
		},
	}
}
