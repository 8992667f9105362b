package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/mattn/go-runewidth"
)

// WriteSenders renders per-sender activity as text or json.
func WriteSenders(w io.Writer, senders []SenderSummary, format string) error {
	switch format {
	case "json":
		if senders == nil {
			senders = []SenderSummary{}
		}
		data, err := sonic.ConfigStd.MarshalIndent(senders, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "text", "":
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", format)
	}

	nameWidth := runewidth.StringWidth("SENDER")
	for _, s := range senders {
		if sw := runewidth.StringWidth(s.Sender); sw > nameWidth {
			nameWidth = sw
		}
	}
	countWidth := len("MESSAGES")

	fmt.Fprintf(w, "%s%s%s%s%s%sLAST\n",
		pad("SENDER", nameWidth), columnGap,
		pad("MESSAGES", countWidth), columnGap,
		pad("FIRST", len(TimeLayout)), columnGap)
	for _, s := range senders {
		fmt.Fprintf(w, "%s%s%s%s%s%s%s\n",
			pad(s.Sender, nameWidth), columnGap,
			pad(strconv.Itoa(s.Messages), countWidth), columnGap,
			s.First.Format(TimeLayout), columnGap,
			s.Last.Format(TimeLayout))
	}
	return nil
}
