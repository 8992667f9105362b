// chattable - Chat Transcript Converter
//
// chattable reads exported chat transcripts and writes an ordered table of
// timestamp, sender and message.
package main

import (
	"os"

	"github.com/ccollicutt/chattable/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
