package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), createTestTable(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "TIMESTAMP"))
	assert.Contains(t, lines[1], "2021-03-01 10:15")
	assert.Contains(t, lines[1], "Hello there")
	assert.Equal(t, "---", lines[4])
	assert.Equal(t, "3 messages from 2 senders, 2021-03-01 10:15 to 2021-03-01 12:15", lines[5])

	// The message column starts at the same display column on every row,
	// including the row whose sender contains wide characters.
	col := runewidth.StringWidth(lines[0][:strings.Index(lines[0], "MESSAGE")])
	assert.Equal(t, col, runewidth.StringWidth(lines[1][:strings.Index(lines[1], "Hello there")]))
	assert.Equal(t, col, runewidth.StringWidth(lines[2][:strings.Index(lines[2], "Hi Bob")]))
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), createTestTable(), &buf))

	assert.Equal(t, "chattable: 3 messages from 2 senders, 2021-03-01 10:15 to 2021-03-01 12:15\n", buf.String())
}

func TestTextFormatter_Format_Empty(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), &transcript.Table{}, &buf))

	assert.Contains(t, buf.String(), "TIMESTAMP")
	assert.Contains(t, buf.String(), "0 messages")
}

func TestTextFormatter_Format_MaxWidth(t *testing.T) {
	table := createTestTable()
	table.Rows[0].Message = strings.Repeat("long words ", 20)

	f := NewTextFormatter(FormatOptions{MaxWidth: 50})

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), table, &buf))

	lines := strings.Split(buf.String(), "\n")
	assert.LessOrEqual(t, runewidth.StringWidth(lines[1]), 50)
	assert.True(t, strings.HasSuffix(lines[1], "…"))
}

func TestTextFormatter_Name(t *testing.T) {
	assert.Equal(t, "text", NewTextFormatter(FormatOptions{}).Name())
}
