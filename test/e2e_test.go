package test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ccollicutt/chattable/internal/cli"
	"github.com/ccollicutt/chattable/pkg/config"
	"github.com/ccollicutt/chattable/pkg/output"
	"github.com/ccollicutt/chattable/pkg/transcript"
)

var (
	projectRoot string
	rootOnce    sync.Once
)

// chdir changes to the project root directory for tests.
// Config files use paths relative to project root.
func chdir(t *testing.T) {
	t.Helper()
	rootOnce.Do(func() {
		// Get the directory containing this test file, then go up one level
		_, filename, _, _ := runtime.Caller(0)
		projectRoot = filepath.Dir(filepath.Dir(filename))
	})
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("Failed to chdir to project root: %v", err)
	}
}

// requireFile fails the test if the required test file doesn't exist.
// We never skip tests - missing test data is a test failure.
func requireFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Required test file not found: %s", path)
	}
}

// execute runs the chattable root command in-process and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// TestE2E_Family parses a group export with system events, a multi-line
// message with a blank line, media placeholders and emoji.
func TestE2E_Family(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "transcripts", "family.txt")
	requireFile(t, path)

	table, err := transcript.ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	want := []struct {
		sender  string
		message string
	}{
		{"Mom", "Dinner at 7!"},
		{"Sam", "On my way traffic is bad might be late"},
		{"Sam", "<Media omitted>"},
		{"Alex", "Merry Christmas 🎅"},
		{"Mom", "Note: leftovers in the fridge"},
	}
	if table.Len() != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), table.Len())
	}
	for i, w := range want {
		row := table.Rows[i]
		if row.Index != i || row.Sender != w.sender || row.Message != w.message {
			t.Errorf("row %d = %+v, want %s: %q", i, row, w.sender, w.message)
		}
	}

	last := time.Date(2022, 12, 25, 9, 0, 0, 0, time.UTC)
	if !table.Rows[4].Timestamp.Equal(last) {
		t.Errorf("last timestamp = %v, want %v", table.Rows[4].Timestamp, last)
	}

	if got := table.Senders(); !reflect.DeepEqual(got, []string{"Mom", "Sam", "Alex"}) {
		t.Errorf("Senders() = %v", got)
	}
}

// TestE2E_Idempotent parses the same file twice and expects identical tables.
func TestE2E_Idempotent(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "transcripts", "family.txt")
	requireFile(t, path)

	first, err := transcript.ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := transcript.ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Re-parsing produced a different table")
	}
}

// TestE2E_Scan checks the header invariant on the scan pass.
func TestE2E_Scan(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "transcripts", "family.txt")
	requireFile(t, path)

	result, err := transcript.ScanFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}

	st := result.Stats
	if len(result.Records) != st.HeaderLines {
		t.Errorf("records = %d, header lines = %d", len(result.Records), st.HeaderLines)
	}
	if st.Lines != 11 || st.HeaderLines != 8 || st.ContinuationLines != 2 || st.BlankLines != 1 {
		t.Errorf("Unexpected stats: %+v", st)
	}
	if st.MissingBody != 3 || st.OrphanLines != 0 {
		t.Errorf("Unexpected recovery counts: %+v", st)
	}
}

// TestE2E_ConfigMerge loads a config with a glob and a time zone, then merges
// a LF export with a CRLF export that starts with a byte order mark.
func TestE2E_ConfigMerge(t *testing.T) {
	chdir(t)
	configFile := filepath.Join("testdata", "configs", "holidays.yaml")
	requireFile(t, configFile)
	ctx := context.Background()

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	files, err := transcript.ExpandGlobs(cfg.Inputs)
	if err != nil {
		t.Fatalf("Failed to expand globs: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 transcripts, got %v", files)
	}

	var tables []*transcript.Table
	for _, file := range files {
		table, err := transcript.ParseFile(ctx, file, transcript.WithLocation(cfg.Location()))
		if err != nil {
			t.Fatalf("ParseFile(%s) failed: %v", file, err)
		}
		tables = append(tables, table)
	}

	merged := transcript.Merge(tables...)

	wantSenders := []string{"Mom", "Priya", "Sam", "Sam", "Alex", "Priya", "Mom"}
	if merged.Len() != len(wantSenders) {
		t.Fatalf("Expected %d rows, got %d", len(wantSenders), merged.Len())
	}
	for i, want := range wantSenders {
		if merged.Rows[i].Sender != want || merged.Rows[i].Index != i {
			t.Errorf("row %d = %+v, want sender %s", i, merged.Rows[i], want)
		}
	}

	// 6:04 PM in New York is 23:04 UTC in December.
	want := time.Date(2022, 12, 24, 23, 4, 0, 0, time.UTC)
	if !merged.Rows[1].Timestamp.Equal(want) {
		t.Errorf("Priya timestamp = %v, want %v", merged.Rows[1].Timestamp, want)
	}
	if merged.Rows[1].Message != "Shipping the release tonight" {
		t.Errorf("CR not stripped: %q", merged.Rows[1].Message)
	}
	if merged.Rows[5].Message != "Done ✅" {
		t.Errorf("Unexpected message: %q", merged.Rows[5].Message)
	}
}

// TestE2E_CLI_ParseConfig runs the parse command against the config file.
func TestE2E_CLI_ParseConfig(t *testing.T) {
	chdir(t)
	configFile := filepath.Join("testdata", "configs", "holidays.yaml")
	requireFile(t, configFile)

	out, err := execute(t, "parse", "--config", configFile)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var rows []struct {
		Index   int    `json:"index"`
		Sender  string `json:"sender"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, out)
	}
	if len(rows) != 7 {
		t.Errorf("Expected 7 rows, got %d", len(rows))
	}
}

// TestE2E_CLI_TextOutput checks the text table for a single transcript.
func TestE2E_CLI_TextOutput(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "transcripts", "family.txt")
	requireFile(t, path)

	out, err := execute(t, "parse", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !strings.Contains(out, "2022-12-24 18:03  Mom     Dinner at 7!") {
		t.Errorf("Missing aligned row:\n%s", out)
	}
	if !strings.Contains(out, "5 messages from 3 senders") {
		t.Errorf("Missing summary:\n%s", out)
	}
	if strings.Contains(out, "end-to-end") || strings.Contains(out, "added Alex") {
		t.Errorf("System events should be dropped:\n%s", out)
	}
}

// TestE2E_CLI_SQLite stores a transcript and reads it back.
func TestE2E_CLI_SQLite(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "transcripts", "family.txt")
	requireFile(t, path)
	dbPath := filepath.Join(t.TempDir(), "chat.db")

	if _, err := execute(t, "parse", "-o", "sqlite", "--out", dbPath, path); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want, err := transcript.ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	store, err := output.OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer store.Close()

	got, err := store.ReadTable(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if got.Len() != want.Len() {
		t.Fatalf("stored %d rows, want %d", got.Len(), want.Len())
	}
	for i := range want.Rows {
		w, g := want.Rows[i], got.Rows[i]
		if g.Index != w.Index || g.Sender != w.Sender || g.Message != w.Message || !g.Timestamp.Equal(w.Timestamp) {
			t.Errorf("row %d = %+v, want %+v", i, g, w)
		}
	}
}

// TestE2E_CLI_Validate reports the family transcript statistics.
func TestE2E_CLI_Validate(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "transcripts", "family.txt")
	requireFile(t, path)

	out, err := execute(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	for _, want := range []string{
		"Transcript valid!",
		"Messages:           5",
		"Senders:            3",
		"Events dropped:     3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %q:\n%s", want, out)
		}
	}
}

// TestE2E_CLI_UnknownCommand checks cobra rejects unknown commands.
func TestE2E_CLI_UnknownCommand(t *testing.T) {
	if _, err := execute(t, "analyze"); err == nil {
		t.Error("Expected error for unknown command")
	}
}
