package output

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ccollicutt/chattable/pkg/transcript"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS messages (
    source    TEXT NOT NULL DEFAULT '',
    idx       INTEGER NOT NULL,
    timestamp TEXT NOT NULL,
    sender    TEXT NOT NULL,
    message   TEXT NOT NULL,
    PRIMARY KEY (source, idx)
);

CREATE INDEX IF NOT EXISTS messages_sender ON messages (sender);
`

// Store writes transcript tables to a SQLite database file.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// WriteTable replaces all rows previously written for table.Source.
func (s *Store) WriteTable(ctx context.Context, table *transcript.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE source = ?", table.Source); err != nil {
		return fmt.Errorf("clear source: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO messages (source, idx, timestamp, sender, message) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range table.Rows {
		if _, err := stmt.ExecContext(ctx,
			table.Source, row.Index, row.Timestamp.Format(time.RFC3339), row.Sender, row.Message); err != nil {
			return fmt.Errorf("insert row %d: %w", row.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ReadTable loads the rows written for source, ordered by index.
func (s *Store) ReadTable(ctx context.Context, source string) (*transcript.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT idx, timestamp, sender, message FROM messages WHERE source = ? ORDER BY idx", source)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	table := &transcript.Table{Source: source}
	for rows.Next() {
		var (
			row transcript.Row
			ts  string
		)
		if err := rows.Scan(&row.Index, &ts, &row.Sender, &row.Message); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		row.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Index, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, rows.Err()
}

// WriteSQLite writes table to the database at path.
func WriteSQLite(ctx context.Context, table *transcript.Table, path string) error {
	store, err := OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.WriteTable(ctx, table)
}
