package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/value"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS metadata (
	key TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	record JSON NOT NULL
);
`

// SQLiteWriter implements Target by storing each record as a JSON row.
// Everything is written in one transaction: Commit publishes it, Abort
// leaves the database as it was.
type SQLiteWriter struct {
	db       *sql.DB
	tx       *sql.Tx
	stmtPut  *sql.Stmt
	stmtHas  *sql.Stmt
	position int
	mu       sync.Mutex
}

// NewSQLiteWriter opens dbPath, creates the schema and starts a transaction.
func NewSQLiteWriter(ctx context.Context, dbPath string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	w := &SQLiteWriter{db: db}
	if err := w.beginTx(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return w, nil
}

func (w *SQLiteWriter) beginTx(ctx context.Context) error {
	var err error
	w.tx, err = w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	w.stmtPut, err = w.tx.PrepareContext(ctx, `
		INSERT INTO records (key, position, record) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET record = excluded.record
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}

	w.stmtHas, err = w.tx.PrepareContext(ctx, `SELECT 1 FROM records WHERE key = ?`)
	if err != nil {
		return fmt.Errorf("prepare lookup: %w", err)
	}

	var maxPos sql.NullInt64
	if err := w.tx.QueryRowContext(ctx, `SELECT MAX(position) FROM records`).Scan(&maxPos); err != nil {
		return fmt.Errorf("read positions: %w", err)
	}
	if maxPos.Valid {
		w.position = int(maxPos.Int64) + 1
	}
	return nil
}

// SetMetadata stores the document header entries.
func (w *SQLiteWriter) SetMetadata(meta api.Metadata) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, kv := range meta.Entries() {
		_, err := w.tx.Exec(`
			INSERT INTO metadata (key, position, value) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, kv[0], i, kv[1])
		if err != nil {
			return fmt.Errorf("store metadata %s: %w", kv[0], err)
		}
	}
	return nil
}

// Put implements Target.
func (w *SQLiteWriter) Put(key string, record *value.Map) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	raw, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("encode record: %w", err)
	}

	var one int
	replaced := true
	if err := w.stmtHas.QueryRow(key).Scan(&one); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("lookup %q: %w", key, err)
		}
		replaced = false
	}

	if _, err := w.stmtPut.Exec(key, w.position, string(raw)); err != nil {
		return false, fmt.Errorf("insert %q: %w", key, err)
	}
	if !replaced {
		w.position++
	}
	return replaced, nil
}

// Commit publishes everything written so far and closes the database.
func (w *SQLiteWriter) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closeStmts()
	if err := w.tx.Commit(); err != nil {
		_ = w.db.Close()
		return fmt.Errorf("commit: %w", err)
	}
	return w.db.Close()
}

// Abort discards everything written since the writer was opened.
func (w *SQLiteWriter) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closeStmts()
	if err := w.tx.Rollback(); err != nil {
		_ = w.db.Close()
		return fmt.Errorf("rollback: %w", err)
	}
	return w.db.Close()
}

func (w *SQLiteWriter) closeStmts() {
	if w.stmtPut != nil {
		_ = w.stmtPut.Close()
	}
	if w.stmtHas != nil {
		_ = w.stmtHas.Close()
	}
}

var _ Target = (*SQLiteWriter)(nil)
