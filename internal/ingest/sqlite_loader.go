package ingest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/agentic-research/csvjson/internal/value"
	_ "modernc.org/sqlite"
)

// StreamSQLite calls fn for every stored record in insertion order, passing
// the raw JSON. Only one record is held in memory at a time.
func StreamSQLite(ctx context.Context, dbPath string, fn func(key, raw string) error) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	rows, err := db.QueryContext(ctx, "SELECT key, record FROM records ORDER BY position")
	if err != nil {
		return fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	return rows.Err()
}

// LoadDocument rebuilds the full Document stored by a SQLiteWriter.
func LoadDocument(ctx context.Context, dbPath string) (*Document, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	doc := &Document{Root: value.NewMap(), meta: make(map[string]struct{})}

	rows, err := db.QueryContext(ctx, "SELECT key, value FROM metadata ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query metadata: %w", err)
	}
	for rows.Next() {
		var key, val string
		if err := rows.Scan(&key, &val); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan metadata: %w", err)
		}
		doc.Root.Set(key, value.String(val))
		doc.meta[key] = struct{}{}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metadata: %w", err)
	}

	err = StreamSQLite(ctx, dbPath, func(key, raw string) error {
		record, err := value.ParseMap([]byte(raw))
		if err != nil {
			return fmt.Errorf("record %q: %w", key, err)
		}
		_, err = doc.Put(key, record)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
