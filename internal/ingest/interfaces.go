package ingest

import "github.com/agentic-research/csvjson/internal/value"

// Target receives finished records from the Engine.
type Target interface {
	// Put stores record under key. It reports whether an earlier record
	// with the same key was replaced.
	Put(key string, record *value.Map) (replaced bool, err error)
}

// MetadataHolder is implemented by targets that keep metadata entries in
// the same key space as records.
type MetadataHolder interface {
	IsMetadata(key string) bool
}

// Walker runs selector queries against a converted document.
type Walker interface {
	Query(root value.Value, selector string) ([]Match, error)
}

// Match is a single query result.
type Match interface {
	// Value returns the matched node: scalars as plain Go data, containers
	// as *value.Map or *value.List.
	Value() any
	// Path is the location of the match inside the document, when known.
	Path() string
}
