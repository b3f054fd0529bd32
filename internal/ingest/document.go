package ingest

import (
	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/value"
)

// Document is the in-memory result of a conversion: metadata entries first,
// then one entry per record in row order.
type Document struct {
	Root *value.Map

	meta map[string]struct{}
}

// NewDocument returns a Document pre-seeded with meta.
func NewDocument(meta api.Metadata) *Document {
	d := &Document{Root: value.NewMap(), meta: make(map[string]struct{})}
	for _, kv := range meta.Entries() {
		d.Root.Set(kv[0], value.String(kv[1]))
		d.meta[kv[0]] = struct{}{}
	}
	return d
}

// IsMetadata implements MetadataHolder. A metadata key overwritten by a
// record stops being metadata.
func (d *Document) IsMetadata(key string) bool {
	_, ok := d.meta[key]
	return ok
}

// Put implements Target. A replaced key keeps its original position.
// Overwriting a metadata entry does not count as replacing a record.
func (d *Document) Put(key string, record *value.Map) (bool, error) {
	_, exists := d.Root.Get(key)
	replaced := exists && !d.IsMetadata(key)
	delete(d.meta, key)
	d.Root.Set(key, record)
	return replaced, nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Root.MarshalJSON()
}

var (
	_ Target         = (*Document)(nil)
	_ MetadataHolder = (*Document)(nil)
)
