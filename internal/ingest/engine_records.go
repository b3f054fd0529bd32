package ingest

import (
	"io"

	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/table"
)

// Ingest reads CSV text from r and converts it into target.
func (e *Engine) Ingest(r io.Reader, target Target) (*Report, error) {
	t, err := table.Read(r)
	if err != nil {
		return nil, err
	}
	return e.Convert(t, target)
}

// ConvertDocument reads CSV text from r into a new Document seeded with meta.
// On error no document is returned.
func (e *Engine) ConvertDocument(r io.Reader, meta api.Metadata) (*Document, *Report, error) {
	doc := NewDocument(meta)
	report, err := e.Ingest(r, doc)
	if err != nil {
		return nil, nil, err
	}
	return doc, report, nil
}
