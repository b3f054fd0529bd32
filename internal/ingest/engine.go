package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/csvjson/internal/nest"
	"github.com/agentic-research/csvjson/internal/table"
	"github.com/agentic-research/csvjson/internal/value"
	"github.com/spf13/cast"
)

// KeyField is the column whose value identifies a record. It is removed from
// the record and used as the record's key in the output.
const KeyField = "name"

// ErrNoData is returned when the input lacks a header or any data rows.
var ErrNoData = errors.New("csv has no data")

// MissingKeyError reports a row whose record has no usable KeyField value.
type MissingKeyError struct {
	// Row is the 1-based position of the row in the input, counting the
	// header as row 1.
	Row int
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("row %d: %s column is empty", e.Row, KeyField)
}

// Report summarizes a conversion.
type Report struct {
	Rows    int
	Records int
	// Replaced holds the rows whose key overwrote an earlier record.
	Replaced *roaring.Bitmap
	// Shadowed holds the rows whose key overwrote a metadata entry.
	Shadowed *roaring.Bitmap
	// Skipped lists headers addressing a list index above the limit.
	Skipped []string
}

// Engine turns table rows into keyed records.
type Engine struct {
	Builder *nest.Builder
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-row diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMaxIndex caps list indexes accepted in header paths.
func WithMaxIndex(n int) Option {
	return func(e *Engine) { e.Builder.MaxIndex = n }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Builder: nest.NewBuilder(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Convert assembles every data row of t and hands the records to target in
// row order. The first row without a key aborts the conversion with a
// *MissingKeyError; records already handed over are not withdrawn, so
// callers must discard the target on error.
func (e *Engine) Convert(t *table.Table, target Target) (*Report, error) {
	if t == nil || len(t.Header) == 0 || len(t.Rows) == 0 {
		return nil, ErrNoData
	}

	report := &Report{Replaced: roaring.New(), Shadowed: roaring.New()}

	headers := make([]string, len(t.Header))
	for i, h := range t.Header {
		headers[i] = strings.TrimSpace(h)
		if headers[i] != "" && !e.Builder.Fits(nest.ParsePath(headers[i])) {
			report.Skipped = append(report.Skipped, headers[i])
			e.logger.Warn("column skipped, list index above limit", "header", headers[i], "max_index", e.Builder.MaxIndex)
		}
	}

	meta, _ := target.(MetadataHolder)
	for i, cells := range t.Rows {
		row := t.Line(i)
		record := e.BuildRecord(headers, cells)

		key, ok := TakeKey(record)
		if !ok {
			return nil, &MissingKeyError{Row: row}
		}

		if meta != nil && meta.IsMetadata(key) {
			report.Shadowed.Add(uint32(row))
			e.logger.Warn("record replaced metadata entry", "row", row, "key", key)
		}

		replaced, err := target.Put(key, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: store record %q: %w", row, key, err)
		}
		if replaced {
			report.Replaced.Add(uint32(row))
			e.logger.Warn("duplicate key replaced earlier record", "row", row, "key", key)
		}

		report.Rows++
		e.logger.Debug("record assembled", "row", row, "key", key, "fields", record.Len())
	}

	report.Records = report.Rows - int(report.Replaced.GetCardinality())
	return report, nil
}

// BuildRecord pairs headers with cells and places each inferred value in a
// fresh record. Missing trailing cells count as empty; extra cells are
// ignored. headers must already be trimmed.
func (e *Engine) BuildRecord(headers, cells []string) *value.Map {
	record := value.NewMap()
	for i, h := range headers {
		raw := ""
		if i < len(cells) {
			raw = cells[i]
		}
		e.Builder.Set(record, h, value.Infer(raw))
	}
	return record
}

// TakeKey removes KeyField from record and returns its text. It fails when
// the field is absent, null, empty once stringified, or a container.
func TakeKey(record *value.Map) (string, bool) {
	v, ok := record.Get(KeyField)
	if !ok {
		return "", false
	}
	key, err := cast.ToStringE(value.ToAny(v))
	if err != nil || key == "" {
		return "", false
	}
	record.Delete(KeyField)
	return key, true
}
