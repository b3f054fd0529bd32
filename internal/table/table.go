package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single physical line. bufio's default of 64KB is too
// small for wide exports with long free-text columns.
const maxLineSize = 16 << 20

// Table is a header row plus the data rows that follow it.
// Rows[i] came from physical line i+2 of the source.
type Table struct {
	Header []string
	Rows   [][]string
}

// Line returns the 1-based source line of data row i.
func (t *Table) Line(i int) int {
	return i + 2
}

// SplitLine splits one physical line into cells on unquoted commas.
//
// A doubled quote inside a quoted cell yields one literal quote; any other
// quote toggles the quoted state and is dropped. The final cell is always
// emitted, so an empty line yields a single empty cell. Unterminated quotes
// are not an error: the rest of the line becomes part of the last cell.
func SplitLine(line string) []string {
	var (
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			row = append(row, cell.String())
			cell.Reset()
		default:
			cell.WriteByte(c)
		}
	}
	return append(row, cell.String())
}

// NewReader wraps r so that a leading byte order mark is consumed. UTF-16
// input announced by its BOM is decoded to UTF-8; anything else passes
// through untouched.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
}

// Read splits every line of r into cells. The first line becomes the header.
//
// Reading is strictly line oriented: a quoted cell containing a newline is
// split across two rows rather than merged.
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(NewReader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	t := &Table{}
	first := true
	for sc.Scan() {
		cells := SplitLine(sc.Text())
		if first {
			t.Header = cells
			first = false
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return t, nil
}

// ReadString is Read over an in-memory string.
func ReadString(s string) (*Table, error) {
	return Read(strings.NewReader(s))
}
