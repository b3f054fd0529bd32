package nest

import (
	"strconv"
	"strings"
)

// DefaultMaxIndex is the largest list index a Builder writes to. Columns
// addressing a larger index are skipped.
const DefaultMaxIndex = 65535

// Segment is one dot-separated step of a header path.
type Segment struct {
	// Name is the raw segment text.
	Name string
	// Index is the list position when IsIndex is set.
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

// Path is a parsed header.
type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && !s.IsIndex {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// MaxIndex returns the largest index in p, or -1 if p has no index segment.
func (p Path) MaxIndex() int {
	n := -1
	for _, s := range p {
		if s.IsIndex && s.Index > n {
			n = s.Index
		}
	}
	return n
}

// ParsePath splits header on '.'. A segment is an index iff it is all ASCII
// digits and fits a 32-bit signed integer.
func ParsePath(header string) Path {
	parts := strings.Split(header, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		seg := Segment{Name: part}
		if idx, ok := parseIndex(part); ok {
			seg.Index = idx
			seg.IsIndex = true
		}
		path = append(path, seg)
	}
	return path
}

// parseIndex accepts only non-empty all-digit text. Signs, spaces and
// numbers that overflow an int32 fall back to map keys.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
