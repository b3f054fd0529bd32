package table

import (
	"strings"
	"testing"
)

func FuzzSplitLine(f *testing.F) {
	f.Add(`a,"b,c","d""e"`)
	f.Add(`"unterminated,x`)
	f.Add(`,,,`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, line string) {
		cells := SplitLine(line)
		if len(cells) == 0 {
			t.Fatal("at least one cell expected")
		}

		// Cells never contain more text than the line had.
		total := 0
		for _, c := range cells {
			total += len(c)
		}
		if total > len(line) {
			t.Fatalf("cells hold %d bytes, line has %d", total, len(line))
		}

		// Without quotes, splitting is a plain comma split.
		if !strings.Contains(line, `"`) {
			if got, want := len(cells), strings.Count(line, ",")+1; got != want {
				t.Fatalf("got %d cells, want %d", got, want)
			}
		}
	})
}
