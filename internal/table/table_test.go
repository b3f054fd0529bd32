package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma and doubled quote", `a,"b,c","d""e"`, []string{"a", "b,c", `d"e`}},
		{"empty line", "", []string{""}},
		{"trailing delimiter", "a,b,", []string{"a", "b", ""}},
		{"only delimiters", ",,", []string{"", "", ""}},
		{"quotes mid cell", `ab"c,d"e`, []string{"abc,de"}},
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
		{"empty quoted cell", `"",x`, []string{"", "x"}},
		{"spaces preserved", " a , b ", []string{" a ", " b "}},
		{"multibyte", `東京,"大阪, 日本"`, []string{"東京", "大阪, 日本"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

func TestRead(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		tbl, err := ReadString("name,age\nalice,30\nbob,41\n")
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "age"}, tbl.Header)
		assert.Equal(t, [][]string{{"alice", "30"}, {"bob", "41"}}, tbl.Rows)
		assert.Equal(t, 2, tbl.Line(0))
		assert.Equal(t, 3, tbl.Line(1))
	})

	t.Run("crlf line endings", func(t *testing.T) {
		tbl, err := ReadString("name,city\r\nalice,Tokyo\r\n")
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "city"}, tbl.Header)
		assert.Equal(t, [][]string{{"alice", "Tokyo"}}, tbl.Rows)
	})

	t.Run("utf8 bom stripped", func(t *testing.T) {
		in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name\nalice")...)
		tbl, err := Read(bytes.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, tbl.Header)
		assert.Equal(t, [][]string{{"alice"}}, tbl.Rows)
	})

	t.Run("blank line is a row", func(t *testing.T) {
		tbl, err := ReadString("name\n\nbob\n")
		require.NoError(t, err)
		assert.Equal(t, [][]string{{""}, {"bob"}}, tbl.Rows)
	})

	t.Run("quoted newline is not merged", func(t *testing.T) {
		tbl, err := ReadString("name,note\nalice,\"line one\nline two\"\n")
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 2)
		assert.Equal(t, []string{"alice", "line one"}, tbl.Rows[0])
		assert.Equal(t, []string{"line two"}, tbl.Rows[1])
	})

	t.Run("empty input", func(t *testing.T) {
		tbl, err := ReadString("")
		require.NoError(t, err)
		assert.Nil(t, tbl.Header)
		assert.Empty(t, tbl.Rows)
	})
}
