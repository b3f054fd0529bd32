package ingest

import (
	"strings"
	"testing"

	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonWalker(t *testing.T) {
	doc, _, err := convert(t, "name,role,address.city,skills.0,skills.1\nAlice,admin,Tokyo,go,sql\nBob,user,Osaka,rust,\n")
	require.NoError(t, err)

	w := NewJsonWalker()

	t.Run("select nested scalar", func(t *testing.T) {
		matches, err := w.Query(doc.Root, "$.Alice.address.city")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Tokyo", matches[0].Value())
		assert.NotEmpty(t, matches[0].Path())
	})

	t.Run("select list", func(t *testing.T) {
		matches, err := w.Query(doc.Root, "$.Bob.skills")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		list, ok := matches[0].Value().(*value.List)
		require.True(t, ok, "got %T", matches[0].Value())
		assert.Equal(t, []any{"rust", nil}, value.ToAny(list))
	})

	t.Run("wildcard over records", func(t *testing.T) {
		matches, err := w.Query(doc.Root, "$.*.role")
		require.NoError(t, err)
		var roles []any
		for _, m := range matches {
			roles = append(roles, m.Value())
		}
		assert.Equal(t, []any{"admin", "user"}, roles)
	})

	t.Run("metadata", func(t *testing.T) {
		matches, err := w.Query(doc.Root, "$.Version")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "1.0", matches[0].Value())
	})

	t.Run("no match", func(t *testing.T) {
		matches, err := w.Query(doc.Root, "$.Carol")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("invalid selector", func(t *testing.T) {
		_, err := w.Query(doc.Root, "$[")
		assert.ErrorContains(t, err, "invalid jsonpath")
	})
}

func TestJsonWalker_DocumentOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,v\n")
	keys := []string{"f", "b", "e", "a", "d", "c"}
	for i, k := range keys {
		b.WriteString(k + "," + string(rune('1'+i)) + "\n")
	}

	doc := NewDocument(api.DefaultMetadata())
	_, err := NewEngine().Ingest(strings.NewReader(b.String()), doc)
	require.NoError(t, err)

	w := NewJsonWalker()
	for range 5 {
		matches, err := w.Query(doc.Root, "$.*.v")
		require.NoError(t, err)

		var got []any
		var paths []string
		for _, m := range matches {
			got = append(got, m.Value())
			paths = append(paths, m.Path())
		}
		assert.Equal(t, []any{int64(1), int64(2), int64(3), int64(4), int64(5), int64(6)}, got)
		assert.Equal(t, []string{"$.f.v", "$.b.v", "$.e.v", "$.a.v", "$.d.v", "$.c.v"}, paths)
	}
}
