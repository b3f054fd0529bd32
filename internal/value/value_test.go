package value

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_KeepsInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("zeta", Int(1))
	m.Set("alpha", Int(2))
	m.Set("mid", Int(3))
	m.Set("zeta", Int(4))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	v, ok := m.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, Int(4), v)

	old, ok := m.Delete("alpha")
	require.True(t, ok)
	assert.Equal(t, Int(2), old)
	assert.Equal(t, 2, m.Len())
}

func TestMap_SetNilStoresNull(t *testing.T) {
	m := NewMap()
	m.Set("a", nil)
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)
}

func TestList_PadsWithNull(t *testing.T) {
	l := NewList()
	l.Set(2, String("y"))
	l.Set(0, String("x"))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []Value{String("x"), Null{}, String("y")}, l.Items())
	assert.Equal(t, Null{}, l.At(10))
	assert.Equal(t, Null{}, l.At(-1))

	l.Append(Int(9))
	assert.Equal(t, Int(9), l.At(3))
}

func TestMarshalJSON(t *testing.T) {
	addr := NewMap()
	addr.Set("city", String("Tokyo"))
	addr.Set("zip", Null{})

	skills := NewList()
	skills.Set(1, String("go"))

	doc := NewMap()
	doc.Set("b", addr)
	doc.Set("a", skills)
	doc.Set("n", Int(3))
	doc.Set("f", Float(2.5))
	doc.Set("t", Bool(true))
	doc.Set("empty", NewList())
	doc.Set("obj", NewMap())

	got, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"b":{"city":"Tokyo","zip":null},"a":[null,"go"],"n":3,"f":2.5,"t":true,"empty":[],"obj":{}}`,
		string(got))
}

func TestMarshalJSON_Indent(t *testing.T) {
	doc := NewMap()
	doc.Set("Name", String("Address"))
	inner := NewMap()
	inner.Set("x", Int(1))
	doc.Set("alice", inner)

	got, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Name\": \"Address\",\n  \"alice\": {\n    \"x\": 1\n  }\n}", string(got))
}

func TestToAny(t *testing.T) {
	inner := NewMap()
	inner.Set("city", String("Tokyo"))
	list := NewList()
	list.Set(1, Float(1.5))

	doc := NewMap()
	doc.Set("address", inner)
	doc.Set("scores", list)
	doc.Set("ok", Bool(false))
	doc.Set("n", Int(7))

	want := map[string]any{
		"address": map[string]any{"city": "Tokyo"},
		"scores":  []any{nil, 1.5},
		"ok":      false,
		"n":       int64(7),
	}
	if diff := cmp.Diff(want, ToAny(doc)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "null", Null{}.Kind().String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
