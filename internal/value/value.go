package value

import (
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node in a nested document: a scalar, a *Map or a *List.
// The set of implementations is closed.
type Value interface {
	json.Marshaler
	Kind() Kind
	sealed()
}

type (
	Null   struct{}
	Bool   bool
	Int    int64
	Float  float64
	String string
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Int) sealed()    {}
func (Float) sealed()  {}
func (String) sealed() {}

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (b Bool) MarshalJSON() ([]byte, error) { return strconv.AppendBool(nil, bool(b)), nil }

func (i Int) MarshalJSON() ([]byte, error) { return strconv.AppendInt(nil, int64(i), 10), nil }

func (f Float) MarshalJSON() ([]byte, error) { return json.Marshal(float64(f)) }

func (s String) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

// Map is a string-keyed container that remembers insertion order.
// Replacing an existing key keeps its original position.
type Map struct {
	pairs *orderedmap.OrderedMap[string, Value]
}

func NewMap() *Map {
	return &Map{pairs: orderedmap.New[string, Value]()}
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) sealed()    {}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	return m.pairs.Get(key)
}

// Set stores v under key. A nil v is stored as Null.
func (m *Map) Set(key string, v Value) {
	if v == nil {
		v = Null{}
	}
	m.pairs.Set(key, v)
}

// Delete removes key and returns what it held.
func (m *Map) Delete(key string) (Value, bool) {
	return m.pairs.Delete(key)
}

func (m *Map) Len() int {
	return m.pairs.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.pairs.Len())
	for p := m.pairs.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	for p := m.pairs.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return m.pairs.MarshalJSON()
}

// List is an indexed container. Unset positions hold Null.
type List struct {
	items []Value
}

func NewList() *List {
	return &List{}
}

func (*List) Kind() Kind { return KindList }
func (*List) sealed()    {}

func (l *List) Len() int {
	return len(l.items)
}

// Grow pads the list with Null until it holds at least n items.
func (l *List) Grow(n int) {
	for len(l.items) < n {
		l.items = append(l.items, Null{})
	}
}

// At returns the item at i, or Null when i is out of range.
func (l *List) At(i int) Value {
	if i < 0 || i >= len(l.items) {
		return Null{}
	}
	return l.items[i]
}

// Set stores v at i, growing the list as needed.
func (l *List) Set(i int, v Value) {
	if v == nil {
		v = Null{}
	}
	l.Grow(i + 1)
	l.items[i] = v
}

// Append adds v at the end of the list.
func (l *List) Append(v Value) {
	l.Set(len(l.items), v)
}

// Items returns the backing slice. Callers must not modify it.
func (l *List) Items() []Value {
	return l.items
}

func (l *List) MarshalJSON() ([]byte, error) {
	if len(l.items) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// IsNull reports whether v is absent or Null.
func IsNull(v Value) bool {
	return v == nil || v.Kind() == KindNull
}

// ToAny converts v into plain Go values (nil, bool, int64, float64, string,
// map[string]any, []any) for libraries that walk generic JSON data.
// Map order is lost in the conversion.
func ToAny(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case *Map:
		out := make(map[string]any, t.Len())
		t.Range(func(k string, child Value) bool {
			out[k] = ToAny(child)
			return true
		})
		return out
	case *List:
		out := make([]any, len(t.items))
		for i, child := range t.items {
			out[i] = ToAny(child)
		}
		return out
	default:
		panic("value: unknown kind " + v.Kind().String())
	}
}
