package value

import "sort"

// The methods below let JSONPath evaluators that understand keyed and
// indexed collections (ojg's jp.Keyed and jp.Indexed) walk a document in
// insertion order without converting it first. Containers are handed out
// as they are; scalars come out as plain Go values so filters compare them
// like decoded JSON.

// ValueForKey returns the entry for key.
func (m *Map) ValueForKey(key string) (any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return walkable(v), true
}

// SetValueForKey stores the Go value v under key.
func (m *Map) SetValueForKey(key string, v any) {
	m.Set(key, FromAny(v))
}

// RemoveValueForKey deletes key.
func (m *Map) RemoveValueForKey(key string) {
	m.Delete(key)
}

// ValueAtIndex returns the item at i, or nil when i is out of range.
func (l *List) ValueAtIndex(i int) any {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return walkable(l.items[i])
}

// SetValueAtIndex stores the Go value v at i, padding with Null.
func (l *List) SetValueAtIndex(i int, v any) {
	if i < 0 {
		return
	}
	l.Set(i, FromAny(v))
}

// Size is Len.
func (l *List) Size() int {
	return len(l.items)
}

func walkable(v Value) any {
	switch v.(type) {
	case *Map, *List:
		return v
	default:
		return ToAny(v)
	}
}

// FromAny converts decoded Go data into a Value. A Value is returned as is.
// Keys of a plain map[string]any have no order and are sorted. Types with
// no JSON counterpart become Null.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.Set(k, FromAny(t[k]))
		}
		return m
	case []any:
		l := NewList()
		for _, item := range t {
			l.Append(FromAny(item))
		}
		return l
	default:
		return Null{}
	}
}
