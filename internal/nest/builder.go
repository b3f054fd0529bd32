package nest

import (
	"github.com/agentic-research/csvjson/internal/value"
)

// Builder writes values into record trees.
type Builder struct {
	// MaxIndex caps list indexes. A path addressing a larger index is not
	// written, so one header cannot allocate an arbitrarily long list.
	MaxIndex int
}

// NewBuilder returns a Builder using DefaultMaxIndex.
func NewBuilder() *Builder {
	return &Builder{MaxIndex: DefaultMaxIndex}
}

// Fits reports whether every index in path is within MaxIndex.
func (b *Builder) Fits(path Path) bool {
	limit := b.MaxIndex
	if limit <= 0 {
		limit = DefaultMaxIndex
	}
	return path.MaxIndex() <= limit
}

// Set stores v in root at the location named by header and reports whether
// it did. An empty header, or one that does not fit MaxIndex, leaves root
// untouched.
func (b *Builder) Set(root *value.Map, header string, v value.Value) bool {
	if header == "" {
		return false
	}
	return b.SetPath(root, ParsePath(header), v)
}

// SetPath stores v in root at path. See Set.
func (b *Builder) SetPath(root *value.Map, path Path, v value.Value) bool {
	if len(path) == 0 || !b.Fits(path) {
		return false
	}

	first := path[0]
	rest := path[1:]
	if first.IsIndex {
		// The root is a map, so a leading index addresses a list kept under
		// the segment's own text.
		rest = path
	}

	child, _ := root.Get(first.Name)
	root.Set(first.Name, place(child, rest, v))
	return true
}

// place returns what the slot currently holding cur must hold after v is
// written at path below it. Containers of the right kind are reused;
// anything else in the slot is replaced.
func place(cur value.Value, path Path, v value.Value) value.Value {
	if len(path) == 0 {
		return v
	}

	seg := path[0]
	if seg.IsIndex {
		list, ok := cur.(*value.List)
		if !ok {
			list = value.NewList()
		}
		list.Grow(seg.Index + 1)
		list.Set(seg.Index, place(list.At(seg.Index), path[1:], v))
		return list
	}

	m, ok := cur.(*value.Map)
	if !ok {
		m = value.NewMap()
	}
	child, _ := m.Get(seg.Name)
	m.Set(seg.Name, place(child, path[1:], v))
	return m
}
