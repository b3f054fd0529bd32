package ingest

import (
	"fmt"

	"github.com/agentic-research/csvjson/internal/value"
	"github.com/ohler55/ojg/jp"
)

// JsonWalker implements Walker with JSONPath selectors.
type JsonWalker struct{}

func NewJsonWalker() *JsonWalker {
	return &JsonWalker{}
}

// Query implements Walker.
func (w *JsonWalker) Query(root value.Value, selector string) ([]Match, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}

	// *value.Map and *value.List are walked in place so matches come out
	// in document order.
	data := any(root)
	switch root.(type) {
	case *value.Map, *value.List:
	default:
		data = value.ToAny(root)
	}

	// Locate gives paths alongside the values; fall back to Get for
	// expressions it cannot follow.
	paths := x.Locate(data, 0)
	if len(paths) == 0 {
		results := x.Get(data)
		matches := make([]Match, len(results))
		for i, r := range results {
			matches[i] = &jsonMatch{value: r}
		}
		return matches, nil
	}

	matches := make([]Match, 0, len(paths))
	for _, p := range paths {
		matches = append(matches, &jsonMatch{value: p.First(data), path: p.String()})
	}
	return matches, nil
}

type jsonMatch struct {
	value any
	path  string
}

// Value implements Match.
func (m *jsonMatch) Value() any {
	return m.value
}

// Path implements Match.
func (m *jsonMatch) Path() string {
	return m.path
}

var _ Walker = (*JsonWalker)(nil)
