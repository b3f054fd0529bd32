package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse decodes one JSON value, keeping object key order. Numbers without a
// fraction or exponent become Int when they fit, everything else Float.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse json: trailing data after value")
	}
	return v, nil
}

// ParseMap is Parse for input that must be a JSON object.
func ParseMap(data []byte) (*Map, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("parse json: expected object, got %s", v.Kind())
	}
	return m, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return decodeNumber(t)
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("parse json: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("parse json: unexpected key token %v", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("parse json: %w", err)
			}
			return m, nil
		case '[':
			l := NewList()
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				l.Append(child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("parse json: %w", err)
			}
			return l, nil
		}
	}
	return nil, fmt.Errorf("parse json: unexpected token %v", tok)
}

func decodeNumber(n json.Number) (Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("parse json: number %s: %w", n, err)
	}
	return Float(f), nil
}
