package value

import (
	"encoding/json"
	"strings"
	"testing"
)

func FuzzInfer(f *testing.F) {
	for _, s := range []string{"", "true", "42", "-1.5e3", "0x1p3", "NaN", " text "} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		v := Infer(s)
		if _, err := json.Marshal(v); err != nil {
			t.Fatalf("inferred %s does not encode: %v", v.Kind(), err)
		}
		if str, ok := v.(String); ok && string(str) != strings.TrimSpace(s) {
			t.Fatalf("string fallback changed text: %q -> %q", s, str)
		}
	})
}
