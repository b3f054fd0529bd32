package files

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentic-research/csvjson/internal/table"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ReadTable opens name on fsys and splits it into a header and rows.
func ReadTable(fsys billy.Filesystem, name string) (*table.Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }() // read-only

	t, err := table.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// EncodeJSON renders v as JSON indented by indent spaces per level, with a
// trailing newline. An indent of 0 gives compact output.
func EncodeJSON(v any, indent int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if indent > 0 {
		out, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteJSON encodes v and replaces name with the result. The data goes to
// a temporary file next to name first, so name is either fully written or
// left untouched.
func WriteJSON(fsys billy.Filesystem, name string, v any, indent int) (int, error) {
	data, err := EncodeJSON(v, indent)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := util.TempFile(fsys, dir, ".csvjson-")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return 0, fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return 0, fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := fsys.Rename(tmpName, name); err != nil {
		_ = fsys.Remove(tmpName)
		return 0, fmt.Errorf("rename to %s: %w", name, err)
	}
	return len(data), nil
}
