// Package manifest reads the JSON dataset descriptor a host pipeline
// hands to the chunk planner.
package manifest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Dataset describes one dataset to be chunked. Rows and SizeMB feed the
// planner's per-row footprint estimate; Columns is informational.
type Dataset struct {
	Name    string
	Rows    int
	Columns int
	SizeMB  float64
}

// Load reads and validates a dataset manifest of the form:
//
//	{"dataset": {"name": "trips", "rows": 100000, "columns": 12, "size_mb": 1000}}
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw manifest JSON.
func Parse(data []byte) (*Dataset, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("error parsing manifest: invalid JSON")
	}

	root := gjson.GetBytes(data, "dataset")
	if !root.Exists() {
		return nil, fmt.Errorf("error parsing manifest: missing dataset object")
	}

	d := &Dataset{
		Name:    root.Get("name").String(),
		Rows:    int(root.Get("rows").Int()),
		Columns: int(root.Get("columns").Int()),
		SizeMB:  root.Get("size_mb").Float(),
	}

	if d.Rows <= 0 {
		return nil, fmt.Errorf("error parsing manifest: dataset.rows must be positive, got %d", d.Rows)
	}
	if d.SizeMB <= 0 {
		return nil, fmt.Errorf("error parsing manifest: dataset.size_mb must be positive, got %g", d.SizeMB)
	}
	return d, nil
}
