package model

import "errors"

// ErrTableNotFound is returned when a preview targets a table the
// warehouse catalog does not list.
var ErrTableNotFound = errors.New("table not found in warehouse catalog")

// TableRef identifies a warehouse table by schema and name
type TableRef struct {
	Schema string `json:"schema"`
	Name   string `json:"name"`
}

// TablePreview carries the first rows of a warehouse table, column order preserved
type TablePreview struct {
	Schema  string           `json:"schema"`
	Table   string           `json:"table"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
