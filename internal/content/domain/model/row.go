package model

import (
	"fmt"
	"strconv"
)

// Row is one persisted record in the row store's native column naming
// (underscore-separated keys). The admin form and the public projections
// operate on typed views derived from it.
type Row map[string]interface{}

// ID returns the row's primary identifier as a string.
func (r Row) ID() string {
	return r.String("id")
}

// String returns the value under key rendered as a string, or "" when absent.
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Strings returns the value under key as a string slice. Slices of any element
// type are converted element-wise; scalars and missing keys yield nil.
func (r Row) Strings(key string) []string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	switch vals := v.(type) {
	case []string:
		return vals
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return nil
}

// Float returns the value under key as a float64, or 0 when absent or
// non-numeric.
func (r Row) Float(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// Int returns the value under key as an int, truncating floats.
func (r Row) Int(key string) int {
	return int(r.Float(key))
}

// Bool returns the value under key as a bool. The strings "true"/"false" are
// accepted because boolean columns round-trip through select fields as text.
func (r Row) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
