package storage

import (
	"fmt"
	"strconv"
	"time"
)

// Row is one result row as an ordered field→value mapping: column order is
// preserved exactly as the engine returned it, values are addressable by
// column name. Drivers disagree on concrete value types (sqlite returns
// int64/string, mysql often []byte), so the accessors coerce.
type Row struct {
	columns []string
	values  []any
}

// Columns returns the column names in result-set order.
func (r Row) Columns() []string {
	return r.columns
}

// Value returns the raw value for a column and whether the column exists.
func (r Row) Value(col string) (any, bool) {
	for i, c := range r.columns {
		if c == col {
			return r.values[i], true
		}
	}
	return nil, false
}

// IsNull returns true if the column is absent or holds SQL NULL.
func (r Row) IsNull(col string) bool {
	v, ok := r.Value(col)
	return !ok || v == nil
}

// String returns the column as a string; NULL and missing columns yield "".
func (r Row) String(col string) string {
	v, ok := r.Value(col)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Int returns the column as an int; NULL and unparsable values yield 0.
func (r Row) Int(col string) int {
	v, ok := r.Value(col)
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case int64:
		return int(t)
	case int:
		return t
	case float64:
		return int(t)
	case []byte:
		n, _ := strconv.Atoi(string(t))
		return n
	case string:
		n, _ := strconv.Atoi(t)
		return n
	}
	return 0
}

// Float returns the column as a float64; NULL and unparsable values yield 0.
func (r Row) Float(col string) float64 {
	v, ok := r.Value(col)
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case []byte:
		f, _ := strconv.ParseFloat(string(t), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}

// Time returns the column as a time.Time; NULL and unparsable values yield
// the zero time.
func (r Row) Time(col string) time.Time {
	v, ok := r.Value(col)
	if !ok || v == nil {
		return time.Time{}
	}
	if t, ok := v.(time.Time); ok {
		return t
	}
	s := r.String(col)
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Date returns the column as a YYYY-MM-DD string; NULL yields "".
func (r Row) Date(col string) string {
	v, ok := r.Value(col)
	if !ok || v == nil {
		return ""
	}
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	s := r.String(col)
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
